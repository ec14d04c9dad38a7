package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geodesy-tools/vincenty"
	"github.com/geodesy-tools/vincenty/internal/coords"
	"github.com/geodesy-tools/vincenty/internal/logging"
	"github.com/geodesy-tools/vincenty/internal/pointsfile"
)

type interpolateSummary struct {
	Distance       float64 `json:"distance"`
	InitialBearing float64 `json:"initial_bearing"`
	Points         int     `json:"points"`
	Output         string  `json:"output"`
}

func newInterpolateCmd(a *app) *cobra.Command {
	var (
		start, end coords.Flag
		points     string
	)

	cmd := &cobra.Command{
		Use:   "interpolate",
		Short: "Compute intermediate points along the geodesic path",
		Long: `Reads a CSV with "serial no" and "distance" columns and writes the point
found at each distance from the start point, along the geodesic to the end
point, to a CSV next to the input.`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "startpoint", "endpoint", "points"); err != nil {
				return err
			}
			log := logging.WithComponent(a.log, "interpolate")

			in := pointsfile.Resolve(a.cfg.PointsDir, points)
			rows, err := pointsfile.ReadFile(in)
			if err != nil {
				return err
			}
			log.WithFields(logging.Fields{"file": in, "rows": len(rows)}).Debug("Points file read")

			line, err := a.e.Line(start.Point, end.Point)
			if err != nil {
				a.observe(vincenty.SolverInverse, 0, err)
				return err
			}
			a.observe(vincenty.SolverInverse, line.Iterations, nil)

			results, err := pointsfile.Interpolate(cmd.Context(), line, rows, a.cfg.Workers)
			if err != nil {
				a.observe(vincenty.SolverDirect, 0, err)
				return err
			}
			for _, r := range results {
				a.observe(vincenty.SolverDirect, r.Iterations, nil)
			}

			outPath := pointsfile.OutputPath(in, a.cfg.OutputName)
			if err := pointsfile.WriteFile(outPath, results); err != nil {
				return err
			}
			a.metrics.AddPoints(len(results))
			log.WithFields(logging.Fields{"file": outPath, "points": len(results)}).Debug("Interpolated points written")

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, interpolateSummary{
					Distance:       line.Distance,
					InitialBearing: line.InitialBearing,
					Points:         len(results),
					Output:         outPath,
				})
			}
			fmt.Fprintf(out, "Total geodesic distance: %.3f m, Initial bearing: %.4f°\n",
				line.Distance, line.InitialBearing)
			successColor.Fprintf(out, "Interpolated points saved: %s\n", outPath)
			return nil
		}),
	}

	cmd.Flags().Var(&start, "startpoint", `start point as "lat,lon"`)
	cmd.Flags().Var(&end, "endpoint", `end point as "lat,lon"`)
	cmd.Flags().StringVar(&points, "points", "", "CSV file, relative paths resolve against --points-dir")
	return cmd
}
