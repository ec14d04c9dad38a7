package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geodesy-tools/vincenty"
	"github.com/geodesy-tools/vincenty/internal/coords"
)

func newDistanceCmd(a *app) *cobra.Command {
	var start, end coords.Flag

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Compute geodesic distance and bearings between two points",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "startpoint", "endpoint"); err != nil {
				return err
			}

			res, err := a.e.Inverse(start.Point, end.Point)
			a.observe(vincenty.SolverInverse, res.Iterations, err)
			if err != nil {
				return err
			}
			a.log.WithField("iterations", res.Iterations).Debug("Inverse solved")

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "Distance: %.3f m\nInitial bearing: %.4f°\nFinal bearing: %.4f°\n",
				res.Distance, res.InitialBearing, res.FinalBearing)
			return nil
		}),
	}

	cmd.Flags().Var(&start, "startpoint", `start point as "lat,lon" (e.g., 23.7769,97.7247)`)
	cmd.Flags().Var(&end, "endpoint", `end point as "lat,lon"`)
	return cmd
}
