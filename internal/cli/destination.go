package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geodesy-tools/vincenty"
	"github.com/geodesy-tools/vincenty/internal/coords"
)

func newDestinationCmd(a *app) *cobra.Command {
	var (
		start   coords.Flag
		dist    float64
		bearing float64
	)

	cmd := &cobra.Command{
		Use:   "destination",
		Short: "Compute destination point from a start point, bearing, and distance",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "startpoint", "dist", "bearing"); err != nil {
				return err
			}

			res, err := a.e.Direct(start.Point, bearing, dist)
			a.observe(vincenty.SolverDirect, res.Iterations, err)
			if err != nil {
				return err
			}
			a.log.WithField("iterations", res.Iterations).Debug("Direct solved")

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}
			headerColor.Fprintln(out, "Destination:")
			fmt.Fprintf(out, "Latitude: %.8f°\nLongitude: %.8f°\nReverse bearing: %.4f°\n",
				res.Point.Lat, res.Point.Lon, res.ReverseBearing)
			return nil
		}),
	}

	cmd.Flags().Var(&start, "startpoint", `start point as "lat,lon"`)
	cmd.Flags().Float64Var(&dist, "dist", 0, "distance in meters")
	cmd.Flags().Float64Var(&bearing, "bearing", 0, "initial bearing in degrees")
	return cmd
}
