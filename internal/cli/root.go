package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geodesy-tools/vincenty"
	"github.com/geodesy-tools/vincenty/internal/config"
	"github.com/geodesy-tools/vincenty/internal/logging"
	"github.com/geodesy-tools/vincenty/internal/metrics"
)

const examples = `  vincenty distance --startpoint=23.776939,97.724721 --endpoint=24.374530,84.144159
  vincenty destination --startpoint=23.776939,97.724721 --dist=1500 --bearing=45
  vincenty interpolate --startpoint=23.776939,97.724721 --endpoint=24.374530,84.144159 --points=sample_points.csv

Note: distances are in meters, bearings in degrees.`

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile     string
	output      string
	verbose     bool
	workers     int
	pointsDir   string
	metricsFile string

	cfg     config.Config
	log     logging.Logger
	metrics *metrics.Recorder
	e       *vincenty.Ellipsoid
}

// NewRootCmd returns the root command of the vincenty tool.
func NewRootCmd() *cobra.Command {
	a := &app{e: vincenty.WGS84}

	rootCmd := &cobra.Command{
		Use:   "vincenty",
		Short: "Vincenty geodesic toolkit",
		Long: "Vincenty geodesic toolkit. Computes distance, destination, and interpolation " +
			"on the WGS-84 ellipsoid.",
		Example:       examples,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML); defaults to $"+config.EnvConfigFile)
	pf.StringVar(&a.output, "output", "", "output format: json|text (default: text)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.IntVar(&a.workers, "workers", 0, "concurrent direct solves during interpolation")
	pf.StringVar(&a.pointsDir, "points-dir", "",
		"directory relative --points files are resolved against; the default, examples, is taken relative to the working directory")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")

	rootCmd.AddCommand(newDistanceCmd(a))
	rootCmd.AddCommand(newDestinationCmd(a))
	rootCmd.AddCommand(newInterpolateCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	bootLevel := "info"
	if a.verbose {
		bootLevel = "debug"
	}
	boot := logging.NewLogger(cmd.ErrOrStderr(), bootLevel, "text")
	cfg, err := config.Load(a.cfgFile, boot)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("points-dir") {
		cfg.PointsDir = a.pointsDir
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if cfg.MetricsFile != "" {
		a.metrics = metrics.New()
	}
	logging.WithComponent(a.log, cmd.Name()).WithFields(logging.Fields{
		"points_dir": cfg.PointsDir,
		"workers":    cfg.Workers,
		"output":     cfg.Output,
	}).Debug("Configuration loaded")
	return nil
}

// observe records the outcome of a solve and logs convergence failures.
func (a *app) observe(solver string, iterations int, err error) {
	if err == nil {
		a.metrics.ObserveIterations(solver, iterations)
		return
	}
	var ce *vincenty.ConvergenceError
	if errors.As(err, &ce) {
		a.metrics.ObserveFailure(ce.Solver)
		a.log.WithFields(logging.Fields{
			"solver":     ce.Solver,
			"iterations": ce.Iterations,
		}).Error("Solver did not converge")
	}
}

// run wraps a subcommand so the metrics textfile is written whether or not
// the command fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if werr := a.metrics.WriteTextfile(a.cfg.MetricsFile); werr != nil && err == nil {
				err = werr
			}
		}()
		return fn(cmd, args)
	}
}

func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, n := range names {
		if !cmd.Flags().Changed(n) {
			return fmt.Errorf("--%s is required", n)
		}
	}
	return nil
}
