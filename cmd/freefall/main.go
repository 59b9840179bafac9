package main

import (
	"os"

	"github.com/san-kum/freefall/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	height     float64
	velocity   float64
	mass       float64
	radius     float64
	dragCoeff  float64
	density    float64
	gravity    float64
	dt         float64
	stride     int
	finishTime float64
	verbose    bool
	parallel   bool
	// Output
	format      string
	asciiPlot   bool
	phasePlot   bool
	plotDir     string
	imageFormat string
	saveConfig  string
	plotHeight  int
	plotWidth   int
	// Sweep
	sweepParams []string
	sweepModel  string
	sweepMetric string
	// Bench
	benchRuns int
)

// main registers the freefall commands and exits with status 1 when a
// command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "freefall",
		Short: "falling body with quadratic drag under constant or newtonian gravity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(cmd, nil)
		},
	}
	addSimFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [model...]",
		Short: "run the selected gravity models (constant, newton)",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&format, "format", "summary", "output format: summary, json, csv, none")
	runCmd.Flags().BoolVar(&asciiPlot, "plot", false, "draw terminal plots")
	runCmd.Flags().BoolVar(&phasePlot, "phase", false, "draw height against speed")
	runCmd.Flags().StringVar(&plotDir, "plot-dir", "", "write time plots as images into this directory")
	runCmd.Flags().StringVar(&imageFormat, "image-format", "png", "image format for --plot-dir: png, svg, pdf")
	runCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved config to this yaml file")
	addPlotSizeFlags(runCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both gravity models and overlay the results",
		Args:  cobra.NoArgs,
		RunE:  compareModels,
	}
	addSimFlags(compareCmd)
	addPlotSizeFlags(compareCmd)

	replayCmd := &cobra.Command{
		Use:   "replay [model...]",
		Short: "step through finished runs in the terminal",
		RunE:  replay,
	}
	addSimFlags(replayCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [model...]",
		Short: "write time vs position, velocity and net force plots",
		RunE:  plotImages,
	}
	addSimFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotDir, "out", "plots", "output directory")
	plotCmd.Flags().StringVar(&imageFormat, "image-format", "png", "image format: png, svg, pdf")

	presetsCmd := &cobra.Command{
		Use:   "presets [object]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid search over parameters",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&sweepParams, "param", nil, "name=v1,v2,... or name=min:max:steps (repeatable)")
	sweepCmd.Flags().StringVar(&sweepModel, "model", "constant", "gravity model")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "last_sample_time", "metric to minimise")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted batch of drops",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [model...]",
		Short: "benchmark the integrator",
		RunE:  bench,
	}
	addSimFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchRuns, "runs", 20, "runs per model")

	rootCmd.AddCommand(runCmd, compareCmd, replayCmd, plotCmd, presetsCmd, sweepCmd, scenarioCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "preset as object/name (see presets)")
	f.Float64Var(&height, "height", config.DefaultHeight, "initial height (m)")
	f.Float64Var(&velocity, "velocity", 0, "initial velocity, positive downward (m/s)")
	f.Float64Var(&mass, "mass", config.DefaultMass, "object mass (kg)")
	f.Float64Var(&radius, "radius", config.DefaultRadius, "object radius (m)")
	f.Float64Var(&dragCoeff, "cd", config.DefaultDragCoefficient, "drag coefficient")
	f.Float64Var(&density, "density", config.DefaultFluidDensity, "fluid density (kg/m^3)")
	f.Float64Var(&gravity, "gravity", config.DefaultGravity, "surface gravity for the constant model (m/s^2)")
	f.Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	f.IntVar(&stride, "stride", config.DefaultSampleStride, "sample when rounded height is a multiple of this")
	f.Float64Var(&finishTime, "finish", 0, "stop once elapsed time exceeds this (s), 0 for no cutoff")
	f.BoolVarP(&verbose, "verbose", "v", false, "print one line per sample")
	f.BoolVar(&parallel, "parallel", false, "run models concurrently")
}

func addPlotSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&plotHeight, "plot-height", 10, "terminal plot height")
	cmd.Flags().IntVar(&plotWidth, "plot-width", 80, "terminal plot width")
}
