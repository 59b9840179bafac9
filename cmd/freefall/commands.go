package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/freefall/internal/analysis"
	"github.com/san-kum/freefall/internal/automation"
	"github.com/san-kum/freefall/internal/config"
	"github.com/san-kum/freefall/internal/dynamo"
	"github.com/san-kum/freefall/internal/experiment"
	"github.com/san-kum/freefall/internal/export"
	"github.com/san-kum/freefall/internal/optim"
	"github.com/san-kum/freefall/internal/physics"
	"github.com/san-kum/freefall/internal/viz"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command, models []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		object, name, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be object/name, got %q", preset)
		}
		p := config.GetPreset(object, name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(object))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.InitState.Height = height
	}
	if flags.Changed("velocity") {
		cfg.InitState.Velocity = velocity
	}
	if flags.Changed("mass") {
		cfg.Object.Mass = mass
	}
	if flags.Changed("radius") {
		cfg.Object.Radius = radius
	}
	if flags.Changed("cd") {
		cfg.Object.DragCoefficient = dragCoeff
	}
	if flags.Changed("density") {
		cfg.Object.FluidDensity = density
	}
	if flags.Changed("gravity") {
		cfg.Planet.SurfaceGravity = gravity
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("stride") {
		cfg.SampleStride = stride
	}
	if flags.Changed("finish") {
		cfg.FinishTime = finishTime
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if len(models) > 0 {
		cfg.Models = models
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func simulate(ctx context.Context, cfg *config.Config) ([]*dynamo.Result, error) {
	var observers func(string) []dynamo.Observer
	if cfg.Verbose {
		observers = func(model string) []dynamo.Observer {
			prefix := ""
			if len(cfg.Models) > 1 {
				prefix = "[" + model + "] "
			}
			return []dynamo.Observer{viz.NewConsole(os.Stdout, prefix)}
		}
	}

	runners, err := experiment.NewRegistry().Build(cfg.Models, cfg.Profile(), cfg.Simulation(), observers)
	if err != nil {
		return nil, err
	}

	// concurrent console lines would interleave
	if parallel && !cfg.Verbose {
		return dynamo.RunAll(ctx, runners)
	}
	return dynamo.RunEach(ctx, runners)
}

func terminalSpeed(cfg *config.Config, model string) float64 {
	g := cfg.Planet.SurfaceGravity
	if model == "newton" {
		g = physics.SurfaceGravity(cfg.Simulation().Planet)
	}
	return physics.TerminalVelocity(cfg.Profile(), g)
}

func summaries(cfg *config.Config, results []*dynamo.Result) string {
	panels := make([]string, len(results))
	for i, res := range results {
		panels[i] = viz.Summary(res, terminalSpeed(cfg, res.Model))
	}
	return viz.SideBySide(panels...)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", saveConfig)
	}

	start := time.Now()
	results, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	switch format {
	case "summary":
		fmt.Println(summaries(cfg, results))
		fmt.Printf("completed in %v\n", elapsed)
	default:
		if err := export.Write(os.Stdout, results, format); err != nil {
			return err
		}
	}

	if asciiPlot {
		for _, res := range results {
			if err := viz.PlotResult(os.Stdout, res, plotHeight, plotWidth); err != nil {
				return err
			}
		}
	}

	if phasePlot {
		for _, res := range results {
			fmt.Printf("\n%s: height (m) vs speed (m/s)\n", res.Model)
			fmt.Print(analysis.NewPhasePortrait(res.Series).ASCII(plotWidth, plotHeight*2))
		}
	}

	if plotDir != "" {
		paths, err := export.SavePlots(plotDir, results, imageFormat)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(os.Stderr, "wrote %s\n", p)
		}
	}

	return nil
}

func compareModels(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, []string{"constant", "newton"})
	if err != nil {
		return err
	}

	results, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := viz.PlotCompare(os.Stdout, results, plotHeight, plotWidth); err != nil {
		return err
	}
	fmt.Println(summaries(cfg, results))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tSAMPLES\tSTEPS\tLAST TIME\tPEAK SPEED\tTERMINAL SAMPLES\t95% TERMINAL")
	for _, res := range results {
		approach := "-"
		if t, ok := analysis.ApproachTime(res.Series, terminalSpeed(cfg, res.Model), 0.95); ok {
			approach = fmt.Sprintf("%.3fs", t)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3fs\t%.3f\t%.0f\t%s\n",
			res.Model,
			res.Series.Len(),
			res.Steps,
			res.Metrics["last_sample_time"],
			res.Metrics["peak_speed"],
			res.Metrics["terminal_samples"],
			approach,
		)
	}
	return w.Flush()
}

func replay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Verbose = false

	results, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return viz.RunReplay(results)
}

func plotImages(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	results, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	paths, err := export.SavePlots(plotDir, results, imageFormat)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	objects := config.ListObjects()
	if len(args) == 1 {
		objects = []string{args[0]}
	}

	for _, object := range objects {
		presets := config.ListPresets(object)
		if len(presets) == 0 {
			fmt.Printf("no presets for object: %s\n", object)
			continue
		}
		fmt.Printf("presets for %s:\n", object)
		for _, p := range presets {
			c := config.GetPreset(object, p)
			fmt.Printf("  %s/%s  height=%gm mass=%gkg g=%gm/s^2\n", object, p, c.InitState.Height, c.Object.Mass, c.Planet.SurfaceGravity)
		}
	}
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd, []string{sweepModel})
	if err != nil {
		return err
	}
	if len(sweepParams) == 0 {
		return fmt.Errorf("at least one --param is required (one of %v)", config.ParamNames)
	}

	baseParams := base.GetParams()
	names := make([]string, 0, len(sweepParams))
	ranges := make([][]float64, 0, len(sweepParams))
	for _, spec := range sweepParams {
		name, values, err := optim.ParseRange(spec)
		if err != nil {
			return err
		}
		if _, ok := baseParams[name]; !ok {
			return fmt.Errorf("unknown param: %s (one of %v)", name, config.ParamNames)
		}
		fmt.Printf("%s: base %g, sweeping %v\n", name, baseParams[name], values)
		names = append(names, name)
		ranges = append(ranges, values)
	}

	registry := experiment.NewRegistry()
	build := func(params map[string]float64) (dynamo.Runner, error) {
		cfg := base.Clone()
		for k, v := range params {
			if err := cfg.SetParam(k, v); err != nil {
				return nil, err
			}
		}
		runners, err := registry.Build(cfg.Models, cfg.Profile(), cfg.Simulation(), nil)
		if err != nil {
			return nil, err
		}
		return runners[0], nil
	}

	grid := optim.NewGridSearch(names, ranges)
	fmt.Printf("sweeping %d points of %s (%s)\n\n", grid.Size(), sweepModel, sweepMetric)

	points, best, err := grid.Search(cmd.Context(), build, sweepMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(names, "\t"))+"\t"+strings.ToUpper(sweepMetric)+"\tSAMPLES")
	for _, p := range points {
		for _, n := range names {
			fmt.Fprintf(w, "%g\t", p.Params[n])
		}
		fmt.Fprintf(w, "%.4f\t%d\n", p.Value, p.Result.Series.Len())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !math.IsInf(best.Value, 1) {
		fmt.Printf("\nbest %s = %.4f at", sweepMetric, best.Value)
		for _, n := range names {
			fmt.Printf(" %s=%g", n, best.Params[n])
		}
		fmt.Println()
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("  %s\n", sc.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(cmd.Context(), sc, experiment.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tMODEL\tSAMPLES\tLAST TIME\tPEAK SPEED\tTERMINATED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3fs\t%.3f\t%s\n",
			r.Label,
			r.Result.Model,
			r.Result.Series.Len(),
			r.Result.Metrics["last_sample_time"],
			r.Result.Metrics["peak_speed"],
			r.Result.Terminated,
		)
	}
	return w.Flush()
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Verbose = false
	if benchRuns < 1 {
		return fmt.Errorf("runs must be positive, got %d", benchRuns)
	}

	registry := experiment.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tRUNS\tSTEPS\tTIME/RUN\tSTEPS/SEC")

	for _, model := range cfg.Models {
		runners, err := registry.Build([]string{model}, cfg.Profile(), cfg.Simulation(), nil)
		if err != nil {
			return err
		}

		steps := 0
		start := time.Now()
		for i := 0; i < benchRuns; i++ {
			res, err := runners[0].Run(context.Background())
			if err != nil {
				return err
			}
			steps = res.Steps
		}
		elapsed := time.Since(start)

		perRun := elapsed / time.Duration(benchRuns)
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\n", model, benchRuns, steps, perRun, float64(steps*benchRuns)/elapsed.Seconds())
	}
	return w.Flush()
}
