package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/sheetview/internal/analysis"
	"github.com/san-kum/sheetview/internal/config"
	"github.com/san-kum/sheetview/internal/dataview"
	"github.com/san-kum/sheetview/internal/sheet"
)

var (
	configFile string
	preset     string
	verbose    bool
	// Probe point
	probeX float64
	probeY float64
	// Interval to print, both optional
	from float64
	to   float64
	step int
)

// main registers the sheetview commands and exits with status 1 if a
// command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sheetview",
		Short:         "inspect bounded and indexed sheet data views",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available view presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFEATURE\tASCENDING\tBACKEND\tCYCLIC")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				cyclic := "-"
				if cfg.CyclicInterval != nil {
					cyclic = fmt.Sprintf("%.4f", *cfg.CyclicInterval)
				}
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n",
					name, cfg.Index.Feature, cfg.Index.Ascending, cfg.Index.Backend, cyclic)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a view config file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&preset, "preset", "time", "preset to start from")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a view config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Printf("%s: ok (%s, %d snapshots of %dx%d)\n",
				args[0], cfg.Index.Feature, cfg.Steps(), cfg.Grid.Rows, cfg.Grid.Cols)
			return nil
		},
	}

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "record synthetic activity and sample one point over the index",
		RunE:  runProbe,
	}
	probeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	probeCmd.Flags().StringVar(&preset, "preset", "time", "use preset configuration")
	probeCmd.Flags().Float64Var(&probeX, "x", 0, "sheet x coordinate")
	probeCmd.Flags().Float64Var(&probeY, "y", 0, "sheet y coordinate")
	probeCmd.Flags().Float64Var(&from, "from", 0, "interval start")
	probeCmd.Flags().Float64Var(&to, "to", 0, "interval stop")
	probeCmd.Flags().IntVar(&step, "step", 1, "interval stride")

	rootCmd.AddCommand(presetsCmd, initCmd, validateCmd, probeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", preset)
	}
	return cfg, nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s", preset)
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s from preset %s\n", args[0], preset)
	return nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	view, err := dataview.NewCartesian2Dx(cfg.Bounds, cfg.Options())
	if err != nil {
		return err
	}

	steps := cfg.Steps()
	for i := 0; i < steps; i++ {
		key := float64(i) * cfg.Dt
		frame, err := activity(cfg, key)
		if err != nil {
			return err
		}
		if err := view.Record(frame, key); err != nil {
			return err
		}
	}
	slog.Debug("recording finished", "feature", view.IndexedFeature(), "snapshots", view.Len())

	p := sheet.Point{X: probeX, Y: probeY}
	series, err := view.Sample(p)
	if err != nil {
		return err
	}
	keys := view.Keys()

	fmt.Printf("feature: %s\n", view.IndexedFeature())
	fmt.Printf("point: (%g, %g)\n", p.X, p.Y)
	fmt.Printf("snapshots: %d\n\n", view.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tVALUE\n", view.IndexedFeature())
	for i, v := range series {
		fmt.Fprintf(w, "%.4f\t%.6f\n", keys[i], v)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	sum := analysis.Summarize(series)
	fmt.Printf("\nmean: %.6f  min: %.6f  max: %.6f\n", sum.Mean, sum.Min, sum.Max)
	if len(series) > 1 {
		period, err := analysis.DominantPeriod(series, cfg.Dt)
		if err != nil {
			return err
		}
		fmt.Printf("dominant period: %.4f %s\n", period, view.IndexedFeature())
	}

	var start, stop *float64
	if cmd.Flags().Changed("from") {
		start = &from
	}
	if cmd.Flags().Changed("to") {
		stop = &to
	}
	if start == nil && stop == nil {
		return nil
	}

	entries := view.Slice(start, stop, step)
	fmt.Printf("\ninterval: %d snapshots\n", entries.Len())
	for _, e := range entries {
		peak := math.Inf(-1)
		for _, row := range e.Value.Rowwise() {
			for _, v := range row {
				peak = math.Max(peak, v)
			}
		}
		fmt.Printf("  %s=%.4f peak=%.6f\n", view.IndexedFeature(), e.Key, peak)
	}
	return nil
}

// activity renders a Gaussian blob whose centre orbits the sheet centre
// as key advances, one revolution per cyclic interval when there is one.
func activity(cfg *config.Config, key float64) (*dataview.Matrix, error) {
	m, err := dataview.NewMatrix(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, err
	}
	cs, err := sheet.ForShape(cfg.Bounds, cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, err
	}

	period := cfg.Duration
	if cfg.CyclicInterval != nil {
		period = *cfg.CyclicInterval
	}
	angle := 2 * math.Pi * key / period
	radius := 0.25 * math.Min(cfg.Bounds.Width(), cfg.Bounds.Height())
	cx := (cfg.Bounds.Left+cfg.Bounds.Right)/2 + radius*math.Cos(angle)
	cy := (cfg.Bounds.Bottom+cfg.Bounds.Top)/2 + radius*math.Sin(angle)
	sigma := radius / 2

	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			x, y := cs.CellCenter(r, c)
			d2 := (x-cx)*(x-cx) + (y-cy)*(y-cy)
			m.Set(r, c, math.Exp(-d2/(2*sigma*sigma)))
		}
	}
	return m, nil
}
