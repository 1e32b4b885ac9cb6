package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/voxgeo/internal/analysis"
	"github.com/san-kum/voxgeo/internal/app"
	"github.com/san-kum/voxgeo/internal/automation"
	"github.com/san-kum/voxgeo/internal/config"
	"github.com/san-kum/voxgeo/internal/export"
	"github.com/san-kum/voxgeo/internal/gui"
	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/settings"
	"github.com/san-kum/voxgeo/internal/surface"
	"github.com/san-kum/voxgeo/internal/viz"
	"github.com/san-kum/voxgeo/internal/voxel"
)

var (
	configFile string
	preset     string
	pattern    string
	radius     int
	verbose    bool
	// Terminal view
	theme string
	plain bool
	color bool
	// Export
	format     string
	outPath    string
	cellWidth  int
	cellHeight int
	// Analysis
	minParam int
	maxParam int
	row      int
	// Scripted exports
	outDir   string
	sweepMin int
	sweepMax int
	// Window
	backend string
)

// main registers the voxgeo commands and runs the root command, which opens
// the terminal view when no subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "voxgeo",
		Short: "voxel geometry playground",
		RunE:  runTUI,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", "", "fill pattern (ring, disc)")
	rootCmd.PersistentFlags().IntVar(&radius, "radius", -1, "initial driver value (default: declared value)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "render cells with shade glyphs")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print the field once",
		Args:  cobra.NoArgs,
		RunE:  renderOnce,
	}
	renderCmd.Flags().BoolVar(&color, "color", false, "truecolor output")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the field as png, svg, csv or json",
		Args:  cobra.NoArgs,
		RunE:  exportField,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "png", "output format (png, svg, csv, json)")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (\"-\" for stdout; png defaults to <pattern>_<radius>.png)")
	exportCmd.Flags().IntVar(&cellWidth, "cell-width", 0, "cell width in pixels (default: config)")
	exportCmd.Flags().IntVar(&cellHeight, "cell-height", 0, "cell height in pixels (default: config)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot lit cells per driver value",
		Args:  cobra.NoArgs,
		RunE:  plotCensus,
	}
	statsCmd.Flags().IntVar(&minParam, "min", 0, "first driver value")
	statsCmd.Flags().IntVar(&maxParam, "max", 40, "last driver value")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "power spectrum of one field row",
		Args:  cobra.NoArgs,
		RunE:  plotSpectrum,
	}
	spectrumCmd.Flags().IntVar(&row, "row", 0, "field row to analyze")

	controlsCmd := &cobra.Command{
		Use:   "controls",
		Short: "list discovered controls",
		Args:  cobra.NoArgs,
		RunE:  listControls,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [pattern]",
		Short: "list available presets for a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for pattern: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open a gui window (needs the raylib or ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}
	windowCmd.Flags().StringVar(&backend, "backend", "ebiten", "window backend (ebiten, raylib)")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a scripted export scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := automation.LoadScenario(args[0])
			if err != nil {
				return err
			}
			return runScenario(cmd, scenario)
		},
	}
	runCmd.Flags().StringVarP(&outDir, "dir", "d", ".", "output directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "export one snapshot per driver value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pattern
			if p == "" {
				p = config.DefaultPattern
			}
			scenario, err := automation.Sweep(p, sweepMin, sweepMax, format)
			if err != nil {
				return err
			}
			return runScenario(cmd, scenario)
		},
	}
	sweepCmd.Flags().IntVar(&sweepMin, "min", 0, "first driver value")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 10, "last driver value")
	sweepCmd.Flags().StringVarP(&format, "format", "f", "png", "output format (png, svg, csv, json)")
	sweepCmd.Flags().StringVarP(&outDir, "dir", "d", ".", "output directory")

	rootCmd.AddCommand(renderCmd, exportCmd, statsCmd, spectrumCmd, controlsCmd, presetsCmd, runCmd, sweepCmd, windowCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setupLogging() {
	if !verbose {
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	voxel.SetLogger(logger)
	settings.SetLogger(logger)
	render.SetLogger(logger)
	scene.SetLogger(logger)
}

// session is the state every command starts from: a loaded config, the
// discovered controls, the chosen procedure and an empty field.
type session struct {
	cfg   *config.Config
	reg   *settings.Registry
	proc  scene.Procedure
	field *voxel.Field
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		p := pattern
		if p == "" {
			p = config.DefaultPattern
		}
		cfg := config.GetPreset(p, preset)
		if cfg == nil {
			return nil, fmt.Errorf("preset not found: %s (available: %v)", preset, config.ListPresets(p))
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if pattern != "" {
		cfg.Pattern = pattern
	}
	if radius >= 0 {
		if err := cfg.SetDriverValue(radius); err != nil {
			return nil, err
		}
	}

	reg := settings.NewRegistry()
	if err := reg.Discover(cfg.Controls); err != nil {
		return nil, err
	}
	proc, err := scene.NewCatalog().Get(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	field, err := voxel.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, reg: reg, proc: proc, field: field}, nil
}

// populate runs the first pass through the driver subscription.
func (s *session) populate(drawer scene.Drawer) (*scene.Scene, error) {
	sc := scene.New(s.field, drawer, s.proc)
	if err := sc.Bind(s.reg, s.cfg.Driver); err != nil {
		return nil, err
	}
	return sc, sc.Err()
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	return viz.Run(viz.Options{
		Registry:  s.reg,
		Driver:    s.cfg.Driver,
		Grid:      s.field,
		Procedure: s.proc,
		Theme:     theme,
		Plain:     plain,
	})
}

func renderOnce(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	canvas := surface.NewCanvas(0, 0)
	r, err := render.New(canvas, 1, 1)
	if err != nil {
		return err
	}
	sc, err := s.populate(r)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s=%d (%dx%d)\n", sc.Procedure().Name, s.cfg.Driver, sc.Param(), s.field.Width(), s.field.Height())
	if color {
		fmt.Print(canvas.String())
	} else {
		fmt.Print(canvas.Plain())
	}
	return nil
}

func exportField(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	sc, err := s.populate(nil)
	if err != nil {
		return err
	}

	cw, ch := s.cfg.CellWidth, s.cfg.CellHeight
	if cellWidth > 0 {
		cw = cellWidth
	}
	if cellHeight > 0 {
		ch = cellHeight
	}
	path := outPath
	if format == "png" && path == "" {
		path = fmt.Sprintf("%s_%d.png", sc.Procedure().Name, sc.Param())
	}

	if err := export.Save(path, format, sc.Procedure().Name, sc.Param(), s.field, cw, ch); err != nil {
		return err
	}
	if path != "" && path != "-" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
	return nil
}

func plotCensus(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	counts, err := analysis.Census(s.proc, minParam, maxParam)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(counts,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("lit cells, %s %s=%d..%d", s.proc.Name, s.cfg.Driver, minParam, maxParam)),
	)
	fmt.Println(graph)
	return nil
}

func plotSpectrum(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	sc, err := s.populate(nil)
	if err != nil {
		return err
	}
	data, err := analysis.Row(s.field, row)
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(data)
	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum, %s %s=%d row %d", sc.Procedure().Name, s.cfg.Driver, sc.Param(), row)),
	)
	fmt.Println(graph)
	fmt.Println()

	dom := analysis.Dominant(ps)
	fmt.Printf("dominant bin: %d\n", dom)
	if dom > 0 {
		fmt.Printf("period: %.3f cells\n", float64(len(data))/float64(dom))
	}
	return nil
}

func listControls(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tVALUE\tRANGE")
	for _, name := range s.reg.Names() {
		st, _ := s.reg.Setting(name)
		rng := "-"
		if slider, err := s.reg.Slider(name); err == nil {
			rng = fmt.Sprintf("%g..%g step %g", slider.Min(), slider.Max(), slider.Step())
		}
		driver := ""
		if name == s.cfg.Driver {
			driver = " (driver)"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%g\t%s\n", name, driver, st.Kind(), st.Value(), rng)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, scenario *automation.Scenario) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if pattern != "" {
		cfg.Pattern = pattern
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	results, err := automation.RunScenario(cmd.Context(), scenario, cfg, outDir)
	for _, r := range results {
		line := fmt.Sprintf("  %3d  %-6s %s=%-3d %dx%d lit=%d", r.Step, r.Pattern, cfg.Driver, r.Param, r.Width, r.Height, r.Lit)
		if r.Path != "" {
			line += "  -> " + r.Path
		}
		fmt.Println(line)
	}
	return err
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	title := "voxgeo: " + s.proc.Name
	switch backend {
	case "raylib":
		return gui.Run(gui.Options{
			Title: title, Registry: s.reg, Driver: s.cfg.Driver, Grid: s.field,
			Procedure: s.proc, CellWidth: s.cfg.CellWidth, CellHeight: s.cfg.CellHeight,
		})
	case "ebiten":
		return app.Run(app.Options{
			Title: title, Registry: s.reg, Driver: s.cfg.Driver, Grid: s.field,
			Procedure: s.proc, CellWidth: s.cfg.CellWidth, CellHeight: s.cfg.CellHeight,
		})
	default:
		return fmt.Errorf("unknown backend: %s", backend)
	}
}
