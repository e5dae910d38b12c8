package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/qwave/internal/analysis"
	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/engine"
	"github.com/san-kum/qwave/internal/integrators"
	"github.com/san-kum/qwave/internal/qm"
	"github.com/san-kum/qwave/internal/store"
	"github.com/san-kum/qwave/internal/tui"
	"github.com/san-kum/qwave/internal/viz"
	"github.com/san-kum/qwave/internal/wavegen"
)

var (
	dataDir     string
	orbital     int
	energyShift float64
	regime      string
	xMin        float64
	xMax        float64
	withDensity bool
	saveRun     bool
	preset      string
	configFile  string
	plotWidth   int
	plotHeight  int
	frameRate   int
	phaseDelta  float64
	svgWidth    int
	svgHeight   int
)

var scenarioInfo = map[string]string{
	"well":       "infinite square well standing wave",
	"linear":     "particle in a linear potential (illustrative)",
	"airy":       "airy equation y'' = x*y, two-pass rk4",
	"oscillator": "animated decaying oscillation",
	"barrier":    "finite barrier, oscillatory or tunneling",
}

var scenarioOrder = []string{"well", "linear", "airy", "oscillator", "barrier"}

func main() {
	rootCmd := &cobra.Command{
		Use:   "qwave",
		Short: "textbook 1-d quantum wave visualizer",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qwave", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "generate and plot a wave",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().IntVar(&orbital, "n", config.DefaultOrbital, "orbital number (well)")
	runCmd.Flags().Float64Var(&energyShift, "shift", config.DefaultEnergyShift, "energy shift (linear)")
	runCmd.Flags().StringVar(&regime, "regime", config.DefaultRegime, "barrier regime: over or tunnel")
	runCmd.Flags().Float64Var(&xMin, "xmin", config.DefaultXMin, "airy window start")
	runCmd.Flags().Float64Var(&xMax, "xmax", config.DefaultXMax, "airy window end")
	runCmd.Flags().BoolVar(&withDensity, "density", false, "also compute |psi|^2")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "live oscillator animation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(engine.New(), frameRate, phaseDelta)
		},
	}
	animateCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
	animateCmd.Flags().Float64Var(&phaseDelta, "delta", config.DefaultPhaseDelta, "phase advance per tick")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range scenarioOrder {
				fmt.Fprintf(w, "%s\t%s\n", name, scenarioInfo[name])
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectrum and node analysis of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "export a saved run to SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "svg width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "svg height")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare integrators on the airy window",
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&xMin, "xmin", config.DefaultXMin, "airy window start")
	compareCmd.Flags().Float64Var(&xMax, "xmax", config.DefaultXMax, "airy window end")

	rootCmd.AddCommand(runCmd, animateCmd, scenariosCmd, presetsCmd, listCmd,
		plotCmd, analyzeCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario := args[0]

	if preset != "" {
		cfg := config.GetPreset(scenario, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenario))
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		scenario = cfg.Scenario
		applyConfig(cmd, cfg)
	}

	eng := engine.New()
	meta := store.RunMetadata{Scenario: scenario}

	switch scenario {
	case "well":
		if err := eng.CalculateSingleWave(orbital); err != nil {
			return err
		}
		meta.Orbital = orbital
	case "linear":
		eng.CalculateLinearPotentialWave(energyShift)
		meta.EnergyShift = energyShift
	case "airy":
		if err := eng.CalculateAiryWave(xMin, xMax); err != nil {
			return err
		}
		meta.XMin, meta.XMax = xMin, xMax
	case "oscillator":
		eng.CalculateBesselLikeWave()
		meta.Phase = eng.Phase()
	case "barrier":
		r, err := wavegen.ParseRegime(regime)
		if err != nil {
			return err
		}
		if err := eng.GenerateBarrierWaveFunction(r); err != nil {
			return err
		}
		meta.Regime = r.String()
	default:
		return fmt.Errorf("unknown scenario: %s (available: %v)", scenario, scenarioOrder)
	}

	caption := fmt.Sprintf("%s  psi(x)", scenario)
	fmt.Println(viz.Plot(eng.Wave(), plotWidth, plotHeight, caption))

	var density qm.SampleBuffer
	if withDensity {
		eng.CalculateProbabilityDensity()
		density = eng.Density()
		fmt.Println()
		fmt.Println(viz.Plot(density, plotWidth, plotHeight, fmt.Sprintf("%s  |psi(x)|^2", scenario)))
	}

	if scenario == "barrier" {
		g := eng.BarrierGeometry()
		fmt.Println(viz.Label(fmt.Sprintf("barrier: x0=%.0f l=%.0f", g.X0, g.L)))
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(meta, eng.Wave(), density)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

// applyConfig copies config values into the flag variables, letting explicit
// CLI flags win.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if cfg.Orbital != 0 && !cmd.Flags().Changed("n") {
		orbital = cfg.Orbital
	}
	if !cmd.Flags().Changed("shift") {
		energyShift = cfg.EnergyShift
	}
	if cfg.Regime != "" && !cmd.Flags().Changed("regime") {
		regime = cfg.Regime
	}
	if cfg.XMin != 0 && !cmd.Flags().Changed("xmin") {
		xMin = cfg.XMin
	}
	if cfg.XMax != 0 && !cmd.Flags().Changed("xmax") {
		xMax = cfg.XMax
	}
	if cfg.Density && !cmd.Flags().Changed("density") {
		withDensity = true
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSAMPLES\tDENSITY")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.HasDensity,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	wave, density, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(wave) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.Header("run " + meta.ID))
	fmt.Printf("scenario: %s\nsamples: %d\n\n", meta.Scenario, len(wave))

	fmt.Println(viz.Plot(wave, plotWidth, plotHeight, "psi(x)"))
	if density != nil {
		fmt.Println()
		fmt.Println(viz.Plot(density, plotWidth, plotHeight, "|psi(x)|^2"))
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	wave, _, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(wave) == 0 {
		return fmt.Errorf("no data to analyze")
	}

	ps := analysis.PowerSpectrum(wave)

	// The interesting structure sits in the low bins.
	low := ps
	if len(low) > 64 {
		low = low[:64]
	}
	graph := asciigraph.Plot(low,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (low bins)"),
	)
	fmt.Println(graph)
	fmt.Printf("\ndominant bin: %d\n", analysis.DominantBin(ps))
	fmt.Printf("interior nodes: %d\n", analysis.CountNodes(wave))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	wave, density, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta.Scenario, wave, density)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	wave, density, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"index", "psi"}
	if density != nil {
		header = append(header, "density")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, v := range wave {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}
		if density != nil {
			row = append(row, strconv.FormatFloat(density[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	wave, _, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	svg := store.WaveToSVG(wave, svgWidth, svgHeight, "#00ff00")
	if svg == "" {
		return fmt.Errorf("not enough samples for svg")
	}
	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	refs := []struct {
		x    float64
		want float64
	}{
		{-2.0, 0.2274074282},
		{-1.0, 0.5355608833},
		{0.0, wavegen.AiryAtZero},
		{1.0, 0.1352924163},
		{2.0, 0.0349241304},
	}

	methods := []integrators.Method{integrators.NewRK4(), integrators.NewEuler()}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tMAX ERROR\tRMS ERROR")

	for _, m := range methods {
		a := wavegen.NewAiry()
		a.Method = m

		buf, err := a.Generate(xMin, xMax)
		if err != nil {
			return err
		}

		h := (xMax - xMin) / float64(a.Samples-1)
		maxErr, sumSq, count := 0.0, 0.0, 0
		for _, r := range refs {
			if r.x < xMin || r.x > xMax {
				continue
			}
			i := int(math.Round((r.x - xMin) / h))
			e := math.Abs(buf[i]/a.Amplitude - r.want)
			if e > maxErr {
				maxErr = e
			}
			sumSq += e * e
			count++
		}
		if count == 0 {
			return fmt.Errorf("no reference abscissae inside [%g, %g]", xMin, xMax)
		}
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\n", m.Name(), maxErr, math.Sqrt(sumSq/float64(count)))
	}
	return w.Flush()
}
