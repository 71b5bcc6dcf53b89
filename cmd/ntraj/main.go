package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/okean-lab/ntraj/internal/config"
	"github.com/okean-lab/ntraj/internal/diag"
	"github.com/okean-lab/ntraj/internal/eos"
	"github.com/okean-lab/ntraj/internal/interp"
	"github.com/okean-lab/ntraj/internal/ntp"
	"github.com/okean-lab/ntraj/internal/ocean"
	"github.com/okean-lab/ntraj/internal/section"
	"github.com/okean-lab/ntraj/internal/storage"
	"github.com/okean-lab/ntraj/internal/viz"
)

var (
	dataDir    string
	configFile string
	presetName string

	eosName    string
	interpName string
	tolP       float64
	grav       float64
	rhoC       float64

	p0        float64
	s0        float64
	t0        float64
	useBottle bool

	sectionFile string
	numCasts    int
	numLevels   int

	plotVar string

	// connect flags
	castIndex int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ntraj",
		Short: "neutral trajectory calculator for hydrographic sections",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ntraj", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute and store a neutral trajectory",
		RunE:  runTrajectory,
	}
	addEngineFlags(runCmd)
	runCmd.Flags().Float64Var(&s0, "s0", 0, "pinning bottle salinity")
	runCmd.Flags().Float64Var(&t0, "t0", 0, "pinning bottle temperature")
	runCmd.Flags().BoolVar(&useBottle, "bottle", false, "pin to the explicit bottle (--s0, --t0, --p0)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")

	connectCmd := &cobra.Command{
		Use:   "connect",
		Short: "single bottle-to-cast neutral connection",
		RunE:  runConnect,
	}
	addEngineFlags(connectCmd)
	connectCmd.Flags().Float64Var(&s0, "s0", 35.0, "bottle salinity")
	connectCmd.Flags().Float64Var(&t0, "t0", 10.0, "bottle temperature")
	connectCmd.Flags().IntVar(&castIndex, "cast", 1, "target cast index in the section")
	connectCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotVar, "var", "p", "variable to plot: p, s, or t")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportMeta,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print full run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a trajectory form cast by cast",
		RunE:  runLive,
	}
	addEngineFlags(liveCmd)
	liveCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	castsCmd := &cobra.Command{
		Use:   "casts",
		Short: "summarize the section's casts",
		RunE:  summarizeCasts,
	}
	addEngineFlags(castsCmd)
	castsCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")

	rootCmd.AddCommand(runCmd, connectCmd, listCmd, plotCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, liveCmd, presetsCmd, castsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&eosName, "eos", config.DefaultEOS, "equation of state (jmd95, linear)")
	cmd.Flags().StringVar(&interpName, "interp", config.DefaultInterp, "interpolation (linear, pchip)")
	cmd.Flags().Float64Var(&tolP, "tol", config.DefaultTolP, "pressure tolerance for root finding")
	cmd.Flags().Float64Var(&grav, "grav", 0, "gravitational acceleration (Boussinesq, with --rho-c)")
	cmd.Flags().Float64Var(&rhoC, "rho-c", 0, "reference density (Boussinesq, with --grav)")
	cmd.Flags().Float64Var(&p0, "p0", config.DefaultP0, "starting pressure/depth")
	cmd.Flags().StringVar(&sectionFile, "section", "", "section CSV file")
	cmd.Flags().IntVar(&numCasts, "casts", 0, "number of synthetic casts")
	cmd.Flags().IntVar(&numLevels, "levels", 0, "number of synthetic levels")
}

// resolveConfig layers preset, config file, and flags into one Config.
// Flags the user set explicitly win over both.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
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
	if flags.Changed("eos") {
		cfg.EOS = eosName
	}
	if flags.Changed("interp") {
		cfg.Interp = interpName
	}
	if flags.Changed("tol") {
		cfg.TolP = tolP
	}
	if flags.Changed("grav") {
		cfg.Grav = grav
	}
	if flags.Changed("rho-c") {
		cfg.RhoC = rhoC
	}
	if flags.Changed("p0") {
		cfg.P0 = p0
	}
	if flags.Changed("s0") {
		cfg.S0 = s0
	}
	if flags.Changed("t0") {
		cfg.T0 = t0
	}
	if flags.Changed("bottle") {
		cfg.UseBottle = useBottle
	}
	if flags.Changed("section") {
		cfg.Section.File = sectionFile
		cfg.Section.Preset = ""
	}
	if flags.Changed("casts") {
		cfg.Section.Casts = numCasts
	}
	if flags.Changed("levels") {
		cfg.Section.Levels = numLevels
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildOptions(cfg *config.Config) (ntp.Options, error) {
	eosFn, err := eos.Make(cfg.EOS, cfg.Grav, cfg.RhoC)
	if err != nil {
		return ntp.Options{}, err
	}
	interpFn, err := interp.Make(cfg.Interp)
	if err != nil {
		return ntp.Options{}, err
	}
	return ntp.Options{EOS: eosFn, Interp: interpFn, TolP: cfg.TolP}, nil
}

func sectionName(cfg *config.Config) string {
	if cfg.Section.File != "" {
		return "csv"
	}
	if cfg.Section.Preset != "" {
		return cfg.Section.Preset
	}
	return "subtropical"
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opt, err := buildOptions(cfg)
	if err != nil {
		return err
	}
	casts, err := section.FromConfig(cfg.Section)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("computing trajectory through %d casts...\n", len(casts))
	start := time.Now()

	var tr ocean.Trajectory
	if cfg.UseBottle {
		tr = ntp.TrajectoryFrom(ocean.Bottle{S: cfg.S0, T: cfg.T0, P: cfg.P0}, casts, opt)
	} else {
		tr = ntp.Trajectory(casts, cfg.P0, opt)
	}

	elapsed := time.Since(start)
	diags := diag.Compute(tr, opt.EOS)

	runID, err := st.Save(storage.RunMetadata{
		Section:     sectionName(cfg),
		EOS:         cfg.EOS,
		Interp:      cfg.Interp,
		TolP:        cfg.TolP,
		P0:          cfg.P0,
		Diagnostics: diags,
	}, tr)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("connected: %d / %d casts\n", tr.NConnected(), len(tr))
	fmt.Println("\ndiagnostics:")
	for name, val := range diags {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runConnect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opt, err := buildOptions(cfg)
	if err != nil {
		return err
	}
	casts, err := section.FromConfig(cfg.Section)
	if err != nil {
		return err
	}
	if castIndex < 0 || castIndex >= len(casts) {
		return fmt.Errorf("cast index %d out of range (section has %d casts)", castIndex, len(casts))
	}

	b := ocean.Bottle{S: cfg.S0, T: cfg.T0, P: cfg.P0}
	got := ntp.BottleToCast(b, casts[castIndex], opt)

	if !got.Valid() {
		fmt.Printf("no neutral connection on cast %d (incrop/outcrop or too little data)\n", castIndex)
		return nil
	}
	fmt.Printf("cast %d: s=%.6f t=%.6f p=%.4f\n", castIndex, got.S, got.T, got.P)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSECTION\tTIME\tEOS\tINTERP\tCONNECTED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			run.ID,
			run.Section,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.EOS,
			run.Interp,
			run.Connected,
			run.Casts,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	n := tr.NConnected()
	if n == 0 {
		return fmt.Errorf("no connected points to plot")
	}

	var data []float64
	var caption string
	switch plotVar {
	case "p":
		data = tr.Pressures()[:n]
		caption = "pressure along trajectory"
	case "s":
		data = tr.Salinities()[:n]
		caption = "salinity along trajectory"
	case "t":
		data = tr.Temperatures()[:n]
		caption = "temperature along trajectory"
	default:
		return fmt.Errorf("unknown variable %q (want p, s, or t)", plotVar)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("section: %s  eos: %s  interp: %s\n", meta.Section, meta.EOS, meta.Interp)
	fmt.Printf("connected: %d / %d casts\n\n", meta.Connected, meta.Casts)

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func exportMeta(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(*meta, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"cast", "s", "t", "p"}); err != nil {
		return err
	}
	for i, b := range tr {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(b.S, 'f', 6, 64),
			strconv.FormatFloat(b.T, 'f', 6, 64),
			strconv.FormatFloat(b.P, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(*meta, tr)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opt, err := buildOptions(cfg)
	if err != nil {
		return err
	}
	casts, err := section.FromConfig(cfg.Section)
	if err != nil {
		return err
	}
	return viz.Run(casts, cfg.P0, opt)
}

func summarizeCasts(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	casts, err := section.FromConfig(cfg.Section)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CAST\tLEVELS\tVALID\tBOTTOM\tSURFACE T\tSURFACE S")
	for j, c := range casts {
		n := c.NGood()
		bottom := "-"
		surfT, surfS := "-", "-"
		if n > 0 {
			if b := c.Bottom(); !math.IsNaN(b) {
				bottom = fmt.Sprintf("%.1f", b)
			}
			surfT = fmt.Sprintf("%.3f", c.T[0])
			surfS = fmt.Sprintf("%.3f", c.S[0])
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\n", j, c.Len(), n, bottom, surfT, surfS)
	}
	return w.Flush()
}
