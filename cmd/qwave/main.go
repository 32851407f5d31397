package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ahertz/qwave/internal/analysis"
	"github.com/ahertz/qwave/internal/config"
	"github.com/ahertz/qwave/internal/export"
	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/hamiltonian"
	"github.com/ahertz/qwave/internal/metrics"
	"github.com/ahertz/qwave/internal/potential"
	"github.com/ahertz/qwave/internal/propagate"
	"github.com/ahertz/qwave/internal/spectral"
	"github.com/ahertz/qwave/internal/storage"
	"github.com/ahertz/qwave/internal/tui"
	"github.com/ahertz/qwave/internal/wavepacket"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string

	gridN    int
	xmin     float64
	xmax     float64
	rmax     float64
	states   int
	lQuantum int
	charge   float64

	dt     float64
	steps  int
	stride int

	packetCenter   float64
	packetSigma    float64
	packetMomentum float64

	svgOut string
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)

	rootCmd := &cobra.Command{
		Use:   "qwave",
		Short: "1D quantum mechanics lab: stationary states and wave packet propagation",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = log.Level(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qwave", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	solveCmd := &cobra.Command{
		Use:   "solve [potential]",
		Short: "solve for stationary states",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addGridFlags(solveCmd)
	solveCmd.Flags().IntVar(&states, "states", config.DefaultStates, "number of states to report")
	addMergeFlags(solveCmd)
	solveCmd.Flags().StringVar(&svgOut, "svg", "", "write eigenfunctions to an SVG file")

	hydrogenCmd := &cobra.Command{
		Use:   "hydrogen",
		Short: "solve the radial hydrogen problem and compare with the Bohr spectrum",
		RunE:  runHydrogen,
	}
	hydrogenCmd.Flags().IntVar(&gridN, "n", 2000, "radial grid points")
	hydrogenCmd.Flags().Float64Var(&rmax, "rmax", 100, "radial extent (bohr)")
	hydrogenCmd.Flags().IntVar(&lQuantum, "l", 0, "orbital angular momentum")
	hydrogenCmd.Flags().IntVar(&states, "states", 4, "number of states to report")
	hydrogenCmd.Flags().Float64Var(&charge, "z", 1.0, "nuclear charge")

	evolveCmd := &cobra.Command{
		Use:   "evolve [potential]",
		Short: "propagate a gaussian packet with Crank-Nicolson",
		Args:  cobra.ExactArgs(1),
		RunE:  runEvolve,
	}
	addGridFlags(evolveCmd)
	addPacketFlags(evolveCmd)
	addTimeFlags(evolveCmd)
	addMergeFlags(evolveCmd)

	liveCmd := &cobra.Command{
		Use:   "live [potential]",
		Short: "propagate with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	addPacketFlags(liveCmd)
	addTimeFlags(liveCmd)
	addMergeFlags(liveCmd)

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [potential]",
		Short: "momentum distribution of a packet after propagation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpectrum,
	}
	addGridFlags(spectrumCmd)
	addPacketFlags(spectrumCmd)
	addTimeFlags(spectrumCmd)
	addMergeFlags(spectrumCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [potential]",
		Short: "list available presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for potential: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's data table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(solveCmd, hydrogenCmd, evolveCmd, liveCmd, spectrumCmd,
		listCmd, plotCmd, presetsCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&gridN, "n", config.DefaultN, "grid points")
	cmd.Flags().Float64Var(&xmin, "xmin", config.DefaultXmin, "domain lower bound")
	cmd.Flags().Float64Var(&xmax, "xmax", config.DefaultXmax, "domain upper bound")
}

func addPacketFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&packetCenter, "center", -10.0, "packet center")
	cmd.Flags().Float64Var(&packetSigma, "sigma", config.DefaultSigma, "packet width")
	cmd.Flags().Float64Var(&packetMomentum, "momentum", 2.0, "packet momentum")
}

func addTimeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of timesteps")
	cmd.Flags().IntVar(&stride, "stride", config.DefaultStride, "record every n-th frame")
}

func addMergeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// mergeConfig resolves effective settings: preset, then config file, then
// explicit CLI flags, later sources winning.
func mergeConfig(cmd *cobra.Command, name string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Potential = name

	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		*cfg = *p
		cfg.FillDefaults()
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Potential = name
		cfg.FillDefaults()
	}

	if cmd.Flags().Changed("n") {
		cfg.Grid.N = gridN
	}
	if cmd.Flags().Changed("xmin") {
		cfg.Grid.Xmin = xmin
	}
	if cmd.Flags().Changed("xmax") {
		cfg.Grid.Xmax = xmax
	}
	if cmd.Flags().Changed("states") {
		cfg.States = states
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("stride") {
		cfg.Stride = stride
	}
	if cmd.Flags().Changed("center") {
		cfg.Packet.Center = packetCenter
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Packet.Sigma = packetSigma
	}
	if cmd.Flags().Changed("momentum") {
		cfg.Packet.Momentum = packetMomentum
	}
	return cfg, nil
}

// setup builds the grid, potential and Hamiltonian for a merged config.
func setup(cfg *config.Config) (*grid.Grid, potential.Potential, *hamiltonian.Hamiltonian, error) {
	pot, err := potential.New(cfg.Potential, cfg.Params)
	if err != nil {
		return nil, nil, nil, err
	}

	var g *grid.Grid
	var h *hamiltonian.Hamiltonian
	if cfg.Potential == "coulomb" {
		r := cfg.Grid.Rmax
		if r == 0 {
			r = 100
		}
		g, err = grid.NewRadial(cfg.Grid.N, r)
		if err != nil {
			return nil, nil, nil, err
		}
		h, err = hamiltonian.BuildRadial(g, pot, cfg.L)
	} else {
		g, err = grid.New(cfg.Grid.N, cfg.Grid.Xmin, cfg.Grid.Xmax)
		if err != nil {
			return nil, nil, nil, err
		}
		h, err = hamiltonian.Build(g, pot)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return g, pot, h, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := mergeConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, pot, h, err := setup(cfg)
	if err != nil {
		return err
	}

	log.Debug().Int("n", g.Len()).Str("potential", cfg.Potential).Msg("diagonalising")
	start := time.Now()
	pairs, err := spectral.SolveK(h, cfg.States)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.Debug().Dur("elapsed", elapsed).Msg("diagonalisation done")

	ref, hasRef := pot.(potential.ReferenceSpectrum)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if hasRef {
		fmt.Fprintln(w, "LEVEL\tENERGY\tANALYTIC\tREL ERR")
	} else {
		fmt.Fprintln(w, "LEVEL\tENERGY")
	}
	for i, p := range pairs {
		if hasRef {
			exact := ref.ReferenceEnergy(i)
			relErr := 0.0
			if exact != 0 {
				relErr = (p.Energy - exact) / exact
			}
			fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%+.2e\n", i, p.Energy, exact, relErr)
		} else {
			fmt.Fprintf(w, "%d\t%.6f\n", i, p.Energy)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if svgOut != "" {
		curves := make([]export.Curve, len(pairs))
		colors := []string{"#00ff88", "#00ccff", "#ffcc00", "#ff66aa", "#aaff00", "#cc88ff"}
		for i, p := range pairs {
			curves[i] = export.Curve{
				Label: fmt.Sprintf("psi%d", i),
				X:     g.Points,
				Y:     p.State,
				Color: colors[i%len(colors)],
			}
		}
		if err := os.WriteFile(svgOut, []byte(export.CurvesToSVG(curves, 900, 500)), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgOut)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveSpectrum(storage.RunMetadata{
		Potential: cfg.Potential,
		N:         g.Len(), Xmin: g.Min, Xmax: g.Max, Dx: g.Dx,
	}, g.Points, pairs)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s  (%v)\n", runID, elapsed)
	return nil
}

func runHydrogen(cmd *cobra.Command, args []string) error {
	pot := potential.NewCoulomb()
	pot.Z = charge
	if err := pot.Validate(); err != nil {
		return err
	}

	g, err := grid.NewRadial(gridN, rmax)
	if err != nil {
		return err
	}
	h, err := hamiltonian.BuildRadial(g, pot, lQuantum)
	if err != nil {
		return err
	}

	log.Debug().Int("n", g.Len()).Int("l", lQuantum).Msg("diagonalising radial hamiltonian")
	pairs, err := spectral.SolveK(h, states)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tE (HARTREE)\tE (EV)\tBOHR (EV)\tREL ERR")
	for i, p := range pairs {
		n := i + 1 + lQuantum // principal quantum number
		exact := -pot.Z * pot.Z / (2 * float64(n) * float64(n))
		relErr := (p.Energy - exact) / exact
		fmt.Fprintf(w, "%d\t%.6f\t%.4f\t%.4f\t%+.2e\n",
			n, p.Energy, p.Energy*potential.HartreeEV, exact*potential.HartreeEV, relErr)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveSpectrum(storage.RunMetadata{
		Potential: "coulomb",
		N:         g.Len(), Xmin: g.Min, Xmax: g.Max, Dx: g.Dx, L: lQuantum,
	}, g.Points, pairs)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func buildPacket(cfg *config.Config) (*wavepacket.Gaussian, error) {
	packet := &wavepacket.Gaussian{
		Center:   cfg.Packet.Center,
		Sigma:    cfg.Packet.Sigma,
		Momentum: cfg.Packet.Momentum,
	}
	return packet, packet.Validate()
}

// transmissionThreshold picks the far edge of the barrier when there is one,
// otherwise the middle of the domain.
func transmissionThreshold(pot potential.Potential, g *grid.Grid) float64 {
	if b, ok := pot.(*potential.Barrier); ok {
		return b.Xmin + b.Width
	}
	return (g.Min + g.Max) / 2
}

func runEvolve(cmd *cobra.Command, args []string) error {
	cfg, err := mergeConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, pot, h, err := setup(cfg)
	if err != nil {
		return err
	}
	packet, err := buildPacket(cfg)
	if err != nil {
		return err
	}
	psi0, err := packet.Sample(g)
	if err != nil {
		return err
	}

	prop := propagate.New(h)
	prop.AddMetric(metrics.NewNormDrift(g))
	prop.AddMetric(metrics.NewTransmission(g, transmissionThreshold(pot, g)))
	prop.AddMetric(metrics.NewPosition(g))

	log.Debug().Int("steps", cfg.Steps).Float64("dt", cfg.Dt).Msg("propagating")
	start := time.Now()
	result, err := prop.Run(context.Background(), psi0, propagate.Config{
		Dt: cfg.Dt, Steps: cfg.Steps, Stride: cfg.Stride, ValidateState: true,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("propagated %d steps in %v (%d frames recorded)\n",
		result.StepsTaken, elapsed, len(result.Frames))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveEvolution(storage.RunMetadata{
		Potential: cfg.Potential,
		N:         g.Len(), Xmin: g.Min, Xmax: g.Max, Dx: g.Dx,
		Dt: cfg.Dt, Steps: cfg.Steps,
	}, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := mergeConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, _, h, err := setup(cfg)
	if err != nil {
		return err
	}
	packet, err := buildPacket(cfg)
	if err != nil {
		return err
	}
	psi0, err := packet.Sample(g)
	if err != nil {
		return err
	}
	cn, err := propagate.NewCrankNicolson(h, cfg.Dt)
	if err != nil {
		return err
	}
	return tui.Run(cfg.Potential, g, cn, psi0)
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := mergeConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, _, h, err := setup(cfg)
	if err != nil {
		return err
	}
	packet, err := buildPacket(cfg)
	if err != nil {
		return err
	}
	psi0, err := packet.Sample(g)
	if err != nil {
		return err
	}

	prop := propagate.New(h)
	result, err := prop.Run(context.Background(), psi0, propagate.Config{
		Dt: cfg.Dt, Steps: cfg.Steps, Stride: cfg.Steps, ValidateState: true,
	})
	if err != nil {
		return err
	}
	final := result.Frames[len(result.Frames)-1]

	ks, density, err := analysis.MomentumDensity(final, g)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(density,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("momentum density, k in [%.2f, %.2f]", ks[0], ks[len(ks)-1])),
	)
	fmt.Println(graph)

	k, err := analysis.DominantMomentum(final, g)
	if err != nil {
		return err
	}
	fmt.Printf("\ndominant momentum: %.3f (initial packet: %.3f)\n", k, cfg.Packet.Momentum)
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
	fmt.Fprintln(w, "ID\tKIND\tPOTENTIAL\tTIME\tN\tDX")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.4f\n",
			run.ID, run.Kind, run.Potential,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N, run.Dx)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	header, rows, err := st.LoadData(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nkind: %s\npotential: %s\n\n", meta.ID, meta.Kind, meta.Potential)

	switch meta.Kind {
	case storage.KindSpectrum:
		// Columns after x are eigenfunctions.
		maxPlots := 4
		for col := 1; col < len(header) && col <= maxPlots; col++ {
			data := make([]float64, len(rows))
			for i, row := range rows {
				data[i] = row[col]
			}
			caption := header[col]
			if col-1 < len(meta.Energies) {
				caption = fmt.Sprintf("%s  E=%.4f", header[col], meta.Energies[col-1])
			}
			fmt.Println(asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(caption),
			))
			fmt.Println()
		}
	case storage.KindEvolution:
		// Final frame density, then norm history.
		last := rows[len(rows)-1]
		fmt.Println(asciigraph.Plot(last[2:],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("|psi|^2 at t=%.3f", last[0])),
		))
		fmt.Println()
		norms := make([]float64, len(rows))
		for i, row := range rows {
			norms[i] = row[1]
		}
		fmt.Println(asciigraph.Plot(norms,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("probability norm per frame"),
		))
	default:
		return fmt.Errorf("unknown run kind: %s", meta.Kind)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	header, rows, err := st.LoadData(args[0])
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, meta, header, rows)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, rows, err := st.LoadData(args[0])
	if err != nil {
		return err
	}
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, 0, len(header))
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', 12, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
