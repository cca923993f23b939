package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/kalder/gravlab/internal/export"
	"github.com/kalder/gravlab/internal/gui"
	"github.com/kalder/gravlab/internal/integrators"
	"github.com/kalder/gravlab/internal/metrics"
	"github.com/kalder/gravlab/internal/scene"
	"github.com/kalder/gravlab/internal/sim"
	"github.com/kalder/gravlab/internal/storage"
	"github.com/kalder/gravlab/internal/tui"
	"github.com/kalder/gravlab/internal/viz"
)

var (
	dataDir    string
	sceneFile  string
	numBodies  int
	integrator string
	dt         float64
	gConst     float64
	softening  float64
	steps      int
	plotBody   int
	plotAxis   string
	outPath    string
	svgScale   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravlab",
		Short: "interactive gravitational n-body simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&sceneFile, "scene", "", "scene file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&numBodies, "bodies", 3, "number of bodies (preset)")
	rootCmd.PersistentFlags().StringVar(&integrator, "integrator", "euler", "integration scheme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and record it",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (overrides scene)")
	runCmd.Flags().Float64Var(&gConst, "g", 0, "gravitational constant (overrides scene)")
	runCmd.Flags().Float64Var(&softening, "softening", 0, "softening length (overrides scene)")
	runCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded body trajectory component",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotBody, "body", 0, "body index")
	plotCmd.Flags().StringVar(&plotAxis, "axis", "r", "component: x, y, vx, vy or r (distance from origin)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export recorded frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render recorded trajectories to an SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "trajectories.svg", "output file")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 8, "svg pixels per canvas dot")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scene.Names() {
				p := scene.Get(name)
				fmt.Printf("  %-10s %d bodies\n", name, len(p.Bodies))
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchTUI()
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed canvas mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(numBodies, integrator)
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportSVGCmd, presetsCmd, tuiCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildScene() (*scene.Scene, error) {
	if sceneFile != "" {
		return scene.Load(sceneFile)
	}
	return scene.ByCount(numBodies), nil
}

func launchTUI() error {
	sc, err := buildScene()
	if err != nil {
		return err
	}
	integ, err := integrators.New(integrator)
	if err != nil {
		return err
	}
	return tui.RunInteractive(sc, integ)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	sc, err := buildScene()
	if err != nil {
		return err
	}
	sc.Normalize()
	if cmd.Flags().Changed("dt") {
		sc.Dt = dt
	}
	if cmd.Flags().Changed("g") {
		sc.G = gConst
	}
	if cmd.Flags().Changed("softening") {
		sc.Softening = softening
	}

	integ, err := integrators.New(integrator)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.NewRunner(sc, integ)
	runner.AddMetric(metrics.NewEnergyDrift(sc.G, sc.Softening))
	runner.AddMetric(metrics.NewMomentumDrift())

	cfg := sim.Config{
		Dt:            sc.Dt,
		G:             sc.G,
		Softening:     sc.Softening,
		Steps:         steps,
		RecordFrames:  true,
		ValidateState: true,
	}

	fmt.Printf("running %s with %s...\n", sc.Name, integ.Name())
	start := time.Now()

	result, err := runner.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	runID, err := st.Save(sc.Name, integ.Name(), cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tBODIES\tSTEPS\tDT\tINTEGRATOR\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%s\t%s\n",
			r.ID, r.Scene, r.Bodies, r.Steps, r.Dt, r.Integrator,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, _, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run %s has no recorded frames", args[0])
	}

	col := plotBody * 4
	if col+3 >= len(frames[0]) {
		return fmt.Errorf("body %d not present in run", plotBody)
	}

	series := make([]float64, 0, len(frames))
	for _, row := range frames {
		x, y, vx, vy := row[col], row[col+1], row[col+2], row[col+3]
		switch plotAxis {
		case "x":
			series = append(series, x)
		case "y":
			series = append(series, y)
		case "vx":
			series = append(series, vx)
		case "vy":
			series = append(series, vy)
		case "r":
			series = append(series, math.Hypot(x, y))
		default:
			return fmt.Errorf("unknown axis: %s", plotAxis)
		}
	}

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(20),
		asciigraph.Width(100),
		asciigraph.Caption(fmt.Sprintf("body %d: %s", plotBody, plotAxis))))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	src, err := os.Open(st.CSVPath(args[0]))
	if err != nil {
		return err
	}
	defer src.Close()

	var dst io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("exported to %s\n", outPath)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, _, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run %s has no recorded frames", args[0])
	}

	// Fit the widest excursion onto the canvas.
	maxAbs := 1.0
	for _, row := range frames {
		for b := 0; b+1 < len(row); b += 4 {
			maxAbs = math.Max(maxAbs, math.Abs(row[b]))
			maxAbs = math.Max(maxAbs, math.Abs(row[b+1]))
		}
	}

	canvas := viz.NewCanvas(160, 50)
	scaleFit := (float64(canvas.PixelHeight())/2 - 2) / maxAbs

	bodies := len(frames[0]) / 4
	for b := 0; b < bodies; b++ {
		col := b * 4
		for i := 1; i < len(frames); i++ {
			canvas.DrawWorldLine(
				frames[i-1][col], frames[i-1][col+1],
				frames[i][col], frames[i][col+1], scaleFit)
		}
	}

	if err := export.WriteSVG(outPath, canvas, svgScale); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}
