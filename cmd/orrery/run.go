package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/server"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/san-kum/orrery/web"
)

func frameRate(cfgFPS int) int {
	if fps > 0 {
		return fps
	}
	return cfgFPS
}

func serve(cmd *cobra.Command, args []string) error {
	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := setup(ctx)
	if err != nil {
		return err
	}
	if addr != "" {
		s.cfg.Server.Addr = addr
	}
	rate := frameRate(s.cfg.Sim.FPS)

	hub := server.NewHub(s.logger)
	srv := server.New(server.Options{
		Addr:   s.cfg.Server.Addr,
		Bodies: s.bodies,
		Scene:  presentScene(s),
		Hub:    hub,
		Static: web.Content,
		Logger: s.logger,
	})

	errCh := make(chan error, 2)

	go func() {
		s.logger.Info("starting server", "addr", s.cfg.Server.Addr, "fps", rate, "seed", s.seed, "catalog", s.source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()

	go func() {
		if err := server.Animate(ctx, sim.New(s.state), rate, hub, s.offset()); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("frame loop: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		stop()
	}
	s.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown error", "error", err)
		if runErr == nil {
			runErr = err
		}
	}

	s.logger.Info("server stopped")
	return runErr
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	return viz.Run(sim.New(s.state), frameRate(s.cfg.Sim.FPS), s.offset())
}

func runHeadless(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := setup(ctx)
	if err != nil {
		return err
	}

	n := s.cfg.Sim.Frames
	if frames > 0 {
		n = frames
	}

	meta := storage.NewMetadata(s.state, s.seed, s.source)
	simulator := sim.New(s.state)
	for _, m := range metrics.Standard() {
		simulator.AddMetric(m)
	}

	start := time.Now()
	result, err := simulator.Run(ctx, sim.Config{Frames: n, Record: true})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, result)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("seed: %d\n", s.seed)
	fmt.Printf("frames: %d (%s)\n\n", result.Frames, elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(w, "%s\t%.6g\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if ensemble > 0 {
		return runEnsemble(ctx, s, n)
	}
	return nil
}

// runEnsemble repeats the run from other seeds and summarises each metric.
func runEnsemble(ctx context.Context, s *session, n int) error {
	e := sim.NewEnsemble(s.bodies, s.cfg.Sim.Speeds, metrics.Standard, ensemble, s.seed+1)
	results, err := e.Run(ctx, sim.Config{Frames: n})
	if err != nil {
		return err
	}

	values := make(map[string][]float64)
	for _, r := range results {
		for name, v := range r.Metrics {
			values[name] = append(values[name], v)
		}
	}

	fmt.Printf("\nensemble: %d seeds from %d\n\n", ensemble, s.seed+1)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tSTDDEV")
	for _, name := range sortedKeys(values) {
		mean, std := stat.MeanStdDev(values[name], nil)
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\n", name, mean, std)
	}
	return w.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
