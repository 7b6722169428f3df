package cli

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/cruzr/cruzr/internal/log"
	"github.com/cruzr/cruzr/internal/metrics"
	"github.com/cruzr/cruzr/internal/tui"
)

func runTUI(ctx context.Context, opts *RootOptions) error {
	logOpts := *opts.Log
	logOpts.OutputPaths = tuiLogPaths(logOpts.OutputPaths)
	logOpts.Name = "cruzr"
	logger, err := log.NewLogger(&logOpts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := OpenCatalog(ctx, opts.Config.Catalog.Source)
	if err != nil {
		return err
	}

	m := metrics.New()
	app, err := tui.New(tui.Options{
		Store:    store,
		Defaults: opts.Config.FilterDefaults(),
		Timings:  opts.Config.Timings(),
		Logger:   logger,
		Metrics:  m,
	})
	if err != nil {
		return err
	}
	defer app.Close()
	logger.Info("session started", "source", displaySource(opts.Config.Catalog.Source), "vehicles", store.Len())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if addr := opts.Config.Metrics.Addr; addr != "" {
		g.Go(func() error {
			logger.Info("serving metrics", "addr", addr)
			return m.Serve(ctx, addr)
		})
	}
	g.Go(func() error {
		defer cancel()
		_, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	})
	return g.Wait()
}

// tuiLogPaths moves terminal outputs to a file; the terminal belongs to the
// program while it runs.
func tuiLogPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "stderr" || p == "stdout" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		dir = filepath.Join(dir, "cruzr")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			out = append(out, filepath.Join(dir, "cruzr.log"))
		}
	}
	return out
}
