package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aanishnithin07/FitForge/internal/cache"
	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server exposing /analyze, /leaderboard, /compare and /annotate,
plus /health, /metrics and /stats.

When cache.enabled is set, results are cached in Redis. If Redis cannot be
reached at startup the server runs without a cache.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, g, port)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides server.port)")
	return cmd
}

func runServe(cmd *cobra.Command, g *globalFlags, port int) error {
	rt, err := setup(cmd, g)
	if err != nil {
		return err
	}
	defer rt.close(context.Background())

	if cmd.Flags().Changed("port") {
		rt.cfg.Server.Port = port
		if err := rt.cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resultCache, err := cache.New(ctx, rt.cfg.Cache)
	if err != nil {
		rt.log.WithError(err).Warn("result cache unavailable, continuing without it", logger.Fields{"addr": rt.cfg.Cache.RedisAddr})
		resultCache = cache.Noop{}
	}
	defer func() { _ = resultCache.Close() }()

	srv, err := server.New(server.Options{
		Config:    rt.cfg,
		Analyzer:  rt.analyzer,
		Collector: rt.collector,
		Cache:     resultCache,
		Logger:    rt.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	go flushPeriodically(ctx, rt)
	return srv.Start(ctx)
}

// flushPeriodically writes session stats to the log until ctx is done
func flushPeriodically(ctx context.Context, rt *runtime) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := rt.collector.Flush(ctx); err != nil {
				rt.log.WithError(err).Warn("failed to flush stats", nil)
			}
		}
	}
}
