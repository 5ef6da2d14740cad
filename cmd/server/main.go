package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/bootstrap"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/walstream"
	grpc_service "github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/pkg/wheel-grpc-service"
	http_service "github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/pkg/wheel-http-service"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "./samples/config.yaml", "path to the YAML config")
	streamJournal := flag.Bool("stream-journal", false, "log every flushed journal entry")
	flag.Parse()

	cfg, err := (&config.ConfigImpl{}).Load(*configPath)
	if err != nil {
		fmt.Println("Config error:", err)
		os.Exit(1)
	}

	opt := bootstrap.Options{}
	if *streamJournal {
		opt.Streamer = walstream.NewLogStreamer(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}
	sys, u, err := bootstrap.Open(cfg, opt)
	if err != nil {
		fmt.Println("System startup error:", err)
		os.Exit(1)
	}
	logger := u.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP listening.", "addr", cfg.HTTPAddr)
		return http_service.ListenAndServe(gctx, sys, cfg.HTTPAddr, logger)
	})
	g.Go(func() error {
		logger.Info("gRPC listening.", "addr", cfg.GRPCAddr)
		return grpc_service.ListenAndServe(gctx, sys, cfg.GRPCAddr)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error.", "error", err)
	}

	logger.Info("Shutting down gracefully...")
	sys.Stop()
	logger.Info("Shutdown complete.")
}
