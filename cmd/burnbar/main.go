// Burnbar daemon - detects static screen regions and sweeps a moving bar
// over them so no pixel is lit with the same colour indefinitely.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/burnbar/overlay/internal/capture"
	"github.com/burnbar/overlay/internal/config"
	"github.com/burnbar/overlay/internal/display"
	"github.com/burnbar/overlay/internal/engine"
	"github.com/burnbar/overlay/internal/pointer"
)

func main() {
	// Setup structured logging. The terminal is the overlay surface, so
	// logs go to a file-less stderr only before the screen initializes.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	capSrc, err := capture.NewScreenSource()
	if err != nil {
		slog.Error("screen capture unavailable", "error", err)
		os.Exit(1)
	}

	devPtr, err := pointer.NewDeviceSource()
	if err != nil {
		slog.Error("pointer source unavailable", "error", err)
		os.Exit(1)
	}

	surface, err := display.NewTermSurface()
	if err != nil {
		slog.Error("overlay surface unavailable", "error", err)
		os.Exit(1)
	}
	defer surface.Close()

	// The preview surface runs at terminal-cell resolution; pointer
	// coordinates arrive in display pixels and need mapping.
	dispW, dispH, err := capSrc.DisplayBounds()
	if err != nil {
		slog.Error("display bounds unavailable", "error", err)
		os.Exit(1)
	}
	ptrSrc := pointer.Scaled(devPtr, dispW, dispH, surface.Size)

	eng, err := engine.New(cfg, surface, capSrc, ptrSrc)
	if err != nil {
		slog.Error("engine setup failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down...")
		cancel()
	}()

	if err := eng.Run(ctx); err != nil {
		surface.Close()
		slog.Error("engine error", "error", err)
		os.Exit(1)
	}

	surface.Close()
	stats := eng.Stats()
	slog.Info("shutdown complete",
		"captures", stats.Captures,
		"promoted", stats.PromotedPixels,
		"heals", stats.Heals,
		"redraws", stats.Redraws)
}
