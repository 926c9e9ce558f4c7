package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/wanted/internal/ai"
	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/hud"
	"github.com/udisondev/wanted/internal/scenario"
	"github.com/udisondev/wanted/internal/sim"
)

const (
	ConfigPath     = "config/wanted.yaml"
	ReportInterval = time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	scenarioPath := flag.String("scenario", os.Getenv("WANTED_SCENARIO"), "scenario script to drive the run")
	flag.Parse()

	if err := run(ctx, *scenarioPath); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, scenarioPath string) error {
	cfgPath := ConfigPath
	if p := os.Getenv("WANTED_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("wanted simulation starting",
		"log_level", cfg.LogLevel,
		"frame_rate", cfg.Loop.FrameRate,
		"max_wanted", cfg.Wanted.MaxLevel)

	var driver sim.Driver
	if scenarioPath != "" {
		script, err := scenario.Load(scenarioPath)
		if err != nil {
			return fmt.Errorf("loading scenario: %w", err)
		}
		slog.Info("scenario loaded",
			"name", script.Name,
			"events", len(script.Events),
			"duration", script.Duration)
		driver = script
	}

	s := sim.New(cfg)
	s.AttachAvatar(&headlessAvatar{})

	statusCh := make(chan hud.Status, 1)
	runner := sim.NewRunner(s, sim.NewFrameClock(cfg.Loop.MaxFrameDelta, nil), driver, cfg.Loop.FrameInterval())
	runner.OnFrame(func(_ sim.Frame, st hud.Status) {
		// Drop the stale snapshot if the reporter has not picked it up.
		select {
		case <-statusCh:
		default:
		}
		statusCh <- st
	})

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		defer stop()
		if err := runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("simulation loop: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		reportStatus(runCtx, statusCh)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation error: %w", err)
	}

	slog.Info("wanted simulation stopped",
		"frames", s.Frames(),
		"deaths", s.Player().Deaths(),
		"hits", s.Hits())
	return nil
}

// reportStatus logs the latest HUD snapshot once per ReportInterval.
func reportStatus(ctx context.Context, statusCh <-chan hud.Status) {
	ticker := time.NewTicker(ReportInterval)
	defer ticker.Stop()

	var latest hud.Status
	var have bool
	for {
		select {
		case <-ctx.Done():
			return
		case st := <-statusCh:
			latest, have = st, true
		case <-ticker.C:
			if !have {
				continue
			}
			slog.Info("status",
				"health", latest.Health,
				"max_health", latest.MaxHealth,
				"color", latest.HealthColor,
				"dead", latest.Dead,
				"respawn_in", latest.RespawnIn,
				"stars", latest.Stars,
				"pursuers", len(latest.Blips))
		}
	}
}

// headlessAvatar stands in for the renderable when running without a display.
type headlessAvatar struct {
	position mgl64.Vec3
	facing   float64
}

func (a *headlessAvatar) SetTransform(pos mgl64.Vec3, facing float64) {
	a.position = pos
	a.facing = facing
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
