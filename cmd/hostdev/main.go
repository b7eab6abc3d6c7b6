// Command hostdev runs a guest engine wasm module against the best
// available platform. It is the development harness for the wasm boundary:
// the same engine binary a page loads in the browser runs here for N ticks
// with full logging.
//
// Configuration comes from HOSTDEV_* environment variables, overridable by
// flags:
//
//	HOSTDEV_SURFACE=screen hostdev -engine game.wasm -ticks 600
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/webhost"
	"github.com/gogpu/webhost/hostlink"
	"github.com/gogpu/webhost/platform"
	"github.com/gogpu/webhost/platform/headless"
	"github.com/gogpu/webhost/platform/native"
)

type config struct {
	Engine   string        `env:"HOSTDEV_ENGINE"`
	Surface  string        `env:"HOSTDEV_SURFACE" envDefault:"screen"`
	Ticks    int           `env:"HOSTDEV_TICKS" envDefault:"600"`
	Interval time.Duration `env:"HOSTDEV_INTERVAL" envDefault:"16ms"`
	Width    int           `env:"HOSTDEV_WIDTH" envDefault:"1280"`
	Height   int           `env:"HOSTDEV_HEIGHT" envDefault:"720"`
	Verbose  bool          `env:"HOSTDEV_VERBOSE"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	flag.StringVar(&cfg.Engine, "engine", cfg.Engine, "engine wasm file")
	flag.StringVar(&cfg.Surface, "surface", cfg.Surface, "surface identifier")
	flag.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "number of ticks to run")
	flag.DurationVar(&cfg.Interval, "interval", cfg.Interval, "time between ticks")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "logical width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "logical height")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	flag.Parse()

	if cfg.Engine == "" {
		log.Fatal("no engine wasm: set -engine or HOSTDEV_ENGINE")
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	webhost.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("hostdev failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	ctx := context.Background()

	wasmBytes, err := os.ReadFile(cfg.Engine)
	if err != nil {
		return err
	}

	plat, err := platform.Default()
	if err != nil {
		return err
	}
	// The native and headless platforms both register surfaces
	// programmatically; make sure the requested one exists.
	ensureSurface(plat, cfg.Surface, float64(cfg.Width), float64(cfg.Height))

	host, err := webhost.New(
		webhost.WithPlatform(plat),
		webhost.WithLogicalSize(cfg.Width, cfg.Height),
	)
	if err != nil {
		return err
	}
	logger.Info("platform selected",
		"platform", plat.Name(),
		"gpu", plat.Probe().GPUName,
	)

	link, err := hostlink.New(ctx, host)
	if err != nil {
		return err
	}
	defer link.Close(ctx)

	inst, err := link.Compile(ctx, "engine", wasmBytes)
	if err != nil {
		return err
	}
	defer inst.Close(ctx)

	logger.Info("engine loaded", "file", cfg.Engine, "ticks", cfg.Ticks)

	start := time.Now()
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	for i := 0; i < cfg.Ticks; i++ {
		<-ticker.C
		if err := inst.Tick(ctx, float64(time.Since(start).Milliseconds())); err != nil {
			return err
		}
	}

	host.Teardown()
	logger.Info("run complete", "elapsed", time.Since(start))
	return nil
}

// ensureSurface registers the surface on platforms that take surfaces
// programmatically. The dom platform resolves surfaces from the page, so
// anything else is left alone.
func ensureSurface(plat platform.Platform, id string, w, h float64) {
	if _, ok := plat.SurfaceByID(id); ok {
		return
	}
	switch p := plat.(type) {
	case *native.Platform:
		p.AddSurface(id, w, h)
	case *headless.Platform:
		p.AddSurface(id, w, h)
	}
}
