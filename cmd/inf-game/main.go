// Package main is the entry point for inf-game.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tiberiumdvk/inf-game/internal/config"
	"github.com/tiberiumdvk/inf-game/internal/devtools"
	"github.com/tiberiumdvk/inf-game/internal/game"
	"github.com/tiberiumdvk/inf-game/internal/hud"
	"github.com/tiberiumdvk/inf-game/internal/telemetry"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/window"
)

// options are the command line flags.
type options struct {
	configPath  string
	palettePath string
	renderer    string
	seed        int64
	// seedSet is true when -seed was given, including -seed 0.
	seedSet bool
	dump    bool
	// out receives the -dump output.
	out io.Writer
}

func parseFlags(args []string) (options, error) {
	opts := options{out: os.Stdout}
	fs := flag.NewFlagSet("inf-game", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to configuration file")
	fs.Int64Var(&opts.seed, "seed", 0, "dungeon seed, overrides game.seed (0 picks a time-based seed)")
	fs.StringVar(&opts.renderer, "renderer", "", "frontend: terminal or window, overrides game.renderer")
	fs.StringVar(&opts.palettePath, "palette", "", "path to a palette YAML replacing the built-in one")
	fs.BoolVar(&opts.dump, "dump", false, "print the first level to stdout and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	return opts, nil
}

// applyFlags overrides loaded settings with the flags that were given.
func applyFlags(cfg *config.Config, opts options) error {
	if opts.seedSet {
		cfg.Game.Seed = opts.seed
	}
	if opts.renderer != "" {
		cfg.Game.Renderer = opts.renderer
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid flags: %w", err)
		}
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err := applyFlags(&cfg, opts); err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := telemetry.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, opts, logger)
	stop()
	if err != nil {
		logger.Fatal("inf-game failed", zap.Error(err))
	}
	_ = logger.Sync()
}

// run wires the game together and blocks until it ends. Tracing is flushed
// before it returns.
func run(ctx context.Context, cfg config.Config, opts options, logger *zap.Logger) error {
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("shutting down telemetry", zap.Error(err))
			}
		}()
	}

	palette, err := loadPalette(opts.palettePath)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	catalog, err := hud.New(cfg.Game.Locale)
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}

	scene := game.NewScene(game.FromConfig(cfg), palette, logger)
	logger.Info("starting inf-game",
		zap.String("renderer", cfg.Game.Renderer),
		zap.Int64("seed", scene.Seed()),
		zap.String("locale", catalog.Locale()),
	)

	if opts.dump {
		scene.Create(ctx)
		if err := devtools.DumpMap(opts.out, scene.Ground(), scene.Stuff(), palette, isTerminal(opts.out)); err != nil {
			return fmt.Errorf("dumping map: %w", err)
		}
		return nil
	}

	switch cfg.Game.Renderer {
	case config.RendererWindow:
		if err := window.New(ctx, scene, catalog, cfg.Window, logger).Run(); err != nil {
			return fmt.Errorf("window frontend: %w", err)
		}
	default:
		g, err := game.New(scene, catalog, logger)
		if err != nil {
			return fmt.Errorf("initializing terminal: %w", err)
		}
		if err := g.Run(ctx); err != nil {
			return fmt.Errorf("terminal frontend: %w", err)
		}
	}
	return nil
}

// isTerminal reports whether w is a terminal, so the dump can use colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// loadPalette returns the built-in palette, or the one at path when set.
func loadPalette(path string) (*tiles.Palette, error) {
	if path == "" {
		return tiles.LoadPalette(tiles.DefaultPaletteFile)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return tiles.ParsePalette(content)
}
