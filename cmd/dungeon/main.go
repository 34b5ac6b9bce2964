// dungeoncrawl is the local terminal frontend. Build:
//
//	go build -o dungeoncrawl ./cmd/dungeon
//
// Usage:
//
//	./dungeoncrawl [-config dungeon.toml] [-seed N] [-builder simple|bsp] [-log file]
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/logger"
	"dungeoncrawl/internal/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("dungeoncrawl", flag.ContinueOnError)
	cfgPath := fs.String("config", "dungeon.toml", "path to the TOML config file (optional)")
	seed := fs.Int64("seed", 0, "generation seed, 0 picks one from the clock")
	builder := fs.String("builder", "", "map builder, overrides the config")
	logPath := fs.String("log", "", "write diagnostics to this file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *builder != "" {
		cfg.Dungeon.Builder = *builder
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// The screen owns stdout and stderr, so diagnostics go to a file or nowhere.
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer f.Close()
		out = f
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, out)

	g, err := game.New(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen.EnableMouse()
	defer screen.Fini()

	logger.For("main").WithField("seed", cfg.Seed).Info("game started")
	return term.Run(screen, g)
}
