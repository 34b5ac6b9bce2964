// mapgen prints generated dungeon levels to the terminal, optionally with
// every intermediate snapshot the builder recorded.
//
//	go run ./cmd/mapgen -builder bsp -seed 7 -depth 3 -history
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/generate"
	"dungeoncrawl/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	builder string
	seed    int64
	depth   int
	history bool
	spawns  bool
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to the TOML config file (optional)")
	var opt options
	fs.StringVar(&opt.builder, "builder", "", "map builder, overrides the config ("+fmt.Sprint(generate.Names())+")")
	fs.Int64Var(&opt.seed, "seed", 1, "generation seed")
	fs.IntVar(&opt.depth, "depth", 1, "dungeon depth")
	fs.BoolVar(&opt.history, "history", false, "print every recorded generation step")
	fs.BoolVar(&opt.spawns, "spawns", true, "mark planned monster and item spawns")
	noColor := fs.Bool("no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if opt.builder == "" {
		opt.builder = cfg.Dungeon.Builder
	}
	if opt.depth < 1 {
		return errors.Errorf("depth must be at least 1, got %d", opt.depth)
	}
	return generateAndPrint(out, cfg.Dungeon, opt)
}

func generateAndPrint(out io.Writer, d config.Dungeon, opt options) error {
	rng := rand.New(rand.NewSource(opt.seed))
	b, err := generate.New(opt.builder, generate.Params{
		Width:         d.Width,
		Height:        d.Height,
		MaxRooms:      d.MaxRooms,
		MinSize:       d.MinRoomSize,
		MaxSize:       d.MaxRoomSize,
		MaxAttempts:   d.MaxAttempts,
		RecordHistory: opt.history,
	}, rng)
	if err != nil {
		return err
	}
	m, start, err := b.Build(opt.depth)
	if err != nil {
		return err
	}

	if opt.history {
		frames := b.History()
		for i, frame := range frames {
			fmt.Fprintf(out, "step %d/%d\n", i+1, len(frames))
			drawMap(out, frame, nil)
		}
	}

	marks := map[gamemap.Point]mark{start: {"@", color.New(color.FgHiYellow, color.Bold)}}
	if opt.spawns {
		pop := generate.Populate(m, generate.PopulateConfig{
			Depth:       opt.depth,
			MaxMonsters: d.MaxMonsters,
			MaxItems:    d.MaxItems,
			Monsters:    generate.MonsterTable,
			Items:       generate.ItemTable,
			Rand:        rng,
		})
		for _, s := range pop.Monsters {
			marks[gamemap.Point{X: s.X, Y: s.Y}] = mark{s.Entry.Glyph, color.New(color.FgRed)}
		}
		for _, s := range pop.Items {
			marks[gamemap.Point{X: s.X, Y: s.Y}] = mark{s.Entry.Glyph, color.New(color.FgCyan)}
		}
	}

	fmt.Fprintf(out, "%s depth %d seed %d: %d rooms, %d floor tiles\n",
		opt.builder, opt.depth, opt.seed, len(m.Rooms), m.Count(gamemap.Floor))
	drawMap(out, m, marks)
	return nil
}

type mark struct {
	glyph string
	c     *color.Color
}

var (
	wallColor   = color.New(color.FgHiBlack)
	floorColor  = color.New(color.FgWhite)
	stairsColor = color.New(color.FgHiMagenta, color.Bold)
)

// drawMap prints one row per map line. Marks override the tile underneath.
func drawMap(out io.Writer, m *gamemap.Map, marks map[gamemap.Point]mark) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if mk, ok := marks[gamemap.Point{X: x, Y: y}]; ok {
				mk.c.Fprint(out, mk.glyph)
				continue
			}
			switch m.Tiles[m.Idx(x, y)] {
			case gamemap.Wall:
				wallColor.Fprint(out, "#")
			case gamemap.StairsDown:
				stairsColor.Fprint(out, ">")
			case gamemap.StairsUp:
				stairsColor.Fprint(out, "<")
			default:
				floorColor.Fprint(out, ".")
			}
		}
		fmt.Fprintln(out)
	}
}
