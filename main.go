package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"polysnake/game"
	"polysnake/game/manager"
	"polysnake/game/types"
	"polysnake/ui"
	"polysnake/ui/term"
)

func main() {
	cfg := types.DefaultConfig()
	flag.Float64Var(&cfg.Speed, "speed", cfg.Speed, "Snake speed in pixels per second")
	flag.Float64Var(&cfg.Width, "width", cfg.Width, "Playfield width in pixels")
	flag.Float64Var(&cfg.Height, "height", cfg.Height, "Playfield height in pixels")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = time based)")
	frontend := flag.String("frontend", "raylib", "Frontend to use: raylib or term")
	logPath := flag.String("log", "", "Log file for the terminal frontend")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	g, err := game.NewGame(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		log.Fatalf("%v", err)
	}

	switch *frontend {
	case "raylib":
		r := ui.NewRenderer(cfg, "Snake")
		defer r.Close()
		g.OnRunEnd = ui.LogRun
		g.Run(r)
	case "term":
		runTerminal(g, cfg, *logPath)
	default:
		log.Fatalf("unknown frontend %q", *frontend)
	}
}

// runTerminal keeps log output off the screen while tcell owns it.
func runTerminal(g *game.Game, cfg types.Config, logPath string) {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal: %v", err)
	}
	fe, err := term.New(screen, cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("%v", err)
	}
	defer fe.Close()

	log.Printf("seed %d", cfg.Seed)
	g.OnRunEnd = func(s manager.RunSummary) {
		log.Printf("run %s ended: score %d, best %d, %.1fs (%d runs, avg %.2f)",
			s.RunID, s.Score, s.Best, s.Duration.Seconds(), s.Runs, s.AverageScore)
	}
	g.Run(fe)
	log.Printf("session over: best %d over %d runs", g.Best(), g.Stats().Runs())
}
