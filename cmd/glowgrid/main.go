package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"glowgrid.dev/glowgrid/highscore"
	ebitenrender "glowgrid.dev/glowgrid/internal/render/ebiten"
	"glowgrid.dev/glowgrid/labyrinth"
	"glowgrid.dev/glowgrid/menu"
	"glowgrid.dev/glowgrid/settings"
	"glowgrid.dev/glowgrid/snake"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	scale := flag.Int("scale", 10, "window pixels per panel pixel")
	dbPath := flag.String("db", "glowgrid.db", "high score database path")
	settingsPath := flag.String("settings", "settings.json", "settings file path")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		log.Printf("Warning: using default settings: %v", err)
	}

	scores, err := highscore.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open high score store: %v", err)
	}
	defer scores.Close()

	inputMgr := ebitenrender.NewInputManager()
	clock := ebitenrender.NewWallClock()
	engine := ebitenrender.NewEngine(*scale)

	maze := labyrinth.New(clock, rng)
	maze.SetPlayerColor(cfg.PlayerColor())

	mainMenu := menu.New([]menu.Entry{
		{ID: "labyrinth", Name: "LABYRINTH", Game: maze},
		{ID: "snake", Name: "SNAKE", Game: snake.New(clock, rng)},
	}, inputMgr, scores)

	engine.SetWindowTitle("GlowGrid")

	log.Printf("Starting with seed %d...", *seed)
	if err := engine.Run(mainMenu); err != nil {
		log.Fatal(err)
	}
}
