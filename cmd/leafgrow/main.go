//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"time"

	"leafgrow/internal/app"
	"leafgrow/internal/core"
	"leafgrow/internal/tree"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Quiet {
		log.SetOutput(io.Discard)
	}

	treeCfg, err := cfg.TreeConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ConfigPath != "" {
		log.Printf("[Main] loaded tuning from %s", cfg.ConfigPath)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := tree.NewWithConfig(treeCfg, core.Size{W: cfg.Width, H: cfg.Height}, seed)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[Main] canvas %dx%d, seed %d, tps %d", cfg.Width, cfg.Height, seed, cfg.TPS)

	game := app.New(sim, cfg.TPS, cfg.Debug)

	ebiten.SetWindowTitle("leafgrow")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
