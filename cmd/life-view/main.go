//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifelab/internal/app"
	"lifelab/internal/pattern"
	"lifelab/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := life.New(cfg.N)
	if err != nil {
		log.Fatalf("life-view: %v", err)
	}
	if cfg.Pattern != "" {
		if err := pattern.LoadFile(cfg.Pattern, sim.Store()); err != nil {
			log.Fatalf("life-view: %v", err)
		}
	} else {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.TPS)
	size := sim.Size()

	ebiten.SetWindowTitle("lifelab — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
