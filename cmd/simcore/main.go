// Headless simulation driver: loads a scene, runs a fixed number of ticks
// with scripted input and reports what happened.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"simcore/internal/engine"
	"simcore/internal/game"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "YAML scene file (default: built-in arena)")
		ticks     = flag.Int("ticks", 600, "number of fixed 60 Hz ticks to run")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	cfg := zap.NewProductionConfig()
	if *debug {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	g := game.New(game.Config{Logger: log})

	var player *engine.Actor
	if *scenePath != "" {
		if err := g.LoadScene(*scenePath); err != nil {
			log.Fatal("loading scene", zap.Error(err), zap.String("path", *scenePath))
		}
		player = g.NewPlayerActor()
	} else {
		player = g.LoadDefaultScene()
	}
	log.Info("scene ready",
		zap.Int("actors", len(g.Entities().Actors())),
		zap.Int("boxes", len(g.Physics().Boxes())))

	const dt = float32(1.0 / 60.0)
	input := engine.NewInputState()
	input.Press("w")

	for tick := 0; tick < *ticks; tick++ {
		// Fire at the targets once a second
		if tick%60 == 0 {
			g.Shoot(player)
		}
		g.ProcessInput(input)
		g.Update(dt)
	}

	overlaps := 0
	g.Physics().SweepAndPrune(func(a, b *engine.Actor) { overlaps++ })

	log.Info("simulation done",
		zap.Int("ticks", *ticks),
		zap.Int("actors", len(g.Entities().Actors())),
		zap.Int("overlapping_pairs", overlaps),
		zap.Float32("player_x", player.Position().X),
		zap.Float32("player_y", player.Position().Y))
}
