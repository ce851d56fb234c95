// Broad-phase stress check: fills the physics world with randomly placed
// boxes, verifies sweep-and-prune finds exactly the pairs the naive
// quadratic scan finds, and reports timings for both at growing counts.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"simcore/internal/collision"
	"simcore/internal/engine"
	"simcore/internal/physics"
)

func main() {
	var (
		seed = flag.Int64("seed", 42, "random seed for box placement")
		max  = flag.Int("max", 4000, "largest box count to test")
	)
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	for n := 500; n <= *max; n *= 2 {
		runOnce(log, *seed, n)
	}
}

type pair struct{ a, b uint32 }

func runOnce(log *zap.Logger, seed int64, count int) {
	rng := rand.New(rand.NewSource(seed))
	entities := engine.NewEntityManager(log)
	world := physics.NewWorld(log)

	for i := 0; i < count; i++ {
		a := engine.NewActor(entities)
		a.SetPosition(rl.Vector3{
			X: rng.Float32()*2000 - 1000,
			Y: rng.Float32()*2000 - 1000,
			Z: rng.Float32()*2000 - 1000,
		})
		box := physics.NewBoxComponent(a, world)
		half := rng.Float32()*20 + 5
		box.SetObjectBox(collision.NewAABB(
			rl.Vector3{X: -half, Y: -half, Z: -half},
			rl.Vector3{X: half, Y: half, Z: half},
		))
	}
	// One tick to derive every world-space box
	entities.Update(0)

	naive := map[pair]bool{}
	startNaive := time.Now()
	world.TestPairwise(func(a, b *engine.Actor) {
		naive[orderedPair(a, b)] = true
	})
	naiveDur := time.Since(startNaive)

	pruned := map[pair]bool{}
	startPruned := time.Now()
	world.SweepAndPrune(func(a, b *engine.Actor) {
		pruned[orderedPair(a, b)] = true
	})
	prunedDur := time.Since(startPruned)

	if len(naive) != len(pruned) {
		log.Fatal("pair count mismatch",
			zap.Int("boxes", count),
			zap.Int("naive", len(naive)),
			zap.Int("pruned", len(pruned)))
	}
	for p := range naive {
		if !pruned[p] {
			log.Fatal("pair missed by sweep-and-prune",
				zap.Uint32("a", p.a), zap.Uint32("b", p.b))
		}
	}

	fmt.Printf("boxes=%-5d pairs=%-6d naive=%-12s pruned=%-12s\n",
		count, len(naive), naiveDur, prunedDur)
}

func orderedPair(a, b *engine.Actor) pair {
	if a.ID() > b.ID() {
		a, b = b, a
	}
	return pair{a: a.ID(), b: b.ID()}
}
