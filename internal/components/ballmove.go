package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"simcore/internal/collision"
	"simcore/internal/engine"
	"simcore/internal/physics"
)

// How far ahead of the ball the reflection probe reaches.
const ballSegmentLength = 30.0

// BallMove moves a projectile forward and casts a short segment along the
// direction of travel each tick. A hit reflects the travel direction off the
// struck surface and reports the struck actor.
type BallMove struct {
	MoveComponent
	world *physics.World
	// player fired the ball; its own bounding volume never reflects it
	player *engine.Actor
}

func NewBallMove(owner *engine.Actor, world *physics.World, player *engine.Actor) *BallMove {
	b := &BallMove{
		MoveComponent: MoveComponent{BaseComponent: engine.NewBase(owner, 10)},
		world:         world,
		player:        player,
	}
	owner.AddComponent(b)
	return b
}

func (b *BallMove) Update(dt float32, owner engine.OwnerInfo) engine.Delta {
	dir := owner.Forward
	start := owner.Position
	end := rl.Vector3Add(start, rl.Vector3Scale(dir, ballSegmentLength))
	line := collision.NewLineSegment(start, end)

	d := b.moveDelta(dt, owner)

	if info, ok := b.world.SegmentCast(line); ok && info.Actor != b.player {
		reflected := rl.Vector3Reflect(dir, info.Normal)
		d.Forward = &reflected
		d.Hits = append(d.Hits, info.Actor)
	}

	return d
}
