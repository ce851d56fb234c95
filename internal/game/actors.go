package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"simcore/internal/collision"
	"simcore/internal/components"
	"simcore/internal/engine"
	"simcore/internal/physics"
)

// Mesh names resolved through the MeshStore.
const (
	MeshPlane  = "plane"
	MeshTarget = "target"
	MeshSphere = "sphere"
)

// DefaultMeshes is the built-in bounding-box table for the stock actor kinds.
func DefaultMeshes() MeshTable {
	return MeshTable{
		MeshPlane: collision.NewAABB(
			rl.Vector3{X: -12.5, Y: -12.5, Z: -1},
			rl.Vector3{X: 12.5, Y: 12.5},
		),
		MeshTarget: collision.NewAABB(
			rl.Vector3{X: -2.5, Y: -2.5, Z: -2.5},
			rl.Vector3{X: 2.5, Y: 2.5, Z: 2.5},
		),
		MeshSphere: collision.NewAABB(
			rl.Vector3{X: -1, Y: -1, Z: -1},
			rl.Vector3{X: 1, Y: 1, Z: 1},
		),
	}
}

const (
	planeScale   = 10
	ballSpeed    = 1500
	ballLifespan = 2.0

	playerForwardSpeed = 400
	playerStrafeSpeed  = 400
	playerAngularSpeed = math.Pi
)

// NewPlaneActor creates one static floor or wall tile with a bounding box.
func (g *Game) NewPlaneActor() *engine.Actor {
	a := engine.NewActor(g.entities)
	a.SetScale(planeScale)
	box := physics.NewBoxComponent(a, g.phys)
	if ob, ok := g.meshes.ObjectBox(MeshPlane); ok {
		box.SetObjectBox(ob)
	}
	return a
}

// targetBehavior reacts to being struck by a projectile.
type targetBehavior struct {
	engine.BaseBehavior
	log *zap.Logger
}

func (b *targetBehavior) HitTarget(a *engine.Actor) {
	b.log.Info("target hit", zap.Uint32("actor", a.ID()))
	if ac, ok := engine.GetComponent[*components.AudioComponent](a); ok {
		ac.PlayEvent("Ding")
	}
}

// NewTargetActor creates a shootable target facing back down the X axis.
func (g *Game) NewTargetActor() *engine.Actor {
	a := engine.NewActor(g.entities)
	a.SetRotation(rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, math.Pi))
	box := physics.NewBoxComponent(a, g.phys)
	if ob, ok := g.meshes.ObjectBox(MeshTarget); ok {
		box.SetObjectBox(ob)
	}
	components.NewAudioComponent(a, g.audio)
	a.SetBehavior(&targetBehavior{log: g.log})
	return a
}

// ballBehavior expires the projectile after its lifespan runs out.
type ballBehavior struct {
	engine.BaseBehavior
	lifespan float32
}

func (b *ballBehavior) UpdateActor(a *engine.Actor, dt float32) {
	b.lifespan -= dt
	if b.lifespan <= 0 {
		a.SetState(engine.StateDead)
	}
}

// NewBallActor creates a projectile that flies forward, reflects off
// bounding volumes and dies after a fixed lifespan. The shooter's own
// volume never reflects it.
func (g *Game) NewBallActor(shooter *engine.Actor) *engine.Actor {
	a := engine.NewActor(g.entities)
	move := components.NewBallMove(a, g.phys, shooter)
	move.ForwardSpeed = ballSpeed
	components.NewAudioComponent(a, g.audio)
	a.SetBehavior(&ballBehavior{lifespan: ballLifespan})
	return a
}

// NewPlayerActor creates the input-driven actor. Movement is bound to the
// usual wasd keys plus q/e for turning.
func (g *Game) NewPlayerActor() *engine.Actor {
	a := engine.NewActor(g.entities)

	in := components.NewInputComponent(a)
	in.MaxForwardSpeed = playerForwardSpeed
	in.MaxStrafeSpeed = playerStrafeSpeed
	in.MaxAngularSpeed = playerAngularSpeed
	in.ForwardKey = "w"
	in.BackKey = "s"
	in.StrafeLeftKey = "a"
	in.StrafeRightKey = "d"
	in.ClockwiseKey = "e"
	in.CounterClockwiseKey = "q"

	components.NewAudioComponent(a, g.audio)
	return a
}

// LoadDefaultScene builds the built-in arena: a 10x10 floor grid, walls on
// all four sides and four targets on the far wall. Returns the player actor.
func (g *Game) LoadDefaultScene() *engine.Actor {
	const (
		start = float32(-1250)
		size  = float32(250)
		floor = float32(-100)
	)

	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			p := g.NewPlaneActor()
			p.SetPosition(rl.Vector3{
				X: start + float32(i)*size,
				Y: start + float32(j)*size,
				Z: floor,
			})
		}
	}

	// Side walls lie in the XZ plane
	sideRot := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi/2)
	for i := 0; i < 10; i++ {
		x := start + float32(i)*size
		p := g.NewPlaneActor()
		p.SetPosition(rl.Vector3{X: x, Y: start - size})
		p.SetRotation(sideRot)

		p = g.NewPlaneActor()
		p.SetPosition(rl.Vector3{X: x, Y: -start + size})
		p.SetRotation(sideRot)
	}

	// End walls add a quarter turn about the up axis on top of the side
	// wall rotation
	endRot := rl.QuaternionMultiply(rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, math.Pi/2), sideRot)
	for i := 0; i < 10; i++ {
		y := start + float32(i)*size
		p := g.NewPlaneActor()
		p.SetPosition(rl.Vector3{X: start - size, Y: y})
		p.SetRotation(endRot)

		p = g.NewPlaneActor()
		p.SetPosition(rl.Vector3{X: -start + size, Y: y})
		p.SetRotation(endRot)
	}

	for _, pos := range []rl.Vector3{
		{X: 1450, Z: 100},
		{X: 1450, Z: 400},
		{X: 1450, Y: -500, Z: 200},
		{X: 1450, Y: 500, Z: 200},
	} {
		t := g.NewTargetActor()
		t.SetPosition(pos)
	}

	return g.NewPlayerActor()
}
