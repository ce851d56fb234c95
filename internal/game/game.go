// Package game wires the entity manager, the physics world and scene
// loading into a single simulation driver.
package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"simcore/internal/collision"
	"simcore/internal/components"
	"simcore/internal/engine"
	"simcore/internal/physics"
)

// MeshStore resolves mesh names to their object-space bounding boxes.
type MeshStore interface {
	ObjectBox(name string) (collision.AABB, bool)
}

// MeshTable is the in-memory MeshStore used when no asset pipeline is wired.
type MeshTable map[string]collision.AABB

func (t MeshTable) ObjectBox(name string) (collision.AABB, bool) {
	box, ok := t[name]
	return box, ok
}

// Unprojector maps a screen-space point back into world space. Z is the
// normalized depth of the point. A renderer provides the real one; when none
// is wired, shooting falls back to the shooter's own pose.
type Unprojector interface {
	Unproject(screen rl.Vector3) rl.Vector3
}

type Config struct {
	Logger      *zap.Logger
	Audio       components.AudioSystem
	Meshes      MeshStore
	Unprojector Unprojector
}

// Game owns the simulation collaborators and drives one tick at a time.
type Game struct {
	log         *zap.Logger
	entities    *engine.EntityManager
	phys        *physics.World
	audio       components.AudioSystem
	meshes      MeshStore
	unprojector Unprojector
}

func New(cfg Config) *Game {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	audio := cfg.Audio
	if audio == nil {
		audio = nullAudio{log: log}
	}
	meshes := cfg.Meshes
	if meshes == nil {
		meshes = DefaultMeshes()
	}
	return &Game{
		log:         log,
		entities:    engine.NewEntityManager(log),
		phys:        physics.NewWorld(log),
		audio:       audio,
		meshes:      meshes,
		unprojector: cfg.Unprojector,
	}
}

func (g *Game) Entities() *engine.EntityManager { return g.entities }
func (g *Game) Physics() *physics.World         { return g.phys }

// ProcessInput forwards the input snapshot to every active actor.
func (g *Game) ProcessInput(input *engine.InputState) {
	g.entities.ProcessInput(input)
}

// Update advances the simulation by dt seconds: the actor pass including its
// flush, then the physics registry flush so dead bounding volumes drop the
// same tick their owners do.
func (g *Game) Update(dt float32) {
	g.entities.Update(dt)
	g.phys.Flush()
}

// How far in front of the unprojected near point a shot spawns.
const shotSpawnOffset = 20

// Shoot spawns a ball traveling away from the shooter. With an unprojector
// wired, the direction comes from unprojecting the screen center at two
// depths; otherwise the shooter's forward vector is used.
func (g *Game) Shoot(shooter *engine.Actor) *engine.Actor {
	var start, dir rl.Vector3
	if g.unprojector != nil {
		start = g.unprojector.Unproject(rl.Vector3{})
		end := g.unprojector.Unproject(rl.Vector3{Z: 0.9})
		dir = rl.Vector3Normalize(rl.Vector3Subtract(end, start))
	} else {
		start = shooter.Position()
		dir = shooter.Forward()
	}

	ball := g.NewBallActor(shooter)
	ball.SetPosition(rl.Vector3Add(start, rl.Vector3Scale(dir, shotSpawnOffset)))
	ball.RotateToNewForward(dir)

	if ac, ok := engine.GetComponent[*components.AudioComponent](shooter); ok {
		ac.PlayEvent("Shot")
	}
	return ball
}

// nullAudio satisfies the audio collaborator with log-only events. Every
// event reports itself as already finished, so components prune them on the
// next tick.
type nullAudio struct {
	log *zap.Logger
}

func (n nullAudio) PlayEvent(name string) components.SoundEvent {
	n.log.Debug("audio event", zap.String("event", name))
	return nullEvent{}
}

type nullEvent struct{}

func (nullEvent) Valid() bool             { return false }
func (nullEvent) Is3D() bool              { return false }
func (nullEvent) SetAttributes(rl.Matrix) {}
func (nullEvent) Stop()                   {}
