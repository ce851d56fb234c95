package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcore/internal/collision"
	"simcore/internal/components"
	"simcore/internal/engine"
)

const tick = float32(1.0 / 60.0)

// countingAudio tallies played events by name.
type countingAudio struct {
	events map[string]int
}

func newCountingAudio() *countingAudio {
	return &countingAudio{events: map[string]int{}}
}

func (c *countingAudio) PlayEvent(name string) components.SoundEvent {
	c.events[name]++
	return doneEvent{}
}

// doneEvent reports itself as already finished.
type doneEvent struct{}

func (doneEvent) Valid() bool             { return false }
func (doneEvent) Is3D() bool              { return false }
func (doneEvent) SetAttributes(rl.Matrix) {}
func (doneEvent) Stop()                   {}

func TestShootHitsTarget(t *testing.T) {
	audio := newCountingAudio()
	g := New(Config{Audio: audio})

	target := g.NewTargetActor()
	target.SetPosition(rl.Vector3{X: 100})
	player := g.NewPlayerActor()

	ball := g.Shoot(player)
	assert.Equal(t, 1, audio.events["Shot"])
	assert.InDelta(t, 20, ball.Position().X, 1e-3, "ball spawns offset along the shot direction")

	for i := 0; i < 5; i++ {
		g.Update(tick)
	}

	assert.GreaterOrEqual(t, audio.events["Ding"], 1, "struck target plays its hit sound")
	assert.InDelta(t, -1, ball.Forward().X, 1e-3, "ball reflected off the target")
}

func TestBallExpires(t *testing.T) {
	g := New(Config{})
	player := g.NewPlayerActor()

	ball := g.Shoot(player)
	require.Len(t, g.Entities().Actors(), 2)

	// Just past the 2 second lifespan
	for i := 0; i < 130; i++ {
		g.Update(tick)
	}

	assert.Equal(t, engine.StateDead, ball.State())
	assert.Len(t, g.Entities().Actors(), 1, "expired ball is flushed")
}

type fixedRay struct{}

func (fixedRay) Unproject(screen rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: screen.Z * 100, Y: 5}
}

func TestShootUsesUnprojector(t *testing.T) {
	g := New(Config{Unprojector: fixedRay{}})
	player := g.NewPlayerActor()
	player.SetPosition(rl.Vector3{Y: -50}) // should not matter

	ball := g.Shoot(player)

	assert.InDelta(t, 20, ball.Position().X, 1e-3)
	assert.InDelta(t, 5, ball.Position().Y, 1e-3)
	assert.InDelta(t, 1, ball.Forward().X, 1e-3)
}

func TestDefaultSceneCounts(t *testing.T) {
	g := New(Config{})
	player := g.LoadDefaultScene()

	// 100 floor tiles, 40 wall tiles, 4 targets plus the player
	assert.Len(t, g.Entities().Actors(), 145)
	assert.Len(t, g.Physics().Boxes(), 144)
	require.NotNil(t, player)

	// The arena must survive a few ticks without losing actors
	for i := 0; i < 3; i++ {
		g.Update(tick)
	}
	assert.Len(t, g.Entities().Actors(), 145)
}

func TestLoadSceneData(t *testing.T) {
	g := New(Config{})

	scene := []byte(`
meshes:
  plane:
    min: [-10, -10, -1]
    max: [10, 10, 0]
actors:
  - kind: plane
    position: [0, 0, -100]
    scale: 5
  - kind: target
    position: [100, 0, 0]
  - kind: player
    position: [0, 0, 0]
`)
	require.NoError(t, g.LoadSceneData(scene))

	actors := g.Entities().Actors()
	require.Len(t, actors, 3)
	assert.Len(t, g.Physics().Boxes(), 2)

	plane := actors[0]
	assert.Equal(t, float32(5), plane.Scale())
	assert.Equal(t, rl.Vector3{Z: -100}, plane.Position())

	// The scene's mesh override replaced the default plane box
	box := g.Physics().Boxes()[0].ObjectBox()
	assert.Equal(t, rl.Vector3{X: -10, Y: -10, Z: -1}, box.Min)
}

// cubeStore answers every mesh name with the same cube.
type cubeStore struct{ box collision.AABB }

func (s cubeStore) ObjectBox(name string) (collision.AABB, bool) { return s.box, true }

func TestLoadSceneDataLayersMeshesOverInjectedStore(t *testing.T) {
	custom := cubeStore{box: collision.NewAABB(
		rl.Vector3{X: -7, Y: -7, Z: -7},
		rl.Vector3{X: 7, Y: 7, Z: 7},
	)}
	g := New(Config{Meshes: custom})

	scene := []byte(`
meshes:
  plane:
    min: [-10, -10, -1]
    max: [10, 10, 0]
actors:
  - kind: plane
  - kind: target
`)
	require.NoError(t, g.LoadSceneData(scene))
	require.Len(t, g.Physics().Boxes(), 2)

	// The override wins for the plane
	assert.Equal(t, rl.Vector3{X: -10, Y: -10, Z: -1}, g.Physics().Boxes()[0].ObjectBox().Min)
	// Names the file does not mention still resolve through the injected store
	assert.Equal(t, custom.box, g.Physics().Boxes()[1].ObjectBox())
}

func TestLoadSceneDataUnknownKind(t *testing.T) {
	g := New(Config{})

	err := g.LoadSceneData([]byte("actors:\n  - kind: dragon\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}
