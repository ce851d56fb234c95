package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"simcore/internal/collision"
	"simcore/internal/engine"
)

// BoxComponent attaches an axis-aligned bounding volume to an actor. The
// object-space box is fixed (seeded from the mesh collaborator); the
// world-space box is re-derived every time the owner's world transform
// changes and never anywhere else.
type BoxComponent struct {
	engine.BaseComponent
	objectBox    collision.AABB
	worldBox     collision.AABB
	shouldRotate bool
}

// NewBoxComponent creates the component attached to owner and registers it
// in the physics world's bounding-volume registry.
func NewBoxComponent(owner *engine.Actor, world *World) *BoxComponent {
	b := &BoxComponent{
		BaseComponent: engine.NewBase(owner, 100),
		shouldRotate:  true,
	}
	owner.AddComponent(b)
	world.AddBox(b)
	return b
}

// SetObjectBox sets the object-space box, normally a mesh's local AABB.
func (b *BoxComponent) SetObjectBox(box collision.AABB) {
	b.objectBox = box
}

func (b *BoxComponent) ObjectBox() collision.AABB {
	return b.objectBox
}

// WorldBox returns the current world-space box. It lags a pose change until
// the owner's next world transform recomputation.
func (b *BoxComponent) WorldBox() collision.AABB {
	return b.worldBox
}

// SetShouldRotate controls whether the world box envelope follows the
// owner's rotation. Axis-aligned level geometry turns this off.
func (b *BoxComponent) SetShouldRotate(v bool) {
	b.shouldRotate = v
}

func (b *BoxComponent) OnWorldTransformChanged(owner engine.OwnerInfo) {
	// Scale, rotate, translate the object box into world space
	world := b.objectBox
	world.Min = rl.Vector3Scale(world.Min, owner.Scale)
	world.Max = rl.Vector3Scale(world.Max, owner.Scale)
	if b.shouldRotate {
		world.Rotate(owner.Rotation)
	}
	world.Min = rl.Vector3Add(world.Min, owner.Position)
	world.Max = rl.Vector3Add(world.Max, owner.Position)
	b.worldBox = world
}
