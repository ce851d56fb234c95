// Package components holds the reusable behavior units that attach to
// actors: movement, input steering, projectile reflection and audio.
package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"simcore/internal/engine"
)

const speedEpsilon = 0.001

func nearZero(v float32) bool {
	if v < 0 {
		v = -v
	}
	return v <= speedEpsilon
}

// MoveComponent turns angular, forward and strafe speeds into pose deltas.
type MoveComponent struct {
	engine.BaseComponent
	AngularSpeed float32
	ForwardSpeed float32
	StrafeSpeed  float32
}

func NewMoveComponent(owner *engine.Actor) *MoveComponent {
	m := &MoveComponent{BaseComponent: engine.NewBase(owner, 10)}
	owner.AddComponent(m)
	return m
}

func (m *MoveComponent) Update(dt float32, owner engine.OwnerInfo) engine.Delta {
	return m.moveDelta(dt, owner)
}

// moveDelta is shared by every mover kind. Angular speed spins about the
// world up axis; forward/strafe displace along the owner's basis vectors.
func (m *MoveComponent) moveDelta(dt float32, owner engine.OwnerInfo) engine.Delta {
	var d engine.Delta

	if !nearZero(m.AngularSpeed) {
		angle := m.AngularSpeed * dt
		increment := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, angle)
		// Increment applied after the current rotation
		rotation := rl.QuaternionMultiply(increment, owner.Rotation)
		d.Rotation = &rotation
	}

	if !nearZero(m.ForwardSpeed) || !nearZero(m.StrafeSpeed) {
		position := owner.Position
		position = rl.Vector3Add(position, rl.Vector3Scale(owner.Forward, m.ForwardSpeed*dt))
		position = rl.Vector3Add(position, rl.Vector3Scale(owner.Right, m.StrafeSpeed*dt))
		d.Position = &position
	}

	return d
}
