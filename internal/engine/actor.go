package engine

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the lifecycle of actors and components. Components only ever use
// Active and Dead; Dead is terminal for both.
type State int

const (
	StateActive State = iota
	StatePaused
	StateDead
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Behavior is the set of overridable actor hooks. Concrete actor kinds embed
// BaseBehavior and override what they need.
type Behavior interface {
	// UpdateActor runs after the component pass each tick.
	UpdateActor(a *Actor, dt float32)
	// ActorInput runs after component input processing.
	ActorInput(a *Actor, input *InputState)
	// HitTarget is invoked when another actor's component reports this
	// actor as hit.
	HitTarget(a *Actor)
}

// BaseBehavior provides no-op defaults for every hook.
type BaseBehavior struct{}

func (BaseBehavior) UpdateActor(*Actor, float32)    {}
func (BaseBehavior) ActorInput(*Actor, *InputState) {}
func (BaseBehavior) HitTarget(*Actor)               {}

// Actor is an entity with a spatial pose that owns an ordered list of
// components. The world transform is cached and recomputed only when the
// pose changed since the last recomputation.
type Actor struct {
	id       uint32
	state    State
	position rl.Vector3
	scale    float32
	rotation rl.Quaternion

	worldTransform rl.Matrix
	transformDirty bool

	components []Component
	behavior   Behavior
	manager    *EntityManager
}

// NewActor creates an actor and immediately registers it with the manager.
func NewActor(m *EntityManager) *Actor {
	a := &Actor{
		id:             m.nextActorID(),
		state:          StateActive,
		scale:          1,
		rotation:       rl.QuaternionIdentity(),
		worldTransform: rl.MatrixIdentity(),
		transformDirty: true,
		manager:        m,
	}
	m.AddActor(a)
	return a
}

func (a *Actor) ID() uint32                { return a.id }
func (a *Actor) State() State              { return a.state }
func (a *Actor) SetState(state State)      { a.state = state }
func (a *Actor) Position() rl.Vector3      { return a.position }
func (a *Actor) Scale() float32            { return a.scale }
func (a *Actor) Rotation() rl.Quaternion   { return a.rotation }
func (a *Actor) WorldTransform() rl.Matrix { return a.worldTransform }
func (a *Actor) Manager() *EntityManager   { return a.manager }
func (a *Actor) Components() []Component   { return a.components }

func (a *Actor) SetPosition(p rl.Vector3) {
	a.position = p
	a.transformDirty = true
}

func (a *Actor) SetScale(s float32) {
	a.scale = s
	a.transformDirty = true
}

func (a *Actor) SetRotation(q rl.Quaternion) {
	a.rotation = q
	a.transformDirty = true
}

func (a *Actor) SetBehavior(b Behavior) {
	a.behavior = b
}

// Forward is unit X rotated into the actor's frame (z-up convention).
func (a *Actor) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, a.rotation)
}

// Right is unit Y rotated into the actor's frame.
func (a *Actor) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, a.rotation)
}

// AddComponent attaches c, keeping the list sorted by ascending update
// order; among equal orders insertion order is preserved. Attaching a
// component that is not Active, or one that is already attached, is a
// programming error.
func (a *Actor) AddComponent(c Component) {
	if c.State() != StateActive {
		panic(fmt.Sprintf("engine: attaching component %d in state %v", c.ID(), c.State()))
	}
	for _, existing := range a.components {
		if existing.ID() == c.ID() {
			panic(fmt.Sprintf("engine: component %d attached twice", c.ID()))
		}
	}
	at := len(a.components)
	for i, existing := range a.components {
		if c.UpdateOrder() < existing.UpdateOrder() {
			at = i
			break
		}
	}
	a.components = append(a.components, nil)
	copy(a.components[at+1:], a.components[at:])
	a.components[at] = c
}

// RemoveComponent detaches c. The component must already be Dead.
func (a *Actor) RemoveComponent(c Component) {
	if c.State() != StateDead {
		panic(fmt.Sprintf("engine: removing component %d in state %v", c.ID(), c.State()))
	}
	for i, existing := range a.components {
		if existing.ID() == c.ID() {
			a.components = append(a.components[:i], a.components[i+1:]...)
			return
		}
	}
}

// Update runs one simulation tick for this actor. No-op unless Active.
func (a *Actor) Update(dt float32) {
	if a.state != StateActive {
		return
	}
	a.ComputeWorldTransform()
	a.updateComponents(dt)
	if a.behavior != nil {
		a.behavior.UpdateActor(a, dt)
	}
	// Recompute again so physics and rendering see the post-update pose
	a.ComputeWorldTransform()
}

// updateComponents collects every component's delta against a pose snapshot,
// then applies them in a second pass. The actor is never mutated while the
// component loop runs.
func (a *Actor) updateComponents(dt float32) {
	info := a.ownerInfo()
	deltas := make([]Delta, 0, len(a.components))
	for _, c := range a.components {
		deltas = append(deltas, c.Update(dt, info))
	}
	for _, d := range deltas {
		if d.Forward != nil {
			a.RotateToNewForward(*d.Forward)
		}
		if d.Position != nil {
			a.SetPosition(*d.Position)
		}
		if d.Rotation != nil {
			a.SetRotation(*d.Rotation)
		}
		for _, hit := range d.Hits {
			hit.NotifyHit()
		}
	}
}

// ProcessInput forwards the input snapshot to every component, then to the
// actor's own input hook. No-op unless Active.
func (a *Actor) ProcessInput(input *InputState) {
	if a.state != StateActive {
		return
	}
	for _, c := range a.components {
		c.ProcessInput(input)
	}
	if a.behavior != nil {
		a.behavior.ActorInput(a, input)
	}
}

// NotifyHit fires the actor's HitTarget hook.
func (a *Actor) NotifyHit() {
	if a.behavior != nil {
		a.behavior.HitTarget(a)
	}
}

// ComputeWorldTransform rebuilds the cached world matrix if the pose changed,
// then notifies every component exactly once. Scale, then rotate, then
// translate.
func (a *Actor) ComputeWorldTransform() {
	if !a.transformDirty {
		return
	}
	a.transformDirty = false

	world := rl.MatrixScale(a.scale, a.scale, a.scale)
	world = rl.MatrixMultiply(world, rl.QuaternionToMatrix(a.rotation))
	world = rl.MatrixMultiply(world, rl.MatrixTranslate(a.position.X, a.position.Y, a.position.Z))
	a.worldTransform = world

	info := a.ownerInfo()
	for _, c := range a.components {
		c.OnWorldTransformChanged(info)
	}
}

// RotateToNewForward rotates the actor so its forward vector becomes the
// given unit direction. The colinear cases are handled explicitly so the
// cross product never normalizes a zero-length axis.
func (a *Actor) RotateToNewForward(forward rl.Vector3) {
	unitX := rl.Vector3{X: 1}
	dot := rl.Vector3DotProduct(unitX, forward)

	switch {
	case dot > 0.9999:
		// Already facing down X
		a.SetRotation(rl.QuaternionIdentity())
	case dot < -0.9999:
		// Facing down -X: rotate half a turn about a fixed perpendicular
		a.SetRotation(rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, math.Pi))
	default:
		angle := float32(math.Acos(float64(dot)))
		axis := rl.Vector3Normalize(rl.Vector3CrossProduct(unitX, forward))
		a.SetRotation(rl.QuaternionFromAxisAngle(axis, angle))
	}
}

func (a *Actor) ownerInfo() OwnerInfo {
	return OwnerInfo{
		Position: a.position,
		Scale:    a.scale,
		Rotation: a.rotation,
		Forward:  a.Forward(),
		Right:    a.Right(),
		World:    a.worldTransform,
	}
}

// destroy marks every component Dead and detaches them all. Called exactly
// once, from the manager's flush.
func (a *Actor) destroy() {
	for _, c := range a.components {
		c.SetState(StateDead)
	}
	a.components = nil
}
