package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// OwnerInfo is an immutable snapshot of the owning actor's pose, taken once
// per tick before any component runs. Components read it instead of touching
// the actor mid-loop.
type OwnerInfo struct {
	Position rl.Vector3
	Scale    float32
	Rotation rl.Quaternion
	Forward  rl.Vector3
	Right    rl.Vector3
	World    rl.Matrix
}

// Delta is what a component's Update returns. Nil fields mean "no change";
// the actor applies all deltas in a second pass after every component ran.
type Delta struct {
	Position *rl.Vector3
	Rotation *rl.Quaternion
	// Forward rotates the actor to face a new direction (reflecting
	// projectiles use this rather than setting a rotation directly).
	Forward *rl.Vector3
	// Hits are actors to notify via their HitTarget hook.
	Hits []*Actor
}

type Component interface {
	ID() uint32
	Owner() *Actor
	UpdateOrder() int
	State() State
	SetState(State)
	Update(dt float32, owner OwnerInfo) Delta
	// OnWorldTransformChanged keeps world-space caches (bounding volumes,
	// 3D audio attributes) in sync. Called only from the actor's world
	// transform recomputation.
	OnWorldTransformChanged(owner OwnerInfo)
	ProcessInput(input *InputState)
}

// BaseComponent carries the state shared by every component and default
// no-op hooks. Concrete components embed it.
type BaseComponent struct {
	id          uint32
	owner       *Actor
	updateOrder int
	state       State
}

// NewBase allocates the shared component state. The id comes from the
// owner's manager so component ids stay monotonic per manager.
func NewBase(owner *Actor, updateOrder int) BaseComponent {
	return BaseComponent{
		id:          owner.manager.nextComponentID(),
		owner:       owner,
		updateOrder: updateOrder,
		state:       StateActive,
	}
}

func (b *BaseComponent) ID() uint32 {
	return b.id
}

func (b *BaseComponent) Owner() *Actor {
	return b.owner
}

func (b *BaseComponent) UpdateOrder() int {
	return b.updateOrder
}

func (b *BaseComponent) State() State {
	return b.state
}

func (b *BaseComponent) SetState(state State) {
	b.state = state
}

func (b *BaseComponent) Update(dt float32, owner OwnerInfo) Delta {
	return Delta{}
}

func (b *BaseComponent) OnWorldTransformChanged(owner OwnerInfo) {}

func (b *BaseComponent) ProcessInput(input *InputState) {}

// GetComponent returns the first component of the requested type attached to
// the actor.
func GetComponent[T Component](a *Actor) (T, bool) {
	for _, c := range a.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}
