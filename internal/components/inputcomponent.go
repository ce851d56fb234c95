package components

import "simcore/internal/engine"

// InputComponent maps named input actions onto movement speeds. It is a
// MoveComponent whose speeds are recomputed from the input snapshot every
// tick before the update pass runs.
type InputComponent struct {
	MoveComponent

	MaxForwardSpeed float32
	MaxAngularSpeed float32
	MaxStrafeSpeed  float32

	ForwardKey          string
	BackKey             string
	ClockwiseKey        string
	CounterClockwiseKey string
	StrafeLeftKey       string
	StrafeRightKey      string
}

func NewInputComponent(owner *engine.Actor) *InputComponent {
	c := &InputComponent{
		MoveComponent: MoveComponent{BaseComponent: engine.NewBase(owner, 10)},
	}
	owner.AddComponent(c)
	return c
}

func (c *InputComponent) ProcessInput(input *engine.InputState) {
	var forward float32
	if input.KeyDown(c.ForwardKey) {
		forward += c.MaxForwardSpeed
	}
	if input.KeyDown(c.BackKey) {
		forward -= c.MaxForwardSpeed
	}
	c.ForwardSpeed = forward

	var angular float32
	if input.KeyDown(c.ClockwiseKey) {
		angular += c.MaxAngularSpeed
	}
	if input.KeyDown(c.CounterClockwiseKey) {
		angular -= c.MaxAngularSpeed
	}
	c.AngularSpeed = angular

	var strafe float32
	if input.KeyDown(c.StrafeRightKey) {
		strafe += c.MaxStrafeSpeed
	}
	if input.KeyDown(c.StrafeLeftKey) {
		strafe -= c.MaxStrafeSpeed
	}
	c.StrafeSpeed = strafe
}
