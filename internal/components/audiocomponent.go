package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"simcore/internal/engine"
)

// SoundEvent is the narrow handle the audio collaborator exposes for one
// playing sound.
type SoundEvent interface {
	Valid() bool
	Is3D() bool
	// SetAttributes positions a 3D event from the emitter's world transform.
	SetAttributes(world rl.Matrix)
	Stop()
}

// AudioSystem is the part of the audio collaborator the simulation drives.
type AudioSystem interface {
	PlayEvent(name string) SoundEvent
}

// AudioComponent owns the sound events an actor emits and keeps the 3D ones
// positioned at the owner.
type AudioComponent struct {
	engine.BaseComponent
	system   AudioSystem
	events2D []SoundEvent
	events3D []SoundEvent
}

func NewAudioComponent(owner *engine.Actor, system AudioSystem) *AudioComponent {
	c := &AudioComponent{
		BaseComponent: engine.NewBase(owner, 200),
		system:        system,
	}
	owner.AddComponent(c)
	return c
}

// PlayEvent starts the named event. 3D events are positioned immediately and
// follow the owner afterwards. A system returning no handle yields a silent
// already-finished event.
func (c *AudioComponent) PlayEvent(name string) SoundEvent {
	e := c.system.PlayEvent(name)
	if e == nil {
		return silentEvent{}
	}
	if e.Is3D() {
		e.SetAttributes(c.Owner().WorldTransform())
		c.events3D = append(c.events3D, e)
	} else {
		c.events2D = append(c.events2D, e)
	}
	return e
}

// Update drops events that finished playing.
func (c *AudioComponent) Update(dt float32, owner engine.OwnerInfo) engine.Delta {
	c.events2D = pruneInvalid(c.events2D)
	c.events3D = pruneInvalid(c.events3D)
	return engine.Delta{}
}

func (c *AudioComponent) OnWorldTransformChanged(owner engine.OwnerInfo) {
	for _, e := range c.events3D {
		if e.Valid() {
			e.SetAttributes(owner.World)
		}
	}
}

// StopAll stops every live event and forgets them.
func (c *AudioComponent) StopAll() {
	for _, e := range c.events2D {
		e.Stop()
	}
	for _, e := range c.events3D {
		e.Stop()
	}
	c.events2D = nil
	c.events3D = nil
}

// silentEvent stands in when the audio collaborator hands back no event.
type silentEvent struct{}

func (silentEvent) Valid() bool             { return false }
func (silentEvent) Is3D() bool              { return false }
func (silentEvent) SetAttributes(rl.Matrix) {}
func (silentEvent) Stop()                   {}

func pruneInvalid(events []SoundEvent) []SoundEvent {
	alive := events[:0]
	for _, e := range events {
		if e.Valid() {
			alive = append(alive, e)
		}
	}
	return alive
}
