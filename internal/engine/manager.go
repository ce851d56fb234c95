package engine

import "go.uber.org/zap"

// EntityManager owns the actor registry. Actors added while the update loop
// is iterating land on a pending list and are merged into the active list
// only after the pass completes, so no actor is updated in the tick that
// spawned it and the live list never mutates mid-iteration.
type EntityManager struct {
	log *zap.Logger

	actors   []*Actor
	pending  []*Actor
	updating bool

	actorIDs     idGenerator
	componentIDs idGenerator
}

func NewEntityManager(log *zap.Logger) *EntityManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &EntityManager{log: log}
}

func (m *EntityManager) nextActorID() uint32 {
	return m.actorIDs.next()
}

func (m *EntityManager) nextComponentID() uint32 {
	return m.componentIDs.next()
}

// AddActor registers a. During iteration the actor is deferred to the
// pending list.
func (m *EntityManager) AddActor(a *Actor) {
	if m.updating {
		m.pending = append(m.pending, a)
		return
	}
	m.actors = append(m.actors, a)
}

// Actors returns the active list. Callers must not hold the slice across a
// Flush.
func (m *EntityManager) Actors() []*Actor {
	return m.actors
}

func (m *EntityManager) PendingActors() []*Actor {
	return m.pending
}

// Update runs one tick over every active actor, then flushes: pending actors
// merge into the active list and Dead actors are destroyed.
func (m *EntityManager) Update(dt float32) {
	m.updating = true
	for _, a := range m.actors {
		a.Update(dt)
	}
	m.updating = false

	m.Flush()
}

// ProcessInput forwards the input snapshot to every active actor.
func (m *EntityManager) ProcessInput(input *InputState) {
	m.updating = true
	for _, a := range m.actors {
		a.ProcessInput(input)
	}
	m.updating = false
}

// Flush is the only place the live list grows or shrinks.
func (m *EntityManager) Flush() {
	m.actors = append(m.actors, m.pending...)
	m.pending = m.pending[:0]

	alive := m.actors[:0]
	removed := 0
	for _, a := range m.actors {
		if a.State() != StateDead {
			alive = append(alive, a)
			continue
		}
		a.destroy()
		removed++
	}
	// Drop trailing references so destroyed actors can be collected
	for i := len(alive); i < len(m.actors); i++ {
		m.actors[i] = nil
	}
	m.actors = alive

	if removed > 0 {
		m.log.Debug("flushed dead actors",
			zap.Int("removed", removed),
			zap.Int("alive", len(m.actors)))
	}
}
