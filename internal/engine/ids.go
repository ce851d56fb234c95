package engine

// idGenerator hands out unique, monotonically increasing ids. Each
// EntityManager owns one for actors and one for components, so tests get a
// fresh, deterministic sequence per manager instead of hidden process-wide
// state.
type idGenerator struct {
	counter uint32
}

func (g *idGenerator) next() uint32 {
	id := g.counter
	g.counter++
	return id
}
