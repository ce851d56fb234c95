package engine

// InputState is the per-tick snapshot handed to ProcessInput. Input polling
// itself lives in an external collaborator; the simulation only sees named
// actions and relative mouse movement.
type InputState struct {
	keys   map[string]bool
	MouseX float32
	MouseY float32
}

func NewInputState() *InputState {
	return &InputState{keys: make(map[string]bool)}
}

func (s *InputState) Press(key string) {
	s.keys[key] = true
}

func (s *InputState) Release(key string) {
	delete(s.keys, key)
}

func (s *InputState) KeyDown(key string) bool {
	return s.keys[key]
}
