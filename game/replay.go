package game

import "fmt"

// Replay applies actions in order starting from initial and returns the
// final state. It stops at the first rejected action.
func (e *Engine) Replay(initial *GameState, actions []Action) (*GameState, error) {
	state := initial
	for i, a := range actions {
		next, err := e.Apply(state, a)
		if err != nil {
			return state, fmt.Errorf("replay action %d (%s): %w", i, EncodeAction(a).Type, err)
		}
		state = next
	}
	return state, nil
}
