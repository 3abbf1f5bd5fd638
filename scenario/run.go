package scenario

import (
	"fmt"

	"trigon/game"
)

// Step is the outcome of one scripted action.
type Step struct {
	Index  int
	Action game.Action
	Err    error
	Hash   game.StateHash
}

// Failed reports whether the step raised an error, expected or not.
func (s Step) Failed() bool {
	return s.Err != nil
}

type Result struct {
	Steps []Step
	Final *game.GameState
}

// Run plays the scripted actions from the initial state. An action failing
// with its expected code leaves the state unchanged and the run continues;
// any other outcome stops the run with an error. The steps played so far are
// returned either way.
func (s *Scenario) Run(engine *game.Engine) (*Result, error) {
	if engine == nil {
		engine = game.NewEngine()
	}
	state, err := s.InitialState()
	if err != nil {
		return nil, err
	}
	actions, err := s.ScriptedActions()
	if err != nil {
		return nil, err
	}

	res := &Result{Final: state}
	for i, a := range actions {
		expect, err := expectedCode(s.Actions[i].Expect)
		if err != nil {
			return res, fmt.Errorf("action %d: %w", i, err)
		}

		next, applyErr := engine.Apply(state, a)
		if applyErr == nil {
			state = next
		}
		res.Steps = append(res.Steps, Step{Index: i, Action: a, Err: applyErr, Hash: state.Hash()})
		res.Final = state

		got := game.CodeOf(applyErr)
		switch {
		case expect == "" && applyErr != nil:
			return res, fmt.Errorf("action %d (%s): unexpected error: %w", i, a.Type(), applyErr)
		case expect != "" && applyErr == nil:
			return res, fmt.Errorf("action %d (%s): expected %s, got success", i, a.Type(), expect)
		case expect != got:
			return res, fmt.Errorf("action %d (%s): expected %s, got %w", i, a.Type(), expect, applyErr)
		}
	}
	return res, nil
}

func expectedCode(s string) (game.Code, error) {
	if s == "" {
		return "", nil
	}
	return game.ParseCode(s)
}
