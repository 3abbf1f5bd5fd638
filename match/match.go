// Package match holds the current state of one game and serializes the
// actions dispatched against it.
package match

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"trigon/game"
)

var (
	ErrGameOver      = errors.New("game is over - no actions allowed")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNoState       = errors.New("match needs an initial state")
)

// Update is one accepted action and the state it produced. Index is the
// position of the action in the match; after an undo or reset a getter
// resumes at a lower Index and the consumer should drop what it held past it.
type Update struct {
	Index  int
	Action game.Action
	State  *game.GameState
}

// UpdateGetter returns the next update not yet seen by this getter, or false
// when there is none.
type UpdateGetter func() (Update, bool)

type Match struct {
	mu      sync.Mutex
	id      uuid.UUID
	logger  zerolog.Logger
	engine  *game.Engine
	history []*game.GameState
	actions []game.Action
	over    bool
	// rewinds holds the action count left by each undo or reset, in order.
	rewinds []int
}

type Option func(m *Match)

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Match) {
		m.logger = logger
	}
}

func WithEngine(engine *game.Engine) Option {
	return func(m *Match) {
		if engine != nil {
			m.engine = engine
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(m *Match) {
		m.id = id
	}
}

// New starts a match from initial. The initial state is never modified.
func New(initial *game.GameState, options ...Option) (*Match, error) {
	if initial == nil {
		return nil, ErrNoState
	}
	m := &Match{ // Default values
		id:     uuid.New(),
		logger: log.Logger,
	}
	for _, option := range options {
		option(m)
	}
	m.logger = m.logger.With().Str("match", m.id.String()).Logger()
	if m.engine == nil {
		m.engine = game.NewEngine(game.WithLogger(m.logger))
	}
	m.history = []*game.GameState{initial}
	m.over = game.IsGameOver(initial)
	return m, nil
}

func (m *Match) ID() uuid.UUID {
	return m.id
}

// State returns the current state.
func (m *Match) State() *game.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current()
}

func (m *Match) current() *game.GameState {
	return m.history[len(m.history)-1]
}

// History returns every state from the initial one to the current one.
func (m *Match) History() []*game.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*game.GameState(nil), m.history...)
}

// Actions returns the accepted actions, including those that do not consume
// an action point and are therefore missing from the state's action log.
func (m *Match) Actions() []game.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]game.Action(nil), m.actions...)
}

func (m *Match) Over() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.over
}

func (m *Match) Winner() (game.Player, bool) {
	return game.Winner(m.State())
}

// Dispatch applies action to the current state. A rejected action leaves
// the match unchanged and returns the engine error.
func (m *Match) Dispatch(action game.Action) (*game.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.over {
		return nil, ErrGameOver
	}

	next, err := m.engine.Apply(m.current(), action)
	if err != nil {
		m.logger.Debug().Err(err).Msg("action rejected")
		return nil, err
	}

	m.history = append(m.history, next)
	m.actions = append(m.actions, action)
	m.over = game.IsGameOver(next)

	event := m.logger.Debug()
	if m.over {
		event = m.logger.Info()
	}
	event.
		Str("action", string(game.EncodeAction(action).Type)).
		Int("turn", next.Turn).
		Str("active", string(next.ActivePlayer)).
		Bool("over", m.over).
		Msg("action applied")
	return next, nil
}

// Undo drops the last accepted action.
func (m *Match) Undo() (*game.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 1 {
		return nil, ErrNothingToUndo
	}
	m.history = m.history[:len(m.history)-1]
	m.actions = m.actions[:len(m.actions)-1]
	m.rewinds = append(m.rewinds, len(m.actions))
	state := m.current()
	m.over = game.IsGameOver(state)
	return state, nil
}

// Reset returns the match to its initial state.
func (m *Match) Reset() *game.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = m.history[:1]
	m.actions = nil
	m.rewinds = append(m.rewinds, 0)
	m.over = game.IsGameOver(m.history[0])
	m.logger.Info().Msg("match reset")
	return m.history[0]
}

// Verify replays the accepted actions from the initial state and checks that
// the result matches the current state.
func (m *Match) Verify() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	final, err := m.engine.Replay(m.history[0], m.actions)
	if err != nil {
		return err
	}
	if got, want := final.Hash(), m.current().Hash(); got != want {
		return fmt.Errorf("replay diverged: hash %x, want %x", got, want)
	}
	return nil
}

// Updates returns a getter that walks the accepted actions in order. Each
// getter keeps its own position. An undo or reset moves it back to the
// lowest action count reached since its last call, even when new actions
// were dispatched in between.
func (m *Match) Updates() UpdateGetter {
	m.mu.Lock()
	seen, rewound := 0, len(m.rewinds)
	m.mu.Unlock()

	return func() (Update, bool) {
		m.mu.Lock()
		defer m.mu.Unlock()

		for _, n := range m.rewinds[rewound:] {
			seen = min(seen, n)
		}
		rewound = len(m.rewinds)

		if seen >= len(m.actions) {
			return Update{}, false
		}
		u := Update{Index: seen, Action: m.actions[seen], State: m.history[seen+1]}
		seen++
		return u, true
	}
}
