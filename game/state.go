package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// TacticResolver resolves the effect of a tactic card. The engine has
// already validated the turn and will consume the action point afterwards.
type TacticResolver interface {
	ResolveTactic(state *GameState, tactic UseTactic) (*GameState, error)
}

// PassthroughTactics resolves every tactic to no effect.
type PassthroughTactics struct{}

func (PassthroughTactics) ResolveTactic(state *GameState, _ UseTactic) (*GameState, error) {
	return state, nil
}

type Option func(e *Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithTactics(tactics TacticResolver) Option {
	return func(e *Engine) {
		if tactics != nil {
			e.tactics = tactics
		}
	}
}

// Engine validates and applies actions. It holds no game state and is safe
// for concurrent use; callers serialize actions against a given state.
type Engine struct {
	logger  zerolog.Logger
	tactics TacticResolver
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{ // Default values
		logger:  log.Logger,
		tactics: PassthroughTactics{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

var defaultEngine = NewEngine()

// ApplyAction applies action to state with the default engine.
func ApplyAction(state *GameState, action Action) (*GameState, error) {
	return defaultEngine.Apply(state, action)
}

// Apply validates action against state and returns the resulting state. On
// failure it returns a nil state and an *Error; state is never modified.
func (e *Engine) Apply(state *GameState, action Action) (*GameState, error) {
	if state == nil {
		return nil, illegal("No game state")
	}
	if action == nil {
		return nil, illegal("Unknown action")
	}
	if err := validateTurn(state, action); err != nil {
		return nil, err
	}

	switch a := action.(type) {
	case MoveStart:
		return e.moveStart(state, a)
	case MoveStep:
		return e.moveStep(state, a)
	case MoveEnd:
		return e.moveEnd(state, a)
	case Attack:
		return e.attack(state, a)
	case Disengage:
		return e.disengage(state, a)
	case Knock:
		return e.knock(state, a)
	case UseTactic:
		return e.useTactic(state, a)
	case Pass:
		return e.consume(state.Copy(), a, true), nil
	default:
		return nil, illegal("Unknown action")
	}
}

// validateTurn runs the checks shared by every action, before any mutation.
func validateTurn(state *GameState, action Action) error {
	id, hasPiece := actingPiece(action)
	piece, found := state.Pieces[id]
	found = hasPiece && found

	if found && piece.Owner != state.ActivePlayer {
		return reject(CodeNotYourTurn, "It is not your turn")
	}
	if state.TurnState.ActionsRemaining <= 0 {
		return reject(CodeOutOfTurns, "No actions remaining")
	}
	if found && repeatChecked(action.Type()) && state.TurnState.Used(id, NormalizeActionType(action.Type())) {
		return reject(CodeSamePieceRepeat, "Same piece cannot perform same action twice in a turn")
	}
	return nil
}

func (e *Engine) useTactic(state *GameState, a UseTactic) (*GameState, error) {
	next, err := e.tactics.ResolveTactic(state.Copy(), a)
	if err != nil {
		if CodeOf(err) != "" {
			return nil, err
		}
		return nil, illegal(err.Error())
	}
	if next == nil {
		return nil, illegal("Tactic resolved to no state")
	}
	return e.consume(next, a, true), nil
}

// consume spends one action point on next, which must be an owned copy, logs
// the action and rotates the turn when endTurnCheck is set and the budget
// is exhausted.
func (e *Engine) consume(next *GameState, action Action, endTurnCheck bool) *GameState {
	ts := &next.TurnState
	ts.ActionsRemaining = floorAt(ts.ActionsRemaining-1, 0)
	next.ActionLog = append(next.ActionLog, action)
	if id, ok := actingPiece(action); ok {
		if ts.LastActionByPiece == nil {
			ts.LastActionByPiece = map[PieceID][]Category{}
		}
		ts.LastActionByPiece[id] = append(ts.LastActionByPiece[id], NormalizeActionType(action.Type()))
	}

	if endTurnCheck && ts.ActionsRemaining == 0 {
		e.rotate(next)
	}
	return next
}

// rotate hands the turn to the opponent. Locks survive the rotation, an
// in-progress movement does not.
func (e *Engine) rotate(next *GameState) {
	from := next.ActivePlayer
	next.Turn++
	next.ActivePlayer = from.Opponent()
	next.TurnState = NewTurnState()
	next.MoveState = nil
	e.logger.Debug().
		Int("turn", next.Turn).
		Str("from", string(from)).
		Str("to", string(next.ActivePlayer)).
		Msg("turn rotated")
}

// Hash digests everything a turn can change: pieces, player resources
// (hands, discards, equipment, status effects, surrender), locks, the turn
// budget and an in-progress movement. The board and the contents of the
// action log are left out; the log only contributes its length. Equal states
// hash equally regardless of map iteration order.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	writeInt := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}
	writeStr := func(s string) {
		writeInt(len(s))
		hasher.Write([]byte(s))
	}
	writeBool := func(b bool) {
		if b {
			writeInt(1)
		} else {
			writeInt(0)
		}
	}
	writeKeys := func(keys []TacticKey) {
		writeInt(len(keys))
		for _, k := range keys {
			writeStr(string(k))
		}
	}

	writeInt(gs.Turn)
	writeStr(string(gs.ActivePlayer))

	for _, id := range sortedKeys(gs.Pieces) {
		p := gs.Pieces[id]
		writeStr(string(p.ID))
		writeStr(string(p.Owner))
		writeStr(string(p.Tile))
		writeInt(p.Troops)
		writeInt(p.Defeats)
		writeInt(p.Stats.Sun)
		writeInt(p.Stats.Moon)
		writeInt(p.Stats.Move)
		writeInt(p.Stats.Star)
	}

	for _, id := range sortedKeys(gs.Players) {
		ps := gs.Players[id]
		writeStr(string(id))
		writeInt(ps.KnockCount)
		writeBool(ps.Surrendered)
		writeInt(ps.ReserveTroops)
		writeInt(ps.GraveyardTroops)
		writeInt(len(ps.SupplyQueue))
		for _, item := range ps.SupplyQueue {
			writeStr(string(item.PieceID))
			writeInt(item.TurnsUntilReturn)
			writeStr(string(item.Reason))
		}
		writeKeys(ps.Hand)
		writeInt(ps.DeckCount)
		writeKeys(ps.Discard)
		writeInt(len(ps.EquippedByPiece))
		for _, piece := range sortedKeys(ps.EquippedByPiece) {
			writeStr(string(piece))
			writeKeys(ps.EquippedByPiece[piece])
		}
		writeInt(len(ps.InstallableIDs))
		for _, installable := range ps.InstallableIDs {
			writeStr(installable)
		}
		writeBool(ps.UsedTacticThisTurn)
		writeInt(len(ps.StatusEffects))
		for _, effect := range ps.StatusEffects {
			writeStr(effect.Key)
			writeStr(string(effect.TargetPieceID))
			writeInt(effect.ExpiresOnTurn)
			writeInt(len(effect.Attributes))
			for _, attr := range sortedKeys(effect.Attributes) {
				writeStr(attr)
				// Numbers decoded from JSON come back as float64 and print the same.
				writeStr(fmt.Sprint(effect.Attributes[attr]))
			}
		}
	}

	for _, id := range sortedKeys(gs.Stalemate) {
		partners := slices.Clone(gs.Stalemate[id])
		slices.Sort(partners)
		writeStr(string(id))
		writeInt(len(partners))
		for _, p := range partners {
			writeStr(string(p))
		}
	}

	writeInt(gs.TurnState.ActionsRemaining)
	writeBool(gs.TurnState.UsedTacticThisTurn)
	for _, id := range sortedKeys(gs.TurnState.LastActionByPiece) {
		writeStr(string(id))
		writeInt(len(gs.TurnState.LastActionByPiece[id]))
		for _, c := range gs.TurnState.LastActionByPiece[id] {
			writeStr(string(c))
		}
	}

	writeBool(gs.MoveState != nil)
	if ms := gs.MoveState; ms != nil {
		writeStr(string(ms.PieceID))
		writeInt(ms.RemainingMoves)
		writeBool(ms.Started)
		writeBool(ms.HasMoved)
		writeInt(ms.CurrentStep)
		writeInt(len(ms.Path))
		for _, t := range ms.Path {
			writeStr(string(t))
		}
	}

	writeInt(len(gs.ActionLog))

	return StateHash(hasher.Sum64())
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
