package match

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"trigon/game"
)

func lineBoard() game.BoardState {
	return game.BoardState{
		Adjacency: map[game.TileID][]game.TileID{
			"t1": {"t2"},
			"t2": {"t1", "t3"},
			"t3": {"t2", "t4"},
			"t4": {"t3"},
		},
		EndZones: map[game.Player][]game.TileID{
			game.PlayerA: {"t1"},
			game.PlayerB: {"t4"},
		},
	}
}

func initialState() *game.GameState {
	return game.NewGameState(lineBoard(),
		game.Piece{ID: "p1", Owner: game.PlayerA, Tile: "t1", Stats: game.Stats{Sun: 2, Moon: 1, Move: 2, Star: 3}, Troops: 5},
		game.Piece{ID: "p2", Owner: game.PlayerB, Tile: "t3", Stats: game.Stats{Sun: 1, Moon: 2, Move: 2, Star: 3}, Troops: 5},
	)
}

func newMatch(t *testing.T, initial *game.GameState) *Match {
	t.Helper()
	m, err := New(initial, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	t.Run("fresh match", func(t *testing.T) {
		initial := initialState()
		m := newMatch(t, initial)

		require.NotEqual(t, uuid.Nil, m.ID())
		require.Same(t, initial, m.State())
		require.Len(t, m.History(), 1)
		require.False(t, m.Over())
	})

	t.Run("explicit id", func(t *testing.T) {
		id := uuid.New()
		m, err := New(initialState(), WithID(id), WithLogger(zerolog.Nop()))
		require.NoError(t, err)
		require.Equal(t, id, m.ID())
	})

	t.Run("nil initial state", func(t *testing.T) {
		m, err := New(nil)
		require.ErrorIs(t, err, ErrNoState)
		require.Nil(t, m)
	})
}

func TestDispatch(t *testing.T) {
	t.Run("accepted action", func(t *testing.T) {
		m := newMatch(t, initialState())

		next, err := m.Dispatch(game.MoveStart{PieceID: "p1"})
		require.NoError(t, err)
		require.Same(t, next, m.State())
		require.Len(t, m.History(), 2)
		require.Len(t, m.Actions(), 1)
	})

	t.Run("rejected action leaves the match unchanged", func(t *testing.T) {
		initial := initialState()
		m := newMatch(t, initial)

		_, err := m.Dispatch(game.MoveStart{PieceID: "p2"})
		require.ErrorIs(t, err, game.ErrNotYourTurn)
		require.Same(t, initial, m.State())
		require.Empty(t, m.Actions())
	})

	t.Run("game over blocks further actions", func(t *testing.T) {
		initial := initialState()
		p := initial.Players[game.PlayerB]
		p.KnockCount = game.MaxKnockCount - 1
		initial.Players[game.PlayerB] = p
		initial.ActivePlayer = game.PlayerB
		piece := initial.Pieces["p2"]
		piece.Tile = "t1"
		initial.Pieces["p2"] = piece
		initial.Pieces["p1"] = game.Piece{ID: "p1", Owner: game.PlayerA, Tile: "t4", Stats: game.Stats{Sun: 1, Moon: 1, Move: 1, Star: 1}, Troops: 5}

		m := newMatch(t, initial)
		_, err := m.Dispatch(game.Knock{PieceID: "p2"})
		require.NoError(t, err)
		require.True(t, m.Over())

		winner, ok := m.Winner()
		require.True(t, ok)
		require.Equal(t, game.PlayerB, winner)

		_, err = m.Dispatch(game.Pass{})
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("concurrent dispatch is serialized", func(t *testing.T) {
		m := newMatch(t, initialState())

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = m.Dispatch(game.Pass{})
			}()
		}
		wg.Wait()

		require.Len(t, m.Actions(), 8)
		require.Equal(t, 5, m.State().Turn, "8 passes spend 4 full turns")
		require.NoError(t, m.Verify())
	})
}

func TestUndoReset(t *testing.T) {
	t.Run("undo", func(t *testing.T) {
		initial := initialState()
		m := newMatch(t, initial)

		_, err := m.Undo()
		require.ErrorIs(t, err, ErrNothingToUndo)

		first, err := m.Dispatch(game.MoveStart{PieceID: "p1"})
		require.NoError(t, err)
		_, err = m.Dispatch(game.MoveStep{PieceID: "p1", To: "t2"})
		require.NoError(t, err)

		state, err := m.Undo()
		require.NoError(t, err)
		require.Same(t, first, state)
		require.Len(t, m.Actions(), 1)
	})

	t.Run("reset", func(t *testing.T) {
		initial := initialState()
		m := newMatch(t, initial)

		_, err := m.Dispatch(game.Pass{})
		require.NoError(t, err)

		require.Same(t, initial, m.Reset())
		require.Len(t, m.History(), 1)
		require.Empty(t, m.Actions())
	})
}

func TestUpdates(t *testing.T) {
	t.Run("walks accepted actions in order", func(t *testing.T) {
		m := newMatch(t, initialState())
		getUpdate := m.Updates()

		_, ok := getUpdate()
		require.False(t, ok, "No update before any action")

		_, err := m.Dispatch(game.MoveStart{PieceID: "p1"})
		require.NoError(t, err)
		_, err = m.Dispatch(game.MoveStep{PieceID: "p1", To: "t2"})
		require.NoError(t, err)

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, 0, u.Index)
		require.Equal(t, game.MoveStart{PieceID: "p1"}, u.Action)

		u, ok = getUpdate()
		require.True(t, ok)
		require.Equal(t, 1, u.Index)
		require.Equal(t, game.TileID("t2"), u.State.Pieces["p1"].Tile)

		_, ok = getUpdate()
		require.False(t, ok)

		_, err = m.Undo()
		require.NoError(t, err)
		_, ok = getUpdate()
		require.False(t, ok, "Undo moves the getter back")
	})

	t.Run("undo followed by dispatch before the next call", func(t *testing.T) {
		m := newMatch(t, initialState())
		getUpdate := m.Updates()

		_, err := m.Dispatch(game.MoveStart{PieceID: "p1"})
		require.NoError(t, err)
		_, ok := getUpdate()
		require.True(t, ok)

		_, err = m.Undo()
		require.NoError(t, err)
		_, err = m.Dispatch(game.Pass{})
		require.NoError(t, err)

		u, ok := getUpdate()
		require.True(t, ok, "The replacement action is delivered")
		require.Equal(t, 0, u.Index)
		require.Equal(t, game.Pass{}, u.Action)
		require.Same(t, m.State(), u.State)

		_, ok = getUpdate()
		require.False(t, ok)
	})

	t.Run("reset followed by dispatch before the next call", func(t *testing.T) {
		m := newMatch(t, initialState())
		getUpdate := m.Updates()

		for i := 0; i < 3; i++ {
			_, err := m.Dispatch(game.Pass{})
			require.NoError(t, err)
			_, ok := getUpdate()
			require.True(t, ok)
		}

		m.Reset()
		_, err := m.Dispatch(game.MoveStart{PieceID: "p1"})
		require.NoError(t, err)

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, 0, u.Index)
		require.Equal(t, game.MoveStart{PieceID: "p1"}, u.Action)
	})

	t.Run("getters keep separate positions", func(t *testing.T) {
		m := newMatch(t, initialState())
		_, err := m.Dispatch(game.Pass{})
		require.NoError(t, err)
		_, err = m.Undo()
		require.NoError(t, err)

		early := m.Updates()
		_, err = m.Dispatch(game.Pass{})
		require.NoError(t, err)
		_, ok := early()
		require.True(t, ok)

		late := m.Updates()
		u, ok := late()
		require.True(t, ok, "A new getter starts from the first action")
		require.Equal(t, 0, u.Index)

		_, ok = early()
		require.False(t, ok)
	})
}

func TestVerify(t *testing.T) {
	m := newMatch(t, initialState())
	for _, a := range []game.Action{
		game.MoveStart{PieceID: "p1"},
		game.MoveStep{PieceID: "p1", To: "t2"},
		game.MoveEnd{PieceID: "p1"},
		game.Attack{AttackerID: "p1", DefenderID: "p2", Mode: game.ModeFrontline},
	} {
		_, err := m.Dispatch(a)
		require.NoError(t, err)
	}
	require.NoError(t, m.Verify())
}
