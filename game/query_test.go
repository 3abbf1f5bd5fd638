package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardQueries(t *testing.T) {
	state := newTestState()

	require.True(t, CanMoveToNeighbor(state, "p1", "t2"))
	require.False(t, CanMoveToNeighbor(state, "p1", "t3"))
	require.False(t, CanMoveToNeighbor(state, "p9", "t2"))

	require.True(t, IsPlayersTurn(state, PlayerA))
	require.False(t, IsPlayersTurn(state, PlayerB))

	p, ok := PieceOnTile(state, "t3")
	require.True(t, ok)
	require.Equal(t, PieceID("p2"), p.ID)
	_, ok = PieceOnTile(state, "t2")
	require.False(t, ok)

	pieces := PiecesByPlayer(state, PlayerB)
	require.Len(t, pieces, 1)
	require.Equal(t, PieceID("p2"), pieces[0].ID)
}

func TestMoveQueries(t *testing.T) {
	e := newTestEngine()

	t.Run("moving piece", func(t *testing.T) {
		_, ok := MovingPiece(newTestState())
		require.False(t, ok)

		state := mustApply(t, e, newTestState(), MoveStart{PieceID: "p1"})
		p, ok := MovingPiece(state)
		require.True(t, ok)
		require.Equal(t, PieceID("p1"), p.ID)
	})

	t.Run("possible moves skip enemies", func(t *testing.T) {
		p1 := attackerPiece()
		p1.Tile = "t2"
		friend := Piece{ID: "p3", Owner: PlayerA, Tile: "t1", Stats: Stats{Sun: 1, Moon: 1, Move: 1, Star: 1}, Troops: 1}
		state := newTestState(p1, defenderPiece(), friend)

		require.Equal(t, []TileID{"t1"}, PossibleMoves(state, "p1"))
		require.Equal(t, []PieceID{"p2"}, PossibleTargets(state, "p1"))
		require.Nil(t, PossibleMoves(state, "p9"))
		require.Nil(t, PossibleTargets(state, "p9"))
	})
}

func TestCanPerformAction(t *testing.T) {
	e := newTestEngine()
	state := newTestState()

	require.True(t, CanPerformAction(state, "p1", MoveStartAction))
	require.False(t, CanPerformAction(state, "p2", MoveStartAction), "Not the active player")
	require.False(t, CanPerformAction(state, "p9", MoveStartAction))

	state = mustApply(t, e, state, MoveStart{PieceID: "p1"}, MoveEnd{PieceID: "p1"})
	require.False(t, CanPerformAction(state, "p1", MoveStartAction))
	require.True(t, CanPerformAction(state, "p1", AttackAction))

	state.TurnState.ActionsRemaining = 0
	require.False(t, CanPerformAction(state, "p1", AttackAction))
}

func TestGameOver(t *testing.T) {
	t.Run("knock target", func(t *testing.T) {
		state := newTestState()
		_, ok := Winner(state)
		require.False(t, ok)
		require.False(t, IsGameOver(state))

		ps := state.Players[PlayerB]
		ps.KnockCount = MaxKnockCount
		state.Players[PlayerB] = ps

		winner, ok := Winner(state)
		require.True(t, ok)
		require.Equal(t, PlayerB, winner)
		require.True(t, IsGameOver(state))
	})

	t.Run("every piece defeated twice", func(t *testing.T) {
		p1, p2 := attackerPiece(), defenderPiece()
		p1.Defeats, p2.Defeats = MaxDefeats, MaxDefeats
		require.True(t, IsGameOver(newTestState(p1, p2)))

		p2.Defeats = 1
		require.False(t, IsGameOver(newTestState(p1, p2)))
	})

	t.Run("empty board", func(t *testing.T) {
		require.False(t, IsGameOver(NewGameState(lineBoard())))
	})
}

func TestNormalizeActionType(t *testing.T) {
	require.Equal(t, CategoryMove, NormalizeActionType(MoveStartAction))
	require.Equal(t, CategoryMove, NormalizeActionType(MoveStepAction))
	require.Equal(t, CategoryMove, NormalizeActionType(MoveEndAction))
	require.Equal(t, CategoryAttack, NormalizeActionType(AttackAction))
	require.Equal(t, CategoryKnock, NormalizeActionType(KnockAction))
	require.Equal(t, CategoryDisengage, NormalizeActionType(DisengageAction))
	require.Equal(t, CategoryNone, NormalizeActionType(PassAction))
	require.Equal(t, CategoryNone, NormalizeActionType(UseTacticAction))
}
