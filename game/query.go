package game

// Read-only queries for a presentation layer. None of them modify state.

// CanMoveToNeighbor reports whether tile is adjacent to the piece's tile.
// Occupancy is not considered.
func CanMoveToNeighbor(state *GameState, id PieceID, tile TileID) bool {
	piece, ok := state.Pieces[id]
	if !ok {
		return false
	}
	return state.Board.Adjacent(piece.Tile, tile)
}

// IsPlayersTurn reports whether player is the active player.
func IsPlayersTurn(state *GameState, player Player) bool {
	return state.ActivePlayer == player
}

// PieceOnTile returns the piece standing on tile. When several pieces share
// a tile the one with the lowest id is returned.
func PieceOnTile(state *GameState, tile TileID) (Piece, bool) {
	return occupantOf(state, tile, "")
}

func occupantOf(state *GameState, tile TileID, except PieceID) (Piece, bool) {
	for _, id := range sortedKeys(state.Pieces) {
		if id == except {
			continue
		}
		if p := state.Pieces[id]; p.Tile == tile {
			return p, true
		}
	}
	return Piece{}, false
}

// PiecesByPlayer returns the pieces owned by player, ordered by id.
func PiecesByPlayer(state *GameState, player Player) []Piece {
	var pieces []Piece
	for _, id := range sortedKeys(state.Pieces) {
		if p := state.Pieces[id]; p.Owner == player {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// MovingPiece returns the piece of the active movement, if any.
func MovingPiece(state *GameState) (Piece, bool) {
	if state.MoveState == nil {
		return Piece{}, false
	}
	p, ok := state.Pieces[state.MoveState.PieceID]
	return p, ok
}

// PossibleMoves lists the adjacent tiles the piece may step onto.
func PossibleMoves(state *GameState, id PieceID) []TileID {
	piece, ok := state.Pieces[id]
	if !ok {
		return nil
	}
	var tiles []TileID
	for _, t := range state.Board.Adjacency[piece.Tile] {
		if occupant, occupied := occupantOf(state, t, id); occupied && occupant.Owner != piece.Owner {
			continue
		}
		tiles = append(tiles, t)
	}
	return tiles
}

// PossibleTargets lists the enemy pieces adjacent to the piece.
func PossibleTargets(state *GameState, id PieceID) []PieceID {
	piece, ok := state.Pieces[id]
	if !ok {
		return nil
	}
	var targets []PieceID
	for _, t := range state.Board.Adjacency[piece.Tile] {
		if occupant, occupied := occupantOf(state, t, id); occupied && occupant.Owner != piece.Owner {
			targets = append(targets, occupant.ID)
		}
	}
	return targets
}

// CanPerformAction runs the turn checks of the engine for one piece without
// applying anything.
func CanPerformAction(state *GameState, id PieceID, t ActionType) bool {
	piece, ok := state.Pieces[id]
	if !ok {
		return false
	}
	if piece.Owner != state.ActivePlayer {
		return false
	}
	if state.TurnState.ActionsRemaining <= 0 {
		return false
	}
	return !state.TurnState.Used(id, NormalizeActionType(t))
}

// Winner returns the player who reached the knock target.
func Winner(state *GameState) (Player, bool) {
	for _, p := range []Player{PlayerA, PlayerB} {
		if state.Players[p].KnockCount >= MaxKnockCount {
			return p, true
		}
	}
	return "", false
}

// IsGameOver reports whether a player reached the knock target or every
// piece on the board has been defeated twice.
func IsGameOver(state *GameState) bool {
	if _, ok := Winner(state); ok {
		return true
	}
	if len(state.Pieces) == 0 {
		return false
	}
	for _, p := range state.Pieces {
		if p.Defeats < MaxDefeats {
			return false
		}
	}
	return true
}
