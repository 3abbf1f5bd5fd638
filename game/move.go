package game

// moveStart opens a movement for the piece with its full Move budget. It
// spends an action point but never ends the turn by itself.
func (e *Engine) moveStart(state *GameState, a MoveStart) (*GameState, error) {
	piece, ok := state.Pieces[a.PieceID]
	if !ok {
		return nil, illegal("Piece not found")
	}

	next := state.Copy()
	next.MoveState = &MoveState{
		PieceID:        a.PieceID,
		RemainingMoves: piece.Stats.Move,
		Path:           []TileID{piece.Tile},
		Started:        true,
	}
	return e.consume(next, a, false), nil
}

// moveStep advances the moving piece by one tile. Running out of budget ends
// the movement; stepping onto a friendly piece triggers supply.
func (e *Engine) moveStep(state *GameState, a MoveStep) (*GameState, error) {
	piece, ok := state.Pieces[a.PieceID]
	ms := state.MoveState
	if !ok || ms == nil || ms.PieceID != a.PieceID || !ms.Started {
		return nil, illegal("Move not started or invalid state")
	}
	if ms.RemainingMoves <= 0 {
		return nil, reject(CodeOutOfRange, "No moves remaining")
	}
	if !state.Board.Adjacent(piece.Tile, a.To) {
		return nil, illegal("Target not adjacent")
	}
	occupant, occupied := occupantOf(state, a.To, a.PieceID)
	if occupied && occupant.Owner != piece.Owner {
		return nil, illegal("Cannot enter enemy-occupied tile")
	}

	next := state.Copy()
	piece.Tile = a.To
	next.Pieces[a.PieceID] = piece

	m := next.MoveState
	m.RemainingMoves = floorAt(m.RemainingMoves-1, 0)
	m.Path = append(m.Path, a.To)
	m.CurrentStep++
	m.HasMoved = true

	if m.RemainingMoves == 0 {
		next.MoveState = nil
		return next, nil
	}
	if occupied {
		e.supply(next, piece)
	}
	return next, nil
}

func (e *Engine) moveEnd(state *GameState, a MoveEnd) (*GameState, error) {
	ms := state.MoveState
	if ms == nil || ms.PieceID != a.PieceID || !ms.Started {
		return nil, illegal("Move not started or invalid state")
	}

	next := state.Copy()
	next.MoveState = nil
	return next, nil
}

// supply queues the piece for return and ends its movement.
func (e *Engine) supply(next *GameState, piece Piece) {
	ps := next.player(piece.Owner)
	ps.SupplyQueue = append(ps.SupplyQueue, SupplyItem{
		PieceID:          piece.ID,
		TurnsUntilReturn: SupplyReturnWait,
		Reason:           ReasonSupply,
	})
	next.Players[piece.Owner] = ps
	next.MoveState = nil

	e.logger.Debug().
		Str("piece", string(piece.ID)).
		Str("tile", string(piece.Tile)).
		Msg("supply triggered")
}
