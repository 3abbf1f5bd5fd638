package game

import "fmt"

// attack resolves a melee attack between adjacent pieces. A frontline
// attack deals fixed damage and locks both pieces; sun and moon attacks
// compare the named stat and damage the weaker side by the difference.
func (e *Engine) attack(state *GameState, a Attack) (*GameState, error) {
	attacker, okA := state.Pieces[a.AttackerID]
	defender, okD := state.Pieces[a.DefenderID]
	if !okA || !okD {
		return nil, illegal("Attacker or defender not found")
	}
	if !a.Mode.Valid() {
		return nil, illegal(fmt.Sprintf("Unknown attack mode %q", a.Mode))
	}
	if !state.Board.Adjacent(attacker.Tile, defender.Tile) {
		return nil, illegal("Defender not adjacent")
	}

	next := state.Copy()
	if a.Mode == ModeFrontline {
		e.damage(next, a.DefenderID, FrontlineDamage)
		next.Stalemate = next.Stalemate.link(a.AttackerID, a.DefenderID)
	} else {
		diff := attacker.Stats.Line(a.Mode) - defender.Stats.Line(a.Mode)
		switch {
		case diff > 0:
			e.damage(next, a.DefenderID, diff)
		case diff < 0:
			e.damage(next, a.AttackerID, abs(diff))
		default:
			e.damage(next, a.AttackerID, TieDamage)
			e.damage(next, a.DefenderID, TieDamage)
		}
	}
	return e.consume(next, a, true), nil
}

// disengage breaks every lock of the piece at the cost of self damage. A
// piece that drops to zero troops spends the action but stays put and keeps
// its locks.
func (e *Engine) disengage(state *GameState, a Disengage) (*GameState, error) {
	piece, ok := state.Pieces[a.PieceID]
	if !ok {
		return nil, illegal("Piece not found")
	}
	if !state.Board.Adjacent(piece.Tile, a.To) {
		return nil, illegal("Target not adjacent")
	}
	if occupant, occupied := occupantOf(state, a.To, a.PieceID); occupied && occupant.Owner != piece.Owner {
		return nil, illegal("Cannot enter enemy-occupied tile")
	}
	if !state.Stalemate.Locked(a.PieceID) {
		return nil, illegal("Piece is not in stalemate")
	}

	next := state.Copy()
	e.damage(next, a.PieceID, DisengageDamage)
	moved := next.Pieces[a.PieceID]
	if moved.Troops <= 0 {
		return e.consume(next, a, true), nil
	}

	moved.Tile = a.To
	next.Pieces[a.PieceID] = moved
	next.Stalemate = next.Stalemate.release(a.PieceID)
	return e.consume(next, a, true), nil
}

// knock scores for a piece standing in the opponent's end zone.
func (e *Engine) knock(state *GameState, a Knock) (*GameState, error) {
	piece, ok := state.Pieces[a.PieceID]
	if !ok {
		return nil, illegal("Piece not found")
	}
	if !state.Board.InEndZone(piece.Owner.Opponent(), piece.Tile) {
		return nil, illegal("Piece is not in opponent end zone")
	}

	next := state.Copy()
	ps := next.player(piece.Owner)
	ps.KnockCount++
	next.Players[piece.Owner] = ps
	return e.consume(next, a, true), nil
}

// damage removes up to amount troops from the target, floored at zero. The
// troops actually lost go to the owner's graveyard and reaching zero counts
// as a defeat. next must be an owned copy.
func (e *Engine) damage(next *GameState, target PieceID, amount int) {
	p, ok := next.Pieces[target]
	if !ok || amount <= 0 {
		return
	}
	before := p.Troops
	after := floorAt(before-amount, 0)

	ps := next.player(p.Owner)
	ps.GraveyardTroops += before - after
	next.Players[p.Owner] = ps

	p.Troops = after
	if before > 0 && after == 0 && p.Defeats < MaxDefeats {
		p.Defeats++
		e.logger.Debug().
			Str("piece", string(p.ID)).
			Int("defeats", p.Defeats).
			Msg("piece out")
	}
	next.Pieces[target] = p
}
