package game

import (
	"golang.org/x/exp/slices"
)

// Piece is a unit on the board. Troops is its remaining strength and
// Defeats counts how often Troops reached zero.
type Piece struct {
	ID      PieceID `json:"id"`
	Owner   Player  `json:"owner"`
	Tile    TileID  `json:"tile"`
	Stats   Stats   `json:"stats"`
	Troops  int     `json:"troops"`
	Defeats int     `json:"defeats"`
}

// BoardState is the static adjacency the engine consults. EndZones lists,
// per player, the tiles the opponent knocks on.
type BoardState struct {
	Adjacency map[TileID][]TileID `json:"adjacency"`
	EndZones  map[Player][]TileID `json:"endZones,omitempty"`
}

// Adjacent reports whether to is listed as a neighbor of from.
func (b BoardState) Adjacent(from, to TileID) bool {
	return slices.Contains(b.Adjacency[from], to)
}

// InEndZone reports whether tile belongs to the end zone of player.
func (b BoardState) InEndZone(player Player, tile TileID) bool {
	return slices.Contains(b.EndZones[player], tile)
}

type SupplyReason string

const (
	ReasonSupply SupplyReason = "supply"
	ReasonOut    SupplyReason = "out"
)

// SupplyItem is a piece waiting to return to play.
type SupplyItem struct {
	PieceID          PieceID      `json:"pieceId"`
	TurnsUntilReturn int          `json:"turnsUntilReturn"`
	Reason           SupplyReason `json:"reason"`
}

// StatusEffect is an effect owned by the tactic subsystem; the engine only
// carries it.
type StatusEffect struct {
	Key           string         `json:"key"`
	TargetPieceID PieceID        `json:"targetPieceId,omitempty"`
	ExpiresOnTurn int            `json:"expiresOnTurn,omitempty"`
	Attributes    map[string]any `json:"attributes,omitempty"`
}

// PlayerStatus holds the per-player resources.
type PlayerStatus struct {
	ID                 Player                  `json:"id"`
	KnockCount         int                     `json:"knockCount"`
	Surrendered        bool                    `json:"surrendered,omitempty"`
	ReserveTroops      int                     `json:"reserveTroops"`
	GraveyardTroops    int                     `json:"graveyardTroops"`
	SupplyQueue        []SupplyItem            `json:"supplyQueue"`
	Hand               []TacticKey             `json:"hand"`
	DeckCount          int                     `json:"deckCount"`
	Discard            []TacticKey             `json:"discard"`
	EquippedByPiece    map[PieceID][]TacticKey `json:"equippedByPiece"`
	InstallableIDs     []string                `json:"installableIds"`
	UsedTacticThisTurn bool                    `json:"usedTacticThisTurn,omitempty"`
	StatusEffects      []StatusEffect          `json:"statusEffects,omitempty"`
}

// NewPlayerStatus returns the starting resources of a player.
func NewPlayerStatus(id Player) PlayerStatus {
	return PlayerStatus{
		ID:              id,
		ReserveTroops:   DefaultReserve,
		SupplyQueue:     []SupplyItem{},
		Hand:            []TacticKey{},
		Discard:         []TacticKey{},
		EquippedByPiece: map[PieceID][]TacticKey{},
		InstallableIDs:  []string{},
	}
}

func (ps PlayerStatus) clone() PlayerStatus {
	c := ps
	c.SupplyQueue = slices.Clone(ps.SupplyQueue)
	c.Hand = slices.Clone(ps.Hand)
	c.Discard = slices.Clone(ps.Discard)
	c.InstallableIDs = slices.Clone(ps.InstallableIDs)
	if ps.EquippedByPiece != nil {
		c.EquippedByPiece = make(map[PieceID][]TacticKey, len(ps.EquippedByPiece))
		for id, keys := range ps.EquippedByPiece {
			c.EquippedByPiece[id] = slices.Clone(keys)
		}
	}
	if ps.StatusEffects != nil {
		c.StatusEffects = make([]StatusEffect, len(ps.StatusEffects))
		for i, e := range ps.StatusEffects {
			c.StatusEffects[i] = e
			if e.Attributes != nil {
				c.StatusEffects[i].Attributes = make(map[string]any, len(e.Attributes))
				for k, v := range e.Attributes {
					c.StatusEffects[i].Attributes[k] = v
				}
			}
		}
	}
	return c
}

// TurnState tracks the action budget of the active player.
type TurnState struct {
	ActionsRemaining   int                    `json:"actionsRemaining"`
	LastActionByPiece  map[PieceID][]Category `json:"lastActionByPiece"`
	UsedTacticThisTurn bool                   `json:"usedTacticThisTurn"`
}

// NewTurnState returns the budget at the start of a turn.
func NewTurnState() TurnState {
	return TurnState{
		ActionsRemaining:  ActionsPerTurn,
		LastActionByPiece: map[PieceID][]Category{},
	}
}

// Used reports whether the piece already spent the category this turn.
func (ts TurnState) Used(id PieceID, c Category) bool {
	return slices.Contains(ts.LastActionByPiece[id], c)
}

func (ts TurnState) clone() TurnState {
	c := ts
	c.LastActionByPiece = make(map[PieceID][]Category, len(ts.LastActionByPiece))
	for id, cats := range ts.LastActionByPiece {
		c.LastActionByPiece[id] = slices.Clone(cats)
	}
	return c
}

// MoveState exists only while a piece is mid-movement.
type MoveState struct {
	PieceID        PieceID  `json:"pieceId"`
	RemainingMoves int      `json:"remainingMoves"`
	Path           []TileID `json:"path"`
	Started        bool     `json:"started"`
	HasMoved       bool     `json:"hasMoved"`
	CurrentStep    int      `json:"currentStep"`
}

func (ms *MoveState) clone() *MoveState {
	if ms == nil {
		return nil
	}
	c := *ms
	c.Path = slices.Clone(ms.Path)
	return &c
}

// GameState is an immutable snapshot of a game. The engine never mutates a
// GameState it was given; every transition works on a Copy.
type GameState struct {
	Turn         int                     `json:"turn"`
	ActivePlayer Player                  `json:"activePlayer"`
	Pieces       map[PieceID]Piece       `json:"pieces"`
	Board        BoardState              `json:"board"`
	Players      map[Player]PlayerStatus `json:"players"`
	ActionLog    ActionLog               `json:"actionLog"`
	Stalemate    Stalemate               `json:"stalemate,omitempty"`
	TurnState    TurnState               `json:"turnState"`
	MoveState    *MoveState              `json:"moveState,omitempty"`
}

// NewGameState returns the state at the start of a game: turn 1, player A
// to act with a full action budget.
func NewGameState(board BoardState, pieces ...Piece) *GameState {
	gs := &GameState{
		Turn:         1,
		ActivePlayer: PlayerA,
		Pieces:       make(map[PieceID]Piece, len(pieces)),
		Board:        board,
		Players: map[Player]PlayerStatus{
			PlayerA: NewPlayerStatus(PlayerA),
			PlayerB: NewPlayerStatus(PlayerB),
		},
		ActionLog: ActionLog{},
		TurnState: NewTurnState(),
	}
	for _, p := range pieces {
		gs.Pieces[p.ID] = p
	}
	return gs
}

// Copy returns a deep copy of the dynamic state. The board is static and
// shared between copies.
func (gs *GameState) Copy() *GameState {
	pieces := make(map[PieceID]Piece, len(gs.Pieces))
	for id, p := range gs.Pieces {
		pieces[id] = p
	}

	players := make(map[Player]PlayerStatus, len(gs.Players))
	for id, ps := range gs.Players {
		players[id] = ps.clone()
	}

	return &GameState{
		Turn:         gs.Turn,
		ActivePlayer: gs.ActivePlayer,
		Pieces:       pieces,
		Board:        gs.Board,
		Players:      players,
		ActionLog:    slices.Clone(gs.ActionLog),
		Stalemate:    gs.Stalemate.clone(),
		TurnState:    gs.TurnState.clone(),
		MoveState:    gs.MoveState.clone(),
	}
}

// player returns the status of p, creating a fresh one if the state was
// built without it.
func (gs *GameState) player(p Player) PlayerStatus {
	if ps, ok := gs.Players[p]; ok {
		return ps
	}
	return NewPlayerStatus(p)
}
