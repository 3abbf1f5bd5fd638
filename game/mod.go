package game

// Player identifies one of the two sides.
type Player string

const (
	PlayerA Player = "A"
	PlayerB Player = "B"
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// TileID identifies a board cell. The engine treats it as opaque.
type TileID string

// PieceID identifies a piece.
type PieceID string

type StateHash uint64

const (
	ActionsPerTurn   = 2
	MaxKnockCount    = 3
	MaxDefeats       = 2
	FrontlineDamage  = 1
	TieDamage        = 1
	DisengageDamage  = 2
	DefaultReserve   = 30
	SupplyReturnWait = 1
)
