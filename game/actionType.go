package game

// ActionType names an Action variant.
type ActionType string

const (
	MoveStartAction ActionType = "MoveStart"
	MoveStepAction  ActionType = "MoveStep"
	MoveEndAction   ActionType = "MoveEnd"
	AttackAction    ActionType = "Attack"
	DisengageAction ActionType = "Disengage"
	KnockAction     ActionType = "Knock"
	UseTacticAction ActionType = "UseTactic"
	PassAction      ActionType = "Pass"
)

// Category is the per-piece action bucket used by the repeat check.
type Category string

const (
	CategoryNone      Category = ""
	CategoryMove      Category = "Move"
	CategoryAttack    Category = "Attack"
	CategoryKnock     Category = "Knock"
	CategoryDisengage Category = "Disengage"
)

// NormalizeActionType maps an action type onto its repeat-check category.
// Every movement variant collapses into Move; types without a piece return
// CategoryNone.
func NormalizeActionType(t ActionType) Category {
	switch t {
	case MoveStartAction, MoveStepAction, MoveEndAction:
		return CategoryMove
	case AttackAction:
		return CategoryAttack
	case KnockAction:
		return CategoryKnock
	case DisengageAction:
		return CategoryDisengage
	default:
		return CategoryNone
	}
}

// repeatChecked reports whether the action type is subject to the
// same-piece-same-category rule. MoveStep and MoveEnd are exempt.
func repeatChecked(t ActionType) bool {
	switch t {
	case MoveStartAction, AttackAction, KnockAction, DisengageAction:
		return true
	}
	return false
}

// AttackMode selects the combat line of an Attack.
type AttackMode string

const (
	ModeSun       AttackMode = "sun"
	ModeMoon      AttackMode = "moon"
	ModeFrontline AttackMode = "frontline"
)

func (m AttackMode) Valid() bool {
	return m == ModeSun || m == ModeMoon || m == ModeFrontline
}

// TacticKey names a tactic card.
type TacticKey string

// TacticPayload carries the target of a tactic. Its interpretation belongs
// to the TacticResolver.
type TacticPayload struct {
	Kind    string    `json:"kind" yaml:"kind"`
	PieceID PieceID   `json:"pieceId,omitempty" yaml:"pieceId,omitempty"`
	TileID  TileID    `json:"tileId,omitempty" yaml:"tileId,omitempty"`
	Line    string    `json:"line,omitempty" yaml:"line,omitempty"`
	Pieces  []PieceID `json:"pieces,omitempty" yaml:"pieces,omitempty"`
	Tiles   []TileID  `json:"tiles,omitempty" yaml:"tiles,omitempty"`
	Amount  int       `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// Action is one discrete player action. The set of variants is closed.
type Action interface {
	Type() ActionType
	action()
}

type MoveStart struct {
	PieceID PieceID
}

type MoveStep struct {
	PieceID PieceID
	To      TileID
}

type MoveEnd struct {
	PieceID PieceID
}

type Attack struct {
	AttackerID PieceID
	DefenderID PieceID
	Mode       AttackMode
}

type Disengage struct {
	PieceID PieceID
	To      TileID
}

type Knock struct {
	PieceID PieceID
}

type UseTactic struct {
	Tactic  TacticKey
	Payload *TacticPayload
}

type Pass struct{}

func (MoveStart) Type() ActionType { return MoveStartAction }
func (MoveStep) Type() ActionType  { return MoveStepAction }
func (MoveEnd) Type() ActionType   { return MoveEndAction }
func (Attack) Type() ActionType    { return AttackAction }
func (Disengage) Type() ActionType { return DisengageAction }
func (Knock) Type() ActionType     { return KnockAction }
func (UseTactic) Type() ActionType { return UseTacticAction }
func (Pass) Type() ActionType      { return PassAction }

func (MoveStart) action() {}
func (MoveStep) action()  {}
func (MoveEnd) action()   {}
func (Attack) action()    {}
func (Disengage) action() {}
func (Knock) action()     {}
func (UseTactic) action() {}
func (Pass) action()      {}

// actingPiece returns the principal piece of an action: the attacker for
// Attack, the moving piece otherwise. Tactics and passes have none.
func actingPiece(a Action) (PieceID, bool) {
	switch a := a.(type) {
	case MoveStart:
		return a.PieceID, true
	case MoveStep:
		return a.PieceID, true
	case MoveEnd:
		return a.PieceID, true
	case Attack:
		return a.AttackerID, true
	case Disengage:
		return a.PieceID, true
	case Knock:
		return a.PieceID, true
	default:
		return "", false
	}
}
