package game

import (
	"encoding/json"
	"fmt"
)

// Envelope is the flat, tagged record form of an Action used in logs and
// scenario files.
type Envelope struct {
	Type       ActionType     `json:"type" yaml:"type"`
	PieceID    PieceID        `json:"pieceId,omitempty" yaml:"pieceId,omitempty"`
	To         TileID         `json:"to,omitempty" yaml:"to,omitempty"`
	AttackerID PieceID        `json:"attackerId,omitempty" yaml:"attackerId,omitempty"`
	DefenderID PieceID        `json:"defenderId,omitempty" yaml:"defenderId,omitempty"`
	Mode       AttackMode     `json:"mode,omitempty" yaml:"mode,omitempty"`
	Tactic     TacticKey      `json:"tactic,omitempty" yaml:"tactic,omitempty"`
	Payload    *TacticPayload `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// EncodeAction flattens an action.
func EncodeAction(a Action) Envelope {
	switch a := a.(type) {
	case MoveStart:
		return Envelope{Type: MoveStartAction, PieceID: a.PieceID}
	case MoveStep:
		return Envelope{Type: MoveStepAction, PieceID: a.PieceID, To: a.To}
	case MoveEnd:
		return Envelope{Type: MoveEndAction, PieceID: a.PieceID}
	case Attack:
		return Envelope{Type: AttackAction, AttackerID: a.AttackerID, DefenderID: a.DefenderID, Mode: a.Mode}
	case Disengage:
		return Envelope{Type: DisengageAction, PieceID: a.PieceID, To: a.To}
	case Knock:
		return Envelope{Type: KnockAction, PieceID: a.PieceID}
	case UseTactic:
		return Envelope{Type: UseTacticAction, Tactic: a.Tactic, Payload: a.Payload}
	case Pass:
		return Envelope{Type: PassAction}
	default:
		return Envelope{}
	}
}

// Decode rebuilds the action. Fields that do not belong to the variant are
// ignored; missing required fields are an error.
func (env Envelope) Decode() (Action, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	switch env.Type {
	case MoveStartAction:
		return MoveStart{PieceID: env.PieceID}, nil
	case MoveStepAction:
		return MoveStep{PieceID: env.PieceID, To: env.To}, nil
	case MoveEndAction:
		return MoveEnd{PieceID: env.PieceID}, nil
	case AttackAction:
		return Attack{AttackerID: env.AttackerID, DefenderID: env.DefenderID, Mode: env.Mode}, nil
	case DisengageAction:
		return Disengage{PieceID: env.PieceID, To: env.To}, nil
	case KnockAction:
		return Knock{PieceID: env.PieceID}, nil
	case UseTacticAction:
		return UseTactic{Tactic: env.Tactic, Payload: env.Payload}, nil
	default:
		return Pass{}, nil
	}
}

func (env Envelope) validate() error {
	var missing string
	switch env.Type {
	case MoveStartAction, MoveEndAction, KnockAction:
		if env.PieceID == "" {
			missing = "pieceId"
		}
	case MoveStepAction, DisengageAction:
		switch {
		case env.PieceID == "":
			missing = "pieceId"
		case env.To == "":
			missing = "to"
		}
	case AttackAction:
		switch {
		case env.AttackerID == "":
			missing = "attackerId"
		case env.DefenderID == "":
			missing = "defenderId"
		case env.Mode == "":
			missing = "mode"
		}
	case UseTacticAction:
		if env.Tactic == "" {
			missing = "tactic"
		}
	case PassAction:
	default:
		return fmt.Errorf("unknown action type %q", env.Type)
	}
	if missing != "" {
		return fmt.Errorf("%s action requires %s", env.Type, missing)
	}
	return nil
}

// ActionLog is the ordered record of applied actions.
type ActionLog []Action

func (l ActionLog) MarshalJSON() ([]byte, error) {
	envs := make([]Envelope, len(l))
	for i, a := range l {
		envs[i] = EncodeAction(a)
	}
	return json.Marshal(envs)
}

func (l *ActionLog) UnmarshalJSON(data []byte) error {
	var envs []Envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return err
	}
	log := make(ActionLog, 0, len(envs))
	for i, env := range envs {
		a, err := env.Decode()
		if err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
		log = append(log, a)
	}
	*l = log
	return nil
}
