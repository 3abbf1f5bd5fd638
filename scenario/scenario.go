// Package scenario loads YAML game scenarios: an initial position, a list of
// scripted actions and the error each action is expected to raise.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"trigon/board"
	"trigon/game"
)

type Scenario struct {
	Name         string                        `yaml:"name"`
	Board        Board                         `yaml:"board"`
	EndZones     map[game.Player][]game.TileID `yaml:"endZones,omitempty"`
	Turn         int                           `yaml:"turn,omitempty"`
	ActivePlayer game.Player                   `yaml:"activePlayer,omitempty"`
	Players      map[game.Player]PlayerSpec    `yaml:"players,omitempty"`
	Pieces       []PieceSpec                   `yaml:"pieces"`
	Actions      []ActionSpec                  `yaml:"actions,omitempty"`
}

// Board is either an explicit adjacency list or a generated graph.
type Board struct {
	Adjacency map[game.TileID][]game.TileID `yaml:"adjacency,omitempty"`
	Graph     *GraphSpec                    `yaml:"graph,omitempty"`
}

type GraphSpec struct {
	Rows   int  `yaml:"rows"`
	Cols   int  `yaml:"cols"`
	Wings  bool `yaml:"wings"`
	Vertex bool `yaml:"vertex"`
}

// PlayerSpec overrides the starting resources of a player. Unset fields
// keep their defaults.
type PlayerSpec struct {
	KnockCount      *int `yaml:"knockCount,omitempty"`
	ReserveTroops   *int `yaml:"reserveTroops,omitempty"`
	GraveyardTroops *int `yaml:"graveyardTroops,omitempty"`
	Surrendered     bool `yaml:"surrendered,omitempty"`
}

type PieceSpec struct {
	ID      game.PieceID `yaml:"id"`
	Owner   game.Player  `yaml:"owner"`
	Tile    game.TileID  `yaml:"tile"`
	Stats   game.Stats   `yaml:"stats"`
	Troops  int          `yaml:"troops"`
	Defeats int          `yaml:"defeats,omitempty"`
}

// ActionSpec is one scripted action. Expect holds the error code the action
// must fail with; empty means it must succeed.
type ActionSpec struct {
	game.Envelope `yaml:",inline"`
	Expect        string `yaml:"expect,omitempty"`
}

// Load decodes a scenario. Unknown fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &s, nil
}

func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// BoardState builds the engine board. Explicit end zones replace the
// defaults of a generated graph.
func (s *Scenario) BoardState() (game.BoardState, error) {
	var bs game.BoardState
	switch {
	case s.Board.Graph != nil && s.Board.Adjacency != nil:
		return bs, errors.New("board: adjacency and graph are exclusive")
	case s.Board.Graph != nil:
		spec := s.Board.Graph
		var options []board.Option
		if spec.Wings {
			options = append(options, board.WithWings(board.StandardWings...))
		}
		g, err := board.Build(spec.Rows, spec.Cols, options...)
		if err != nil {
			return bs, fmt.Errorf("board: %w", err)
		}
		bs = g.BoardState(spec.Vertex)
	case s.Board.Adjacency != nil:
		bs = game.BoardState{Adjacency: s.Board.Adjacency}
	default:
		return bs, errors.New("board: adjacency or graph is required")
	}
	if s.EndZones != nil {
		bs.EndZones = s.EndZones
	}
	return bs, nil
}

// InitialState validates the scenario and returns its starting state.
func (s *Scenario) InitialState() (*game.GameState, error) {
	bs, err := s.BoardState()
	if err != nil {
		return nil, err
	}

	pieces := make([]game.Piece, 0, len(s.Pieces))
	seen := make(map[game.PieceID]bool, len(s.Pieces))
	for _, p := range s.Pieces {
		if p.ID == "" {
			return nil, errors.New("piece without id")
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("piece %s: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if !p.Owner.Valid() {
			return nil, fmt.Errorf("piece %s: unknown owner %q", p.ID, p.Owner)
		}
		if _, ok := bs.Adjacency[p.Tile]; !ok {
			return nil, fmt.Errorf("piece %s: unknown tile %q", p.ID, p.Tile)
		}
		if err := p.Stats.Validate(); err != nil {
			return nil, fmt.Errorf("piece %s: %w", p.ID, err)
		}
		if p.Troops < 0 || p.Defeats < 0 || p.Defeats > game.MaxDefeats {
			return nil, fmt.Errorf("piece %s: troops %d defeats %d out of range", p.ID, p.Troops, p.Defeats)
		}
		pieces = append(pieces, game.Piece{
			ID:      p.ID,
			Owner:   p.Owner,
			Tile:    p.Tile,
			Stats:   p.Stats,
			Troops:  p.Troops,
			Defeats: p.Defeats,
		})
	}

	state := game.NewGameState(bs, pieces...)
	if s.Turn > 0 {
		state.Turn = s.Turn
	}
	if s.ActivePlayer != "" {
		if !s.ActivePlayer.Valid() {
			return nil, fmt.Errorf("unknown active player %q", s.ActivePlayer)
		}
		state.ActivePlayer = s.ActivePlayer
	}
	for id, spec := range s.Players {
		if !id.Valid() {
			return nil, fmt.Errorf("unknown player %q", id)
		}
		ps := state.Players[id]
		if spec.KnockCount != nil {
			ps.KnockCount = *spec.KnockCount
		}
		if spec.ReserveTroops != nil {
			ps.ReserveTroops = *spec.ReserveTroops
		}
		if spec.GraveyardTroops != nil {
			ps.GraveyardTroops = *spec.GraveyardTroops
		}
		ps.Surrendered = spec.Surrendered
		state.Players[id] = ps
	}
	return state, nil
}

// ScriptedActions decodes the action list.
func (s *Scenario) ScriptedActions() ([]game.Action, error) {
	actions := make([]game.Action, 0, len(s.Actions))
	for i, spec := range s.Actions {
		a, err := spec.Decode()
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
