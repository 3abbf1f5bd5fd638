package game

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// StatRange is an inclusive bound for one piece attribute.
type StatRange struct {
	Min int
	Max int
}

var (
	SunRange  = StatRange{Min: 1, Max: 3}
	MoonRange = StatRange{Min: 1, Max: 3}
	MoveRange = StatRange{Min: 1, Max: 5}
	StarRange = StatRange{Min: 1, Max: 5}
)

func (r StatRange) contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Stats are the four fixed attributes of a piece. Sun and Moon are the two
// diagonal attack axes, Move is the per-activation movement budget and Star
// is descriptive only.
type Stats struct {
	Sun  int `json:"sun" yaml:"sun"`
	Moon int `json:"moon" yaml:"moon"`
	Move int `json:"move" yaml:"move"`
	Star int `json:"star" yaml:"star"`
}

// Validate reports the first attribute outside its range.
func (s Stats) Validate() error {
	checks := []struct {
		name  string
		value int
		r     StatRange
	}{
		{"sun", s.Sun, SunRange},
		{"moon", s.Moon, MoonRange},
		{"move", s.Move, MoveRange},
		{"star", s.Star, StarRange},
	}
	for _, c := range checks {
		if !c.r.contains(c.value) {
			return fmt.Errorf("stat %s=%d out of range [%d,%d]", c.name, c.value, c.r.Min, c.r.Max)
		}
	}
	return nil
}

// Line returns the stat used by a sun or moon attack.
func (s Stats) Line(mode AttackMode) int {
	if mode == ModeMoon {
		return s.Moon
	}
	return s.Sun
}

func floorAt[T constraints.Integer](v, floor T) T {
	if v < floor {
		return floor
	}
	return v
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
