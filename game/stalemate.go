package game

import (
	"trigon/utils"

	"golang.org/x/exp/slices"
)

// Stalemate records mutual melee locks. It is kept symmetric: whenever a
// lists b, b lists a. A piece without locks has no entry at all.
type Stalemate map[PieceID][]PieceID

// Locked reports whether the piece holds at least one lock.
func (s Stalemate) Locked(id PieceID) bool {
	return len(s[id]) > 0
}

// Partners returns the pieces locked with id.
func (s Stalemate) Partners(id PieceID) []PieceID {
	return slices.Clone(s[id])
}

// Symmetric reports whether every lock is recorded on both sides and no
// entry is empty.
func (s Stalemate) Symmetric() bool {
	for a, partners := range s {
		if len(partners) == 0 {
			return false
		}
		for _, b := range partners {
			if !slices.Contains(s[b], a) {
				return false
			}
		}
	}
	return true
}

func (s Stalemate) clone() Stalemate {
	if len(s) == 0 {
		return nil
	}
	c := make(Stalemate, len(s))
	for id, partners := range s {
		c[id] = slices.Clone(partners)
	}
	return c
}

// link records a lock in both directions. It must be called on an owned copy.
func (s Stalemate) link(a, b PieceID) Stalemate {
	if s == nil {
		s = Stalemate{}
	}
	s[a] = utils.AppendUnique(s[a], b)
	s[b] = utils.AppendUnique(s[b], a)
	return s
}

// release drops every lock held by id on both sides and deletes entries
// left empty. It must be called on an owned copy.
func (s Stalemate) release(id PieceID) Stalemate {
	for _, other := range s[id] {
		rest := utils.Without(s[other], id)
		if len(rest) == 0 {
			delete(s, other)
		} else {
			s[other] = rest
		}
	}
	delete(s, id)
	if len(s) == 0 {
		return nil
	}
	return s
}
