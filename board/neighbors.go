package board

import "golang.org/x/exp/slices"

type Direction string

const (
	DirUp        Direction = "Up"
	DirDown      Direction = "Down"
	DirUpLeft    Direction = "UpLeft"
	DirUpRight   Direction = "UpRight"
	DirDownLeft  Direction = "DownLeft"
	DirDownRight Direction = "DownRight"
	DirNeutral   Direction = "Neutral"
)

// directions is the order wing edge lists are read in.
var directions = []Direction{DirUp, DirDown, DirUpLeft, DirUpRight, DirDownLeft, DirDownRight}

type AttackAttribute string

const (
	AttrSun     AttackAttribute = "sun"
	AttrMoon    AttackAttribute = "moon"
	AttrNeutral AttackAttribute = "neutral"
)

type offset struct{ dr, dc int }

// Side-sharing offsets. An Up triangle has its flat side at the bottom.
var sideOffsets = map[Orientation][]offset{
	OrientUp:   {{1, 0}, {0, -1}, {0, 1}},
	OrientDown: {{-1, 0}, {0, -1}, {0, 1}},
}

// Corner-only offsets; edge neighbors are filtered out afterwards.
var vertexOffsets = map[Orientation][]offset{
	OrientUp: {
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -2}, {0, -1}, {0, 1}, {0, 2},
		{1, -2}, {1, -1}, {1, 0}, {1, 1}, {1, 2},
	},
	OrientDown: {
		{-1, -2}, {-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
		{0, -2}, {0, -1}, {0, 1}, {0, 2},
		{1, -1}, {1, 0}, {1, 1},
	},
}

// ResolveDirection labels the offset from a cell of the given orientation.
// Horizontal offsets depend on the orientation: the left neighbor of an Up
// cell is UpLeft, of a Down cell DownLeft.
func ResolveDirection(orient Orientation, dr, dc int) Direction {
	switch {
	case dr == -1 && dc == 0:
		return DirUp
	case dr == 1 && dc == 0:
		return DirDown
	case dr == 0 && dc == -1:
		if orient == OrientUp {
			return DirUpLeft
		}
		return DirDownLeft
	case dr == 0 && dc == 1:
		if orient == OrientUp {
			return DirUpRight
		}
		return DirDownRight
	case dr == 1 && dc == -1:
		return DirDownLeft
	case dr == 1 && dc == 1:
		return DirDownRight
	case dr == -1 && dc == -1:
		return DirUpLeft
	case dr == -1 && dc == 1:
		return DirUpRight
	}
	return DirNeutral
}

// AttackAttributeOf maps a direction to the stat it favors.
func AttackAttributeOf(dir Direction) AttackAttribute {
	switch dir {
	case DirUpRight, DirDownLeft:
		return AttrSun
	case DirUpLeft, DirDownRight:
		return AttrMoon
	}
	return AttrNeutral
}

func containsOffset(offsets []offset, dr, dc int) bool {
	return slices.Contains(offsets, offset{dr, dc})
}

func appendNeighbor(ns []Neighbor, n Neighbor) []Neighbor {
	for _, existing := range ns {
		if existing.ID == n.ID {
			return ns
		}
	}
	return append(ns, n)
}

func (g *Graph) computeEdges(t Tile) []Neighbor {
	var out []Neighbor
	if w, ok := g.wings[t.ID]; ok {
		for _, dir := range directions {
			for _, id := range w.Edges[dir] {
				out = appendNeighbor(out, Neighbor{ID: id, Dir: dir})
			}
		}
		return out
	}

	offsets := sideOffsets[t.Orient]
	for _, off := range offsets {
		r, c := t.Row+off.dr, t.Col+off.dc
		if !g.inBounds(r, c) {
			continue
		}
		out = appendNeighbor(out, Neighbor{ID: g.rc[Coord{r, c}], Dir: ResolveDirection(t.Orient, off.dr, off.dc)})
	}
	for _, w := range g.sortedWings() {
		for _, vc := range w.VirtualCoords {
			dr, dc := vc.Row-t.Row, vc.Col-t.Col
			if containsOffset(offsets, dr, dc) {
				out = appendNeighbor(out, Neighbor{ID: w.ID, Dir: ResolveDirection(t.Orient, dr, dc)})
			}
		}
	}
	return out
}

// EdgeNeighbors returns the side-sharing neighbors of id.
func (g *Graph) EdgeNeighbors(id int) []Neighbor {
	return slices.Clone(g.edges[id])
}

// VertexNeighbors returns the cells that share only a corner with id.
func (g *Graph) VertexNeighbors(id int) []int {
	t, ok := g.byID[id]
	if !ok {
		return nil
	}

	var candidates []int
	if w, isWing := g.wings[id]; isWing {
		candidates = w.Vertices
	} else {
		offsets := vertexOffsets[t.Orient]
		for _, off := range offsets {
			r, c := t.Row+off.dr, t.Col+off.dc
			if g.inBounds(r, c) {
				candidates = append(candidates, g.rc[Coord{r, c}])
			}
		}
		for _, w := range g.sortedWings() {
			for _, vc := range w.VirtualCoords {
				if containsOffset(offsets, vc.Row-t.Row, vc.Col-t.Col) {
					candidates = append(candidates, w.ID)
				}
			}
		}
	}

	var out []int
	for _, c := range candidates {
		if c == id || g.isEdge(id, c) || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (g *Graph) isEdge(from, to int) bool {
	for _, n := range g.edges[from] {
		if n.ID == to {
			return true
		}
	}
	return false
}

// Neighbors returns the ids adjacent to id: edge neighbors first, then the
// vertex neighbors when allowVertex is set.
func (g *Graph) Neighbors(id int, allowVertex bool) []int {
	var out []int
	for _, n := range g.edges[id] {
		out = append(out, n.ID)
	}
	if allowVertex {
		out = append(out, g.VertexNeighbors(id)...)
	}
	return out
}

// NeighborsWithDir is Neighbors with directions. Vertex neighbors are
// labeled Neutral.
func (g *Graph) NeighborsWithDir(id int, allowVertex bool) []Neighbor {
	out := g.EdgeNeighbors(id)
	if allowVertex {
		for _, v := range g.VertexNeighbors(id) {
			out = append(out, Neighbor{ID: v, Dir: DirNeutral})
		}
	}
	return out
}

// DirectionTo returns the direction of to as seen from from.
func (g *Graph) DirectionTo(from, to int) (Direction, bool) {
	for _, n := range g.edges[from] {
		if n.ID == to {
			return n.Dir, true
		}
	}
	if slices.Contains(g.VertexNeighbors(from), to) {
		return DirNeutral, true
	}
	return "", false
}
