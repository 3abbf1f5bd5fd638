// Package board builds the triangular board graph: a rectangular grid of
// alternating Up/Down triangles plus hand-wired wing cells on the left and
// right edges.
package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	DefaultRows = 6
	DefaultCols = 5
)

type Orientation string

const (
	OrientUp    Orientation = "Up"
	OrientDown  Orientation = "Down"
	OrientLeft  Orientation = "Left"
	OrientRight Orientation = "Right"
)

// Tile is one cell. Wing cells report their first virtual coordinate.
type Tile struct {
	ID     int
	Row    int
	Col    int
	Orient Orientation
}

// Neighbor is an adjacent cell and the direction it lies in.
type Neighbor struct {
	ID  int
	Dir Direction
}

// Graph is immutable once built; all queries are pure.
type Graph struct {
	rows  int
	cols  int
	tiles []Tile
	byID  map[int]Tile
	rc    map[Coord]int
	wings map[int]Wing
	edges map[int][]Neighbor
}

type Option func(b *builder)

type builder struct {
	wings []Wing
}

// WithWings adds wing cells to the grid.
func WithWings(wings ...Wing) Option {
	return func(b *builder) {
		b.wings = append(b.wings, wings...)
	}
}

// Standard returns the 6x5 board with its four wing cells.
func Standard() *Graph {
	g, err := Build(DefaultRows, DefaultCols, WithWings(StandardWings...))
	if err != nil {
		panic(err)
	}
	return g
}

// Build creates the graph for a rows x cols grid. Cells are numbered row by
// row; even ids point up, odd ids point down.
func Build(rows, cols int, options ...Option) (*Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", rows, cols)
	}
	b := &builder{}
	for _, option := range options {
		option(b)
	}

	g := &Graph{
		rows:  rows,
		cols:  cols,
		byID:  make(map[int]Tile, rows*cols+len(b.wings)),
		rc:    make(map[Coord]int, rows*cols),
		wings: make(map[int]Wing, len(b.wings)),
		edges: make(map[int][]Neighbor, rows*cols+len(b.wings)),
	}

	for i := 0; i < rows*cols; i++ {
		orient := OrientUp
		if i%2 == 1 {
			orient = OrientDown
		}
		t := Tile{ID: i, Row: i / cols, Col: i % cols, Orient: orient}
		g.tiles = append(g.tiles, t)
		g.byID[i] = t
		g.rc[Coord{t.Row, t.Col}] = i
	}

	for _, w := range b.wings {
		if _, dup := g.byID[w.ID]; dup {
			return nil, fmt.Errorf("wing %d collides with an existing tile", w.ID)
		}
		if len(w.VirtualCoords) == 0 {
			return nil, fmt.Errorf("wing %d has no virtual coordinates", w.ID)
		}
		if w.Orient != OrientLeft && w.Orient != OrientRight {
			return nil, fmt.Errorf("wing %d must face Left or Right, got %q", w.ID, w.Orient)
		}
		primary := w.VirtualCoords[0]
		t := Tile{ID: w.ID, Row: primary.Row, Col: primary.Col, Orient: w.Orient}
		g.tiles = append(g.tiles, t)
		g.byID[w.ID] = t
		g.wings[w.ID] = w
	}

	for _, w := range b.wings {
		for _, ids := range w.Edges {
			for _, id := range ids {
				if !g.HasTile(id) {
					return nil, fmt.Errorf("wing %d references unknown tile %d", w.ID, id)
				}
			}
		}
		for _, id := range w.Vertices {
			if !g.HasTile(id) {
				return nil, fmt.Errorf("wing %d references unknown tile %d", w.ID, id)
			}
		}
	}

	for _, t := range g.tiles {
		g.edges[t.ID] = g.computeEdges(t)
	}
	return g, nil
}

func (g *Graph) Rows() int { return g.rows }
func (g *Graph) Cols() int { return g.cols }

// Len is the number of cells including wings.
func (g *Graph) Len() int { return len(g.tiles) }

// Tiles returns every cell: grid cells by id, then wings in build order.
func (g *Graph) Tiles() []Tile {
	return slices.Clone(g.tiles)
}

func (g *Graph) Tile(id int) (Tile, bool) {
	t, ok := g.byID[id]
	return t, ok
}

func (g *Graph) HasTile(id int) bool {
	_, ok := g.byID[id]
	return ok
}

// TileAt returns the grid cell at (row, col). Wing cells are not addressable
// by coordinate.
func (g *Graph) TileAt(row, col int) (Tile, bool) {
	id, ok := g.rc[Coord{row, col}]
	if !ok {
		return Tile{}, false
	}
	return g.byID[id], true
}

func (g *Graph) TilesByOrientation(orient Orientation) []Tile {
	var out []Tile
	for _, t := range g.tiles {
		if t.Orient == orient {
			out = append(out, t)
		}
	}
	return out
}

// IsWing reports whether id is a wing cell.
func (g *Graph) IsWing(id int) bool {
	_, ok := g.wings[id]
	return ok
}

func (g *Graph) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// sortedWings returns wings ordered by id so neighbor lists are stable.
func (g *Graph) sortedWings() []Wing {
	ws := make([]Wing, 0, len(g.wings))
	for _, w := range g.wings {
		ws = append(ws, w)
	}
	slices.SortFunc(ws, func(a, b Wing) int { return a.ID - b.ID })
	return ws
}
