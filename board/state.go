package board

import (
	"fmt"
	"strconv"
	"strings"

	"trigon/game"
)

const tilePrefix = "t"

// TileID names cell id for the engine.
func TileID(id int) game.TileID {
	return game.TileID(fmt.Sprintf("%s%d", tilePrefix, id))
}

// ParseTileID is the inverse of TileID.
func ParseTileID(tile game.TileID) (int, bool) {
	s, ok := strings.CutPrefix(string(tile), tilePrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// EndZones returns the default end zones: A's home is the bottom row, B's
// home is the top row. Pieces of B knock on A's zone and vice versa.
func (g *Graph) EndZones() map[game.Player][]game.TileID {
	zones := map[game.Player][]game.TileID{
		game.PlayerA: {},
		game.PlayerB: {},
	}
	for col := 0; col < g.cols; col++ {
		if t, ok := g.TileAt(g.rows-1, col); ok {
			zones[game.PlayerA] = append(zones[game.PlayerA], TileID(t.ID))
		}
		if t, ok := g.TileAt(0, col); ok {
			zones[game.PlayerB] = append(zones[game.PlayerB], TileID(t.ID))
		}
	}
	return zones
}

// BoardState converts the graph into the adjacency the engine consults.
func (g *Graph) BoardState(allowVertex bool) game.BoardState {
	adjacency := make(map[game.TileID][]game.TileID, len(g.tiles))
	for _, t := range g.tiles {
		ns := g.Neighbors(t.ID, allowVertex)
		tiles := make([]game.TileID, 0, len(ns))
		for _, n := range ns {
			tiles = append(tiles, TileID(n))
		}
		adjacency[TileID(t.ID)] = tiles
	}
	return game.BoardState{
		Adjacency: adjacency,
		EndZones:  g.EndZones(),
	}
}
