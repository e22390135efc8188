package world

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/samdwyer/hollowhex/internal/hex"
)

// ErrTileExists is returned when adding a tile at an explored coordinate.
var ErrTileExists = errors.New("tile already explored")

// Terrain is a read-only view of explored tiles.
// A missing tile means the coordinate is unexplored.
type Terrain interface {
	TileAt(c hex.Coord) (Tile, bool)
}

// Board is the sparse set of explored tiles. Tiles are only ever added.
type Board struct {
	tiles map[hex.Coord]Tile
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{tiles: make(map[hex.Coord]Tile)}
}

// Add places a tile on the board. Each coordinate holds at most one tile.
func (b *Board) Add(t Tile) error {
	if _, ok := b.tiles[t.Coord]; ok {
		return fmt.Errorf("add tile at %v: %w", t.Coord, ErrTileExists)
	}
	b.tiles[t.Coord] = t
	return nil
}

// TileAt returns the tile at c and whether it has been explored.
func (b *Board) TileAt(c hex.Coord) (Tile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// Has returns true if c has been explored.
func (b *Board) Has(c hex.Coord) bool {
	_, ok := b.tiles[c]
	return ok
}

// Len returns the number of explored tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Coords returns every explored coordinate ordered by row, then column.
func (b *Board) Coords() []hex.Coord {
	coords := make([]hex.Coord, 0, len(b.tiles))
	for c := range b.tiles {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, compareCoords)
	return coords
}

// Frontier returns the unexplored coordinates adjacent to explored ones, in row order.
func (b *Board) Frontier() []hex.Coord {
	seen := make(map[hex.Coord]bool)
	var frontier []hex.Coord
	for c := range b.tiles {
		for _, n := range c.Neighbors() {
			if b.Has(n) || seen[n] {
				continue
			}
			seen[n] = true
			frontier = append(frontier, n)
		}
	}
	slices.SortFunc(frontier, compareCoords)
	return frontier
}

// IsFrontier returns true if c is unexplored and touches explored space.
func (b *Board) IsFrontier(c hex.Coord) bool {
	if b.Has(c) {
		return false
	}
	for _, n := range c.Neighbors() {
		if b.Has(n) {
			return true
		}
	}
	return false
}

func compareCoords(a, b hex.Coord) int {
	if c := cmp.Compare(a.R, b.R); c != 0 {
		return c
	}
	return cmp.Compare(a.Q, b.Q)
}
