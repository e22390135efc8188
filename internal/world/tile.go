// Package world provides the sparse hex board, line of sight and pathfinding.
package world

import "github.com/samdwyer/hollowhex/internal/hex"

// Tile is a single explored board cell.
type Tile struct {
	Coord    hex.Coord
	Kind     string // Template ID the tile was generated from
	Object   string // Object on the tile (e.g., "rubble"), empty if none
	Blocking bool   // Object blocks traversal and sight through the tile
	Exit     bool   // Reaching this tile ends the game in victory
}

// IsPassable returns true if a walking mover can enter the tile.
func (t Tile) IsPassable() bool {
	return !t.Blocking
}

// PassableFor returns true if a mover with the given flight capability can enter the tile.
func (t Tile) PassableFor(flying bool) bool {
	return flying || !t.Blocking
}
