package world

import "github.com/samdwyer/hollowhex/internal/hex"

// HasLineOfSight reports whether end is visible from start within maxRange.
// Every cell on the line must be explored, and no cell strictly between the
// endpoints may hold a blocking object. Objects on the endpoints never block.
func HasLineOfSight(start, end hex.Coord, terrain Terrain, maxRange int) bool {
	if hex.Distance(start, end) > maxRange {
		return false
	}

	line := hex.Line(start, end)
	for i, c := range line {
		tile, ok := terrain.TileAt(c)
		if !ok {
			return false
		}
		if i > 0 && i < len(line)-1 && tile.Blocking {
			return false
		}
	}
	return true
}

// VisibleFrom returns the explored coordinates visible from origin within maxRange.
func VisibleFrom(origin hex.Coord, terrain Terrain, maxRange int) []hex.Coord {
	var visible []hex.Coord
	for _, c := range hex.Spiral(origin, maxRange) {
		if HasLineOfSight(origin, c, terrain, maxRange) {
			visible = append(visible, c)
		}
	}
	return visible
}
