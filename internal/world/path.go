package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/hollowhex/internal/hex"
)

// MaxPathDepth bounds how many steps FindPath explores before giving up.
const MaxPathDepth = 12

// Blockers is the set of coordinates occupied by entities.
// The zero value is an empty set; lookups on it read a nil map.
type Blockers struct {
	set mapset.Set[hex.Coord]
}

// NewBlockers creates a blocker set from occupied coordinates.
func NewBlockers(coords ...hex.Coord) Blockers {
	b := Blockers{set: mapset.New[hex.Coord]()}
	for _, c := range coords {
		b.set.Put(c)
	}
	return b
}

// Has returns true if c is occupied.
func (b Blockers) Has(c hex.Coord) bool {
	return b.set.Has(c)
}

// Len returns the number of occupied coordinates.
func (b Blockers) Len() int {
	return b.set.Size()
}

type pathNode struct {
	at    hex.Coord
	depth int
}

// FindPath returns the shortest route from start to the nearest goal, excluding
// start and including the goal. It returns an empty path when start is itself a
// goal and nil when no goal is reachable within MaxPathDepth steps.
//
// Unexplored cells are never entered. Blocking objects stop walkers but not
// flyers. Occupied cells may be entered only when they are goals.
func FindPath(start hex.Coord, goals []hex.Coord, terrain Terrain, blockers Blockers, flying bool) []hex.Coord {
	goalSet := mapset.New[hex.Coord]()
	for _, g := range goals {
		goalSet.Put(g)
	}
	if goalSet.Size() == 0 {
		return nil
	}
	if goalSet.Has(start) {
		return []hex.Coord{}
	}

	visited := mapset.New[hex.Coord]()
	visited.Put(start)
	parents := make(map[hex.Coord]hex.Coord)
	queue := []pathNode{{at: start}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.depth >= MaxPathDepth {
			continue
		}

		for _, next := range current.at.Neighbors() {
			if visited.Has(next) {
				continue
			}
			tile, ok := terrain.TileAt(next)
			if !ok || !tile.PassableFor(flying) {
				continue
			}
			isGoal := goalSet.Has(next)
			if blockers.Has(next) && !isGoal {
				continue
			}

			visited.Put(next)
			parents[next] = current.at
			if isGoal {
				return tracePath(parents, start, next)
			}
			queue = append(queue, pathNode{at: next, depth: current.depth + 1})
		}
	}

	return nil
}

// tracePath walks parent links back from end, returning the route without start.
func tracePath(parents map[hex.Coord]hex.Coord, start, end hex.Coord) []hex.Coord {
	var path []hex.Coord
	for c := end; c != start; c = parents[c] {
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// Reachable returns every cell a mover can stop on within steps moves, in row order.
// Occupied cells are neither entered nor crossed. The start cell is not included.
func Reachable(start hex.Coord, terrain Terrain, blockers Blockers, flying bool, steps int) []hex.Coord {
	visited := mapset.New[hex.Coord]()
	visited.Put(start)
	queue := []pathNode{{at: start}}
	var reached []hex.Coord

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.depth >= steps {
			continue
		}

		for _, next := range current.at.Neighbors() {
			if visited.Has(next) || blockers.Has(next) {
				continue
			}
			tile, ok := terrain.TileAt(next)
			if !ok || !tile.PassableFor(flying) {
				continue
			}
			visited.Put(next)
			reached = append(reached, next)
			queue = append(queue, pathNode{at: next, depth: current.depth + 1})
		}
	}

	slices.SortFunc(reached, compareCoords)
	return reached
}
