// Package hex provides axial and cube coordinate math for a pointy-top hex grid.
package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is a position on the hex grid in axial coordinates.
// The implicit third cube coordinate is -Q-R.
type Coord struct {
	Q, R int
}

// Directions lists the six neighbor offsets in search order: +q, -q, +r, -r, +q-r, -q+r.
// Pathfinding breaks ties by this order, so it must not change.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: -1, R: 0},
	{Q: 0, R: 1},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
	{Q: -1, R: 1},
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{Q: c.Q + other.Q, R: c.R + other.R}
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// IsAdjacent reports whether other is exactly one step away.
func (c Coord) IsAdjacent(other Coord) bool {
	return Distance(c, other) == 1
}

// Cube returns the cube form of the coordinate.
func (c Coord) Cube() Cube {
	return Cube{X: float64(c.Q), Y: float64(-c.Q - c.R), Z: float64(c.R)}
}

// String returns the "q,r" key form of the coordinate.
func (c Coord) String() string {
	return strconv.Itoa(c.Q) + "," + strconv.Itoa(c.R)
}

// ParseCoord parses the "q,r" form produced by String.
func ParseCoord(s string) (Coord, error) {
	qs, rs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Coord{}, fmt.Errorf("invalid hex coordinate %q: missing comma", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return Coord{}, fmt.Errorf("invalid q in %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coord{}, fmt.Errorf("invalid r in %q: %w", s, err)
	}
	return Coord{Q: q, R: r}, nil
}

// Distance returns the number of steps between two coordinates.
func Distance(a, b Coord) int {
	return (abs(a.Q-b.Q) + abs(a.Q+a.R-b.Q-b.R) + abs(a.R-b.R)) / 2
}

// Ring returns the coordinates exactly radius steps from center.
// A radius of 0 yields the center alone.
func Ring(center Coord, radius int) []Coord {
	if radius <= 0 {
		return []Coord{center}
	}
	results := make([]Coord, 0, 6*radius)
	// Walk the ring starting from the corner in the -q+r direction.
	c := center.Add(Coord{Q: -radius, R: radius})
	walk := [6]Coord{
		{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
		{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
	}
	for _, dir := range walk {
		for i := 0; i < radius; i++ {
			results = append(results, c)
			c = c.Add(dir)
		}
	}
	return results
}

// Spiral returns center followed by every ring out to radius.
func Spiral(center Coord, radius int) []Coord {
	results := []Coord{center}
	for k := 1; k <= radius; k++ {
		results = append(results, Ring(center, k)...)
	}
	return results
}

// ToOffset converts to odd-r offset coordinates (col, row) for row-based rendering.
func (c Coord) ToOffset() (col, row int) {
	col = c.Q + (c.R-(c.R&1))/2
	return col, c.R
}

// FromOffset converts odd-r offset coordinates back to axial.
func FromOffset(col, row int) Coord {
	return Coord{Q: col - (row-(row&1))/2, R: row}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
