package hex

import (
	"fmt"
	"math"
)

// Cube is a fractional cube coordinate used for interpolation.
type Cube struct {
	X, Y, Z float64
}

// lineNudge offsets both line endpoints so interpolated points never land
// exactly on a hex edge, which would make rounding ambiguous.
var lineNudge = Cube{X: 1e-6, Y: 1e-6, Z: -2e-6}

// Add returns the componentwise sum.
func (c Cube) Add(other Cube) Cube {
	return Cube{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// CubeLerp interpolates componentwise between a and b at t in [0,1].
func CubeLerp(a, b Cube, t float64) Cube {
	return Cube{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

// CubeRound snaps a fractional cube coordinate to the nearest hex.
// The component with the largest rounding error is recomputed from the other
// two, checking x first, then y, then z. It panics on non-finite input.
func CubeRound(c Cube) Coord {
	if !finite(c.X) || !finite(c.Y) || !finite(c.Z) {
		panic(fmt.Sprintf("hex: non-finite cube coordinate (%v, %v, %v)", c.X, c.Y, c.Z))
	}

	rx := math.Round(c.X)
	ry := math.Round(c.Y)
	rz := math.Round(c.Z)

	dx := math.Abs(rx - c.X)
	dy := math.Abs(ry - c.Y)
	dz := math.Abs(rz - c.Z)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}

	return Coord{Q: int(rx), R: int(rz)}
}

// Line returns every hex on the straight line from start to end, inclusive.
// The result has Distance(start, end)+1 entries.
func Line(start, end Coord) []Coord {
	n := Distance(start, end)
	if n == 0 {
		return []Coord{start}
	}

	a := start.Cube().Add(lineNudge)
	b := end.Cube().Add(lineNudge)

	results := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		results = append(results, CubeRound(CubeLerp(a, b, t)))
	}
	return results
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
