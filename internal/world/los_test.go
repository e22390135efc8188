package world

import (
	"testing"

	"github.com/samdwyer/hollowhex/internal/hex"
)

func TestLineOfSightBlockedByObject(t *testing.T) {
	b := boardOf(t, floor(0, 0), floor(1, 0), rubble(2, 0), floor(3, 0))

	if HasLineOfSight(hex.Coord{}, hex.Coord{Q: 3, R: 0}, b, 5) {
		t.Error("rubble at (2,0) should block sight from (0,0) to (3,0)")
	}

	clear := boardOf(t, floor(0, 0), floor(1, 0), floor(2, 0), floor(3, 0))
	if !HasLineOfSight(hex.Coord{}, hex.Coord{Q: 3, R: 0}, clear, 5) {
		t.Error("clear line from (0,0) to (3,0) should be visible")
	}
}

func TestLineOfSightOutOfRange(t *testing.T) {
	b := boardOf(t, patch(hex.Coord{}, 6)...)

	if HasLineOfSight(hex.Coord{}, hex.Coord{Q: 5, R: 0}, b, 3) {
		t.Error("target at distance 5 should be out of range 3")
	}
	if !HasLineOfSight(hex.Coord{}, hex.Coord{Q: 3, R: 0}, b, 3) {
		t.Error("target at exactly the range limit should be visible")
	}
}

func TestLineOfSightUnexploredBlocks(t *testing.T) {
	b := boardOf(t, floor(0, 0), floor(2, 0), floor(3, 0))

	if HasLineOfSight(hex.Coord{}, hex.Coord{Q: 3, R: 0}, b, 5) {
		t.Error("unexplored (1,0) should block sight")
	}

	// Unexplored target blocks too.
	if HasLineOfSight(hex.Coord{Q: 2, R: 0}, hex.Coord{Q: 4, R: 0}, b, 5) {
		t.Error("unexplored endpoint should not be visible")
	}
}

func TestLineOfSightEndpointsNeverBlock(t *testing.T) {
	b := boardOf(t, rubble(0, 0), floor(1, 0), rubble(2, 0))

	if !HasLineOfSight(hex.Coord{}, hex.Coord{Q: 2, R: 0}, b, 5) {
		t.Error("objects on the endpoints should not block sight")
	}
}

func TestLineOfSightSameCell(t *testing.T) {
	b := boardOf(t, rubble(0, 0))

	if !HasLineOfSight(hex.Coord{}, hex.Coord{}, b, 0) {
		t.Error("an explored cell should see itself")
	}
	if HasLineOfSight(hex.Coord{Q: 1, R: 1}, hex.Coord{Q: 1, R: 1}, b, 0) {
		t.Error("an unexplored cell should not see itself")
	}
}

func TestLineOfSightAcrossOpenBoard(t *testing.T) {
	b := boardOf(t, patch(hex.Coord{}, 4)...)

	for _, a := range hex.Spiral(hex.Coord{}, 4) {
		for _, c := range hex.Ring(hex.Coord{}, 4) {
			if !HasLineOfSight(a, c, b, 8) {
				t.Fatalf("open board: %v should see %v", a, c)
			}
		}
	}
}

func TestLineOfSightIdempotent(t *testing.T) {
	b := boardOf(t, append(patch(hex.Coord{}, 3), rubble(4, -2))...)
	from, to := hex.Coord{Q: -2, R: 1}, hex.Coord{Q: 3, R: -1}

	first := HasLineOfSight(from, to, b, 6)
	for i := 0; i < 5; i++ {
		if HasLineOfSight(from, to, b, 6) != first {
			t.Fatal("HasLineOfSight returned different results for identical input")
		}
	}
}

func TestVisibleFrom(t *testing.T) {
	b := boardOf(t, floor(0, 0), floor(1, 0), rubble(2, 0), floor(3, 0))

	visible := VisibleFrom(hex.Coord{}, b, 5)
	seen := make(map[hex.Coord]bool)
	for _, c := range visible {
		seen[c] = true
	}

	if !seen[hex.Coord{}] || !seen[hex.Coord{Q: 1, R: 0}] {
		t.Errorf("VisibleFrom missing near cells: %v", visible)
	}
	if !seen[hex.Coord{Q: 2, R: 0}] {
		t.Error("the blocking tile itself is visible as an endpoint")
	}
	if seen[hex.Coord{Q: 3, R: 0}] {
		t.Error("cells behind rubble should not be visible")
	}
}
