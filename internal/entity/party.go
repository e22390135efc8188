package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/hollowhex/internal/gamedata"
	"github.com/samdwyer/hollowhex/internal/hex"
)

// ErrPartySize is returned when a party cannot be formed with the requested size.
var ErrPartySize = errors.New("invalid party size")

// Party is the group of investigators exploring the board.
type Party struct {
	Members []*Investigator
}

// NewParty creates a party from the first size definitions. The first
// investigator stands at start and the rest fill its neighbors in order.
func NewParty(defs []gamedata.InvestigatorDef, size int, start hex.Coord) (*Party, error) {
	if size < 1 || size > len(defs) || size > len(hex.Directions)+1 {
		return nil, fmt.Errorf("%d investigators from %d definitions: %w", size, len(defs), ErrPartySize)
	}

	p := &Party{Members: make([]*Investigator, 0, size)}
	for i := 0; i < size; i++ {
		pos := start
		if i > 0 {
			pos = start.Add(hex.Directions[i-1])
		}
		p.Members = append(p.Members, NewInvestigator(&defs[i], pos))
	}
	return p, nil
}

// AliveCount returns the number of investigators still in the game.
func (p *Party) AliveCount() int {
	count := 0
	for _, m := range p.Members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated returns true when no investigator remains.
func (p *Party) IsDefeated() bool {
	return p.AliveCount() == 0
}

// Alive returns the investigators still in the game, in party order.
func (p *Party) Alive() []*Investigator {
	alive := make([]*Investigator, 0, len(p.Members))
	for _, m := range p.Members {
		if m.IsAlive() {
			alive = append(alive, m)
		}
	}
	return alive
}

// Positions returns the hexes of living investigators.
func (p *Party) Positions() []hex.Coord {
	positions := make([]hex.Coord, 0, len(p.Members))
	for _, m := range p.Members {
		if m.IsAlive() {
			positions = append(positions, m.Pos)
		}
	}
	return positions
}

// At returns the living investigator standing on c, or nil.
func (p *Party) At(c hex.Coord) *Investigator {
	for _, m := range p.Members {
		if m.IsAlive() && m.Pos == c {
			return m
		}
	}
	return nil
}

// NextAlive returns the index of the first living investigator after index
// from, or -1 when none remains. Pass -1 to search from the start.
func (p *Party) NextAlive(from int) int {
	for i := from + 1; i < len(p.Members); i++ {
		if p.Members[i].IsAlive() {
			return i
		}
	}
	return -1
}
