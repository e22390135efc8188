// Package game provides the session rules, turn phases and the main game loop.
package game

// Phase represents the current turn phase.
type Phase int

const (
	// PhaseInvestigators is the players' phase; investigators act one at a time.
	PhaseInvestigators Phase = iota
	// PhaseMonsters is the phase where every monster moves and attacks.
	PhaseMonsters
	// PhaseVictory means an investigator reached an exit tile.
	PhaseVictory
	// PhaseDefeat means no investigator remains.
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInvestigators:
		return "investigators"
	case PhaseMonsters:
		return "monsters"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Over returns true once the session has ended.
func (p Phase) Over() bool {
	return p == PhaseVictory || p == PhaseDefeat
}
