package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/hollowhex/internal/combat"
	"github.com/samdwyer/hollowhex/internal/gamedata"
	"github.com/samdwyer/hollowhex/internal/hex"
)

// Monster is a hostile creature on the board.
type Monster struct {
	ID     uuid.UUID
	Def    *gamedata.MonsterDef
	Name   string
	Symbol rune
	Pos    hex.Coord

	HP, MaxHP  int
	AttackDice int
	Defense    int
	Speed      int
	Range      int
	Flying     bool
	Horror     int
}

// NewMonster creates a monster from its definition at pos.
func NewMonster(def *gamedata.MonsterDef, pos hex.Coord) *Monster {
	return &Monster{
		ID:         uuid.New(),
		Def:        def,
		Name:       def.Name,
		Symbol:     def.GlyphRune(),
		Pos:        pos,
		HP:         def.HP,
		MaxHP:      def.HP,
		AttackDice: def.AttackDice,
		Defense:    def.Defense,
		Speed:      def.Speed,
		Range:      max(def.Range, 1),
		Flying:     def.Flying,
		Horror:     def.Horror,
	}
}

// Color returns the tcell color for this monster.
func (m *Monster) Color() tcell.Color {
	if m.Def != nil {
		return m.Def.TCellColor()
	}
	return tcell.ColorRed
}

// SetPosition moves the monster to c.
func (m *Monster) SetPosition(c hex.Coord) {
	m.Pos = c
}

// GetName returns the monster's name.
func (m *Monster) GetName() string { return m.Name }

// IsAlive returns true if the monster has HP remaining.
func (m *Monster) IsAlive() bool { return m.HP > 0 }

// Position returns the monster's hex.
func (m *Monster) Position() hex.Coord { return m.Pos }

// GetHP returns current HP.
func (m *Monster) GetHP() int { return m.HP }

// GetMaxHP returns maximum HP.
func (m *Monster) GetMaxHP() int { return m.MaxHP }

// GetAttackDice returns the size of the attack pool.
func (m *Monster) GetAttackDice() int { return m.AttackDice }

// GetDefense returns the size of the defense pool.
func (m *Monster) GetDefense() int { return m.Defense }

// GetRange returns the attack range in hexes.
func (m *Monster) GetRange() int { return m.Range }

// TakeDamage reduces HP and returns actual damage taken.
func (m *Monster) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.HP)
	m.HP -= actual
	return actual
}

var _ combat.Combatant = (*Monster)(nil)
