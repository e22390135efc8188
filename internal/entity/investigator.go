// Package entity provides the investigators and monsters that occupy the board.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/hollowhex/internal/combat"
	"github.com/samdwyer/hollowhex/internal/gamedata"
	"github.com/samdwyer/hollowhex/internal/hex"
)

// Investigator is a player-controlled character.
type Investigator struct {
	ID     uuid.UUID
	Def    *gamedata.InvestigatorDef
	Name   string
	Symbol rune
	Pos    hex.Coord

	HP, MaxHP         int
	Sanity, MaxSanity int
	AttackDice        int
	Defense           int
	Will              int
	Range             int
	Moves             int
}

// NewInvestigator creates an investigator from its definition at pos.
func NewInvestigator(def *gamedata.InvestigatorDef, pos hex.Coord) *Investigator {
	return &Investigator{
		ID:         uuid.New(),
		Def:        def,
		Name:       def.Name,
		Symbol:     def.SymbolRune(),
		Pos:        pos,
		HP:         def.HP,
		MaxHP:      def.HP,
		Sanity:     def.Sanity,
		MaxSanity:  def.Sanity,
		AttackDice: def.AttackDice,
		Defense:    def.Defense,
		Will:       def.Will,
		Range:      max(def.Range, 1),
		Moves:      def.Moves,
	}
}

// SetPosition moves the investigator to c.
func (i *Investigator) SetPosition(c hex.Coord) {
	i.Pos = c
}

// TakeHorror reduces sanity and returns the actual amount lost.
func (i *Investigator) TakeHorror(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, i.Sanity)
	i.Sanity -= actual
	return actual
}

// Insane returns true if the investigator was taken out by horror rather than wounds.
func (i *Investigator) Insane() bool {
	return i.Sanity <= 0 && i.HP > 0
}

// GetName returns the investigator's name.
func (i *Investigator) GetName() string { return i.Name }

// IsAlive returns true while the investigator has both HP and sanity left.
func (i *Investigator) IsAlive() bool { return i.HP > 0 && i.Sanity > 0 }

// Position returns the investigator's hex.
func (i *Investigator) Position() hex.Coord { return i.Pos }

// GetHP returns current HP.
func (i *Investigator) GetHP() int { return i.HP }

// GetMaxHP returns maximum HP.
func (i *Investigator) GetMaxHP() int { return i.MaxHP }

// GetAttackDice returns the size of the attack pool.
func (i *Investigator) GetAttackDice() int { return i.AttackDice }

// GetDefense returns the size of the defense pool.
func (i *Investigator) GetDefense() int { return i.Defense }

// GetRange returns the attack range in hexes.
func (i *Investigator) GetRange() int { return i.Range }

// TakeDamage reduces HP and returns actual damage taken.
func (i *Investigator) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, i.HP)
	i.HP -= actual
	return actual
}

var _ combat.Combatant = (*Investigator)(nil)
