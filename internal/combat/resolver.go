// Package combat resolves dice-pool attacks between combatants on the hex board.
package combat

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowhex/internal/hex"
	"github.com/samdwyer/hollowhex/internal/telemetry"
	"github.com/samdwyer/hollowhex/internal/world"
)

// Combatant is the interface for any entity that can attack or be attacked.
// Both investigators and monsters implement this interface.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool
	Position() hex.Coord

	// Stats
	GetHP() int
	GetMaxHP() int
	GetAttackDice() int
	GetDefense() int
	GetRange() int

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
}

var (
	// ErrAttackerDown is returned when a defeated combatant tries to attack.
	ErrAttackerDown = errors.New("attacker is down")
	// ErrTargetDown is returned when attacking a defeated combatant.
	ErrTargetDown = errors.New("target is already down")
	// ErrOutOfRange is returned when the target is farther than the attacker's range.
	ErrOutOfRange = errors.New("target out of range")
	// ErrNoLineOfSight is returned when a ranged attack has no clear line.
	ErrNoLineOfSight = errors.New("no line of sight to target")
)

// AttackKind distinguishes adjacent attacks from ranged ones.
type AttackKind int

const (
	// AttackMelee is an attack on an adjacent hex.
	AttackMelee AttackKind = iota
	// AttackRanged is an attack across open, explored hexes.
	AttackRanged
)

// String returns a human-readable attack kind.
func (k AttackKind) String() string {
	switch k {
	case AttackMelee:
		return "melee"
	case AttackRanged:
		return "ranged"
	default:
		return "unknown"
	}
}

// AttackResult contains the outcome of one attack.
type AttackResult struct {
	Kind         AttackKind
	AttackRolls  []int
	DefenseRolls []int
	Hits         int  // Successes on the attack roll
	Blocked      int  // Hits cancelled by the defense roll
	Damage       int  // Damage actually dealt
	Killed       bool // Target went down from this attack
	Message      string
}

// Resolver rolls and applies attacks.
type Resolver struct {
	dice *Dice
}

// NewResolver creates a resolver drawing from the given dice.
func NewResolver(dice *Dice) *Resolver {
	return &Resolver{dice: dice}
}

// CanAttack checks whether attacker can reach target from where both stand.
// Adjacent targets are always in reach; farther ones need range and line of sight.
func CanAttack(attacker, target Combatant, terrain world.Terrain) (AttackKind, error) {
	if !attacker.IsAlive() {
		return AttackMelee, ErrAttackerDown
	}
	if !target.IsAlive() {
		return AttackMelee, ErrTargetDown
	}

	from, to := attacker.Position(), target.Position()
	dist := hex.Distance(from, to)
	switch {
	case dist == 1:
		return AttackMelee, nil
	case dist == 0 || dist > attacker.GetRange():
		return AttackRanged, ErrOutOfRange
	case !world.HasLineOfSight(from, to, terrain, attacker.GetRange()):
		return AttackRanged, ErrNoLineOfSight
	default:
		return AttackRanged, nil
	}
}

// Attack resolves attacker's attack on target. The attacker rolls its attack
// dice; each success is a hit. The target rolls its defense dice and each
// success cancels one hit. Remaining hits are dealt as damage.
func (r *Resolver) Attack(ctx context.Context, attacker, target Combatant, terrain world.Terrain) (AttackResult, error) {
	kind, err := CanAttack(attacker, target, terrain)
	if err != nil {
		return AttackResult{Kind: kind}, err
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	result := AttackResult{Kind: kind}
	result.AttackRolls = r.dice.Roll(attacker.GetAttackDice())
	result.DefenseRolls = r.dice.Roll(target.GetDefense())
	result.Hits = Successes(result.AttackRolls)
	result.Blocked = min(result.Hits, Successes(result.DefenseRolls))

	result.Damage = target.TakeDamage(result.Hits - result.Blocked)
	result.Killed = !target.IsAlive()

	switch {
	case result.Killed:
		result.Message = fmt.Sprintf("%s destroys %s!", attacker.GetName(), target.GetName())
	case result.Damage > 0:
		result.Message = fmt.Sprintf("%s hits %s for %d.", attacker.GetName(), target.GetName(), result.Damage)
	case result.Hits > 0:
		result.Message = fmt.Sprintf("%s shrugs off %s's attack.", target.GetName(), attacker.GetName())
	default:
		result.Message = fmt.Sprintf("%s misses %s.", attacker.GetName(), target.GetName())
	}

	span.SetAttributes(
		attribute.String("attacker", attacker.GetName()),
		attribute.String("target", target.GetName()),
		attribute.String("kind", kind.String()),
		attribute.Int("distance", hex.Distance(attacker.Position(), target.Position())),
		attribute.Int("hits", result.Hits),
		attribute.Int("blocked", result.Blocked),
		attribute.Int("damage", result.Damage),
		attribute.Bool("killed", result.Killed),
	)

	return result, nil
}

// HorrorCheck rolls will dice; a single success resists the horror.
func (r *Resolver) HorrorCheck(will int) (bool, []int) {
	rolls := r.dice.Roll(will)
	return Successes(rolls) > 0, rolls
}
