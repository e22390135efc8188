package combat

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/hollowhex/internal/hex"
	"github.com/samdwyer/hollowhex/internal/world"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name       string
	pos        hex.Coord
	hp, maxHP  int
	attackDice int
	defense    int
	rng        int
}

func newMockCombatant(name string, q, r, hp, attackDice, defense, rng int) *mockCombatant {
	return &mockCombatant{
		name:       name,
		pos:        hex.Coord{Q: q, R: r},
		hp:         hp,
		maxHP:      hp,
		attackDice: attackDice,
		defense:    defense,
		rng:        rng,
	}
}

func (m *mockCombatant) GetName() string     { return m.name }
func (m *mockCombatant) IsAlive() bool       { return m.hp > 0 }
func (m *mockCombatant) Position() hex.Coord { return m.pos }
func (m *mockCombatant) GetHP() int          { return m.hp }
func (m *mockCombatant) GetMaxHP() int       { return m.maxHP }
func (m *mockCombatant) GetAttackDice() int  { return m.attackDice }
func (m *mockCombatant) GetDefense() int     { return m.defense }
func (m *mockCombatant) GetRange() int       { return m.rng }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.hp)
	m.hp -= actual
	return actual
}

// scriptedRoller returns the given faces in order, cycling when exhausted.
type scriptedRoller struct {
	faces []int
	next  int
}

func (s *scriptedRoller) Intn(n int) int {
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return face - 1
}

func scriptedResolver(faces ...int) *Resolver {
	return NewResolver(NewDice(&scriptedRoller{faces: faces}))
}

// openBoard returns a board with open tiles within radius of the origin.
func openBoard(t *testing.T, radius int, blocking ...hex.Coord) *world.Board {
	t.Helper()
	blocked := make(map[hex.Coord]bool)
	for _, c := range blocking {
		blocked[c] = true
	}
	b := world.NewBoard()
	for _, c := range hex.Spiral(hex.Coord{}, radius) {
		tile := world.Tile{Coord: c, Kind: "hallway"}
		if blocked[c] {
			tile = world.Tile{Coord: c, Kind: "collapsed_hall", Object: "rubble", Blocking: true}
		}
		if err := b.Add(tile); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func TestDiceRoll(t *testing.T) {
	dice := NewDice(rand.New(rand.NewSource(1)))

	if faces := dice.Roll(0); faces != nil {
		t.Errorf("Roll(0) = %v, want nil", faces)
	}

	faces := dice.Roll(100)
	if len(faces) != 100 {
		t.Fatalf("Roll(100) returned %d faces", len(faces))
	}
	for _, f := range faces {
		if f < 1 || f > DieSides {
			t.Fatalf("face %d out of range", f)
		}
	}
}

func TestSuccesses(t *testing.T) {
	tests := []struct {
		faces []int
		want  int
	}{
		{nil, 0},
		{[]int{1, 2, 3, 4}, 0},
		{[]int{5}, 1},
		{[]int{6, 5, 4, 6}, 3},
	}

	for _, tt := range tests {
		if got := Successes(tt.faces); got != tt.want {
			t.Errorf("Successes(%v) = %d, want %d", tt.faces, got, tt.want)
		}
	}
}

func TestAttackKindString(t *testing.T) {
	tests := []struct {
		kind     AttackKind
		expected string
	}{
		{AttackMelee, "melee"},
		{AttackRanged, "ranged"},
		{AttackKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("AttackKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestAttackMeleeDamage(t *testing.T) {
	// Attack rolls 6,5,2 -> 2 hits; defense rolls 5 -> 1 blocked.
	resolver := scriptedResolver(6, 5, 2, 5)
	board := openBoard(t, 2)

	attacker := newMockCombatant("Detective", 0, 0, 8, 3, 1, 1)
	target := newMockCombatant("Ghoul", 1, 0, 4, 2, 1, 1)

	result, err := resolver.Attack(context.Background(), attacker, target, board)
	if err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}

	if result.Kind != AttackMelee {
		t.Errorf("Kind = %v, want melee", result.Kind)
	}
	if result.Hits != 2 || result.Blocked != 1 {
		t.Errorf("Hits/Blocked = %d/%d, want 2/1", result.Hits, result.Blocked)
	}
	if result.Damage != 1 {
		t.Errorf("Damage = %d, want 1", result.Damage)
	}
	if target.GetHP() != 3 {
		t.Errorf("target HP = %d, want 3", target.GetHP())
	}
	if result.Killed {
		t.Error("target should survive")
	}
}

func TestAttackBlockedNeverNegative(t *testing.T) {
	// Attack rolls 5 -> 1 hit; defense rolls 6,6,6 -> blocks capped at 1.
	resolver := scriptedResolver(5, 6, 6, 6)
	board := openBoard(t, 1)

	attacker := newMockCombatant("Cultist", 0, 0, 3, 1, 0, 1)
	target := newMockCombatant("Soldier", 0, 1, 10, 4, 3, 5)

	result, err := resolver.Attack(context.Background(), attacker, target, board)
	if err != nil {
		t.Fatal(err)
	}
	if result.Blocked != 1 || result.Damage != 0 {
		t.Errorf("Blocked/Damage = %d/%d, want 1/0", result.Blocked, result.Damage)
	}
	if target.GetHP() != 10 {
		t.Errorf("target HP = %d, want unchanged 10", target.GetHP())
	}
}

func TestAttackKills(t *testing.T) {
	resolver := scriptedResolver(6, 6, 6, 1)
	board := openBoard(t, 3)

	attacker := newMockCombatant("Soldier", 0, 0, 10, 3, 1, 5)
	target := newMockCombatant("Cultist", 3, 0, 2, 2, 1, 3)

	result, err := resolver.Attack(context.Background(), attacker, target, board)
	if err != nil {
		t.Fatal(err)
	}
	if result.Kind != AttackRanged {
		t.Errorf("Kind = %v, want ranged", result.Kind)
	}
	if !result.Killed || result.Damage != 2 {
		t.Errorf("Killed/Damage = %v/%d, want true/2", result.Killed, result.Damage)
	}

	if _, err := resolver.Attack(context.Background(), attacker, target, board); !errors.Is(err, ErrTargetDown) {
		t.Errorf("attacking a downed target error = %v, want ErrTargetDown", err)
	}
	if _, err := resolver.Attack(context.Background(), target, attacker, board); !errors.Is(err, ErrAttackerDown) {
		t.Errorf("downed attacker error = %v, want ErrAttackerDown", err)
	}
}

func TestCanAttack(t *testing.T) {
	board := openBoard(t, 4, hex.Coord{Q: 2, R: 0})
	shooter := newMockCombatant("Detective", 0, 0, 8, 3, 1, 4)

	tests := []struct {
		name    string
		target  hex.Coord
		want    AttackKind
		wantErr error
	}{
		{"adjacent", hex.Coord{Q: 1, R: 0}, AttackMelee, nil},
		{"clear ranged", hex.Coord{Q: 0, R: 3}, AttackRanged, nil},
		{"behind rubble", hex.Coord{Q: 3, R: 0}, AttackRanged, ErrNoLineOfSight},
		{"out of range", hex.Coord{Q: -4, R: -1}, AttackRanged, ErrOutOfRange},
		{"same hex", hex.Coord{}, AttackRanged, ErrOutOfRange},
	}

	for _, tt := range tests {
		target := newMockCombatant("Target", tt.target.Q, tt.target.R, 5, 1, 1, 1)
		kind, err := CanAttack(shooter, target, board)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: CanAttack error = %v, want %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && kind != tt.want {
			t.Errorf("%s: CanAttack kind = %v, want %v", tt.name, kind, tt.want)
		}
	}
}

func TestMeleeOnlyCombatantCannotShoot(t *testing.T) {
	board := openBoard(t, 3)
	ghoul := newMockCombatant("Ghoul", 0, 0, 4, 3, 1, 1)
	target := newMockCombatant("Professor", 2, 0, 6, 2, 1, 3)

	if _, err := CanAttack(ghoul, target, board); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("melee-only attacker at distance 2 error = %v, want ErrOutOfRange", err)
	}
}

func TestHorrorCheck(t *testing.T) {
	passed, rolls := scriptedResolver(1, 4, 5).HorrorCheck(3)
	if !passed || len(rolls) != 3 {
		t.Errorf("HorrorCheck with a 5 = %v (%v), want pass", passed, rolls)
	}

	passed, _ = scriptedResolver(1, 2).HorrorCheck(2)
	if passed {
		t.Error("HorrorCheck without successes should fail")
	}

	passed, _ = scriptedResolver(6).HorrorCheck(0)
	if passed {
		t.Error("HorrorCheck with no will dice should fail")
	}
}
