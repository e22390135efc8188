package game

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/samdwyer/hollowhex/internal/entity"
	"github.com/samdwyer/hollowhex/internal/hex"
)

func TestMonsterApproaches(t *testing.T) {
	inv := testInvestigator("Detective", hex.Coord{})
	ghoul := entity.NewMonster(&ghoulDef, hex.Coord{Q: 5})
	s := testSession(t, corridor(t, 0, 6), nil, []*entity.Investigator{inv}, []*entity.Monster{ghoul})

	if err := s.EndTurn(context.Background()); err != nil {
		t.Fatal(err)
	}

	if ghoul.Pos != (hex.Coord{Q: 3}) {
		t.Errorf("ghoul at %v, want 3,0 after two steps", ghoul.Pos)
	}
	if inv.HP != inv.MaxHP {
		t.Error("ghoul out of reach should not attack")
	}
	if s.Phase() != PhaseInvestigators || s.Round() != 2 {
		t.Errorf("Phase/Round = %v/%d, want investigators/2", s.Phase(), s.Round())
	}
}

func TestMonsterAttacksAfterMoving(t *testing.T) {
	inv := testInvestigator("Detective", hex.Coord{})
	ghoul := entity.NewMonster(&ghoulDef, hex.Coord{Q: 3})
	// Every die shows 6: three hits against two blocks.
	s := testSession(t, corridor(t, 0, 4), nil, []*entity.Investigator{inv}, []*entity.Monster{ghoul}, 6)

	if err := s.EndTurn(context.Background()); err != nil {
		t.Fatal(err)
	}

	if ghoul.Pos != (hex.Coord{Q: 1}) {
		t.Errorf("ghoul at %v, want 1,0", ghoul.Pos)
	}
	if inv.HP != inv.MaxHP-1 {
		t.Errorf("investigator HP = %d, want %d", inv.HP, inv.MaxHP-1)
	}
}

func TestRangedMonsterStopsInRange(t *testing.T) {
	inv := testInvestigator("Detective", hex.Coord{})
	cultist := entity.NewMonster(&cultistDef, hex.Coord{Q: 5})
	s := testSession(t, corridor(t, 0, 5), nil, []*entity.Investigator{inv}, []*entity.Monster{cultist})

	if err := s.EndTurn(context.Background()); err != nil {
		t.Fatal(err)
	}

	if cultist.Pos != (hex.Coord{Q: 3}) {
		t.Errorf("cultist at %v, want 3,0", cultist.Pos)
	}
	msgs := s.Messages()
	if !strings.Contains(msgs[len(msgs)-1], "Cultist misses") {
		t.Errorf("last message = %q, want a cultist attack", msgs[len(msgs)-1])
	}
}

func TestWalkerStoppedByRubble(t *testing.T) {
	inv := testInvestigator("Detective", hex.Coord{})
	ghoul := entity.NewMonster(&ghoulDef, hex.Coord{Q: 4})
	s := testSession(t, corridor(t, 0, 5, 2), nil, []*entity.Investigator{inv}, []*entity.Monster{ghoul})

	if err := s.EndTurn(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ghoul.Pos != (hex.Coord{Q: 4}) {
		t.Errorf("ghoul without a path moved to %v", ghoul.Pos)
	}
}

func TestFlyerCrossesRubble(t *testing.T) {
	inv := testInvestigator("Detective", hex.Coord{})
	byakhee := entity.NewMonster(&byakheeDef, hex.Coord{Q: 4})
	s := testSession(t, corridor(t, 0, 5, 2), nil, []*entity.Investigator{inv}, []*entity.Monster{byakhee})

	if err := s.EndTurn(context.Background()); err != nil {
		t.Fatal(err)
	}
	if byakhee.Pos != (hex.Coord{Q: 1}) {
		t.Errorf("byakhee at %v, want 1,0", byakhee.Pos)
	}
}

func TestMonsterBlockedByMonster(t *testing.T) {
	inv := testInvestigator("Detective", hex.Coord{})
	front := entity.NewMonster(&ghoulDef, hex.Coord{Q: 2})
	back := entity.NewMonster(&ghoulDef, hex.Coord{Q: 4})
	s := testSession(t, corridor(t, 0, 5), nil, []*entity.Investigator{inv}, []*entity.Monster{front, back})

	if err := s.EndTurn(context.Background()); err != nil {
		t.Fatal(err)
	}

	if front.Pos != (hex.Coord{Q: 1}) {
		t.Errorf("front ghoul at %v, want 1,0", front.Pos)
	}
	// The corridor is one hex wide and the front ghoul fills it.
	if back.Pos != (hex.Coord{Q: 4}) {
		t.Errorf("back ghoul at %v, want 4,0", back.Pos)
	}
}

func TestMonsterKillsLastInvestigator(t *testing.T) {
	inv := testInvestigator("Detective", hex.Coord{})
	inv.HP = 1
	inv.Defense = 0
	ghoul := entity.NewMonster(&ghoulDef, hex.Coord{Q: 1})
	s := testSession(t, corridor(t, 0, 2), nil, []*entity.Investigator{inv}, []*entity.Monster{ghoul}, 6)
	ctx := context.Background()

	if err := s.EndTurn(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseDefeat {
		t.Fatalf("Phase() = %v, want defeat", s.Phase())
	}
	if !slices.Contains(s.Messages(), "Detective has fallen.") {
		t.Errorf("messages %q should report the investigator falling", s.Messages())
	}
	if err := s.EndTurn(ctx); !errors.Is(err, ErrGameOver) {
		t.Errorf("EndTurn after defeat error = %v, want ErrGameOver", err)
	}
}
