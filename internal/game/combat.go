package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/hollowhex/internal/combat"
	"github.com/samdwyer/hollowhex/internal/entity"
	"github.com/samdwyer/hollowhex/internal/hex"
	"github.com/samdwyer/hollowhex/internal/world"
)

// Attack has the active investigator attack target. Each investigator may
// attack once per turn.
func (s *Session) Attack(ctx context.Context, target *entity.Monster) error {
	if err := s.checkTurn(); err != nil {
		return err
	}
	if target == nil {
		return ErrNoTarget
	}
	if s.attacked {
		return ErrAlreadyAttacked
	}

	inv := s.Active()
	result, err := s.resolver.Attack(ctx, inv, target, s.board)
	if err != nil {
		return fmt.Errorf("%s attacks %s: %w", inv.Name, target.Name, err)
	}
	s.attacked = true
	s.recordAttack(inv, target, result)

	if result.Killed {
		s.removeDeadMonsters()
	}
	return nil
}

// AttackNearest attacks the closest monster the active investigator can reach.
func (s *Session) AttackNearest(ctx context.Context) error {
	if err := s.checkTurn(); err != nil {
		return err
	}
	if s.attacked {
		return ErrAlreadyAttacked
	}

	inv := s.Active()
	candidates := s.Monsters()
	slices.SortStableFunc(candidates, func(a, b *entity.Monster) int {
		return hex.Distance(inv.Pos, a.Pos) - hex.Distance(inv.Pos, b.Pos)
	})
	for _, m := range candidates {
		if _, err := combat.CanAttack(inv, m, s.board); err == nil {
			return s.Attack(ctx, m)
		}
	}
	return ErrNoTarget
}

func (s *Session) recordAttack(attacker, target combat.Combatant, result combat.AttackResult) {
	s.addMessage(result.Message)
	s.log.WithFields(logrus.Fields{
		"attacker": attacker.GetName(),
		"target":   target.GetName(),
		"kind":     result.Kind.String(),
		"hits":     result.Hits,
		"blocked":  result.Blocked,
		"damage":   result.Damage,
		"killed":   result.Killed,
	}).Info("attack resolved")
}

// horrorChecks makes every investigator who can see m resist its horror.
func (s *Session) horrorChecks(ctx context.Context, m *entity.Monster) {
	if m.Horror <= 0 {
		return
	}
	for _, inv := range s.party.Alive() {
		if !world.HasLineOfSight(inv.Pos, m.Pos, s.board, s.cfg.ViewRadius) {
			continue
		}
		passed, rolls := s.resolver.HorrorCheck(inv.Will)
		fields := logrus.Fields{
			"investigator": inv.Name,
			"monster":      m.Name,
			"rolls":        rolls,
			"passed":       passed,
		}
		if passed {
			s.addMessage(fmt.Sprintf("%s steels their nerve against the %s.", inv.Name, m.Name))
			s.log.WithFields(fields).Debug("horror check")
			continue
		}

		lost := inv.TakeHorror(m.Horror)
		fields["sanity_lost"] = lost
		s.log.WithFields(fields).Info("horror check")
		s.addMessage(fmt.Sprintf("%s loses %d sanity at the sight of the %s.", inv.Name, lost, m.Name))
		if !inv.IsAlive() {
			s.addMessage(downedMessage(inv))
		}
	}
	s.checkDefeat(ctx)
}

// downedMessage describes an investigator leaving the game.
func downedMessage(inv *entity.Investigator) string {
	if inv.Insane() {
		return fmt.Sprintf("%s is driven mad!", inv.Name)
	}
	return fmt.Sprintf("%s has fallen.", inv.Name)
}

func (s *Session) removeDeadMonsters() {
	s.monsters = slices.DeleteFunc(s.monsters, func(m *entity.Monster) bool {
		return !m.IsAlive()
	})
}
