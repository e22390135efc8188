package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowhex/internal/combat"
	"github.com/samdwyer/hollowhex/internal/entity"
	"github.com/samdwyer/hollowhex/internal/telemetry"
	"github.com/samdwyer/hollowhex/internal/world"
)

// runMonsterPhase lets every living monster move toward the party and attack.
func (s *Session) runMonsterPhase(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "monsters.phase")
	defer span.End()

	s.phase = PhaseMonsters
	steps, attacks := 0, 0
	for _, m := range s.monsters {
		if !m.IsAlive() {
			continue
		}
		if s.party.IsDefeated() {
			break
		}
		moved, attacked := s.monsterAct(ctx, m)
		steps += moved
		if attacked {
			attacks++
		}
	}
	s.checkDefeat(ctx)

	span.SetAttributes(
		attribute.Int("round", s.round),
		attribute.Int("monsters", len(s.Monsters())),
		attribute.Int("steps", steps),
		attribute.Int("attacks", attacks),
		attribute.Int("investigators.alive", s.party.AliveCount()),
	)
}

// monsterAct attacks if an investigator is in reach; otherwise the monster
// follows the shortest path toward the nearest investigator for up to Speed
// steps, stopping as soon as it can attack. It never enters the goal hex.
func (s *Session) monsterAct(ctx context.Context, m *entity.Monster) (steps int, attacked bool) {
	target := s.monsterTarget(m)
	if target == nil {
		path := world.FindPath(m.Pos, s.party.Positions(), s.board, s.blockersExcept(m), m.Flying)
		if len(path) == 0 {
			s.log.WithFields(logrus.Fields{
				"monster": m.Name,
				"coord":   m.Pos.String(),
			}).Debug("monster has no path")
			return 0, false
		}
		for _, step := range path[:len(path)-1] {
			if steps >= m.Speed {
				break
			}
			m.SetPosition(step)
			steps++
			if target = s.monsterTarget(m); target != nil {
				break
			}
		}
	}
	if target == nil {
		return steps, false
	}

	result, err := s.resolver.Attack(ctx, m, target, s.board)
	if err != nil {
		s.log.WithError(err).WithField("monster", m.Name).Warn("monster attack failed")
		return steps, false
	}
	s.recordAttack(m, target, result)
	if result.Killed {
		s.addMessage(downedMessage(target))
	}
	return steps, true
}

// monsterTarget returns the weakest investigator m can attack from where it stands.
func (s *Session) monsterTarget(m *entity.Monster) *entity.Investigator {
	var weakest *entity.Investigator
	for _, inv := range s.party.Alive() {
		if _, err := combat.CanAttack(m, inv, s.board); err != nil {
			continue
		}
		if weakest == nil || inv.GetHP() < weakest.GetHP() {
			weakest = inv
		}
	}
	return weakest
}

// maybeSpawn rolls the tile's monster chance and places a monster on the first
// free, open neighbor of the new tile.
func (s *Session) maybeSpawn(ctx context.Context, tile world.Tile) {
	def := s.tiles.GetByID(tile.Kind)
	if def == nil || def.MonsterChance <= 0 || s.rng.Intn(100) >= def.MonsterChance {
		return
	}

	for _, c := range tile.Coord.Neighbors() {
		t, ok := s.board.TileAt(c)
		if !ok || !t.IsPassable() || s.occupied(c) {
			continue
		}
		monsterDef := s.monsterDefs.SpawnRandom(s.rng)
		if monsterDef == nil {
			return
		}
		m := entity.NewMonster(monsterDef, c)
		s.monsters = append(s.monsters, m)
		s.addMessage(fmt.Sprintf("A %s emerges from the %s!", m.Name, s.tileName(t)))
		s.log.WithFields(logrus.Fields{
			"monster": m.Name,
			"id":      m.ID.String(),
			"coord":   c.String(),
		}).Info("monster spawned")
		s.horrorChecks(ctx, m)
		return
	}
}
