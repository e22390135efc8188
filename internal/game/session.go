package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/hollowhex/internal/combat"
	"github.com/samdwyer/hollowhex/internal/entity"
	"github.com/samdwyer/hollowhex/internal/gamedata"
	"github.com/samdwyer/hollowhex/internal/hex"
	"github.com/samdwyer/hollowhex/internal/logger"
	"github.com/samdwyer/hollowhex/internal/world"
)

var (
	// ErrGameOver is returned for actions after victory or defeat.
	ErrGameOver = errors.New("game is over")
	// ErrNotInvestigatorPhase is returned when investigators act outside their phase.
	ErrNotInvestigatorPhase = errors.New("not the investigators' phase")
	// ErrNoMovesLeft is returned when the active investigator has used every move.
	ErrNoMovesLeft = errors.New("no moves left this turn")
	// ErrInvalidDirection is returned for a step that is not one of the six hex directions.
	ErrInvalidDirection = errors.New("not a hex direction")
	// ErrBlocked is returned when stepping onto an explored tile with a blocking object.
	ErrBlocked = errors.New("way is blocked")
	// ErrOccupied is returned when stepping onto a hex another entity stands on.
	ErrOccupied = errors.New("hex is occupied")
	// ErrAlreadyAttacked is returned for a second attack in one turn.
	ErrAlreadyAttacked = errors.New("already attacked this turn")
	// ErrNoTarget is returned when no monster is in reach.
	ErrNoTarget = errors.New("no monster in reach")
)

const maxMessages = 50

// Session holds the state of one game: the board, the party, the monsters and
// whose turn it is. All methods run on the game loop goroutine.
type Session struct {
	ID   uuid.UUID
	Seed int64

	cfg         Config
	board       *world.Board
	generator   *world.Generator
	tiles       *gamedata.TileRegistry
	monsterDefs *gamedata.MonsterRegistry
	resolver    *combat.Resolver
	rng         *rand.Rand

	party    *entity.Party
	monsters []*entity.Monster

	phase     Phase
	active    int
	movesLeft int
	attacked  bool
	round     int
	messages  []string

	log *logrus.Entry
}

// NewSession loads the game data, lays the starting board and places the party.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tiles, err := gamedata.LoadTileRegistry()
	if err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	monsterDefs, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}
	investigatorDefs, err := gamedata.LoadInvestigators()
	if err != nil {
		return nil, fmt.Errorf("load investigators: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	board := world.NewBoard()
	if err := world.NewGenerator(tiles, rng).Seed(ctx, board); err != nil {
		return nil, fmt.Errorf("seed board: %w", err)
	}

	party, err := entity.NewParty(investigatorDefs, cfg.Investigators, hex.Coord{})
	if err != nil {
		return nil, err
	}

	s := newSession(cfg, seed, board, tiles, monsterDefs, party, rng)
	s.addMessage("The door slams shut behind you.")
	s.log.WithFields(logrus.Fields{
		"investigators":  len(party.Members),
		"tiles":          board.Len(),
		"tile_templates": tiles.Count(),
		"monster_types":  monsterDefs.Count(),
	}).Info("session started")
	return s, nil
}

func newSession(cfg Config, seed int64, board *world.Board, tiles *gamedata.TileRegistry,
	monsterDefs *gamedata.MonsterRegistry, party *entity.Party, rng *rand.Rand) *Session {
	s := &Session{
		ID:          uuid.New(),
		Seed:        seed,
		cfg:         cfg,
		board:       board,
		generator:   world.NewGenerator(tiles, rng),
		tiles:       tiles,
		monsterDefs: monsterDefs,
		resolver:    combat.NewResolver(combat.NewDice(rng)),
		rng:         rng,
		party:       party,
		phase:       PhaseInvestigators,
		round:       1,
	}
	s.log = logger.Log.WithFields(logrus.Fields{
		"session": s.ID.String(),
		"seed":    seed,
	})
	s.startTurn(party.NextAlive(-1))
	return s
}

// Board returns the explored board.
func (s *Session) Board() *world.Board { return s.board }

// Tiles returns the tile templates the board is generated from.
func (s *Session) Tiles() *gamedata.TileRegistry { return s.tiles }

// Party returns the investigators.
func (s *Session) Party() *entity.Party { return s.party }

// Phase returns the current turn phase.
func (s *Session) Phase() Phase { return s.phase }

// Round returns the current round, starting at 1.
func (s *Session) Round() int { return s.round }

// MovesLeft returns the active investigator's remaining moves.
func (s *Session) MovesLeft() int { return s.movesLeft }

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }

// Messages returns the message log, oldest first.
func (s *Session) Messages() []string { return s.messages }

// Active returns the investigator whose turn it is, or nil if none can act.
func (s *Session) Active() *entity.Investigator {
	if s.active < 0 || s.active >= len(s.party.Members) {
		return nil
	}
	return s.party.Members[s.active]
}

// Monsters returns the living monsters.
func (s *Session) Monsters() []*entity.Monster {
	alive := make([]*entity.Monster, 0, len(s.monsters))
	for _, m := range s.monsters {
		if m.IsAlive() {
			alive = append(alive, m)
		}
	}
	return alive
}

// Reachable returns the hexes the active investigator can still move to
// without exploring.
func (s *Session) Reachable() []hex.Coord {
	inv := s.Active()
	if inv == nil || s.phase != PhaseInvestigators {
		return nil
	}
	return world.Reachable(inv.Pos, s.board, s.blockersExcept(inv), false, s.movesLeft)
}

// Visible returns the explored hexes the active investigator can see.
func (s *Session) Visible() []hex.Coord {
	inv := s.Active()
	if inv == nil {
		return nil
	}
	return world.VisibleFrom(inv.Pos, s.board, s.cfg.ViewRadius)
}

// Move steps the active investigator one hex in dir. Stepping into
// unexplored space explores it; if the new tile is blocked the move is
// spent and the investigator stays put.
func (s *Session) Move(ctx context.Context, dir hex.Coord) error {
	if err := s.checkTurn(); err != nil {
		return err
	}
	if s.movesLeft <= 0 {
		return ErrNoMovesLeft
	}
	if !slices.Contains(hex.Directions[:], dir) {
		return fmt.Errorf("step %v: %w", dir, ErrInvalidDirection)
	}

	inv := s.Active()
	to := inv.Pos.Add(dir)
	if s.occupied(to) {
		return fmt.Errorf("move to %v: %w", to, ErrOccupied)
	}

	tile, explored := s.board.TileAt(to)
	if explored {
		if !tile.IsPassable() {
			return fmt.Errorf("move to %v (%s): %w", to, tile.Object, ErrBlocked)
		}
		s.movesLeft--
		inv.SetPosition(to)
		s.enter(inv, tile)
		return nil
	}

	tile, err := s.generator.Explore(ctx, s.board, to)
	if err != nil {
		return fmt.Errorf("move to %v: %w", to, err)
	}
	s.movesLeft--
	s.log.WithFields(logrus.Fields{
		"investigator": inv.Name,
		"coord":        to.String(),
		"kind":         tile.Kind,
		"blocking":     tile.Blocking,
	}).Debug("tile explored")

	if tile.Blocking {
		s.addMessage(fmt.Sprintf("%s finds the way blocked by %s.", inv.Name, tile.Object))
		return nil
	}

	inv.SetPosition(to)
	s.enter(inv, tile)
	if !s.phase.Over() {
		s.maybeSpawn(ctx, tile)
	}
	return nil
}

// EndTurn passes play to the next investigator, or to the monsters after the last one.
func (s *Session) EndTurn(ctx context.Context) error {
	if err := s.checkTurn(); err != nil {
		return err
	}
	s.advance(ctx)
	return nil
}

// enter applies the effects of an investigator arriving on tile.
func (s *Session) enter(inv *entity.Investigator, tile world.Tile) {
	if !tile.Exit {
		return
	}
	s.phase = PhaseVictory
	s.addMessage(fmt.Sprintf("%s steps through the %s and escapes!", inv.Name, s.tileName(tile)))
	s.log.WithFields(logrus.Fields{
		"investigator": inv.Name,
		"round":        s.round,
	}).Info("victory")
}

// advance moves to the next living investigator or runs the monster phase.
func (s *Session) advance(ctx context.Context) {
	if next := s.party.NextAlive(s.active); next >= 0 {
		s.startTurn(next)
		return
	}

	s.runMonsterPhase(ctx)
	if s.phase.Over() {
		return
	}
	s.round++
	s.phase = PhaseInvestigators
	s.startTurn(s.party.NextAlive(-1))
}

func (s *Session) startTurn(index int) {
	s.active = index
	s.attacked = false
	s.movesLeft = 0
	if inv := s.Active(); inv != nil {
		s.movesLeft = inv.Moves
	}
}

func (s *Session) checkTurn() error {
	if s.phase.Over() {
		return ErrGameOver
	}
	if s.phase != PhaseInvestigators || s.Active() == nil {
		return ErrNotInvestigatorPhase
	}
	return nil
}

// checkDefeat ends the game when no investigator remains, and hands the turn
// on when the active investigator has been taken out.
func (s *Session) checkDefeat(ctx context.Context) {
	if s.party.IsDefeated() {
		s.phase = PhaseDefeat
		s.addMessage("The darkness claims the last investigator.")
		s.log.WithField("round", s.round).Info("defeat")
		return
	}
	if s.phase == PhaseInvestigators {
		if inv := s.Active(); inv != nil && !inv.IsAlive() {
			s.advance(ctx)
		}
	}
}

func (s *Session) occupied(c hex.Coord) bool {
	return s.party.At(c) != nil || s.monsterAt(c) != nil
}

func (s *Session) monsterAt(c hex.Coord) *entity.Monster {
	for _, m := range s.monsters {
		if m.IsAlive() && m.Pos == c {
			return m
		}
	}
	return nil
}

// blockersExcept collects the hexes of every living entity other than self.
func (s *Session) blockersExcept(self combat.Combatant) world.Blockers {
	var coords []hex.Coord
	for _, inv := range s.party.Members {
		if inv.IsAlive() && combat.Combatant(inv) != self {
			coords = append(coords, inv.Pos)
		}
	}
	for _, m := range s.monsters {
		if m.IsAlive() && combat.Combatant(m) != self {
			coords = append(coords, m.Pos)
		}
	}
	return world.NewBlockers(coords...)
}

func (s *Session) tileName(tile world.Tile) string {
	if def := s.tiles.GetByID(tile.Kind); def != nil {
		return def.Name
	}
	return tile.Kind
}

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = slices.Delete(s.messages, 0, len(s.messages)-maxMessages)
	}
}
