package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowhex/internal/gamedata"
	"github.com/samdwyer/hollowhex/internal/hex"
	"github.com/samdwyer/hollowhex/internal/telemetry"
)

const (
	// StartTileID is the template placed at the origin.
	StartTileID = "foyer"

	// StartRadius is the radius of open tiles laid around the origin.
	StartRadius = 1

	// MinExitDistance keeps exit tiles from appearing next to the start.
	MinExitDistance = 6
)

var (
	// ErrNotFrontier is returned when exploring a cell that does not touch explored space.
	ErrNotFrontier = errors.New("coordinate is not adjacent to explored space")
	// ErrNoTemplate is returned when no tile template can be placed.
	ErrNoTemplate = errors.New("no tile template available")
)

// Generator grows a board one tile at a time from weighted templates.
type Generator struct {
	tiles *gamedata.TileRegistry
	rng   *rand.Rand
}

// NewGenerator creates a generator. The rng makes generation reproducible.
func NewGenerator(tiles *gamedata.TileRegistry, rng *rand.Rand) *Generator {
	return &Generator{tiles: tiles, rng: rng}
}

// Seed lays the starting area: the start tile at the origin and open tiles around it.
func (g *Generator) Seed(ctx context.Context, board *Board) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "board.seed")
	defer span.End()

	origin := hex.Coord{}
	start := g.tiles.GetByID(StartTileID)
	if start == nil {
		return fmt.Errorf("start tile %q: %w", StartTileID, ErrNoTemplate)
	}
	if err := board.Add(tileFromDef(origin, start)); err != nil {
		return err
	}

	for _, c := range hex.Spiral(origin, StartRadius)[1:] {
		def := g.tiles.SpawnRandomWhere(g.rng, isOpen)
		if def == nil {
			return fmt.Errorf("seed tile at %v: %w", c, ErrNoTemplate)
		}
		if err := board.Add(tileFromDef(c, def)); err != nil {
			return err
		}
	}

	span.SetAttributes(attribute.Int("board.tiles", board.Len()))
	return nil
}

// Explore generates the tile at an unexplored coordinate adjacent to explored space.
func (g *Generator) Explore(ctx context.Context, board *Board, at hex.Coord) (Tile, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "board.explore")
	defer span.End()

	startTime := time.Now()

	if board.Has(at) {
		return Tile{}, fmt.Errorf("explore %v: %w", at, ErrTileExists)
	}
	if !board.IsFrontier(at) {
		return Tile{}, fmt.Errorf("explore %v: %w", at, ErrNotFrontier)
	}

	allowExit := hex.Distance(hex.Coord{}, at) >= MinExitDistance
	def := g.tiles.SpawnRandomWhere(g.rng, func(d *gamedata.TileDef) bool {
		return allowExit || !d.Exit
	})
	if def == nil {
		return Tile{}, fmt.Errorf("explore %v: %w", at, ErrNoTemplate)
	}

	tile := tileFromDef(at, def)
	if err := board.Add(tile); err != nil {
		return Tile{}, err
	}

	span.SetAttributes(
		attribute.String("tile.coord", at.String()),
		attribute.String("tile.kind", tile.Kind),
		attribute.Bool("tile.blocking", tile.Blocking),
		attribute.Int("board.tiles", board.Len()),
		attribute.Int64("board.explore_us", time.Since(startTime).Microseconds()),
	)
	return tile, nil
}

func isOpen(d *gamedata.TileDef) bool {
	return !d.Blocking && !d.Exit
}

func tileFromDef(c hex.Coord, def *gamedata.TileDef) Tile {
	return Tile{
		Coord:    c,
		Kind:     def.ID,
		Object:   def.Object,
		Blocking: def.Blocking,
		Exit:     def.Exit,
	}
}
