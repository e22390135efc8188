package gamedata

import (
	"errors"
	"math/rand"
)

// weightedPick selects an index from items using the weight function,
// considering only items accepted by keep. It returns -1 if nothing qualifies.
func weightedPick[T any](rng *rand.Rand, items []T, weight func(*T) int, keep func(*T) bool) int {
	total := 0
	for i := range items {
		if keep(&items[i]) && weight(&items[i]) > 0 {
			total += weight(&items[i])
		}
	}
	if total <= 0 {
		return -1
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := range items {
		if !keep(&items[i]) || weight(&items[i]) <= 0 {
			continue
		}
		cumulative += weight(&items[i])
		if roll < cumulative {
			return i
		}
	}
	return -1
}

func always[T any](*T) bool { return true }

// =============================================================================
// TileRegistry
// =============================================================================

// TileRegistry holds tile templates and picks them for board generation.
type TileRegistry struct {
	tiles []TileDef
	byID  map[string]*TileDef
}

// NewTileRegistry creates a registry from loaded tile templates.
func NewTileRegistry(tiles []TileDef) *TileRegistry {
	registry := &TileRegistry{
		tiles: tiles,
		byID:  make(map[string]*TileDef, len(tiles)),
	}
	for i := range tiles {
		registry.byID[tiles[i].ID] = &tiles[i]
	}
	return registry
}

// LoadTileRegistry loads and creates a registry from the embedded tiles.json.
func LoadTileRegistry() (*TileRegistry, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewTileRegistry(tiles), nil
}

// SpawnRandom selects a tile template using weighted probability.
func (r *TileRegistry) SpawnRandom(rng *rand.Rand) *TileDef {
	return r.SpawnRandomWhere(rng, always[TileDef])
}

// SpawnRandomWhere selects a weighted tile template among those accepted by keep.
// It returns nil when no template qualifies.
func (r *TileRegistry) SpawnRandomWhere(rng *rand.Rand, keep func(*TileDef) bool) *TileDef {
	i := weightedPick(rng, r.tiles, func(t *TileDef) int { return t.SpawnWeight }, keep)
	if i < 0 {
		return nil
	}
	return &r.tiles[i]
}

// GetByID returns the tile template with the given ID, or nil if not found.
func (r *TileRegistry) GetByID(id string) *TileDef {
	return r.byID[id]
}

// Count returns the number of tile templates in the registry.
func (r *TileRegistry) Count() int {
	return len(r.tiles)
}

// =============================================================================
// MonsterRegistry
// =============================================================================

// MonsterRegistry holds monster definitions and provides spawning utilities.
type MonsterRegistry struct {
	monsters []MonsterDef
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	return &MonsterRegistry{monsters: monsters}
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// SpawnRandom selects a monster definition using weighted probability.
// Monsters with higher spawnWeight are more likely to be selected.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	i := weightedPick(rng, r.monsters, func(m *MonsterDef) int { return m.SpawnWeight }, always[MonsterDef])
	if i < 0 {
		return nil
	}
	return &r.monsters[i]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Count returns the number of monster types in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
