package gamedata

import "github.com/gdamore/tcell/v2"

// TileDef is a template for procedurally generated board tiles.
type TileDef struct {
	ID            string `json:"id"`            // Unique identifier (e.g., "chapel")
	Name          string `json:"name"`          // Display name
	Glyph         string `json:"glyph"`         // Single character for rendering
	Color         string `json:"color"`         // Hex color code
	Object        string `json:"object"`        // Object occupying the tile (e.g., "rubble"), empty if none
	Blocking      bool   `json:"blocking"`      // Object blocks movement and sight through the tile
	Exit          bool   `json:"exit"`          // Reaching this tile wins the game
	SpawnWeight   int    `json:"spawnWeight"`   // Relative generation frequency
	MonsterChance int    `json:"monsterChance"` // Percent chance a monster appears when revealed
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	return glyphRune(t.Glyph)
}

// TCellColor returns the tile color, falling back to gray.
func (t *TileDef) TCellColor() tcell.Color {
	return colorOr(t.Color, tcell.ColorGray)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile templates from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
