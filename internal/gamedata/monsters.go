package gamedata

import "github.com/gdamore/tcell/v2"

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "ghoul")
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code
	HP          int    `json:"hp"`          // Base hit points
	AttackDice  int    `json:"attackDice"`  // Dice rolled when attacking
	Defense     int    `json:"defense"`     // Dice rolled to cancel hits
	Speed       int    `json:"speed"`       // Hexes moved per monster phase
	Range       int    `json:"range"`       // Attack range; 1 means melee only
	Flying      bool   `json:"flying"`      // Ignores blocking objects when moving
	Horror      int    `json:"horror"`      // Sanity lost on a failed horror check
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	return glyphRune(m.Glyph)
}

// TCellColor returns the monster color, falling back to red.
func (m *MonsterDef) TCellColor() tcell.Color {
	return colorOr(m.Color, tcell.ColorRed)
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
