package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load decodes one of the embedded content files (tiles, monsters,
// investigators) into T. The file name is relative to the package directory.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}
	return result, nil
}

// glyphRune returns the first rune of a glyph string, or '?' when empty.
func glyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}
