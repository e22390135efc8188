package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" (the leading # is optional) to a tcell.Color.
func ParseHexColor(s string) (tcell.Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", s)
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return tcell.NewHexColor(int32(value)), nil
}

// colorOr parses s, returning fallback for malformed values.
func colorOr(s string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return color
}
