package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/hollowhex/internal/entity"
	"github.com/samdwyer/hollowhex/internal/gamedata"
	"github.com/samdwyer/hollowhex/internal/hex"
	"github.com/samdwyer/hollowhex/internal/world"
)

// messageLines is how many recent messages are shown under the status line.
const messageLines = 3

// Frame is everything drawn in one screen update.
type Frame struct {
	Board         *world.Board
	Tiles         *gamedata.TileRegistry
	Investigators []*entity.Investigator
	Monsters      []*entity.Monster
	Active        *entity.Investigator
	Focus         hex.Coord   // Hex drawn at the center of the map area
	Reachable     []hex.Coord // Highlighted as movement targets
	Visible       []hex.Coord // Drawn bright; other explored hexes are dimmed
	Status        string
	Messages      []string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the board, entities, status line and recent messages.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapHeight := max(height-messageLines-1, 1)
	cx, cy := width/2, mapHeight/2

	visible := setOf(f.Visible)
	reachable := setOf(f.Reachable)
	inMap := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < mapHeight
	}

	// Draw explored tiles
	for _, c := range f.Board.Coords() {
		x, y := ScreenPos(c, f.Focus, cx, cy)
		if !inMap(x, y) {
			continue
		}
		tile, _ := f.Board.TileAt(c)
		r.screen.SetContent(x, y, tileRune(tile, f.Tiles), tileStyle(tile, f.Tiles, visible.Has(c), reachable.Has(c)))
	}

	// Monsters are only drawn where someone can see them
	for _, m := range f.Monsters {
		x, y := ScreenPos(m.Pos, f.Focus, cx, cy)
		if !m.IsAlive() || !visible.Has(m.Pos) || !inMap(x, y) {
			continue
		}
		r.screen.SetContent(x, y, m.Symbol, tcell.StyleDefault.Foreground(m.Color()).Bold(true))
	}

	// Draw investigators on top
	for _, inv := range f.Investigators {
		x, y := ScreenPos(inv.Pos, f.Focus, cx, cy)
		if !inv.IsAlive() || !inMap(x, y) {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		if inv == f.Active {
			style = style.Reverse(true)
		}
		r.screen.SetContent(x, y, inv.Symbol, style)
	}

	r.screen.DrawText(0, mapHeight, f.Status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	start := max(len(f.Messages)-messageLines, 0)
	for i, msg := range f.Messages[start:] {
		r.RenderMessage(msg, mapHeight+1+i)
	}

	r.screen.Show()
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// ScreenPos maps c to a terminal cell, placing focus at (cx, cy). Hexes are
// two columns wide and odd rows are shifted right by one column.
func ScreenPos(c, focus hex.Coord, cx, cy int) (x, y int) {
	col, row := c.ToOffset()
	focusCol, focusRow := focus.ToOffset()
	x = cx + (col-focusCol)*2 + (row & 1) - (focusRow & 1)
	y = cy + row - focusRow
	return x, y
}

func tileRune(tile world.Tile, tiles *gamedata.TileRegistry) rune {
	if def := tiles.GetByID(tile.Kind); def != nil {
		return def.GlyphRune()
	}
	if tile.Blocking {
		return '#'
	}
	return '.'
}

func tileStyle(tile world.Tile, tiles *gamedata.TileRegistry, visible, reachable bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if def := tiles.GetByID(tile.Kind); def != nil {
		style = style.Foreground(def.TCellColor())
	}
	if !visible {
		style = style.Foreground(tcell.ColorDarkGray)
	}
	if reachable {
		style = style.Background(tcell.ColorNavy)
	}
	return style
}

func setOf(coords []hex.Coord) mapset.Set[hex.Coord] {
	set := mapset.New[hex.Coord]()
	for _, c := range coords {
		set.Put(c)
	}
	return set
}
