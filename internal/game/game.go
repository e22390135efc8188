package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowhex/internal/hex"
	"github.com/samdwyer/hollowhex/internal/logger"
	"github.com/samdwyer/hollowhex/internal/telemetry"
	"github.com/samdwyer/hollowhex/internal/ui"
)

// moveKeys maps keys to hex directions on the pointy-top layout.
var moveKeys = map[rune]hex.Coord{
	'd': {Q: 1, R: 0},  // east
	'a': {Q: -1, R: 0}, // west
	'x': {Q: 0, R: 1},  // south-east
	'w': {Q: 0, R: -1}, // north-west
	'e': {Q: 1, R: -1}, // north-east
	'z': {Q: -1, R: 1}, // south-west
}

// Game drives a Session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	session  *Session
	notice   string
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	ctx, initSpan := tracer.Start(ctx, "game.init")
	session, err := NewSession(ctx, g.cfg)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.session = session

	initSpan.SetAttributes(telemetry.SessionAttributes(session.ID.String(), session.Seed)...)
	initSpan.SetAttributes(
		attribute.Int("board.tiles", session.Board().Len()),
		attribute.Int("party.size", len(session.Party().Members)),
	)
	initSpan.End()

	// Main game loop
	for g.running {
		g.renderer.Render(g.frame())
		g.handleInput(ctx)
	}

	logger.Log.WithFields(logrus.Fields{
		"session": session.ID.String(),
		"phase":   session.Phase().String(),
		"round":   session.Round(),
	}).Info("session ended")
	return nil
}

// frame collects what the renderer needs from the session.
func (g *Game) frame() ui.Frame {
	s := g.session
	f := ui.Frame{
		Board:         s.Board(),
		Tiles:         s.Tiles(),
		Investigators: s.Party().Members,
		Monsters:      s.Monsters(),
		Active:        s.Active(),
		Reachable:     s.Reachable(),
		Visible:       s.Visible(),
		Status:        g.status(),
		Messages:      s.Messages(),
	}
	if f.Active != nil {
		f.Focus = f.Active.Pos
	}
	return f
}

func (g *Game) status() string {
	s := g.session
	switch s.Phase() {
	case PhaseVictory:
		return "You escaped the house. Press q to quit."
	case PhaseDefeat:
		return "All investigators are lost. Press q to quit."
	}

	inv := s.Active()
	if inv == nil {
		return fmt.Sprintf("Round %d", s.Round())
	}
	status := fmt.Sprintf("Round %d | %s HP %d/%d Sanity %d/%d | Moves %d",
		s.Round(), inv.Name, inv.HP, inv.MaxHP, inv.Sanity, inv.MaxSanity, s.MovesLeft())
	if g.notice != "" {
		status += " | " + g.notice
	}
	return status
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	g.notice = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyEnter:
		g.report(g.session.EndTurn(ctx))
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if dir, ok := moveKeys[r]; ok {
		g.report(g.session.Move(ctx, dir))
		return
	}
	switch r {
	case 'q', 'Q':
		g.running = false
	case 'f':
		g.report(g.session.AttackNearest(ctx))
	case ' ':
		g.report(g.session.EndTurn(ctx))
	}
}

// report shows a rejected action on the status line.
func (g *Game) report(err error) {
	if err == nil || errors.Is(err, ErrGameOver) {
		return
	}
	g.notice = err.Error()
	logger.Log.WithError(err).Debug("action rejected")
}
