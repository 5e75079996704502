//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mad-life/internal/input"
	"mad-life/internal/render"
	"mad-life/internal/session"
	"mad-life/internal/ui"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	state   *session.State
	painter *render.GridPainter
	hud     *ui.HUD
	tracker input.Tracker
}

// New constructs a Game driving the provided state.
func New(state *session.State) *Game {
	return &Game{
		state:   state,
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(),
	}
}

// Update applies this frame's input, then advances the simulation once.
func (g *Game) Update() error {
	actions, quit := g.state.ApplyAll(g.tracker.Events(poll()))
	if quit {
		return ebiten.Termination
	}
	for _, a := range actions {
		switch a {
		case session.ActionToggleFullscreen:
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		case session.ActionToggleHUD:
			g.hud.Toggle()
		}
	}

	g.state.Update()
	g.hud.Update(g.state.Snapshot())
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.state.View, g.state.Cells, g.state.Background, g.state.Foreground)
	g.hud.Draw(screen)
}

// Layout keeps one logical pixel per screen pixel so resizing the window
// shows more of the lattice instead of stretching it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and blocks until the user quits.
func Run(state *session.State, opts Options) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(New(state)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	log.Printf("window closed at generation %d, population %d", state.Generation, state.Cells.Len())
	return nil
}

var keys = []struct {
	ebiten ebiten.Key
	key    input.Key
}{
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyC, input.KeyC},
	{ebiten.KeyF, input.KeyF},
	{ebiten.KeyH, input.KeyH},
	{ebiten.KeyN, input.KeyN},
	{ebiten.KeyR, input.KeyR},
}

var buttons = []struct {
	ebiten ebiten.MouseButton
	button input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// poll samples ebiten's device state for this frame.
func poll() input.Sample {
	var s input.Sample
	s.CloseRequested = ebiten.IsWindowBeingClosed()
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			s.Keys = append(s.Keys, k.key)
		}
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			s.Pressed = append(s.Pressed, b.button)
		}
		if ebiten.IsMouseButtonPressed(b.ebiten) {
			s.Held = s.Held.With(b.button)
		}
	}
	s.X, s.Y = ebiten.CursorPosition()
	_, s.WheelY = ebiten.Wheel()
	return s
}
