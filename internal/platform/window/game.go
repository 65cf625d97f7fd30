// Package window runs the penguin collector in a desktop window with Ebitengine.
// The world is drawn at its logical size; the hidden system cursor steers the player.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/penguins/internal/core"
	"github.com/vovakirdan/penguins/internal/platform/session"
)

// HUD text anchors in world units, measured from the bottom-left corner.
const (
	hudX      = 10
	scoreY    = 20
	levelY    = 35
	bannerPad = 12
)

// game adapts a session to ebiten.Game.
type game struct {
	session *session.Session
	sprites Sprites
	face    ebtext.Face
	banner  banner
	input   core.InputFrame
	width   float64
	height  float64

	// Last cursor position seen, in window pixels.
	cursorX, cursorY int
	cursorSeen       bool
}

func newGame(s *session.Session, sprites Sprites) *game {
	cfg := s.Game.Config()
	return &game{
		session: s,
		sprites: sprites,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		input:   core.NewInputFrame(),
		width:   cfg.Screen.Width,
		height:  cfg.Screen.Height,
	}
}

// Update reads input and advances the game by one frame.
func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.input.Set(core.ActionRestart)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.session.Refill()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.session.ToggleMute()
	}

	if cx, cy := ebiten.CursorPosition(); g.pointerMoved(cx, cy) {
		x, y := toWorld(cx, cy, g.height)
		g.session.Game.SetPlayerPosition(x, y)
	}

	res := g.session.Step(g.input)
	g.input.Clear()

	switch {
	case res.Restarted:
		g.banner.Hide()
	case res.LevelChanged:
		g.banner.Show(fmt.Sprintf("Level %d", res.State.Level))
	}
	g.banner.Update(1 / float32(ebiten.TPS()))
	return nil
}

// Draw renders background, followers, player, HUD and banner.
func (g *game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	snap := g.session.Game.Snapshot()
	for _, a := range snap.Actors {
		g.drawSprite(screen, g.sprites.Follower, a.X, a.Y, a.W, a.H)
	}
	g.drawSprite(screen, g.sprites.Player, snap.Player.X, snap.Player.Y, snap.Player.W, snap.Player.H)

	g.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), hudX, scoreY, colornames.Blue)
	g.drawText(screen, fmt.Sprintf("Level: %d", snap.Level), hudX, levelY, colornames.Blue)

	if g.banner.Visible() {
		g.drawBanner(screen)
	}
}

// Layout keeps the logical world size; ebiten scales it to the window.
func (g *game) Layout(int, int) (int, int) {
	return int(g.width), int(g.height)
}

func (g *game) drawBackground(screen *ebiten.Image) {
	b := g.sprites.Background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.width/float64(b.Dx()), g.height/float64(b.Dy()))
	screen.DrawImage(g.sprites.Background, op)
}

// drawSprite draws img stretched to w x h and centered on the world point (x, y).
func (g *game) drawSprite(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	left, top := spriteOrigin(x, y, w, h, g.height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(left, top)
	screen.DrawImage(img, op)
}

// drawText draws text with its bottom-left corner at the world point (x, y).
func (g *game) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	sx, sy := toScreen(x, y, g.height)

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(c)
	op.LayoutOptions.SecondaryAlign = ebtext.AlignEnd
	ebtext.Draw(screen, s, g.face, op)
}

func (g *game) drawBanner(screen *ebiten.Image) {
	w, h := ebtext.Measure(g.banner.text, g.face, 0)

	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(3, 3)
	op.GeoM.Translate((g.width-3*w)/2, (g.height-3*h)/2-bannerPad)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.ColorScale.ScaleAlpha(g.banner.alpha)
	ebtext.Draw(screen, g.banner.text, g.face, op)
}

// pointerMoved records the cursor position and reports whether it changed
// since the previous frame. The first reading only sets the baseline, so the
// player keeps its start position until the pointer actually moves.
func (g *game) pointerMoved(cx, cy int) bool {
	if !g.cursorSeen {
		g.cursorX, g.cursorY, g.cursorSeen = cx, cy, true
		return false
	}
	if cx == g.cursorX && cy == g.cursorY {
		return false
	}
	g.cursorX, g.cursorY = cx, cy
	return true
}

// toWorld converts a window pixel position (y down) to world units (y up).
func toWorld(cx, cy int, worldH float64) (x, y float64) {
	return float64(cx), worldH - float64(cy)
}

// toScreen converts a world point (y up) to a screen position (y down).
func toScreen(x, y, worldH float64) (sx, sy float64) {
	return x, worldH - y
}

// spriteOrigin returns the top-left screen corner of a w x h sprite centered
// on the world point (x, y).
func spriteOrigin(x, y, w, h, worldH float64) (left, top float64) {
	sx, sy := toScreen(x, y, worldH)
	return sx - w/2, sy - h/2
}

var _ ebiten.Game = (*game)(nil)
