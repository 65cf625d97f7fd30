package penguins

import (
	"fmt"
	"math"

	"github.com/vovakirdan/penguins/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar     = '@'
	PlayerBodyChar = '▒'
	StaticChar     = '●'
	FallingChar    = '▼'
	RisingChar     = '▲'
)

// Viewport maps the logical world (y up) onto a grid of terminal cells (row 0 at the top).
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// NewViewport creates a viewport covering cols x rows cells.
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		WorldW: worldW,
		WorldH: worldH,
	}
}

// ToCell returns the cell containing the logical point (x, y).
// ok is false when the point lies outside the visible world.
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / v.WorldW * float64(v.Cols)))
	row = int(math.Floor((v.WorldH - y) / v.WorldH * float64(v.Rows)))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

// ToLogical returns the logical point at the center of a cell.
// Cells outside the grid map outside the world; nothing is clamped.
func (v Viewport) ToLogical(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.WorldW / float64(v.Cols)
	y = v.WorldH - (float64(row)+0.5)*v.WorldH/float64(v.Rows)
	return x, y
}

// Render draws the snapshot into dst. The HUD sits in the bottom-left corner:
// the level above the score.
func (s Snapshot) Render(dst *core.Screen, vp Viewport) {
	dst.Clear()

	for _, a := range s.Actors {
		col, row, ok := vp.ToCell(a.X, a.Y)
		if !ok {
			continue
		}
		glyph, color := actorGlyph(a.Motion)
		dst.SetColored(col, row, glyph, color)
	}

	// Player body covers its collision box so the hit area is visible
	box := s.Player.Box()
	c0, r0, _ := vp.ToCell(box.X, box.Top())
	c1, r1, _ := vp.ToCell(box.Right(), box.Y)
	c0, c1 = max(c0, 0), min(c1, vp.Cols-1)
	r0, r1 = max(r0, 0), min(r1, vp.Rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if x, y := vp.ToLogical(col, row); !box.Contains(x, y) {
				continue
			}
			if dst.Get(col, row) == ' ' {
				dst.SetColored(col, row, PlayerBodyChar, core.ColorWhite)
			}
		}
	}
	if col, row, ok := vp.ToCell(s.Player.X, s.Player.Y); ok {
		dst.SetColored(col, row, PlayerChar, core.ColorBrightWhite)
	}

	h := dst.Height()
	dst.DrawText(1, h-2, fmt.Sprintf("Level: %d", s.Level), core.ColorBlue)
	dst.DrawText(1, h-1, fmt.Sprintf("Score: %d", s.Score), core.ColorBlue)
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen, vp Viewport) {
	g.Snapshot().Render(dst, vp)
}

// DrawBanner draws a centered message box, used to announce a new level.
func DrawBanner(dst *core.Screen, text string) {
	w := len([]rune(text)) + 4
	h := 3
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.DrawBox(x, y, w, h, core.ColorCyan)
	dst.DrawTextCentered(y+1, text, core.ColorBrightCyan)
}

func actorGlyph(m Motion) (rune, core.Color) {
	switch m {
	case MotionFalling:
		return FallingChar, core.ColorBrightCyan
	case MotionRising:
		return RisingChar, core.ColorBrightBlue
	default:
		return StaticChar, core.ColorCyan
	}
}
