package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// bannerSeconds is how long the "Level N" banner takes to fade out.
const bannerSeconds = 2.0

// banner is a text overlay whose opacity tweens from 1 to 0.
type banner struct {
	text  string
	tween *gween.Tween
	alpha float32
}

// Show restarts the fade with new text.
func (b *banner) Show(text string) {
	b.text = text
	b.tween = gween.New(1, 0, bannerSeconds, ease.InQuad)
	b.alpha = 1
}

// Hide removes the banner immediately.
func (b *banner) Hide() {
	b.tween = nil
	b.alpha = 0
}

// Update advances the fade by dt seconds.
func (b *banner) Update(dt float32) {
	if b.tween == nil {
		return
	}
	alpha, done := b.tween.Update(dt)
	b.alpha = alpha
	if done {
		b.Hide()
	}
}

// Visible reports whether the banner should be drawn.
func (b *banner) Visible() bool {
	return b.alpha > 0
}
