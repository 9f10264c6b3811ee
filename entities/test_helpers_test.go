package entities

import "github.com/lixenwraith/ft-shmup/components"

type drawCall struct {
	x, y  int
	glyph rune
	class components.ColorClass
}

// recordingCanvas captures draws in call order
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawGlyph(x, y int, glyph rune, class components.ColorClass) {
	c.calls = append(c.calls, drawCall{x: x, y: y, glyph: glyph, class: class})
}
