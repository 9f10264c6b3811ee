package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/mattn/go-runewidth"
)

// Canvas writes glyphs to a tcell screen, it implements entities.Canvas
type Canvas struct {
	screen tcell.Screen
}

// NewCanvas wraps screen for grid drawing
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

// DrawGlyph writes one cell
func (c *Canvas) DrawGlyph(x, y int, glyph rune, class components.ColorClass) {
	c.screen.SetContent(x, y, glyph, nil, StyleFor(class))
}

// DrawText writes text starting at (x, y), advancing by display width
// Text is clipped at the screen edge, the returned column is one past the last cell written
func (c *Canvas) DrawText(x, y int, text string, class components.ColorClass) int {
	width, _ := c.screen.Size()
	style := StyleFor(class)

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		c.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// Fill writes glyph over every cell of rows [top, bottom) and columns [0, width)
func (c *Canvas) Fill(top, bottom, width int, glyph rune, class components.ColorClass) {
	style := StyleFor(class)
	for y := top; y < bottom; y++ {
		for x := 0; x < width; x++ {
			c.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}
