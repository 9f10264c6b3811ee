// @focus: #entities { contract }
package entities

import (
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// Kind is the closed set of entity variants
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
	KindBoss
)

// String returns the lowercase kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

// Canvas receives glyph draws, coordinates are grid cells
// Bounds checking is the caller's responsibility
type Canvas interface {
	DrawGlyph(x, y int, glyph rune, class components.ColorClass)
}

// Entity is the per-tick contract shared by all moving objects
type Entity interface {
	// Update advances the entity one tick, non-player kinds ignore key
	Update(key input.KeyCode, rng vmath.Rand)
	// Render draws the entity if active
	Render(c Canvas)
	Active() bool
	// Deactivate marks the entity dead, repeated calls are no-ops
	Deactivate()
	Position() components.PositionComponent
	Glyph() rune
	Kind() Kind
}

// base carries the fields shared by every entity kind
type base struct {
	pos    components.PositionComponent
	glyph  rune
	class  components.ColorClass
	active bool
}

func newBase(x, y int, glyph rune, class components.ColorClass) base {
	return base{
		pos:    components.PositionComponent{X: x, Y: y},
		glyph:  glyph,
		class:  class,
		active: true,
	}
}

func (b *base) Active() bool { return b.active }

func (b *base) Deactivate() { b.active = false }

func (b *base) Position() components.PositionComponent { return b.pos }

func (b *base) Glyph() rune { return b.glyph }

// Render draws a single cell, multi-cell kinds override it
func (b *base) Render(c Canvas) {
	if b.active {
		c.DrawGlyph(b.pos.X, b.pos.Y, b.glyph, b.class)
	}
}

// Prune returns the active entities of s in their original order
// The result is a fresh slice, s is left untouched
func Prune[E Entity](s []E) []E {
	out := make([]E, 0, len(s))
	for _, e := range s {
		if e.Active() {
			out = append(out, e)
		}
	}
	return out
}
