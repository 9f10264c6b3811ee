package entities

import (
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// Boss is the multi-cell, multi-hit enemy holding the right half of the grid
type Boss struct {
	base
	health    int
	footprint components.FootprintComponent
}

// NewBoss creates a boss with full health anchored at (x, y)
func NewBoss(x, y int) *Boss {
	return &Boss{
		base:   newBase(x, y, constants.BossChar, components.ColorBoss),
		health: constants.BossHealth,
		footprint: components.FootprintComponent{
			Width:  constants.BossWidth,
			Height: constants.BossHeight,
		},
	}
}

// Update drifts left until the grid midpoint and jitters vertically
func (b *Boss) Update(_ input.KeyCode, rng vmath.Rand) {
	b.pos.X--
	if b.pos.X < constants.BossMinX {
		b.pos.X = constants.BossMinX
	}
	if vmath.Chance(rng, constants.BossJitterChance) {
		if rng.Intn(2) == 1 {
			b.pos.Y++
		} else {
			b.pos.Y--
		}
	}
	b.pos.Y = vmath.Clamp(b.pos.Y, constants.PlayfieldTop, constants.GridHeight-b.footprint.Height)
}

// Render draws every on-grid cell of the footprint
func (b *Boss) Render(c Canvas) {
	if !b.active {
		return
	}
	for dy := 0; dy < b.footprint.Height; dy++ {
		for dx := 0; dx < b.footprint.Width; dx++ {
			x, y := b.pos.X+dx, b.pos.Y+dy
			if x < constants.GridWidth && y < constants.GridHeight {
				c.DrawGlyph(x, y, b.glyph, b.class)
			}
		}
	}
}

// TakeDamage removes one health point and deactivates the boss when depleted
func (b *Boss) TakeDamage() {
	b.health--
	if b.health <= 0 {
		b.active = false
	}
}

// Collides reports whether cell (px, py) lies inside the footprint
func (b *Boss) Collides(px, py int) bool {
	return b.footprint.Contains(b.pos, px, py)
}

// Health returns the remaining hit points
func (b *Boss) Health() int { return b.health }

func (b *Boss) Kind() Kind { return KindBoss }
