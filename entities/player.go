package entities

import (
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// Player is the keyboard-driven ship, it never deactivates
type Player struct {
	base
	lives int
}

// NewPlayer creates the player at (x, y) with the starting life count
func NewPlayer(x, y int) *Player {
	return &Player{
		base:  newBase(x, y, constants.PlayerChar, components.ColorPlayer),
		lives: constants.PlayerLives,
	}
}

// Update moves one cell per directional key, clamped to the left quarter of the playfield
func (p *Player) Update(key input.KeyCode, _ vmath.Rand) {
	dx, dy := input.Lookup(key).Direction()
	if dx == 0 && dy == 0 {
		return
	}
	next := p.pos.Offset(dx, dy)
	p.pos.X = vmath.Clamp(next.X, 0, constants.PlayerMaxX)
	p.pos.Y = vmath.Clamp(next.Y, constants.PlayfieldTop, constants.GridHeight-1)
}

// TakeDamage removes one life, lives may go negative
func (p *Player) TakeDamage() { p.lives-- }

// Lives returns the remaining life count
func (p *Player) Lives() int { return p.lives }

func (p *Player) Kind() Kind { return KindPlayer }
