package entities

import (
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// Bullet travels along its row, rightward when fired by the player and leftward otherwise
type Bullet struct {
	base
	fromPlayer bool
}

// NewBullet creates a bullet at (x, y), fromPlayer fixes its direction for life
func NewBullet(x, y int, fromPlayer bool) *Bullet {
	glyph, class := rune(constants.EnemyBulletChar), components.ColorEnemyBullet
	if fromPlayer {
		glyph, class = constants.PlayerBulletChar, components.ColorPlayerBullet
	}
	return &Bullet{
		base:       newBase(x, y, glyph, class),
		fromPlayer: fromPlayer,
	}
}

// Update advances one cell and deactivates once past the grid edge
func (b *Bullet) Update(_ input.KeyCode, _ vmath.Rand) {
	if b.fromPlayer {
		b.pos.X++
		if b.pos.X >= constants.GridWidth {
			b.active = false
		}
		return
	}
	b.pos.X--
	if b.pos.X < 0 {
		b.active = false
	}
}

// FromPlayer reports the bullet origin
func (b *Bullet) FromPlayer() bool { return b.fromPlayer }

func (b *Bullet) Kind() Kind { return KindBullet }
