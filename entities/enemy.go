package entities

import (
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// Enemy drifts left, scripted enemies also home toward a fixed row
type Enemy struct {
	base
	scripted bool
}

// NewEnemy creates an enemy at (x, y)
func NewEnemy(x, y int, scripted bool) *Enemy {
	class := components.ColorEnemy
	if scripted {
		class = components.ColorScriptedEnemy
	}
	return &Enemy{
		base:     newBase(x, y, constants.EnemyChar, class),
		scripted: scripted,
	}
}

// Update moves one column left and, for scripted enemies, sometimes one row toward ScriptedTargetRow
func (e *Enemy) Update(_ input.KeyCode, rng vmath.Rand) {
	e.pos.X--
	if e.scripted && vmath.Chance(rng, constants.ScriptedHomingChance) {
		e.pos.Y = vmath.StepToward(e.pos.Y, constants.ScriptedTargetRow, constants.PlayfieldTop, constants.GridHeight-1)
	}
	if e.pos.X < 0 {
		e.active = false
	}
}

// CanShoot rolls the fire chance, it does not change the enemy
func (e *Enemy) CanShoot(rng vmath.Rand) bool {
	return vmath.Chance(rng, constants.EnemyShootChance)
}

// Scripted reports whether the enemy homes vertically
func (e *Enemy) Scripted() bool { return e.scripted }

func (e *Enemy) Kind() Kind { return KindEnemy }
