package systems

import (
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/engine"
	"github.com/lixenwraith/ft-shmup/entities"
)

// MovementSystem advances every live entity one tick
// Entities killed during the previous collision pass are skipped until CullSystem removes them
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() engine.System {
	return &MovementSystem{}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update moves the player, bullets, enemies and bosses in that order
// Enemy bullets fired this tick are not advanced until the next one
// A shot that would spawn left of column 0 is dropped, the roll is still consumed
func (s *MovementSystem) Update(ctx *engine.GameContext) {
	key, rng := ctx.LastKey, ctx.Rand

	ctx.Player.Update(key, rng)

	for _, b := range ctx.Bullets {
		if b.Active() {
			b.Update(key, rng)
		}
	}

	for _, e := range ctx.Enemies {
		if !e.Active() {
			continue
		}
		e.Update(key, rng)
		if !e.Active() || !e.CanShoot(rng) {
			continue
		}
		if x := e.Position().X - 1; x >= 0 {
			ctx.AddBullet(entities.NewBullet(x, e.Position().Y, false))
		}
	}

	for _, b := range ctx.Bosses {
		if b.Active() {
			b.Update(key, rng)
		}
	}
}
