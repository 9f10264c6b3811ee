package systems

import (
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/engine"
	"github.com/lixenwraith/ft-shmup/entities"
	"github.com/lixenwraith/ft-shmup/input"
)

// InputSystem applies the session-level keys: fire and quit
// Movement keys are consumed by the player during MovementSystem
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() engine.System {
	return &InputSystem{}
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

// Update spawns a player bullet ahead of the ship or ends the session
func (s *InputSystem) Update(ctx *engine.GameContext) {
	switch input.Lookup(ctx.LastKey) {
	case input.IntentFire:
		pos := ctx.Player.Position()
		ctx.AddBullet(entities.NewBullet(pos.X+1, pos.Y, true))
	case input.IntentQuit:
		ctx.EndGame(engine.EndReasonQuit)
	}
}
