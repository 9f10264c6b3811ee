package systems

import (
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/engine"
	"github.com/lixenwraith/ft-shmup/entities"
)

// CullSystem removes inactive entities from their collections
// It runs last in the update phase so render and collision only see live entities
type CullSystem struct{}

// NewCullSystem creates a new cull system
func NewCullSystem() engine.System {
	return &CullSystem{}
}

// Priority returns the system's priority
func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

// Update filters every collection, survivors keep their relative order
func (s *CullSystem) Update(ctx *engine.GameContext) {
	ctx.Bullets = entities.Prune(ctx.Bullets)
	ctx.Enemies = entities.Prune(ctx.Enemies)
	ctx.Bosses = entities.Prune(ctx.Bosses)
}
