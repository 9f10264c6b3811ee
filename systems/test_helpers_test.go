package systems

import (
	"github.com/lixenwraith/ft-shmup/engine"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// newTestContext creates a session replaying rolls, an empty list fails every chance roll
func newTestContext(rolls ...int) (*engine.GameContext, *vmath.SequenceRand) {
	rng := vmath.NewSequenceRand(rolls...)
	ctx, _ := engine.NewTestGameContext(rng)
	return ctx, rng
}
