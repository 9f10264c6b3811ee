package engine

import "github.com/lixenwraith/ft-shmup/input"

// System is one stage of the tick
type System interface {
	Update(ctx *GameContext)
	Priority() int // Lower values run first
}

// KeySource yields at most one key per call without blocking
// input.KeyNone means nothing is pending
type KeySource interface {
	PollKey() input.KeyCode
}

// FrameRenderer draws session state to the display
type FrameRenderer interface {
	RenderFrame(ctx *GameContext)
	RenderGameOver(ctx *GameContext)
}
