package constants

import "time"

// Grid dimensions in character cells
const (
	// GridWidth is the number of columns of the playfield
	GridWidth = 80

	// GridHeight is the number of rows, row 0 is reserved for the status line
	GridHeight = 24

	// PlayfieldTop is the first row entities may occupy
	PlayfieldTop = 1
)

// Game Loop Timing Constants
const (
	// TargetFPS is the tick rate of the game loop
	TargetFPS = 30

	// FrameInterval is the fixed sleep between ticks
	FrameInterval = time.Second / TargetFPS

	// GameOverHoldDuration is how long the game over screen stays up before exit
	GameOverHoldDuration = 3 * time.Second
)
