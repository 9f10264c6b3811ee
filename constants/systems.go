package constants

// System priorities, lower values run first
// Systems at or above PriorityPostRender run after the frame is drawn
const (
	PriorityInput    = 0
	PrioritySpawn    = 10
	PriorityMovement = 20
	PriorityCull     = 30

	PriorityPostRender = 100
	PriorityCollision  = PriorityPostRender
)
