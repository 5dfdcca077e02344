package parameter

// System Execution Priorities (lower runs first)
// Order is a correctness requirement: forces accumulate, motion consumes them, collisions correct the result
const (
	PriorityForce     = 10
	PriorityMotion    = 20 // After force accumulation
	PriorityCollision = 30 // After integration, uses integrated positions
)
