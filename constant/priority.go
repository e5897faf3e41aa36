package constant

// System Execution Priorities (lower runs first)
const (
	PriorityBand      = 10
	PriorityModulator = 20 // After band extraction, before motion (transforms feed endpoint resolution)
	PriorityMotion    = 30
	PriorityLightning = 40 // After motion, endpoints read live positions
)
