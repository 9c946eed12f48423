package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; one tick runs the fixed and frame phases once.
	TPS = 60

	// PixelsPerUnit converts world units to screen pixels.
	PixelsPerUnit = 48.0

	// Gravity is the world gravity along Y. The world is y-up.
	Gravity = -9.81
)
