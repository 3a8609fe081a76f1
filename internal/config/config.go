package config

const (
	WindowWidth  = 960
	WindowHeight = 640

	Title = "Ripple Rush"

	// Header band above the canvas
	HeaderHeight = 210

	// Canvas box, in logical pixels
	CanvasX      = 32
	CanvasY      = HeaderHeight + 16
	CanvasWidth  = WindowWidth - 2*CanvasX
	CanvasHeight = WindowHeight - CanvasY - 32

	// Button dimensions
	ButtonWidth  = 160
	ButtonHeight = 44
	ButtonX      = (WindowWidth - ButtonWidth) / 2
	ButtonY      = HeaderHeight - ButtonHeight - 16

	// Ripple stroke
	RippleStrokeWidth = 3

	// Theme toggle hit box, top right
	ToggleSize = 28
	ToggleX    = WindowWidth - ToggleSize - 16
	ToggleY    = 16

	TPS = 60
)
