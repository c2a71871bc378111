package core

// Color is a foreground color for a screen cell.
// The terminal front-end maps each value to an ANSI 256-color style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Element colors used when drawing a runner world.
const (
	ColorActor       = ColorBrightGreen
	ColorGroundHaz   = ColorGreen
	ColorRockHaz     = ColorOrange
	ColorFlyingHaz   = ColorCyan
	ColorGround      = ColorGray
	ColorHUD         = ColorBrightWhite
	ColorGameOverMsg = ColorRed
)
