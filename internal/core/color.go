package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// BallColors is the palette used for ball color indexes, in index order.
var BallColors = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// BallColor returns the palette color for a ball color index.
// Indexes wrap around the palette.
func BallColor(index int) Color {
	if index < 0 {
		return ColorDefault
	}
	return BallColors[index%len(BallColors)]
}
