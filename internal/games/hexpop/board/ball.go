package board

import "fmt"

// Kind tells regular colored balls apart from special balls.
type Kind uint8

const (
	KindColor   Kind = iota // Regular ball with a color index
	KindRainbow             // Wildcard, joins any color region
	KindBomb                // Explodes after its fuse is armed
	KindStone               // Never matches, only falls or gets blown up
)

// MaxColors is the number of distinct color indexes a ball can carry.
const MaxColors = 26

// Ball is the content of one board cell.
type Ball struct {
	Kind  Kind
	Color int // Color index, meaningful only for KindColor
}

// Special balls.
var (
	Rainbow = Ball{Kind: KindRainbow}
	Bomb    = Ball{Kind: KindBomb}
	Stone   = Ball{Kind: KindStone}
)

// Colored returns a regular ball of the given color index.
func Colored(color int) Ball {
	if color < 0 || color >= MaxColors {
		panic(fmt.Sprintf("board: color index %d out of range", color))
	}
	return Ball{Kind: KindColor, Color: color}
}

// IsColor reports whether b is a regular colored ball.
func (b Ball) IsColor() bool {
	return b.Kind == KindColor
}

// Matches reports whether b joins a region of the given color.
func (b Ball) Matches(color int) bool {
	switch b.Kind {
	case KindColor:
		return b.Color == color
	case KindRainbow:
		return true
	default:
		return false
	}
}

// String returns the level-file code of the ball.
func (b Ball) String() string {
	switch b.Kind {
	case KindColor:
		return string(rune('a' + b.Color))
	case KindRainbow:
		return "R"
	case KindBomb:
		return "B"
	case KindStone:
		return "S"
	default:
		return "?"
	}
}
