package maze

import "strings"

// Heading is one of the four cardinal directions.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in clockwise order starting at North.
var Headings = [4]Heading{North, East, South, West}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// TurnLeft rotates h 90° counter-clockwise.
func (h Heading) TurnLeft() Heading {
	return (h + 3) % 4
}

// TurnRight rotates h 90° clockwise.
func (h Heading) TurnRight() Heading {
	return (h + 1) % 4
}

// Opposite returns the heading rotated by 180°.
func (h Heading) Opposite() Heading {
	return (h + 2) % 4
}

// Step returns the neighbour of c one cell along h. It reports false when the
// move would leave the non-negative quadrant (North from row 0, West from
// column 0). East and South are never rejected here; the maze checks the far
// bounds.
func (h Heading) Step(c Cell) (Cell, bool) {
	switch h {
	case North:
		if c.Y == 0 {
			return c, false
		}
		return Cell{c.X, c.Y - 1}, true
	case East:
		return Cell{c.X + 1, c.Y}, true
	case South:
		return Cell{c.X, c.Y + 1}, true
	case West:
		if c.X == 0 {
			return c, false
		}
		return Cell{c.X - 1, c.Y}, true
	}

	return c, false
}

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}

	return "Heading(?)"
}

// ParseHeading maps a name ("north", "E", ...) to a Heading, case-insensitively.
func ParseHeading(s string) (Heading, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, true
	case "e", "east":
		return East, true
	case "s", "south":
		return South, true
	case "w", "west":
		return West, true
	}

	return 0, false
}
