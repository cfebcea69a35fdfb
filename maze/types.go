package maze

import (
	"errors"
	"fmt"
)

// ErrMalformedMaze is the umbrella error for every maze construction failure.
var ErrMalformedMaze = errors.New("maze: malformed maze")

// Sentinel errors for maze construction.
var (
	// ErrEmptyMaze indicates the input has no rows or no columns.
	ErrEmptyMaze = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedMaze)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedMaze)
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = fmt.Errorf("%w: start marker %q not found", ErrMalformedMaze, StartMarker)
	// ErrMissingGoal indicates no goal marker was found.
	ErrMissingGoal = fmt.Errorf("%w: goal marker %q not found", ErrMalformedMaze, GoalMarker)
	// ErrBlockedMarker indicates a start or goal that is out of bounds or a wall.
	ErrBlockedMarker = fmt.Errorf("%w: start and goal must be open cells", ErrMalformedMaze)
)

// Text markers understood by Parse.
const (
	WallMarker  = '#'
	OpenMarker  = '.'
	StartMarker = 'S'
	GoalMarker  = 'E'
)

// Cell is a grid coordinate. X grows east, Y grows south.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Maze is an immutable rectangular grid of open and wall cells with a
// designated start and goal. Both are guaranteed to be open.
type Maze struct {
	Width, Height int
	open          []bool // row-major, len == Width*Height
	start, goal   Cell
}
