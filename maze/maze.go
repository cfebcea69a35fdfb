package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// New constructs a Maze from a non-empty, rectangular table of open flags
// (open[y][x] == true means the cell can be entered). The input is copied.
// start and goal must lie inside the grid on open cells.
// Complexity: O(W×H) time and memory.
func New(open [][]bool, start, goal Cell) (*Maze, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	h, w := len(open), len(open[0])
	cells := make([]bool, 0, w*h)
	for y, row := range open {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	m := &Maze{Width: w, Height: h, open: cells, start: start, goal: goal}
	if !m.IsOpen(start) {
		return nil, fmt.Errorf("%w: start %v", ErrBlockedMarker, start)
	}
	if !m.IsOpen(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrBlockedMarker, goal)
	}

	return m, nil
}

// Parse builds a Maze from its text form. Each line is one row; '#' is a
// wall, 'S' the start, 'E' the goal and every other character is open.
// Carriage returns and trailing blank lines are ignored.
func Parse(text string) (*Maze, error) {
	return Read(strings.NewReader(text))
}

// MaxLineBytes caps the bytes Read buffers for one row. Longer rows
// fail with an error wrapping bufio.ErrTooLong.
const MaxLineBytes = 1 << 20

// Read is Parse over an io.Reader. Rows longer than MaxLineBytes are rejected.
func Read(r io.Reader) (*Maze, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), len(rows[0]))
		}
	}

	open := make([][]bool, len(rows))
	var start, goal Cell
	var haveStart, haveGoal bool
	for y, row := range rows {
		open[y] = make([]bool, len(row))
		for x, ch := range row {
			switch ch {
			case WallMarker:
				continue
			case StartMarker:
				start, haveStart = Cell{x, y}, true
			case GoalMarker:
				goal, haveGoal = Cell{x, y}, true
			}
			open[y][x] = true
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return New(open, start, goal)
}

// Start returns the start cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the goal cell.
func (m *Maze) Goal() Cell { return m.goal }

// Len returns the number of cells, Width×Height.
func (m *Maze) Len() int { return len(m.open) }

// InBounds reports whether c lies inside the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// IsOpen reports whether c is inside the grid and not a wall.
func (m *Maze) IsOpen(c Cell) bool {
	return m.InBounds(c) && m.open[m.Index(c)]
}

// Index maps c to its row-major index y*Width + x. c must be in bounds.
func (m *Maze) Index(c Cell) int {
	return c.Y*m.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (m *Maze) Coordinate(idx int) Cell {
	return Cell{idx % m.Width, idx / m.Width}
}
