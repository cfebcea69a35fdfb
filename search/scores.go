package search

import "github.com/katalvlaran/mazepath/maze"

// unset marks a state without a recorded score.
const unset = -1

// ScoreTable maps every discovered State to the lowest cost seen for it.
// It is dense: one slot per (cell, heading) of the maze it was built for.
type ScoreTable struct {
	width, height int
	scores        []int // (y*width+x)*4 + heading
	n             int
}

func newScoreTable(m *maze.Maze) *ScoreTable {
	scores := make([]int, m.Len()*len(maze.Headings))
	for i := range scores {
		scores[i] = unset
	}

	return &ScoreTable{width: m.Width, height: m.Height, scores: scores}
}

// slot returns the index of s, or -1 when s lies outside the table.
func (t *ScoreTable) slot(s State) int {
	c := s.Cell
	if c.X < 0 || c.X >= t.width || c.Y < 0 || c.Y >= t.height || !s.Heading.Valid() {
		return -1
	}

	return (c.Y*t.width+c.X)*len(maze.Headings) + int(s.Heading)
}

// Score returns the recorded cost of s and whether one exists.
func (t *ScoreTable) Score(s State) (int, bool) {
	i := t.slot(s)
	if i < 0 || t.scores[i] == unset {
		return 0, false
	}

	return t.scores[i], true
}

// set records cost for s, which must be in bounds.
func (t *ScoreTable) set(s State, cost int) {
	i := t.slot(s)
	if t.scores[i] == unset {
		t.n++
	}
	t.scores[i] = cost
}

// Headings returns the headings with a recorded score on c.
func (t *ScoreTable) Headings(c maze.Cell) []maze.Heading {
	var hs []maze.Heading
	for _, h := range maze.Headings {
		if _, ok := t.Score(State{c, h}); ok {
			hs = append(hs, h)
		}
	}

	return hs
}

// Best returns the lowest recorded score on c over all headings.
func (t *ScoreTable) Best(c maze.Cell) (int, bool) {
	best, found := 0, false
	for _, h := range maze.Headings {
		if s, ok := t.Score(State{c, h}); ok && (!found || s < best) {
			best, found = s, true
		}
	}

	return best, found
}

// Len returns the number of recorded states.
func (t *ScoreTable) Len() int { return t.n }

// Each calls fn for every recorded state in row-major cell order, then
// heading order.
func (t *ScoreTable) Each(fn func(s State, cost int)) {
	for i, v := range t.scores {
		if v == unset {
			continue
		}
		cell := i / len(maze.Headings)
		fn(State{
			Cell:    maze.Cell{X: cell % t.width, Y: cell / t.width},
			Heading: maze.Heading(i % len(maze.Headings)),
		}, v)
	}
}
