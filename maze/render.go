package maze

import "strings"

// Render draws the maze as text, one line per row terminated by '\n'.
// Cells for which marked returns true are drawn with mark; otherwise walls,
// start, goal and open cells use their markers. A nil marked draws the plain
// maze.
func (m *Maze) Render(marked func(Cell) bool, mark rune) string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Cell{x, y}
			switch {
			case marked != nil && marked(c):
				b.WriteRune(mark)
			case !m.open[m.Index(c)]:
				b.WriteRune(WallMarker)
			case c == m.start:
				b.WriteRune(StartMarker)
			case c == m.goal:
				b.WriteRune(GoalMarker)
			default:
				b.WriteRune(OpenMarker)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
