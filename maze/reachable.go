package maze

// Reachable returns every open cell 4-connected to from, including from
// itself, in BFS order. It returns nil when from is a wall or out of bounds.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Reachable(from Cell) []Cell {
	if !m.IsOpen(from) {
		return nil
	}
	seen := make([]bool, m.Len())
	seen[m.Index(from)] = true
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, h := range Headings {
			v, ok := h.Step(u)
			if !ok || !m.IsOpen(v) {
				continue
			}
			vi := m.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// Connected reports whether the goal lies in the open region around the start.
func (m *Maze) Connected() bool {
	for _, c := range m.Reachable(m.start) {
		if c == m.goal {
			return true
		}
	}

	return false
}
