// Package maze models a rectangular grid maze of walls and open cells with a
// single start and a single goal, plus the four cardinal headings used to move
// through it.
//
// What:
//
//   - Maze wraps an immutable row-major table of open/wall flags.
//   - Parse / Read build a Maze from text: '#' wall, '.' open, 'S' start,
//     'E' goal; any other character is open.
//   - Heading provides TurnLeft, TurnRight, Opposite and a bounds-checked Step.
//   - Reachable collects the open region around a cell (4-connected BFS).
//   - Render overlays marked cells on the maze text.
//
// Complexity:
//
//   - Parse, New:  O(W×H) time and memory.
//   - IsOpen:      O(1).
//   - Reachable:   O(W×H), Memory: O(W×H).
//   - Render:      O(W×H).
//
// Errors (all match ErrMalformedMaze via errors.Is):
//
//   - ErrEmptyMaze: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart / ErrMissingGoal: a required marker is absent.
//   - ErrBlockedMarker: a programmatic start or goal is a wall or out of bounds.
//
// If 'S' or 'E' appears more than once the last occurrence (row-major) wins.
// This is a known looseness rather than a guarantee.
package maze
