// Package mazetest holds maze fixtures shared by the package tests.
package mazetest

// Corridor is a sample maze whose cheapest route costs 7036 with 45 cells on
// some cheapest route (move cost 1, turn cost 1000, start facing East).
const Corridor = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

// Expected results for Corridor.
const (
	CorridorCost  = 7036
	CorridorCells = 45
)

// Switchback is a second sample maze: cost 11048, 64 cells.
const Switchback = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

// Expected results for Switchback.
const (
	SwitchbackCost  = 11048
	SwitchbackCells = 64
)

// WalledOff has no route from S to E.
const WalledOff = `#######
#S#...#
###.#E#
#.....#
#######`

// Open builds a w×h maze with no inner walls, S in the bottom-left corner
// and E in the top-right corner.
func Open(w, h int) string {
	b := make([]byte, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case x == 0 && y == h-1:
				b = append(b, 'S')
			case x == w-1 && y == 0:
				b = append(b, 'E')
			default:
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}

	return string(b)
}
