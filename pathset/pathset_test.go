package pathset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/mazetest"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathset"
	"github.com/katalvlaran/mazepath/search"
)

// solve parses text and runs Search, failing the test on any error.
func solve(t *testing.T, text string, opts ...search.Option) (*maze.Maze, *search.Result) {
	t.Helper()
	m, err := maze.Parse(text)
	require.NoError(t, err)
	res, err := search.Search(m, opts...)
	require.NoError(t, err)

	return m, res
}

func TestCells_Samples(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"Corridor", mazetest.Corridor, mazetest.CorridorCells},
		{"Switchback", mazetest.Switchback, mazetest.SwitchbackCells},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, res := solve(t, tc.text)

			cells, err := pathset.Cells(res)
			require.NoError(t, err)
			assert.Len(t, cells, tc.want)

			n, err := pathset.Count(res)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)

			assert.Contains(t, cells, m.Start())
			assert.Contains(t, cells, m.Goal())
			for _, c := range cells {
				assert.True(t, m.IsOpen(c), "path cell %v is a wall", c)
				_, ok := res.Scores.Best(c)
				assert.True(t, ok, "path cell %v has no score", c)
			}
		})
	}
}

func TestCells_SortedRowMajor(t *testing.T) {
	_, res := solve(t, mazetest.Switchback)
	cells, err := pathset.Cells(res)
	require.NoError(t, err)
	for i := 1; i < len(cells); i++ {
		a, b := cells[i-1], cells[i]
		assert.True(t, a.Y < b.Y || (a.Y == b.Y && a.X < b.X), "%v before %v", a, b)
	}
}

func TestCells_SingleRoute(t *testing.T) {
	// Only the bottom row plus the right column needs a single turn.
	_, res := solve(t, mazetest.Open(6, 4))
	cells, err := pathset.Cells(res)
	require.NoError(t, err)

	want := []maze.Cell{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}
	assert.Equal(t, want, cells)
}

func TestCells_FreeTurnsCoverRoom(t *testing.T) {
	// Without a turn penalty every monotone staircase is optimal, so every
	// cell of the room lies on one.
	_, res := solve(t, mazetest.Open(5, 5), search.WithTurnCost(0))
	n, err := pathset.Count(res)
	require.NoError(t, err)
	assert.Equal(t, 25, n)
}

func TestCells_StartIsGoal(t *testing.T) {
	m, err := maze.New([][]bool{{true, true, true}}, maze.Cell{X: 1}, maze.Cell{X: 1})
	require.NoError(t, err)
	res, err := search.Search(m)
	require.NoError(t, err)

	cells, err := pathset.Cells(res)
	require.NoError(t, err)
	assert.Equal(t, []maze.Cell{{X: 1}}, cells)
}

func TestCells_TiedTurns(t *testing.T) {
	// Facing North the walker cannot reach the lower route at all; facing
	// East with free turns both routes around the pillar tie.
	text := `#####
#...#
#S#E#
#...#
#####`
	_, res := solve(t, text, search.WithInitialHeading(maze.North))
	cells, err := pathset.Cells(res)
	require.NoError(t, err)
	assert.Len(t, cells, 5, "north route only: S, 3 top cells, E")

	_, res = solve(t, text, search.WithInitialHeading(maze.East), search.WithTurnCost(0))
	n, err := pathset.Count(res)
	require.NoError(t, err)
	assert.Equal(t, 8, n, "both routes tie without a turn penalty")
}

func TestCells_Errors(t *testing.T) {
	_, err := pathset.Cells(nil)
	assert.ErrorIs(t, err, pathset.ErrNilResult)
	_, err = pathset.Count(&search.Result{})
	assert.ErrorIs(t, err, pathset.ErrNilResult)

	m, err := maze.Parse(mazetest.WalledOff)
	require.NoError(t, err)
	res, err := search.Search(m)
	require.ErrorIs(t, err, search.ErrNoPath)

	_, err = pathset.Cells(res)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestContains_Render(t *testing.T) {
	m, res := solve(t, mazetest.Corridor)
	cells, err := pathset.Cells(res)
	require.NoError(t, err)

	out := m.Render(pathset.Contains(cells), 'O')
	assert.Equal(t, mazetest.CorridorCells, strings.Count(out, "O"))
	assert.NotContains(t, out, "S")
	assert.NotContains(t, out, "E")
}
