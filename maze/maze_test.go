package maze_test

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/mazetest"
	"github.com/katalvlaran/mazepath/maze"
)

//----------------------------------------------------------------------------//
// Parse / New
//----------------------------------------------------------------------------//

func TestParse_Sample(t *testing.T) {
	m, err := maze.Parse(mazetest.Corridor)
	require.NoError(t, err)

	assert.Equal(t, 15, m.Width)
	assert.Equal(t, 15, m.Height)
	assert.Equal(t, maze.Cell{X: 1, Y: 13}, m.Start())
	assert.Equal(t, maze.Cell{X: 13, Y: 1}, m.Goal())
	assert.Equal(t, 15*15, m.Len())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyMaze},
		{"OnlyBlankLines", "\n\n", maze.ErrEmptyMaze},
		{"NonRectangular", "#S#\n#E\n", maze.ErrNonRectangular},
		{"MissingStart", "#..E#\n", maze.ErrMissingStart},
		{"MissingGoal", "#S..#\n", maze.ErrMissingGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
			assert.True(t, errors.Is(err, maze.ErrMalformedMaze), "%v must be a malformed-maze error", err)
		})
	}
}

func TestParse_CRLFAndTrailingLines(t *testing.T) {
	m, err := maze.Parse("#####\r\n#S.E#\r\n#####\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, 5, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.True(t, m.IsOpen(maze.Cell{X: 2, Y: 1}))
}

func TestParse_DuplicateMarkersLastWins(t *testing.T) {
	m, err := maze.Parse("S.S\nE.E\n")
	require.NoError(t, err)
	assert.Equal(t, maze.Cell{X: 2, Y: 0}, m.Start())
	assert.Equal(t, maze.Cell{X: 2, Y: 1}, m.Goal())
}

func TestParse_UnknownCharactersAreOpen(t *testing.T) {
	m, err := maze.Parse("#S~E#\n")
	require.NoError(t, err)
	assert.True(t, m.IsOpen(maze.Cell{X: 2, Y: 0}))
	assert.False(t, m.IsOpen(maze.Cell{X: 0, Y: 0}))
}

func TestRead_RowTooLong(t *testing.T) {
	row := "S" + strings.Repeat(".", maze.MaxLineBytes) + "E\n"
	_, err := maze.Read(strings.NewReader(row))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.False(t, errors.Is(err, maze.ErrMalformedMaze), "a read failure is not a maze shape error")

	m, err := maze.Read(strings.NewReader("S" + strings.Repeat(".", 1000) + "E\n"))
	require.NoError(t, err)
	assert.Equal(t, 1002, m.Width)
}

func TestNew_Errors(t *testing.T) {
	open := [][]bool{{true, false}, {true, true}}
	cases := []struct {
		name        string
		grid        [][]bool
		start, goal maze.Cell
		err         error
	}{
		{"EmptyRows", nil, maze.Cell{}, maze.Cell{}, maze.ErrEmptyMaze},
		{"EmptyCols", [][]bool{{}}, maze.Cell{}, maze.Cell{}, maze.ErrEmptyMaze},
		{"NonRectangular", [][]bool{{true, true}, {true}}, maze.Cell{}, maze.Cell{}, maze.ErrNonRectangular},
		{"StartOnWall", open, maze.Cell{X: 1, Y: 0}, maze.Cell{X: 1, Y: 1}, maze.ErrBlockedMarker},
		{"GoalOutOfBounds", open, maze.Cell{}, maze.Cell{X: 2, Y: 1}, maze.ErrBlockedMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.grid, tc.start, tc.goal)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	open := [][]bool{{true, true, true}}
	m, err := maze.New(open, maze.Cell{X: 0}, maze.Cell{X: 2})
	require.NoError(t, err)

	open[0][1] = false
	assert.True(t, m.IsOpen(maze.Cell{X: 1}), "mutating the input must not change the maze")
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestIsOpen_Bounds(t *testing.T) {
	m, err := maze.Parse("S.#\n.#E\n")
	require.NoError(t, err)

	open := []maze.Cell{{0, 0}, {1, 0}, {0, 1}, {2, 1}}
	for _, c := range open {
		assert.True(t, m.IsOpen(c), "IsOpen%v", c)
	}
	closed := []maze.Cell{{2, 0}, {1, 1}, {-1, 0}, {3, 0}, {0, 2}, {0, -1}}
	for _, c := range closed {
		assert.False(t, m.IsOpen(c), "IsOpen%v", c)
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	m, err := maze.Parse(mazetest.Switchback)
	require.NoError(t, err)
	for i := 0; i < m.Len(); i++ {
		require.Equal(t, i, m.Index(m.Coordinate(i)))
	}
}

func TestReachable(t *testing.T) {
	m, err := maze.Parse(mazetest.WalledOff)
	require.NoError(t, err)

	region := m.Reachable(m.Start())
	assert.Equal(t, []maze.Cell{m.Start()}, region)
	assert.False(t, m.Connected())
	assert.Nil(t, m.Reachable(maze.Cell{}), "wall cell has no region")

	goalRegion := m.Reachable(m.Goal())
	assert.Len(t, goalRegion, 10)
}

func TestConnected_Samples(t *testing.T) {
	for _, text := range []string{mazetest.Corridor, mazetest.Switchback} {
		m, err := maze.Parse(text)
		require.NoError(t, err)
		assert.True(t, m.Connected())
	}
}

func TestRender(t *testing.T) {
	text := "#####\n#S.E#\n#####\n"
	m, err := maze.Parse(text)
	require.NoError(t, err)

	assert.Equal(t, text, m.Render(nil, 'O'))

	got := m.Render(func(c maze.Cell) bool { return c.Y == 1 && c.X >= 1 && c.X <= 3 }, 'O')
	assert.Equal(t, "#####\n#OOO#\n#####\n", got)
	assert.Equal(t, 3, strings.Count(got, "O"))
}
