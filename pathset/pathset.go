package pathset

import (
	"errors"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// ErrNilResult indicates that a nil *search.Result was passed in.
var ErrNilResult = errors.New("pathset: search result is nil")

// Cells returns every cell on some minimum-cost route of res, sorted
// row-major. It always contains res.Start and res.Goal.
// Returns ErrNilResult for a nil res and search.ErrNoPath when res found no
// route.
func Cells(res *search.Result) ([]maze.Cell, error) {
	marked, err := walk(res)
	if err != nil {
		return nil, err
	}
	cells := make([]maze.Cell, 0, marked.Size())
	marked.Each(func(c maze.Cell) {
		cells = append(cells, c)
	})
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	return cells, nil
}

// Count returns the number of distinct cells on some minimum-cost route.
func Count(res *search.Result) (int, error) {
	marked, err := walk(res)
	if err != nil {
		return 0, err
	}

	return marked.Size(), nil
}

// Contains returns a predicate reporting membership in cells, suitable for
// maze.Maze.Render.
func Contains(cells []maze.Cell) func(maze.Cell) bool {
	set := mapset.New[maze.Cell]()
	for _, c := range cells {
		set.Put(c)
	}

	return set.Has
}

// walk runs the backward breadth-first traversal and returns the marked cells.
func walk(res *search.Result) (mapset.Set[maze.Cell], error) {
	// 1) Validate the input result.
	if res == nil || res.Scores == nil {
		return mapset.Set[maze.Cell]{}, ErrNilResult
	}
	if !res.Found {
		return mapset.Set[maze.Cell]{}, search.ErrNoPath
	}

	scores := res.Scores
	marked := mapset.New[maze.Cell]()
	visited := mapset.New[search.State]()
	marked.Put(res.Goal)

	// 2) Seed the queue with every goal heading that achieves the minimum.
	var queue []search.State
	for _, h := range res.GoalHeadings() {
		s := search.State{Cell: res.Goal, Heading: h}
		visited.Put(s)
		queue = append(queue, s)
	}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		score, _ := scores.Score(cur)

		// 3) The only predecessor cell is one step behind cur, against its heading.
		back := cur.Heading.Opposite()
		prev, ok := back.Step(cur.Cell)
		// goal states are never expanded forward, so the goal is no predecessor
		if !ok || prev == res.Goal {
			continue
		}

		// 4) Test every recorded heading on prev against the forward cost rule.
		for _, h := range scores.Headings(prev) {
			// reversals are never generated forward
			if h == back {
				continue
			}
			ps := search.State{Cell: prev, Heading: h}
			pscore, _ := scores.Score(ps)
			want := pscore + res.MoveCost
			if h != cur.Heading {
				want += res.TurnCost
			}
			if score != want {
				continue
			}

			// 5) prev lies on a cheapest route: mark the cell, expand the state once.
			marked.Put(prev)
			if !visited.Has(ps) {
				visited.Put(ps)
				queue = append(queue, ps)
			}
		}
	}

	return marked, nil
}
