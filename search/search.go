package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/maze"
)

// Search computes the minimum cost of walking from m.Start() to m.Goal(),
// arriving in any heading, and records the best cost of every discovered state.
//
// Preconditions and validation (in order):
//  1. Every option must be valid (ErrOptionViolation).
//  2. m must be non-nil (ErrNilMaze).
//  3. MoveCost+TurnCost times the number of states must fit in an int, so no
//     route cost can overflow (ErrOptionViolation).
//
// When the goal is never reached Search returns the populated Result together
// with ErrNoPath; Result.Found is false in that case.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H
//   - Space: O(S)
func Search(m *maze.Maze, opts ...Option) (*Result, error) {
	// 1) Build options and surface the first invalid one.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the maze is non-nil.
	if m == nil {
		return nil, ErrNilMaze
	}

	// 3) A cheapest route settles each state at most once, so its cost is
	//    bounded by S·(MoveCost+TurnCost). Reject costs that could overflow.
	states := m.Len() * len(maze.Headings)
	limit := math.MaxInt / states
	if cfg.MoveCost > limit || cfg.TurnCost > limit-cfg.MoveCost {
		return nil, fmt.Errorf("%w: MoveCost+TurnCost (%d+%d) exceeds %d for %d states",
			ErrOptionViolation, cfg.MoveCost, cfg.TurnCost, limit, states)
	}

	// 4) Prepare the runner: empty score table, settled flags and the heap.
	r := &runner{
		m:       m,
		options: cfg,
		scores:  newScoreTable(m),
		settled: make([]bool, states),
		pq:      make(statePQ, 0, m.Len()),
	}

	// 5) Seed the start state and drain the frontier.
	r.init()
	r.process()

	// 6) Package the outcome. The score table is returned even without a path.
	res := &Result{
		Cost:     r.best,
		Found:    r.found,
		Start:    m.Start(),
		Goal:     m.Goal(),
		MoveCost: cfg.MoveCost,
		TurnCost: cfg.TurnCost,
		Scores:   r.scores,
	}
	if !r.found {
		return res, ErrNoPath
	}

	return res, nil
}

// runner holds the mutable state of a single Search execution.
type runner struct {
	m       *maze.Maze  // read-only
	options Options     // validated configuration
	scores  *ScoreTable // best cost per state
	settled []bool      // indexed like scores.scores
	pq      statePQ     // lazy min-heap
	best    int         // lowest goal cost so far
	found   bool        // whether any goal state was popped
	seq     uint64      // push counter for stable ordering
}

// init records the start state at cost 0 and queues it.
func (r *runner) init() {
	s := State{Cell: r.m.Start(), Heading: r.options.InitialHeading}
	r.scores.set(s, 0)
	heap.Init(&r.pq)
	r.push(s, 0)
}

// process pops states in cost order until the frontier is empty. Stale heap
// entries (a cheaper cost was recorded after the push) are skipped.
func (r *runner) process() {
	goal := r.m.Goal()
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest queued state.
		item := heap.Pop(&r.pq).(*stateItem)
		i := r.scores.slot(item.state)

		// 2) Skip entries that were already settled or superseded by a cheaper push.
		if r.settled[i] || item.cost != r.scores.scores[i] {
			continue
		}

		// 3) The cost is now final.
		r.settled[i] = true
		r.options.OnSettle(item.state, item.cost)

		// 4) Goal states only update the best cost; they are not expanded.
		if item.state.Cell == goal {
			if !r.found || item.cost < r.best {
				r.best, r.found = item.cost, true
			}
			continue
		}

		// 5) Otherwise queue its successors.
		r.relax(item.state, item.cost)
	}
}

// relax generates the straight, left and right successors of s.
func (r *runner) relax(s State, cost int) {
	h := s.Heading
	for _, next := range [3]maze.Heading{h, h.TurnLeft(), h.TurnRight()} {
		// 1) Target cell must exist and be open.
		cell, ok := next.Step(s.Cell)
		if !ok || !r.m.IsOpen(cell) {
			continue
		}

		// 2) One move, plus a turn when the heading changes.
		newCost := cost + r.options.MoveCost
		if next != h {
			newCost += r.options.TurnCost
		}

		// 3) Strictly lower only: equal-cost rediscoveries are not queued again.
		ns := State{Cell: cell, Heading: next}
		if old, ok := r.scores.Score(ns); ok && newCost >= old {
			continue
		}

		// 4) Record and push (lazy decrease-key).
		r.scores.set(ns, newCost)
		r.push(ns, newCost)
	}
}

func (r *runner) push(s State, cost int) {
	heap.Push(&r.pq, &stateItem{state: s, cost: cost, seq: r.seq})
	r.seq++
}

// stateItem is a queued state with the cost it was pushed at.
type stateItem struct {
	state State
	cost  int
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by cost, then push order, so
// equal-cost states pop deterministically.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
