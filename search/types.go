package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors returned by Search.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed to Search.
	ErrNilMaze = errors.New("search: maze is nil")

	// ErrOptionViolation indicates that an Option received an invalid value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoPath indicates that no state on the goal cell was reached.
	ErrNoPath = errors.New("search: goal is unreachable from start")
)

// Default costs and heading.
const (
	DefaultMoveCost       = 1
	DefaultTurnCost       = 1000
	DefaultInitialHeading = maze.East
)

// State is the unit of search: a cell and the heading faced on it.
type State struct {
	Cell    maze.Cell
	Heading maze.Heading
}

// String formats the state as "(x,y)/Heading".
func (s State) String() string {
	return fmt.Sprintf("%v/%v", s.Cell, s.Heading)
}

// Options configures Search.
//
// MoveCost       – cost of every one-cell transition. Must be ≥ 0.
// TurnCost       – extra cost when a transition changes heading. Must be ≥ 0.
// InitialHeading – heading of the walker on the start cell.
// OnSettle       – called once per state when it is popped with its final cost.
type Options struct {
	MoveCost       int
	TurnCost       int
	InitialHeading maze.Heading
	OnSettle       func(s State, cost int)

	// first invalid option, surfaced by Search
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the options used when none are given:
//   - MoveCost:       1
//   - TurnCost:       1000
//   - InitialHeading: East
//   - OnSettle:       no-op
func DefaultOptions() Options {
	return Options{
		MoveCost:       DefaultMoveCost,
		TurnCost:       DefaultTurnCost,
		InitialHeading: DefaultInitialHeading,
		OnSettle:       func(State, int) {},
	}
}

// WithMoveCost sets the per-transition cost. Negative values are rejected
// with ErrOptionViolation.
func WithMoveCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail(fmt.Errorf("%w: MoveCost cannot be negative (%d)", ErrOptionViolation, c))
			return
		}
		o.MoveCost = c
	}
}

// WithTurnCost sets the extra cost of a heading change. Negative values are
// rejected with ErrOptionViolation.
func WithTurnCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail(fmt.Errorf("%w: TurnCost cannot be negative (%d)", ErrOptionViolation, c))
			return
		}
		o.TurnCost = c
	}
}

// WithInitialHeading sets the heading faced on the start cell.
func WithInitialHeading(h maze.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.fail(fmt.Errorf("%w: unknown heading %d", ErrOptionViolation, int(h)))
			return
		}
		o.InitialHeading = h
	}
}

// WithOnSettle registers a callback run when a state's cost becomes final.
// Settled costs arrive in non-decreasing order.
func WithOnSettle(fn func(s State, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result is the outcome of Search.
//
// Cost is the minimum score over all goal headings and is meaningful only when
// Found is true. Scores holds the best cost of every discovered state.
type Result struct {
	Cost        int
	Found       bool
	Start, Goal maze.Cell
	MoveCost    int
	TurnCost    int
	Scores      *ScoreTable
}

// GoalHeadings returns the headings on the goal cell whose score equals Cost,
// in North, East, South, West order. It is empty when no path was found.
func (r *Result) GoalHeadings() []maze.Heading {
	if !r.Found {
		return nil
	}
	var hs []maze.Heading
	for _, h := range r.Scores.Headings(r.Goal) {
		if s, _ := r.Scores.Score(State{r.Goal, h}); s == r.Cost {
			hs = append(hs, h)
		}
	}

	return hs
}
