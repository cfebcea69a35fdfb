// Package search runs a uniform-cost (Dijkstra-style) search over the states
// of a maze, where a state is a cell together with the heading the walker
// faces on arrival.
//
// Overview:
//
//   - The walker starts on the maze start cell facing InitialHeading at cost 0.
//   - From a state it may continue straight, turn left, or turn right. Every
//     transition moves exactly one cell and costs MoveCost; a transition that
//     changes heading also costs TurnCost. Turning and moving are fused into a
//     single transition. Reversing is never generated.
//   - States on the goal cell are recorded but not expanded. The search runs
//     until the frontier is empty and reports the lowest goal score over all
//     headings.
//
// Score table:
//
//   - Every discovered state gets exactly one ScoreTable entry holding the
//     lowest cost seen for it. Entries are replaced only by a strictly lower
//     cost, so equal-cost rediscoveries are never re-queued.
//   - With non-negative integer costs the entry of a settled state is final.
//     The table is the sole input of the optimal-path-set walk in package
//     pathset.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H states, each with at most 3 successors.
//   - Space: O(S) for the score table plus O(S) worst-case heap entries under
//     lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilMaze          if the maze pointer is nil.
//   - ErrOptionViolation  if an option was given an invalid value.
//   - ErrNoPath           if the goal is unreachable. The populated Result is
//     still returned alongside this error with Found == false.
//
// Example usage:
//
//	res, err := search.Search(m, search.WithTurnCost(1000))
//	if errors.Is(err, search.ErrNoPath) {
//	    // unreachable: res.Scores still describes the explored region
//	}
package search
