// Package pathset recovers every cell that lies on at least one cheapest
// route found by package search.
//
// The walk runs backwards over the score table rather than over the maze.
// It is seeded with every goal state whose score equals the minimum goal cost.
// From a state (c, h) with score s the only possible predecessor cell is one
// step behind c, against h. A recorded state (p, h') on that cell is a
// predecessor when
//
//	s == s' + MoveCost              and h' == h  (straight)
//	s == s' + MoveCost + TurnCost   and h' is a left or right turn of h
//
// which is exactly the forward transition rule inverted. Because the score
// table holds final shortest costs, the walk follows only edges of some
// cheapest route. States are visited at most once; cells are counted once no
// matter how many headings reach them.
//
// Complexity: O(S), S = 4·W·H, in time and memory.
package pathset
