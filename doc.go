// Package mazepath finds the cheapest route through a grid maze in which
// moving costs one amount and turning costs another, and recovers every cell
// that lies on any cheapest route.
//
// The module is organized in three packages that run in sequence:
//
//	maze/    — immutable grid model: Cell, Heading, Parse, IsOpen, Reachable, Render
//	search/  — uniform-cost search over (cell, heading) states → Result + ScoreTable
//	pathset/ — backward walk over the ScoreTable → cells on some cheapest route
//
// and a command, cmd/reindeer, that wires them together for maze files.
//
// Quick ASCII example (move cost 1, turn cost 1000, start facing East):
//
//	#####
//	#..E#     cheapest cost: 1004
//	#.#.#     east, east, turn north, north
//	#S..#
//	#####
//
//	go get github.com/katalvlaran/mazepath
package mazepath
