// Package gridpath finds routes across 2-D occupancy grids with
// breadth-first search, depth-first search and A*.
//
// 🚀 What is gridpath?
//
//	A small pathfinding toolkit built around one engine:
//		• grid/          grid model, markers, 8-way neighbors, route overlay
//		• pathfind/      BFS, DFS and A* (Chebyshev heuristic, diagonal cost 1.414)
//		• session/       start, end and paint mode kept between searches
//		• api/           HTTP surface (gin) with UUID-keyed sessions and one-shot search
//		• config/        environment and .env configuration
//		• cmd/gridpath/  console front end and the serve subcommand
//
// ✨ Guarantees
//
//   - Searches never mutate the grid they are given.
//   - An unreachable end is pathfind.ErrNoPath, never an empty path.
//   - Identical inputs give identical routes; tie-breaking is fixed.
//
// Quick ASCII example:
//
//	S . X        S . X
//	. . X   →    . - X
//	. . E        . . E    (A*, cost 2.828)
//
//	go run ./cmd/gridpath
package gridpath
