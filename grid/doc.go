// Package grid models a rectangular occupancy map whose cells carry typed
// markers, and exposes it as an implicit graph for pathfinding.
//
// What:
//
//   - Grid holds a rows×cols matrix of Marker values (Empty, Obstacle, Start, End, OnPath).
//   - IsTraversable reports whether a search may enter a cell (anything but Obstacle).
//   - Neighbors enumerates the up-to-8 cells at Chebyshev distance 1, clipped to bounds,
//     in a fixed order so that every search over an unchanged grid is reproducible.
//   - Overlay / ClearPath paint and erase a discovered route.
//
// Why:
//
//   - Searches only need bounds, traversability and a deterministic neighbor order.
//   - Surfaces (console, HTTP) own a Grid and mutate it between searches; the
//     pathfinding engine only reads it.
//
// Neighbor order (Conn8, the default):
//
//	up, down, left, right, up-left, up-right, down-left, down-right
//
// Conn4 keeps the first four offsets. No corner-cutting restriction is applied:
// a diagonal step is allowed even when both orthogonally adjacent cells are obstacles.
//
// Complexity:
//
//   - New, FromRows, Clone, ClearPath, String: O(R×C) time and memory.
//   - IsTraversable, At, Set, InBounds:         O(1).
//   - Neighbors:                                O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid:      rows or cols < 1.
//   - ErrNonRectangular: FromRows input rows have differing lengths.
//   - ErrUnknownMarker:  FromRows input contains an unknown rune.
//   - ErrOutOfBounds:    At or Set addressed a cell outside the grid.
package grid
