// Package session holds the state a user edits between searches: a grid,
// the start and end cells, and the current paint mode.
//
// A Session is the explicit owner of that state. Surfaces (the console and
// the HTTP API) translate user actions into SetMode, Click, ResetPath and Run
// calls; the pathfinding engine only ever sees a read-only snapshot of the grid.
//
// Painting rules
//
//   - ModeStart: the start cannot be placed on an obstacle or on the end;
//     moving it clears the previous start cell.
//   - ModeEnd: the end cannot be placed on an obstacle or on the start;
//     moving it clears the previous end cell.
//   - ModeObstacle: obstacles cannot be painted over the start or the end.
//   - ModeNone: clicks are ignored.
//
// Running
//
//	Run requires both start and end (ErrNotReady otherwise, meaning "search not
//	run"), clears the previous route, searches, and overlays a found route
//	without repainting the start or end. An unreachable end is reported as
//	Report.Found == false, not as an error.
//
// A Session is safe for concurrent use; calls are serialised.
package session
