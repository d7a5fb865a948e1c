// Package api exposes gridpath over HTTP with gin.
//
// Routes are grouped under the configured base URL and a /v1 prefix:
//
//	POST   /sessions             create a session {rows, cols}
//	GET    /sessions/:id         session state
//	DELETE /sessions/:id         drop a session
//	PUT    /sessions/:id/mode    select the paint mode {mode}
//	POST   /sessions/:id/click   paint a cell {row, col}
//	POST   /sessions/:id/run     search {algorithm}
//	POST   /sessions/:id/reset   erase the drawn route
//	GET    /sessions/:id/image   PNG rendering, ?cell=<px>
//	POST   /search               stateless search over {algorithm, cells}
//
// Errors are JSON objects of the form {"error": "..."}: malformed input is
// 400, an unknown session 404, a refused paint or a run without start and
// end 409, and a search that hit the expansion cap 422. An unreachable end
// is not an error; the response carries "found": false.
//
// Every request gets a slog logger carrying a request id, stored in the
// request context with ctxlog so session runs log under the same id.
package api
