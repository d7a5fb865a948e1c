// Package console is the line-oriented terminal surface of gridpath.
//
// It asks for the grid dimensions with the classic prompt
//
//	Enter grid dimensions (rows cols):
//
// and then reads one command per line, driving a session.Session:
//
//	mode start|end|obstacle|none   select what click paints
//	click R C                      apply the current mode to (R,C)
//	start R C / end R C            place the start or the end
//	obstacle R C                   paint an obstacle
//	run [bfs|dfs|a_star]           search and draw the route
//	reset                          erase the drawn route
//	show                           print the grid
//	help                           list commands
//	exit / quit                    leave
//
// Input errors are reported on the output and never end the loop; only a
// closed input or an exit command does.
package console
