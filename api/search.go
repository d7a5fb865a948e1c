package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/session"
)

// SearchController serves one-shot searches that need no session.
type SearchController struct {
	limits Limits
}

// NewSearchController initializes a SearchController.
func NewSearchController(limits Limits) *SearchController {
	return &SearchController{limits: limits}
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/search", sc.search)
}

// search parses the grid, locates S and E, runs the algorithm and returns
// the route with the grid overlaid.
func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg := sc.limits.Algorithm
	if request.Algorithm != nil {
		alg = *request.Algorithm
	}

	g, err := grid.FromRows(request.Cells)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !sc.limits.fits(g.Rows(), g.Cols()) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("grid dimensions must not exceed %d x %d", sc.limits.MaxRows, sc.limits.MaxCols)})
		return
	}
	if g.Count(grid.Start) != 1 || g.Count(grid.End) != 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "grid must contain exactly one S and one E cell"})
		return
	}
	start, _ := g.Find(grid.Start)
	end, _ := g.Find(grid.End)
	g.ClearPath()

	rep := session.Report{Algorithm: alg}
	began := time.Now()
	path, err := pathfind.Search(alg, g, start, end,
		pathfind.WithContext(ctx.Request.Context()),
		pathfind.WithMaxExpansions(sc.limits.MaxExpansions),
		pathfind.WithOnVisit(func(grid.Coord, int) error {
			rep.Expanded++
			return nil
		}),
	)
	rep.Elapsed = time.Since(began)

	logger := ctxlog.FromContext(ctx.Request.Context()).With("algorithm", alg.String(), "expanded", rep.Expanded)
	switch {
	case errors.Is(err, pathfind.ErrNoPath):
		logger.Info("no path found")
	case err != nil:
		logger.Warn("search failed", "error", err)
		writeSearchError(ctx, err)
		return
	default:
		rep.Found = true
		rep.Path = path
		rep.Cost = pathfind.PathCost(path)
		g.Overlay(path)
		logger.Info("path found", "hops", path.Hops(), "cost", rep.Cost)
	}
	ctx.JSON(http.StatusOK, newSearchResponse(rep, g.Lines()))
}
