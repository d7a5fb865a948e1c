package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/session"
)

// SessionController serves the stateful session routes.
type SessionController struct {
	store  *Store
	limits Limits
}

// NewSessionController initializes a SessionController over store.
func NewSessionController(store *Store, limits Limits) *SessionController {
	return &SessionController{store: store, limits: limits}
}

// RegisterPublic registers public routes.
func (sc *SessionController) RegisterPublic(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.POST("", sc.create)
		sessions.GET("/:id", sc.get)
		sessions.DELETE("/:id", sc.remove)
		sessions.PUT("/:id/mode", sc.setMode)
		sessions.POST("/:id/click", sc.click)
		sessions.POST("/:id/run", sc.run)
		sessions.POST("/:id/reset", sc.reset)
		sessions.GET("/:id/image", sc.image)
	}
}

// create handles session creation.
func (sc *SessionController) create(ctx *gin.Context) {
	var request CreateSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !sc.limits.fits(request.Rows, request.Cols) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("grid dimensions must not exceed %d x %d", sc.limits.MaxRows, sc.limits.MaxCols)})
		return
	}

	s, err := session.New(request.Rows, request.Cols, session.WithMaxExpansions(sc.limits.MaxExpansions))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := sc.store.Add(s)
	ctxlog.FromContext(ctx.Request.Context()).Info("session created", "session_id", id.String(), "rows", request.Rows, "cols", request.Cols)
	ctx.JSON(http.StatusCreated, newSessionResponse(id, s))
}

// get returns the session state.
func (sc *SessionController) get(ctx *gin.Context) {
	id, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newSessionResponse(id, s))
}

// remove drops a session.
func (sc *SessionController) remove(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if !sc.store.Delete(id) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// setMode selects what subsequent clicks paint.
func (sc *SessionController) setMode(ctx *gin.Context) {
	_, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var request ModeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := session.ParseMode(request.Mode)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.SetMode(m)
	ctx.Status(http.StatusNoContent)
}

// click paints one cell.
func (sc *SessionController) click(ctx *gin.Context) {
	id, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var request ClickRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch err := s.Click(grid.Coord{Row: *request.Row, Col: *request.Col}); {
	case errors.Is(err, grid.ErrOutOfBounds):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrRejected):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusOK, newSessionResponse(id, s))
	}
}

// run searches and overlays the route.
func (sc *SessionController) run(ctx *gin.Context) {
	id, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	alg, ok := bindAlgorithm(ctx, sc.limits.Algorithm)
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	reqCtx = ctxlog.WithLogger(reqCtx, ctxlog.FromContext(reqCtx).With("session_id", id.String()))
	rep, err := s.Run(reqCtx, alg)
	if err != nil {
		writeSearchError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSearchResponse(rep, s.Grid().Lines()))
}

// reset erases the drawn route.
func (sc *SessionController) reset(ctx *gin.Context) {
	id, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	s.ResetPath()
	ctx.JSON(http.StatusOK, newSessionResponse(id, s))
}

// image renders the grid as PNG; ?cell= sets the cell size in pixels.
func (sc *SessionController) image(ctx *gin.Context) {
	_, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	cellSize := render.DefaultCellSize
	if v := ctx.Query("cell"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "cell must be an integer"})
			return
		}
		cellSize = n
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, s.Grid(), cellSize); err != nil {
		if errors.Is(err, render.ErrInvalidCellSize) || errors.Is(err, render.ErrTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (sc *SessionController) lookup(ctx *gin.Context) (uuid.UUID, *session.Session, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return uuid.Nil, nil, false
	}
	s, found := sc.store.Get(id)
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return uuid.Nil, nil, false
	}
	return id, s, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// bindAlgorithm reads an optional RunRequest body.
func bindAlgorithm(ctx *gin.Context, fallback pathfind.Algorithm) (pathfind.Algorithm, bool) {
	if ctx.Request.ContentLength == 0 {
		return fallback, true
	}
	var request RunRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	if request.Algorithm == nil {
		return fallback, true
	}
	return *request.Algorithm, true
}

func writeSearchError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotReady):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, pathfind.ErrExpansionLimit):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, pathfind.ErrStartOutOfBounds), errors.Is(err, pathfind.ErrEndOutOfBounds),
		errors.Is(err, pathfind.ErrUnknownAlgorithm):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
