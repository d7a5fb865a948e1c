package api

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/session"
)

// Limits bounds what clients may ask for.
type Limits struct {
	MaxRows       int                // 0 for no cap
	MaxCols       int                // 0 for no cap
	MaxExpansions int                // per-search cap, 0 for none
	Algorithm     pathfind.Algorithm // used when a request names none
}

func (l Limits) fits(rows, cols int) bool {
	return (l.MaxRows <= 0 || rows <= l.MaxRows) && (l.MaxCols <= 0 || cols <= l.MaxCols)
}

// CreateSessionRequest creates an empty grid.
type CreateSessionRequest struct {
	Rows int `json:"rows" binding:"required,min=1"`
	Cols int `json:"cols" binding:"required,min=1"`
}

// ModeRequest selects the paint mode.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// ClickRequest paints one cell with the current mode.
type ClickRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// RunRequest starts a search; an absent algorithm falls back to Limits.Algorithm.
type RunRequest struct {
	Algorithm *pathfind.Algorithm `json:"algorithm"`
}

// SearchRequest is a one-shot search over a grid given as marker rows,
// for example ["S.X", "..X", "..E"].
type SearchRequest struct {
	Algorithm *pathfind.Algorithm `json:"algorithm"`
	Cells     []string            `json:"cells" binding:"required,min=1"`
}

// CoordDTO is a cell position.
type CoordDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func toCoordDTO(c grid.Coord) CoordDTO {
	return CoordDTO{Row: c.Row, Col: c.Col}
}

func toPathDTO(p grid.Path) []CoordDTO {
	out := make([]CoordDTO, len(p))
	for i, c := range p {
		out[i] = toCoordDTO(c)
	}
	return out
}

// SessionResponse is the full state of a session.
type SessionResponse struct {
	ID    uuid.UUID `json:"id"`
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
	Mode  string    `json:"mode"`
	Cells []string  `json:"cells"`
	Start *CoordDTO `json:"start,omitempty"`
	End   *CoordDTO `json:"end,omitempty"`
}

func newSessionResponse(id uuid.UUID, s *session.Session) SessionResponse {
	g := s.Grid()
	resp := SessionResponse{
		ID:    id,
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Mode:  s.Mode().String(),
		Cells: g.Lines(),
	}
	if c, ok := s.Start(); ok {
		dto := toCoordDTO(c)
		resp.Start = &dto
	}
	if c, ok := s.End(); ok {
		dto := toCoordDTO(c)
		resp.End = &dto
	}
	return resp
}

// SearchResponse reports a search outcome.
type SearchResponse struct {
	Algorithm       string     `json:"algorithm"`
	Found           bool       `json:"found"`
	Path            []CoordDTO `json:"path"`
	Cost            float64    `json:"cost"`
	NodesExpanded   int        `json:"nodesExpanded"`
	ExecutionTimeMs float64    `json:"executionTimeMs"`
	Cells           []string   `json:"cells,omitempty"`
}

func newSearchResponse(rep session.Report, cells []string) SearchResponse {
	resp := SearchResponse{
		Algorithm:       rep.Algorithm.String(),
		Found:           rep.Found,
		Path:            []CoordDTO{},
		Cost:            rep.Cost,
		NodesExpanded:   rep.Expanded,
		ExecutionTimeMs: float64(rep.Elapsed.Microseconds()) / 1000.0,
		Cells:           cells,
	}
	if rep.Found {
		resp.Path = toPathDTO(rep.Path)
	}
	return resp
}
