package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"image/png"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/pathfind"
)

func newHandler(t *testing.T, limits api.Limits) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := api.NewStore()
	router := api.NewRouter(api.Config{
		BaseURL: "/api",
		Controllers: []api.Controller{
			api.NewSessionController(store, limits),
			api.NewSearchController(limits),
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return router.Handler()
}

func defaultLimits() api.Limits {
	return api.Limits{MaxRows: 50, MaxCols: 50, Algorithm: pathfind.AStarAlgorithm}
}

func do(t *testing.T, h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createSession(t *testing.T, h http.Handler, rows, cols int) string {
	t.Helper()
	body, err := json.Marshal(map[string]int{"rows": rows, "cols": cols})
	require.NoError(t, err)
	rec := do(t, h, http.MethodPost, "/api/v1/sessions", string(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.SessionResponse](t, rec).ID.String()
}

func paint(t *testing.T, h http.Handler, id, mode string, row, col int) {
	t.Helper()
	rec := do(t, h, http.MethodPut, "/api/v1/sessions/"+id+"/mode", `{"mode":"`+mode+`"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	body, err := json.Marshal(map[string]int{"row": row, "col": col})
	require.NoError(t, err)
	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/click", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSessionLifecycle(t *testing.T) {
	h := newHandler(t, defaultLimits())
	id := createSession(t, h, 3, 3)
	paint(t, h, id, "start", 0, 0)
	paint(t, h, id, "end", 2, 2)

	rec := do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/run", `{"algorithm":"bfs"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[api.SearchResponse](t, rec)
	assert.True(t, res.Found)
	assert.Equal(t, "bfs", res.Algorithm)
	assert.Equal(t, []api.CoordDTO{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, res.Path)
	assert.InDelta(t, 2.828, res.Cost, 1e-9)
	assert.Positive(t, res.NodesExpanded)
	assert.Equal(t, []string{"S..", ".-.", "..E"}, res.Cells)

	rec = do(t, h, http.MethodGet, "/api/v1/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[api.SessionResponse](t, rec)
	assert.Equal(t, 3, state.Rows)
	assert.Equal(t, "end", state.Mode)
	require.NotNil(t, state.Start)
	require.NotNil(t, state.End)
	assert.Equal(t, api.CoordDTO{Row: 2, Col: 2}, *state.End)

	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"S..", "...", "..E"}, decode[api.SessionResponse](t, rec).Cells)

	rec = do(t, h, http.MethodDelete, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSession_Invalid(t *testing.T) {
	h := newHandler(t, defaultLimits())
	cases := map[string]string{
		"zero rows":    `{"rows":0,"cols":3}`,
		"missing cols": `{"rows":3}`,
		"over cap":     `{"rows":51,"cols":3}`,
		"bad json":     `{"rows":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/sessions", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestSessionID_MalformedAndUnknown(t *testing.T) {
	h := newHandler(t, defaultLimits())
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/sessions/not-a-uuid", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/run", "").Code)
}

func TestMode_Unknown(t *testing.T) {
	h := newHandler(t, defaultLimits())
	id := createSession(t, h, 2, 2)
	rec := do(t, h, http.MethodPut, "/api/v1/sessions/"+id+"/mode", `{"mode":"lava"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClick_Errors(t *testing.T) {
	h := newHandler(t, defaultLimits())
	id := createSession(t, h, 2, 2)
	paint(t, h, id, "start", 0, 0)

	rec := do(t, h, http.MethodPut, "/api/v1/sessions/"+id+"/mode", `{"mode":"obstacle"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/click", `{"row":0,"col":0}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/click", `{"row":7,"col":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/click", `{"row":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRun_Errors(t *testing.T) {
	limits := defaultLimits()
	limits.MaxExpansions = 1
	h := newHandler(t, limits)
	id := createSession(t, h, 5, 5)

	rec := do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/run", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "run without start and end")

	paint(t, h, id, "start", 0, 0)
	paint(t, h, id, "end", 4, 4)

	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/run", `{"algorithm":"dijkstra"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/run", `{"algorithm":"bfs"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRun_DefaultAlgorithm(t *testing.T) {
	limits := defaultLimits()
	limits.Algorithm = pathfind.DFSAlgorithm
	h := newHandler(t, limits)
	id := createSession(t, h, 1, 3)
	paint(t, h, id, "start", 0, 0)
	paint(t, h, id, "end", 0, 2)

	rec := do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/run", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[api.SearchResponse](t, rec)
	assert.Equal(t, "dfs", res.Algorithm)
	assert.Equal(t, []string{"S-E"}, res.Cells)
}

func TestSearch_AStarAroundWall(t *testing.T) {
	h := newHandler(t, defaultLimits())
	body := `{"algorithm":"a_star","cells":["S.X..","..X..","..X.E","..X..","....."]}`

	rec := do(t, h, http.MethodPost, "/api/v1/search", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[api.SearchResponse](t, rec)
	assert.True(t, res.Found)
	assert.Equal(t, []api.CoordDTO{
		{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1},
		{Row: 4, Col: 2}, {Row: 3, Col: 3}, {Row: 2, Col: 4},
	}, res.Path)
	assert.InDelta(t, 7.656, res.Cost, 1e-9)
	assert.Equal(t, "S.X..", res.Cells[0])
	assert.Equal(t, ".-X..", res.Cells[1])
}

func TestSearch_FullResponse(t *testing.T) {
	h := newHandler(t, defaultLimits())
	rec := do(t, h, http.MethodPost, "/api/v1/search", `{"algorithm":"dfs","cells":["S..","...","..E"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	want := api.SearchResponse{
		Algorithm: "dfs",
		Found:     true,
		Path:      []api.CoordDTO{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		Cost:      2.828,
		Cells:     []string{"S..", ".-.", "..E"},
	}
	got := decode[api.SearchResponse](t, rec)
	opts := cmp.Options{
		cmpopts.IgnoreFields(api.SearchResponse{}, "NodesExpanded", "ExecutionTimeMs"),
		cmpopts.EquateApprox(0, 1e-9),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("search response mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_NoPath(t *testing.T) {
	h := newHandler(t, defaultLimits())
	rec := do(t, h, http.MethodPost, "/api/v1/search", `{"algorithm":"bfs","cells":["S.X","XXX","..E"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[api.SearchResponse](t, rec)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}

func TestSearch_BadInput(t *testing.T) {
	h := newHandler(t, defaultLimits())
	cases := map[string]string{
		"no cells":        `{"cells":[]}`,
		"missing end":     `{"cells":["S.."]}`,
		"two starts":      `{"cells":["S.S","..E"]}`,
		"ragged":          `{"cells":["S..","E"]}`,
		"unknown marker":  `{"cells":["S?E"]}`,
		"unknown algo":    `{"algorithm":"greedy","cells":["S.E"]}`,
		"algo not string": `{"algorithm":3,"cells":["S.E"]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/search", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestRequestID(t *testing.T) {
	h := newHandler(t, defaultLimits())

	rec := do(t, h, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), "")
	_, err := uuid.Parse(rec.Header().Get(api.RequestIDHeader))
	assert.NoError(t, err)

	want := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), nil)
	req.Header.Set(api.RequestIDHeader, want)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, want, rec.Header().Get(api.RequestIDHeader))
}

func TestSessionImage(t *testing.T) {
	h := newHandler(t, defaultLimits())
	id := createSession(t, h, 2, 3)
	paint(t, h, id, "start", 0, 0)

	rec := do(t, h, http.MethodGet, "/api/v1/sessions/"+id+"/image?cell=10", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/sessions/"+id+"/image?cell=big", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/sessions/"+id+"/image?cell=1", "").Code)
}
