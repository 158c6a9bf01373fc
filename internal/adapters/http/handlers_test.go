package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvt/sudoku-board/internal/generator"
	"github.com/minhvt/sudoku-board/internal/session"
	"github.com/minhvt/sudoku-board/internal/solver"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := generator.NewUniqueGenerator(solver.NewBacktracker())
	svc := session.New(gen, logger)
	mux := http.NewServeMux()
	New(svc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) (*http.Response, viewResp) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer res.Body.Close()
	var out viewResp
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res, out
}

func TestBoardBeforeNewGame(t *testing.T) {
	srv := newServer(t)
	res, err := http.Get(srv.URL + "/api/board")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNewGameAndMutate(t *testing.T) {
	srv := newServer(t)

	res, out := postJSON(t, srv.URL+"/api/new", map[string]any{"source": "example"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, out.View)
	assert.True(t, out.View.Consistent)

	// writing to a fixed cell is a conflict
	res, out = postJSON(t, srv.URL+"/api/set", map[string]any{"row": 0, "col": 0, "value": 9})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.NotEmpty(t, out.Error)

	// out of range is a bad request
	res, _ = postJSON(t, srv.URL+"/api/set", map[string]any{"row": 9, "col": 0, "value": 1})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// a legal write comes back with the refreshed view
	res, out = postJSON(t, srv.URL+"/api/set", map[string]any{"row": 1, "col": 3, "value": 7})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, out.View)
	assert.Equal(t, uint8(7), out.View.Cells[1][3].Value)
}

func TestAdjustDefaultsToForwardCycle(t *testing.T) {
	srv := newServer(t)
	_, _ = postJSON(t, srv.URL+"/api/new", map[string]any{"source": "example"})

	res, out := postJSON(t, srv.URL+"/api/adjust", map[string]any{"row": 1, "col": 3})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, out.View)
	assert.Equal(t, uint8(1), out.View.Cells[1][3].Value)
}

func TestNewGameWithExplicitGrid(t *testing.T) {
	srv := newServer(t)

	grid := [9][9]uint8{}
	grid[0][0] = 5
	res, out := postJSON(t, srv.URL+"/api/new", map[string]any{"grid": grid})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, out.View)
	assert.True(t, out.View.Cells[0][0].Fixed)

	// an inconsistent grid is rejected
	grid[0][5] = 5
	res, out = postJSON(t, srv.URL+"/api/new", map[string]any{"grid": grid})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.NotEmpty(t, out.Error)
}

func TestNewGameUnknownSource(t *testing.T) {
	srv := newServer(t)
	res, out := postJSON(t, srv.URL+"/api/new", map[string]any{"source": "foo"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.NotEmpty(t, out.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newServer(t)
	res, err := http.Get(srv.URL + "/api/set")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
