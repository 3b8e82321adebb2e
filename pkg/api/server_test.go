package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stopboard/pkg/ctdf"
	"github.com/travigo/stopboard/pkg/demo"
)

type staticBoards struct {
	board *ctdf.Board
	ok    bool
}

func (s *staticBoards) Board(ctx context.Context) (*ctdf.Board, bool) {
	return s.board, s.ok
}

func (s *staticBoards) Status() string {
	return "fresh"
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func TestDepartures(t *testing.T) {
	app := NewApp(&staticBoards{
		board: &ctdf.Board{
			Departures: []ctdf.Departure{{Line: "11", Destination: "Siegel"}},
			FetchedAt:  time.UnixMilli(1705325400000),
		},
		ok: true,
	}, "")

	resp, body := get(t, app, "/api/departures")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	var board ctdf.Board
	require.NoError(t, json.Unmarshal(body, &board))
	require.Len(t, board.Departures, 1)
	assert.Equal(t, "11", board.Departures[0].Line)
	assert.Equal(t, int64(1705325400000), board.FetchedAt.UnixMilli())
	assert.Equal(t, "", board.Error)
}

func TestDeparturesUnavailable(t *testing.T) {
	app := NewApp(&staticBoards{
		board: &ctdf.Board{Departures: []ctdf.Departure{}, FetchedAt: time.UnixMilli(1), Error: "API unreachable: HTTP 503"},
	}, "")

	resp, body := get(t, app, "/api/departures")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.JSONEq(t, `{"departures":[],"fetchedAt":1,"error":"API unreachable: HTTP 503"}`, string(body))
}

func TestDeparturesDemo(t *testing.T) {
	app := NewApp(&demo.Source{}, "")

	resp, body := get(t, app, "/api/departures")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var board ctdf.Board
	require.NoError(t, json.Unmarshal(body, &board))
	assert.Len(t, board.Departures, 15)
}

func TestHealthAndVersion(t *testing.T) {
	app := NewApp(&staticBoards{board: &ctdf.Board{}, ok: true}, "")

	resp, body := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","cache":"fresh"}`, string(body))

	resp, body = get(t, app, "/version")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"version":"v1.0"}`, string(body))
}

func TestMetrics(t *testing.T) {
	app := NewApp(&staticBoards{board: &ctdf.Board{}, ok: true}, "")

	resp, body := get(t, app, "/metrics")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "stopboard_board_departures")
}

func TestStaticFiles(t *testing.T) {
	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<h1>Aachen Bushof</h1>"), 0o600))

	app := NewApp(&staticBoards{board: &ctdf.Board{}, ok: true}, publicDir)

	resp, body := get(t, app, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<h1>Aachen Bushof</h1>", string(body))

	resp, _ = get(t, app, "/missing.html")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
