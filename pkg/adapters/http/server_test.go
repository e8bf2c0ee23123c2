package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hanoihttp "github.com/aretw0/hanoi/pkg/adapters/http"
	"github.com/aretw0/hanoi/pkg/adapters/memory"
	"github.com/aretw0/hanoi/pkg/domain"
)

func newTestServer(t *testing.T, opts ...hanoihttp.Option) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(hanoihttp.NewHandler(memory.NewStore(), opts...))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var fields map[string]json.RawMessage
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&fields))
	}
	return resp, fields
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func createSession(t *testing.T, srv *httptest.Server, mode domain.SessionMode, cfg map[string]any) string {
	t.Helper()
	resp, fields := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions", map[string]any{
		"mode":   mode,
		"config": cfg,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var id string
	require.NoError(t, json.Unmarshal(fields["id"], &id))
	require.NotEmpty(t, id)
	return id
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, fields := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"ok"`, string(fields["status"]))
}

func TestCreateSession(t *testing.T) {
	srv := newTestServer(t)

	_, fields := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions", map[string]any{
		"config": map[string]any{"disk_count": 3},
	})

	var sess domain.Session
	require.NoError(t, json.Unmarshal(fields["session"], &sess))
	assert.Equal(t, 3, sess.Disks)
	assert.Equal(t, domain.ModeAuto, sess.Mode, "mode defaults to auto")
	assert.Equal(t, 0, sess.Cursor)
	assert.Equal(t, []int{3, 2, 1}, sess.Board.Peg(domain.PegA))
}

func TestCreateSession_InvalidConfig(t *testing.T) {
	srv := newTestServer(t)

	tests := []map[string]any{
		{"disk_count": 99},
		{"disk_count": 0},
		{"unknown_knob": true},
		{"source": "A", "target": "A"},
	}
	for _, cfg := range tests {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions", map[string]any{"config": cfg})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "config %v", cfg)
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv, domain.ModeAuto, map[string]any{"disk_count": 3})

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, fields := doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ids []string
	require.NoError(t, json.Unmarshal(fields["sessions"], &ids))
	assert.Contains(t, ids, id)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSession_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/missing/step", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStepSession_ToCompletion(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv, domain.ModeAuto, map[string]any{"disk_count": 3})

	var done bool
	var board domain.State
	steps := 0
	for !done {
		resp, fields := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/step", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, json.Unmarshal(fields["done"], &done))
		require.NoError(t, json.Unmarshal(fields["board"], &board))
		steps++
		require.LessOrEqual(t, steps, 50, "stepping must terminate")
	}

	// 7 calls for three disks: 7 enters, 7 moves, 7 leaves.
	assert.Equal(t, 21, steps)
	assert.True(t, board.IsSolved(domain.PegC))

	// Stepping past the end stays done without an event.
	resp, fields := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/step", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(fields["done"], &done))
	assert.True(t, done)
	_, hasEvent := fields["event"]
	assert.False(t, hasEvent)
}

func TestStepSession_ManualConflict(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv, domain.ModeManual, map[string]any{"disk_count": 3})

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/step", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/seek", map[string]any{"event_index": 0})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSeekSession(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv, domain.ModeAuto, map[string]any{"disk_count": 3})

	resp, fields := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/seek", map[string]any{"event_index": 21})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var done bool
	var board domain.State
	require.NoError(t, json.Unmarshal(fields["done"], &done))
	require.NoError(t, json.Unmarshal(fields["board"], &board))
	assert.True(t, done)
	assert.True(t, board.IsSolved(domain.PegC))

	// Rewinding restores the initial board.
	_, fields = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/seek", map[string]any{"event_index": 0})
	require.NoError(t, json.Unmarshal(fields["board"], &board))
	assert.Equal(t, []int{3, 2, 1}, board.Peg(domain.PegA))

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/seek", map[string]any{"event_index": 999})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestApplyMove_Manual(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv, domain.ModeManual, map[string]any{"disk_count": 3})

	url := srv.URL + "/api/v1/sessions/" + id + "/moves"

	resp, fields := doJSON(t, http.MethodPost, url, domain.Move{From: domain.PegA, To: domain.PegC})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var board domain.State
	require.NoError(t, json.Unmarshal(fields["board"], &board))
	assert.Equal(t, []int{1}, board.Peg(domain.PegC))
	assert.JSONEq(t, `1`, string(fields["move_count"]))

	// Larger onto smaller is rejected and the board stands.
	resp, _ = doJSON(t, http.MethodPost, url, domain.Move{From: domain.PegA, To: domain.PegC})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, fields = doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sess domain.Session
	require.NoError(t, json.Unmarshal(fields["session"], &sess))
	assert.Equal(t, []int{1}, sess.Board.Peg(domain.PegC))
	assert.Equal(t, 1, sess.MoveCount)
}

func TestApplyMove_AutoConflict(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv, domain.ModeAuto, map[string]any{"disk_count": 3})

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+id+"/moves", domain.Move{From: domain.PegA, To: domain.PegC})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetTrace(t *testing.T) {
	srv := newTestServer(t)

	resp, fields := doJSON(t, http.MethodGet, srv.URL+"/api/v1/traces/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var moves []domain.Move
	var nodes []domain.CallNode
	var events []domain.TraceEvent
	require.NoError(t, json.Unmarshal(fields["moves"], &moves))
	require.NoError(t, json.Unmarshal(fields["nodes"], &nodes))
	require.NoError(t, json.Unmarshal(fields["events"], &events))

	assert.Len(t, moves, 7)
	assert.Len(t, nodes, 7)
	assert.Len(t, events, 21)

	var positions []json.RawMessage
	require.NoError(t, json.Unmarshal(fields["positions"], &positions))
	assert.Len(t, positions, 7, "one layout position per call node")
}

func TestGetTrace_InvalidDisks(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/traces/0", "/api/v1/traces/11"} {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+path, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, path)
	}
}

func TestGetMermaid(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/traces/2/mermaid?at=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readAll(t, resp)
	assert.Contains(t, body, "graph TD")
	assert.Contains(t, body, "call0")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, hanoihttp.WithMetrics(prometheus.NewRegistry()))

	// Generate a solve so a counter has a value.
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/traces/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	mresp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer mresp.Body.Close()
	require.Equal(t, http.StatusOK, mresp.StatusCode)
	assert.Contains(t, readAll(t, mresp), "hanoi_solves_total")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/sessions", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
