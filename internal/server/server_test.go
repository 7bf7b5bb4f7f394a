package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethpandaops/test-runs/internal/results"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	log.SetOutput(io.Discard)

	return log
}

func newTestServer(t *testing.T, dir string) *Server {
	t.Helper()

	log := newTestLogger()
	return NewServer(results.NewCatalog(dir, log), Options{Addr: "127.0.0.1:0"}, log)
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

// failingCatalog simulates I/O failures that are hard to provoke as root.
type failingCatalog struct{}

func (failingCatalog) Dir() string { return "unreadable" }

func (failingCatalog) List(context.Context) ([]results.Summary, error) {
	return nil, errors.New("permission denied")
}

func (failingCatalog) Get(context.Context, string) (json.RawMessage, error) {
	return nil, results.ErrNotFound
}

func TestListTestRuns_MissingDirectory(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, filepath.Join(t.TempDir(), "test-data"))
	rec := do(t, srv.Handler(), http.MethodGet, "/api/test-runs")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListTestRuns_Sorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{
		"results-1700000000000.json",
		"results-1800000000000.json",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`{"x":1}`), 0o600))
	}

	srv := newTestServer(t, dir)

	for _, target := range []string{"/api/test-runs", "/api/test-runs/"} {
		t.Run(target, func(t *testing.T) {
			rec := do(t, srv.Handler(), http.MethodGet, target)
			require.Equal(t, http.StatusOK, rec.Code)

			var summaries []results.Summary
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
			require.Len(t, summaries, 2)

			assert.Equal(t, "results-1800000000000.json", summaries[0].ID)
			assert.Equal(t, int64(1800000000000), summaries[0].Timestamp)
			assert.Equal(t, results.FormatDate(1800000000000), summaries[0].Date)
			assert.Equal(t, int64(7), summaries[0].Size)
			assert.Equal(t, "results-1700000000000.json", summaries[1].Filename)
		})
	}
}

func TestListTestRuns_FieldNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "results-1700000000000.json"), []byte(`{}`), 0o600))

	rec := do(t, newTestServer(t, dir).Handler(), http.MethodGet, "/api/test-runs")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 1)

	keys := make([]string, 0, len(raw[0]))
	for k := range raw[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "filename", "timestamp", "date", "size"}, keys)
}

func TestListTestRuns_Failure(t *testing.T) {
	t.Parallel()

	srv := NewServer(failingCatalog{}, Options{}, newTestLogger())
	rec := do(t, srv.Handler(), http.MethodGet, "/api/test-runs")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Failed to read test results"}`, rec.Body.String())
}

func TestListTestRuns_DirectoryIsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test-data")
	require.NoError(t, os.WriteFile(path, []byte("oops"), 0o600))

	rec := do(t, newTestServer(t, path).Handler(), http.MethodGet, "/api/test-runs")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Failed to read test results"}`, rec.Body.String())
}

func TestGetTestRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "test-data")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.json"), []byte(`{"secret":true}`), 0o600))

	payload := `{"suites":[{"name":"login","passed":true,"duration":1.25}],"total":1,"meta":null}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "results-1700000000000.json"), []byte(`{"x":1}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.json"), []byte(payload), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partial.json"), []byte(`{"suites":[`), 0o600))

	h := newTestServer(t, dir).Handler()

	tests := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{
			name:   "round trip",
			target: "/api/test-runs/results-1700000000000.json",
			status: http.StatusOK,
			body:   `{"x":1}`,
		},
		{
			name:   "opaque payload",
			target: "/api/test-runs/report.json",
			status: http.StatusOK,
			body:   payload,
		},
		{
			name:   "missing",
			target: "/api/test-runs/results-1.json",
			status: http.StatusNotFound,
			body:   `{"error": "Test result not found"}`,
		},
		{
			name:   "malformed",
			target: "/api/test-runs/partial.json",
			status: http.StatusNotFound,
			body:   `{"error": "Test result not found"}`,
		},
		{
			name:   "encoded traversal",
			target: "/api/test-runs/..%2Fsecret.json",
			status: http.StatusNotFound,
			body:   `{"error": "Test result not found"}`,
		},
		{
			name:   "encoded backslash traversal",
			target: "/api/test-runs/..%5Csecret.json",
			status: http.StatusNotFound,
			body:   `{"error": "Test result not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target)

			require.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestGetTestRun_EchoesMarkupVerbatim(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "markup.json"), []byte(`{"message":"<b>&</b>"}`), 0o600))

	rec := do(t, newTestServer(t, dir).Handler(), http.MethodGet, "/api/test-runs/markup.json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{\"message\":\"<b>&</b>\"}\n", rec.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/api/test-runs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()

	newTestServer(t, t.TempDir()).Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestServer(t, t.TempDir()).Handler(), http.MethodGet, "/api/unknown")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Not found"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, t.TempDir()).Handler(), http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	require.NoError(t, err)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "results-1700000000000.json"), []byte(`{"x":1}`), 0o600))

	srv := newTestServer(t, dir)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return srv.Addr() != ""
	}, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr() + "/api/test-runs/results-1700000000000.json")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"x":1}`, string(body))

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for server to stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	t.Parallel()

	srv := NewServer(failingCatalog{}, Options{Addr: "256.0.0.1:bad"}, newTestLogger())

	err := srv.Run(context.Background())
	require.Error(t, err)
}
