package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/addisroute/constraint"
	"github.com/katalvlaran/addisroute/internal/config"
	"github.com/katalvlaran/addisroute/internal/server"
	"github.com/katalvlaran/addisroute/remote"
	"github.com/katalvlaran/addisroute/roadmap"
	"github.com/katalvlaran/addisroute/search"
)

// newBackend starts a real search service and returns it with a local engine.
func newBackend(t *testing.T) (*httptest.Server, *search.Engine) {
	t.Helper()
	engine, err := search.NewEngine(roadmap.AddisAbaba())
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Server.RateLimit = 1e6
	cfg.Server.RateBurst = 1e6
	s, err := server.New(engine, cfg)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return ts, engine
}

// canned starts a server that always replies with code and body.
func canned(t *testing.T, code int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return ts
}

func newClient(t *testing.T, endpoint string) *remote.Client {
	t.Helper()
	c, err := remote.NewClient(endpoint, remote.WithRateLimit(0, 0))
	require.NoError(t, err)

	return c
}

func TestNewClient(t *testing.T) {
	c, err := remote.NewClient("http://localhost:5000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/search", c.Endpoint())

	c, err = remote.NewClient("https://routes.example.com/api/v1/search")
	require.NoError(t, err)
	assert.Equal(t, "https://routes.example.com/api/v1/search", c.Endpoint())

	for _, bad := range []string{"", "localhost:5000", "ftp://host/search", "http://", "://x"} {
		_, err = remote.NewClient(bad)
		assert.ErrorIs(t, err, remote.ErrEndpoint, bad)
	}
}

func TestClient_MatchesEngine(t *testing.T) {
	ts, engine := newBackend(t)
	client := newClient(t, ts.URL)
	ctx := context.Background()

	requests := []search.Request{
		{Start: "4 Kilo", Goal: "Merkato", Algorithm: search.BFS},
		{Start: "4 Kilo", Goal: "Merkato", Algorithm: search.DFS},
		{Start: "Merkato", Goal: "Kality", Algorithm: search.Greedy},
		{Start: "6 Kilo", Goal: "Kality", Algorithm: search.DFS, Blocked: constraint.New("Meskel Square")},
		{Start: "Bole", Goal: "Bole", Algorithm: search.Greedy},
		{Start: "Meskel Square", Goal: "Bole", Algorithm: search.BFS, Blocked: constraint.New("Meskel Square")},
		{Start: "Meskel Square", Goal: "Bole", Algorithm: search.BFS, Blocked: constraint.New("Bole")},
		{Start: "Kality", Goal: "Bole", Algorithm: search.Greedy, Blocked: constraint.New("Gotera")},
		{Start: "Meskel Square", Goal: "Merkato", Algorithm: search.DFS, Blocked: constraint.New("Piazza", "Mexico")},
	}
	for _, req := range requests {
		want, err := engine.Search(ctx, req)
		require.NoError(t, err)
		got, err := client.Search(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%s %s→%s", req.Algorithm, req.Start, req.Goal)
	}
}

func TestClient_UnknownLocation(t *testing.T) {
	ts, _ := newBackend(t)
	client := newClient(t, ts.URL)

	_, err := client.Search(context.Background(), search.Request{Start: "Atlantis", Goal: "Bole", Algorithm: search.BFS})
	require.ErrorIs(t, err, search.ErrUnknownLocation)
	var locErr *search.LocationError
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, search.RoleStart, locErr.Role)
	assert.Equal(t, "Atlantis", locErr.Name)

	_, err = client.Search(context.Background(), search.Request{Start: "Bole", Goal: "Atlantis", Algorithm: search.BFS})
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, search.RoleGoal, locErr.Role)
}

func TestClient_InvalidAlgorithm(t *testing.T) {
	ts, engine := newBackend(t)
	client := newClient(t, ts.URL)
	ctx := context.Background()

	for _, req := range []search.Request{
		{Start: "Bole", Goal: "CMC"},
		{Start: "Atlantis", Goal: "CMC"},
		{Start: "Bole", Goal: "Atlantis", Algorithm: search.Algorithm(42)},
	} {
		_, want := engine.Search(ctx, req)
		_, got := client.Search(ctx, req)
		require.Error(t, want)
		require.Error(t, got)
		assert.Equal(t, errors.Is(want, search.ErrUnknownLocation), errors.Is(got, search.ErrUnknownLocation), req.Start)
		assert.Equal(t, errors.Is(want, search.ErrUnknownAlgorithm), errors.Is(got, search.ErrUnknownAlgorithm), req.Start)
	}
}

func TestClient_ReplaysHook(t *testing.T) {
	ts, _ := newBackend(t)
	client := newClient(t, ts.URL)

	var seen []string
	res, err := client.Search(context.Background(),
		search.Request{Start: "4 Kilo", Goal: "Merkato", Algorithm: search.Greedy},
		search.WithOnExplore(func(id string, i int) error {
			assert.Equal(t, len(seen), i)
			seen = append(seen, id)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Explored, seen)

	stop := errors.New("stop")
	_, err = client.Search(context.Background(),
		search.Request{Start: "4 Kilo", Goal: "Merkato", Algorithm: search.Greedy},
		search.WithOnExplore(func(string, int) error { return stop }),
	)
	assert.ErrorIs(t, err, search.ErrHook)
	assert.ErrorIs(t, err, stop)
}

func TestClient_StatusErrors(t *testing.T) {
	req := search.Request{Start: "Bole", Goal: "CMC", Algorithm: search.BFS}

	cases := []struct {
		name string
		code int
		body string
		want string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"internal error"}`, "internal error"},
		{"rate limited", http.StatusTooManyRequests, `{"error":"rate limit exceeded"}`, "rate limit exceeded"},
		{"timeout", http.StatusServiceUnavailable, `{"error":"search aborted: context deadline exceeded"}`, "search aborted: context deadline exceeded"},
		{"non-json", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
		{"other bad request", http.StatusBadRequest, `{"error":"invalid request body: EOF"}`, "invalid request body: EOF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newClient(t, canned(t, tc.code, tc.body).URL).Search(context.Background(), req)
			require.ErrorIs(t, err, remote.ErrRemote)
			var se *remote.StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.code, se.StatusCode)
			assert.Equal(t, tc.want, se.Message)
		})
	}

	_, err := newClient(t, canned(t, http.StatusTooManyRequests, `{}`).URL).Search(context.Background(), req)
	assert.True(t, remote.IsRateLimited(err))
}

func TestClient_InvalidResponses(t *testing.T) {
	req := search.Request{Start: "Bole", Goal: "CMC", Algorithm: search.BFS}

	for _, tc := range []struct {
		code int
		body string
	}{
		{http.StatusOK, `not json`},
		{http.StatusOK, `{"path":[],"explored":[],"message":"mystery"}`},
		{http.StatusNotFound, `[`},
	} {
		_, err := newClient(t, canned(t, tc.code, tc.body).URL).Search(context.Background(), req)
		assert.ErrorIs(t, err, remote.ErrInvalidResponse, tc.body)
	}
}

func TestClient_SendsWireRequest(t *testing.T) {
	var got search.WireRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"path":["Bole"],"explored":["Bole"],"message":"Initial state and goal state are the same. Zero distance.","path_length":0,"path_cost":0}`))
	}))
	t.Cleanup(ts.Close)

	res, err := newClient(t, ts.URL).Search(context.Background(), search.Request{
		Start: "Bole", Goal: "bole", Algorithm: search.DFS, Blocked: constraint.New("Piazza", "CMC"),
	})
	require.NoError(t, err)
	assert.Equal(t, search.StatusSameLocation, res.Status)
	assert.Equal(t, search.WireRequest{Start: "Bole", Goal: "bole", Algorithm: "DFS", Blocked: []string{"CMC", "Piazza"}}, got)
}

func TestClient_ContextAndNetwork(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(slow.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := newClient(t, slow.URL).Search(ctx, search.Request{Start: "Bole", Goal: "CMC", Algorithm: search.BFS})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	dead := httptest.NewServer(http.NotFoundHandler())
	url := dead.URL
	dead.Close()
	_, err = newClient(t, url).Search(context.Background(), search.Request{Start: "Bole", Goal: "CMC", Algorithm: search.BFS})
	assert.ErrorIs(t, err, remote.ErrNetwork)
}

func TestClient_RateLimitWaitHonorsContext(t *testing.T) {
	ts, _ := newBackend(t)
	client, err := remote.NewClient(ts.URL, remote.WithRateLimit(0.001, 1))
	require.NoError(t, err)
	req := search.Request{Start: "Bole", Goal: "CMC", Algorithm: search.BFS}

	_, err = client.Search(context.Background(), req)
	require.NoError(t, err, "first request uses the burst token")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Search(ctx, req)
	assert.Error(t, err, "second request cannot get a token before the deadline")
}
