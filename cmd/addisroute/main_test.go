package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/addisroute/internal/config"
	"github.com/katalvlaran/addisroute/internal/server"
	"github.com/katalvlaran/addisroute/roadmap"
	"github.com/katalvlaran/addisroute/search"
)

// runCLI runs the CLI in a scratch directory and returns the exit code and outputs.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestSearchCommand(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		wantCode int
		wantPath []string
		wantMsg  string
	}{
		{
			name:     "bfs default",
			args:     []string{"search", "--from", "4 Kilo", "--to", "Merkato"},
			wantCode: ExitSuccess,
			wantPath: []string{"4 Kilo", "Piazza", "Merkato"},
			wantMsg:  search.MsgFound,
		},
		{
			name:     "greedy any case",
			args:     []string{"search", "--from", "merkato", "--to", "kality", "--algo", "greedy"},
			wantCode: ExitSuccess,
			wantPath: []string{"Merkato", "Mexico", "Sarbet", "Gotera", "Kality"},
		},
		{
			name:     "blocked detour",
			args:     []string{"search", "--from", "6 Kilo", "--to", "Kality", "--block", "Meskel Square"},
			wantCode: ExitSuccess,
			wantPath: []string{"6 Kilo", "4 Kilo", "Megenagna", "Bole", "Gotera", "Kality"},
		},
		{
			name:     "goal blocked",
			args:     []string{"search", "--from", "Bole", "--to", "CMC", "--block", "CMC"},
			wantCode: ExitNoPath,
			wantPath: []string{},
			wantMsg:  search.MsgGoalBlocked,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.args...)
			assert.Equal(t, tc.wantCode, code, stderr)
			assert.Empty(t, stderr)

			var resp search.Response
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			assert.Equal(t, tc.wantPath, resp.Path)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, resp.Message)
			}
		})
	}
}

func TestSearchCommand_Unreachable(t *testing.T) {
	code, stdout, _ := runCLI(t, "search", "--from", "Kality", "--to", "Bole", "--block", "Gotera")
	assert.Equal(t, ExitNoPath, code)

	var resp search.UnreachableResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, search.MsgUnreachable, resp.Error)
	assert.Equal(t, []string{"Kality"}, resp.Explored)
}

func TestSearchCommand_Errors(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"unknown start", []string{"search", "--from", "Atlantis", "--to", "Bole"}, ExitUnknownInput, "unknown start location"},
		{"unknown algorithm", []string{"search", "--from", "Bole", "--to", "CMC", "--algo", "astar"}, ExitUnknownInput, "unknown algorithm"},
		{"unknown start before algorithm", []string{"search", "--from", "Atlantis", "--to", "Bole", "--algo", "astar"}, ExitUnknownInput, "unknown start location"},
		{"bad mode", []string{"search", "--from", "Bole", "--to", "CMC", "--mode", "hybrid"}, ExitConfigError, "client.mode"},
		{"missing flag", []string{"search", "--from", "Bole"}, ExitError, "required flag"},
		{"expansion budget", []string{"search", "--from", "4 Kilo", "--to", "Merkato", "--algo", "DFS", "--max-expansions", "2"}, ExitError, "expansion limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.args...)
			assert.Equal(t, tc.wantCode, code)
			assert.Empty(t, stdout)

			var er ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(stderr), &er))
			assert.Contains(t, er.Error, tc.wantErr)
		})
	}
}

func TestSearchCommand_Human(t *testing.T) {
	code, stdout, _ := runCLI(t, "search", "--from", "4 Kilo", "--to", "Merkato", "--algo", "Greedy", "--human")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Path:      4 Kilo -> Piazza -> Merkato")
	assert.Contains(t, stdout, "Cost:      5")
	assert.Contains(t, stdout, "Explored:  3")
	assert.Contains(t, stdout, "Cheapest:  5")

	code, stdout, _ = runCLI(t, "search", "--from", "Merkato", "--to", "Kality", "--algo", "Greedy", "--human")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Cost:      18")
	assert.Contains(t, stdout, "Cheapest:  17")

	code, _, stderr := runCLI(t, "search", "--from", "Nowhere", "--to", "Bole", "--human")
	assert.Equal(t, ExitUnknownInput, code)
	assert.Contains(t, stderr, "error: ")
}

func TestSearchCommand_Remote(t *testing.T) {
	engine, err := search.NewEngine(roadmap.AddisAbaba())
	require.NoError(t, err)
	srv, err := server.New(engine, config.Default())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	code, stdout, stderr := runCLI(t, "search", "--from", "Merkato", "--to", "Kality", "--algo", "DFS",
		"--mode", "remote", "--endpoint", ts.URL)
	require.Equal(t, ExitSuccess, code, stderr)

	var resp search.Response
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, []string{"Merkato", "Piazza", "4 Kilo", "Meskel Square", "Bole", "Gotera", "Kality"}, resp.Path)
	assert.EqualValues(t, 26, resp.PathCost)

	code, _, _ = runCLI(t, "search", "--from", "Atlantis", "--to", "Kality", "--mode", "remote", "--endpoint", ts.URL)
	assert.Equal(t, ExitUnknownInput, code)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  algorithm: DFS\n"), 0o644))

	code, stdout, _ := runCLI(t, "--config", path, "search", "--from", "4 Kilo", "--to", "Merkato")
	require.Equal(t, ExitSuccess, code)
	var resp search.Response
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "DFS explored 11 nodes.", resp.Note)

	code, _, _ = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "graph")
	assert.Equal(t, ExitSuccess, code, "graph does not read config")

	code, _, _ = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "search", "--from", "Bole", "--to", "CMC")
	assert.Equal(t, ExitConfigError, code)
}

func TestGraphCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "graph")
	require.Equal(t, ExitSuccess, code)

	var out GraphOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Locations, 13)
	assert.Equal(t, 20, out.Edges)
	assert.Equal(t, "Meskel Square", out.Locations[0].ID)
	assert.Equal(t, roadmap.Neighbor{ID: "Bole", Weight: 5}, out.Locations[0].Neighbors[0])

	code, stdout, _ = runCLI(t, "graph", "--human")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Kality:        Gotera (6)")
	assert.Contains(t, stdout, "13 locations, 20 edges")
}

func TestNearestCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "nearest", "51", "49")
	require.Equal(t, ExitSuccess, code)
	var m struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &m))
	assert.Equal(t, "Meskel Square", m.ID)

	code, stdout, _ = runCLI(t, "nearest", "100", "100", "--human")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Kality (distance 35.36)\n", stdout)

	code, _, _ = runCLI(t, "nearest", "north", "1")
	assert.Equal(t, ExitError, code)

	code, _, _ = runCLI(t, "nearest", "1")
	assert.Equal(t, ExitError, code)

	for _, args := range [][]string{{"NaN", "0"}, {"1", "Inf"}} {
		code, stdout, stderr := runCLI(t, append([]string{"nearest"}, args...)...)
		assert.Equal(t, ExitError, code, args)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "must be finite")
	}
}
