package search_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/addisroute/constraint"
	"github.com/katalvlaran/addisroute/search"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"BFS":    search.BFS,
		"bfs":    search.BFS,
		"Dfs":    search.DFS,
		"Greedy": search.Greedy,
		"GREEDY": search.Greedy,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "A*", "Dijkstra", " bfs"} {
		_, err := search.ParseAlgorithm(bad)
		assert.ErrorIs(t, err, search.ErrUnknownAlgorithm, bad)
	}
}

func TestWireRequest_RoundTrip(t *testing.T) {
	req := search.Request{
		Start:     "Merkato",
		Goal:      "Kality",
		Algorithm: search.Greedy,
		Blocked:   constraint.New("Sarbet", "Gotera"),
	}
	w := req.Wire()
	assert.Equal(t, "Greedy", w.Algorithm)
	assert.Equal(t, []string{"Gotera", "Sarbet"}, w.Blocked)

	raw, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"Merkato","goal":"Kality","algorithm":"Greedy","blocked":["Gotera","Sarbet"]}`, string(raw))

	back := w.Request()
	assert.Equal(t, req.Algorithm, back.Algorithm)
	assert.Equal(t, req.Blocked.Names(), back.Blocked.Names())

	bad := search.WireRequest{Start: "Atlantis", Goal: "Kality", Algorithm: "IDA"}.Request()
	assert.False(t, bad.Algorithm.Valid())
	_, err = newEngine(t).Search(context.Background(), bad)
	assert.ErrorIs(t, err, search.ErrUnknownLocation, "endpoints are checked before the algorithm")
}

func TestResult_Response(t *testing.T) {
	e := newEngine(t)

	found := run(t, e, k4, mk, search.BFS)
	resp := found.Response()
	assert.Equal(t, search.MsgFound, resp.Message)
	assert.Equal(t, "BFS explored 12 nodes.", resp.Note)
	assert.Equal(t, 2, resp.PathLength)
	assert.EqualValues(t, 5, resp.PathCost)

	blocked := run(t, e, k4, mk, search.DFS, k4)
	raw, err := json.Marshal(blocked.Response())
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":[],"explored":[],"message":"Start node is blocked.","path_length":0,"path_cost":0}`, string(raw))

	same := run(t, e, mk, mk, search.Greedy)
	assert.Equal(t, search.MsgSameLocation, same.Response().Message)
	assert.Empty(t, same.Response().Note)

	lost := run(t, e, kal, bo, search.BFS, gt)
	raw, err = json.Marshal(lost.Unreachable())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"No path found. The destination is unreachable or blocked.","explored":["Kality"],"path_length":0,"path_cost":0}`, string(raw))
}

func TestResultFromResponse(t *testing.T) {
	e := newEngine(t)
	for _, alg := range search.Algorithms {
		orig := run(t, e, mk, kal, alg)
		back, err := search.ResultFromResponse(alg, orig.Response())
		require.NoError(t, err)
		assert.Equal(t, orig, back, alg.String())
	}

	res, err := search.ResultFromResponse(search.BFS, search.Response{Path: []string{"A", "B"}, Message: "ok"})
	require.NoError(t, err)
	assert.Equal(t, search.StatusFound, res.Status, "unknown message classified by path")

	res, err = search.ResultFromResponse(search.BFS, search.Response{Path: []string{"A"}})
	require.NoError(t, err)
	assert.Equal(t, search.StatusSameLocation, res.Status)

	_, err = search.ResultFromResponse(search.BFS, search.Response{Message: "??"})
	assert.Error(t, err)
}

func TestStatus_Message(t *testing.T) {
	for _, st := range []search.Status{
		search.StatusFound, search.StatusSameLocation, search.StatusStartBlocked,
		search.StatusGoalBlocked, search.StatusUnreachable,
	} {
		got, ok := search.StatusFromMessage(st.Message())
		assert.True(t, ok, st.String())
		assert.Equal(t, st, got)
	}
}
