package search

import (
	"fmt"

	"github.com/katalvlaran/addisroute/constraint"
)

// User-facing messages shared by the HTTP service, the remote client and the CLI.
const (
	MsgFound            = "Path found successfully."
	MsgSameLocation     = "Initial state and goal state are the same. Zero distance."
	MsgStartBlocked     = "Start node is blocked."
	MsgGoalBlocked      = "Goal node is blocked."
	MsgUnreachable      = "No path found. The destination is unreachable or blocked."
	MsgUnknownStart     = "Start address does not exist."
	MsgUnknownGoal      = "Goal address does not exist."
	MsgUnknownAlgorithm = "Unknown algorithm selected."
)

// WireRequest is the JSON request body of the search service.
type WireRequest struct {
	Start     string   `json:"start"`
	Goal      string   `json:"goal"`
	Algorithm string   `json:"algorithm"`
	Blocked   []string `json:"blocked"`
}

// Wire converts r to its JSON form. Blocked names are sorted.
func (r Request) Wire() WireRequest {
	return WireRequest{
		Start:     r.Start,
		Goal:      r.Goal,
		Algorithm: r.Algorithm.String(),
		Blocked:   r.Blocked.Names(),
	}
}

// Request parses the algorithm name and snapshots the blocked list. An
// unknown name yields the zero Algorithm, which Search rejects only after
// both endpoints resolve.
func (w WireRequest) Request() Request {
	alg, _ := ParseAlgorithm(w.Algorithm)

	return Request{
		Start:     w.Start,
		Goal:      w.Goal,
		Algorithm: alg,
		Blocked:   constraint.New(w.Blocked...),
	}
}

// Response is the success body: found, same location, or a blocked endpoint.
type Response struct {
	Path       []string `json:"path"`
	Explored   []string `json:"explored"`
	Message    string   `json:"message"`
	Note       string   `json:"note,omitempty"`
	PathLength int      `json:"path_length"`
	PathCost   int64    `json:"path_cost"`
}

// UnreachableResponse is the 404 body: the search ran and exhausted its frontier.
type UnreachableResponse struct {
	Error      string   `json:"error"`
	Explored   []string `json:"explored"`
	PathLength int      `json:"path_length"`
	PathCost   int64    `json:"path_cost"`
}

// ErrorResponse is the body of every other non-2xx reply.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Explored []string `json:"explored,omitempty"`
}

// Response renders r as a success body. Slices are never nil so they encode as [].
func (r *Result) Response() Response {
	resp := Response{
		Path:       nonNil(r.Path),
		Explored:   nonNil(r.Explored),
		Message:    r.Status.Message(),
		PathLength: r.PathLength,
		PathCost:   r.PathCost,
	}
	if r.Status == StatusFound {
		resp.Note = fmt.Sprintf("%s explored %d nodes.", r.Algorithm, len(r.Explored))
	}

	return resp
}

// Unreachable renders r as a 404 body.
func (r *Result) Unreachable() UnreachableResponse {
	return UnreachableResponse{
		Error:    MsgUnreachable,
		Explored: nonNil(r.Explored),
	}
}

// StatusFromMessage maps a success-body message back to its Status.
func StatusFromMessage(msg string) (Status, bool) {
	switch msg {
	case MsgFound:
		return StatusFound, true
	case MsgSameLocation:
		return StatusSameLocation, true
	case MsgStartBlocked:
		return StatusStartBlocked, true
	case MsgGoalBlocked:
		return StatusGoalBlocked, true
	case MsgUnreachable:
		return StatusUnreachable, true
	default:
		return 0, false
	}
}

// ResultFromResponse rebuilds a Result from a success body. A message that
// does not name a status is classified by the path: more than one location
// is a found path, exactly one is the same-location case.
func ResultFromResponse(alg Algorithm, resp Response) (*Result, error) {
	st, ok := StatusFromMessage(resp.Message)
	if !ok {
		switch {
		case len(resp.Path) > 1:
			st = StatusFound
		case len(resp.Path) == 1:
			st = StatusSameLocation
		default:
			return nil, fmt.Errorf("search: cannot classify response with message %q and empty path", resp.Message)
		}
	}

	res := &Result{
		Algorithm:  alg,
		Status:     st,
		Path:       nonNil(resp.Path),
		Explored:   nonNil(resp.Explored),
		Found:      st == StatusFound || st == StatusSameLocation,
		PathLength: resp.PathLength,
		PathCost:   resp.PathCost,
	}

	return res, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
