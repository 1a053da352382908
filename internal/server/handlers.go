package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/addisroute/roadmap"
	"github.com/katalvlaran/addisroute/search"
	"github.com/katalvlaran/addisroute/spatial"
)

// MsgInternal is the body of every 500 reply; details go to the log only.
const MsgInternal = "internal error"

// GraphLocation is one location in the GET /graph body.
type GraphLocation struct {
	ID     string     `json:"id"`
	Coord  orb.Point  `json:"coord"`
	Layout *orb.Point `json:"layout,omitempty"`
}

// GraphResponse is the GET /graph body.
type GraphResponse struct {
	Locations []GraphLocation `json:"locations"`
	Edges     []roadmap.Edge  `json:"edges"`
}

// HealthResponse is the GET /healthz body.
type HealthResponse struct {
	Status    string `json:"status"`
	Locations int    `json:"locations"`
	Edges     int    `json:"edges"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var wr search.WireRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&wr); err != nil {
		s.writeJSON(w, http.StatusBadRequest, search.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	res, err := s.run(r.Context(), wr.Request())
	if err != nil {
		code, body := s.failure(err)
		s.writeJSON(w, code, body)
		return
	}
	if res.Status == search.StatusUnreachable {
		s.writeJSON(w, http.StatusNotFound, res.Unreachable())
		return
	}
	s.writeJSON(w, http.StatusOK, res.Response())
}

// failure maps a search error to a status code and body. Unexpected errors
// are logged and hidden behind MsgInternal.
func (s *Server) failure(err error) (int, search.ErrorResponse) {
	var locErr *search.LocationError
	switch {
	case errors.As(err, &locErr):
		return http.StatusBadRequest, search.ErrorResponse{Error: locErr.Message()}
	case errors.Is(err, search.ErrUnknownAlgorithm):
		return http.StatusBadRequest, search.ErrorResponse{Error: search.MsgUnknownAlgorithm}
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, search.ErrExpansionLimit):
		return http.StatusServiceUnavailable, search.ErrorResponse{Error: fmt.Sprintf("search aborted: %v", err)}
	case errors.Is(err, search.ErrInconsistentGraphEdge):
		s.logger.Printf("invariant violation: %v", err)
		return http.StatusInternalServerError, search.ErrorResponse{Error: MsgInternal}
	default:
		s.logger.Printf("search failed: %v", err)
		return http.StatusInternalServerError, search.ErrorResponse{Error: MsgInternal}
	}
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, graphResponse(s.engine.Graph()))
}

// graphResponse lists g's locations in declaration order with their edges.
func graphResponse(g *roadmap.Graph) GraphResponse {
	ids := g.Locations()
	resp := GraphResponse{
		Locations: make([]GraphLocation, 0, len(ids)),
		Edges:     g.Edges(),
	}
	for _, id := range ids {
		loc := GraphLocation{ID: id}
		loc.Coord, _ = g.Coordinate(id)
		if p, ok := g.Layout(id); ok {
			loc.Layout = &p
		}
		resp.Locations = append(resp.Locations, loc)
	}

	return resp
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, errX := strconv.ParseFloat(q.Get("x"), 64)
	y, errY := strconv.ParseFloat(q.Get("y"), 64)
	p := orb.Point{x, y}
	if errX != nil || errY != nil || !spatial.Finite(p) {
		s.writeJSON(w, http.StatusBadRequest, search.ErrorResponse{Error: "x and y must be finite numbers"})
		return
	}

	m, err := s.index.Nearest(p)
	switch {
	case errors.Is(err, spatial.ErrEmptyIndex):
		s.writeJSON(w, http.StatusNotFound, search.ErrorResponse{Error: "no location has a layout"})
	case err != nil:
		s.writeJSON(w, http.StatusBadRequest, search.ErrorResponse{Error: err.Error()})
	default:
		s.writeJSON(w, http.StatusOK, m)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	g := s.engine.Graph()
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Locations: g.LocationCount(),
		Edges:     g.EdgeCount(),
	})
}

// writeJSON writes v as the JSON body with the given status. A value that
// cannot be encoded is logged and answered with 500 before any header is sent.
func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Printf("encode %T response: %v", v, err)
		code = http.StatusInternalServerError
		body, _ = json.Marshal(search.ErrorResponse{Error: MsgInternal})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(append(body, '\n')); err != nil {
		s.logger.Printf("write response: %v", err)
	}
}
