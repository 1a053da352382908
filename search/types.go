package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/addisroute/constraint"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned by NewEngine when given a nil graph.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrUnknownLocation is wrapped by *LocationError when start or goal
	// does not resolve in the graph.
	ErrUnknownLocation = errors.New("search: unknown location")

	// ErrUnknownAlgorithm is returned for an Algorithm outside BFS, DFS, Greedy.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrInconsistentGraphEdge means an algorithm produced a path whose
	// consecutive locations are not adjacent. It is a programming error.
	ErrInconsistentGraphEdge = errors.New("search: inconsistent graph edge")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrHook wraps an error returned by an OnExplore hook.
	ErrHook = errors.New("search: OnExplore hook failed")
)

// Algorithm selects the search strategy. The zero value is invalid.
type Algorithm int

const (
	// BFS is uninformed breadth-first search; shortest by edge count.
	BFS Algorithm = iota + 1
	// DFS is uninformed depth-first search with lazy visited marking.
	DFS
	// Greedy is greedy best-first search ranked by straight-line distance to goal.
	Greedy
)

// Algorithms lists every valid Algorithm in display order.
var Algorithms = []Algorithm{BFS, DFS, Greedy}

// String returns the wire name: "BFS", "DFS" or "Greedy".
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Greedy:
		return "Greedy"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is one of BFS, DFS, Greedy.
func (a Algorithm) Valid() bool { return a >= BFS && a <= Greedy }

// ParseAlgorithm maps a wire name, any case, to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Status classifies a completed search. Every Status is an expected outcome,
// not an error.
type Status int

const (
	// StatusFound means a path from start to goal was found.
	StatusFound Status = iota
	// StatusSameLocation means start and goal resolved to the same location.
	StatusSameLocation
	// StatusStartBlocked means the start location is in the constraint set.
	StatusStartBlocked
	// StatusGoalBlocked means the goal location is in the constraint set.
	StatusGoalBlocked
	// StatusUnreachable means the frontier emptied without reaching goal.
	StatusUnreachable
)

// String returns a short identifier for logs.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusSameLocation:
		return "same-location"
	case StatusStartBlocked:
		return "start-blocked"
	case StatusGoalBlocked:
		return "goal-blocked"
	case StatusUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Message returns the user-facing sentence for s.
func (s Status) Message() string {
	switch s {
	case StatusFound:
		return MsgFound
	case StatusSameLocation:
		return MsgSameLocation
	case StatusStartBlocked:
		return MsgStartBlocked
	case StatusGoalBlocked:
		return MsgGoalBlocked
	case StatusUnreachable:
		return MsgUnreachable
	default:
		return ""
	}
}

// Endpoint roles reported by LocationError.
const (
	RoleStart = "start"
	RoleGoal  = "goal"
)

// LocationError reports which endpoint failed to resolve.
type LocationError struct {
	Role string // RoleStart or RoleGoal
	Name string // the input as given
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("search: unknown %s location %q", e.Role, e.Name)
}

// Unwrap lets errors.Is(err, ErrUnknownLocation) match.
func (e *LocationError) Unwrap() error { return ErrUnknownLocation }

// Message returns the user-facing sentence for the failed endpoint.
func (e *LocationError) Message() string {
	if e.Role == RoleGoal {
		return MsgUnknownGoal
	}

	return MsgUnknownStart
}

// Request is one search invocation.
type Request struct {
	Start     string
	Goal      string
	Algorithm Algorithm
	Blocked   constraint.Set
}

// Result is the immutable outcome of one search.
//
// Path is empty unless Found. Explored lists locations in the order the
// algorithm marked them visited (BFS) or processed (DFS, Greedy), without
// duplicates. PathLength is len(Path)-1, or 0 for an empty path.
type Result struct {
	Algorithm  Algorithm
	Status     Status
	Path       []string
	Explored   []string
	Found      bool
	PathLength int
	PathCost   int64
}

// Searcher is implemented by the local Engine and by remote delegates
// speaking the same contract.
type Searcher interface {
	Search(ctx context.Context, req Request, opts ...Option) (*Result, error)
}

// Option configures a single Search call.
type Option func(*Options)

// Options holds per-call hooks and limits.
type Options struct {
	// OnExplore is called each time a location is appended to the explored
	// order, with its zero-based index. Returning an error aborts the search.
	OnExplore func(id string, index int) error

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many
	// frontier pops. 0 disables the limit.
	MaxExpansions int

	// err records the first invalid option.
	err error
}

// DefaultOptions returns a no-op hook and no expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExplore:     func(string, int) error { return nil },
		MaxExpansions: 0,
	}
}

// BuildOptions applies opts over DefaultOptions and reports the first
// invalid one as ErrOptionViolation.
func BuildOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithOnExplore registers a hook run for every explored location.
func WithOnExplore(fn func(id string, index int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithMaxExpansions bounds the number of frontier pops.
//
//	n > 0:  abort after n pops
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
