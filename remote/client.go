// Package remote delegates searches to an addisroute HTTP service.
//
// A Client satisfies search.Searcher: it returns the same *search.Result the
// local engine would, so callers switch between local and remote execution
// without changing code. Outbound requests are paced by a token-bucket limiter.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/addisroute/search"
)

const (
	// DefaultTimeout bounds one HTTP round trip.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit is the default number of requests per second.
	DefaultRateLimit = 10.0

	// SearchPath is appended to endpoints given without a path.
	SearchPath = "/search"

	// maxBody caps how much of a reply is read.
	maxBody = 1 << 20
)

// Client is a rate-limited HTTP client for the search service.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	endpoint   string
}

var _ search.Searcher = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit sets the request rate (per second) and burst. A
// non-positive rate disables pacing.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewClient returns a Client posting to endpoint. An endpoint with no path,
// such as "http://localhost:5000", gets SearchPath appended.
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https, got %q", ErrEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrEndpoint, endpoint)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = SearchPath
	}

	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		endpoint:   u.String(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Endpoint returns the URL searches are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Search posts req to the service and decodes the reply.
//
// Unreachable replies (404) come back as a StatusUnreachable result with a
// nil error. Unknown start or goal replies return *search.LocationError.
// The OnExplore hook is replayed over the returned explored order;
// MaxExpansions is not enforced remotely.
func (c *Client) Search(ctx context.Context, req search.Request, opts ...search.Option) (*search.Result, error) {
	o, err := search.BuildOptions(opts...)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	status, body, err := c.post(ctx, req.Wire())
	if err != nil {
		return nil, err
	}

	res, err := decode(req, status, body)
	if err != nil {
		return nil, err
	}

	for i, id := range res.Explored {
		if err = o.OnExplore(id, i); err != nil {
			return nil, fmt.Errorf("%w at %q: %w", search.ErrHook, id, err)
		}
	}

	return res, nil
}

// post sends one request and returns the status code and body.
func (c *Client) post(ctx context.Context, wr search.WireRequest) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	payload, err := json.Marshal(wr)
	if err != nil {
		return 0, nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, ctxErr
		}
		return 0, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}

	return resp.StatusCode, body, nil
}

// decode maps one reply onto a Result or an error.
func decode(req search.Request, status int, body []byte) (*search.Result, error) {
	switch {
	case status == http.StatusOK:
		var resp search.Response
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		res, err := search.ResultFromResponse(req.Algorithm, resp)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return res, nil

	case status == http.StatusNotFound:
		var resp search.UnreachableResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		explored := resp.Explored
		if explored == nil {
			explored = []string{}
		}
		return &search.Result{
			Algorithm: req.Algorithm,
			Status:    search.StatusUnreachable,
			Path:      []string{},
			Explored:  explored,
		}, nil

	case status == http.StatusBadRequest:
		msg := errorMessage(body)
		switch msg {
		case search.MsgUnknownStart:
			return nil, &search.LocationError{Role: search.RoleStart, Name: req.Start}
		case search.MsgUnknownGoal:
			return nil, &search.LocationError{Role: search.RoleGoal, Name: req.Goal}
		case search.MsgUnknownAlgorithm:
			return nil, fmt.Errorf("%w: %v", search.ErrUnknownAlgorithm, req.Algorithm)
		}
		return nil, &StatusError{StatusCode: status, Message: msg}

	default:
		return nil, &StatusError{StatusCode: status, Message: errorMessage(body)}
	}
}

// errorMessage extracts the "error" field of a reply, or "" if absent.
func errorMessage(body []byte) string {
	var er search.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return ""
	}

	return er.Error
}
