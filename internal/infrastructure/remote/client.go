// Package remote is the HTTP client of the Job Portal API. Responses use the
// envelope {"data": ...} on success and {"error": "..."} on failure.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/api/metrics"
	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/ports"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	defaultTimeout = 15 * time.Second

	// RequestIDHeader is forwarded on every remote call.
	RequestIDHeader = "X-Request-Id"

	maxBodyBytes = 10 << 20
)

// Config captures the settings of the remote API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the remote API. Authenticated calls read the bearer token
// from the token store at call time; when the store cannot be read they go
// out without one.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenStore
	log     zerolog.Logger
}

// NewClient returns a client for cfg. Defaults apply to empty fields.
func NewClient(cfg Config, tokens ports.TokenStore, log zerolog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestIDKey struct{}

// WithRequestID attaches id to ctx so remote calls made with it carry the
// same correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// bearer selects how a request is authenticated.
type bearer int

const (
	// fromStore attaches the stored token when there is one.
	fromStore bearer = iota
	// anonymous never attaches a token.
	anonymous
	// explicit uses call.token.
	explicit
)

type call struct {
	method string
	// route is the path template used as the metrics label.
	route string
	path  string
	body  any
	auth  bearer
	token string
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// do sends cl and decodes the envelope's data into out (when out is non-nil).
// Non-2xx answers become *domain.RemoteError.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", cl.method, cl.route, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", cl.method, cl.route, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestIDFrom(ctx))

	switch cl.auth {
	case explicit:
		req.Header.Set("Authorization", "Bearer "+cl.token)
	case fromStore:
		token, err := c.tokens.Get(ctx)
		switch {
		case err == nil && token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		case err != nil && !errors.Is(err, domain.ErrTokenNotFound):
			// Sent without a token; the API decides whether the route needs one.
			c.log.Warn().Err(err).Str("route", cl.route).Msg("token unavailable, sending request anonymously")
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RemoteRequestDuration.WithLabelValues(cl.route, cl.method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(cl.route, cl.method, "error").Inc()
		return fmt.Errorf("%s %s: %w", cl.method, cl.route, err)
	}
	defer resp.Body.Close()
	metrics.RemoteRequestsTotal.WithLabelValues(cl.route, cl.method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", cl.method, cl.route, err)
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("decode %s %s: %w", cl.method, cl.route, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug().
			Str("method", cl.method).
			Str("route", cl.route).
			Int("status", resp.StatusCode).
			Str("error", env.Error).
			Msg("remote api error")
		return &domain.RemoteError{Status: resp.StatusCode, Message: env.Error}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", cl.method, cl.route, err)
	}
	return nil
}

// Ping checks that the remote API answers. Any HTTP response counts; only a
// transport failure is an error.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/jobs", nil)
	if err != nil {
		return err
	}
	req.Header.Set(RequestIDHeader, requestIDFrom(ctx))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote api unreachable: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return resp.Body.Close()
}
