package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/chromestatus/csclient/internal/common"
	"github.com/chromestatus/csclient/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// CSClient talks to the ChromeStatus REST API.
type CSClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	limiter     *rate.Limiter
	logger      logging.Logger
	now         func() time.Time
	timeout     time.Duration

	mu      sync.Mutex
	token   models.Token
	refresh singleflight.Group
}

type Option func(*CSClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *CSClient) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *CSClient) { c.tokenSource = ts }
}

// WithRateLimiter makes every request wait for l before it is sent.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *CSClient) { c.limiter = l }
}

func WithLogger(l logging.Logger) Option {
	return func(c *CSClient) { c.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(c *CSClient) { c.now = now }
}

// WithRequestTimeout bounds each call, token refresh included.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *CSClient) { c.timeout = d }
}

// NewCSClient returns a client for the API rooted at baseURL, for example
// "https://chromestatus.com/api/v0".
func NewCSClient(baseURL string, opts ...Option) *CSClient {
	c := &CSClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logging.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		jar, _ := cookiejar.New(nil)
		c.httpClient = &http.Client{Jar: jar}
	}
	return c
}

func (c *CSClient) BaseURL() string {
	return c.baseURL
}

// doFetch sends method to baseURL+resource. A non-nil body is sent as JSON.
// With includeToken the token is validated, refreshed if needed, and sent as
// a bearer credential. The response is decoded into out after the XSSI
// prefix is removed; out may be nil when the caller ignores the payload.
func (c *CSClient) doFetch(ctx context.Context, resource, method string, body any, includeToken bool, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, resource, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+resource, payload)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, resource, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	log := c.logger.With("request_id", requestID, "method", method, "resource", resource)

	if includeToken {
		if err := c.EnsureTokenIsValid(ctx); err != nil {
			log.Warn(ctx, "token refresh failed", "error", err)
			return err
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+c.Token().Value)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: %w", method, resource, err)
		}
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err)
		return TransportError(resource, method, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", c.now().Sub(start))

	if err := DecodeResponse(resp, resource, method, out); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			log.Warn(ctx, "error response", "status", resp.StatusCode)
		}
		return err
	}
	return nil
}

func (c *CSClient) doGet(ctx context.Context, resource string, out any) error {
	return c.doFetch(ctx, resource, http.MethodGet, nil, true, out)
}

func (c *CSClient) doPost(ctx context.Context, resource string, body, out any) error {
	return c.doFetch(ctx, resource, http.MethodPost, body, true, out)
}

func (c *CSClient) doPatch(ctx context.Context, resource string, body, out any) error {
	return c.doFetch(ctx, resource, http.MethodPatch, body, true, out)
}

func (c *CSClient) doDelete(ctx context.Context, resource string, out any) error {
	return c.doFetch(ctx, resource, http.MethodDelete, nil, true, out)
}
