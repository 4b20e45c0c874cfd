package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/minired/internal/client/models"
	"github.com/dmitrijs2005/minired/internal/common"
	"github.com/dmitrijs2005/minired/internal/logging"
	"github.com/google/uuid"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 16 << 20
)

// UnauthorizedHandler is called with the token of a request that was
// rejected with 401.
type UnauthorizedHandler func(token string)

// HTTPClient talks JSON to the minired backend.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	timeout        time.Duration
	log            logging.Logger
	onUnauthorized UnauthorizedHandler

	mu    sync.RWMutex
	token string
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every single request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *HTTPClient) { c.onUnauthorized = h }
}

// NewHTTPClient builds a client for baseURL (common.DefaultAPIURL when empty).
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = common.DefaultAPIURL
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: defaultTimeout,
		log:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetUnauthorizedHandler replaces the 401 hook after construction, for the
// case where the handler owner needs the client to be built first.
func (c *HTTPClient) SetUnauthorizedHandler(h UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = h
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

type call struct {
	method string
	path   string
	body   any
	out    any
	// authenticated marks calls whose 401 means the session is gone.
	authenticated bool
}

func (c *HTTPClient) do(ctx context.Context, cl call) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", cl.method, cl.path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	c.mu.RLock()
	token := c.token
	onUnauthorized := c.onUnauthorized
	c.mu.RUnlock()

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	log := c.log.With("method", cl.method, "path", cl.path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", cl.method, cl.path, ctx.Err())
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		log.Warn(ctx, "reading response failed", "error", err)
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var er models.ErrorResponse
		if json.Unmarshal(data, &er) == nil {
			apiErr.Message = er.Error
		}
		if resp.StatusCode == http.StatusUnauthorized && cl.authenticated && token != "" && onUnauthorized != nil {
			log.Info(ctx, "token rejected by server")
			onUnauthorized(token)
		}
		return apiErr
	}

	if cl.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if len(data) == 0 {
		return fmt.Errorf("decode %s %s response: %w", cl.method, cl.path, io.ErrUnexpectedEOF)
	}
	if err := json.Unmarshal(data, cl.out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", cl.method, cl.path, err)
	}
	return nil
}
