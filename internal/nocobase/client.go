package nocobase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nocogo/internal/config"
)

// Client talks to a NocoBase server using its action-style endpoint
// convention ({resource}:{action}). Every request carries the bearer
// token; a handful of operations retry alternate request shapes when
// the server rejects the first one, see requestFallback.
//
// The zero value is not usable; construct with New or FromEnv. A Client
// is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client from the given configuration.
func New(cfg *config.Config) (*Client, error) {
	return NewWithLogger(cfg, zap.NewNop())
}

// NewWithLogger creates a client that logs request activity at debug
// level to the given logger.
func NewWithLogger(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nocobase: config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:   strings.TrimSpace(cfg.Token),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// FromEnv creates a client from an env file and the process
// environment, see config.Load.
func FromEnv(envPath string) (*Client, error) {
	cfg, err := config.Load(envPath)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// BaseURL returns the normalized API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// attempt is one request shape tried against the server.
type attempt struct {
	params Params
	body   any
}

// request issues a single-shape request.
func (c *Client) request(ctx context.Context, method, path string, params Params, body any) (Response, error) {
	return c.requestFallback(ctx, method, path, []attempt{{params: params, body: body}})
}

// requestFallback issues the attempts in order. An attempt that fails
// with an HTTP 4xx hands over to the next shape; any other outcome is
// final. A 4xx on the last shape is surfaced to the caller as-is, and a
// 5xx or network failure stops the sequence immediately.
func (c *Client) requestFallback(ctx context.Context, method, path string, attempts []attempt) (Response, error) {
	var lastErr error
	for i, att := range attempts {
		resp, err := c.do(ctx, method, path, att.params, att.body)
		if err == nil {
			return resp, nil
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.IsClientError() {
			return nil, err
		}
		lastErr = err
		if i < len(attempts)-1 {
			c.logger.Debug("request shape rejected, trying next",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", apiErr.StatusCode),
				zap.Int("attempt", i+1),
				zap.Int("remaining", len(attempts)-i-1))
		}
	}
	return nil, lastErr
}

// do performs one HTTP round trip and decodes the JSON response.
func (c *Client) do(ctx context.Context, method, path string, params Params, body any) (Response, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		query, err := encodeParams(params)
		if err != nil {
			return nil, err
		}
		endpoint += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	c.logger.Debug("nocobase request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("nocobase response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Response{}, nil
	}
	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// encodeParams renders query parameters with deterministic key order.
func encodeParams(params Params) (string, error) {
	q := url.Values{}
	for key, value := range params {
		s, err := paramString(value)
		if err != nil {
			return "", fmt.Errorf("failed to encode query parameter %s: %w", key, err)
		}
		q.Set(key, s)
	}
	return q.Encode(), nil
}

// paramString renders one query parameter value. Scalars keep their
// plain form; composite values are JSON-encoded so filter objects
// survive the query string.
func paramString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		data, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return fmt.Sprint(value), nil
	}
}

func requireCollection(collection string) error {
	if strings.TrimSpace(collection) == "" {
		return ErrEmptyCollection
	}
	return nil
}

func requirePK(pk any) error {
	if pk == nil || strings.TrimSpace(fmt.Sprint(pk)) == "" {
		return ErrEmptyPK
	}
	return nil
}
