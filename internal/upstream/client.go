// Package upstream is the console's typed client for the platform API. Every
// record the console shows is owned by that API; this package only moves JSON
// across and normalises failures.
package upstream

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

	"go.uber.org/zap"

	"github.com/contentpilot/console-api/pkg/config"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

// Client issues authenticated requests against the platform API base URL.
// It does not retry and does not cache; callers own both concerns.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New builds a Client from the upstream configuration.
func New(cfg config.UpstreamConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// request issues one round trip. A non-2xx response becomes an error carrying
// the response body text verbatim, so upstream diagnostics reach the user
// instead of a generic transport failure. On 2xx, JSON bodies are decoded
// into out; non-JSON bodies are returned as raw text when out is *string.
func (c *Client) request(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	contentType := ""
	switch payload := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(payload.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request body")
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json; charset=utf-8"
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return appErrors.Wrap(ctx.Err(), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "request cancelled")
		}
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, appErrors.ErrUpstreamUnavailable.Message)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "read upstream response")
	}

	c.log.Debug("upstream_request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return appErrors.FromUpstream(resp.StatusCode, string(raw))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status,
				fmt.Sprintf("decode upstream response for %s %s", method, path))
		}
		return nil
	}

	if text, ok := out.(*string); ok {
		*text = string(raw)
		return nil
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, query url.Values, out interface{}) error {
	return c.request(ctx, http.MethodGet, path, token, query, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.request(ctx, http.MethodPost, path, token, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path, token string, body, out interface{}) error {
	return c.request(ctx, http.MethodPatch, path, token, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.request(ctx, http.MethodDelete, path, token, nil, nil, nil)
}
