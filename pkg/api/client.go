package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/pkg/config"
	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
	"github.com/openlearn-labs/lms-console/pkg/logger"
)

// TokenProvider supplies the bearer token attached to every request. An empty
// token means the request goes out unauthenticated.
type TokenProvider interface {
	AccessToken() string
}

// Client is the shared HTTP client every resource binding goes through. It
// owns auth header injection, request correlation ids, envelope unwrapping
// and the error taxonomy. It never retries and never queues.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
	tokens  TokenProvider
	logger  *zap.Logger
}

// New builds a Client from config.
func New(cfg config.APIConfig, tokens TokenProvider, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		prefix:  cfg.Prefix,
		tokens:  tokens,
		logger:  log,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &logger.RoundTripper{Log: log},
		},
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + c.prefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do issues one request. A non-nil body is JSON-encoded; a non-nil out
// receives the decoded response body. Transport failures map to
// NETWORK_ERROR, non-2xx responses to an API error carrying the server
// message.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	raw, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrAPI.Code, 0, "unexpected response body")
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, 0, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, 0, "build request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrNetwork.Code, 0, "could not reach the server")
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrNetwork.Code, 0, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp.StatusCode, raw)
	}
	return raw, nil
}

// Get issues a GET and decodes the body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// GetCollection issues a GET against a list endpoint and unwraps the
// inconsistent collection envelope into raw items plus a total count.
func (c *Client) GetCollection(ctx context.Context, path string, query url.Values) (json.RawMessage, int, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, 0, err
	}
	return UnwrapCollection(raw)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE. 200 and 204 both count as success.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// apiError converts a non-2xx response into a typed error, preferring the
// server-supplied message fields in priority order error, message, detail.
func apiError(status int, body []byte) *apperrors.Error {
	message := serverMessage(body)
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	code := apperrors.ErrAPI.Code
	switch status {
	case http.StatusUnauthorized:
		code = apperrors.ErrUnauthorized.Code
	case http.StatusForbidden:
		code = apperrors.ErrForbidden.Code
	case http.StatusNotFound:
		code = apperrors.ErrNotFound.Code
	case http.StatusConflict:
		code = apperrors.ErrConflict.Code
	}
	return apperrors.New(code, status, message)
}

func serverMessage(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message", "detail"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		// Some endpoints nest the message: {"error": {"message": "..."}}.
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return ""
}
