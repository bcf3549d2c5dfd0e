// Package client wraps the Blue Jays backend's REST surface into typed
// resource modules sharing one configured HTTP client.
//
// Every function issues exactly one HTTP call and returns the innermost
// payload of the server's {data: ...} envelope, or an error:
// *core.ValidationError (never reached the network), core.ErrUnauthenticated
// (401; session already torn down), or *core.APIError for everything else.
// Notification is the caller's business; no function here talks to the user.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/core/session"
)

const fallbackErrMsg = "an unexpected error occurred"

type (
	// Client is the single point of outbound HTTP configuration: base URL,
	// auth header injection, and global 401 teardown.
	Client struct {
		http    *http.Client
		baseURL string
		store   *session.Store
		logger  core.Logger

		// onUnauthorized runs after a 401 response has cleared the stored
		// token; the portal uses it to force navigation back to login.
		onUnauthorized func()
	}

	Option func(*Client)
)

// WithHTTPClient substitutes the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithOnUnauthorized registers the global 401 hook. The Client is the only
// component permitted to perform session teardown; the hook only observes it.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(conf *core.Config, store *session.Store, logger core.Logger, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: conf.RequestTimeout},
		baseURL: strings.TrimRight(conf.APIBaseURL, "/"),
		store:   store,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &authTransport{base: base, store: store, logger: logger}
	return c
}

// Store exposes the session store backing this client.
func (c *Client) Store() *session.Store { return c.store }

// authTransport is the request interceptor: it attaches the stored auth token
// verbatim as the Authorization header (the token already carries any scheme
// prefix) and tags each request with an X-Request-ID for log correlation.
// An absent token is only a diagnostic; the server gets to reject the call.
type authTransport struct {
	base   http.RoundTripper
	store  *session.Store
	logger core.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if token, ok := t.store.Lookup(session.KeyToken); ok {
		req.Header.Set("Authorization", token)
	} else {
		t.logger.Warn("client: no auth token in session store; request will be unauthenticated",
			map[string]interface{}{"path": req.URL.Path})
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(req)
}

// do issues one HTTP call and returns the raw response body.
// 401 triggers global session teardown; other failures map to *core.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &core.APIError{Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// no response received: network/config failure
		c.logger.Error("client: request failed", err, map[string]interface{}{"method": method, "path": path})
		return nil, &core.APIError{Message: fallbackErrMsg}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("client: reading response failed", err)
		return nil, &core.APIError{Message: fallbackErrMsg}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.teardown(path)
		return nil, core.ErrUnauthenticated
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &core.APIError{Status: resp.StatusCode, Message: serverMessage(data)}
		c.logger.Error("client: request rejected", apiErr, map[string]interface{}{"method": method, "path": path})
		return nil, apiErr
	}
	return data, nil
}

// teardown clears the stored token and fires the global hook. It runs for any
// 401, regardless of which resource module issued the call.
func (c *Client) teardown(path string) {
	if err := c.store.ClearToken(); err != nil {
		c.logger.Error("client: clearing token failed", err)
	}
	c.logger.Warn("client: session expired, signing out", map[string]interface{}{"path": path})
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// serverMessage extracts the backend's {message: string} error envelope,
// falling back to a generic string.
func serverMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return fallbackErrMsg
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &core.APIError{Message: err.Error()}
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body), "application/json")
}

func (c *Client) putJSON(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &core.APIError{Message: err.Error()}
	}
	return c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(body), "application/json")
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "")
}

// Attachment is a binary part (photo, document) of a multipart submission.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// postMultipart submits fields + attachments as multipart/form-data.
// All scalar fields arrive string-coerced, matching the backend's expectation.
func (c *Client) postMultipart(ctx context.Context, method, path string, fields map[string]string, files []Attachment) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, &core.APIError{Message: err.Error()}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, &core.APIError{Message: err.Error()}
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, &core.APIError{Message: err.Error()}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &core.APIError{Message: err.Error()}
	}
	return c.do(ctx, method, path, nil, &buf, w.FormDataContentType())
}
