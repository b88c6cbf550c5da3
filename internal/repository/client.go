package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"clinic-manager/pkg/apperror"
	"clinic-manager/pkg/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client issues JSON requests against the clinic API on behalf of the
// current session. It is shared by every collection repository.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	log        *logrus.Logger
}

type ClientOption func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the transport timeout. Zero means none.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

func NewClient(baseURL string, sess *session.Session, log *logrus.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		session:    sess,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method string
	path   string
	body   any
	// public requests go out without a token when signed out
	public bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	op := req.method + " " + req.path

	token, authenticated := c.session.Token()
	if !authenticated && !req.public {
		return apperror.New(apperror.KindUnauthenticated, op, "no session token")
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return &apperror.Error{Kind: apperror.KindUnexpected, Op: op, Message: "failed to encode request body", Err: err}
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return &apperror.Error{Kind: apperror.KindUnexpected, Op: op, Message: "failed to build request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)
	entry := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"op":         op,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		entry.Warnf("Request failed: %v", err)
		return &apperror.Error{Kind: apperror.KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		entry.Warnf("Failed to read response: %v", err)
		return &apperror.Error{Kind: apperror.KindNetwork, Op: op, Status: resp.StatusCode, Err: err}
	}

	entry = entry.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		appErr := classifyResponse(op, resp.StatusCode, data)
		entry.Warnf("Request rejected: %v", appErr)
		return appErr
	}
	entry.Debug("Request completed")

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		entry.Warnf("Failed to decode response: %v", err)
		return &apperror.Error{Kind: apperror.KindUnexpected, Op: op, Status: resp.StatusCode, Message: "failed to decode response", Err: err}
	}
	return nil
}
