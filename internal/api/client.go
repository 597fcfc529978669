package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"bookcalendar/internal/session"
)

// Client is the authenticated transport every screen goes through. It owns
// attaching the bearer credential, unwrapping the response envelope and the
// uniform 401 reaction. It never retries: a failed call surfaces to the
// user, who re-triggers the action.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	session *session.Manager
}

// New builds a client against baseURL. A zero timeout falls back to 30s.
func New(baseURL string, timeout time.Duration, sess *session.Manager, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		session: sess,
	}
}

// envelope is the backend's uniform response wrapping: {data} on success,
// {message} alongside a non-2xx status on rejection.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPatch, path, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, true)
}

// public posts without a session (login, register).
func (c *Client) postOpen(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) call(ctx context.Context, method, path string, body, out any, authed bool) error {
	var token string
	if authed {
		var ok bool
		token, ok = c.session.Token()
		if !ok {
			// Never hit the network without a credential; route to login.
			c.session.HandleUnauthorized()
			return ErrNoSession
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else if method != http.MethodGet && method != http.MethodDelete {
		reader = strings.NewReader("{}")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &Error{Kind: KindNetwork}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork}
	}

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	// The clear-and-reroute policy only applies to calls made with a
	// credential; a 401 on an open call (login, register) is an ordinary
	// rejection and must not touch the stored session.
	if authed && resp.StatusCode == http.StatusUnauthorized {
		c.session.HandleUnauthorized()
		return &Error{Kind: KindUnauthorized, Status: resp.StatusCode}
	}

	var env envelope
	if len(respBody) > 0 {
		// A non-JSON body is tolerated; the envelope just stays empty.
		_ = json.Unmarshal(respBody, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode < 500 && env.Message != "" {
			return &Error{Kind: KindRejected, Status: resp.StatusCode, Message: env.Message}
		}
		return &Error{Kind: KindFault, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	// Missing or null data means an empty result, never an error.
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
