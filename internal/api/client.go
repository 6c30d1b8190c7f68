// Package api is the typed REST client for the chatbot backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/errors"
	"github.com/zhubert/botconsole/internal/logger"
)

// maxErrorBody bounds how much of a non-2xx body is kept as the detail
const maxErrorBody = 4096

// APIError is a non-2xx response from the backend
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Detail)
}

// Detail returns the text shown to the user for a failed call: the server's
// detail when the backend supplied one, otherwise the error text.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if stderrors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}

// ChatResponse is the backend's reply to a chat message
type ChatResponse struct {
	Response    string   `json:"response"`
	TypingDelay *float64 `json:"typing_delay,omitempty"`
}

// TriggersResponse is the trigger list together with the current delay settings
type TriggersResponse struct {
	Triggers    []bot.Trigger     `json:"triggers"`
	TypingDelay bot.DelaySettings `json:"typing_delay"`
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type errorBody struct {
	Detail any `json:"detail"`
}

// Client talks to the chatbot backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout leaves the
// transport default in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client using a caller-supplied HTTP client (for testing).
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Stats fetches the aggregate usage counters.
func (c *Client) Stats(ctx context.Context) (bot.Stats, error) {
	var stats bot.Stats
	err := c.do(ctx, errors.Op("api.Stats"), http.MethodGet, "/stats", nil, &stats)
	return stats, err
}

// Chat sends one message on behalf of userID and returns the bot's reply.
func (c *Client) Chat(ctx context.Context, userID, message string) (ChatResponse, error) {
	var resp ChatResponse
	err := c.do(ctx, errors.Op("api.Chat"), http.MethodPost, "/chat", chatRequest{UserID: userID, Message: message}, &resp)
	return resp, err
}

// Triggers fetches the keyword triggers and the typing-delay settings.
// Delay fields the backend leaves unset take the display defaults.
func (c *Client) Triggers(ctx context.Context) (TriggersResponse, error) {
	var resp TriggersResponse
	if err := c.do(ctx, errors.Op("api.Triggers"), http.MethodGet, "/triggers", nil, &resp); err != nil {
		return TriggersResponse{}, err
	}
	resp.TypingDelay = resp.TypingDelay.WithDefaults()
	return resp, nil
}

// AddTrigger creates a keyword trigger.
func (c *Client) AddTrigger(ctx context.Context, t bot.Trigger) error {
	return c.do(ctx, errors.Op("api.AddTrigger"), http.MethodPost, "/triggers/add", t, nil)
}

// DeleteTrigger removes the trigger with the given name.
func (c *Client) DeleteTrigger(ctx context.Context, name string) error {
	const op = errors.Op("api.DeleteTrigger")
	if strings.TrimSpace(name) == "" {
		return errors.FieldRequired(op, "name")
	}
	return c.do(ctx, op, http.MethodDelete, "/triggers/"+url.PathEscape(name), nil, nil)
}

// UpdateDelay replaces the typing-delay settings.
func (c *Client) UpdateDelay(ctx context.Context, d bot.DelaySettings) error {
	return c.do(ctx, errors.Op("api.UpdateDelay"), http.MethodPut, "/settings/delay", d, nil)
}

// do performs one request. body is JSON-encoded when non-nil and a 2xx
// response is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, op errors.Op, method, path string, body, out any) error {
	log := logger.WithComponent("api")

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.E(op, errors.KindInvalid, "failed to encode request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.E(op, errors.KindInvalid, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "method", method, "path", path, "error", err)
		return errors.RequestFailed(op, err)
	}
	defer resp.Body.Close()

	log.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp)
		log.Warn("backend returned error", "method", method, "path", path, "status", apiErr.Status, "detail", apiErr.Detail)
		return errors.E(op, errors.KindAPI, apiErr)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.DecodeFailed(op, err)
	}
	return nil
}

// parseAPIError extracts the detail from a non-2xx response: the JSON
// "detail" field, else the raw body, else the status text.
func parseAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	text := strings.TrimSpace(string(raw))

	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Detail != nil {
		switch d := eb.Detail.(type) {
		case string:
			apiErr.Detail = d
		default:
			// Validation errors arrive as structured detail; keep them readable
			if b, err := json.Marshal(d); err == nil {
				apiErr.Detail = string(b)
			}
		}
	}
	if apiErr.Detail == "" {
		apiErr.Detail = text
	}
	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
