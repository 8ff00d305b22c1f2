package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/http/handlers/response"
)

const DefaultBaseURL = "http://127.0.0.1:4317"

// Client speaks to the command surface of a running reminder.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	return &Client{baseURL: u, httpClient: &http.Client{Timeout: timeout}}, nil
}

// APIError is a non-2xx answer of the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.Status, e.Message)
}

func (c *Client) GetInterval(ctx context.Context) (reminder.Interval, error) {
	var settings response.Settings
	if err := c.do(ctx, http.MethodGet, "settings", nil, &settings); err != nil {
		return 0, err
	}
	return reminder.Interval(settings.Interval), nil
}

func (c *Client) SetInterval(ctx context.Context, interval reminder.Interval) (reminder.Interval, error) {
	var settings response.Settings
	body := response.Settings{Interval: interval.Seconds()}
	if err := c.do(ctx, http.MethodPut, "settings", body, &settings); err != nil {
		return 0, err
	}
	return reminder.Interval(settings.Interval), nil
}

func (c *Client) ShowWindow(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "window/show", nil, nil)
}

func (c *Client) HideWindow(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "window/hide", nil, nil)
}

func (c *Client) ShowReminder(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "reminder/show", nil, nil)
}

func (c *Client) Status(ctx context.Context) (response.Status, error) {
	var status response.Status
	err := c.do(ctx, http.MethodGet, "status", nil, &status)
	return status, err
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		} else {
			apiErr.Message = string(bytes.TrimSpace(raw))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
