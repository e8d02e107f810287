// Client for the subtitle-processing backend's task endpoints.
package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/vtx/internal/shared"
	"golang.org/x/time/rate"
)

// startRequest is the body for task-initiation endpoints.
type startRequest struct {
	Task     string `json:"task,omitempty"`
	VTTFile  string `json:"vtt_file"`
	MediaDir string `json:"mediaDir"`
}

// cancelRequest is the body for POST /api/cancel_subtitle_task.
type cancelRequest struct {
	Task     string `json:"task"`
	VTTFile  string `json:"vtt_file"`
	MediaDir string `json:"mediaDir"`
}

// Client fires task requests at the backend. Outcomes arrive over the
// push channel, not the HTTP response: a 2xx only means the backend
// accepted the job.
type Client struct {
	baseURL    string
	mediaDir   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(baseURL, mediaDir string, requestsPerSec int, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if requestsPerSec <= 0 {
		requestsPerSec = 5
	}

	return &Client{
		baseURL:    baseURL,
		mediaDir:   mediaDir,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSec), requestsPerSec),
	}
}

// Start asks the backend to run a task against the given file. A non-2xx
// response surfaces the backend's inline error text.
func (c *Client) Start(ctx context.Context, kind Kind, vttFile string) error {
	body := startRequest{VTTFile: vttFile, MediaDir: c.mediaDir}
	if kind.Endpoint() == "/api/process_subtitle" {
		body.Task = kind.Label()
	}
	return c.post(ctx, kind.Endpoint(), body)
}

// Cancel requests cancellation of a running task. The local record stays
// active until the cancelled push message arrives.
func (c *Client) Cancel(ctx context.Context, kind Kind, vttFile string) error {
	body := cancelRequest{Task: kind.Label(), VTTFile: vttFile, MediaDir: c.mediaDir}
	return c.post(ctx, "/api/cancel_subtitle_task", body)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit wait: %v", shared.ErrNetworkFailure, err)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %s returned %d: %s", shared.ErrRequestRejected, path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}
