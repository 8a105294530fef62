package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Client calls an HTTP inference endpoint serving the trained model.
type Client struct {
	url        string
	apiKey     string
	client     *http.Client
	maxRetries int
	backoff    func(attempt int) time.Duration
}

// Config configures the inference client.
type Config struct {
	URL        string
	APIKeyEnv  string
	Timeout    time.Duration
	MaxRetries int
}

// NewClient creates an inference client. The API key is optional; when APIKeyEnv is set the
// variable must be present.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("remote model url is empty")
	}
	var key string
	if cfg.APIKeyEnv != "" {
		key = os.Getenv(cfg.APIKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
		}
	}
	t := cfg.Timeout
	if t == 0 {
		t = 10 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		url:        cfg.URL,
		apiKey:     key,
		client:     &http.Client{Timeout: t},
		maxRetries: retries,
		backoff:    retryDelay,
	}, nil
}

// Name returns the identifier of this model implementation.
func (c *Client) Name() string { return "remote" }

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions []json.RawMessage `json:"predictions"`
}

// Predict posts the rows and returns one prediction per row. Rate limiting and 5xx answers are retried.
func (c *Client) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	body, err := json.Marshal(predictRequest{Instances: rows})
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, c.wait(attempt-1, lastErr)); err != nil {
				return nil, err
			}
		}
		out, retry, err := c.do(ctx, body, requestID, len(rows))
		if err == nil {
			return out, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("remote predict failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

type statusError struct {
	status     string
	retryAfter time.Duration
}

func (e *statusError) Error() string { return "remote predict failed: " + e.status }

func (c *Client) wait(attempt int, lastErr error) time.Duration {
	var se *statusError
	if errors.As(lastErr, &se) && se.retryAfter > 0 {
		return se.retryAfter
	}
	return c.backoff(attempt)
}

func (c *Client) do(ctx context.Context, body []byte, requestID string, n int) ([]float64, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		se := &statusError{status: resp.Status}
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			se.retryAfter = time.Duration(secs) * time.Second
		}
		return nil, true, se
	}
	if resp.StatusCode >= 300 {
		return nil, false, &statusError{status: resp.Status}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	var out predictResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, false, fmt.Errorf("decode predictions: %w", err)
	}
	if len(out.Predictions) != n {
		return nil, false, fmt.Errorf("got %d predictions for %d rows", len(out.Predictions), n)
	}
	preds := make([]float64, n)
	for i, raw := range out.Predictions {
		v, err := scalar(raw)
		if err != nil {
			return nil, false, fmt.Errorf("prediction %d: %w", i, err)
		}
		preds[i] = v
	}
	return preds, false, nil
}

// scalar accepts either a number or a single-element array (multi-output regressors).
func scalar(raw json.RawMessage) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, nil
	}
	var arr []float64
	if err := json.Unmarshal(raw, &arr); err != nil {
		return 0, err
	}
	if len(arr) == 0 {
		return 0, errors.New("empty prediction")
	}
	return arr[0], nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	base := 200 * time.Millisecond
	// exponential backoff capped at 5s
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
