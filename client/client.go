// Package client talks to the consultation backend on behalf of the terminal client.
package client

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

	"legalgpt-portal/models"
)

const (
	DefaultBaseURL  = "http://localhost:7860"
	DefaultEndpoint = "/api/predict"
	defaultTimeout  = 120 * time.Second
)

// APIConfig locates the consultation backend
type APIConfig struct {
	BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// DefaultAPIConfig returns the local development backend
func DefaultAPIConfig() APIConfig {
	return APIConfig{BaseURL: DefaultBaseURL, Endpoint: DefaultEndpoint}
}

// URL joins base URL and endpoint
func (c APIConfig) URL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(c.Endpoint, "/")
}

// APIError is a failure reported by the backend in its error envelope
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("backend error: status %d", e.Status)
	}
	return fmt.Sprintf("backend error %s: %s", e.Code, e.Message)
}

var ErrEmptyQuery = errors.New("query is empty")

// Client sends consultation requests to the backend
type Client struct {
	config APIConfig
	http   *http.Client
	apiKey string
}

// Option is a functional option for Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithAPIKey sets the key sent in the X-API-Key header
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// New creates a new backend client. Empty config fields fall back to the defaults.
func New(config APIConfig, opts ...Option) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	c := &Client{
		config: config,
		http:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the backend location
func (c *Client) Config() APIConfig {
	return c.config
}

type envelope struct {
	Success bool                 `json:"success"`
	Data    *models.Consultation `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Predict sends a consultation request and returns the answered consultation. A streamed
// answer is collected in full.
func (c *Client) Predict(ctx context.Context, req models.ConsultationRequest) (*models.Consultation, error) {
	return c.PredictStream(ctx, req, nil)
}

// PredictStream sends a consultation request. When the backend streams the answer, each
// chunk is passed to onChunk as it arrives; onChunk may be nil.
func (c *Client) PredictStream(
	ctx context.Context,
	req models.ConsultationRequest,
	onChunk func(string),
) (*models.Consultation, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream, application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK && strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		return readStream(resp.Body, onChunk)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success || resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}
	if env.Data == nil {
		return nil, errors.New("backend returned no consultation")
	}
	return env.Data, nil
}
