// Package civitai provides access to the Civitai registry API.
package civitai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"modelmeta/internal/logging"
)

// Sentinel errors for classifying registry failures. Lookup misses carry
// ErrNotFound so callers can degrade gracefully; transport and decode failures
// stay distinguishable because they indicate the registry was unreachable or
// returned garbage rather than "no record".
var (
	ErrNotFound  = errors.New("civitai: record not found")
	ErrTransport = errors.New("civitai: request failed")
	ErrDecode    = errors.New("civitai: invalid response payload")
)

const defaultTimeout = 30 * time.Second

// Client provides access to the Civitai API for metadata lookups.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for lookup failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "civitai")
		}
	}
}

// New creates a Civitai client. A non-positive timeout selects the default.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("civitai base url required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// VersionByHash fetches the model version record indexed by a file digest.
// The record is returned verbatim so sidecars preserve every field the
// registry reports. A non-200 status maps to ErrNotFound.
func (c *Client) VersionByHash(ctx context.Context, fileDigest string) (json.RawMessage, error) {
	fileDigest = strings.TrimSpace(fileDigest)
	if fileDigest == "" {
		return nil, errors.New("digest must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/model-versions/by-hash/" + url.PathEscape(fileDigest))
	if err != nil {
		return nil, fmt.Errorf("parse registry url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("%w: model version by hash (latency=%v): %w", ErrTransport, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.WithContext(ctx, c.logger).Error("failed to fetch model version",
			logging.String(logging.FieldDigest, fileDigest),
			logging.Int(logging.FieldStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: model version for hash %s returned %d", ErrNotFound, fileDigest, resp.StatusCode)
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: model version response: %w", ErrDecode, err)
	}
	return payload, nil
}

// ModelByID fetches the model record for a registry model identifier.
// A non-200 status maps to ErrNotFound.
func (c *Client) ModelByID(ctx context.Context, modelID int64) (json.RawMessage, error) {
	if modelID <= 0 {
		return nil, errors.New("model id must be positive")
	}
	endpoint, err := url.Parse(c.baseURL + "/models/" + strconv.FormatInt(modelID, 10))
	if err != nil {
		return nil, fmt.Errorf("parse registry url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("%w: model by id (latency=%v): %w", ErrTransport, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.WithContext(ctx, c.logger).Error("failed to fetch model",
			logging.Int64(logging.FieldModelID, modelID),
			logging.Int(logging.FieldStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: model %d returned %d", ErrNotFound, modelID, resp.StatusCode)
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: model response: %w", ErrDecode, err)
	}
	return payload, nil
}
