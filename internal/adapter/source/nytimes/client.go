package nytimes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/flicks/internal/adapter/httpclient"
	"github.com/mmcdole/flicks/internal/domain"
)

const (
	serviceName    = "nytimes"
	defaultTimeout = 15 * time.Second
)

// Client implements domain.ReviewRepository against the NYT movie reviews API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpclient.HTTPClient
	logger     *slog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the transport
func WithHTTPClient(hc httpclient.HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default transport
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// NewClient creates a new reviews API client
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimSpace(baseURL),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("api-key", c.apiKey)

	resp, err := httpclient.Get(ctx, c.httpClient, c.logger, serviceName, c.baseURL, query)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: no reviews endpoint match", domain.ErrNotFound)
	}

	if !resp.IsSuccess() {
		c.logger.Error("nytimes request error", "status", resp.StatusCode, "body", string(resp.Body))
		return nil, httpclient.StatusError(serviceName, resp)
	}

	return resp.Body, nil
}

// Reviews returns reviews for a title ordered by publication date
func (c *Client) Reviews(ctx context.Context, title string) (*domain.ReviewPage, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: movie title cannot be empty", domain.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("query", title)
	query.Set("order", "by-publication-date")

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp ReviewsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse reviews response: %v", domain.ErrUnknown, err)
	}

	return MapReviews(resp), nil
}

// Ping issues a cheap review search to verify key and connectivity
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("query", "Inception")
	_, err := c.doRequest(ctx, query)
	return err
}
