package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/flicks/internal/adapter/httpclient"
	"github.com/mmcdole/flicks/internal/domain"
)

const (
	serviceName    = "omdb"
	defaultTimeout = 15 * time.Second
)

// Client implements domain.CatalogRepository against the OMDb API
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

// NewClient creates a new OMDb API client
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

// doRequest performs an authenticated GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("apikey", c.apiKey)

	resp, err := httpclient.Get(ctx, c.httpClient, c.logger, serviceName, c.baseURL, query)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		c.logger.Error("omdb request error", "status", resp.StatusCode, "body", string(resp.Body))
		return nil, httpclient.StatusError(serviceName, resp)
	}

	return resp.Body, nil
}

// Search returns one page of keyword search results
func (c *Client) Search(ctx context.Context, keyword string, category domain.Category, page int) (*domain.ResultPage, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", domain.ErrInvalidInput)
	}
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("s", keyword)
	query.Set("type", string(category))
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse search response: %v", domain.ErrUnknown, err)
	}

	return MapSearchPage(resp), nil
}

// GetByID returns the full detail record for an IMDb id
func (c *Client) GetByID(ctx context.Context, id string) (*domain.ItemDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: item id cannot be empty", domain.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("i", id)
	query.Set("plot", "full")

	return c.lookup(ctx, query)
}

// GetByTitle returns the best match for a title within a category
func (c *Client) GetByTitle(ctx context.Context, title string, category domain.Category) (*domain.ItemDetail, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("t", title)
	query.Set("type", string(category))

	return c.lookup(ctx, query)
}

func (c *Client) lookup(ctx context.Context, query url.Values) (*domain.ItemDetail, error) {
	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse detail response: %v", domain.ErrUnknown, err)
	}

	return MapDetail(resp), nil
}

// Ping issues a cheap title lookup to verify key and connectivity
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("t", "Inception")
	_, err := c.doRequest(ctx, query)
	return err
}
