// Package httpclient holds the request plumbing shared by the upstream API clients:
// a swappable transport and the mapping of HTTP failures onto domain errors.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/flicks/internal/domain"
)

// HTTPClient is the subset of *http.Client used by the API clients
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is a fully read upstream response
type Response struct {
	StatusCode int
	Body       []byte
}

// Get issues a GET for baseURL?query and reads the whole body.
// Transport failures are classified; HTTP status codes are left to the caller.
func Get(ctx context.Context, client HTTPClient, logger *slog.Logger, service, baseURL string, query url.Values) (*Response, error) {
	reqURL := baseURL
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", baseURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("upstream request", "service", service, "path", req.URL.Path, "params", redact(query))

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		classified := ClassifyTransportError(ctx, err)
		logger.Error("upstream request failed", "service", service, "error", err)
		return nil, classified
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", ClassifyTransportError(ctx, err))
	}

	logger.Debug("upstream response", "service", service, "status", resp.StatusCode, "elapsed", time.Since(start))

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// ClassifyTransportError maps a failed round trip onto ErrTimeout or ErrNetworkUnavailable
func ClassifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	return fmt.Errorf("%w: %v", domain.ErrNetworkUnavailable, err)
}

// errorBody matches the {"Error": "..."} payloads both upstreams use
type errorBody struct {
	Error   string `json:"Error"`
	Message string `json:"message"`
	Fault   struct {
		FaultString string `json:"faultstring"`
	} `json:"fault"`
}

// StatusError classifies a non-2xx response
func StatusError(service string, resp *Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrAuthFailed
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	}

	var eb errorBody
	if json.Unmarshal(resp.Body, &eb) == nil {
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = eb.Fault.FaultString
		}
		if msg != "" {
			return &domain.UpstreamError{Service: service, Message: msg}
		}
	}

	return fmt.Errorf("%w: %s returned status %d", domain.ErrUnknown, service, resp.StatusCode)
}

// IsSuccess reports whether the status is 2xx
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// redact drops credentials from query parameters before logging
func redact(query url.Values) string {
	if query == nil {
		return ""
	}
	safe := url.Values{}
	for k, v := range query {
		if k == "apikey" || k == "api-key" {
			continue
		}
		safe[k] = v
	}
	return safe.Encode()
}
