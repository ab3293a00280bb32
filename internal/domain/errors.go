package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for gateway operations
var (
	// ErrInvalidInput indicates an empty query, id or title reached the gateway
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthFailed indicates the upstream rejected the API key
	ErrAuthFailed = errors.New("invalid API key, please check your configuration")

	// ErrRateLimited indicates the upstream returned 429
	ErrRateLimited = errors.New("API rate limit exceeded, please try again later")

	// ErrTimeout indicates the request deadline passed
	ErrTimeout = errors.New("request timeout, please try again")

	// ErrNetworkUnavailable indicates the upstream could not be reached
	ErrNetworkUnavailable = errors.New("network error, please check your connection")

	// ErrNotFound indicates a detail lookup reported no such item
	ErrNotFound = errors.New("not found")

	// ErrUnknown covers every other upstream failure
	ErrUnknown = errors.New("unexpected upstream failure")
)

// UpstreamError carries an explicit error string reported by the remote service
type UpstreamError struct {
	Service string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Service != "" {
		return e.Service + ": " + e.Message
	}
	return e.Message
}

var userFacing = []error{
	ErrAuthFailed,
	ErrRateLimited,
	ErrTimeout,
	ErrNetworkUnavailable,
}

// UserMessage renders err as the single human-readable message stored in state.
// fallback is used for errors outside the taxonomy.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) && upstream.Message != "" {
		return upstream.Message
	}

	for _, sentinel := range userFacing {
		if errors.Is(err, sentinel) {
			return capitalize(sentinel.Error())
		}
	}

	if fallback != "" {
		return fallback
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
