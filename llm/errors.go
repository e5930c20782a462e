package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyMessages is returned before any network call when a request has no messages.
var ErrEmptyMessages = &Error{
	Type:    ErrorTypeInvalidRequest,
	Message: "messages must not be empty",
}

// Error represents a provider-neutral LLM error.
type Error struct {
	Type        ErrorType
	Provider    string
	Message     string
	Retryable   bool
	RetryAfter  *time.Duration
	StatusCode  int
	ProviderErr error // Original provider-specific error
}

// ErrorType represents the category of error.
type ErrorType string

const (
	ErrorTypeRateLimit       ErrorType = "rate_limit"
	ErrorTypeRequestTooLarge ErrorType = "request_too_large"
	ErrorTypeInvalidRequest  ErrorType = "invalid_request"
	ErrorTypeProvider        ErrorType = "provider"
	ErrorTypeNetwork         ErrorType = "network"
	ErrorTypeTimeout         ErrorType = "timeout"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.ProviderErr != nil {
		return msg + ": " + e.ProviderErr.Error()
	}
	return msg
}

// Unwrap returns the underlying provider error.
func (e *Error) Unwrap() error {
	return e.ProviderErr
}

// Is matches errors of the same type and message, so errors.Is(err, ErrEmptyMessages) works
// for copies that carry a provider name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type && t.Message == e.Message
}

// WithProvider returns a copy of e tagged with the provider name.
func (e *Error) WithProvider(provider string) *Error {
	cp := *e
	cp.Provider = provider
	return &cp
}

// IsRateLimitError checks if an error is a rate limit error.
func IsRateLimitError(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == ErrorTypeRateLimit
	}
	return false
}

// IsRequestTooLargeError checks if an error is a request too large error.
func IsRequestTooLargeError(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == ErrorTypeRequestTooLarge
	}
	return false
}

// IsRetryableError checks if an error is retryable.
// Nothing in this module retries; the flag is informational for callers.
func IsRetryableError(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Retryable
	}
	return false
}

// ExtractRetryAfter extracts the retry-after duration from an error.
func ExtractRetryAfter(err error) *time.Duration {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.RetryAfter
	}
	return nil
}

// NewRateLimitError creates a new rate limit error.
func NewRateLimitError(message string, retryAfter *time.Duration, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeRateLimit,
		Message:     message,
		Retryable:   true,
		RetryAfter:  retryAfter,
		StatusCode:  http.StatusTooManyRequests,
		ProviderErr: providerErr,
	}
}

// NewRequestTooLargeError creates a new request too large error.
func NewRequestTooLargeError(message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeRequestTooLarge,
		Message:     message,
		Retryable:   false,
		StatusCode:  http.StatusRequestEntityTooLarge,
		ProviderErr: providerErr,
	}
}

// NewInvalidRequestError creates an error for requests rejected before or by the provider.
func NewInvalidRequestError(message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeInvalidRequest,
		Message:     message,
		ProviderErr: providerErr,
	}
}

// NewProviderError creates a new provider error.
func NewProviderError(message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeProvider,
		Message:     message,
		Retryable:   false,
		ProviderErr: providerErr,
	}
}

// StatusError is returned by the raw HTTP adapters for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// HandleError normalizes an adapter failure into an *Error.
// The vendor's message is extracted from a StatusError body when present;
// otherwise the raw error is surfaced.
func HandleError(provider string, err error) error {
	if err == nil {
		return nil
	}

	var llmErr *Error
	if errors.As(err, &llmErr) {
		if llmErr.Provider == "" {
			return llmErr.WithProvider(provider)
		}
		return llmErr
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		if errors.Is(err, context.DeadlineExceeded) {
			return &Error{Type: ErrorTypeTimeout, Provider: provider, Message: "request timed out", Retryable: true, ProviderErr: err}
		}
		return &Error{Type: ErrorTypeNetwork, Provider: provider, Message: "request failed", Retryable: true, ProviderErr: err}
	}

	message := VendorMessage(statusErr.Body)
	if message == "" {
		message = http.StatusText(statusErr.StatusCode)
	}
	return FromStatus(provider, statusErr.StatusCode, message, RetryAfterFromHeader(statusErr.Header), err)
}

// FromStatus maps an HTTP status code to the error taxonomy.
func FromStatus(provider string, status int, message string, retryAfter *time.Duration, cause error) *Error {
	e := &Error{
		Provider:    provider,
		Message:     message,
		StatusCode:  status,
		ProviderErr: cause,
	}
	switch {
	case status == http.StatusTooManyRequests:
		e.Type = ErrorTypeRateLimit
		e.Retryable = true
		e.RetryAfter = retryAfter
	case status == http.StatusRequestEntityTooLarge:
		e.Type = ErrorTypeRequestTooLarge
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		e.Type = ErrorTypeTimeout
		e.Retryable = true
	case status >= 400 && status < 500:
		e.Type = ErrorTypeInvalidRequest
	case status >= 500:
		e.Type = ErrorTypeProvider
		e.Retryable = true
	default:
		e.Type = ErrorTypeUnknown
	}
	return e
}

// VendorMessage extracts a human readable message from a vendor error body.
// It understands {"error":{"message":..}}, {"error":".."}, {"message":..} and {"detail":..}.
func VendorMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if len(payload.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
		var s string
		if err := json.Unmarshal(payload.Error, &s); err == nil && s != "" {
			return s
		}
	}
	if payload.Message != "" {
		return payload.Message
	}
	if len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			return s
		}
		return string(payload.Detail)
	}
	return ""
}

// RetryAfterFromHeader parses a Retry-After header in seconds or HTTP-date form.
func RetryAfterFromHeader(h http.Header) *time.Duration {
	if h == nil {
		return nil
	}
	v := h.Get("Retry-After")
	if v == "" {
		return nil
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		d := time.Duration(seconds) * time.Second
		return &d
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d > 0 {
			return &d
		}
	}
	return nil
}
