package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestIsRateLimitError(t *testing.T) {
	err := NewRateLimitError("rate limit exceeded", nil, nil)
	if !IsRateLimitError(err) {
		t.Error("Expected IsRateLimitError to return true for rate limit error")
	}

	regularErr := NewProviderError("some error", nil)
	if IsRateLimitError(regularErr) {
		t.Error("Expected IsRateLimitError to return false for non-rate-limit error")
	}
}

func TestIsRequestTooLargeError(t *testing.T) {
	err := NewRequestTooLargeError("request too large", nil)
	if !IsRequestTooLargeError(err) {
		t.Error("Expected IsRequestTooLargeError to return true for request too large error")
	}

	regularErr := NewProviderError("some error", nil)
	if IsRequestTooLargeError(regularErr) {
		t.Error("Expected IsRequestTooLargeError to return false for non-request-too-large error")
	}
}

func TestExtractRetryAfter(t *testing.T) {
	retryAfter := 5 * time.Minute
	err := NewRateLimitError("rate limit", &retryAfter, nil)
	extracted := ExtractRetryAfter(err)
	if extracted == nil {
		t.Fatal("Expected non-nil retry after")
	}
	if *extracted != retryAfter {
		t.Errorf("Expected retry after %v, got %v", retryAfter, *extracted)
	}

	if ExtractRetryAfter(NewProviderError("some error", nil)) != nil {
		t.Error("Expected nil retry after for non-rate-limit error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := NewProviderError("wrapped", originalErr)
	if !errors.Is(wrappedErr, originalErr) {
		t.Error("Expected error to unwrap to original error")
	}
}

func TestErrEmptyMessagesMatchesProviderCopy(t *testing.T) {
	err := fmt.Errorf("bedrock: %w", ErrEmptyMessages.WithProvider("bedrock"))
	if !errors.Is(err, ErrEmptyMessages) {
		t.Error("Expected provider-tagged copy to match ErrEmptyMessages")
	}
}

func TestHandleErrorExtractsVendorMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantType ErrorType
		wantMsg  string
	}{
		{"nested error", 400, `{"error":{"message":"bad model","type":"invalid_request_error"}}`, ErrorTypeInvalidRequest, "bad model"},
		{"string error", 401, `{"error":"invalid api key"}`, ErrorTypeInvalidRequest, "invalid api key"},
		{"top level message", 500, `{"message":"internal"}`, ErrorTypeProvider, "internal"},
		{"detail", 422, `{"detail":"missing field"}`, ErrorTypeInvalidRequest, "missing field"},
		{"rate limit", 429, `{"error":{"message":"slow down"}}`, ErrorTypeRateLimit, "slow down"},
		{"too large", 413, `not json`, ErrorTypeRequestTooLarge, http.StatusText(413)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleError("gemini", &StatusError{StatusCode: tt.status, Body: []byte(tt.body)})
			var llmErr *Error
			if !errors.As(err, &llmErr) {
				t.Fatalf("Expected *Error, got %T", err)
			}
			if llmErr.Type != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, llmErr.Type)
			}
			if llmErr.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, llmErr.Message)
			}
			if llmErr.Provider != "gemini" {
				t.Errorf("Expected provider gemini, got %q", llmErr.Provider)
			}
			if llmErr.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, llmErr.StatusCode)
			}
		})
	}
}

func TestHandleErrorRetryAfterHeader(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "7")
	err := HandleError("groq", &StatusError{StatusCode: 429, Body: []byte(`{}`), Header: header})
	retryAfter := ExtractRetryAfter(err)
	if retryAfter == nil || *retryAfter != 7*time.Second {
		t.Errorf("Expected 7s retry after, got %v", retryAfter)
	}
	if !IsRetryableError(err) {
		t.Error("Expected rate limit to be flagged retryable")
	}
}

func TestHandleErrorRawErrors(t *testing.T) {
	if HandleError("openai", nil) != nil {
		t.Error("Expected nil for nil error")
	}

	netErr := errors.New("connection refused")
	err := HandleError("openai", netErr)
	var llmErr *Error
	if !errors.As(err, &llmErr) || llmErr.Type != ErrorTypeNetwork {
		t.Fatalf("Expected network error, got %v", err)
	}
	if !errors.Is(err, netErr) {
		t.Error("Expected raw error to be surfaced through Unwrap")
	}

	err = HandleError("openai", fmt.Errorf("post: %w", context.DeadlineExceeded))
	if !errors.As(err, &llmErr) || llmErr.Type != ErrorTypeTimeout {
		t.Errorf("Expected timeout error, got %v", err)
	}

	existing := NewInvalidRequestError("nope", nil)
	err = HandleError("mistral", existing)
	if !errors.As(err, &llmErr) || llmErr.Provider != "mistral" {
		t.Errorf("Expected existing error tagged with provider, got %v", err)
	}
}
