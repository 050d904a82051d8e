package graphapi

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

// Graph error codes that mean the access token can no longer be used.
const (
	codeInvalidToken   = 190
	codeSessionInvalid = 102
)

// UpstreamError is a non-2xx or unparsable Graph API response.
type UpstreamError struct {
	StatusCode int
	Body       string
	Type       string
	Code       int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("graph api status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("graph api status %d", e.StatusCode)
}

func (e *UpstreamError) Is(target error) bool {
	switch target {
	case pkgerrors.ErrUpstream:
		return true
	case pkgerrors.ErrAuthExpired:
		return e.AuthExpired()
	}
	return false
}

// AuthExpired reports whether the identity provider rejected the credential.
func (e *UpstreamError) AuthExpired() bool {
	return e.StatusCode == http.StatusUnauthorized ||
		e.StatusCode == http.StatusForbidden ||
		e.Code == codeInvalidToken ||
		e.Code == codeSessionInvalid
}

// Retryable is true for 5xx and 429.
func (e *UpstreamError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// NetworkError is a transport failure without a status code.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("graph api network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == pkgerrors.ErrNetwork
}

func isRetryable(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Retryable()
	}
	return false
}
