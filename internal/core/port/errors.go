package port

import (
	"errors"
	"fmt"
)

// Sentinel errors crossing the use case boundary. The HTTP adapter maps
// them onto the response contract.
var (
	// ErrAccessDenied covers every ownership failure, including targets
	// that do not exist upstream. Callers never learn whether a resource
	// is missing or merely not theirs.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound is returned only where the contract explicitly reveals
	// existence, such as ad creation against a missing ad group.
	ErrNotFound = errors.New("not found")

	// ErrIDUnrecoverable means the platform accepted a mutation batch but
	// the created resource's identifier could not be read back. The
	// resource exists upstream untracked; operators must inspect.
	ErrIDUnrecoverable = errors.New("resource created but id unrecoverable")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOAuthAccount       = errors.New("account uses Google sign-in")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrGenerationFailed   = errors.New("content generation failed")
)

// adsErrorFallback is returned to callers when an upstream failure
// carries no usable message at all.
const adsErrorFallback = "Google Ads API error"

// AdsIssue is one structured issue reported by the platform.
type AdsIssue struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// AdsError is a platform rejection. Issues hold the structured detail
// when the platform supplied any; Message is the transport-level error
// text otherwise.
type AdsError struct {
	Issues  []AdsIssue
	Message string
}

func (e *AdsError) Error() string {
	if len(e.Issues) > 0 {
		return fmt.Sprintf("ads api: %s", e.Issues[0].Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("ads api: %s", e.Message)
	}
	return "ads api: unknown error"
}

// UserMessage normalizes the failure to a single user-facing string:
// the first structured issue's message when present, the plain message
// otherwise, and a fixed fallback when neither exists.
func (e *AdsError) UserMessage() string {
	if len(e.Issues) > 0 && e.Issues[0].Message != "" {
		return e.Issues[0].Message
	}
	if e.Message != "" {
		return e.Message
	}
	return adsErrorFallback
}
