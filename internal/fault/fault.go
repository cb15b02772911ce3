package fault

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories surfaced across component
// boundaries. It is the only error vocabulary the session layer and the
// UI ever see.
type Kind string

const (
	// Uninitialized means no provider was configured (missing credential).
	Uninitialized Kind = "uninitialized"

	// InvalidCredential means the provider rejected the API key.
	InvalidCredential Kind = "invalid-credential"

	// QuotaExceeded means the provider rate-limited or quota-blocked the call.
	QuotaExceeded Kind = "quota-exceeded"

	// ContentBlocked means the provider refused generation on safety grounds.
	ContentBlocked Kind = "content-blocked"

	// MalformedResponse means the provider answered but the payload could
	// not be parsed into the expected shape.
	MalformedResponse Kind = "malformed-response"

	// Unknown covers everything else: network failures, timeouts,
	// unexpected provider behavior.
	Unknown Kind = "unknown"
)

// Message returns the plain-language notification text for a kind.
func (k Kind) Message() string {
	switch k {
	case Uninitialized:
		return "No API key configured. Using built-in scenarios."
	case InvalidCredential:
		return "The API key was rejected. Check your credentials."
	case QuotaExceeded:
		return "API quota exhausted. Try again later."
	case ContentBlocked:
		return "The provider blocked this content."
	case MalformedResponse:
		return "The provider returned an unreadable response."
	default:
		return "Content generation failed."
	}
}

// Error tags an underlying error with its classified Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an error tagged with the given kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the Kind from an already-tagged error, classifying
// from scratch when no tag is present.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Classify(err)
}
