package ayrshare

import "errors"

// Kind classifies an API failure. The classification is derived solely from
// the HTTP status code of the reply, or the absence of any reply.
type Kind int

const (
	// KindAPI covers any >=400 status that is not 400 or 401.
	KindAPI Kind = iota
	// KindAuthentication covers a missing credential and HTTP 401.
	KindAuthentication
	// KindValidation covers HTTP 400.
	KindValidation
	// KindTransport covers failures before any HTTP status was received.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	default:
		return "api"
	}
}

// Error is the single error type raised by the client. Callers that only
// care about "did it work" can errors.As into *Error; callers that need the
// taxonomy inspect Kind.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, status int, msg string, cause error) *Error {
	return &Error{Kind: kind, StatusCode: status, Message: msg, cause: cause}
}

// KindOf returns the classification of err, or (0, false) when err is not a
// client error.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindAuthentication
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindTransport
}
