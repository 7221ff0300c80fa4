package domain

import (
	"errors"
)

// UserIDHeader carries the caller's identity. It is an opaque id echoed back
// by the client after login, not a signed credential. This mirrors the
// contract of the original service and is a documented weakness: any caller
// that knows a user id can act as that user. Do not extend this scheme;
// replace it wholesale if real authentication is ever required.
const UserIDHeader = "X-User-ID"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageMissingUserID        = "user ID required"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrUserIDMissing = errors.New("user ID header required")
)
