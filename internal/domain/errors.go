package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist within the caller's scope. Because all resolution
// is caller-scoped, "owned by someone else" is indistinguishable from
// "does not exist" — handlers map both to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrUnauthenticated is returned when the caller record cannot be resolved:
// no session, or the user row vanished mid-session. Handlers map this to
// HTTP 404 as well, so the response never reveals whether an account exists.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrValidation is returned by service functions when input fails field
// presence validation (e.g. an activity create without a trip id).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
