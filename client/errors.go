package client

import "github.com/pkg/errors"

var (
	// ErrRequestTokenRequired is returned when no request token was passed
	// and none is held in the state store. The flow must restart from
	// FetchRequestToken.
	ErrRequestTokenRequired = errors.New("request token required")

	// ErrAccessTokenRequired is returned when an operation needs an access
	// token and the client holds none.
	ErrAccessTokenRequired = errors.New("access token required")

	// ErrTokenMismatch is returned when the oauth_token presented on the
	// callback does not match the stored request token. Indicates a stale
	// link or a forged callback; HTTP 400 semantics.
	ErrTokenMismatch = errors.New("oauth token mismatch")

	// ErrAuthorizationDenied is returned when the provider reports that the
	// user declined authorization.
	ErrAuthorizationDenied = errors.New("authorization denied by user")
)
