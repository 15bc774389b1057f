package client

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-oauth1-client/token"
)

// Transport builds and sends the HTTP requests of the token-exchange flow.
// Implementations own retries and timeouts; the client imposes no policy and
// propagates transport errors unmodified.
type Transport interface {
	// Build creates an unsent request for the given method and URL
	Build(method, rawURL string) (*http.Request, error)

	// Send executes the request and parses the form-encoded response body
	Send(req *http.Request) (url.Values, error)
}

// StateStore persists the in-flight request token between the two legs of
// the authorization handshake. Implementations are scoped per end-user
// session; the client performs no locking of its own.
type StateStore interface {
	// Get returns the stored token for key, or nil when absent
	Get(key string) (*token.Token, error)

	// Set stores the token under key
	Set(key string, tok *token.Token) error

	// Remove deletes the token stored under key
	Remove(key string) error
}

// IncomingRequestReader reads parameters from the authorization callback
// request, used to resolve oauth_token, oauth_verifier and denied when they
// are not passed explicitly.
type IncomingRequestReader interface {
	// QueryParam returns the named query parameter, empty when absent
	QueryParam(name string) string

	// BodyParam returns the named form body parameter, empty when absent
	BodyParam(name string) string
}
