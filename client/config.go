package client

import "net/http"

// Config holds the immutable consumer configuration, constructed once at
// client creation and validated by New.
type Config struct {
	// ConsumerKey identifies the client application to the provider
	ConsumerKey string

	// ConsumerSecret is the shared secret paired with ConsumerKey. May be
	// empty for RSA-SHA1, which signs with a private key instead.
	ConsumerSecret string

	// RequestTokenURL is the provider endpoint issuing temporary tokens
	RequestTokenURL string

	// AuthorizeURL is the provider endpoint the user is redirected to
	AuthorizeURL string

	// AccessTokenURL is the provider endpoint exchanging an authorized
	// request token for an access token
	AccessTokenURL string

	// CallbackURL is sent as oauth_callback with the request-token call
	CallbackURL string

	// Scope is an optional provider-specific permission string
	Scope string

	// Realm is emitted in Authorization headers when set
	Realm string

	// RequestTokenMethod is the HTTP method of the request-token call.
	// Defaults to GET.
	RequestTokenMethod string

	// AccessTokenMethod is the HTTP method of the access-token call.
	// Defaults to GET.
	AccessTokenMethod string
}

func (c Config) requestTokenMethod() string {
	if c.RequestTokenMethod == "" {
		return http.MethodGet
	}
	return c.RequestTokenMethod
}

func (c Config) accessTokenMethod() string {
	if c.AccessTokenMethod == "" {
		return http.MethodGet
	}
	return c.AccessTokenMethod
}
