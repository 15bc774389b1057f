// Package token models the OAuth 1.0 credentials issued by a provider: the
// temporary request token exchanged during the authorization handshake and
// the long-lived access token used for API calls.
package token

import (
	"net/url"

	"github.com/pkg/errors"
)

// Token is a request or access token issued by the OAuth provider. The
// secret is signing-key material only and is never transmitted by the client.
// A Token is immutable once constructed.
type Token struct {
	Token       string
	TokenSecret string

	extra map[string]string
}

// New creates a token from an identifier and secret
func New(tok, secret string) *Token {
	return &Token{Token: tok, TokenSecret: secret}
}

// Parse builds a Token from an application/x-www-form-urlencoded response
// body of a token-exchange endpoint. oauth_token and oauth_token_secret are
// extracted; any remaining keys (e.g. oauth_callback_confirmed) are retained
// as extra params.
func Parse(values url.Values) (*Token, error) {
	tok := values.Get("oauth_token")
	if tok == "" {
		return nil, errors.New("[Parse] response contains no oauth_token")
	}

	t := &Token{
		Token:       tok,
		TokenSecret: values.Get("oauth_token_secret"),
	}
	for key := range values {
		if key == "oauth_token" || key == "oauth_token_secret" {
			continue
		}
		if t.extra == nil {
			t.extra = make(map[string]string)
		}
		t.extra[key] = values.Get(key)
	}
	return t, nil
}

// ParseBody parses a raw form-encoded response body into a Token
func ParseBody(body string) (*Token, error) {
	values, err := url.ParseQuery(body)
	if err != nil {
		return nil, errors.Wrap(err, "[ParseBody] malformed token response body")
	}
	return Parse(values)
}

// Extra returns an additional server-supplied response parameter
func (t *Token) Extra(name string) string {
	return t.extra[name]
}

// ExtraParams returns a copy of all additional response parameters
func (t *Token) ExtraParams() map[string]string {
	if len(t.extra) == 0 {
		return nil
	}
	params := make(map[string]string, len(t.extra))
	for k, v := range t.extra {
		params[k] = v
	}
	return params
}
