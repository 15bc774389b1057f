// Package client orchestrates the OAuth 1.0a three-legged authorization
// flow: request-token acquisition, user-authorization URL construction and
// access-token exchange, delegating request signing to the signer package
// and network I/O to an injected Transport.
package client

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-oauth1-client/signature"
	"github.com/jrsteele09/go-oauth1-client/signer"
	"github.com/jrsteele09/go-oauth1-client/token"
	"github.com/pkg/errors"
)

// FlowState tracks the progress of one authorization attempt.
type FlowState string

const (
	StateUnauthenticated      FlowState = "unauthenticated"
	StateRequestTokenObtained FlowState = "request_token_obtained"
	StateAuthenticated        FlowState = "authenticated"
	StateCancelled            FlowState = "cancelled"
	StateFailed               FlowState = "failed"
)

// requestTokenStateKey is the well-known state store key holding the
// in-flight request token. Exactly one request token is in flight per
// authorization attempt and it is removed once upgraded to an access token.
const requestTokenStateKey = "oauth1_request_token"

// Client runs the OAuth 1.0a consumer flow. One client instance serves one
// authorization attempt at a time; concurrent attempts against the same state
// namespace must be serialized by the caller.
type Client struct {
	cfg         Config
	sigMethod   signature.Method
	signer      *signer.Signer
	transport   Transport
	stateStore  StateStore
	incoming    IncomingRequestReader
	accessToken *token.Token
	flowState   FlowState
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithIncomingRequest sets the reader for authorization callback parameters
func WithIncomingRequest(reader IncomingRequestReader) ClientOption {
	return func(c *Client) {
		c.incoming = reader
	}
}

// WithSigner replaces the default signer (e.g. to change the set of methods
// signed via the Authorization header).
func WithSigner(s *signer.Signer) ClientOption {
	return func(c *Client) {
		c.signer = s
	}
}

// New initializes a new Client with required dependencies. Optional
// configuration can be provided via options (e.g. WithIncomingRequest).
func New(cfg Config, method signature.Method, transport Transport, stateStore StateStore, options ...ClientOption) (*Client, error) {
	if cfg.ConsumerKey == "" {
		return nil, errors.New("[NewClient] consumer key is required")
	}
	if cfg.RequestTokenURL == "" || cfg.AuthorizeURL == "" || cfg.AccessTokenURL == "" {
		return nil, errors.New("[NewClient] request token, authorize and access token URLs are required")
	}
	if method == nil {
		return nil, errors.New("[NewClient] signature method is required")
	}
	if transport == nil {
		return nil, errors.New("[NewClient] transport is required")
	}
	if stateStore == nil {
		return nil, errors.New("[NewClient] state store is required")
	}

	client := &Client{
		cfg:        cfg,
		sigMethod:  method,
		signer:     signer.New(signer.WithRealm(cfg.Realm)),
		transport:  transport,
		stateStore: stateStore,
		flowState:  StateUnauthenticated,
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

// State returns the current flow state
func (c *Client) State() FlowState {
	return c.flowState
}

// AccessToken returns the current access token, nil when unauthenticated
func (c *Client) AccessToken() *token.Token {
	return c.accessToken
}

// SetAccessToken restores a previously obtained access token, e.g. one kept
// in the integrator's session between requests.
func (c *Client) SetAccessToken(tok *token.Token) {
	c.accessToken = tok
	if tok != nil {
		c.flowState = StateAuthenticated
	}
}

// FetchRequestToken obtains a temporary request token from the provider and
// persists it in the state store for the second leg of the handshake. Any
// existing access token is discarded first.
func (c *Client) FetchRequestToken(extraParams map[string]string) (*token.Token, error) {
	c.accessToken = nil

	params := map[string]string{
		"oauth_consumer_key": c.cfg.ConsumerKey,
		"oauth_callback":     c.cfg.CallbackURL,
	}
	if c.cfg.Scope != "" {
		params["scope"] = c.cfg.Scope
	}
	mergeParams(params, extraParams)

	response, err := c.sendSigned(c.cfg.requestTokenMethod(), c.cfg.RequestTokenURL, params, nil)
	if err != nil {
		c.flowState = StateFailed
		return nil, errors.Wrap(err, "[FetchRequestToken] request token exchange failed")
	}

	requestToken, err := token.Parse(response)
	if err != nil {
		c.flowState = StateFailed
		return nil, errors.Wrap(err, "[FetchRequestToken] failed to parse request token response")
	}
	if err := c.stateStore.Set(requestTokenStateKey, requestToken); err != nil {
		return nil, errors.Wrap(err, "[FetchRequestToken] failed to persist request token")
	}
	c.flowState = StateRequestTokenObtained
	return requestToken, nil
}

// BuildAuthURL composes the URL the user is redirected to for authorization.
// The request token is taken from the argument or, when nil, from the state
// store.
func (c *Client) BuildAuthURL(requestToken *token.Token, extraParams map[string]string) (string, error) {
	requestToken, err := c.resolveRequestToken(requestToken)
	if err != nil {
		return "", errors.Wrap(err, "[BuildAuthURL] no request token available")
	}

	params := url.Values{}
	for key, value := range extraParams {
		params.Set(key, value)
	}
	params.Set("oauth_token", requestToken.Token)

	separator := "?"
	if strings.Contains(c.cfg.AuthorizeURL, "?") {
		separator = "&"
	}
	return c.cfg.AuthorizeURL + separator + params.Encode(), nil
}

// FetchAccessToken exchanges an authorized request token for an access token.
// oauthToken and verifier fall back to the incoming callback request when not
// given. The presented oauth_token must match the stored request token, which
// is consumed by this call whatever the outcome of the exchange.
func (c *Client) FetchAccessToken(oauthToken string, requestToken *token.Token, verifier string, extraParams map[string]string) (*token.Token, error) {
	if c.incoming != nil {
		if denied := c.callbackParam("denied"); denied != "" {
			c.flowState = StateCancelled
			return nil, errors.Wrap(ErrAuthorizationDenied, "[FetchAccessToken]")
		}
		if oauthToken == "" {
			oauthToken = c.callbackParam("oauth_token")
		}
		if verifier == "" {
			verifier = c.callbackParam("oauth_verifier")
		}
	}

	requestToken, err := c.resolveRequestToken(requestToken)
	if err != nil {
		return nil, errors.Wrap(err, "[FetchAccessToken] no request token available")
	}
	if oauthToken != "" && oauthToken != requestToken.Token {
		c.flowState = StateFailed
		return nil, errors.Wrapf(ErrTokenMismatch, "[FetchAccessToken] got %q", oauthToken)
	}

	// single use: the request token cannot start a second exchange
	if err := c.stateStore.Remove(requestTokenStateKey); err != nil {
		return nil, errors.Wrap(err, "[FetchAccessToken] failed to remove request token")
	}

	params := map[string]string{
		"oauth_consumer_key": c.cfg.ConsumerKey,
		"oauth_token":        requestToken.Token,
	}
	if verifier != "" {
		params["oauth_verifier"] = verifier
	}
	mergeParams(params, extraParams)

	response, err := c.sendSigned(c.cfg.accessTokenMethod(), c.cfg.AccessTokenURL, params, requestToken)
	if err != nil {
		c.flowState = StateFailed
		return nil, errors.Wrap(err, "[FetchAccessToken] access token exchange failed")
	}

	accessToken, err := token.Parse(response)
	if err != nil {
		c.flowState = StateFailed
		return nil, errors.Wrap(err, "[FetchAccessToken] failed to parse access token response")
	}
	c.accessToken = accessToken
	c.flowState = StateAuthenticated
	return accessToken, nil
}

// RefreshAccessToken is a documented no-op: OAuth 1.0 defines no refresh
// mechanism, so no new token is ever produced.
func (c *Client) RefreshAccessToken() (*token.Token, error) {
	return nil, nil
}

// SignRequest signs an arbitrary API request. A nil token falls back to the
// client's current access token; with no access token set, the signature key
// uses an empty token secret.
func (c *Client) SignRequest(req *http.Request, tok *token.Token) (*http.Request, error) {
	if tok == nil {
		tok = c.accessToken
	}
	return c.signer.Sign(req, c.cfg.ConsumerKey, c.cfg.ConsumerSecret, c.sigMethod, tok)
}

// ApplyAccessToken returns a copy of req carrying the consumer key and
// access token as plain query parameters, without a signature. Used for
// simple authenticated calls; full per-request signing is SignRequest.
func (c *Client) ApplyAccessToken(req *http.Request, tok *token.Token) (*http.Request, error) {
	if tok == nil {
		tok = c.accessToken
	}
	if tok == nil {
		return nil, errors.Wrap(ErrAccessTokenRequired, "[ApplyAccessToken]")
	}

	applied := req.Clone(req.Context())
	query := applied.URL.Query()
	query.Set("oauth_consumer_key", c.cfg.ConsumerKey)
	query.Set("oauth_token", tok.Token)
	applied.URL.RawQuery = query.Encode()
	return applied, nil
}

// sendSigned builds a request carrying params in its query string, signs it
// and sends it via the transport.
func (c *Client) sendSigned(method, rawURL string, params map[string]string, tok *token.Token) (url.Values, error) {
	req, err := c.transport.Build(method, rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "[sendSigned] failed to build request")
	}

	query := req.URL.Query()
	for key, value := range params {
		query.Set(key, value)
	}
	req.URL.RawQuery = query.Encode()

	signed, err := c.signer.Sign(req, c.cfg.ConsumerKey, c.cfg.ConsumerSecret, c.sigMethod, tok)
	if err != nil {
		return nil, errors.Wrap(err, "[sendSigned] failed to sign request")
	}
	return c.transport.Send(signed)
}

func (c *Client) resolveRequestToken(requestToken *token.Token) (*token.Token, error) {
	if requestToken != nil {
		return requestToken, nil
	}
	stored, err := c.stateStore.Get(requestTokenStateKey)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrRequestTokenRequired
	}
	return stored, nil
}

func (c *Client) callbackParam(name string) string {
	if value := c.incoming.QueryParam(name); value != "" {
		return value
	}
	return c.incoming.BodyParam(name)
}

// mergeParams overlays extra onto params, extra keys win
func mergeParams(params, extra map[string]string) {
	for key, value := range extra {
		params[key] = value
	}
}
