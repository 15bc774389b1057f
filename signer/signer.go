// Package signer implements OAuth 1.0 request signing (RFC 5849 section 3):
// signature base string construction, signature key composition and placement
// of the oauth_* protocol parameters into either the request query string or
// an Authorization header.
package signer

import (
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jrsteele09/go-oauth1-client/signature"
	"github.com/jrsteele09/go-oauth1-client/token"
	"github.com/pkg/errors"
)

const (
	oauthVersion       = "1.0"
	oauthParamPrefix   = "oauth_"
	formURLEncodedType = "application/x-www-form-urlencoded"
)

// Signer signs outgoing HTTP requests. Requests are treated as immutable:
// Sign returns a new request value and never mutates its input.
type Signer struct {
	realm            string
	headerMethods    map[string]struct{} // methods whose oauth params move to the Authorization header
	headerAllMethods bool
	nowTime          func() time.Time // nowTime function (injectable for testing)
	nonce            func() string    // nonce source (injectable for testing)
}

// SignerOption defines a function type to modify the Signer instance.
type SignerOption func(*Signer)

// WithRealm sets the realm emitted in Authorization headers
func WithRealm(realm string) SignerOption {
	return func(s *Signer) {
		s.realm = realm
	}
}

// WithHeaderMethods sets the HTTP methods whose oauth parameters are placed
// in the Authorization header rather than the query string. Default: POST.
func WithHeaderMethods(methods ...string) SignerOption {
	return func(s *Signer) {
		s.headerMethods = make(map[string]struct{}, len(methods))
		for _, m := range methods {
			s.headerMethods[strings.ToUpper(m)] = struct{}{}
		}
	}
}

// WithHeaderForAllMethods places oauth parameters in the Authorization
// header for every HTTP method.
func WithHeaderForAllMethods() SignerOption {
	return func(s *Signer) {
		s.headerAllMethods = true
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) SignerOption {
	return func(s *Signer) {
		s.nowTime = nowFunc
	}
}

// WithNonceFunc sets the nonce source (primarily for testing)
func WithNonceFunc(nonceFunc func() string) SignerOption {
	return func(s *Signer) {
		s.nonce = nonceFunc
	}
}

// New initializes a new Signer. Optional configuration can be provided via
// options (e.g. WithRealm, WithHeaderMethods).
func New(options ...SignerOption) *Signer {
	s := &Signer{
		headerMethods: map[string]struct{}{http.MethodPost: {}},
		nowTime:       time.Now,
		nonce:         generateNonce,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Sign returns a copy of req carrying the oauth_* protocol parameters and the
// signature computed with the given method. consumerSecret and the token's
// secret (empty when tok is nil) form the signature key. A request that
// already carries an oauth_signature_method parameter or an Authorization
// header is returned unchanged.
func (s *Signer) Sign(req *http.Request, consumerKey, consumerSecret string, method signature.Method, tok *token.Token) (*http.Request, error) {
	if method == nil {
		return nil, errors.New("[Sign] signature method is required")
	}
	if s.alreadySigned(req) {
		return req, nil
	}

	params, err := s.requestParams(req)
	if err != nil {
		return nil, err
	}
	for key, value := range s.commonParams(consumerKey, tok) {
		if _, ok := params[key]; !ok {
			params[key] = value
		}
	}
	params["oauth_signature_method"] = method.Name()

	baseString := s.SignatureBaseString(req.Method, req.URL.String(), params)
	key := s.SignatureKey(consumerSecret, tok)

	sig, err := method.Sign(baseString, key)
	if err != nil {
		return nil, errors.Wrapf(err, "[Sign] %s signature generation failed", method.Name())
	}
	params["oauth_signature"] = sig

	return s.placeParams(req, params), nil
}

// alreadySigned reports whether the request carries signing artefacts
// already. Signing twice would invalidate the first signature.
func (s *Signer) alreadySigned(req *http.Request) bool {
	if req.Header.Get("Authorization") != "" {
		return true
	}
	return req.URL.Query().Get("oauth_signature_method") != ""
}

// requestParams collects the existing query string and form body parameters
// of the request into a name to value mapping.
func (s *Signer) requestParams(req *http.Request) (map[string]string, error) {
	params := make(map[string]string)
	for key, values := range req.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	if req.GetBody == nil || !strings.HasPrefix(req.Header.Get("Content-Type"), formURLEncodedType) {
		return params, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, errors.Wrap(err, "[requestParams] failed to read request body")
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "[requestParams] failed to read request body")
	}
	form, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, errors.Wrap(err, "[requestParams] malformed form body")
	}
	for key, values := range form {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params, nil
}

// commonParams are generated fresh per call and merged under any
// caller-supplied parameters, which always win on key collision.
func (s *Signer) commonParams(consumerKey string, tok *token.Token) map[string]string {
	params := map[string]string{
		"oauth_version":      oauthVersion,
		"oauth_nonce":        s.nonce(),
		"oauth_timestamp":    strconv.FormatInt(s.nowTime().Unix(), 10),
		"oauth_consumer_key": consumerKey,
	}
	if tok != nil {
		params["oauth_token"] = tok.Token
	}
	return params
}

// SignatureBaseString composes the canonical string signed by a signature
// method: the uppercased HTTP method, the URL stripped of its query string
// and the normalized parameter set, each percent-encoded and joined by "&".
// The result is byte-identical for identical inputs regardless of parameter
// insertion order.
func (s *Signer) SignatureBaseString(method, rawURL string, params map[string]string) string {
	baseURL := rawURL
	merged := params
	if idx := strings.Index(rawURL, "?"); idx >= 0 {
		baseURL = rawURL[:idx]
		// url query values are the base, explicit params override
		merged = make(map[string]string, len(params))
		if query, err := url.ParseQuery(rawURL[idx+1:]); err == nil {
			for key, values := range query {
				if len(values) > 0 {
					merged[key] = values[0]
				}
			}
		}
		for key, value := range params {
			merged[key] = value
		}
	} else if _, ok := params["oauth_signature"]; ok {
		merged = make(map[string]string, len(params))
		for key, value := range params {
			merged[key] = value
		}
	}
	delete(merged, "oauth_signature")

	return strings.Join([]string{
		PercentEncode(strings.ToUpper(method)),
		PercentEncode(baseURL),
		PercentEncode(encodeParams(merged)),
	}, "&")
}

// SignatureKey composes the signing key from the consumer secret and the
// token secret, empty when no token is given.
func (s *Signer) SignatureKey(consumerSecret string, tok *token.Token) string {
	tokenSecret := ""
	if tok != nil {
		tokenSecret = tok.TokenSecret
	}
	return PercentEncode(consumerSecret) + "&" + PercentEncode(tokenSecret)
}

// placeParams returns a clone of req carrying the signed parameter set,
// either entirely in the query string or with the oauth_* parameters moved
// into a single Authorization header.
func (s *Signer) placeParams(req *http.Request, params map[string]string) *http.Request {
	signed := req.Clone(req.Context())

	if s.useAuthHeader(req.Method) {
		oauthParams := make(map[string]string)
		for key, value := range params {
			if strings.HasPrefix(key, oauthParamPrefix) {
				oauthParams[key] = value
				delete(params, key)
			}
		}
		signed.Header.Set("Authorization", s.composeAuthHeader(oauthParams))
	}
	signed.URL.RawQuery = encodeParams(params)
	return signed
}

func (s *Signer) useAuthHeader(method string) bool {
	if s.headerAllMethods {
		return true
	}
	_, ok := s.headerMethods[strings.ToUpper(method)]
	return ok
}

// composeAuthHeader formats the oauth_* parameters as an OAuth Authorization
// header, realm first when configured.
func (s *Signer) composeAuthHeader(oauthParams map[string]string) string {
	keys := make([]string, 0, len(oauthParams))
	for key := range oauthParams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	if s.realm != "" {
		parts = append(parts, `realm="`+PercentEncode(s.realm)+`"`)
	}
	for _, key := range keys {
		parts = append(parts, key+`="`+PercentEncode(oauthParams[key])+`"`)
	}
	return "OAuth " + strings.Join(parts, ", ")
}
