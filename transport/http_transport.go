// Package transport provides the default net/http implementation of the
// client.Transport collaborator.
package transport

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jrsteele09/go-oauth1-client/client"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 30 * time.Second

var _ client.Transport = (*HTTPTransport)(nil)

// HTTPTransport sends token-exchange requests with a net/http client and
// parses the form-encoded response bodies the endpoints return.
type HTTPTransport struct {
	httpClient *http.Client
}

// HTTPTransportOption defines a function type to modify the HTTPTransport instance.
type HTTPTransportOption func(*HTTPTransport)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(httpClient *http.Client) HTTPTransportOption {
	return func(tr *HTTPTransport) {
		tr.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout of the default http.Client
func WithTimeout(timeout time.Duration) HTTPTransportOption {
	return func(tr *HTTPTransport) {
		tr.httpClient.Timeout = timeout
	}
}

// NewHTTPTransport creates a transport with a default 30 second timeout
func NewHTTPTransport(options ...HTTPTransportOption) *HTTPTransport {
	tr := &HTTPTransport{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range options {
		opt(tr)
	}
	return tr
}

func (tr *HTTPTransport) Build(method, rawURL string) (*http.Request, error) {
	req, err := http.NewRequest(method, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "[Build] failed to build %s %s", method, rawURL)
	}
	return req, nil
}

func (tr *HTTPTransport) Send(req *http.Request) (url.Values, error) {
	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Msg("sending OAuth token request")

	resp, err := tr.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "[Send] %s %s failed", req.Method, req.URL.Redacted())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "[Send] failed to read response body")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("url", req.URL.Redacted()).
			Msg("OAuth token request rejected")
		return nil, errors.Errorf("[Send] provider returned %d: %s", resp.StatusCode, string(body))
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, errors.Wrap(err, "[Send] malformed form-encoded response body")
	}
	return values, nil
}
