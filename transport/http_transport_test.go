package transport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-oauth1-client/transport"
	"github.com/stretchr/testify/require"
)

func TestSendParsesFormEncodedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("oauth_token=abc123&oauth_token_secret=shhh"))
	}))
	defer server.Close()

	tr := transport.NewHTTPTransport(transport.WithHTTPClient(server.Client()))
	req, err := tr.Build(http.MethodGet, server.URL)
	require.NoError(t, err)

	values, err := tr.Send(req)
	require.NoError(t, err)
	require.Equal(t, "abc123", values.Get("oauth_token"))
	require.Equal(t, "shhh", values.Get("oauth_token_secret"))
}

func TestSendReportsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oauth_problem=nonce_used", http.StatusUnauthorized)
	}))
	defer server.Close()

	tr := transport.NewHTTPTransport(transport.WithHTTPClient(server.Client()))
	req, err := tr.Build(http.MethodGet, server.URL)
	require.NoError(t, err)

	_, err = tr.Send(req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
	require.Contains(t, err.Error(), "oauth_problem=nonce_used")
}

func TestBuildRejectsBadInput(t *testing.T) {
	tr := transport.NewHTTPTransport()
	_, err := tr.Build("bad method", "https://example.com")
	require.Error(t, err)
}

func TestIncomingRequestReader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/callback?oauth_token=abc123&oauth_verifier=v1", nil)
	reader := transport.NewIncomingRequest(req)

	require.Equal(t, "abc123", reader.QueryParam("oauth_token"))
	require.Equal(t, "v1", reader.QueryParam("oauth_verifier"))
	require.Empty(t, reader.QueryParam("denied"))
	require.Empty(t, reader.BodyParam("oauth_token"))
}
