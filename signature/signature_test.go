package signature_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/jrsteele09/go-oauth1-client/signature"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	testBaseString = "test_base_string"
	testKey        = "test_key"
	bogusSignature = "unsigned"
)

func testMethods(t *testing.T) []signature.Method {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	rsaMethod, err := signature.NewRSASHA1(privateKey)
	require.NoError(t, err)

	return []signature.Method{
		signature.NewHMACSHA1(),
		signature.NewPlaintext(),
		rsaMethod,
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, method := range testMethods(t) {
		t.Run(method.Name(), func(t *testing.T) {
			sig, err := method.Sign(testBaseString, testKey)
			require.NoError(t, err)
			require.NotEmpty(t, sig)

			ok, err := signature.Verify(method, sig, testBaseString, testKey)
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = signature.Verify(method, bogusSignature, testBaseString, testKey)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestVerifyRejectsAlteredInputs(t *testing.T) {
	for _, method := range testMethods(t) {
		t.Run(method.Name(), func(t *testing.T) {
			sig, err := method.Sign(testBaseString, testKey)
			require.NoError(t, err)

			ok, err := signature.Verify(method, sig, "another_base_string", testKey)
			require.NoError(t, err)
			require.False(t, ok)

			if method.Name() == "RSA-SHA1" {
				return // RSA-SHA1 ignores the key string, it signs with the private key
			}
			ok, err = signature.Verify(method, sig, testBaseString, "another_key")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

// Known vector from the OAuth Core 1.0 specification, appendix A.5.2.
func TestHMACSHA1KnownVector(t *testing.T) {
	baseString := "GET&http%3A%2F%2Fphotos.example.net%2Fphotos&file%3Dvacation.jpg%26" +
		"oauth_consumer_key%3Ddpf43f3p2l4k3l03%26oauth_nonce%3Dkllo9940pd9333jh%26" +
		"oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1191242096%26" +
		"oauth_token%3Dnnch734d00sl2jdk%26oauth_version%3D1.0%26size%3Doriginal"
	key := "kd94hf93k423kf44&pfkkdhi9sl3r4s00"

	sig, err := signature.NewHMACSHA1().Sign(baseString, key)
	require.NoError(t, err)
	require.Equal(t, "tR3+Ty81lMeYAr/Fid0kMTYa/WM=", sig)
}

func TestPlaintextSignatureIsTheKey(t *testing.T) {
	sig, err := signature.NewPlaintext().Sign(testBaseString, "secret&token")
	require.NoError(t, err)
	require.Equal(t, "secret&token", sig)
}

func TestMethodNames(t *testing.T) {
	for _, tc := range []struct {
		method signature.Method
		name   string
	}{
		{signature.NewHMACSHA1(), "HMAC-SHA1"},
		{signature.NewPlaintext(), "PLAINTEXT"},
		{&signature.RSASHA1{}, "RSA-SHA1"},
	} {
		require.Equal(t, tc.name, tc.method.Name())
	}
}

func TestRSASHA1RejectsMalformedKeyMaterial(t *testing.T) {
	_, err := signature.NewRSASHA1FromPEM([]byte("not a pem block"))
	require.Error(t, err)
	require.True(t, errors.Is(err, signature.ErrInvalidKey))

	_, err = signature.NewRSASHA1(nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, signature.ErrInvalidKey))
}
