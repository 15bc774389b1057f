// Package signature provides the signature methods used to sign OAuth 1.0
// requests: HMAC-SHA1, RSA-SHA1 and PLAINTEXT (RFC 5849 section 3.4).
package signature

import (
	"crypto/subtle"

	"github.com/pkg/errors"
)

var (
	ErrInvalidKey = errors.New("invalid signing key material")
)

// Method is the strategy for computing oauth_signature values. A method is
// stateless and identified by its canonical protocol name, which is also sent
// as the oauth_signature_method request parameter.
type Method interface {
	// Name returns the canonical method name, e.g. "HMAC-SHA1"
	Name() string

	// Sign computes the signature over the base string with the given key
	Sign(baseString, key string) (string, error)
}

// Verify checks a signature by regenerating it from the base string and key
// and comparing the result in constant time.
func Verify(m Method, sig, baseString, key string) (bool, error) {
	expected, err := m.Sign(baseString, key)
	if err != nil {
		return false, errors.Wrap(err, "[Verify] failed to regenerate signature")
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) == 1, nil
}
