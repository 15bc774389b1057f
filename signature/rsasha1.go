package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// RSASHA1 implements Method using RSASSA-PKCS1-v1.5 over a SHA1 digest of the
// base string. The key argument of Sign is ignored: RFC 5849 section 3.4.3
// signs with the consumer's private key, not the shared-secret key string.
type RSASHA1 struct {
	privateKey *rsa.PrivateKey
}

var _ Method = (*RSASHA1)(nil)

// NewRSASHA1 creates a new RSA-SHA1 signature method with the given private key
func NewRSASHA1(privateKey *rsa.PrivateKey) (*RSASHA1, error) {
	if privateKey == nil {
		return nil, errors.Wrap(ErrInvalidKey, "[NewRSASHA1] private key is required")
	}
	return &RSASHA1{privateKey: privateKey}, nil
}

// NewRSASHA1FromPEM creates a new RSA-SHA1 signature method from a
// PEM-encoded private key.
func NewRSASHA1FromPEM(pemBytes []byte) (*RSASHA1, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidKey, "[NewRSASHA1FromPEM] %v", err)
	}
	return &RSASHA1{privateKey: privateKey}, nil
}

func (*RSASHA1) Name() string {
	return "RSA-SHA1"
}

func (r *RSASHA1) Sign(baseString, _ string) (string, error) {
	if r.privateKey == nil {
		return "", errors.Wrap(ErrInvalidKey, "[Sign] RSA-SHA1 has no private key")
	}
	digest := sha1.Sum([]byte(baseString))
	sig, err := rsa.SignPKCS1v15(rand.Reader, r.privateKey, crypto.SHA1, digest[:])
	if err != nil {
		return "", errors.Wrap(err, "[Sign] failed to sign with RSA-SHA1")
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}
