package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

// HMACSHA1 implements Method using symmetric HMAC-SHA1, keyed by the
// concatenated consumer and token secrets.
type HMACSHA1 struct{}

var _ Method = HMACSHA1{}

// NewHMACSHA1 creates a new HMAC-SHA1 signature method
func NewHMACSHA1() HMACSHA1 {
	return HMACSHA1{}
}

func (HMACSHA1) Name() string {
	return "HMAC-SHA1"
}

func (HMACSHA1) Sign(baseString, key string) (string, error) {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(baseString))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
