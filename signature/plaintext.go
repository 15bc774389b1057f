package signature

// Plaintext implements Method with no cryptographic transformation: the
// signature is the key itself (RFC 5849 section 3.4.4). Only suitable over a
// secure channel.
type Plaintext struct{}

var _ Method = Plaintext{}

// NewPlaintext creates a new PLAINTEXT signature method
func NewPlaintext() Plaintext {
	return Plaintext{}
}

func (Plaintext) Name() string {
	return "PLAINTEXT"
}

func (Plaintext) Sign(_, key string) (string, error) {
	return key, nil
}
