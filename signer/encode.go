package signer

import (
	"fmt"
	"sort"
	"strings"
)

// PercentEncode encodes a string per RFC 3986: every byte outside the
// unreserved set (A-Z a-z 0-9 - . _ ~) is encoded, and space becomes %20,
// never +. OAuth 1.0 signatures require this stricter encoding rather than
// the net/url query encoding.
func PercentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// encodeParams serializes a parameter map as percent-encoded key=value pairs
// joined by "&", sorted by key using bytewise ordering.
func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, PercentEncode(key)+"="+PercentEncode(params[key]))
	}
	return strings.Join(pairs, "&")
}
