package reqsig

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"
)

// Param is a single query parameter. Insertion order is irrelevant:
// canonicalization sorts parameters before signing.
type Param struct {
	Key   string
	Value string
}

// RequestDescriptor captures the parts of an outgoing HTTP request that are
// covered by the signature. It is assembled fresh per call and must not be
// mutated after signing.
type RequestDescriptor struct {
	// Method is the HTTP method. Canonicalization upper-cases it.
	Method string

	// Path is the request path, without scheme or host. An empty path
	// canonicalizes as "/".
	Path string

	// Query holds the query parameters in any order.
	Query []Param

	// Body is the request body, possibly empty.
	Body []byte

	// Timestamp is the timestamp string that will also be sent in the Date
	// header. Use Now or Timestamp to produce it.
	Timestamp string
}

// QueryFromValues flattens url.Values into query parameters.
func QueryFromValues(values url.Values) []Param {
	var params []Param
	for key, vals := range values {
		for _, val := range vals {
			params = append(params, Param{Key: key, Value: val})
		}
	}

	return params
}

// CanonicalRequest produces the canonical string representation of the
// descriptor that Sign computes its digest over.
//
// The form is five newline-joined fields:
//
//	METHOD
//	PATH
//	sorted&encoded=query
//	hex sha256 of the body
//	timestamp
//
// The body hash of an empty body is the SHA-256 of the empty string, so an
// absent body still contributes a fixed marker and the method field keeps a
// bodiless GET distinct from a bodiless POST.
func CanonicalRequest(d RequestDescriptor) (string, error) {
	if d.Method == "" {
		return "", fmt.Errorf("%w: method must not be empty", ErrEncoding)
	}

	if d.Timestamp == "" {
		return "", fmt.Errorf("%w: timestamp must not be empty", ErrEncoding)
	}

	for name, val := range map[string]string{
		"method":    d.Method,
		"path":      d.Path,
		"timestamp": d.Timestamp,
	} {
		if !utf8.ValidString(val) {
			return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrEncoding, name)
		}
	}

	query, err := canonicalQuery(d.Query)
	if err != nil {
		return "", err
	}

	path := d.Path
	if path == "" {
		path = "/"
	}

	bodyHash := sha256.Sum256(d.Body)

	return strings.Join([]string{
		strings.ToUpper(d.Method),
		path,
		query,
		hex.EncodeToString(bodyHash[:]),
		d.Timestamp,
	}, "\n"), nil
}

// canonicalQuery sorts parameters by key, ties broken by value, then encodes
// keys and values with the fixed escape table and joins them with "&".
// Duplicate keys keep a deterministic order through the value tiebreak.
func canonicalQuery(params []Param) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	for _, p := range params {
		if !utf8.ValidString(p.Key) || !utf8.ValidString(p.Value) {
			return "", fmt.Errorf("%w: query parameter %q is not valid UTF-8", ErrEncoding, p.Key)
		}
	}

	sorted := make([]Param, len(params))
	copy(sorted, params)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Key != sorted[j].Key {
			return sorted[i].Key < sorted[j].Key
		}

		return sorted[i].Value < sorted[j].Value
	})

	var b strings.Builder
	for i, p := range sorted {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(escape(p.Key))
		b.WriteByte('=')
		b.WriteString(escape(p.Value))
	}

	return b.String(), nil
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes everything outside the unreserved set
// (ALPHA / DIGIT / "-" / "_" / "." / "~") with uppercase hex, byte by byte.
// The table must match what the transport puts on the wire or server-side
// verification fails.
func escape(s string) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			hexCount++
		}
	}

	if hexCount == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*hexCount)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	return 'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
