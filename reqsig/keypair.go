package reqsig

import "fmt"

// AccessKeyPair is the credential used to sign requests: an opaque key
// identifier the server uses to look up the matching secret, and the secret
// key bytes themselves.
//
// The pair is immutable once constructed. The secret is copied on
// construction and never exposed through String or error messages.
type AccessKeyPair struct {
	accessKeyID string
	secret      []byte
}

// NewAccessKeyPair validates and constructs an AccessKeyPair. The secret is
// copied, so the caller may reuse or zero its slice afterwards.
func NewAccessKeyPair(accessKeyID string, secret []byte) (AccessKeyPair, error) {
	if accessKeyID == "" {
		return AccessKeyPair{}, fmt.Errorf("%w: access key id must not be empty", ErrInvalidCredentials)
	}

	if len(secret) == 0 {
		return AccessKeyPair{}, fmt.Errorf("%w: secret access key must not be empty", ErrInvalidCredentials)
	}

	secretCopy := make([]byte, len(secret))
	copy(secretCopy, secret)

	return AccessKeyPair{accessKeyID: accessKeyID, secret: secretCopy}, nil
}

// AccessKeyID returns the key identifier.
func (k AccessKeyPair) AccessKeyID() string {
	return k.accessKeyID
}

// valid reports whether the pair was built through NewAccessKeyPair.
func (k AccessKeyPair) valid() bool {
	return k.accessKeyID != "" && len(k.secret) > 0
}

// String returns the key id with the secret redacted.
func (k AccessKeyPair) String() string {
	return fmt.Sprintf("AccessKeyPair(%s, [redacted])", k.accessKeyID)
}

// GoString keeps the secret out of %#v output.
func (k AccessKeyPair) GoString() string {
	return k.String()
}
