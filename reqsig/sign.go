package reqsig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

// timestampFormat is the Date header format the remote.it API expects,
// always in GMT.
const timestampFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Timestamp formats t the way the service expects it in the Date header and
// the canonical request.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

// Now returns the current time formatted with Timestamp. It is called at
// signing time; timestamps must not be cached across requests because the
// server bounds the replay window with them.
func Now() string {
	return Timestamp(time.Now())
}

// SignedHeaders is the output of Sign: the values to attach to the outgoing
// request so the server can authenticate it.
type SignedHeaders struct {
	// Timestamp echoes the descriptor timestamp.
	Timestamp string

	// AccessKeyID identifies which secret the server should verify with.
	AccessKeyID string

	// Signature is the lowercase hex HMAC-SHA256 digest of the canonical
	// request.
	Signature string
}

// Authorization renders the Authorization header value for the remote.it
// wire contract.
func (s SignedHeaders) Authorization() string {
	return fmt.Sprintf("Signature keyId=%q,algorithm=%q,signature=%q",
		s.AccessKeyID, "hmac-sha256", s.Signature)
}

// Apply sets the Date and Authorization headers on h.
func (s SignedHeaders) Apply(h http.Header) {
	h.Set("Date", s.Timestamp)
	h.Set("Authorization", s.Authorization())
}

// Sign computes the signature for the descriptor with the given key pair.
//
// It is a pure function of its inputs: no clock reads, no randomness, no
// retries. Canonicalization failures and credential validation failures are
// returned unwrapped in full; no partial signature is ever produced.
func Sign(keys AccessKeyPair, d RequestDescriptor) (SignedHeaders, error) {
	if !keys.valid() {
		return SignedHeaders{}, fmt.Errorf("%w: key pair must be built with NewAccessKeyPair", ErrInvalidCredentials)
	}

	canonical, err := CanonicalRequest(d)
	if err != nil {
		return SignedHeaders{}, err
	}

	mac := hmac.New(sha256.New, keys.secret)
	mac.Write([]byte(canonical))

	return SignedHeaders{
		Timestamp:   d.Timestamp,
		AccessKeyID: keys.accessKeyID,
		Signature:   hex.EncodeToString(mac.Sum(nil)),
	}, nil
}
