package reqsig

import (
	"bytes"
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that signs every outgoing request with
// an AccessKeyPair before delegating to a base transport.
//
// Use NewTransport to create one with a configured *http.Transport for
// proxy, TLS, and timeout settings.
type Transport struct {
	base http.RoundTripper
	keys AccessKeyPair
}

// NewTransport creates a signing Transport. When base is nil, a clone of
// http.DefaultTransport is used, giving an independent connection pool with
// default proxy, TLS, and timeout settings.
func NewTransport(base *http.Transport, keys AccessKeyPair) *Transport {
	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base: rt,
		keys: keys,
	}
}

// RoundTrip signs the request and then delegates to the base transport.
// The original request is cloned before signing to avoid mutation. When
// GetBody is available, the body is re-read for the digest so the caller's
// body reader is not consumed.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	var body []byte
	if req.Body != nil {
		src := req.Body
		if req.GetBody != nil {
			rc, err := req.GetBody()
			if err != nil {
				return nil, err
			}

			src = rc
		}

		var err error
		body, err = io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}

		clone.Body = io.NopCloser(bytes.NewReader(body))
		clone.ContentLength = int64(len(body))
	}

	signed, err := Sign(t.keys, RequestDescriptor{
		Method:    req.Method,
		Path:      req.URL.EscapedPath(),
		Query:     QueryFromValues(req.URL.Query()),
		Body:      body,
		Timestamp: Now(),
	})
	if err != nil {
		return nil, err
	}

	signed.Apply(clone.Header)

	return t.base.RoundTrip(clone)
}
