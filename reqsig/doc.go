// Package reqsig implements the request signing scheme required by the
// remote.it GraphQL API.
//
// The core is a single pure computation: a request descriptor (method, path,
// query parameters, body, timestamp) is reduced to a canonical string, an
// HMAC-SHA256 digest is computed over it with the secret access key, and the
// result is returned as a set of signed headers the service can verify
// against the same shared secret.
//
// # Signing a request
//
//	keys, err := reqsig.NewAccessKeyPair("AKIDEXAMPLE", secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signed, err := reqsig.Sign(keys, reqsig.RequestDescriptor{
//	    Method:    "POST",
//	    Path:      "/graphql/v1",
//	    Body:      body,
//	    Timestamp: reqsig.Now(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signed.Apply(req.Header)
//
// Sign is deterministic: identical inputs always produce identical headers.
// It performs no I/O, keeps no state, and is safe for concurrent use. To
// rotate keys while requests are in flight, hand each call its own
// AccessKeyPair value.
//
// # Client transport
//
// NewTransport wraps an *http.Transport in an http.RoundTripper that signs
// every outgoing request:
//
//	client := &http.Client{
//	    Transport: reqsig.NewTransport(nil, keys),
//	}
//
// The timestamp is taken at signing time. The service validates it against a
// tolerance window, so a large clock skew between client and server surfaces
// as rejected requests; the signer cannot correct for it.
package reqsig
