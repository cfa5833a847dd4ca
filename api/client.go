package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http2"

	"github.com/vitalvas/remoteit/credentials"
	"github.com/vitalvas/remoteit/reqsig"
)

// BaseURL is the remote.it API endpoint.
const BaseURL = "https://api.remote.it"

// GraphQLPath is the path of the GraphQL endpoint under BaseURL.
const GraphQLPath = "/graphql/v1"

// FileUploadPath is the path of the multipart file upload endpoint under
// BaseURL.
const FileUploadPath = "/graphql/v1/file/upload"

// defaultTimeout bounds a single API call when Config.Timeout is zero.
const defaultTimeout = 30 * time.Second

// Config configures a Client.
type Config struct {
	// Credentials is the access key pair used to sign requests. Required.
	Credentials credentials.Credentials

	// BaseURL overrides the API endpoint. Defaults to BaseURL.
	BaseURL string

	// Timeout bounds each API call, including body download. Defaults to
	// 30 seconds.
	Timeout time.Duration

	// Transport configures proxy, TLS, and connection pool settings for
	// the underlying HTTP transport. When nil, a clone of
	// http.DefaultTransport is used.
	Transport *http.Transport

	// EnableHTTP2 explicitly configures HTTP/2 on the transport.
	EnableHTTP2 bool

	// DisableRequestID turns off the X-Request-ID header the client adds
	// to every request.
	DisableRequestID bool
}

// Client issues signed operations against the remote.it API. Construct it
// with New. A Client is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	requestID bool
}

// New validates the configuration and builds a Client. The credentials are
// decoded once here; signing failures after construction can only come from
// the request itself.
func New(cfg Config) (*Client, error) {
	keys, err := cfg.Credentials.KeyPair()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	rawURL := cfg.BaseURL
	if rawURL == "" {
		rawURL = BaseURL
	}

	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", ErrInvalidConfig, err)
	}

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}

	if cfg.EnableHTTP2 {
		if err := http2.ConfigureTransport(base); err != nil {
			return nil, fmt.Errorf("%w: http2: %v", ErrInvalidConfig, err)
		}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: reqsig.NewTransport(base, keys),
			Timeout:   timeout,
		},
		requestID: !cfg.DisableRequestID,
	}, nil
}

// endpoint resolves a service path against the configured base URL.
func (c *Client) endpoint(path string) string {
	ref := url.URL{Path: path}

	return c.baseURL.ResolveReference(&ref).String()
}
