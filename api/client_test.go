package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/remoteit/credentials"
)

// testSecret is "secret123" in base64.
const testSecret = "c2VjcmV0MTIz"

func testCredentials(t *testing.T) credentials.Credentials {
	t.Helper()

	creds, err := credentials.New("AKIDEXAMPLE", testSecret)
	require.NoError(t, err)

	return creds
}

// newTestClient starts an httptest server with the given handler and returns
// a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		Credentials: testCredentials(t),
		BaseURL:     srv.URL,
	})
	require.NoError(t, err)

	return client
}

func TestNew(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		client, err := New(Config{Credentials: testCredentials(t)})
		require.NoError(t, err)
		assert.Equal(t, BaseURL+GraphQLPath, client.endpoint(GraphQLPath))
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := New(Config{})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed secret", func(t *testing.T) {
		_, err := New(Config{
			Credentials: credentials.Credentials{
				AccessKeyID:     "AKIDEXAMPLE",
				SecretAccessKey: "not base64!!",
			},
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unparseable base url", func(t *testing.T) {
		_, err := New(Config{
			Credentials: testCredentials(t),
			BaseURL:     "http://[::1",
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("http2 transport", func(t *testing.T) {
		_, err := New(Config{
			Credentials: testCredentials(t),
			EnableHTTP2: true,
		})
		assert.NoError(t, err)
	})

	t.Run("custom base url", func(t *testing.T) {
		client, err := New(Config{
			Credentials: testCredentials(t),
			BaseURL:     "https://staging.example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://staging.example.com"+GraphQLPath, client.endpoint(GraphQLPath))
	})
}
