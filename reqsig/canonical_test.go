package reqsig

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyBodySHA256 is the hex SHA-256 of the empty string, the marker an
// absent body contributes to the canonical form.
const emptyBodySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestCanonicalRequest(t *testing.T) {
	t.Run("golden", func(t *testing.T) {
		canonical, err := CanonicalRequest(RequestDescriptor{
			Method: "GET",
			Path:   "/v1/jobs",
			Query: []Param{
				{Key: "limit", Value: "10"},
				{Key: "orgId", Value: "abc"},
			},
			Timestamp: "2024-01-01T00:00:00Z",
		})
		require.NoError(t, err)

		want := "GET\n/v1/jobs\nlimit=10&orgId=abc\n" + emptyBodySHA256 + "\n2024-01-01T00:00:00Z"
		assert.Equal(t, want, canonical)
	})

	t.Run("method is upper-cased", func(t *testing.T) {
		canonical, err := CanonicalRequest(RequestDescriptor{
			Method:    "get",
			Path:      "/v1/jobs",
			Timestamp: "2024-01-01T00:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "GET\n/v1/jobs\n\n"+emptyBodySHA256+"\n2024-01-01T00:00:00Z", canonical)
	})

	t.Run("empty path becomes slash", func(t *testing.T) {
		canonical, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Timestamp: "ts",
		})
		require.NoError(t, err)
		assert.Equal(t, "GET\n/\n\n"+emptyBodySHA256+"\nts", canonical)
	})

	t.Run("query order does not matter", func(t *testing.T) {
		a, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Path:      "/v1/jobs",
			Query:     []Param{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}},
			Timestamp: "ts",
		})
		require.NoError(t, err)

		b, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Path:      "/v1/jobs",
			Query:     []Param{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
			Timestamp: "ts",
		})
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("duplicate keys break ties by value", func(t *testing.T) {
		a, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Query:     []Param{{Key: "k", Value: "z"}, {Key: "k", Value: "a"}},
			Timestamp: "ts",
		})
		require.NoError(t, err)

		b, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Query:     []Param{{Key: "k", Value: "a"}, {Key: "k", Value: "z"}},
			Timestamp: "ts",
		})
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Contains(t, a, "k=a&k=z")
	})

	t.Run("canonicalization does not mutate the query slice", func(t *testing.T) {
		query := []Param{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}

		_, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Query:     query,
			Timestamp: "ts",
		})
		require.NoError(t, err)

		assert.Equal(t, []Param{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}, query)
	})

	t.Run("query values are percent-encoded", func(t *testing.T) {
		canonical, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Path:      "/v1/devices",
			Query:     []Param{{Key: "name filter", Value: "café/+"}},
			Timestamp: "ts",
		})
		require.NoError(t, err)
		assert.Contains(t, canonical, "name%20filter=caf%C3%A9%2F%2B")
	})

	t.Run("unreserved characters pass through", func(t *testing.T) {
		assert.Equal(t, "AZaz09-_.~", escape("AZaz09-_.~"))
	})

	t.Run("empty body keeps the marker", func(t *testing.T) {
		withNil, err := CanonicalRequest(RequestDescriptor{
			Method:    "POST",
			Path:      "/graphql/v1",
			Timestamp: "ts",
		})
		require.NoError(t, err)

		withEmpty, err := CanonicalRequest(RequestDescriptor{
			Method:    "POST",
			Path:      "/graphql/v1",
			Body:      []byte{},
			Timestamp: "ts",
		})
		require.NoError(t, err)

		assert.Equal(t, withNil, withEmpty)
		assert.Contains(t, withNil, emptyBodySHA256)
	})

	t.Run("missing method fails", func(t *testing.T) {
		_, err := CanonicalRequest(RequestDescriptor{Path: "/", Timestamp: "ts"})
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("missing timestamp fails", func(t *testing.T) {
		_, err := CanonicalRequest(RequestDescriptor{Method: "GET", Path: "/"})
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("invalid UTF-8 in path fails", func(t *testing.T) {
		_, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Path:      "/v1/\xff",
			Timestamp: "ts",
		})
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("invalid UTF-8 in query fails", func(t *testing.T) {
		_, err := CanonicalRequest(RequestDescriptor{
			Method:    "GET",
			Query:     []Param{{Key: "k", Value: "\xfe"}},
			Timestamp: "ts",
		})
		assert.ErrorIs(t, err, ErrEncoding)
	})
}

func TestQueryFromValues(t *testing.T) {
	params := QueryFromValues(url.Values{
		"limit": {"10"},
		"id":    {"a", "b"},
	})

	assert.ElementsMatch(t, []Param{
		{Key: "limit", Value: "10"},
		{Key: "id", Value: "a"},
		{Key: "id", Value: "b"},
	}, params)
}
