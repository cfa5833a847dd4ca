package credentials

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid base64 secret", func(t *testing.T) {
		creds, err := New("AKIDEXAMPLE", "c2VjcmV0MTIz")
		require.NoError(t, err)
		assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	})

	t.Run("invalid base64 secret fails", func(t *testing.T) {
		_, err := New("AKIDEXAMPLE", "not base64!!")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty secret fails", func(t *testing.T) {
		_, err := New("AKIDEXAMPLE", "")
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestKey(t *testing.T) {
	creds, err := New("AKIDEXAMPLE", "c2VjcmV0MTIz")
	require.NoError(t, err)

	key, err := creds.Key()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret123"), key)
}

func TestKeyPair(t *testing.T) {
	t.Run("builds a signing key pair", func(t *testing.T) {
		creds, err := New("AKIDEXAMPLE", "c2VjcmV0MTIz")
		require.NoError(t, err)

		keys, err := creds.KeyPair()
		require.NoError(t, err)
		assert.Equal(t, "AKIDEXAMPLE", keys.AccessKeyID())
	})

	t.Run("malformed secret fails", func(t *testing.T) {
		creds := Credentials{AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "???"}

		_, err := creds.KeyPair()
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("reads both variables", func(t *testing.T) {
		t.Setenv(EnvAccessKeyID, "AKIDEXAMPLE")
		t.Setenv(EnvSecretAccessKey, "c2VjcmV0MTIz")

		creds, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
		assert.Equal(t, "c2VjcmV0MTIz", creds.SecretAccessKey)
	})

	t.Run("missing variables fail", func(t *testing.T) {
		t.Setenv(EnvAccessKeyID, "")
		t.Setenv(EnvSecretAccessKey, "")

		_, err := FromEnv()
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStringRedaction(t *testing.T) {
	creds, err := New("AKIDEXAMPLE", "c2VjcmV0MTIz")
	require.NoError(t, err)

	for _, rendered := range []string{
		creds.String(),
		fmt.Sprintf("%v", creds),
		fmt.Sprintf("%#v", creds),
	} {
		assert.NotContains(t, rendered, "c2VjcmV0MTIz")
	}
}
