package credentials

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/vitalvas/remoteit/reqsig"
)

// Environment variable names used by FromEnv, matching the remote.it CLI.
const (
	EnvAccessKeyID     = "R3_ACCESS_KEY_ID"
	EnvSecretAccessKey = "R3_SECRET_ACCESS_KEY"
)

// Credentials is a remote.it access key pair as stored on disk: the key id
// and the base64-encoded secret.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// New validates and constructs Credentials. The secret must be valid
// standard base64.
func New(accessKeyID, secretAccessKey string) (Credentials, error) {
	c := Credentials{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
	}

	if _, err := c.Key(); err != nil {
		return Credentials{}, err
	}

	return c, nil
}

// FromEnv reads credentials from the R3_ACCESS_KEY_ID and
// R3_SECRET_ACCESS_KEY environment variables.
func FromEnv() (Credentials, error) {
	id := os.Getenv(EnvAccessKeyID)
	secret := os.Getenv(EnvSecretAccessKey)

	if id == "" || secret == "" {
		return Credentials{}, fmt.Errorf("%w: %s and %s must be set", ErrNotFound, EnvAccessKeyID, EnvSecretAccessKey)
	}

	return New(id, secret)
}

// Key decodes the secret access key into the raw signing key bytes.
func (c Credentials) Key() ([]byte, error) {
	if c.SecretAccessKey == "" {
		return nil, fmt.Errorf("%w: secret access key is empty", ErrMalformed)
	}

	key, err := base64.StdEncoding.DecodeString(c.SecretAccessKey)
	if err != nil {
		return nil, fmt.Errorf("%w: secret access key is not valid base64", ErrMalformed)
	}

	return key, nil
}

// KeyPair decodes the secret and builds the signing key pair.
func (c Credentials) KeyPair() (reqsig.AccessKeyPair, error) {
	key, err := c.Key()
	if err != nil {
		return reqsig.AccessKeyPair{}, err
	}

	return reqsig.NewAccessKeyPair(c.AccessKeyID, key)
}

// String redacts the secret.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials(%s, [redacted])", c.AccessKeyID)
}

// GoString keeps the secret out of %#v output.
func (c Credentials) GoString() string {
	return c.String()
}
