package api

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/remoteit/credentials"
)

// fileConfig is the YAML shape of a client configuration file.
type fileConfig struct {
	BaseURL         string `yaml:"base_url"`
	Timeout         string `yaml:"timeout"`
	Profile         string `yaml:"profile"`
	CredentialsFile string `yaml:"credentials_file"`
}

// LoadConfig reads a YAML client configuration file and resolves it into a
// Config, loading the referenced credentials profile:
//
//	base_url: https://api.remote.it
//	timeout: 45s
//	profile: staging
//	credentials_file: /etc/remoteit/credentials
//
// Every field is optional: base_url defaults to BaseURL, timeout to the
// client default, profile to "default", and credentials_file to the standard
// remote.it location.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var timeout time.Duration
	if fc.Timeout != "" {
		timeout, err = time.ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("%w: timeout: %v", ErrInvalidConfig, err)
		}
	}

	profiles, err := credentials.Load(credentials.LoadOptions{Path: fc.CredentialsFile})
	if err != nil {
		return Config{}, err
	}

	profile := fc.Profile
	if profile == "" {
		profile = credentials.DefaultProfile
	}

	creds, err := profiles.Profile(profile)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Credentials: creds,
		BaseURL:     fc.BaseURL,
		Timeout:     timeout,
	}, nil
}
