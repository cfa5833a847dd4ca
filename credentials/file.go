package credentials

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultProfile is the profile name the remote.it tooling writes by default.
const DefaultProfile = "default"

// Keys recognized inside a profile section, matched case-insensitively.
const (
	fileKeyAccessKeyID     = "R3_ACCESS_KEY_ID"
	fileKeySecretAccessKey = "R3_SECRET_ACCESS_KEY"
)

// Profiles holds the named credential profiles parsed from a credentials
// file. Secrets are unvalidated until a profile is retrieved.
type Profiles struct {
	profiles map[string]Credentials
}

// Profile returns the named credentials with the secret validated.
func (p Profiles) Profile(name string) (Credentials, error) {
	creds, ok := p.profiles[name]
	if !ok {
		return Credentials{}, fmt.Errorf("%w: profile %q", ErrNotFound, name)
	}

	if _, err := creds.Key(); err != nil {
		return Credentials{}, fmt.Errorf("profile %q: %w", name, err)
	}

	return creds, nil
}

// Names returns the profile names present in the file.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p.profiles))
	for name := range p.profiles {
		names = append(names, name)
	}

	return names
}

// Len returns the number of profiles.
func (p Profiles) Len() int {
	return len(p.profiles)
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Path overrides the credentials file location. Defaults to
	// ~/.remoteit/credentials.
	Path string
}

// Load reads and parses the credentials file.
func Load(opts LoadOptions) (Profiles, error) {
	path := opts.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Profiles{}, fmt.Errorf("%w: %v", ErrHomeDir, err)
		}

		path = filepath.Join(home, ".remoteit", "credentials")
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Profiles{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return Profiles{}, fmt.Errorf("credentials: read %s: %w", path, err)
	}
	defer file.Close()

	return parse(file)
}

// parse reads the INI-format profile file. Sections name profiles; within a
// section only the two recognized keys are kept. Lines starting with ';' or
// '#' are comments.
func parse(file io.Reader) (Profiles, error) {
	profiles := make(map[string]Credentials)

	var section string
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		if line[0] == '[' {
			if line[len(line)-1] != ']' {
				return Profiles{}, fmt.Errorf("%w: line %d: unterminated section header", ErrMalformed, lineNo)
			}

			section = strings.TrimSpace(line[1 : len(line)-1])
			if section == "" {
				return Profiles{}, fmt.Errorf("%w: line %d: empty section name", ErrMalformed, lineNo)
			}

			if _, ok := profiles[section]; !ok {
				profiles[section] = Credentials{}
			}

			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Profiles{}, fmt.Errorf("%w: line %d: expected key=value", ErrMalformed, lineNo)
		}

		if section == "" {
			return Profiles{}, fmt.Errorf("%w: line %d: key outside of a profile section", ErrMalformed, lineNo)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		creds := profiles[section]
		switch {
		case strings.EqualFold(key, fileKeyAccessKeyID):
			creds.AccessKeyID = value

		case strings.EqualFold(key, fileKeySecretAccessKey):
			creds.SecretAccessKey = value
		}
		profiles[section] = creds
	}

	if err := scanner.Err(); err != nil {
		return Profiles{}, fmt.Errorf("credentials: %w", err)
	}

	return Profiles{profiles: profiles}, nil
}
