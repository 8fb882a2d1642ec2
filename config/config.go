// Package config loads driveops connection settings from a TOML file.
//
// A configuration file looks like:
//
//	service_account_key_file = "service-account.json"
//	subject = "admin@example.com"
//	scopes = ["https://www.googleapis.com/auth/drive"]
//	timeout = "30s"
//
// The key may also be inlined with service_account_key. Relative key file paths are resolved
// against the directory of the configuration file. The DRIVEOPS_SERVICE_ACCOUNT_KEY_FILE
// environment variable overrides the key file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/Jumpaku/go-driveops"
)

// EnvServiceAccountKeyFile overrides service_account_key_file when set.
const EnvServiceAccountKeyFile = "DRIVEOPS_SERVICE_ACCOUNT_KEY_FILE"

// ErrNoServiceAccountKey is returned when neither an inline key nor a key file is configured.
var ErrNoServiceAccountKey = errors.New("config: no service account key configured")

// File is the on-disk representation of the configuration.
type File struct {
	ServiceAccountKeyFile string   `toml:"service_account_key_file"`
	ServiceAccountKey     string   `toml:"service_account_key"`
	Subject               string   `toml:"subject"`
	Scopes                []string `toml:"scopes"`
	Endpoint              string   `toml:"endpoint"`
	Timeout               string   `toml:"timeout"`
}

// DefaultPath returns ~/.driveops/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".driveops", "config.toml"), nil
}

// Load reads the configuration file at path.
func Load(path string) (driveops.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return driveops.Configuration{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes TOML data. Relative key file paths are resolved against baseDir.
func Parse(data []byte, baseDir string) (driveops.Configuration, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return driveops.Configuration{}, fmt.Errorf("config: decode: %w", err)
	}
	if env := os.Getenv(EnvServiceAccountKeyFile); env != "" {
		f.ServiceAccountKeyFile = env
	}
	return f.Resolve(baseDir)
}

// Resolve reads the referenced key file and converts f into a driveops.Configuration.
func (f File) Resolve(baseDir string) (driveops.Configuration, error) {
	cfg := driveops.Configuration{
		Subject:  f.Subject,
		Scopes:   f.Scopes,
		Endpoint: f.Endpoint,
		Timeout:  driveops.DefaultTimeout,
	}

	if f.Timeout != "" {
		timeout, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return driveops.Configuration{}, fmt.Errorf("config: invalid timeout %q: %w", f.Timeout, err)
		}
		if timeout <= 0 {
			return driveops.Configuration{}, fmt.Errorf("config: timeout must be positive, got %s", timeout)
		}
		cfg.Timeout = timeout
	}

	switch {
	case f.ServiceAccountKey != "":
		cfg.ServiceAccountKey = []byte(f.ServiceAccountKey)
	case f.ServiceAccountKeyFile != "":
		path := f.ServiceAccountKeyFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		key, err := os.ReadFile(path)
		if err != nil {
			return driveops.Configuration{}, fmt.Errorf("config: read service account key: %w", err)
		}
		cfg.ServiceAccountKey = key
	default:
		return driveops.Configuration{}, ErrNoServiceAccountKey
	}

	return cfg, nil
}
