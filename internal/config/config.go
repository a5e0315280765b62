// Package config loads recipectl settings.
//
// Precedence, highest first:
//  1. Environment variables (RECIPECTL_BACKEND_BASE_URL -> backend.base_url)
//  2. YAML config file (~/.config/recipectl/config.yaml)
//  3. Defaults
//
// ${VAR} references inside the YAML file are expanded before parsing.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "RECIPECTL_"

const maxConfigFileSize = 1024 * 1024 // 1MB

// Config is the complete client configuration.
type Config struct {
	Backend BackendConfig `koanf:"backend"`
	Session SessionConfig `koanf:"session"`
	Pages   PagesConfig   `koanf:"pages"`
	Logging LoggingConfig `koanf:"logging"`
	Output  OutputConfig  `koanf:"output"`
}

// BackendConfig locates the recipe backend.
type BackendConfig struct {
	BaseURL string `koanf:"base_url"`
	// Timeout bounds each request; 0 means wait indefinitely.
	Timeout time.Duration `koanf:"timeout"`
}

// SessionConfig locates the persisted session.
type SessionConfig struct {
	Path string `koanf:"path"`
}

// PagesConfig holds navigation targets.
type PagesConfig struct {
	Login string `koanf:"login"`
}

// LoggingConfig holds console logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// OutputConfig holds list rendering settings.
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Dir returns ~/.config/recipectl.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "recipectl"), nil
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{
		Backend: BackendConfig{BaseURL: "http://localhost:8081"},
		Pages:   PagesConfig{Login: "../login/login-page.html"},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Output:  OutputConfig{Format: "text"},
	}
	if dir, err := Dir(); err == nil {
		cfg.Session.Path = filepath.Join(dir, "session.yaml")
	}
	return cfg
}

// Load reads configuration from path, then applies environment overrides.
// An empty path selects the default location, where a missing file is not
// an error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := readConfigFile(path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(expandEnvVars(data)), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Session.Path = expandHome(cfg.Session.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return data, nil
}

// envKey maps RECIPECTL_BACKEND_BASE_URL to backend.base_url: the first
// segment after the prefix is the section, the rest is the field name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} with the variable's value, or "" when
// it is unset.
func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Validate returns the first problem found in c.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("backend.base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend.base_url must be an http(s) origin, got %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout cannot be negative: %s", c.Backend.Timeout)
	}
	if c.Session.Path == "" {
		return fmt.Errorf("session.path is required")
	}
	if c.Pages.Login == "" {
		return fmt.Errorf("pages.login is required")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}
