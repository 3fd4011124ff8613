package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds the CLI's connection settings. The session token is read
// from the environment first and falls back to the token file.
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
	Output    string
}

// DefaultConfig resolves settings from the DAWN_* environment.
func DefaultConfig() *Config {
	return &Config{
		ServerURL: envOr("DAWN_SERVER", "http://localhost:8080"),
		Token:     os.Getenv("DAWN_TOKEN"),
		TokenFile: envOr("DAWN_TOKEN_FILE", defaultTokenFile()),
		Output:    "text",
	}
}

// LoadToken reads the persisted token unless one was already provided.
// A missing token file is not an error.
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken persists the token for later invocations.
func (c *Config) SaveToken(token string) error {
	c.Token = token

	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0700); err != nil {
		return err
	}
	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dawn/token"
	}
	return filepath.Join(home, ".dawn", "token")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
