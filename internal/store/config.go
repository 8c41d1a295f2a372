package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config is the client's local state under ~/.prosync/config.json.
// Profiles let one machine hold sessions against several ProSync backends
// (e.g. staging + production).
type Config struct {
	// CurrentProfile selects which profile the CLI/TUI uses by default.
	CurrentProfile string `json:"currentProfile,omitempty"`

	// Profiles maps profile name -> backend settings.
	Profiles map[string]Profile `json:"profiles,omitempty"`

	// GoogleClientID/Secret configure the identity-provider sign-in flow.
	// Stored globally: the identity provider is independent of the backend.
	GoogleClientID     string `json:"googleClientId,omitempty"`
	GoogleClientSecret string `json:"googleClientSecret,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type Profile struct {
	// ServerURL is the backend base URL (e.g. https://prosync.example.com).
	ServerURL string `json:"serverUrl"`

	// Username of the last successful login, shown in prompts and `whoami`.
	Username string `json:"username,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set (e.g. "unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

const DefaultProfile = "default"

func (c *Config) Profile(name string) (Profile, bool) {
	if c == nil || c.Profiles == nil {
		return Profile{}, false
	}
	p, ok := c.Profiles[name]
	return p, ok
}

func (c *Config) SetProfile(name string, p Profile) {
	if c.Profiles == nil {
		c.Profiles = map[string]Profile{}
	}
	c.Profiles[name] = p
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.prosync).
	if v := strings.TrimSpace(os.Getenv("PROSYNC_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".prosync"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Unique temp file name + atomic rename avoids cross-process clobbering
	// when CLI and TUI write config concurrently.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
