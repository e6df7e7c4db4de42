package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultPageSize is the number of changed files requested per page
const DefaultPageSize = 100

// Settings holds everything a run reads from its environment
type Settings struct {
	Token      string `koanf:"github_token"`
	EventPath  string `koanf:"github_event_path"`
	EventName  string `koanf:"github_event_name"`
	Workspace  string `koanf:"github_workspace"`
	APIURL     string `koanf:"github_api_url"`
	ConfigPath string `koanf:"config_path"`
	PageSize   int    `koanf:"label_pr_page_size"`
	LogLevel   string `koanf:"label_pr_log_level"`
	LogFormat  string `koanf:"label_pr_log_format"`
}

// settingsKeys are the environment variables labelpr reads, lower-cased
var settingsKeys = map[string]bool{
	"github_token":        true,
	"github_event_path":   true,
	"github_event_name":   true,
	"github_workspace":    true,
	"github_api_url":      true,
	"config_path":         true,
	"label_pr_page_size":  true,
	"label_pr_log_level":  true,
	"label_pr_log_format": true,
}

// DefaultSettings returns settings with every default applied
func DefaultSettings() *Settings {
	return &Settings{
		ConfigPath: DefaultConfigPath,
		PageSize:   DefaultPageSize,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// LoadSettings reads settings from the process environment on top of the
// defaults. Variables set to the empty string count as unset.
//
// Recognised variables:
//
//	GITHUB_TOKEN, GITHUB_EVENT_PATH, GITHUB_EVENT_NAME, GITHUB_WORKSPACE,
//	GITHUB_API_URL, CONFIG_PATH, LABEL_PR_PAGE_SIZE, LABEL_PR_LOG_LEVEL, LABEL_PR_LOG_FORMAT
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(env.ProviderWithValue("", ".", func(name, value string) (string, interface{}) {
		key := strings.ToLower(name)
		// an empty key tells the provider to skip the variable
		if !settingsKeys[key] || value == "" {
			return "", nil
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	settings := DefaultSettings()
	if err := k.Unmarshal("", settings); err != nil {
		return nil, &EnvironmentError{
			Variable: "LABEL_PR_PAGE_SIZE",
			Message:  "invalid value",
			Cause:    err,
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks values that do not depend on what the run is about to do
func (s *Settings) Validate() error {
	if s.PageSize <= 0 {
		return &EnvironmentError{
			Variable: "LABEL_PR_PAGE_SIZE",
			Message:  fmt.Sprintf("page size must be positive, got %d", s.PageSize),
		}
	}
	return nil
}

// RequireToken returns the token or an EnvironmentError when it is unset
func (s *Settings) RequireToken() (string, error) {
	token := strings.TrimSpace(s.Token)
	if token == "" {
		return "", &EnvironmentError{Variable: "GITHUB_TOKEN", Message: "variable is not set"}
	}
	return token, nil
}

// RequireEventPath returns the event payload path or an EnvironmentError when it is unset
func (s *Settings) RequireEventPath() (string, error) {
	if s.EventPath == "" {
		return "", &EnvironmentError{Variable: "GITHUB_EVENT_PATH", Message: "variable is not set"}
	}
	return s.EventPath, nil
}

// ResolvedConfigPath returns the rules file path. Relative paths are taken
// from the workspace when one is set.
func (s *Settings) ResolvedConfigPath() string {
	path := s.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if filepath.IsAbs(path) || s.Workspace == "" {
		return path
	}
	return filepath.Join(s.Workspace, path)
}
