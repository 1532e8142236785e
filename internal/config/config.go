// Package config loads claudekit configuration from config files and
// environment variables. The three source_* keys identify the GitHub
// repository that hosts the guideline files; they combine into a
// raw.githubusercontent.com base URL unless base_url overrides the whole
// prefix.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// rawHost is the content host the source repository coordinates resolve
// against.
const rawHost = "https://raw.githubusercontent.com"

// LocalConfigPath is the default project-relative config file location.
const LocalConfigPath = ".claudekit/config.json"

// Configuration represents the claudekit CLI tool configuration
type Configuration struct {
	SourceAccount string `koanf:"source_account" validate:"required"`
	SourceRepo    string `koanf:"source_repo" validate:"required"`
	SourceBranch  string `koanf:"source_branch" validate:"required"`
	BaseURL       string `koanf:"base_url" validate:"omitempty,url"`
	Transport     string `koanf:"transport" validate:"oneof=auto curl wget"`
	Timeout       int    `koanf:"timeout" validate:"min=1,max=3600"`
	ShowProgress  bool   `koanf:"show_progress"`
}

// ResolvedBaseURL returns the URL prefix remote paths are joined to.
// An explicit base_url wins; otherwise the source coordinates are expanded
// into the raw content host template.
func (c *Configuration) ResolvedBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("%s/%s/%s/%s", rawHost, c.SourceAccount, c.SourceRepo, c.SourceBranch)
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".claudekit", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("CLAUDEKIT_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: CLAUDEKIT_SOURCE_BRANCH -> source_branch
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CLAUDEKIT_"))
}
