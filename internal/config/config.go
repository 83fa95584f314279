// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Verbose bool `yaml:"verbose"`
		Debug   bool `yaml:"debug"`
		NoColor bool `yaml:"no_color"`
		MaxHits int  `yaml:"max_hits"`
	} `yaml:"defaults"`

	// Matcher configurations
	Matchers struct {
		Account struct {
			Keywords      []string `yaml:"keywords"`
			LookbackLines int      `yaml:"lookback_lines"`
		} `yaml:"account"`
	} `yaml:"matchers"`

	// Profiles for different redaction scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a redaction profile with specific settings
type Profile struct {
	Targets     []string `yaml:"targets"`
	MaxHits     int      `yaml:"max_hits"`
	Verbose     bool     `yaml:"verbose"`
	Description string   `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false
	config.Defaults.MaxHits = 100

	config.Matchers.Account.Keywords = []string{"account", "acct"}
	config.Matchers.Account.LookbackLines = 2

	// Add the default billing profile
	config.Profiles["verizon"] = Profile{
		Targets:     []string{"account", "phones", "call-details"},
		MaxHits:     100,
		Verbose:     false,
		Description: "Wireless bill redaction: account number, phone numbers, and call-detail records",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults for fields YAML unmarshaling zeros when absent
	if !containsField(data, "defaults", "max_hits") {
		config.Defaults.MaxHits = 100
	}
	if !containsField(data, "matchers", "account", "keywords") {
		config.Matchers.Account.Keywords = []string{"account", "acct"}
	}
	if !containsField(data, "matchers", "account", "lookback_lines") {
		config.Matchers.Account.LookbackLines = 2
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads configuration from the specified file path,
// falling back to the built-in defaults when the file is missing or
// fails to parse.
func LoadConfigOrDefault(configPath string) *Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		config, _ = LoadConfig("")
	}
	return config
}

// ValidateConfig checks the configuration for values that would make a
// run misbehave rather than fail outright.
func ValidateConfig(config *Config) error {
	if config.Defaults.MaxHits < 1 {
		return fmt.Errorf("defaults.max_hits must be at least 1, got %d", config.Defaults.MaxHits)
	}
	if config.Matchers.Account.LookbackLines < 0 {
		return fmt.Errorf("matchers.account.lookback_lines must not be negative, got %d",
			config.Matchers.Account.LookbackLines)
	}

	for name, profile := range config.Profiles {
		if profile.MaxHits < 0 {
			return fmt.Errorf("profile %q: max_hits must not be negative, got %d", name, profile.MaxHits)
		}
		for _, target := range profile.Targets {
			if !validProfileTarget(target) {
				return fmt.Errorf("profile %q: unknown target %q", name, target)
			}
		}
	}

	return nil
}

func validProfileTarget(target string) bool {
	switch target {
	case "account", "phones", "call-details", "verizon":
		return true
	}
	return false
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	if fileExists("bill-redactor.yaml") {
		return "bill-redactor.yaml"
	}
	if fileExists("bill-redactor.yml") {
		return "bill-redactor.yml"
	}

	// Project-specific config
	if fileExists(".bill-redactor.yaml") {
		return ".bill-redactor.yaml"
	}
	if fileExists(".bill-redactor.yml") {
		return ".bill-redactor.yml"
	}

	if runtime.GOOS == "windows" {
		return findWindowsConfigFile()
	}
	return findUnixConfigFile()
}

// findWindowsConfigFile looks for configuration files in Windows-specific locations
func findWindowsConfigFile() string {
	// Check APPDATA directory (recommended Windows location)
	if appData := os.Getenv("APPDATA"); appData != "" {
		configFile := filepath.Join(appData, "bill-redactor", "config.yaml")
		if fileExists(configFile) {
			return configFile
		}
		configFile = filepath.Join(appData, "bill-redactor", "config.yml")
		if fileExists(configFile) {
			return configFile
		}
	}

	// Check USERPROFILE directory (fallback)
	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		configFile := filepath.Join(userProfile, ".bill-redactor", "config.yaml")
		if fileExists(configFile) {
			return configFile
		}
		configFile = filepath.Join(userProfile, ".bill-redactor", "config.yml")
		if fileExists(configFile) {
			return configFile
		}
	}

	return ""
}

// findUnixConfigFile looks for configuration files in Unix-specific locations
func findUnixConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeConfig := filepath.Join(home, ".bill-redactor.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}
	homeConfig = filepath.Join(home, ".bill-redactor.yml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "bill-redactor", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "bill-redactor", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}

// ListProfiles returns the available profile names in sorted order
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}

		next, exists := current[key]
		if !exists {
			return false
		}
		current, exists = next.(map[string]interface{})
		if !exists {
			return false
		}
	}

	return false
}
