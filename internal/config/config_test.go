// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.MaxHits != 100 {
		t.Errorf("expected default max_hits=100, got %d", cfg.Defaults.MaxHits)
	}
	if cfg.Defaults.Verbose {
		t.Error("expected verbose=false by default")
	}
	if cfg.Matchers.Account.LookbackLines != 2 {
		t.Errorf("expected default lookback_lines=2, got %d", cfg.Matchers.Account.LookbackLines)
	}
	if len(cfg.Matchers.Account.Keywords) != 2 {
		t.Errorf("expected 2 default account keywords, got %v", cfg.Matchers.Account.Keywords)
	}
}

func TestLoadConfig_ProfilesInitialized(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profiles == nil {
		t.Error("expected profiles map to be initialized")
	}
	// Default verizon profile should exist
	if _, ok := cfg.Profiles["verizon"]; !ok {
		t.Error("expected 'verizon' profile to exist in defaults")
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  verbose: true
  max_hits: 25
matchers:
  account:
    keywords: [kundennummer]
    lookback_lines: 1
profiles:
  monthly:
    targets: [account, phones]
    max_hits: 50
    description: Monthly statement cleanup
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Defaults.Verbose {
		t.Error("expected verbose=true")
	}
	if cfg.Defaults.MaxHits != 25 {
		t.Errorf("expected max_hits=25, got %d", cfg.Defaults.MaxHits)
	}
	if len(cfg.Matchers.Account.Keywords) != 1 || cfg.Matchers.Account.Keywords[0] != "kundennummer" {
		t.Errorf("expected custom keywords, got %v", cfg.Matchers.Account.Keywords)
	}
	if cfg.Matchers.Account.LookbackLines != 1 {
		t.Errorf("expected lookback_lines=1, got %d", cfg.Matchers.Account.LookbackLines)
	}

	profile := cfg.GetProfile("monthly")
	if profile == nil {
		t.Fatal("expected 'monthly' profile")
	}
	if profile.MaxHits != 50 {
		t.Errorf("expected profile max_hits=50, got %d", profile.MaxHits)
	}
	if len(profile.Targets) != 2 {
		t.Errorf("expected 2 profile targets, got %v", profile.Targets)
	}
}

func TestLoadConfig_OmittedFieldsKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	// Only verbose is set; max_hits and matcher settings must keep
	// their defaults instead of unmarshaling to zero values.
	content := `
defaults:
  verbose: true
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.MaxHits != 100 {
		t.Errorf("expected max_hits to keep default 100, got %d", cfg.Defaults.MaxHits)
	}
	if cfg.Matchers.Account.LookbackLines != 2 {
		t.Errorf("expected lookback_lines to keep default 2, got %d", cfg.Matchers.Account.LookbackLines)
	}
	if len(cfg.Matchers.Account.Keywords) == 0 {
		t.Error("expected account keywords to keep defaults")
	}
}

func TestLoadConfig_InvalidMaxHits(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  max_hits: 0
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// max_hits: 0 is explicitly present and invalid
	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected validation error for max_hits=0")
	}
}

func TestLoadConfig_UnknownProfileTarget(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
profiles:
  broken:
    targets: [ssn]
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected validation error for unknown target")
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	// A path that doesn't exist should fall back to defaults
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.MaxHits != 100 {
		t.Errorf("expected default max_hits=100, got %d", cfg.Defaults.MaxHits)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestGetProfile_Missing(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetProfile("nope") != nil {
		t.Error("expected nil for missing profile")
	}
}

func TestListProfiles_Sorted(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Profiles["zeta"] = Profile{Description: "z"}
	cfg.Profiles["alpha"] = Profile{Description: "a"}

	names := cfg.ListProfiles()
	expected := []string{"alpha", "verizon", "zeta"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d profiles, got %d: %v", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("expected %q at position %d, got %q", name, i, names[i])
		}
	}
}
