package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, cfg *Config) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := Save(path, cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	return path
}

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Registries: []Registry{
			{URL: "https://hub.example.com", Alias: "production"},
			{URL: "https://staging.example.com", Alias: "staging"},
		},
	}
	path := writeConfig(t, dir, cfg)

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(loaded.Registries) != 2 {
		t.Fatalf("expected 2 registries, got %d", len(loaded.Registries))
	}
	if loaded.Registries[0].Alias != "production" {
		t.Errorf("alias = %q, want %q", loaded.Registries[0].Alias, "production")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestFindConfigFile_SearchesParentDirectories(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, DefaultConfig())

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(originalDir)
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	path, err := FindConfigFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("path = %q, want file %q", path, ConfigFileName)
	}
}

func TestGetRegistryByAlias(t *testing.T) {
	cfg := &Config{
		Registries: []Registry{
			{URL: "https://hub.example.com", Alias: "production"},
		},
	}

	registry, err := cfg.GetRegistryByAlias("production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registry.URL != "https://hub.example.com" {
		t.Errorf("url = %q", registry.URL)
	}

	if _, err := cfg.GetRegistryByAlias("missing"); err == nil {
		t.Error("expected error for unknown alias")
	}
}

func TestGetDefaultRegistry(t *testing.T) {
	empty := &Config{}
	if _, err := empty.GetDefaultRegistry(); err == nil {
		t.Error("expected error with no registries")
	}

	cfg := &Config{Registries: []Registry{{URL: "https://hub.example.com", Alias: "production"}}}
	registry, err := cfg.GetDefaultRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registry.Alias != "production" {
		t.Errorf("alias = %q", registry.Alias)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hub.example.com", "https://hub.example.com"},
		{"https://hub.example.com/", "https://hub.example.com"},
		{"http://localhost:8000", "http://localhost:8000"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
