package config

import (
	"os"
	"path/filepath"
	"testing"

	werrors "github.com/dannywalker-afni-com/Wx/internal/errors"
)

// chdirTemp switches the working directory to a fresh temp dir so
// tests cannot pick up a developer's real .wx/conf.yaml or .env.
func chdirTemp(t *testing.T) string {
	t.Helper()
	originalWD, _ := os.Getwd()
	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to switch working directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalWD) })
	return tempDir
}

func clearWebexEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WEBEX_BASE", "")
	t.Setenv("WEBEX_TOKEN", "")
	t.Setenv("WEBEX_ORG_ID", "")
	os.Unsetenv("WEBEX_BASE")
	os.Unsetenv("WEBEX_TOKEN")
	os.Unsetenv("WEBEX_ORG_ID")
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	clearWebexEnv(t)

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if config.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultBaseURL, config.BaseURL)
	}
	if config.Token != "" {
		t.Errorf("Expected empty token, got %q", config.Token)
	}
	if config.OrgID != "" {
		t.Errorf("Expected empty org ID, got %q", config.OrgID)
	}
}

func TestLoad_Environment(t *testing.T) {
	chdirTemp(t)
	clearWebexEnv(t)
	t.Setenv("WEBEX_BASE", "https://api-usgov.webex.com/")
	t.Setenv("WEBEX_TOKEN", "token-123")
	t.Setenv("WEBEX_ORG_ID", "org-456")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Trailing slash must be trimmed so URL joins stay clean
	if config.BaseURL != "https://api-usgov.webex.com" {
		t.Errorf("Expected trimmed base URL, got %s", config.BaseURL)
	}
	if config.Token != "token-123" {
		t.Errorf("Expected token token-123, got %s", config.Token)
	}
	if config.OrgID != "org-456" {
		t.Errorf("Expected org ID org-456, got %s", config.OrgID)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)
	clearWebexEnv(t)

	confDir := filepath.Join(tempDir, WX_DIR)
	if err := os.MkdirAll(confDir, 0750); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	conf := "base: https://example.test\ntoken: file-token\norgId: file-org\n"
	if err := os.WriteFile(filepath.Join(confDir, CONFIG_FILE), []byte(conf), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if config.BaseURL != "https://example.test" {
		t.Errorf("Expected base URL from file, got %s", config.BaseURL)
	}
	if config.Token != "file-token" {
		t.Errorf("Expected token from file, got %s", config.Token)
	}
	if config.OrgID != "file-org" {
		t.Errorf("Expected org ID from file, got %s", config.OrgID)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	tempDir := chdirTemp(t)
	clearWebexEnv(t)

	confDir := filepath.Join(tempDir, WX_DIR)
	if err := os.MkdirAll(confDir, 0750); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(confDir, CONFIG_FILE), []byte("token: file-token\n"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("WEBEX_TOKEN", "env-token")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if config.Token != "env-token" {
		t.Errorf("Expected environment to win, got token %s", config.Token)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	tempDir := chdirTemp(t)
	clearWebexEnv(t)

	dotenv := "WEBEX_TOKEN=dotenv-token\n"
	if err := os.WriteFile(filepath.Join(tempDir, ".env"), []byte(dotenv), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if config.Token != "dotenv-token" {
		t.Errorf("Expected token from .env, got %q", config.Token)
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)
	clearWebexEnv(t)

	confDir := filepath.Join(tempDir, WX_DIR)
	if err := os.MkdirAll(confDir, 0750); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(confDir, CONFIG_FILE), []byte("{not yaml"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected Load() to fail on malformed conf.yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "valid",
			config:  Config{BaseURL: DefaultBaseURL, Token: "tok"},
			wantErr: nil,
		},
		{
			name:    "missing token",
			config:  Config{BaseURL: DefaultBaseURL},
			wantErr: werrors.ErrMissingToken,
		},
		{
			name:    "empty base URL",
			config:  Config{Token: "tok"},
			wantErr: werrors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() returned unexpected error: %v", err)
				}
				return
			}
			if !werrors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
