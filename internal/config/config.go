// Package config resolves the Webex connection settings for a run.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	werrors "github.com/dannywalker-afni-com/Wx/internal/errors"
	"github.com/dannywalker-afni-com/Wx/internal/log"
)

const (
	// DefaultBaseURL is the public Webex API endpoint. FedRAMP
	// deployments point WEBEX_BASE at https://api-usgov.webex.com.
	DefaultBaseURL = "https://webexapis.com"

	WX_DIR      = ".wx"
	CONFIG_FILE = "conf.yaml"
)

// Config carries the settings every command needs: where the API
// lives, the admin bearer token, and an optional organization scope
// for partner admins.
type Config struct {
	BaseURL string `yaml:"base"`
	Token   string `yaml:"token"`
	OrgID   string `yaml:"orgId"`
}

// loadConfigFile merges values from .wx/conf.yaml if present. A
// missing file is not an error; the file is optional.
func loadConfigFile(config *Config) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	confPath := filepath.Join(dir, WX_DIR, CONFIG_FILE)
	raw, err := os.ReadFile(confPath) //nolint:gosec // G304: path is fixed relative to the working directory
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return werrors.Wrapf(err, "reading %s", confPath)
	}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return werrors.Wrapf(err, "parsing %s", confPath)
	}
	log.Debug("Loaded configuration from %s", confPath)
	return nil
}

// Load resolves configuration in ascending precedence: conf.yaml,
// then a .env file, then the process environment.
func Load() (*Config, error) {
	config := &Config{BaseURL: DefaultBaseURL}

	if err := loadConfigFile(config); err != nil {
		return nil, err
	}

	// godotenv only fills variables that are not already set, so real
	// environment values win over .env entries.
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	if v := os.Getenv("WEBEX_BASE"); v != "" {
		config.BaseURL = v
	}
	if v := os.Getenv("WEBEX_TOKEN"); v != "" {
		config.Token = v
	}
	if v := os.Getenv("WEBEX_ORG_ID"); v != "" {
		config.OrgID = v
	}

	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return config, nil
}

// Validate reports whether the configuration is usable at all. The
// token has no default; nothing talks to the API without one.
func (c *Config) Validate() error {
	if c.Token == "" {
		return werrors.ErrMissingToken
	}
	if c.BaseURL == "" {
		return werrors.Wrap(werrors.ErrInvalidConfig, "base URL is empty")
	}
	return nil
}
