// Package store loads reference data used by the field extractor. Today that
// is the insurance issuer list; it ships with built-in defaults and can be
// overridden by a YAML file found in the standard config locations.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultIssuers is the built-in insurance issuer list. Order is priority:
// the first issuer whose name appears in a message wins.
var DefaultIssuers = []string{
	"LIC",
	"HDFC Life",
	"ICICI Prudential",
	"SBI Life",
	"Tata AIA",
}

// issuersConfig is the YAML shape of the issuer override file.
type issuersConfig struct {
	Issuers []string `yaml:"issuers"`
}

// ReferenceStore resolves and loads the reference-data files.
type ReferenceStore struct {
	IssuersFile string
}

// NewReferenceStore creates a store reading from the given issuers file.
// An empty filename means "search the standard locations for issuers.yaml".
func NewReferenceStore(issuersFile string) *ReferenceStore {
	return &ReferenceStore{IssuersFile: issuersFile}
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config/, and ~/.config/sms-parsing/.
func (s *ReferenceStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "sms-parsing", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadIssuers returns the insurance issuer priority list. A missing override
// file is not an error; the built-in defaults are returned instead.
func (s *ReferenceStore) LoadIssuers() ([]string, error) {
	filename := s.IssuersFile
	if filename == "" {
		filename = "issuers.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		log.Debugf("Issuers file not found, using built-in defaults: %s", filename)
		return DefaultIssuers, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not read issuers file %s: %w", filePath, err)
	}

	var cfg issuersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse issuers file %s: %w", filePath, err)
	}

	if len(cfg.Issuers) == 0 {
		log.Warnf("Issuers file %s is empty, using built-in defaults", filePath)
		return DefaultIssuers, nil
	}

	log.Debugf("Loaded %d insurance issuers from %s", len(cfg.Issuers), filePath)
	return cfg.Issuers, nil
}
