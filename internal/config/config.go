package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/marcus/pdp/internal/catalog"
	"github.com/marcus/pdp/internal/models"
)

const configFile = ".pdp/config.json"

// Config keys accepted by Get and Set
const (
	KeyLang  = "lang"
	KeyMouse = "mouse"
)

// ErrUnknownKey is returned by Get and Set for keys not in Keys
var ErrUnknownKey = errors.New("unknown config key")

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Keys returns the settable config keys
func Keys() []string {
	keys := []string{KeyLang, KeyMouse}
	sort.Strings(keys)
	return keys
}

// Get returns the string value of a config key
func Get(baseDir, key string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}

	switch key {
	case KeyLang:
		return cfg.Lang, nil
	case KeyMouse:
		return strconv.FormatBool(!cfg.NoMouse), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
}

// Set validates and stores a config key
func Set(baseDir, key, value string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	switch key {
	case KeyLang:
		if value != "" && !catalog.IsSupported(value) {
			return fmt.Errorf("unsupported language %q (supported: %v)", value, catalog.Languages())
		}
		cfg.Lang = value
	case KeyMouse:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		cfg.NoMouse = !on
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	return Save(baseDir, cfg)
}
