package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// ClassifierKeyFileEnv names a file holding the classifier API key, for
// mounted secrets. It is read only when no key came from YAML or ENV.
const ClassifierKeyFileEnv = "CLASSIFIER_API_KEY_FILE"

// Load reads configuration with priority ENV > YAML > env-default tags.
// The YAML path comes from CONFIG_PATH (fallback "./config.yaml"); a missing
// fallback file means ENV and defaults only, a missing explicit one is an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.readSecretFiles(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func (c *Config) readSecretFiles() error {
	keyFile := os.Getenv(ClassifierKeyFileEnv)
	if c.Classifier.APIKey != "" || keyFile == "" {
		return nil
	}
	b, err := os.ReadFile(keyFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", ClassifierKeyFileEnv, err)
	}
	c.Classifier.APIKey = strings.TrimSpace(string(b))
	return nil
}
