package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(c)
}

// Load reads config.toml and all optional service configs, applies
// defaults and validates the result.
func Load() (*Config, error) {
	return LoadFile("config.toml")
}

// LoadFile loads the configuration from the given main config file.
func LoadFile(configPath string) (*Config, error) {
	var config Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		absPath = configPath // fallback to relative path
	}

	_, err = toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", absPath, err)
	}

	if err := loadServiceConfigs(&config); err != nil {
		return nil, fmt.Errorf("error loading service configs: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// loadServiceConfigs loads the individual service configuration files.
// Missing files are skipped, they only override the main config.
func loadServiceConfigs(config *Config) error {
	serviceConfigs := map[string]interface{}{
		"settings/ollama.toml":  &config.Ollama,
		"settings/gemini.toml":  &config.Gemini,
		"settings/store.toml":   &config.Store,
		"settings/logging.toml": &config.Logging,
	}

	for configPath, configStruct := range serviceConfigs {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			continue
		}

		_, err := toml.DecodeFile(configPath, configStruct)
		if err != nil {
			return fmt.Errorf("error parsing service config file %s: %w", configPath, err)
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Outfit.PresetsFile == "" {
		c.Outfit.PresetsFile = filepath.Join(c.Outfit.DataDir, "presets.json")
	}
	if c.Outfit.StylesDir == "" {
		c.Outfit.StylesDir = filepath.Join(c.Outfit.DataDir, "styles")
	}
	if c.Ollama.Url == "" {
		c.Ollama.Url = "http://127.0.0.1"
	}
	if c.Ollama.Port == "" {
		c.Ollama.Port = "11434"
	}
	if c.Ollama.TimeoutSeconds == 0 {
		c.Ollama.TimeoutSeconds = 60
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash-lite-preview-06-17"
	}
	if c.Store.Path == "" {
		c.Store.Path = "outfit.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
