package settings

import (
	"outfitforge/logger"
)

type (
	Config struct {
		Outfit  OutfitConfig  `toml:"outfit" validate:"required"`
		Ollama  OllamaConfig  `toml:"ollama"`
		Gemini  GeminiConfig  `toml:"gemini"`
		Store   StoreConfig   `toml:"store"`
		Logging logger.Config `toml:"logging" validate:"required"`
	}

	// OutfitConfig lists every recognized outfit field explicitly, with
	// defaults applied in Load. No dynamic key/value bags.
	OutfitConfig struct {
		DataDir          string   `toml:"dataDir" validate:"required"`
		PresetsFile      string   `toml:"presetsFile"`
		StylesDir        string   `toml:"stylesDir"`
		NegativeBaseline []string `toml:"negativeBaseline"`
		EnableCache      bool     `toml:"enableCache"`
		PersistCache     bool     `toml:"persistCache"`
		PersistLastSeed  bool     `toml:"persistLastSeed"`
	}

	OllamaConfig struct {
		Url            string `toml:"url" validate:"omitempty,url"`
		Port           string `toml:"port"`
		DefaultModel   string `toml:"defaultModel"`
		TimeoutSeconds int    `toml:"timeoutSeconds" validate:"gte=0"`
	}

	GeminiConfig struct {
		ApiKey string `toml:"apiKey"`
		Model  string `toml:"model"`
	}

	StoreConfig struct {
		Path             string `toml:"path"`
		MergeIntervalHrs int    `toml:"mergeIntervalHours" validate:"gte=0"`
	}
)
