package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[outfit]
dataDir = "data"
negativeBaseline = ["watermark", "low quality"]
`)

	config, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if config.Outfit.DataDir != "data" {
		t.Errorf("DataDir = %q", config.Outfit.DataDir)
	}
	if config.Outfit.PresetsFile != filepath.Join("data", "presets.json") {
		t.Errorf("PresetsFile default = %q", config.Outfit.PresetsFile)
	}
	if config.Outfit.StylesDir != filepath.Join("data", "styles") {
		t.Errorf("StylesDir default = %q", config.Outfit.StylesDir)
	}
	if len(config.Outfit.NegativeBaseline) != 2 {
		t.Errorf("NegativeBaseline = %v", config.Outfit.NegativeBaseline)
	}
	if config.Ollama.Url != "http://127.0.0.1" || config.Ollama.Port != "11434" {
		t.Errorf("ollama defaults = %q:%q", config.Ollama.Url, config.Ollama.Port)
	}
	if config.Ollama.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds default = %d", config.Ollama.TimeoutSeconds)
	}
	if config.Store.Path != "outfit.db" {
		t.Errorf("store path default = %q", config.Store.Path)
	}
	if config.Logging.Level != "info" || config.Logging.Format != "text" {
		t.Errorf("logging defaults = %q/%q", config.Logging.Level, config.Logging.Format)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[outfit]
dataDir = "data"
presetsFile = "custom/presets.json"
enableCache = true
persistLastSeed = true

[ollama]
url = "http://gpu-box"
port = "8080"
timeoutSeconds = 5

[logging]
level = "debug"
format = "json"
`)

	config, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if config.Outfit.PresetsFile != "custom/presets.json" {
		t.Errorf("PresetsFile = %q", config.Outfit.PresetsFile)
	}
	if !config.Outfit.EnableCache || !config.Outfit.PersistLastSeed {
		t.Error("cache toggles not decoded")
	}
	if config.Ollama.Url != "http://gpu-box" || config.Ollama.TimeoutSeconds != 5 {
		t.Errorf("ollama overrides lost: %+v", config.Ollama)
	}
	if config.Logging.Level != "debug" || config.Logging.Format != "json" {
		t.Errorf("logging overrides lost: %+v", config.Logging)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing config file should error")
	}
}

func TestLoadFileRejectsMissingDataDir(t *testing.T) {
	path := writeConfig(t, `
[outfit]
enableCache = true
`)
	if _, err := LoadFile(path); err == nil {
		t.Error("config without dataDir should fail validation")
	}
}

func TestLoadFileRejectsBadToml(t *testing.T) {
	path := writeConfig(t, `[outfit`)
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed TOML should error")
	}
}
