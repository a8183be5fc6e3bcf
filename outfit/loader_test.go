package outfit

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestDiscoverBodyParts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "torso.json", `{"attire":[{"type":"t-shirt"}]}`)
	writeFile(t, dir, "legs.json", `{"attire":[{"type":"jeans"}]}`)
	writeFile(t, dir, "headgear.json", `{"attire":[{"type":"beanie"}]}`)
	writeFile(t, dir, "body_type.json", `{"attire":[{"type":"slim"}]}`)
	writeFile(t, dir, "poses.json", `{"poses":["standing"]}`)
	writeFile(t, dir, "notes.txt", "not json")

	parts := DiscoverBodyParts(dir)
	want := []string{"headgear", "legs", "torso"}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("DiscoverBodyParts() = %v, want %v", parts, want)
	}
}

func TestLoadAttireOptionsControlTokens(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "torso.json", `{"attire":[{"type":"t-shirt"},{"type":"hoodie"},"jacket"]}`)
	writeFile(t, dir, "legs.json", `{"attire":"broken"}`)

	options := LoadAttireOptions(dir, []string{"torso", "legs", "feet"})

	for part, opts := range options {
		if len(opts) < 2 || opts[0] != None || opts[1] != Random {
			t.Errorf("%s missing control options: %v", part, opts)
		}
	}

	if len(options["torso"]) != 5 {
		t.Errorf("torso options = %v, want controls plus 3 values", options["torso"])
	}
	if len(options["legs"]) != 2 {
		t.Errorf("malformed legs file should degrade to control-only list, got %v", options["legs"])
	}
	if len(options["feet"]) != 2 {
		t.Errorf("missing feet file should degrade to control-only list, got %v", options["feet"])
	}
}

func TestFilterOptionsNeverDuplicatesControls(t *testing.T) {
	got := FilterOptions([]string{"none", "random", "t-shirt", "", "hoodie"})
	want := []string{"none", "random", "t-shirt", "hoodie"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterOptions() = %v, want %v", got, want)
	}
}

func TestLoadListOptions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "poses.json", `{"poses":["standing","sitting"]}`)

	got := LoadListOptions(dir, "poses.json", "poses")
	want := []string{"none", "random", "standing", "sitting"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadListOptions() = %v, want %v", got, want)
	}

	if got := LoadListOptions(dir, "missing.json", "poses"); len(got) != 2 {
		t.Errorf("missing file should degrade to control-only list, got %v", got)
	}
}

func TestDiscoverGenders(t *testing.T) {
	dir := t.TempDir()
	for _, g := range []string{"female", "male"} {
		if err := os.Mkdir(filepath.Join(dir, g), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, dir, "stray.json", "{}")

	got := DiscoverGenders(dir)
	want := []string{"female", "male"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiscoverGenders() = %v, want %v", got, want)
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	presets := LoadPresets(filepath.Join(t.TempDir(), "presets.json"))
	if presets == nil {
		t.Fatal("LoadPresets() returned nil for missing file")
	}
	if len(presets) != 0 {
		t.Errorf("expected empty presets, got %v", presets)
	}
}

func TestLoadMakeupTypes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "makeup.json", `{"attire":[{"type":"lipstick"},{"type":"eyeliner"}]}`)

	got := LoadMakeupTypes(dir)
	want := []string{"none", "lipstick", "eyeliner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadMakeupTypes() = %v, want %v", got, want)
	}
}
