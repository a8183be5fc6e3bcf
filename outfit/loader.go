package outfit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"outfitforge/logger"
)

// Files in a gender directory that are not attire categories.
var excludedBodyPartFiles = map[string]bool{
	"body_type.json": true,
	"poses.json":     true,
}

// LoadJSON decodes the file at path into v. Missing or corrupt files
// are logged and reported as false, never an error to the caller.
func LoadJSON(path string, v any) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Could not read data file", "path", path, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		logger.Error("Invalid JSON in data file", "path", path, "error", err)
		return false
	}
	return true
}

// FilterOptions removes control tokens and empty strings from values
// and prepends the control pair, so "none" and "random" always occupy
// positions 0 and 1 exactly once.
func FilterOptions(values []string) []string {
	out := []string{None, Random}
	for _, v := range values {
		if v == "" || IsControl(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ControlOnly is the fallback option list for missing or broken files.
func ControlOnly() []string {
	return []string{None, Random}
}

// DiscoverGenders lists the gender subdirectories of the outfit data
// directory.
func DiscoverGenders(outfitDataDir string) []string {
	entries, err := os.ReadDir(outfitDataDir)
	if err != nil {
		logger.Error("Could not list outfit data directory", "path", outfitDataDir, "error", err)
		return nil
	}

	var genders []string
	for _, e := range entries {
		if e.IsDir() {
			genders = append(genders, e.Name())
		}
	}
	sort.Strings(genders)
	return genders
}

// DiscoverBodyParts lists attire categories for a gender directory by
// file stem, excluding the known non-attire files. The returned order
// (lexicographic) is the attire segment order in built prompts.
func DiscoverBodyParts(genderDir string) []string {
	entries, err := os.ReadDir(genderDir)
	if err != nil {
		logger.Error("Could not list gender data directory", "path", genderDir, "error", err)
		return nil
	}

	var parts []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || excludedBodyPartFiles[name] {
			continue
		}
		parts = append(parts, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(parts)
	return parts
}

type attireItem struct {
	Type string `json:"type"`
}

type attireFile struct {
	Attire []json.RawMessage `json:"attire"`
}

// attireTypes extracts the "type" of every attire entry. Entries may be
// objects with a type field or plain strings; color and material
// sub-fields are ignored.
func attireTypes(path string) ([]string, bool) {
	var file attireFile
	if !LoadJSON(path, &file) {
		return nil, false
	}

	var types []string
	for _, raw := range file.Attire {
		var item attireItem
		if err := json.Unmarshal(raw, &item); err == nil && item.Type != "" {
			types = append(types, item.Type)
			continue
		}
		var plain string
		if err := json.Unmarshal(raw, &plain); err == nil && plain != "" {
			types = append(types, plain)
		}
	}
	return types, true
}

// LoadAttireOptions loads the option list for every body part from its
// JSON file. Missing or malformed files degrade to the control pair.
func LoadAttireOptions(genderDir string, bodyParts []string) map[string][]string {
	options := make(map[string][]string, len(bodyParts))
	for _, part := range bodyParts {
		types, ok := attireTypes(filepath.Join(genderDir, part+".json"))
		if !ok {
			options[part] = ControlOnly()
			continue
		}
		options[part] = FilterOptions(types)
	}
	return options
}

// LoadListOptions loads a simple {"key": ["value", ...]} option file.
func LoadListOptions(dir, filename, key string) []string {
	var data map[string]json.RawMessage
	if !LoadJSON(filepath.Join(dir, filename), &data) {
		return ControlOnly()
	}

	var values []string
	if err := json.Unmarshal(data[key], &values); err != nil {
		logger.Error("Malformed option list", "file", filename, "key", key, "error", err)
		return ControlOnly()
	}
	return FilterOptions(values)
}

// LoadBodyTypes loads body types from body_type.json, which uses the
// attire file shape.
func LoadBodyTypes(genderDir string) []string {
	types, ok := attireTypes(filepath.Join(genderDir, "body_type.json"))
	if !ok {
		return ControlOnly()
	}
	return FilterOptions(types)
}

// LoadMakeupTypes loads makeup types. Makeup is resolved from an opaque
// payload rather than a dropdown, so only "none" heads the list.
func LoadMakeupTypes(genderDir string) []string {
	types, ok := attireTypes(filepath.Join(genderDir, "makeup.json"))
	if !ok {
		return []string{None}
	}

	out := []string{None}
	for _, t := range types {
		if t != "" && !IsControl(t) {
			out = append(out, t)
		}
	}
	return out
}

// LoadSceneHighlights loads mood, time, weather and color scheme lists
// from the styles directory.
func LoadSceneHighlights(stylesDir string) map[string][]string {
	lists := map[string][]string{
		"moods":         ControlOnly(),
		"times":         ControlOnly(),
		"weather":       ControlOnly(),
		"color_schemes": ControlOnly(),
	}

	var raw map[string][]string
	if !LoadJSON(filepath.Join(stylesDir, "scene_highlights.json"), &raw) {
		return lists
	}
	for key := range lists {
		if values, ok := raw[key]; ok {
			lists[key] = FilterOptions(values)
		}
	}
	return lists
}

// LoadScaleOptions loads creative scale options.
func LoadScaleOptions(stylesDir string) []string {
	return LoadListOptions(stylesDir, "scale_options.json", "scale_options")
}

// LoadPresets loads the gender-scoped preset file. Any failure yields
// an empty preset table.
func LoadPresets(path string) Presets {
	var presets Presets
	if !LoadJSON(path, &presets) || presets == nil {
		return Presets{}
	}
	return presets
}
