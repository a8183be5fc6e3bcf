package support

import (
	"encoding/json"

	"outfitforge/outfit"
)

// ApplyPatch shallow-merges a preset patch JSON into an existing inputs
// JSON map and returns the merged JSON. Anything unparseable is treated
// as an empty map, never an error.
func ApplyPatch(patchJSON, existingJSON string) string {
	base := parseMap(existingJSON)
	patch := parseMap(patchJSON)

	merged := outfit.MergePatch(base, patch)
	out, err := json.Marshal(merged)
	if err != nil {
		return "{}"
	}
	return string(out)
}

func parseMap(raw string) map[string]any {
	var m map[string]any
	if raw == "" {
		return map[string]any{}
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}
