package outfit

import (
	"regexp"
	"strings"

	"outfitforge/helpers"
)

// Catalogue of color and material words stripped when building outfit
// templates. A heuristic, not a grammar: novel adjectives slip through
// and that is accepted.
var colorWords = []string{
	"black", "white", "red", "blue", "green", "yellow", "purple", "pink",
	"orange", "brown", "grey", "gray", "beige", "navy", "teal", "maroon",
	"olive", "cream", "gold", "golden", "silver", "bronze", "crimson",
	"scarlet", "turquoise", "lavender", "violet", "magenta", "cyan",
	"khaki", "tan", "burgundy", "ivory", "charcoal", "coral", "mint",
	"pastel", "neon", "dark", "light", "bright", "deep", "pale",
	"leather", "denim", "silk", "satin", "velvet", "lace", "suede",
	"chiffon", "sequin", "sequined", "metallic", "glitter", "plaid",
	"striped", "floral", "checkered", "polka dot",
}

var colorPatterns []*regexp.Regexp

func init() {
	for _, w := range colorWords {
		colorPatterns = append(colorPatterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`(?:-colored|-coloured)?\b`))
	}
}

// ApplyPreset fills the current selection from the preset without
// clobbering explicit user choices: a preset value lands only where the
// current value is missing, empty or a control token.
func ApplyPreset(current, preset Selection) Selection {
	merged := current.Clone()
	for key, value := range preset {
		if merged.Unset(key) {
			merged[key] = value
		}
	}
	return merged
}

// ExtractOutfitTemplate strips the color/material catalogue from the
// clothing values of a preset, leaving garment types only so the model
// picks colors. Keys outside clothingParts are dropped, as are values
// with nothing meaningful left after stripping.
func ExtractOutfitTemplate(preset Selection, clothingParts []string) Selection {
	parts := make(map[string]bool, len(clothingParts))
	for _, p := range clothingParts {
		parts[p] = true
	}

	template := Selection{}
	for key, value := range preset {
		if !parts[key] || value == "" || IsControl(value) {
			continue
		}
		stripped := StripColors(value)
		if len(stripped) <= 2 {
			continue
		}
		template[key] = stripped
	}
	return template
}

// StripColors removes every catalogue match from the value and
// collapses the leftover whitespace.
func StripColors(value string) string {
	for _, re := range colorPatterns {
		value = re.ReplaceAllString(value, " ")
	}
	return helpers.CollapseWhitespace(value)
}

// ApplyOutfitTemplate fills clothing fields from a color-stripped
// template using the same partial-fill rule as presets.
func ApplyOutfitTemplate(current, template Selection) Selection {
	return ApplyPreset(current, template)
}

// MergePatch shallow-merges patch into base, skipping empty string
// values so a patch never blanks an existing field.
func MergePatch(base, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		merged[k] = v
	}
	return merged
}
