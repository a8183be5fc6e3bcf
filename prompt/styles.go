package prompt

import (
	"path/filepath"
	"sort"

	"outfitforge/helpers"
	"outfitforge/outfit"
)

// StyleDef describes how a description style should steer the model.
type StyleDef struct {
	Instructions string `json:"instructions"`
	Extra        string `json:"extra"`
}

// Hint returns the one-sentence decoration appended for this style.
func (d StyleDef) Hint() string {
	if d.Instructions != "" {
		return helpers.FirstSentence(d.Instructions)
	}
	return d.Extra
}

// Built-in table used when no style definition file is available.
var fallbackStyles = map[string]StyleDef{
	"sdxl": {Extra: "highly detailed, sharp focus, professional photography"},
	"flux": {Extra: "natural language description, coherent lighting and anatomy"},
}

type stylesFile struct {
	DescriptionStyles []string            `json:"description_styles"`
	Definitions       map[string]StyleDef `json:"definitions"`
}

// LoadStyles reads the style definition file from the styles directory
// and returns the option list plus the hint definitions. Failures fall
// back to the built-in table.
func LoadStyles(stylesDir string) ([]string, map[string]StyleDef) {
	var file stylesFile
	if !outfit.LoadJSON(filepath.Join(stylesDir, "description_styles.json"), &file) {
		names := make([]string, 0, len(fallbackStyles))
		for name := range fallbackStyles {
			names = append(names, name)
		}
		sort.Strings(names)
		return outfit.FilterOptions(names), fallbackStyles
	}

	defs := file.Definitions
	if defs == nil {
		defs = fallbackStyles
	}
	return outfit.FilterOptions(file.DescriptionStyles), defs
}
