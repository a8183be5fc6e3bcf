package support

import (
	"strings"
)

// CharacterSheetInputs select a character sheet prompt template.
type CharacterSheetInputs struct {
	CharacterPrompt string
	SheetStyle      string
	Views           string
	Expressions     string
	Layout          string
	Background      string
	Annotations     string
	ArtStyle        string
}

var (
	SheetStyles = []string{
		"character turnaround",
		"expression sheet",
		"action pose sheet",
		"outfit sheet",
		"anatomy study",
		"sprite sheet",
	}

	ViewOptions = []string{
		"none",
		"front, side, back",
		"front, 3/4, side, back",
		"multiple angles",
		"full turn",
	}

	ExpressionOptions = []string{
		"none",
		"neutral, happy, sad, angry",
		"happy, surprised, angry, sad, disgusted, fearful",
		"subtle expressions",
		"dynamic expressions",
	}

	LayoutOptions = []string{
		"grid layout",
		"row layout",
		"dynamic composition",
		"t-pose, a-pose",
	}

	SheetBackgrounds = []string{
		"plain white background",
		"light gray background",
		"transparent background",
		"blueprint grid background",
	}

	AnnotationOptions = []string{
		"none",
		"text labels for views",
		"arrows and callouts",
		"color palette swatches",
	}
)

// BuildCharacterSheetPrompt renders the template for the chosen sheet
// style into a single prompt string.
func BuildCharacterSheetPrompt(in CharacterSheetInputs) string {
	var parts []string
	base := "(" + strings.TrimSpace(in.CharacterPrompt) + ")"

	views := in.Views
	expressions := in.Expressions
	layout := in.Layout

	switch in.SheetStyle {
	case "character turnaround":
		parts = append(parts, "character sheet, "+base+", full body, standing")
		if views == "none" || views == "" {
			views = "front, side, back"
		}
		parts = append(parts, "multiple views: ("+views+")")
		if !strings.Contains(layout, "t-pose") && !strings.Contains(layout, "a-pose") {
			layout = "t-pose, a-pose"
		}
	case "expression sheet":
		parts = append(parts, "expression sheet, "+base+", portrait, bust shot")
		if expressions == "none" || expressions == "" {
			expressions = "neutral, happy, sad, angry"
		}
		parts = append(parts, "multiple expressions: ("+expressions+")")
	case "action pose sheet":
		parts = append(parts, "action pose sheet, "+base+", dynamic poses, full body, various action poses: (running, jumping, fighting, crouching)")
	case "outfit sheet":
		parts = append(parts, "outfit sheet, "+base+", showing different clothes, multiple outfits: (casual wear, formal wear, fantasy armor)")
	default:
		parts = append(parts, in.SheetStyle+", "+base)
		if views != "none" && views != "" {
			parts = append(parts, "multiple views: ("+views+")")
		}
		if expressions != "none" && expressions != "" {
			parts = append(parts, "multiple expressions: ("+expressions+")")
		}
	}

	parts = append(parts, layout, in.Background)
	if in.Annotations != "none" && in.Annotations != "" {
		parts = append(parts, in.Annotations)
	}
	if art := strings.TrimSpace(in.ArtStyle); art != "" {
		parts = append(parts, art)
	}

	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ") + ", same character, consistent character, character design, masterpiece"
}
