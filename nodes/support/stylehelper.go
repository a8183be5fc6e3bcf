// Package support holds the self-contained helper nodes that ship next
// to the outfit nodes: photo style suggestions, character sheets, JSON
// patching and LLM prompt rewriting.
package support

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"outfitforge/outfit"
)

// PhotoStyleInputs are the photography/rendering choices the helper
// turns into prompt fragments and a preset patch.
type PhotoStyleInputs struct {
	Gender           string
	AgeGroup         string
	BodyType         string
	OutfitVibe       string
	PhotoGenre       string
	RenderMedium     string
	CameraFraming    string
	Lighting         string
	Lens             string
	DepthOfField     string
	AspectRatio      string
	Palette          string
	Composition      string
	Quality          string
	DescriptionStyle string
	CreativeScale    string
	QualityPreset    string
}

// PhotoStyleOutput mirrors the node's four string returns.
type PhotoStyleOutput struct {
	PositiveAdditions string
	NegativeAdditions string
	PresetPatchJSON   string
	GuidanceJSON      string
}

// PhotoStyleNode suggests photo/scene settings and a preset patch for
// the outfit nodes.
type PhotoStyleNode struct {
	options map[string][]string
}

// NewPhotoStyleNode loads the curated option lists from the styles
// directory, falling back to small built-in lists.
func NewPhotoStyleNode(stylesDir string) *PhotoStyleNode {
	options := map[string][]string{
		"outfit_vibes":   {"modern", "casual", "boho", "pinup", "glamour", "streetwear"},
		"photo_genres":   {"portrait", "fashion", "editorial", "street", "selfie", "passport", "glamour"},
		"render_medium":  {"photorealistic", "2D anime", "manga", "cartoon", "watercolor"},
		"camera_framing": {"close-up", "waist-up", "full body", "wide shot"},
		"lighting":       {"softbox", "golden hour", "neon", "candlelight", "overcast"},
		"lenses":         {"35mm", "50mm", "85mm", "135mm"},
		"depth_of_field": {"shallow", "medium", "deep"},
		"aspect_ratios":  {"1:1", "3:2", "4:5", "16:9"},
		"palettes":       {"auto", "warm tones", "cool tones", "monochrome", "vibrant"},
		"composition":    {"rule of thirds", "centered", "leading lines", "symmetry"},
		"quality":        {"studio quality", "editorial quality", "cinematic quality"},
	}

	var loaded map[string][]string
	if outfit.LoadJSON(filepath.Join(stylesDir, "photo_helper_options.json"), &loaded) {
		for key, values := range loaded {
			if len(values) > 0 {
				options[key] = values
			}
		}
	}
	return &PhotoStyleNode{options: options}
}

// Options exposes the loaded choice lists for schema building.
func (n *PhotoStyleNode) Options(key string) []string {
	return n.options[key]
}

var samplerHints = map[string]map[string]any{
	"fast":     {"steps": 20, "cfg": 4.5, "denoise": 0.5, "resolution": "768x1024"},
	"balanced": {"steps": 30, "cfg": 5.5, "denoise": 0.55, "resolution": "832x1216"},
	"high":     {"steps": 40, "cfg": 6.5, "denoise": 0.6, "resolution": "1024x1365"},
}

// Process assembles the prompt fragments, the preset patch for the
// outfit node and guidance metadata with sampler hints.
func (n *PhotoStyleNode) Process(in PhotoStyleInputs) PhotoStyleOutput {
	var pos []string

	if in.RenderMedium == "" || in.RenderMedium == "photorealistic" {
		pos = append(pos,
			fmt.Sprintf("%s photography", in.PhotoGenre),
			fmt.Sprintf("%s composition", in.CameraFraming),
			fmt.Sprintf("%s lighting", in.Lighting),
			fmt.Sprintf("%s lens", in.Lens),
			fmt.Sprintf("%s depth of field", in.DepthOfField),
			in.Quality,
		)
	} else {
		pos = append(pos, in.RenderMedium)
		if in.CameraFraming != "" {
			pos = append(pos, in.CameraFraming)
		}
		if in.Quality != "" {
			pos = append(pos, in.Quality)
		}
	}
	if in.Palette != "" && in.Palette != "auto" {
		pos = append(pos, in.Palette)
	}
	if in.Composition != "" {
		pos = append(pos, in.Composition)
	}
	if in.OutfitVibe != "" && !outfit.IsControl(in.OutfitVibe) {
		pos = append(pos, in.OutfitVibe+" vibe")
	}

	neg := []string{"blurry", "low-res"}
	switch in.PhotoGenre {
	case "passport":
		neg = append(neg, "tilted head", "dramatic lighting", "strong shadows")
	case "selfie", "street":
		neg = append(neg, "motion blur")
	}
	if in.RenderMedium != "" && in.RenderMedium != "photorealistic" {
		neg = append(neg, "photorealistic skin", "skin pores", "uncanny valley")
	} else {
		neg = append(neg, "flat shading", "thick outlines")
	}

	patch := map[string]any{
		"age_group":         fallback(in.AgeGroup, outfit.Random),
		"body_type":         fallback(in.BodyType, outfit.Random),
		"description_style": fallback(in.DescriptionStyle, outfit.Random),
		"creative_scale":    fallback(in.CreativeScale, outfit.None),
	}

	switch in.PhotoGenre {
	case "fashion", "editorial", "runway":
		patch["mood"] = "dramatic"
		patch["background"] = "Fashion runway"
	case "portrait", "glamour":
		patch["mood"] = "intimate"
		patch["time_of_day"] = "golden hour"
		patch["background"] = "Art gallery"
	case "passport":
		patch["mood"] = "neutral"
		patch["background"] = "Minimalist bedroom"
	default:
		patch["mood"] = "serene"
		patch["background"] = "Sunny park lawn"
	}
	if in.Palette != "" && in.Palette != "auto" {
		patch["color_scheme"] = in.Palette
	}

	custom := append([]string{}, pos...)
	if in.AspectRatio != "" {
		custom = append(custom, "aspect ratio "+in.AspectRatio)
	}
	patch["custom_attributes"] = joinComma(custom)

	hints, ok := samplerHints[in.QualityPreset]
	if !ok {
		hints = samplerHints["balanced"]
	}
	guidance := map[string]any{
		"gender":         in.Gender,
		"vibe":           in.OutfitVibe,
		"genre":          in.PhotoGenre,
		"render_medium":  in.RenderMedium,
		"framing":        in.CameraFraming,
		"lighting":       in.Lighting,
		"lens":           in.Lens,
		"aspect_ratio":   in.AspectRatio,
		"quality_preset": in.QualityPreset,
		"sampler_hints":  hints,
	}

	return PhotoStyleOutput{
		PositiveAdditions: joinComma(pos),
		NegativeAdditions: joinComma(dedupe(neg)),
		PresetPatchJSON:   marshalOr(patch, "{}"),
		GuidanceJSON:      marshalOr(guidance, "{}"),
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func dedupe(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func joinComma(values []string) string {
	var out string
	for _, v := range values {
		if v == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += v
	}
	return out
}

func marshalOr(v any, def string) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return def
	}
	return string(raw)
}
