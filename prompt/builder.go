// Package prompt assembles positive and negative image prompts from an
// outfit selection. A Builder owns its own seeded generator so the same
// seed and inputs always produce the same output.
package prompt

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"outfitforge/logger"
	"outfitforge/outfit"
)

type Config struct {
	NegativeBaseline []string
	Styles           map[string]StyleDef
}

// Metadata records everything a build resolved.
type Metadata struct {
	Seed           uint32            `json:"seed"`
	ImageSeed      uint32            `json:"image_seed,omitempty"`
	StyleSeed      uint32            `json:"style_seed,omitempty"`
	Selections     map[string]string `json:"selections"`
	AutoNegatives  []string          `json:"auto_negatives"`
	NegativePrompt string            `json:"negative_prompt"`
}

type Builder struct {
	seed    uint32
	rng     *rand.Rand
	data    outfit.Selection
	options map[string][]string
	cfg     Config

	built    bool
	positive string
	negative string
	meta     Metadata
}

// NewBuilder seeds the private generator exactly once. Calling Build
// more than once on the same instance returns the first result instead
// of re-randomizing; that single-reseed behavior is part of the
// determinism contract.
func NewBuilder(seed uint32, data outfit.Selection, options map[string][]string, cfg Config) *Builder {
	return &Builder{
		seed:    seed,
		rng:     rand.New(rand.NewSource(int64(seed))),
		data:    data,
		options: options,
		cfg:     cfg,
	}
}

// resolve maps a field through its control values: "none" omits,
// "random" draws from the field's option list, anything else passes
// through. The resolved value is recorded for metadata.
func (b *Builder) resolve(field string) string {
	value := b.data[field]
	if value == "" || value == outfit.None {
		b.meta.Selections[field] = outfit.None
		return ""
	}
	if value == outfit.Random {
		value = SafeRandomChoice(b.rng, b.options[field])
	}
	b.meta.Selections[field] = value
	if value == outfit.None {
		return ""
	}
	return value
}

func (b *Builder) addLabeled(parts []string, label, field string) []string {
	if value := b.resolve(field); value != "" {
		parts = append(parts, label+": "+value)
	}
	return parts
}

// Build assembles the positive prompt in its fixed segment order and
// computes the negative prompt and metadata as a side effect.
func (b *Builder) Build(bodyParts []string) string {
	if b.built {
		return b.positive
	}

	b.meta = Metadata{
		Seed:       b.seed,
		Selections: map[string]string{},
	}

	var parts []string

	if name := strings.TrimSpace(b.data["character_name"]); name != "" {
		parts = append(parts, "Character: "+name)
		b.meta.Selections["character_name"] = name
	}

	parts = b.addLabeled(parts, "Age", "age_group")
	parts = b.addLabeled(parts, "Race", "race")
	parts = b.addLabeled(parts, "Body type", "body_type")

	var attire []string
	for _, part := range bodyParts {
		if part == "makeup" {
			continue
		}
		if value := b.resolve(part); value != "" {
			attire = append(attire, part+": "+value)
		}
	}
	if len(attire) > 0 {
		parts = append(parts, "Attire: "+strings.Join(attire, ", "))
	}

	if makeup := b.makeupSegment(); makeup != "" {
		parts = append(parts, "Makeup: "+makeup)
	}

	parts = b.addLabeled(parts, "Pose", "pose")
	parts = b.addLabeled(parts, "Background", "background")
	parts = b.addLabeled(parts, "Mood", "mood")
	parts = b.addLabeled(parts, "Time", "time_of_day")
	parts = b.addLabeled(parts, "Weather", "weather")
	parts = b.addLabeled(parts, "Color scheme", "color_scheme")
	parts = b.addLabeled(parts, "Style", "description_style")
	parts = b.addLabeled(parts, "Scale", "creative_scale")

	if hint := b.modelHint(); hint != "" {
		parts = append(parts, "Model hint: "+hint)
	}

	if custom := strings.TrimSpace(b.data["custom_attributes"]); custom != "" {
		parts = append(parts, "Additional: "+custom)
		b.meta.Selections["custom_attributes"] = custom
	}

	b.positive = strings.Join(parts, ", ")
	b.buildNegative()
	b.meta.NegativePrompt = b.negative
	b.built = true

	return b.positive
}

type makeupItem struct {
	Type      string `json:"type"`
	Enabled   *bool  `json:"enabled"`
	Intensity string `json:"intensity"`
	Color     string `json:"color"`
}

// makeupSegment parses the opaque makeup payload. Malformed JSON is
// logged and yields no segment, never a failure.
func (b *Builder) makeupSegment() string {
	payload := b.data["makeup_data"]
	if strings.TrimSpace(payload) == "" {
		return ""
	}

	var items []makeupItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		logger.Error("Error parsing makeup data", "error", err)
		return ""
	}

	var parts []string
	for _, item := range items {
		if item.Enabled != nil && !*item.Enabled {
			continue
		}
		if item.Type == "" || item.Type == outfit.None {
			continue
		}
		intensity := item.Intensity
		if intensity == "" {
			intensity = "medium"
		}
		if item.Color != "" && item.Color != outfit.None {
			parts = append(parts, fmt.Sprintf("%s (%s, %s)", item.Type, item.Color, intensity))
		} else {
			parts = append(parts, fmt.Sprintf("%s (%s)", item.Type, intensity))
		}
	}
	return strings.Join(parts, ", ")
}

// modelHint decorates the prompt with a one-sentence hint for the
// resolved description style. Best effort only.
func (b *Builder) modelHint() string {
	style := b.meta.Selections["description_style"]
	if style == "" || style == outfit.None {
		return ""
	}
	def, ok := b.cfg.Styles[style]
	if !ok {
		def, ok = fallbackStyles[style]
	}
	if !ok {
		return ""
	}
	return def.Hint()
}

// NegativePrompt returns the negative prompt computed by Build, or the
// empty string before Build has run.
func (b *Builder) NegativePrompt() string {
	return b.negative
}

// Metadata returns the resolved selections recorded by Build. Before
// Build it returns the zero value.
func (b *Builder) Metadata() Metadata {
	if !b.built {
		return Metadata{}
	}
	return b.meta
}

// SafeRandomChoice draws uniformly from options after dropping the
// control tokens, or returns "none" when nothing remains.
func SafeRandomChoice(rng *rand.Rand, options []string) string {
	var valid []string
	for _, opt := range options {
		if opt != "" && !outfit.IsControl(opt) {
			valid = append(valid, opt)
		}
	}
	if len(valid) == 0 {
		return outfit.None
	}
	return valid[rng.Intn(len(valid))]
}
