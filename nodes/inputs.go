package nodes

import (
	"encoding/json"

	"outfitforge/logger"
	"outfitforge/outfit"
)

// Inputs lists every recognized node input explicitly. Attire holds the
// per-gender body part selections, which are discovered from data files
// rather than fixed.
type Inputs struct {
	Preset           string
	PresetColors     bool
	AvoidTerms       string
	AgeGroup         string
	CharacterName    string
	BodyType         string
	Pose             string
	Background       string
	Race             string
	Mood             string
	TimeOfDay        string
	Weather          string
	ColorScheme      string
	DescriptionStyle string
	CreativeScale    string
	CustomAttributes string
	Seed             uint32
	StyleSeed        uint32
	SeedMode         string
	LockPresetFields bool
	EnableCache      bool
	MakeupData       string
	InputsJSON       string
	Attire           map[string]string
}

// DefaultInputs mirrors the schema defaults: scene and attire fields
// start at "random", the rest empty or off.
func DefaultInputs(bodyParts []string) Inputs {
	in := Inputs{
		Preset:           outfit.None,
		PresetColors:     true,
		AgeGroup:         outfit.Random,
		BodyType:         outfit.Random,
		Pose:             outfit.Random,
		Background:       outfit.Random,
		Race:             outfit.Random,
		Mood:             outfit.Random,
		TimeOfDay:        outfit.Random,
		Weather:          outfit.Random,
		ColorScheme:      outfit.Random,
		DescriptionStyle: outfit.Random,
		CreativeScale:    outfit.None,
		SeedMode:         SeedRandom,
		EnableCache:      true,
		Attire:           map[string]string{},
	}
	for _, part := range bodyParts {
		if part != "makeup" {
			in.Attire[part] = outfit.Random
		}
	}
	return in
}

// selection flattens the typed inputs into the field map the prompt
// builder and preset logic work on.
func (in Inputs) selection() outfit.Selection {
	sel := outfit.Selection{
		"age_group":         in.AgeGroup,
		"character_name":    in.CharacterName,
		"body_type":         in.BodyType,
		"pose":              in.Pose,
		"background":        in.Background,
		"race":              in.Race,
		"mood":              in.Mood,
		"time_of_day":       in.TimeOfDay,
		"weather":           in.Weather,
		"color_scheme":      in.ColorScheme,
		"description_style": in.DescriptionStyle,
		"creative_scale":    in.CreativeScale,
		"custom_attributes": in.CustomAttributes,
		"avoid_terms":       in.AvoidTerms,
		"makeup_data":       in.MakeupData,
	}
	for part, value := range in.Attire {
		sel[part] = value
	}
	return sel
}

// mergeOverrides applies the inputs_json override map onto the
// selection. Unknown keys are logged and dropped, malformed JSON is
// ignored entirely.
func mergeOverrides(sel outfit.Selection, inputsJSON string, allowed map[string]bool) outfit.Selection {
	if inputsJSON == "" {
		return sel
	}

	var overrides map[string]string
	if err := json.Unmarshal([]byte(inputsJSON), &overrides); err != nil {
		logger.Warn("inputs_json parse ignored", "error", err)
		return sel
	}

	for key, value := range overrides {
		if !allowed[key] {
			logger.Warn("inputs_json key ignored", "key", key)
			continue
		}
		sel[key] = value
	}
	return sel
}

// InputsFromJSON decodes a flat JSON object of schema-named fields into
// typed inputs, starting from the schema defaults. Unknown keys are
// treated as attire selections when they match a body part and logged
// otherwise.
func InputsFromJSON(bodyParts []string, raw []byte) (Inputs, error) {
	in := DefaultInputs(bodyParts)
	if len(raw) == 0 {
		return in, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return in, err
	}

	parts := map[string]bool{}
	for _, p := range bodyParts {
		parts[p] = true
	}

	strField := func(key string, dst *string) {
		if raw, ok := fields[key]; ok {
			_ = json.Unmarshal(raw, dst)
			delete(fields, key)
		}
	}
	boolField := func(key string, dst *bool) {
		if raw, ok := fields[key]; ok {
			_ = json.Unmarshal(raw, dst)
			delete(fields, key)
		}
	}
	seedField := func(key string, dst *uint32) {
		if raw, ok := fields[key]; ok {
			_ = json.Unmarshal(raw, dst)
			delete(fields, key)
		}
	}

	strField("preset", &in.Preset)
	boolField("preset_colors", &in.PresetColors)
	strField("avoid_terms", &in.AvoidTerms)
	strField("age_group", &in.AgeGroup)
	strField("character_name", &in.CharacterName)
	strField("body_type", &in.BodyType)
	strField("pose", &in.Pose)
	strField("background", &in.Background)
	strField("race", &in.Race)
	strField("mood", &in.Mood)
	strField("time_of_day", &in.TimeOfDay)
	strField("weather", &in.Weather)
	strField("color_scheme", &in.ColorScheme)
	strField("description_style", &in.DescriptionStyle)
	strField("creative_scale", &in.CreativeScale)
	strField("custom_attributes", &in.CustomAttributes)
	seedField("seed", &in.Seed)
	seedField("style_seed", &in.StyleSeed)
	strField("seed_mode", &in.SeedMode)
	boolField("lock_preset_fields", &in.LockPresetFields)
	boolField("enable_cache", &in.EnableCache)
	strField("makeup_data", &in.MakeupData)
	strField("inputs_json", &in.InputsJSON)

	for key, raw := range fields {
		if !parts[key] {
			logger.Warn("Unknown input field ignored", "field", key)
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err == nil {
			in.Attire[key] = value
		}
	}

	return in, nil
}
