// Package nodes wires the outfit data, presets and prompt builder into
// graph-host node classes.
package nodes

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"

	"outfitforge/logger"
	"outfitforge/outfit"
	"outfitforge/prompt"
	"outfitforge/settings"
	"outfitforge/store"
)

// Deps are the shared collaborators a node uses. The cache is owned by
// the caller, never static node state.
type Deps struct {
	Cache *Cache
	Store *store.Store
}

type OutfitNode struct {
	Gender string
	Class  string

	bodyParts []string
	options   map[string][]string
	presets   outfit.Presets
	promptCfg prompt.Config
	allowed   map[string]bool

	cache           *Cache
	db              *store.Store
	persistLastSeed bool
	lastSeed        uint32

	log *slog.Logger
}

// New builds the node class for one gender: discovers its body parts,
// loads every option list, the presets and the style definitions.
func New(gender string, cfg settings.OutfitConfig, deps Deps) *OutfitNode {
	genderDir := filepath.Join(cfg.DataDir, "outfit", gender)
	class := capitalize(gender) + "OutfitNode"

	bodyParts := outfit.DiscoverBodyParts(genderDir)
	options := outfit.LoadAttireOptions(genderDir, bodyParts)
	for _, part := range bodyParts {
		// Makeup is driven by the opaque payload, not a dropdown, so
		// its list carries no "random" token.
		if part == "makeup" {
			options[part] = outfit.LoadMakeupTypes(genderDir)
		}
	}
	highlights := outfit.LoadSceneHighlights(cfg.StylesDir)
	styleOptions, styleDefs := prompt.LoadStyles(cfg.StylesDir)

	options["age_group"] = outfit.LoadListOptions(cfg.DataDir, "age_groups.json", "age_groups")
	options["race"] = outfit.LoadListOptions(cfg.DataDir, "race.json", "races")
	options["body_type"] = outfit.LoadBodyTypes(genderDir)
	options["pose"] = outfit.LoadListOptions(genderDir, "poses.json", "poses")
	options["background"] = outfit.LoadListOptions(cfg.DataDir, "backgrounds.json", "backgrounds")
	options["mood"] = highlights["moods"]
	options["time_of_day"] = highlights["times"]
	options["weather"] = highlights["weather"]
	options["color_scheme"] = highlights["color_schemes"]
	options["description_style"] = styleOptions
	options["creative_scale"] = outfit.LoadScaleOptions(cfg.StylesDir)

	allowed := map[string]bool{
		"character_name": true, "custom_attributes": true,
		"avoid_terms": true, "makeup_data": true,
	}
	for field := range options {
		allowed[field] = true
	}

	node := &OutfitNode{
		Gender:    gender,
		Class:     class,
		bodyParts: bodyParts,
		options:   options,
		presets:   outfit.LoadPresets(cfg.PresetsFile),
		promptCfg: prompt.Config{
			NegativeBaseline: cfg.NegativeBaseline,
			Styles:           styleDefs,
		},
		allowed:         allowed,
		cache:           deps.Cache,
		db:              deps.Store,
		persistLastSeed: cfg.PersistLastSeed,
		log:             logger.Gender(class, gender),
	}

	if node.persistLastSeed && node.db != nil {
		if last, ok := node.db.GetUint32(node.lastSeedKey()); ok {
			node.lastSeed = last
		}
	}

	return node
}

// BodyParts returns the attire categories in discovery order.
func (n *OutfitNode) BodyParts() []string {
	return n.bodyParts
}

// PresetNames lists the presets available for this node's gender.
func (n *OutfitNode) PresetNames() []string {
	names := make([]string, 0, len(n.presets[n.Gender]))
	for name := range n.presets[n.Gender] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema declares the node's inputs for the graph host.
func (n *OutfitNode) Schema() []InputSpec {
	presetOptions := append([]string{outfit.None, outfit.Random}, n.PresetNames()...)

	specs := []InputSpec{
		enumInput("preset", presetOptions, outfit.None, "Choose a preset to auto-fill fields. Use 'random' to pick one by style seed."),
		boolInput("preset_colors", true, "If OFF, preset fills only clothing types without colors (AI picks colors)."),
		stringInput("avoid_terms", true, "Things to exclude (e.g., blurry, low-res, extra fingers)"),
		enumInput("age_group", n.options["age_group"], outfit.Random, "Age bracket of the subject"),
		stringInput("character_name", false, ""),
		enumInput("body_type", n.options["body_type"], outfit.Random, ""),
		enumInput("pose", n.options["pose"], outfit.Random, ""),
		enumInput("background", n.options["background"], outfit.Random, ""),
		enumInput("race", n.options["race"], outfit.Random, ""),
		enumInput("mood", n.options["mood"], outfit.Random, ""),
		enumInput("time_of_day", n.options["time_of_day"], outfit.Random, ""),
		enumInput("weather", n.options["weather"], outfit.Random, ""),
		enumInput("color_scheme", n.options["color_scheme"], outfit.Random, ""),
		enumInput("description_style", n.options["description_style"], outfit.Random, "Model style profile"),
		enumInput("creative_scale", n.options["creative_scale"], outfit.None, "Creative/detail emphasis"),
		stringInput("custom_attributes", true, "Enter additional attributes..."),
		intInput("seed", 0, "Main seed for image generation."),
		intInput("style_seed", 0, "Separate seed for outfit randomization. 0 follows the main seed."),
		enumInput("seed_mode", SeedModes, SeedRandom, "fixed=use exact value, random=new each time, increment/decrement=step from last value"),
		boolInput("lock_preset_fields", false, "Also lock scene fields (pose, background, ...) to preset values"),
		boolInput("enable_cache", true, "Cache outputs for identical inputs"),
	}

	for _, part := range n.bodyParts {
		if part != "makeup" {
			specs = append(specs, enumInput(part, n.options[part], outfit.Random, ""))
		}
	}

	specs = append(specs,
		InputSpec{Name: "makeup_data", Type: TypeString, Default: "", Hidden: true},
		InputSpec{Name: "inputs_json", Type: TypeString, Default: "", Multiline: true, Hidden: true},
	)
	return specs
}

// Process resolves seeds, applies presets and overrides, runs the
// prompt builder and returns the output tuple. Every failure path
// degrades to a usable result; nothing propagates to the host.
func (n *OutfitNode) Process(in Inputs) Output {
	useSeed := ResolveSeed(in.SeedMode, in.Seed, n.lastSeed)
	n.rememberSeed(useSeed)

	styleSeed := in.StyleSeed
	if styleSeed == 0 {
		styleSeed = useSeed
	}

	sel := mergeOverrides(in.selection(), in.InputsJSON, n.allowed)
	sel = n.applyPreset(sel, in, styleSeed)

	cacheKey, cacheable := n.cacheKey(sel, in, styleSeed, useSeed)
	if cacheable {
		if out, ok := n.cache.Get(cacheKey); ok {
			n.log.Debug("Cache hit", "seed", useSeed)
			return out
		}
	}

	builder := prompt.NewBuilder(styleSeed, sel, n.options, n.promptCfg)
	positive := builder.Build(n.bodyParts)
	negative := builder.NegativePrompt()

	meta := builder.Metadata()
	meta.ImageSeed = useSeed
	meta.StyleSeed = styleSeed
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		n.log.Error("Could not marshal metadata", "error", err)
		metaJSON = []byte("{}")
	}

	out := Output{
		PositivePrompt: positive,
		Seed:           useSeed,
		NegativePrompt: negative,
		MetadataJSON:   string(metaJSON),
	}
	if cacheable {
		n.cache.Put(cacheKey, out)
	}
	return out
}

// applyPreset handles named and random presets. Named presets fill via
// the partial-fill rule only; lock_preset_fields masks scene fields so
// the preset wins there too. preset_colors=false swaps the preset for
// its color-stripped outfit template.
func (n *OutfitNode) applyPreset(sel outfit.Selection, in Inputs, styleSeed uint32) outfit.Selection {
	name := in.Preset
	if name == "" || name == outfit.None {
		return sel
	}

	if name == outfit.Random {
		names := n.PresetNames()
		if len(names) == 0 {
			return sel
		}
		rng := rand.New(rand.NewSource(int64(styleSeed)))
		name = names[rng.Intn(len(names))]
		n.log.Info("Randomly selected preset", "preset", name, "seed", styleSeed)
	}

	preset, ok := n.presets[n.Gender][name]
	if !ok {
		n.log.Warn("Unknown preset", "preset", name)
		return sel
	}
	for key := range preset {
		if !n.allowed[key] {
			n.log.Warn("Preset contains unknown key", "preset", name, "key", key)
		}
	}

	if !in.PresetColors {
		template := outfit.ExtractOutfitTemplate(preset, n.bodyParts)
		if len(template) > 0 {
			n.log.Info("Applied outfit template without colors", "preset", name)
			return outfit.ApplyOutfitTemplate(sel, template)
		}
		return sel
	}

	if in.LockPresetFields {
		for _, field := range []string{"pose", "background", "mood", "time_of_day", "weather", "color_scheme"} {
			if _, ok := preset[field]; ok {
				sel[field] = outfit.Random
			}
		}
	}
	return outfit.ApplyPreset(sel, preset)
}

// cacheKey builds the canonical JSON signature over the final selection
// plus everything else that shapes the output.
func (n *OutfitNode) cacheKey(sel outfit.Selection, in Inputs, styleSeed, useSeed uint32) (CacheKey, bool) {
	if !in.EnableCache || n.cache == nil {
		return CacheKey{}, false
	}

	sig := map[string]any{
		"_gender":            n.Gender,
		"_style_seed":        styleSeed,
		"preset":             in.Preset,
		"preset_colors":      in.PresetColors,
		"lock_preset_fields": in.LockPresetFields,
	}
	for key, value := range sel {
		sig[key] = value
	}

	raw, err := json.Marshal(sig)
	if err != nil {
		n.log.Error("Cache key generation failed", "error", err)
		return CacheKey{}, false
	}
	return CacheKey{Sig: string(raw), SeedMode: in.SeedMode, Seed: useSeed}, true
}

func (n *OutfitNode) rememberSeed(seed uint32) {
	n.lastSeed = seed
	if n.persistLastSeed && n.db != nil {
		if err := n.db.PutUint32(n.lastSeedKey(), seed); err != nil {
			n.log.Error("Could not persist last seed", "error", err)
		}
	}
}

func (n *OutfitNode) lastSeedKey() string {
	return "last_seed:" + n.Class
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
