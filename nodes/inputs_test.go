package nodes

import (
	"testing"

	"outfitforge/outfit"
)

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs([]string{"torso", "legs", "makeup"})

	if in.Preset != outfit.None {
		t.Errorf("Preset = %q, want none", in.Preset)
	}
	if !in.PresetColors || !in.EnableCache {
		t.Error("PresetColors and EnableCache should default on")
	}
	if in.SeedMode != SeedRandom {
		t.Errorf("SeedMode = %q, want random", in.SeedMode)
	}
	if in.Pose != outfit.Random || in.CreativeScale != outfit.None {
		t.Errorf("scene defaults wrong: pose=%q scale=%q", in.Pose, in.CreativeScale)
	}
	if in.Attire["torso"] != outfit.Random || in.Attire["legs"] != outfit.Random {
		t.Errorf("attire defaults wrong: %v", in.Attire)
	}
	if _, ok := in.Attire["makeup"]; ok {
		t.Error("makeup should not be an attire dropdown")
	}
}

func TestInputsFromJSON(t *testing.T) {
	raw := []byte(`{
		"character_name": "Ava",
		"pose": "standing",
		"seed": 42,
		"seed_mode": "fixed",
		"preset_colors": false,
		"torso": "t-shirt",
		"mystery_field": "ignored"
	}`)

	in, err := InputsFromJSON([]string{"torso", "legs"}, raw)
	if err != nil {
		t.Fatalf("InputsFromJSON: %v", err)
	}
	if in.CharacterName != "Ava" || in.Pose != "standing" {
		t.Errorf("string fields wrong: %+v", in)
	}
	if in.Seed != 42 || in.SeedMode != SeedFixed {
		t.Errorf("seed fields wrong: seed=%d mode=%q", in.Seed, in.SeedMode)
	}
	if in.PresetColors {
		t.Error("preset_colors false not decoded")
	}
	if in.Attire["torso"] != "t-shirt" {
		t.Errorf("attire override wrong: %v", in.Attire)
	}
	if in.Attire["legs"] != outfit.Random {
		t.Errorf("untouched attire should stay random: %v", in.Attire)
	}

	// Defaults untouched by the payload survive.
	if in.Background != outfit.Random || !in.EnableCache {
		t.Errorf("defaults clobbered: %+v", in)
	}
}

func TestInputsFromJSONEmptyAndBad(t *testing.T) {
	in, err := InputsFromJSON([]string{"torso"}, nil)
	if err != nil {
		t.Fatalf("nil payload: %v", err)
	}
	if in.SeedMode != SeedRandom {
		t.Error("nil payload should yield defaults")
	}

	if _, err := InputsFromJSON([]string{"torso"}, []byte(`{broken`)); err == nil {
		t.Error("malformed payload should error")
	}
}

func TestMergeOverrides(t *testing.T) {
	allowed := map[string]bool{"pose": true, "torso": true}
	fresh := func() outfit.Selection {
		return outfit.Selection{"pose": "random", "torso": "random"}
	}

	got := mergeOverrides(fresh(), `{"pose": "sitting", "stray": "x"}`, allowed)
	if got["pose"] != "sitting" {
		t.Errorf("pose = %q, want sitting", got["pose"])
	}
	if _, ok := got["stray"]; ok {
		t.Error("unknown key should be dropped")
	}

	got = mergeOverrides(fresh(), `not json`, allowed)
	if got["pose"] != "random" {
		t.Error("malformed overrides should leave selection untouched")
	}

	got = mergeOverrides(fresh(), "", allowed)
	if got["torso"] != "random" {
		t.Error("empty overrides should leave selection untouched")
	}
}
