package prompt

import (
	"strings"
)

// Selection conflicts that inject automatic negative terms. A clean
// shaven face should never render a beard; a shaved head should never
// render a ponytail.
func autoNegativeTerms(selections map[string]string) []string {
	var terms []string

	switch facial := selections["facial_hair"]; {
	case facial == "clean shaven":
		terms = append(terms, "beard", "mustache", "goatee", "stubble")
	case facial != "" && facial != "none":
		terms = append(terms, "clean shaven")
	}

	switch hair := selections["hairstyle"]; {
	case hair == "shaved head" || hair == "buzz cut":
		terms = append(terms, "long hair", "ponytail", "braid", "bun")
	case hair != "" && hair != "none":
		terms = append(terms, "bald", "shaved head")
	}

	if selections["eyewear"] == "no eyewear" {
		terms = append(terms, "glasses", "sunglasses", "goggles", "monocle")
	}

	return terms
}

func (b *Builder) buildNegative() {
	auto := autoNegativeTerms(b.meta.Selections)
	auto = append(auto, b.cfg.NegativeBaseline...)
	b.meta.AutoNegatives = auto
	b.negative = ComposeNegativePrompt(b.data["avoid_terms"], auto)
}

// ComposeNegativePrompt merges the user's free-text avoid terms with
// automatically derived ones. User terms keep their order and casing
// and come first; duplicates are dropped case-insensitively.
func ComposeNegativePrompt(userText string, autoTerms []string) string {
	seen := map[string]bool{}
	var terms []string

	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" {
			return
		}
		key := strings.ToLower(term)
		if seen[key] {
			return
		}
		seen[key] = true
		terms = append(terms, term)
	}

	for _, term := range strings.FieldsFunc(userText, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		add(term)
	}
	for _, term := range autoTerms {
		add(term)
	}

	return strings.Join(terms, ", ")
}
