package support

import (
	"context"

	"outfitforge/logger"
	"outfitforge/settings"
	"outfitforge/text/gemini"
	"outfitforge/text/ollama"
)

// Rewrite backends.
const (
	BackendOllama = "ollama"
	BackendGemini = "gemini"
)

const rewriteSystemPrompt = "You rewrite image generation prompts. Expand the prompt with vivid visual detail while keeping every stated attribute. Reply with the rewritten prompt only."

// Rewriter sends prompt text to a local LLM for polishing. Every
// failure returns the input text unchanged so the graph keeps running.
type Rewriter struct {
	Ollama  settings.OllamaConfig
	Gemini  settings.GeminiConfig
	Backend string
}

// Rewrite returns the rewritten prompt, or the original text on any
// error.
func (r *Rewriter) Rewrite(text, model string, seed uint32) string {
	if text == "" {
		return text
	}

	var rewritten string
	var err error
	switch r.Backend {
	case BackendGemini:
		rewritten, err = gemini.SingleRequest(context.Background(), text, rewriteSystemPrompt, r.Gemini)
	default:
		rewritten, err = ollama.Generate(text, rewriteSystemPrompt, model, seed, r.Ollama)
	}

	if err != nil {
		logger.Service("rewriter").Error("Rewrite failed, returning input unchanged", "backend", r.Backend, "error", err)
		return text
	}
	return rewritten
}

// Models lists the rewrite models available on the Ollama backend. An
// unreachable server yields an empty list.
func (r *Rewriter) Models() []string {
	models, err := ollama.Models(r.Ollama)
	if err != nil {
		return nil
	}
	return models
}
