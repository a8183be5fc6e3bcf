// Package ollama talks to a local Ollama server. Every call is a single
// blocking request with a fixed timeout and no retries.
package ollama

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"outfitforge/helpers"
	"outfitforge/http/request"
	"outfitforge/logger"
	"outfitforge/settings"
)

// Generate sends a prompt to /api/generate and returns the trimmed
// response text.
func Generate(prompt, system, model string, seed uint32, config settings.OllamaConfig) (string, error) {
	if model == "" {
		model = config.DefaultModel
	}

	requestBody := &GenerateRequest{
		Model:   model,
		System:  system,
		Prompt:  prompt,
		Stream:  false,
		Options: Options{Seed: seed},
	}

	requestId := uuid.NewString()
	log := logger.Service("ollama").With("request_id", requestId, "model", model)
	log.Debug("Sending generate request", "prompt_len", len(prompt))

	ollamaRequest := request.Request{
		Url:     helpers.MakeUrlWithPort(config.Url, config.Port) + "api/generate",
		Method:  "POST",
		Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		Headers: []request.Headers{{Key: "Content-Type", Value: "application/json"}},
		Payload: requestBody,
	}

	var response GenerateResponse
	if err := ollamaRequest.Call(&response); err != nil {
		log.Error("Generate request failed", "error", err)
		return "", err
	}

	if response.Response == "" {
		return "", errors.New("no content found")
	}

	return strings.TrimSpace(response.Response), nil
}

// Models lists the model names the server reports via /api/tags.
func Models(config settings.OllamaConfig) ([]string, error) {
	tagsRequest := request.Request{
		Url:     helpers.MakeUrlWithPort(config.Url, config.Port) + "api/tags",
		Method:  "GET",
		Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
	}

	var response TagsResponse
	if err := tagsRequest.Call(&response); err != nil {
		logger.Service("ollama").Error("Could not fetch model tags", "error", err)
		return nil, err
	}

	names := make([]string, 0, len(response.Models))
	for _, model := range response.Models {
		names = append(names, model.Name)
	}
	return names, nil
}
