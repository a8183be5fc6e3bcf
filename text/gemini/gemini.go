// Package gemini is an alternative rewrite backend using the Google
// generative AI API.
package gemini

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"outfitforge/settings"
)

func newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, option.WithAPIKey(apiKey))
}

// processResponse extracts the first text content part from the genai response.
func processResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates found in response")
	}
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if txt, ok := part.(genai.Text); ok {
					return string(txt), nil
				}
			}
		}
	}
	return "", errors.New("no text content found in response")
}

// SingleRequest sends one prompt, optionally prefixed by a system
// instruction, and returns the model text.
func SingleRequest(ctx context.Context, prompt, system string, config settings.GeminiConfig) (string, error) {
	client, err := newClient(ctx, config.ApiKey)
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(config.Model)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return processResponse(resp)
}
