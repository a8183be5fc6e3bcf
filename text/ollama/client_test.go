package ollama

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outfitforge/settings"
)

// serverConfig splits the httptest URL into the url/port pair the
// config carries.
func serverConfig(t *testing.T, server *httptest.Server) settings.OllamaConfig {
	t.Helper()
	idx := strings.LastIndex(server.URL, ":")
	return settings.OllamaConfig{
		Url:            server.URL[:idx],
		Port:           server.URL[idx+1:],
		DefaultModel:   "test-model",
		TimeoutSeconds: 5,
	}
}

func TestGenerate(t *testing.T) {
	var got GenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(GenerateResponse{Response: "  a rewritten prompt \n", Done: true})
	}))
	defer server.Close()

	text, err := Generate("describe this", "you are a rewriter", "", 42, serverConfig(t, server))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "a rewritten prompt" {
		t.Errorf("text = %q", text)
	}
	if got.Model != "test-model" {
		t.Errorf("empty model should fall back to default, sent %q", got.Model)
	}
	if got.Stream {
		t.Error("streaming must be disabled")
	}
	if got.Options.Seed != 42 {
		t.Errorf("seed = %d, want 42", got.Options.Seed)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateResponse{Done: true})
	}))
	defer server.Close()

	if _, err := Generate("x", "", "m", 1, serverConfig(t, server)); err == nil {
		t.Error("empty response content should be an error")
	}
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := Generate("x", "", "m", 1, serverConfig(t, server)); err == nil {
		t.Error("5xx should be an error")
	}
}

func TestModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(TagsResponse{Models: []TagModel{
			{Name: "llama3.2:latest"}, {Name: "qwen2.5:7b"},
		}})
	}))
	defer server.Close()

	names, err := Models(serverConfig(t, server))
	if err != nil {
		t.Fatalf("Models: %v", err)
	}
	if len(names) != 2 || names[0] != "llama3.2:latest" || names[1] != "qwen2.5:7b" {
		t.Errorf("names = %v", names)
	}
}
