package support

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outfitforge/settings"
)

func ollamaConfig(t *testing.T, server *httptest.Server) settings.OllamaConfig {
	t.Helper()
	idx := strings.LastIndex(server.URL, ":")
	return settings.OllamaConfig{
		Url:            server.URL[:idx],
		Port:           server.URL[idx+1:],
		DefaultModel:   "test-model",
		TimeoutSeconds: 5,
	}
}

func TestRewrite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"response": "a lavish rewritten prompt", "done": true})
	}))
	defer server.Close()

	rewriter := Rewriter{Ollama: ollamaConfig(t, server), Backend: BackendOllama}
	if got := rewriter.Rewrite("plain prompt", "", 7); got != "a lavish rewritten prompt" {
		t.Errorf("Rewrite = %q", got)
	}
}

func TestRewriteFailureReturnsInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	rewriter := Rewriter{Ollama: ollamaConfig(t, server), Backend: BackendOllama}
	if got := rewriter.Rewrite("plain prompt", "", 7); got != "plain prompt" {
		t.Errorf("failed rewrite should return input, got %q", got)
	}
}

func TestRewriteEmptyText(t *testing.T) {
	rewriter := Rewriter{Backend: BackendOllama}
	if got := rewriter.Rewrite("", "", 0); got != "" {
		t.Errorf("empty input should short-circuit, got %q", got)
	}
}

func TestRewriterModelsUnreachable(t *testing.T) {
	rewriter := Rewriter{Ollama: settings.OllamaConfig{
		Url: "http://127.0.0.1", Port: "1", TimeoutSeconds: 1,
	}}
	if models := rewriter.Models(); models != nil {
		t.Errorf("unreachable server should yield nil, got %v", models)
	}
}
