package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestHTTPClientGenerate_Success(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "the answer"}},
			},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test-key", "gpt-3.5-turbo", zap.NewNop())
	got, err := client.Generate(context.Background(), "my question")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "the answer" {
		t.Fatalf("unexpected answer %q", got)
	}

	if captured.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model %q", captured.Model)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != systemInstruction {
		t.Fatalf("unexpected system message %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "my question" {
		t.Fatalf("unexpected user message %+v", captured.Messages[1])
	}
	if captured.MaxTokens != 1000 || captured.Temperature != 0.7 {
		t.Fatalf("unexpected sampling params %d %v", captured.MaxTokens, captured.Temperature)
	}
}

func TestHTTPClientGenerate_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test-key", "gpt-3.5-turbo", zap.NewNop())
	if _, err := client.Generate(context.Background(), "q"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHTTPClientGenerate_EmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test-key", "gpt-3.5-turbo", zap.NewNop())
	if _, err := client.Generate(context.Background(), "q"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
