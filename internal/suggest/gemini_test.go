package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)
		assert.Equal(t, 0.7, req.GenerationConfig.Temperature)
		assert.Equal(t, 500, req.GenerationConfig.MaxOutputTokens)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[{\"title\":\"x\"}]"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(GeminiOptions{APIKey: "test-key", URL: srv.URL, Temperature: 0.7, MaxOutputTokens: 500})
	text, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"x"}]`, text)
}

func TestGeminiClient_Errors(t *testing.T) {
	cases := map[string]func(w http.ResponseWriter){
		"status": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"bad key"}`))
		},
		"no candidates": func(w http.ResponseWriter) { _, _ = w.Write([]byte(`{"candidates":[]}`)) },
		"no content":    func(w http.ResponseWriter) { _, _ = w.Write([]byte(`{"candidates":[{}]}`)) },
		"no parts":      func(w http.ResponseWriter) { _, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`)) },
		"not json":      func(w http.ResponseWriter) { _, _ = w.Write([]byte(`<html>`)) },
	}
	for name, respond := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { respond(w) }))
			defer srv.Close()

			c := NewGeminiClient(GeminiOptions{APIKey: "k", URL: srv.URL})
			_, err := c.Generate(context.Background(), "p")
			assert.Error(t, err)
		})
	}
}

func TestGeminiClient_NoKey(t *testing.T) {
	c := NewGeminiClient(GeminiOptions{})
	_, err := c.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGeminiClient_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewGeminiClient(GeminiOptions{APIKey: "k", URL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Generate(ctx, "p")
	assert.Error(t, err)
}

func TestEngine_WithGeminiServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Here you go: [{\"title\":\"Book venue\",\"description\":\"Call around\"}]"}]}}]}`))
	}))
	defer srv.Close()

	e := NewEngine(NewGeminiClient(GeminiOptions{APIKey: "k", URL: srv.URL}), time.Second, nil)
	res := e.Resolve(context.Background(), "wedding")
	assert.Equal(t, SourceRemote, res.Source)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Book venue", res.Suggestions[0].Title)
}
