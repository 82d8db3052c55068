package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/quiplash-go/internal/testutil"
)

// fakeTranslator serves a Microsoft-Translator-v3-shaped translate endpoint
// that echoes the input text prefixed with the target language code
func fakeTranslator(t *testing.T, detected string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate", r.URL.Path)
		require.Equal(t, "3.0", r.URL.Query().Get("api-version"))
		require.NotEmpty(t, r.Header.Get("Ocp-Apim-Subscription-Key"))
		require.NotEmpty(t, r.Header.Get("Ocp-Apim-Subscription-Region"))

		var body []struct {
			Text string `json:"Text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body, 1)

		targets := r.URL.Query()["to"]
		item := map[string]any{
			"detectedLanguage": map[string]any{
				"language": detected,
				"score":    0.97,
			},
		}
		translations := make([]map[string]string, 0, len(targets))
		for _, to := range targets {
			translations = append(translations, map[string]string{
				"text": to + ": " + body[0].Text,
				"to":   to,
			})
		}
		item["translations"] = translations

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]any{item})
	}))
}

func newTestClient(endpoint string) *Client {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Key = "test-key"
	return New(cfg, testutil.NopLogger())
}

func TestDetect(t *testing.T) {
	server := fakeTranslator(t, "it")
	defer server.Close()

	client := newTestClient(server.URL)

	lang, score, err := client.Detect(context.Background(), "Qual e il tuo piatto preferito")
	require.NoError(t, err)
	assert.Equal(t, "it", lang)
	assert.InDelta(t, 0.97, score, 0.001)
}

func TestTranslateToAllCoversSupportedLanguages(t *testing.T) {
	server := fakeTranslator(t, "en")
	defer server.Close()

	client := newTestClient(server.URL)

	texts, err := client.TranslateToAll(context.Background(), "The weirdest use for a banana")
	require.NoError(t, err)
	require.Len(t, texts, len(SupportedLanguages))

	byLang := make(map[string]string, len(texts))
	for _, lt := range texts {
		byLang[lt.Language] = lt.Text
	}
	for _, code := range SupportedLanguages {
		assert.Contains(t, byLang, code)
	}

	// The source language keeps the original text
	assert.Equal(t, "The weirdest use for a banana", byLang["en"])
	assert.Equal(t, "es: The weirdest use for a banana", byLang["es"])
}

func TestTranslateToAllKeepsDetectedSource(t *testing.T) {
	server := fakeTranslator(t, "es")
	defer server.Close()

	client := newTestClient(server.URL)

	texts, err := client.TranslateToAll(context.Background(), "El uso mas raro de un platano")
	require.NoError(t, err)

	byLang := make(map[string]string, len(texts))
	for _, lt := range texts {
		byLang[lt.Language] = lt.Text
	}
	assert.Equal(t, "El uso mas raro de un platano", byLang["es"])
	assert.Equal(t, "en: El uso mas raro de un platano", byLang["en"])
}

func TestTranslateToAllDegradesOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	texts, err := client.TranslateToAll(context.Background(), "The weirdest use for a banana")
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "en", texts[0].Language)
	assert.Equal(t, "The weirdest use for a banana", texts[0].Text)
}

func TestTranslateToAllRetriesMissingTargets(t *testing.T) {
	// Batch responses drop "sv"; per-language fallback requests still serve it
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []struct {
			Text string `json:"Text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		targets := r.URL.Query()["to"]
		translations := make([]map[string]string, 0, len(targets))
		for _, to := range targets {
			if to == "sv" && len(targets) > 1 {
				continue
			}
			translations = append(translations, map[string]string{
				"text": to + ": " + body[0].Text,
				"to":   to,
			})
		}

		item := map[string]any{
			"detectedLanguage": map[string]any{"language": "en", "score": 1.0},
			"translations":     translations,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]any{item})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	texts, err := client.TranslateToAll(context.Background(), "The weirdest use for a banana")
	require.NoError(t, err)
	require.Len(t, texts, len(SupportedLanguages))

	found := false
	for _, lt := range texts {
		if lt.Language == "sv" {
			found = true
			assert.Equal(t, "sv: The weirdest use for a banana", lt.Text)
		}
	}
	assert.True(t, found, "sv should be filled by the fallback request")
}

func TestDetectErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, _, err := client.Detect(context.Background(), "some text")
	assert.Error(t, err)
}
