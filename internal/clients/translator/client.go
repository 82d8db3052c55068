package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/quiplash-go/internal/model"
)

// SupportedLanguages are the language codes every prompt is translated into
var SupportedLanguages = []string{"en", "es", "it", "sv", "ru", "id", "bg", "zh-Hans"}

const apiVersion = "3.0"

// Config holds translator endpoint and credential settings
type Config struct {
	// Endpoint is the base URL of the translation API
	Endpoint string
	// Key is the subscription key sent in the Ocp-Apim-Subscription-Key header
	Key string
	// Region is the subscription region; defaults to francecentral
	Region string
	// Timeout for individual translation requests
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for translator configuration
func DefaultConfig() Config {
	return Config{
		Region:  "francecentral",
		Timeout: 10 * time.Second,
	}
}

// Client calls a Microsoft-Translator-v3-compatible API
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new translator client
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Region == "" {
		cfg.Region = DefaultConfig().Region
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// translateItem is one element of the API's response array
type translateItem struct {
	DetectedLanguage struct {
		Language string  `json:"language"`
		Score    float64 `json:"score"`
	} `json:"detectedLanguage"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Detect returns the detected language of the text and the detection score.
// Detection piggybacks on a translate-to-English request, which is how the
// v3 API reports the source language
func (c *Client) Detect(ctx context.Context, text string) (string, float64, error) {
	item, err := c.translate(ctx, text, []string{"en"})
	if err != nil {
		return "", 0, err
	}
	return item.DetectedLanguage.Language, item.DetectedLanguage.Score, nil
}

// TranslateToAll resolves the source language of the text and translates it
// into the remaining supported languages.
//
// Failures degrade rather than fail: the result always contains at least the
// submitted text, tagged with its detected language (or "en" when detection
// was unavailable). Targets missing from the batch response are retried with
// a per-language fallback request
func (c *Client) TranslateToAll(ctx context.Context, text string) ([]model.LocalizedText, error) {
	lang, _, err := c.Detect(ctx, text)
	if err != nil || lang == "" {
		if err != nil {
			c.logger.Warn("language detection failed", slog.String("error", err.Error()))
		}
		lang = "en"
	}

	texts := []model.LocalizedText{{Language: lang, Text: text}}

	var targets []string
	for _, code := range SupportedLanguages {
		if code != lang {
			targets = append(targets, code)
		}
	}

	if len(targets) > 0 {
		item, err := c.translate(ctx, text, targets)
		if err != nil {
			c.logger.Warn("batch translation failed", slog.String("error", err.Error()))
		} else {
			for _, t := range item.Translations {
				texts = append(texts, model.LocalizedText{Language: t.To, Text: t.Text})
			}
		}
	}

	// Retry any target the batch response did not cover
	have := make(map[string]bool, len(texts))
	for _, t := range texts {
		have[t.Language] = true
	}
	for _, code := range SupportedLanguages {
		if have[code] {
			continue
		}
		item, err := c.translate(ctx, text, []string{code})
		if err != nil || len(item.Translations) == 0 {
			if err != nil {
				c.logger.Warn("fallback translation failed",
					slog.String("language", code),
					slog.String("error", err.Error()))
			}
			continue
		}
		texts = append(texts, model.LocalizedText{Language: code, Text: item.Translations[0].Text})
	}

	return texts, nil
}

// translate performs one translate call with the given target languages
func (c *Client) translate(ctx context.Context, text string, targets []string) (*translateItem, error) {
	params := url.Values{}
	params.Set("api-version", apiVersion)
	for _, t := range targets {
		params.Add("to", t)
	}

	reqBody, err := json.Marshal([]map[string]string{{"Text": text}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := c.baseURL() + "translate?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.Key)
	req.Header.Set("Ocp-Apim-Subscription-Region", c.cfg.Region)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translate request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translate returned HTTP %d", resp.StatusCode)
	}

	var items []translateItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse translate response: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("translate returned empty response")
	}

	return &items[0], nil
}

// baseURL normalizes the configured endpoint to a https URL with a
// trailing slash
func (c *Client) baseURL() string {
	base := strings.TrimSpace(c.cfg.Endpoint)
	if !strings.HasPrefix(base, "http") {
		base = "https://" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}
