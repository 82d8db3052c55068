package contentsafety

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const apiVersion = "2023-10-01"

// Categories analyzed for every prompt; the mean severity is computed over
// all four, with absent categories counting as zero
var Categories = []string{"Hate", "SelfHarm", "Sexual", "Violence"}

// Config holds content-safety endpoint and credential settings
type Config struct {
	// Endpoint is the base URL of the content-safety API
	Endpoint string
	// Key is the subscription key sent in the Ocp-Apim-Subscription-Key header
	Key string
	// Timeout for analysis requests
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for content-safety configuration
func DefaultConfig() Config {
	return Config{
		Timeout: 10 * time.Second,
	}
}

// Client calls a text content-safety analysis API
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a new content-safety client
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type analyzeRequest struct {
	Text               string   `json:"text"`
	Categories         []string `json:"categories"`
	HaltOnBlocklistHit bool     `json:"haltOnBlocklistHit"`
}

type analyzeResponse struct {
	CategoriesAnalysis []struct {
		Category string  `json:"category"`
		Severity float64 `json:"severity"`
	} `json:"categoriesAnalysis"`
}

// AnalyzeText analyzes the text and returns the mean severity over the four
// analyzed categories. Unlike translation, errors surface to the caller:
// moderation must not silently approve when the service is unreachable
func (c *Client) AnalyzeText(ctx context.Context, text string) (float64, error) {
	reqBody, err := json.Marshal(analyzeRequest{
		Text:               text,
		Categories:         Categories,
		HaltOnBlocklistHit: false,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := c.baseURL() + "contentsafety/text:analyze?api-version=" + apiVersion
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(reqBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.Key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("content safety request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("content safety returned HTTP %d", resp.StatusCode)
	}

	var result analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to parse content safety response: %w", err)
	}

	var total float64
	for _, cat := range Categories {
		for _, item := range result.CategoriesAnalysis {
			if item.Category == cat {
				total += item.Severity
				break
			}
		}
	}

	return total / float64(len(Categories)), nil
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
