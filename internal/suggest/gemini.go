package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Rishit-Ranjan/Task-Pallete/internal/utils"
)

const DefaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

var ErrNoAPIKey = errors.New("gemini api key not set")

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	apiKey          string
	baseURL         string
	temperature     float64
	maxOutputTokens int
	client          *http.Client
}

type GeminiOptions struct {
	APIKey          string
	URL             string
	Temperature     float64
	MaxOutputTokens int
	// HTTPClient defaults to http.DefaultClient; the caller's context bounds each call.
	HTTPClient *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiClient(opts GeminiOptions) *GeminiClient {
	c := &GeminiClient{
		apiKey:          opts.APIKey,
		baseURL:         opts.URL,
		temperature:     opts.Temperature,
		maxOutputTokens: opts.MaxOutputTokens,
		client:          opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultGeminiURL
	}
	if c.maxOutputTokens <= 0 {
		c.maxOutputTokens = 500
	}
	if c.client == nil {
		c.client = http.DefaultClient
	}
	return c
}

// Generate sends one prompt and returns the text of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, utils.Truncate(string(respBody), 200))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	content := apiResp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.New("invalid content structure")
	}
	return content.Parts[0].Text, nil
}
