package palettegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

var ErrEmptyResponse = errors.New("model returned no candidates")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client asks a hosted Gemini model for palettes through the
// generateContent REST endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schema struct {
	Type       string            `json:"type"`
	Items      *schema           `json:"items,omitempty"`
	Properties map[string]schema `json:"properties,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

var paletteSchema = schema{
	Type: "OBJECT",
	Properties: map[string]schema{
		"palette": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
	},
	Required: []string{"palette"},
}

// Generate validates prompt, sends it to the model and returns the
// validated palette. It does not retry.
func (c *Client) Generate(ctx context.Context, prompt string) ([]string, error) {
	if err := ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	text, err := RenderPrompt(prompt)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: text}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   paletteSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call model API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("model API %s returned %d: %s", c.model, resp.StatusCode, bytes.TrimSpace(snippet))
		return nil, fmt.Errorf("model API returned status: %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if len(gr.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}

	var out strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		out.WriteString(p.Text)
	}

	parsed, err := ParseOutput(out.String())
	if err != nil {
		return nil, err
	}

	log.Printf("model %s returned %d colors in %v", c.model, len(parsed.Palette), time.Since(started).Round(time.Millisecond))
	return parsed.Palette, nil
}
