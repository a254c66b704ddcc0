package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tubenotes/tubenotes/pkg/config"
)

// Response size limit to prevent OOM from malformed responses (10MB)
const maxResponseSize = 10 * 1024 * 1024

// GeminiClient is a minimal client for the Google generative-language API.
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided config.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = "https://generativelanguage.googleapis.com"
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-pro"
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &GeminiClient{
		apiKey:  cfg.APIKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// generateRequest is the shape for generateContent requests
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is a minimal response shape
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// geminiErrorResponse is the error body returned by the API
type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends promptText to the generation service and returns the
// completion text. Failures propagate as-is; the caller decides whether to
// abort or fall back.
func (g *GeminiClient) Generate(ctx context.Context, promptText string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: promptText}}},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", parseGeminiError(resp.StatusCode, respBody)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// parseGeminiError extracts the API error message when the body is parseable.
func parseGeminiError(statusCode int, body []byte) error {
	var er geminiErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error.Message != "" {
		return fmt.Errorf("gemini API error %d: %s", statusCode, er.Error.Message)
	}
	return fmt.Errorf("gemini returned status %d", statusCode)
}
