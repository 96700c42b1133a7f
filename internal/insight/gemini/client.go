package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"resumeiq/internal/config"
	"resumeiq/internal/domain"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client implements port.InsightGenerator against Google's Gemini API. It
// sends text-only generateContent requests and returns the model's raw text
// reply with no schema guarantee.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini-backed insight generator.
func NewClient(cfg *config.GeminiConfig) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Generate sends the prompt to Gemini and returns the first candidate's raw
// text. Every transport, timeout, quota, or empty-candidate failure wraps
// domain.ErrInsightUnavailable so callers can absorb it at the normalizer
// boundary.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", unavailable(fmt.Errorf("calling gemini API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", unavailable(fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", unavailable(fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500)))
	}

	return extractText(respBody)
}

// geminiResponse models the generateContent response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func extractText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", unavailable(fmt.Errorf("unmarshaling response: %w", err))
	}
	if len(resp.Candidates) == 0 {
		return "", unavailable(errors.New("empty response from API: no candidates"))
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", unavailable(errors.New("empty response from API: no parts"))
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInsightUnavailable, err)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
