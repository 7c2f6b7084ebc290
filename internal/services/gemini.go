package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"echo-backend/internal/config"
)

const (
	// Generation parameters are fixed; the only per-request variation is the
	// prompt text itself.
	generationTemperature = 0.25
	generationMaxTokens   = 420

	requestTimeout = 60 * time.Second
)

// Gemini REST wire types for the generateContent endpoint.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiService performs single-shot calls against the Gemini generateContent
// REST endpoint. It holds no per-request state; credentials and the model
// name are read from the config on every call.
type GeminiService struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewGeminiService(cfg *config.Config) *GeminiService {
	return &GeminiService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Generate sends one generation request and returns the concatenated text of
// the first candidate. Exactly one outbound call is made; there is no retry.
func (s *GeminiService) Generate(ctx context.Context, systemText, userText string) (string, error) {
	apiKey := s.cfg.GeminiAPIKey
	if apiKey == "" {
		return "", &ConfigError{Message: "missing GEMINI_API_KEY environment variable"}
	}

	model := s.cfg.GeminiModel
	if model == "" {
		model = "gemini-2.5-flash"
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(s.cfg.GeminiBaseURL, "/"), model)

	payload := generateContentRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemText}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userText}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{
			StatusCode: resp.StatusCode,
			Snippet:    truncate(string(respBody), maxBodySnippet),
		}
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &UpstreamError{
			Message: "unexpected Gemini response structure",
			Snippet: truncate(string(respBody), maxBodySnippet),
		}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{
			Message: "unexpected Gemini response structure",
			Snippet: truncate(string(respBody), maxBodySnippet),
		}
	}

	// Merge all parts of the first candidate, in order.
	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	result := strings.TrimSpace(text.String())
	if result == "" {
		return "", &UpstreamError{
			Message: "empty Gemini response",
			Snippet: truncate(string(respBody), maxBodySnippet),
		}
	}

	return result, nil
}
