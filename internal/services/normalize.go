package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"echo-backend/internal/models"
)

// modelReply is the partial shape we accept from the model. Every field is
// optional; shaping supplies the defaults. Options is kept loose because the
// model occasionally emits non-string entries.
type modelReply struct {
	Reply   string        `json:"reply"`
	Options []interface{} `json:"options"`
	Rewrite string        `json:"rewrite"`
}

// ExtractModelJSON recovers a JSON object from raw model output. Models asked
// for JSON-only output still sometimes wrap it in commentary, so after a
// direct parse fails we try the substring from the first '{' to the last '}'.
// The greedy match can mis-extract when the surrounding prose itself contains
// braces; that limitation is intentional.
func ExtractModelJSON(raw string) (*modelReply, error) {
	text := strings.TrimSpace(raw)

	// Direct parse first
	if obj, ok := decodeReply(text); ok {
		return obj, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, &ParseError{
			Message: "model did not return JSON",
			Snippet: truncate(text, maxRawSnippet),
		}
	}

	if obj, ok := decodeReply(text[start : end+1]); ok {
		return obj, nil
	}

	return nil, &ParseError{
		Message: "bad JSON from model",
		Snippet: truncate(text, maxRawSnippet),
	}
}

func decodeReply(s string) (*modelReply, bool) {
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	var obj modelReply
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return &obj, true
}

// NormalizeReply extracts and shapes raw model output into the client-facing
// contract for the given mode. The output field is always named "reply",
// even though rewrite modes use "rewrite" on the wire from the model.
func NormalizeReply(mode models.Mode, raw string) (*models.ChatResponse, error) {
	obj, err := ExtractModelJSON(raw)
	if err != nil {
		return nil, err
	}

	if mode == models.ModeChat {
		reply := strings.TrimSpace(obj.Reply)
		if reply == "" {
			return nil, &EmptyResultError{Field: "reply", Snippet: truncate(raw, maxRawSnippet)}
		}

		// Ensure options length = 3
		options := make([]string, 0, 3)
		for _, v := range obj.Options {
			if len(options) == 3 {
				break
			}
			options = append(options, strings.TrimSpace(coerceString(v)))
		}
		for len(options) < 3 {
			options = append(options, "")
		}

		return &models.ChatResponse{Reply: reply, Options: options}, nil
	}

	// rewrite modes
	rewrite := strings.TrimSpace(obj.Rewrite)
	if rewrite == "" {
		return nil, &EmptyResultError{Field: "rewrite", Snippet: truncate(raw, maxRawSnippet)}
	}
	return &models.ChatResponse{Reply: rewrite}, nil
}

func coerceString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
