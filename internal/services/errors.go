package services

import "fmt"

const (
	// Upstream HTTP bodies are truncated to this many bytes in error messages.
	maxBodySnippet = 800
	// Raw model text is truncated to this many bytes in error messages.
	maxRawSnippet = 500
)

// Custom errors

// ConfigError means a required credential is absent. No call is attempted.
type ConfigError struct{ Message string }

func (e *ConfigError) Error() string { return e.Message }

// TransportError means the outbound call could not be completed at all.
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return "could not reach Gemini: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError means the call completed but returned a non-success status,
// or a success status with an unrecognized body shape. Snippet carries a
// truncated copy of the raw response body for diagnosis.
type UpstreamError struct {
	StatusCode int
	Message    string
	Snippet    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Gemini HTTP %d: %s", e.StatusCode, e.Snippet)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Snippet)
}

// ParseError means no JSON object could be recovered from the model output.
type ParseError struct {
	Message string
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s. Raw: %s", e.Message, e.Snippet)
}

// EmptyResultError means the recovered JSON lacks the required non-empty
// field for the current mode.
type EmptyResultError struct {
	Field   string
	Snippet string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("empty %s from model. Raw: %s", e.Field, e.Snippet)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
