package services

import (
	"strings"
	"testing"

	"echo-backend/internal/models"
)

func TestBuildSystemInstruction_ContainsContext(t *testing.T) {
	got := BuildSystemInstruction("Friendly", "work meeting")

	if !strings.Contains(got, "Tone = Friendly") {
		t.Errorf("Expected tone in system instruction, got:\n%s", got)
	}
	if !strings.Contains(got, "Scenario = work meeting") {
		t.Errorf("Expected scenario in system instruction, got:\n%s", got)
	}
	if !strings.Contains(got, "Return ONLY valid JSON") {
		t.Errorf("Expected JSON-only output rule in system instruction")
	}
	if !strings.Contains(got, `"options": ["string", "string", "string"]`) {
		t.Errorf("Expected chat schema in system instruction")
	}
	if !strings.Contains(got, `"rewrite": "string"`) {
		t.Errorf("Expected rewrite schema in system instruction")
	}
}

func TestBuildSystemInstruction_Deterministic(t *testing.T) {
	a := BuildSystemInstruction("Calm", "general")
	b := BuildSystemInstruction("Calm", "general")
	if a != b {
		t.Errorf("Expected identical output for identical inputs")
	}
}

func TestBuildUserContent_TaskLookup(t *testing.T) {
	tests := []struct {
		name string
		mode models.Mode
		task string
	}{
		{"chat", models.ModeChat, "Provide Echo's best reply and 3 alternative phrasings."},
		{"shorter", models.ModeRewriteShorter, "Rewrite the user's message to be shorter without changing meaning."},
		{"politer", models.ModeRewritePoliter, "Rewrite the user's message to be more polite (not overly apologetic)."},
		{"confident", models.ModeRewriteConfident, "Rewrite the user's message to sound more confident and clear."},
		{"unknown mode falls back to chat", models.Mode("speech"), "Provide Echo's best reply and 3 alternative phrasings."},
		{"empty mode falls back to chat", models.Mode(""), "Provide Echo's best reply and 3 alternative phrasings."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildUserContent("hello there", tc.mode)

			if !strings.HasPrefix(got, tc.task) {
				t.Errorf("Expected task %q, got:\n%s", tc.task, got)
			}
			if !strings.Contains(got, "User message:\nhello there") {
				t.Errorf("Expected verbatim user message, got:\n%s", got)
			}
		})
	}
}
