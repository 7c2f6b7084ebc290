package services

import (
	"fmt"
	"strings"

	"echo-backend/internal/models"
)

// BuildSystemInstruction returns the fixed Echo persona and output rules,
// parameterized only by tone and scenario. Pure and deterministic.
func BuildSystemInstruction(tone, scenario string) string {
	var b strings.Builder

	// Layer 1 — Persona
	b.WriteString("You are Echo — a conversation rehearsal assistant for people with social anxiety.\n\n")

	// Layer 2 — Behavior rules
	b.WriteString(`Core rules:
- Be kind, calm, and practical. No judgement, no diagnosis, no lecturing.
- Do NOT ask the user any questions.
- Do NOT guide the conversation (the UI already provides intent).
- Always provide ready-to-use sentences the user can copy.
- Keep it SHORT and concrete. Prefer 1 sentence for the main reply.
- Use simple everyday English. Avoid long paragraphs.
- Do NOT mention you are an AI or mention "prompt" or "policy".
- Avoid generic coaching phrases like "What would you like to..." / "What kind of..."
`)

	// Layer 3 — Context
	b.WriteString(fmt.Sprintf("\nContext:\n- Tone = %s\n- Scenario = %s\n", tone, scenario))

	// Layer 4 — Output contract
	b.WriteString(`
Output requirement (MUST follow):
Return ONLY valid JSON. No markdown. No extra text.

JSON schemas:
1) mode=chat
{
  "reply": "string",
  "options": ["string", "string", "string"]
}

2) rewrite modes
{
  "rewrite": "string"
}

Extra requirements for mode=chat:
- "reply" = best default phrasing (1 sentence).
- "options" = 3 different alternatives (each 1 sentence), varying slightly in formality/softness.`)

	return b.String()
}

// BuildUserContent prefixes the user's message with the task description for
// the given mode. Unrecognized modes fall back to the chat task.
func BuildUserContent(message string, mode models.Mode) string {
	var task string
	switch mode {
	case models.ModeRewriteShorter:
		task = "Rewrite the user's message to be shorter without changing meaning."
	case models.ModeRewritePoliter:
		task = "Rewrite the user's message to be more polite (not overly apologetic)."
	case models.ModeRewriteConfident:
		task = "Rewrite the user's message to sound more confident and clear."
	default:
		task = "Provide Echo's best reply and 3 alternative phrasings."
	}

	return task + "\n\nUser message:\n" + message
}
