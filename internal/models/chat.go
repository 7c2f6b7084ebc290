package models

// Mode selects which task template and output shape the model is asked for.
type Mode string

const (
	ModeChat             Mode = "chat"
	ModeRewriteShorter   Mode = "rewrite_shorter"
	ModeRewritePoliter   Mode = "rewrite_politer"
	ModeRewriteConfident Mode = "rewrite_confident"
)

// Valid reports whether m is one of the four supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeChat, ModeRewriteShorter, ModeRewritePoliter, ModeRewriteConfident:
		return true
	}
	return false
}

// ChatRequest is the payload sent to the chat endpoint. Message is required;
// the remaining fields fall back to defaults when absent or empty.
type ChatRequest struct {
	Message  string `json:"message"`
	Tone     string `json:"tone"`
	Scenario string `json:"scenario"`
	Mode     Mode   `json:"mode"`
}

// ChatResponse is the normalized reply sent to the frontend. For chat mode
// Options always holds exactly 3 entries; for rewrite modes it is omitted and
// the rewritten text is carried under Reply.
type ChatResponse struct {
	Reply   string   `json:"reply"`
	Options []string `json:"options,omitempty"`
}
