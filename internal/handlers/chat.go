package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"echo-backend/internal/models"
	"echo-backend/internal/services"
)

type ChatHandler struct {
	geminiService *services.GeminiService
}

func NewChatHandler(geminiService *services.GeminiService) *ChatHandler {
	return &ChatHandler{geminiService: geminiService}
}

// Chat is the primary endpoint: build prompts, call Gemini once, normalize
// the model output. Fully linear; the first failure short-circuits.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	if req.Mode != "" && !req.Mode.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown mode", r))
		return
	}

	tone := req.Tone
	if tone == "" {
		tone = "Calm"
	}
	scenario := req.Scenario
	if scenario == "" {
		scenario = "general"
	}
	mode := req.Mode
	if mode == "" {
		mode = models.ModeChat
	}

	systemText := services.BuildSystemInstruction(tone, scenario)
	userText := services.BuildUserContent(req.Message, mode)

	raw, err := h.geminiService.Generate(r.Context(), systemText, userText)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp, err := services.NormalizeReply(mode, raw)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// Every generation/normalization failure surfaces as a server error with a
// diagnostic message; nothing is handled internally and no partial JSON is
// ever returned.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch err.(type) {
	case *services.ConfigError:
		writeJSON(w, http.StatusInternalServerError, errorResp("CONFIG_ERROR", err.Error(), r))
	case *services.TransportError:
		writeJSON(w, http.StatusInternalServerError, errorResp("UPSTREAM_UNREACHABLE", err.Error(), r))
	case *services.UpstreamError:
		writeJSON(w, http.StatusInternalServerError, errorResp("UPSTREAM_ERROR", err.Error(), r))
	case *services.ParseError:
		writeJSON(w, http.StatusInternalServerError, errorResp("BAD_MODEL_OUTPUT", err.Error(), r))
	case *services.EmptyResultError:
		writeJSON(w, http.StatusInternalServerError, errorResp("EMPTY_MODEL_OUTPUT", err.Error(), r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
