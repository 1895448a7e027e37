package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/anshuchowdary926-eng/visamate/internal/chat"
	"github.com/anshuchowdary926-eng/visamate/internal/models"
)

type Handler struct {
	manager *chat.Manager
	logger  *zap.Logger
}

func NewHandler(manager *chat.Manager, logger *zap.Logger) *Handler {
	return &Handler{manager: manager, logger: logger}
}

type MessageRequest struct {
	Content string `json:"content"`
}

type SessionResponse struct {
	Messages  []models.Message     `json:"messages"`
	Status    models.RequestStatus `json:"status"`
	Durations map[string]int64     `json:"durations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleMessage accepts a user message. Canned replies are already in the
// returned session state; in-scope replies stream in the background and the
// client polls GetMessages.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"}, h.logger)
		return
	}

	err := h.manager.Submit(r.Context(), req.Content)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "message must not be empty"}, h.logger)
		return
	case errors.Is(err, chat.ErrMessageTooLong):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "message is too long"}, h.logger)
		return
	case errors.Is(err, chat.ErrBusy):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "a reply is already being generated"}, h.logger)
		return
	case err != nil:
		h.logger.Error("failed to submit message", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"}, h.logger)
		return
	}

	h.writeSession(w, http.StatusAccepted)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeSession(w, http.StatusOK)
}

// StopGeneration cancels the in-flight backend reply.
func (h *Handler) StopGeneration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.manager.Stop(); err != nil {
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "no reply is being generated"}, h.logger)
		return
	}
	h.writeSession(w, http.StatusOK)
}

// ClearSession resets the conversation.
func (h *Handler) ClearSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.manager.Clear(r.Context()); err != nil {
		h.logger.Error("failed to clear session", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"}, h.logger)
		return
	}
	h.writeSession(w, http.StatusOK)
}

func (h *Handler) writeSession(w http.ResponseWriter, status int) {
	messages, reqStatus, durations := h.manager.State()
	writeJSON(w, status, SessionResponse{
		Messages:  messages,
		Status:    reqStatus,
		Durations: durations,
	}, h.logger)
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
