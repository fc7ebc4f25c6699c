package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type sendMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

type importRecipeRequest struct {
	Text string `json:"text"`
}

type busyResponse struct {
	Bookkeeping bool `json:"bookkeeping"`
	Importing   bool `json:"importing"`
}

func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Assistant.History())
}

func (h *Handlers) AssistantBusy(w http.ResponseWriter, r *http.Request) {
	bookkeeping, importing := h.Assistant.Busy()
	writeJSON(w, http.StatusOK, busyResponse{Bookkeeping: bookkeeping, Importing: importing})
}

// SendMessage blocks for the model round-trip; failures come back as a
// regular assistant message, never as an HTTP error.
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if strings.TrimSpace(req.Text) == "" && req.Image == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "text or image is required")
		return
	}

	reply := h.Assistant.Send(r.Context(), req.Text, req.Image)
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) ConfirmMessage(w http.ResponseWriter, r *http.Request) {
	message, confirmed := h.Assistant.Confirm(chi.URLParam(r, "id"))
	if !confirmed && message.ID == "" {
		writeError(w, http.StatusNotFound, "message_not_found", "message not found")
		return
	}
	writeJSON(w, http.StatusOK, message)
}

func (h *Handlers) ImportRecipe(w http.ResponseWriter, r *http.Request) {
	var req importRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "text is required")
		return
	}

	writeJSON(w, http.StatusOK, h.Assistant.Import(r.Context(), req.Text))
}

func (h *Handlers) PendingImport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Assistant.PendingImport())
}

func (h *Handlers) ConfirmImport(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.Assistant.ConfirmImport()
	if !ok {
		writeError(w, http.StatusConflict, "no_pending_import", "no pending import to confirm")
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

func (h *Handlers) CancelImport(w http.ResponseWriter, r *http.Request) {
	h.Assistant.CancelImport()
	w.WriteHeader(http.StatusNoContent)
}
