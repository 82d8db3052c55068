package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/quiplash-go/internal/api/request"
	"github.com/mcoot/quiplash-go/internal/api/response"
	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/services/prompt"
)

// PromptHandler handles prompt-related endpoints
type PromptHandler struct {
	promptService *prompt.Service
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptService *prompt.Service) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
	}
}

// Create handles POST /prompt/create
func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON"))
		return
	}

	if req.Username == "" || req.Text == "" {
		WriteError(w, NewInvalidRequestError("Missing username or text"))
		return
	}

	p, err := h.promptService.Create(r.Context(), req.Username, req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CreatePromptResponse{
		Envelope: response.OK("OK"),
		PromptID: string(p.ID),
	})
}

// Delete handles POST /prompt/delete
func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.DeletePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON"))
		return
	}

	if req.Username == "" || req.PromptID == "" {
		WriteError(w, NewInvalidRequestError("Missing prompt_id or username"))
		return
	}

	if err := h.promptService.Delete(r.Context(), req.Username, model.PromptID(req.PromptID)); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OK("Deleted"))
}

// Moderate handles POST /prompt/moderate
func (h *PromptHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var req request.ModeratePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON"))
		return
	}

	if req.Username == "" || req.PromptID == "" {
		WriteError(w, NewInvalidRequestError("Missing prompt_id or username"))
		return
	}

	p, err := h.promptService.Moderate(r.Context(), req.Username, model.PromptID(req.PromptID))
	if err != nil {
		WriteError(w, err)
		return
	}

	msg := "Prompt rejected"
	if p.Status == model.PromptStatusApproved {
		msg = "Prompt approved"
	}
	response.JSON(w, http.StatusOK, response.OK(msg))
}
