package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/quiplash-go/internal/api/request"
	"github.com/mcoot/quiplash-go/internal/api/response"
	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/services/player"
	"github.com/mcoot/quiplash-go/internal/services/prompt"
)

// UtilsHandler handles utility and health endpoints
type UtilsHandler struct {
	playerService *player.Service
	promptService *prompt.Service
}

// NewUtilsHandler creates a new utils handler
func NewUtilsHandler(playerService *player.Service, promptService *prompt.Service) *UtilsHandler {
	return &UtilsHandler{
		playerService: playerService,
		promptService: promptService,
	}
}

// Welcome handles GET /utils/welcome
func (h *UtilsHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.OK("Welcome to Quiplash API"))
}

// Get handles GET /utils/get
// The document type arrives as a query parameter or, for tooling that posts
// the older body form, as JSON
func (h *UtilsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req request.GetRequest
	q := r.URL.Query()
	req.Type = q.Get("type")
	req.Username = q.Get("username")
	if req.Type == "" {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	switch req.Type {
	case "player":
		players, err := h.playerService.List(r.Context())
		if err != nil {
			WriteError(w, err)
			return
		}
		data := make([]response.Player, 0, len(players))
		for _, p := range players {
			data = append(data, response.PlayerFromModel(p))
		}
		response.JSON(w, http.StatusOK, response.ListResponse{Result: true, Data: data})

	case "prompt":
		var prompts []*model.Prompt
		var err error
		if req.Username != "" {
			prompts, err = h.promptService.ListForPlayer(r.Context(), req.Username)
		} else {
			prompts, err = h.promptService.List(r.Context())
		}
		if err != nil {
			WriteError(w, err)
			return
		}
		data := make([]response.Prompt, 0, len(prompts))
		for _, p := range prompts {
			data = append(data, response.PromptFromModel(p))
		}
		response.JSON(w, http.StatusOK, response.ListResponse{Result: true, Data: data})

	default:
		WriteError(w, NewInvalidRequestError("Invalid type"))
	}
}
