package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/quiplash-go/internal/api/request"
	"github.com/mcoot/quiplash-go/internal/api/response"
	"github.com/mcoot/quiplash-go/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// Register handles POST /player/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON"))
		return
	}

	// Empty fields fall through to the length validation, which reports the
	// documented failure messages
	if _, err := h.playerService.Register(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OK("OK"))
}

// Login handles GET /player/login
// Credentials arrive in the JSON body or, for plain GETs, as query parameters
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		q := r.URL.Query()
		req.Username = q.Get("username")
		req.Password = q.Get("password")
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewInvalidRequestError("Missing username or password"))
		return
	}

	p, err := h.playerService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{
		Envelope: response.OK("OK"),
		Player:   response.PlayerFromModel(p),
	})
}

// Update handles PUT /player/update
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON"))
		return
	}

	if req.Username == "" || req.AddToGamesPlayed == nil || req.AddToScore == nil {
		WriteError(w, NewInvalidRequestError("Missing fields"))
		return
	}

	if _, err := h.playerService.Update(r.Context(), req.Username, *req.AddToGamesPlayed, *req.AddToScore); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OK("OK"))
}
