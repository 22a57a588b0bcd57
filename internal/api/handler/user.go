package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SK1028846/fantasy-football-pipeline/internal/api/middleware"
	"github.com/SK1028846/fantasy-football-pipeline/internal/api/request"
	"github.com/SK1028846/fantasy-football-pipeline/internal/api/response"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/auth"
)

// UserHandler handles account and session endpoints
type UserHandler struct {
	authService *auth.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewMissingFieldError("username"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewMissingFieldError("password"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.FromSession(session))
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewMissingFieldError("username"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewMissingFieldError("password"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromSession(session))
}

// GetMe handles GET /auth/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.JSON(w, http.StatusOK, response.FromUser(user))
}

// Logout handles POST /auth/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session != nil {
		h.authService.InvalidateSession(session.Token)
	}
	response.NoContent(w)
}
