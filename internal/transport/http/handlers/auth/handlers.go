package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartleave/internal/auth"
	"smartleave/internal/domain/leave"
	"smartleave/internal/transport/http/api"
	"smartleave/internal/transport/http/middleware"
)

type Handler struct {
	State  leave.State
	Secret string
}

func NewHandler(state leave.State, secret string) *Handler {
	return &Handler{State: state, Secret: secret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  leave.User `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", requestID)
		return
	}

	user, err := auth.Login(req.Username, req.Password, h.State.Users())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}

	token, err := auth.GenerateToken(user, h.Secret)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	user.Password = ""
	api.Success(w, loginResponse{Token: token, User: user}, requestID)
}
