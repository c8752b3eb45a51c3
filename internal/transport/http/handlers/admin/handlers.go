package adminhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartleave/internal/domain/directory"
	"smartleave/internal/domain/leave"
	"smartleave/internal/insights"
	"smartleave/internal/reports"
	"smartleave/internal/transport/http/api"
	"smartleave/internal/transport/http/middleware"
)

type Handler struct {
	Directory *directory.Service
	Insights  *insights.Service
	State     leave.State
}

func NewHandler(dir *directory.Service, ins *insights.Service, state leave.State) *Handler {
	return &Handler{Directory: dir, Insights: ins, State: state}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/users", h.handleListUsers)
		r.Post("/users", h.handleCreateUser)
		r.Put("/users/{userID}", h.handleUpdateUser)
		r.Get("/reports/balances.csv", h.handleBalancesCSV)
		r.Get("/reports/balances.pdf", h.handleBalancesPDF)
		r.Post("/insights", h.handleInsights)
	})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.State.Users()
	for i := range users {
		users[i].Password = ""
	}
	api.Success(w, users, middleware.GetRequestID(r.Context()))
}

type createUserBody struct {
	FullName string        `json:"fullName"`
	Username string        `json:"username"`
	Password string        `json:"password"`
	Role     leave.Role    `json:"role"`
	Balance  leave.Balance `json:"balance"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var body createUserBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", requestID)
		return
	}

	balance := body.Balance
	if balance == nil {
		balance = directory.DefaultBalances(h.State.LeaveTypes())
	}

	created, err := h.Directory.CreateUser(r.Context(), directory.CreateUserInput{
		FullName: body.FullName,
		Username: body.Username,
		Password: body.Password,
		Role:     body.Role,
		Balance:  balance,
	})
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrValidation):
			api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		case errors.Is(err, directory.ErrDuplicateUsername):
			api.Fail(w, http.StatusConflict, "duplicate_username", "username already taken", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to create user", requestID)
		}
		return
	}

	created.Password = ""
	api.Created(w, created, requestID)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	userID := chi.URLParam(r, "userID")

	var user leave.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", requestID)
		return
	}
	user.ID = userID

	// A record sent without a password keeps the stored one.
	if user.Password == "" {
		for _, existing := range h.State.Users() {
			if existing.ID == userID {
				user.Password = existing.Password
				break
			}
		}
	}

	updated, err := h.Directory.UpdateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, leave.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to update user", requestID)
		return
	}

	updated.Password = ""
	api.Success(w, updated, requestID)
}

func (h *Handler) handleBalancesCSV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	doc, err := reports.BalancesCSV(h.State.Users(), h.State.LeaveTypes())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render report", requestID)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) handleBalancesPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	doc, err := reports.BalancesPDF(h.State.Users(), h.State.LeaveTypes())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render report", requestID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

type insightsBody struct {
	Language string `json:"language"`
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var body insightsBody
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	summary := h.Insights.Summarize(r.Context(), h.State.Requests(), h.State.Users(), body.Language)
	api.Success(w, map[string]string{"summary": summary}, requestID)
}
