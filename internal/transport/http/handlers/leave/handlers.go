package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartleave/internal/domain/directory"
	"smartleave/internal/domain/leave"
	"smartleave/internal/transport/http/api"
	"smartleave/internal/transport/http/middleware"
)

type Handler struct {
	Engine    *leave.Service
	Directory *directory.Service
	State     leave.State
}

func NewHandler(engine *leave.Service, dir *directory.Service, state leave.State) *Handler {
	return &Handler{Engine: engine, Directory: dir, State: state}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/types", h.handleListTypes)
		r.With(middleware.RequireAdmin).Patch("/types/{typeID}", h.handleUpdateType)
		r.With(middleware.RequireAuth).Get("/requests", h.handleListRequests)
		r.With(middleware.RequireAuth).Post("/requests", h.handleCreateRequest)
		r.With(middleware.RequireAdmin).Post("/requests/{requestID}/approve", h.handleApprove)
		r.With(middleware.RequireAdmin).Post("/requests/{requestID}/reject", h.handleReject)
		r.With(middleware.RequireAuth).Post("/requests/{requestID}/cancel", h.handleCancel)
	})
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.State.LeaveTypes(), middleware.GetRequestID(r.Context()))
}

type updateTypeRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (h *Handler) handleUpdateType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	typeID := chi.URLParam(r, "typeID")

	var req updateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", requestID)
		return
	}

	field, err := decodeTypeField(req.Field, req.Value)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_field", err.Error(), requestID)
		return
	}

	updated, err := h.Directory.UpdateLeaveTypeField(r.Context(), typeID, field)
	if err != nil {
		if errors.Is(err, leave.ErrTypeNotFound) {
			api.Fail(w, http.StatusNotFound, "type_not_found", "leave type not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to update leave type", requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func decodeTypeField(name string, value json.RawMessage) (directory.TypeField, error) {
	switch name {
	case "nameEn":
		var v string
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, errors.New("nameEn value must be a string")
		}
		return directory.NameEn(v), nil
	case "nameAr":
		var v string
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, errors.New("nameAr value must be a string")
		}
		return directory.NameAr(v), nil
	case "color":
		var v string
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, errors.New("color value must be a string")
		}
		return directory.Color(v), nil
	case "defaultBalance":
		var v int
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, errors.New("defaultBalance value must be an integer")
		}
		return directory.DefaultBalance(v), nil
	}
	return nil, errors.New("unknown field: " + name)
}

// handleListRequests returns the full collection for administrators and the
// caller's own requests otherwise, newest first in both cases.
func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	requests := h.State.Requests()
	if !user.IsAdmin() {
		own := make([]leave.LeaveRequest, 0, len(requests))
		for _, req := range requests {
			if req.UserID == user.UserID {
				own = append(own, req)
			}
		}
		requests = own
	}
	api.Success(w, requests, requestID)
}

type createRequestBody struct {
	TypeID    string `json:"typeId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", requestID)
		return
	}
	if body.TypeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "typeId is required", requestID)
		return
	}
	start, err := leave.ParseDate(body.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "startDate must be YYYY-MM-DD", requestID)
		return
	}
	end, err := leave.ParseDate(body.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "endDate must be YYYY-MM-DD", requestID)
		return
	}

	created, err := h.Engine.Submit(r.Context(), leave.SubmitInput{
		UserID:    user.UserID,
		TypeID:    body.TypeID,
		StartDate: start,
		EndDate:   end,
		Reason:    body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrInsufficientBalance):
			api.Fail(w, http.StatusUnprocessableEntity, "insufficient_balance", "not enough remaining days for this leave type", requestID)
		case errors.Is(err, leave.ErrUserNotFound):
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "submit_failed", "failed to submit leave request", requestID)
		}
		return
	}
	api.Created(w, created, requestID)
}

type decisionBody struct {
	Comment string `json:"comment"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusApproved)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusRejected)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, status leave.Status) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	targetID := chi.URLParam(r, "requestID")

	var body decisionBody
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	updated, err := h.Engine.UpdateStatus(r.Context(), targetID, status, leave.Decision{
		Comment:   body.Comment,
		DecidedBy: user.Username,
	})
	if err != nil {
		h.failDecision(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

// handleCancel is the only path to CANCELLED. Owners may cancel their own
// pending requests; administrators may cancel anyone's.
func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	targetID := chi.URLParam(r, "requestID")

	if !user.IsAdmin() {
		owned := false
		for _, req := range h.State.Requests() {
			if req.ID == targetID {
				owned = req.UserID == user.UserID
				break
			}
		}
		if !owned {
			api.Fail(w, http.StatusForbidden, "forbidden", "only the owner can cancel this request", requestID)
			return
		}
	}

	updated, err := h.Engine.UpdateStatus(r.Context(), targetID, leave.StatusCancelled, leave.Decision{})
	if err != nil {
		h.failDecision(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) failDecision(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, leave.ErrRequestNotFound):
		api.Fail(w, http.StatusNotFound, "request_not_found", "leave request not found", requestID)
	case errors.Is(err, leave.ErrAlreadyDecided):
		api.Fail(w, http.StatusConflict, "already_decided", "request has already been decided", requestID)
	case errors.Is(err, leave.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", "invalid status transition", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "decision_failed", "failed to update leave request", requestID)
	}
}
