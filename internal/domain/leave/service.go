package leave

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service is the request lifecycle engine. All mutations go through the
// shared State container; balances are only ever touched on approval.
type Service struct {
	State State
}

func NewService(state State) *Service {
	return &Service{State: state}
}

type SubmitInput struct {
	UserID    string
	TypeID    string
	StartDate Date
	EndDate   Date
	Reason    string
}

// Submit validates the requested day count against the requester's current
// balance and, when sufficient, prepends a new PENDING request to the
// collection. Balances are not touched at submission time, and the check is
// not re-verified at approval time. A missing balance entry counts as zero.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (LeaveRequest, error) {
	user, ok := s.userByID(in.UserID)
	if !ok {
		return LeaveRequest{}, fmt.Errorf("submit: %w", ErrUserNotFound)
	}

	days := TotalDays(in.StartDate, in.EndDate)
	if days > user.Balance.Days(in.TypeID) {
		return LeaveRequest{}, ErrInsufficientBalance
	}

	req := LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.FullName,
		TypeID:    in.TypeID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		TotalDays: days,
		Reason:    in.Reason,
		Status:    StatusPending,
		CreatedAt: Today(),
	}

	// Newest first; presentation convenience carried over from the client.
	next := append([]LeaveRequest{req}, s.State.Requests()...)
	if err := s.State.ReplaceRequests(ctx, next); err != nil {
		return LeaveRequest{}, err
	}
	return req, nil
}

// Decision carries the optional metadata recorded alongside a status change.
type Decision struct {
	Comment   string
	DecidedBy string
}

// UpdateStatus transitions a PENDING request to the given status. Approval
// deducts the request's TotalDays from the owner's balance exactly once,
// creating the entry as a negative value when absent; rejection and
// cancellation leave balances alone. Requests that have already been
// decided are terminal and fail with ErrAlreadyDecided.
func (s *Service) UpdateStatus(ctx context.Context, requestID string, next Status, decision Decision) (LeaveRequest, error) {
	if !next.Valid() || next == StatusPending {
		return LeaveRequest{}, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}

	requests := s.State.Requests()
	idx := -1
	for i := range requests {
		if requests[i].ID == requestID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return LeaveRequest{}, fmt.Errorf("update status: %w", ErrRequestNotFound)
	}

	req := requests[idx]
	if req.Status.Decided() {
		return LeaveRequest{}, ErrAlreadyDecided
	}

	if next == StatusApproved {
		if err := s.deductBalance(ctx, req); err != nil {
			return LeaveRequest{}, err
		}
	}

	req.Status = next
	if decision.Comment != "" {
		req.ApproverComment = decision.Comment
	}
	if decision.DecidedBy != "" {
		req.ApprovedBy = decision.DecidedBy
	}
	requests[idx] = req
	if err := s.State.ReplaceRequests(ctx, requests); err != nil {
		return LeaveRequest{}, err
	}
	return req, nil
}

// deductBalance applies the approval side effect. An owner that no longer
// exists skips the deduction but still lets the status write proceed,
// matching the original behavior for dangling user references.
func (s *Service) deductBalance(ctx context.Context, req LeaveRequest) error {
	users := s.State.Users()
	for i := range users {
		if users[i].ID != req.UserID {
			continue
		}
		if users[i].Balance == nil {
			users[i].Balance = Balance{}
		}
		users[i].Balance[req.TypeID] = users[i].Balance.Days(req.TypeID) - req.TotalDays
		return s.State.ReplaceUsers(ctx, users)
	}
	return nil
}

func (s *Service) userByID(id string) (User, bool) {
	for _, u := range s.State.Users() {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
