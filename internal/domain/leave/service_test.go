package leave_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartleave/internal/domain/leave"
	"smartleave/internal/state"
	"smartleave/internal/store/memory"
)

func newEngine(t *testing.T) (*leave.Service, *state.Container) {
	t.Helper()
	container, err := state.Load(context.Background(), memory.New())
	require.NoError(t, err)
	return leave.NewService(container), container
}

func findUser(t *testing.T, c *state.Container, id string) leave.User {
	t.Helper()
	for _, u := range c.Users() {
		if u.ID == id {
			return u
		}
	}
	t.Fatalf("user %s not found", id)
	return leave.User{}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	engine, container := newEngine(t)
	ctx := context.Background()

	req, err := engine.Submit(ctx, leave.SubmitInput{
		UserID:    "2",
		TypeID:    "ANNUAL",
		StartDate: leave.NewDate(2024, 6, 1),
		EndDate:   leave.NewDate(2024, 6, 5),
		Reason:    "family trip",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, leave.StatusPending, req.Status)
	assert.Equal(t, 5, req.TotalDays)
	assert.Equal(t, "Ahmed Hassan", req.UserName)

	// Balance untouched until approval.
	assert.Equal(t, 20, findUser(t, container, "2").Balance.Days("ANNUAL"))
}

func TestSubmitPrependsNewestFirst(t *testing.T) {
	engine, container := newEngine(t)
	ctx := context.Background()

	first, err := engine.Submit(ctx, leave.SubmitInput{
		UserID: "2", TypeID: "ANNUAL",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 2),
	})
	require.NoError(t, err)
	second, err := engine.Submit(ctx, leave.SubmitInput{
		UserID: "2", TypeID: "SICK",
		StartDate: leave.NewDate(2024, 7, 1), EndDate: leave.NewDate(2024, 7, 1),
	})
	require.NoError(t, err)

	requests := container.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, second.ID, requests[0].ID)
	assert.Equal(t, first.ID, requests[1].ID)
}

func TestSubmitInsufficientBalanceLeavesStateUntouched(t *testing.T) {
	engine, container := newEngine(t)

	// ahmed has CASUAL:3; ten days must be refused.
	_, err := engine.Submit(context.Background(), leave.SubmitInput{
		UserID: "2", TypeID: "CASUAL",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 10),
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Empty(t, container.Requests())
}

func TestSubmitMissingBalanceEntryReadsZero(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Submit(context.Background(), leave.SubmitInput{
		UserID: "2", TypeID: "UNKNOWN_TYPE",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 1),
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestSubmitUnknownUser(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Submit(context.Background(), leave.SubmitInput{
		UserID: "missing", TypeID: "ANNUAL",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 1),
	})
	assert.ErrorIs(t, err, leave.ErrUserNotFound)
}

func TestApproveDeductsBalanceOnce(t *testing.T) {
	engine, container := newEngine(t)
	ctx := context.Background()

	req, err := engine.Submit(ctx, leave.SubmitInput{
		UserID: "2", TypeID: "ANNUAL",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 5),
	})
	require.NoError(t, err)

	updated, err := engine.UpdateStatus(ctx, req.ID, leave.StatusApproved, leave.Decision{DecidedBy: "admin"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
	assert.Equal(t, "admin", updated.ApprovedBy)
	assert.Equal(t, 15, findUser(t, container, "2").Balance.Days("ANNUAL"))

	// Decided requests are terminal and the deduction is applied exactly once.
	_, err = engine.UpdateStatus(ctx, req.ID, leave.StatusApproved, leave.Decision{})
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)
	assert.Equal(t, 15, findUser(t, container, "2").Balance.Days("ANNUAL"))
}

func TestRejectLeavesBalanceAlone(t *testing.T) {
	engine, container := newEngine(t)
	ctx := context.Background()

	req, err := engine.Submit(ctx, leave.SubmitInput{
		UserID: "2", TypeID: "SICK",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 3),
	})
	require.NoError(t, err)

	updated, err := engine.UpdateStatus(ctx, req.ID, leave.StatusRejected, leave.Decision{Comment: "busy period"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, updated.Status)
	assert.Equal(t, "busy period", updated.ApproverComment)
	assert.Equal(t, 12, findUser(t, container, "2").Balance.Days("SICK"))
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.UpdateStatus(context.Background(), "nope", leave.StatusApproved, leave.Decision{})
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestUpdateStatusRejectsPendingTarget(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.UpdateStatus(context.Background(), "any", leave.StatusPending, leave.Decision{})
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)

	_, err = engine.UpdateStatus(context.Background(), "any", leave.Status("BOGUS"), leave.Decision{})
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)
}

func TestApproveMissingBalanceEntryGoesNegative(t *testing.T) {
	engine, container := newEngine(t)
	ctx := context.Background()

	// Give ahmed headroom on a type, then remove the entry before approval to
	// simulate an admin edit between submission and decision.
	users := container.Users()
	for i := range users {
		if users[i].ID == "2" {
			users[i].Balance["CASUAL"] = 10
		}
	}
	require.NoError(t, container.ReplaceUsers(ctx, users))

	req, err := engine.Submit(ctx, leave.SubmitInput{
		UserID: "2", TypeID: "CASUAL",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 4),
	})
	require.NoError(t, err)

	users = container.Users()
	for i := range users {
		if users[i].ID == "2" {
			delete(users[i].Balance, "CASUAL")
		}
	}
	require.NoError(t, container.ReplaceUsers(ctx, users))

	_, err = engine.UpdateStatus(ctx, req.ID, leave.StatusApproved, leave.Decision{})
	require.NoError(t, err)
	assert.Equal(t, -4, findUser(t, container, "2").Balance.Days("CASUAL"))
}

func TestApproveMissingOwnerStillUpdatesStatus(t *testing.T) {
	engine, container := newEngine(t)
	ctx := context.Background()

	req, err := engine.Submit(ctx, leave.SubmitInput{
		UserID: "2", TypeID: "ANNUAL",
		StartDate: leave.NewDate(2024, 6, 1), EndDate: leave.NewDate(2024, 6, 1),
	})
	require.NoError(t, err)

	// Drop the owner entirely; the status write must still land.
	var remaining []leave.User
	for _, u := range container.Users() {
		if u.ID != "2" {
			remaining = append(remaining, u)
		}
	}
	require.NoError(t, container.ReplaceUsers(ctx, remaining))

	updated, err := engine.UpdateStatus(ctx, req.ID, leave.StatusApproved, leave.Decision{})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
}
