package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartleave/internal/domain/leave"
)

func TestFirstReadSeedsLeaveTypes(t *testing.T) {
	s := New()
	ctx := context.Background()

	types, err := s.LeaveTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 5)

	want := map[string]int{"ANNUAL": 30, "SICK": 15, "CASUAL": 5, "MATERNITY": 90, "UNPAID": 365}
	for _, def := range types {
		assert.Equal(t, want[def.ID], def.DefaultBalance, def.ID)
		assert.NotEmpty(t, def.NameEn)
		assert.NotEmpty(t, def.NameAr)
		assert.NotEmpty(t, def.Color)
		assert.NotEmpty(t, def.Icon)
	}
	assert.Equal(t, "#2563eb", types[0].Color)
}

func TestFirstReadSeedsUsers(t *testing.T) {
	s := New()

	users, err := s.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	admin := users[0]
	assert.Equal(t, "1", admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "password123", admin.Password)
	assert.Equal(t, leave.RoleAdmin, admin.Role)
	assert.Equal(t, 30, admin.Balance.Days("ANNUAL"))

	ahmed := users[1]
	assert.Equal(t, "2", ahmed.ID)
	assert.Equal(t, "ahmed", ahmed.Username)
	assert.Equal(t, leave.RoleEmployee, ahmed.Role)
	assert.Equal(t, leave.Balance{"ANNUAL": 20, "SICK": 12, "CASUAL": 3, "MATERNITY": 0, "UNPAID": 365}, ahmed.Balance)
}

func TestRequestsSeedEmpty(t *testing.T) {
	s := New()
	ctx := context.Background()

	requests, err := s.Requests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestRoundTrips(t *testing.T) {
	s := New()
	ctx := context.Background()

	requests := []leave.LeaveRequest{{
		ID:        "r1",
		UserID:    "2",
		UserName:  "Ahmed Hassan",
		TypeID:    "ANNUAL",
		StartDate: leave.NewDate(2024, 6, 1),
		EndDate:   leave.NewDate(2024, 6, 5),
		TotalDays: 5,
		Status:    leave.StatusPending,
		CreatedAt: leave.NewDate(2024, 5, 20),
	}}
	require.NoError(t, s.SaveRequests(ctx, requests))

	got, err := s.Requests(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "2024-06-01", got[0].StartDate.String())

	users := []leave.User{{ID: "9", Username: "x", FullName: "X", Role: leave.RoleEmployee, Balance: leave.Balance{"ANNUAL": -2}}}
	require.NoError(t, s.SaveUsers(ctx, users))
	gotUsers, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, gotUsers, 1)
	assert.Equal(t, -2, gotUsers[0].Balance.Days("ANNUAL"))
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Users(ctx)
	require.NoError(t, err)

	require.NoError(t, s.SaveUsers(ctx, []leave.User{{ID: "only"}}))
	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "only", users[0].ID)
}
