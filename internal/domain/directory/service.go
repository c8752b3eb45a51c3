// Package directory covers the administrative surface: employee records
// and the leave-type catalog.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smartleave/internal/auth"
	"smartleave/internal/domain/leave"
)

type Service struct {
	State leave.State
}

func NewService(state leave.State) *Service {
	return &Service{State: state}
}

type CreateUserInput struct {
	FullName string
	Username string
	Password string
	Role     leave.Role
	Balance  leave.Balance
}

// CreateUser appends a new account. Usernames are unique case-insensitively
// and stored lowercased; the password is bcrypt-hashed so only seeded
// accounts carry plain values.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (leave.User, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return leave.User{}, fmt.Errorf("%w: fullName is required", ErrValidation)
	}
	if strings.TrimSpace(in.Username) == "" {
		return leave.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if in.Password == "" {
		return leave.User{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	username := strings.ToLower(strings.TrimSpace(in.Username))
	users := s.State.Users()
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return leave.User{}, ErrDuplicateUsername
		}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return leave.User{}, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = leave.RoleEmployee
	}
	balance := in.Balance.Clone()
	if balance == nil {
		balance = leave.Balance{}
	}

	user := leave.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hash,
		FullName: strings.TrimSpace(in.FullName),
		Role:     role,
		Balance:  balance,
	}
	if err := s.State.ReplaceUsers(ctx, append(users, user)); err != nil {
		return leave.User{}, err
	}
	return user, nil
}

// UpdateUser replaces the stored record wholesale, balance map included.
// Entries omitted from the incoming balance are dropped, not merged.
func (s *Service) UpdateUser(ctx context.Context, user leave.User) (leave.User, error) {
	users := s.State.Users()
	for i := range users {
		if users[i].ID != user.ID {
			continue
		}
		users[i] = user.Clone()
		if err := s.State.ReplaceUsers(ctx, users); err != nil {
			return leave.User{}, err
		}
		return users[i], nil
	}
	return leave.User{}, leave.ErrUserNotFound
}

// UpdateLeaveTypeField edits one field of a catalog entry. The catalog is
// fixed at the seeded entries; there is no create or delete.
func (s *Service) UpdateLeaveTypeField(ctx context.Context, typeID string, field TypeField) (leave.LeaveTypeDefinition, error) {
	types := s.State.LeaveTypes()
	for i := range types {
		if types[i].ID != typeID {
			continue
		}
		field.apply(&types[i])
		if err := s.State.ReplaceLeaveTypes(ctx, types); err != nil {
			return leave.LeaveTypeDefinition{}, err
		}
		return types[i], nil
	}
	return leave.LeaveTypeDefinition{}, leave.ErrTypeNotFound
}

// DefaultBalances builds a fresh balance map from each type's default,
// used when a new account is created without explicit balances.
func DefaultBalances(types []leave.LeaveTypeDefinition) leave.Balance {
	balance := make(leave.Balance, len(types))
	for _, t := range types {
		balance[t.ID] = t.DefaultBalance
	}
	return balance
}
