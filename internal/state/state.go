// Package state owns the in-memory mirror of the persisted collections.
// Every mutation writes the new snapshot to the store first and only swaps
// the in-memory copy after the write succeeds, so a failed save leaves both
// sides on the previous state.
package state

import (
	"context"
	"sync"

	"smartleave/internal/domain/leave"
	"smartleave/internal/store"
)

type Container struct {
	mu    sync.RWMutex
	store store.Store

	users    []leave.User
	requests []leave.LeaveRequest
	types    []leave.LeaveTypeDefinition
}

// Load reads all three collections, triggering first-read seeding on a
// fresh store, and returns a container mirroring them.
func Load(ctx context.Context, s store.Store) (*Container, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.Requests(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.LeaveTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &Container{
		store:    s,
		users:    users,
		requests: requests,
		types:    types,
	}, nil
}

// Users returns a deep copy; callers mutate freely and commit via Replace.
func (c *Container) Users() []leave.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]leave.User, len(c.users))
	for i, u := range c.users {
		out[i] = u.Clone()
	}
	return out
}

func (c *Container) Requests() []leave.LeaveRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]leave.LeaveRequest, len(c.requests))
	copy(out, c.requests)
	return out
}

func (c *Container) LeaveTypes() []leave.LeaveTypeDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]leave.LeaveTypeDefinition, len(c.types))
	copy(out, c.types)
	return out
}

func (c *Container) ReplaceUsers(ctx context.Context, users []leave.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.SaveUsers(ctx, users); err != nil {
		return err
	}
	next := make([]leave.User, len(users))
	for i, u := range users {
		next[i] = u.Clone()
	}
	c.users = next
	return nil
}

func (c *Container) ReplaceRequests(ctx context.Context, requests []leave.LeaveRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.SaveRequests(ctx, requests); err != nil {
		return err
	}
	next := make([]leave.LeaveRequest, len(requests))
	copy(next, requests)
	c.requests = next
	return nil
}

func (c *Container) ReplaceLeaveTypes(ctx context.Context, types []leave.LeaveTypeDefinition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.SaveLeaveTypes(ctx, types); err != nil {
		return err
	}
	next := make([]leave.LeaveTypeDefinition, len(types))
	copy(next, types)
	c.types = next
	return nil
}
