// Package memory provides an in-memory snapshot store with the same
// first-read seeding behavior as the Postgres implementation. Used in tests
// and as a zero-dependency fallback when no DATABASE_URL is configured.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"smartleave/internal/domain/leave"
	"smartleave/internal/store"
)

type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

func (s *Store) Users(ctx context.Context) ([]leave.User, error) {
	var users []leave.User
	ok, err := s.load(store.KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok {
		users = store.SeedUsers()
		if err := s.save(store.KeyUsers, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []leave.User) error {
	return s.save(store.KeyUsers, users)
}

func (s *Store) Requests(ctx context.Context) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	ok, err := s.load(store.KeyRequests, &requests)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []leave.LeaveRequest{}, nil
	}
	return requests, nil
}

func (s *Store) SaveRequests(ctx context.Context, requests []leave.LeaveRequest) error {
	return s.save(store.KeyRequests, requests)
}

func (s *Store) LeaveTypes(ctx context.Context) ([]leave.LeaveTypeDefinition, error) {
	var types []leave.LeaveTypeDefinition
	ok, err := s.load(store.KeyLeaveTypes, &types)
	if err != nil {
		return nil, err
	}
	if !ok {
		types = store.SeedLeaveTypes()
		if err := s.save(store.KeyLeaveTypes, types); err != nil {
			return nil, err
		}
	}
	return types, nil
}

func (s *Store) SaveLeaveTypes(ctx context.Context, types []leave.LeaveTypeDefinition) error {
	return s.save(store.KeyLeaveTypes, types)
}

func (s *Store) load(key string, out any) (bool, error) {
	s.mu.RLock()
	doc, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(key string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = doc
	s.mu.Unlock()
	return nil
}
