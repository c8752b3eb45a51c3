// Package postgres persists the collection snapshots in a single
// key-to-document table. The schema deliberately mirrors the original
// client's key-value storage rather than row-per-entity tables: every
// save overwrites the whole collection document.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartleave/internal/domain/leave"
	"smartleave/internal/store"
)

type Store struct {
	pool *pgxpool.Pool
}

func Open(ctx context.Context, databaseURL string) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate app_state: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
    CREATE TABLE IF NOT EXISTS app_state (
      key        TEXT PRIMARY KEY,
      doc        JSONB NOT NULL,
      updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )
  `)
	return err
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Users(ctx context.Context) ([]leave.User, error) {
	var users []leave.User
	ok, err := s.get(ctx, store.KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok {
		users = store.SeedUsers()
		if err := s.set(ctx, store.KeyUsers, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []leave.User) error {
	return s.set(ctx, store.KeyUsers, users)
}

func (s *Store) Requests(ctx context.Context) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	ok, err := s.get(ctx, store.KeyRequests, &requests)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []leave.LeaveRequest{}, nil
	}
	return requests, nil
}

func (s *Store) SaveRequests(ctx context.Context, requests []leave.LeaveRequest) error {
	return s.set(ctx, store.KeyRequests, requests)
}

func (s *Store) LeaveTypes(ctx context.Context) ([]leave.LeaveTypeDefinition, error) {
	var types []leave.LeaveTypeDefinition
	ok, err := s.get(ctx, store.KeyLeaveTypes, &types)
	if err != nil {
		return nil, err
	}
	if !ok {
		types = store.SeedLeaveTypes()
		if err := s.set(ctx, store.KeyLeaveTypes, types); err != nil {
			return nil, err
		}
	}
	return types, nil
}

func (s *Store) SaveLeaveTypes(ctx context.Context, types []leave.LeaveTypeDefinition) error {
	return s.set(ctx, store.KeyLeaveTypes, types)
}

func (s *Store) get(ctx context.Context, key string, out any) (bool, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, "SELECT doc FROM app_state WHERE key = $1", key).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) set(ctx context.Context, key string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	_, err = s.pool.Exec(ctx, `
    INSERT INTO app_state (key, doc, updated_at)
    VALUES ($1, $2, now())
    ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
  `, key, doc)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}
