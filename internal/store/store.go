package store

import (
	"context"

	"smartleave/internal/domain/leave"
)

// Snapshot keys. Fixed identifiers carried over from the original client
// so an exported browser snapshot maps one-to-one onto the server store.
const (
	KeyUsers      = "smartleave_users"
	KeyRequests   = "smartleave_requests"
	KeyLeaveTypes = "smartleave_types"
)

// Store persists the three collections as whole-collection snapshots.
// Reads of an absent snapshot seed the documented defaults (requests seed
// empty and are not written until the first save). Writes are
// last-write-wins with no versioning; a single active session is assumed.
type Store interface {
	Users(ctx context.Context) ([]leave.User, error)
	SaveUsers(ctx context.Context, users []leave.User) error

	Requests(ctx context.Context) ([]leave.LeaveRequest, error)
	SaveRequests(ctx context.Context, requests []leave.LeaveRequest) error

	LeaveTypes(ctx context.Context) ([]leave.LeaveTypeDefinition, error)
	SaveLeaveTypes(ctx context.Context, types []leave.LeaveTypeDefinition) error
}
