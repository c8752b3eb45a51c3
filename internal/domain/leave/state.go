package leave

import "context"

// State is the application-state container the engine and administration
// operate on: in-memory collections mirrored to a snapshot store. Read
// accessors return copies; Replace* persists the new snapshot before the
// in-memory state is swapped, so a failed write leaves both sides unchanged.
type State interface {
	Users() []User
	Requests() []LeaveRequest
	LeaveTypes() []LeaveTypeDefinition

	ReplaceUsers(ctx context.Context, users []User) error
	ReplaceRequests(ctx context.Context, requests []LeaveRequest) error
	ReplaceLeaveTypes(ctx context.Context, types []LeaveTypeDefinition) error
}
