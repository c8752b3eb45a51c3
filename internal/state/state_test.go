package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartleave/internal/domain/leave"
	"smartleave/internal/store/memory"
)

// failingStore wraps the memory store and refuses all writes.
type failingStore struct {
	*memory.Store
}

var errSaveRefused = errors.New("save refused")

func (f failingStore) SaveUsers(ctx context.Context, users []leave.User) error {
	return errSaveRefused
}

func (f failingStore) SaveRequests(ctx context.Context, requests []leave.LeaveRequest) error {
	return errSaveRefused
}

func (f failingStore) SaveLeaveTypes(ctx context.Context, types []leave.LeaveTypeDefinition) error {
	return errSaveRefused
}

func TestLoadMirrorsSeededCollections(t *testing.T) {
	c, err := Load(context.Background(), memory.New())
	require.NoError(t, err)

	assert.Len(t, c.Users(), 2)
	assert.Len(t, c.LeaveTypes(), 5)
	assert.Empty(t, c.Requests())
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, err := Load(context.Background(), memory.New())
	require.NoError(t, err)

	users := c.Users()
	users[0].FullName = "Mutated"
	users[0].Balance["ANNUAL"] = -99

	fresh := c.Users()
	assert.Equal(t, "System Admin", fresh[0].FullName)
	assert.Equal(t, 30, fresh[0].Balance.Days("ANNUAL"))

	types := c.LeaveTypes()
	types[0].NameEn = "Mutated"
	assert.Equal(t, "Annual Leave", c.LeaveTypes()[0].NameEn)
}

func TestFailedSaveLeavesMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	c, err := Load(ctx, mem)
	require.NoError(t, err)
	c.store = failingStore{Store: mem}

	err = c.ReplaceUsers(ctx, []leave.User{{ID: "only"}})
	assert.ErrorIs(t, err, errSaveRefused)
	assert.Len(t, c.Users(), 2)

	err = c.ReplaceRequests(ctx, []leave.LeaveRequest{{ID: "r1"}})
	assert.ErrorIs(t, err, errSaveRefused)
	assert.Empty(t, c.Requests())

	err = c.ReplaceLeaveTypes(ctx, nil)
	assert.ErrorIs(t, err, errSaveRefused)
	assert.Len(t, c.LeaveTypes(), 5)
}

func TestReplacePersistsBeforeSwap(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	c, err := Load(ctx, mem)
	require.NoError(t, err)

	require.NoError(t, c.ReplaceUsers(ctx, []leave.User{{ID: "only", FullName: "Only User"}}))

	// Both the mirror and the backing store hold the new snapshot.
	assert.Len(t, c.Users(), 1)
	stored, err := mem.Users(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "only", stored[0].ID)
}
