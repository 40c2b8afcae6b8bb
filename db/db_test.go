package db

import (
	"testing"

	"employeehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestListChanges_NewestFirst(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.StoreChange(models.ActionAdd, "", map[string]interface{}{"id": 1}))
	require.NoError(t, d.StoreChange(models.ActionUpdate, "hr@example.com", map[string]interface{}{"id": 1}))
	require.NoError(t, d.StoreChange(models.ActionDelete, "", map[string]interface{}{"id": 1}))

	changes, err := d.ListChanges(0)
	require.NoError(t, err)
	require.Len(t, changes, 3)

	assert.Equal(t, models.ActionDelete, changes[0].Action)
	assert.Equal(t, models.ActionUpdate, changes[1].Action)
	assert.Equal(t, "hr@example.com", changes[1].User)
	assert.Equal(t, models.ActionAdd, changes[2].Action)
	assert.Equal(t, "System", changes[2].User)
}

func TestListChanges_Limit(t *testing.T) {
	d := newTestDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.StoreChange(models.ActionAdd, "", map[string]interface{}{"id": i}))
	}

	changes, err := d.ListChanges(2)
	require.NoError(t, err)
	assert.Len(t, changes, 2)
}

func TestListFailures_SeparateFromChanges(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.StoreChange(models.ActionAdd, "", nil))
	require.NoError(t, d.StoreFailure("ADD_EMPLOYEE", "Database error: connection refused"))
	require.NoError(t, d.StoreFailure("", "boom"))

	failures, err := d.ListFailures(10)
	require.NoError(t, err)
	require.Len(t, failures, 2)
	assert.Equal(t, "GENERAL", failures[0].Context)
	assert.Equal(t, "ADD_EMPLOYEE", failures[1].Context)

	changes, err := d.ListChanges(10)
	require.NoError(t, err)
	assert.Len(t, changes, 1)
}

func TestListChanges_Empty(t *testing.T) {
	d := newTestDB(t)

	changes, err := d.ListChanges(10)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
