package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacadeForTest(t *testing.T) (*DB, *sql.DB, *sql.DB) {
	t.Helper()
	scoped, _, err := sqlmock.New()
	require.NoError(t, err)
	admin, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		scoped.Close()
		admin.Close()
	})
	return NewDBWithAdmin(scoped, admin), scoped, admin
}

func permissionDenied() error {
	return &pq.Error{Code: "42501", Message: "permission denied for schema car_rental"}
}

func TestDB_Execute_PrefersPrivilegedHandle(t *testing.T) {
	db, scoped, admin := newFacadeForTest(t)

	var used []*sql.DB
	err := db.Execute(context.Background(), func(conn *sql.DB) error {
		used = append(used, conn)
		return nil
	})

	assert.NoError(t, err)
	require.Len(t, used, 1)
	assert.Same(t, admin, used[0])
	assert.NotSame(t, scoped, used[0])
}

func TestDB_Execute_FallsBackOnSchemaPermissionDenied(t *testing.T) {
	db, scoped, admin := newFacadeForTest(t)

	var used []*sql.DB
	err := db.Execute(context.Background(), func(conn *sql.DB) error {
		used = append(used, conn)
		if conn == admin {
			return permissionDenied()
		}
		return nil
	})

	assert.NoError(t, err)
	require.Len(t, used, 2)
	assert.Same(t, admin, used[0])
	assert.Same(t, scoped, used[1])
}

func TestDB_Execute_FallbackResultIsReturned(t *testing.T) {
	db, scoped, admin := newFacadeForTest(t)

	scopedErr := errors.New("relation does not exist")
	err := db.Execute(context.Background(), func(conn *sql.DB) error {
		if conn == admin {
			return permissionDenied()
		}
		assert.Same(t, scoped, conn)
		return scopedErr
	})

	// The scoped result stands even when it is itself an error; there is
	// never a second retry.
	assert.Same(t, scopedErr, err)
}

func TestDB_Execute_OtherErrorsPassThrough(t *testing.T) {
	db, _, _ := newFacadeForTest(t)

	boom := &pq.Error{Code: "23505", Message: "duplicate key"}
	var calls int
	err := db.Execute(context.Background(), func(conn *sql.DB) error {
		calls++
		return boom
	})

	assert.Equal(t, 1, calls)
	assert.Same(t, error(boom), err)
}

func TestDB_Execute_ScopedOnlyNeverFallsBack(t *testing.T) {
	scoped, _, err := sqlmock.New()
	require.NoError(t, err)
	defer scoped.Close()

	db := NewDB(scoped, "")

	var calls int
	execErr := db.Execute(context.Background(), func(conn *sql.DB) error {
		calls++
		assert.Same(t, scoped, conn)
		return permissionDenied()
	})

	// Without a privileged handle the permission error is just an error
	assert.Equal(t, 1, calls)
	assert.True(t, IsSchemaPermissionDenied(execErr))
}

func TestIsSchemaPermissionDenied(t *testing.T) {
	assert.True(t, IsSchemaPermissionDenied(permissionDenied()))
	assert.True(t, IsSchemaPermissionDenied(fmt.Errorf("query failed: %w", permissionDenied())))
	assert.False(t, IsSchemaPermissionDenied(&pq.Error{Code: "23505"}))
	assert.False(t, IsSchemaPermissionDenied(errors.New("permission denied for schema")))
	assert.False(t, IsSchemaPermissionDenied(nil))
}
