package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"carrental-backoffice/internal/logger"

	"github.com/lib/pq"
)

// SQLSTATE 42501 (insufficient_privilege) is what postgres reports when a
// role has no USAGE on the schema. It is the only error that triggers the
// scoped-role fallback; everything else passes through untouched.
const sqlstateInsufficientPrivilege = "42501"

// Operation performs one or more queries against the given connection.
// The same closure is re-run verbatim when the fallback fires, so it must
// not capture results from a previous attempt.
type Operation func(conn *sql.DB) error

// DB resolves every query to either the privileged role or the
// caller-scoped application role. The privileged handle is preferred when
// credentials are configured and is opened lazily, once per process; if an
// operation run through it comes back with a schema permission-denied
// error, the operation is retried exactly once against the scoped handle.
type DB struct {
	scoped   *sql.DB
	adminDSN string

	once     sync.Once
	admin    *sql.DB
	adminErr error
}

// NewDB creates a facade over the scoped handle. adminDSN may be empty, in
// which case the privileged path is never attempted.
func NewDB(scoped *sql.DB, adminDSN string) *DB {
	return &DB{scoped: scoped, adminDSN: adminDSN}
}

// NewDBWithAdmin creates a facade with an already-open privileged handle
func NewDBWithAdmin(scoped, admin *sql.DB) *DB {
	return &DB{scoped: scoped, admin: admin}
}

// Execute runs op against the preferred connection, falling back to the
// scoped role at most once on a schema permission-denied result.
func (d *DB) Execute(ctx context.Context, op Operation) error {
	conn, privileged := d.conn()
	err := op(conn)
	if privileged && IsSchemaPermissionDenied(err) {
		logger.Warn("privileged role denied schema access, retrying with scoped role", "error", err)
		return op(d.scoped)
	}
	return err
}

// conn returns the connection to try first and whether it is the
// privileged one
func (d *DB) conn() (*sql.DB, bool) {
	d.once.Do(func() {
		if d.admin != nil || d.adminDSN == "" {
			return
		}
		admin, err := sql.Open("postgres", d.adminDSN)
		if err != nil {
			d.adminErr = err
			logger.Warn("failed to open privileged database handle, using scoped role only", "error", err)
			return
		}
		d.admin = admin
	})
	if d.admin != nil {
		return d.admin, true
	}
	return d.scoped, false
}

// Close closes both handles
func (d *DB) Close() error {
	err := d.scoped.Close()
	if d.admin != nil {
		if aerr := d.admin.Close(); err == nil {
			err = aerr
		}
	}
	return err
}

// IsSchemaPermissionDenied classifies err as the schema permission-denied
// signal the fallback keys on
func IsSchemaPermissionDenied(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == sqlstateInsufficientPrivilege
	}
	return false
}
