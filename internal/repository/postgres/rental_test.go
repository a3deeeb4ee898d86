package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backoffice/internal/domain"
)

func newScopedRepoDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewDB(conn, ""), mock
}

func TestRentalContractRepository_Create(t *testing.T) {
	db, mock := newScopedRepoDB(t)
	repo := NewRentalContractRepository(db)
	ctx := context.Background()

	rc := &domain.RentalContract{
		ContractNo:     "CR-2025-0001",
		CustomerID:     "0c7f9a3e-5b1d-4e8a-9f26-3d1c8e4b7a50",
		CarID:          "7e2b4c6d-8f10-4a3b-b5c7-9d0e1f2a3b4c",
		PickupDatetime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		ReturnDatetime: time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC),
		DailyRate:      1000,
		Status:         domain.RentalStatusPending,
	}

	mock.ExpectQuery("INSERT INTO rental_contracts").
		WithArgs(rc.ContractNo, rc.CustomerID, rc.CarID, rc.PickupDatetime, rc.ReturnDatetime,
			rc.DailyRate, rc.Discount, rc.Notes, rc.Status, rc.LateFee).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("3a1b5c7d-9e2f-4a6b-8c0d-1e3f5a7b9c2d"))

	err := repo.Create(ctx, rc)
	assert.NoError(t, err)
	assert.Equal(t, "3a1b5c7d-9e2f-4a6b-8c0d-1e3f5a7b9c2d", rc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalContractRepository_Count(t *testing.T) {
	db, mock := newScopedRepoDB(t)
	repo := NewRentalContractRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM rental_contracts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestRentalContractRepository_MarkOverdue(t *testing.T) {
	db, mock := newScopedRepoDB(t)
	repo := NewRentalContractRepository(db)
	now := time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE rental_contracts SET rental_status = 'overdue'").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.MarkOverdue(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestRentalContractRepository_CountFallsBackToScopedRole(t *testing.T) {
	scoped, scopedMock, err := sqlmock.New()
	require.NoError(t, err)
	defer scoped.Close()
	admin, adminMock, err := sqlmock.New()
	require.NoError(t, err)
	defer admin.Close()

	repo := NewRentalContractRepository(NewDBWithAdmin(scoped, admin))

	adminMock.ExpectQuery(`SELECT count\(\*\) FROM rental_contracts`).
		WillReturnError(permissionDenied())
	scopedMock.ExpectQuery(`SELECT count\(\*\) FROM rental_contracts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, adminMock.ExpectationsWereMet())
	assert.NoError(t, scopedMock.ExpectationsWereMet())
}
