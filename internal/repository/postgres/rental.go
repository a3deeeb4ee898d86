package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"
)

type rentalContractRepository struct {
	db *DB
}

func NewRentalContractRepository(db *DB) repository.RentalContractRepository {
	return &rentalContractRepository{db: db}
}

func (r *rentalContractRepository) Create(ctx context.Context, rc *domain.RentalContract) error {
	query := `INSERT INTO rental_contracts (contract_no, customer_id, car_id, pickup_datetime, return_datetime, daily_rate, discount, notes, rental_status, late_fee)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query,
			rc.ContractNo, rc.CustomerID, rc.CarID, rc.PickupDatetime, rc.ReturnDatetime,
			rc.DailyRate, rc.Discount, rc.Notes, rc.Status, rc.LateFee,
		).Scan(&rc.ID)
	})
}

func (r *rentalContractRepository) GetByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	rc := &domain.RentalContract{}
	query := `SELECT id, contract_no, customer_id, car_id, employee_id, pickup_datetime, return_datetime, actual_return_datetime, daily_rate, discount, total_amount, late_fee, rental_status, notes, created_at
	          FROM rental_contracts WHERE id = $1`
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query, id).Scan(
			&rc.ID, &rc.ContractNo, &rc.CustomerID, &rc.CarID, &rc.EmployeeID,
			&rc.PickupDatetime, &rc.ReturnDatetime, &rc.ActualReturnDatetime,
			&rc.DailyRate, &rc.Discount, &rc.TotalAmount, &rc.LateFee,
			&rc.Status, &rc.Notes, &rc.CreatedAt,
		)
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *rentalContractRepository) List(ctx context.Context) ([]domain.RentalContract, error) {
	query := `SELECT id, contract_no, customer_id, car_id, employee_id, pickup_datetime, return_datetime, actual_return_datetime, daily_rate, discount, total_amount, late_fee, rental_status, notes, created_at
	          FROM rental_contracts ORDER BY created_at DESC`
	var contracts []domain.RentalContract
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		contracts = contracts[:0]
		for rows.Next() {
			var rc domain.RentalContract
			if err := rows.Scan(
				&rc.ID, &rc.ContractNo, &rc.CustomerID, &rc.CarID, &rc.EmployeeID,
				&rc.PickupDatetime, &rc.ReturnDatetime, &rc.ActualReturnDatetime,
				&rc.DailyRate, &rc.Discount, &rc.TotalAmount, &rc.LateFee,
				&rc.Status, &rc.Notes, &rc.CreatedAt,
			); err != nil {
				return err
			}
			contracts = append(contracts, rc)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *rentalContractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, `SELECT count(*) FROM rental_contracts`).Scan(&count)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalContractRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE rental_contracts SET rental_status = 'overdue'
	          WHERE rental_status = 'active' AND return_datetime < $1`
	var affected int64
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		res, err := conn.ExecContext(ctx, query, now)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
