package postgres

import (
	"context"
	"database/sql"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"

	"github.com/lib/pq"
)

type carRepository struct {
	db *DB
}

func NewCarRepository(db *DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (category_id, branch_id, registration_no, vin, make, model, year, color, mileage, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query,
			car.CategoryID, car.BranchID, car.RegistrationNo, car.VIN,
			car.Make, car.Model, car.Year, car.Color, car.Mileage, car.Status,
		).Scan(&car.ID)
	})
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	car := &domain.Car{}
	query := `SELECT id, category_id, branch_id, registration_no, vin, make, model, year, color, mileage, status, created_at
	          FROM cars WHERE id = $1`
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query, id).Scan(
			&car.ID, &car.CategoryID, &car.BranchID, &car.RegistrationNo, &car.VIN,
			&car.Make, &car.Model, &car.Year, &car.Color, &car.Mileage, &car.Status, &car.CreatedAt,
		)
	})
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, category_id, branch_id, registration_no, vin, make, model, year, color, mileage, status, created_at
	          FROM cars ORDER BY registration_no`
	var cars []domain.Car
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		cars = cars[:0]
		for rows.Next() {
			var car domain.Car
			if err := rows.Scan(
				&car.ID, &car.CategoryID, &car.BranchID, &car.RegistrationNo, &car.VIN,
				&car.Make, &car.Model, &car.Year, &car.Color, &car.Mileage, &car.Status, &car.CreatedAt,
			); err != nil {
				return err
			}
			cars = append(cars, car)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) UpdateStatus(ctx context.Context, id string, status domain.CarStatus) error {
	return r.db.Execute(ctx, func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, `UPDATE cars SET status = $1 WHERE id = $2`, status, id)
		return err
	})
}

func (r *carRepository) Reserve(ctx context.Context, id string) (int64, error) {
	// The status filter keeps a rented, maintenance or retired car from
	// being silently overridden by contract creation.
	query := `UPDATE cars SET status = 'reserved' WHERE id = $1 AND status IN ('available', 'reserved')`
	var affected int64
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		res, err := conn.ExecContext(ctx, query, id)
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

func (r *carRepository) GetSummaries(ctx context.Context, ids []string) (map[string]domain.CarSummary, error) {
	summaries := make(map[string]domain.CarSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}
	query := `SELECT id, registration_no, make, model FROM cars WHERE id = ANY($1)`
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query, pq.Array(ids))
		if err != nil {
			return err
		}
		defer rows.Close()

		clear(summaries)
		for rows.Next() {
			var s domain.CarSummary
			if err := rows.Scan(&s.ID, &s.RegistrationNo, &s.Make, &s.Model); err != nil {
				return err
			}
			summaries[s.ID] = s
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *carRepository) StatusCounts(ctx context.Context) (map[domain.CarStatus]int, error) {
	counts := make(map[domain.CarStatus]int)
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, `SELECT status, count(*) FROM cars GROUP BY status`)
		if err != nil {
			return err
		}
		defer rows.Close()

		clear(counts)
		for rows.Next() {
			var status domain.CarStatus
			var count int
			if err := rows.Scan(&status, &count); err != nil {
				return err
			}
			counts[status] = count
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
