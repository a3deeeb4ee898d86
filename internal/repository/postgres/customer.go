package postgres

import (
	"context"
	"database/sql"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"

	"github.com/lib/pq"
)

type customerRepository struct {
	db *DB
}

func NewCustomerRepository(db *DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, first_name, last_name, email, phone, date_of_birth, driver_license_no, driver_license_expiry, created_at
	          FROM customers WHERE id = $1`
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query, id).Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.DateOfBirth, &c.DriverLicenseNo, &c.DriverLicenseExpiry, &c.CreatedAt,
		)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, first_name, last_name, email, phone, date_of_birth, driver_license_no, driver_license_expiry, created_at
	          FROM customers ORDER BY first_name, last_name`
	var customers []domain.Customer
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		customers = customers[:0]
		for rows.Next() {
			var c domain.Customer
			if err := rows.Scan(
				&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
				&c.DateOfBirth, &c.DriverLicenseNo, &c.DriverLicenseExpiry, &c.CreatedAt,
			); err != nil {
				return err
			}
			customers = append(customers, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) GetSummaries(ctx context.Context, ids []string) (map[string]domain.CustomerSummary, error) {
	summaries := make(map[string]domain.CustomerSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}
	query := `SELECT id, first_name, last_name, phone FROM customers WHERE id = ANY($1)`
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query, pq.Array(ids))
		if err != nil {
			return err
		}
		defer rows.Close()

		clear(summaries)
		for rows.Next() {
			var s domain.CustomerSummary
			if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Phone); err != nil {
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
