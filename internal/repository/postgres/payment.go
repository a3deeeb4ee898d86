package postgres

import (
	"context"
	"database/sql"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"
)

type paymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, amount, payment_type, payment_method, notes)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query,
			p.RentalID, p.Amount, p.PaymentType, p.PaymentMethod, p.Notes,
		).Scan(&p.ID)
	})
}

func (r *paymentRepository) ListByRental(ctx context.Context, rentalID string) ([]domain.Payment, error) {
	query := `SELECT id, rental_id, amount, payment_type, payment_method, payment_date, notes, created_at
	          FROM payments WHERE rental_id = $1 ORDER BY payment_date`
	var payments []domain.Payment
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query, rentalID)
		if err != nil {
			return err
		}
		defer rows.Close()

		payments = payments[:0]
		for rows.Next() {
			var p domain.Payment
			if err := rows.Scan(
				&p.ID, &p.RentalID, &p.Amount, &p.PaymentType, &p.PaymentMethod,
				&p.PaymentDate, &p.Notes, &p.CreatedAt,
			); err != nil {
				return err
			}
			payments = append(payments, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}
