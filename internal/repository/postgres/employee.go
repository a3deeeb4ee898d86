package postgres

import (
	"context"
	"database/sql"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"
)

type employeeRepository struct {
	db *DB
}

func NewEmployeeRepository(db *DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, branch_id, first_name, last_name, email, phone, role, password_hash, active, created_at
	          FROM employees WHERE email = $1`
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query, email).Scan(
			&e.ID, &e.BranchID, &e.FirstName, &e.LastName, &e.Email,
			&e.Phone, &e.Role, &e.PasswordHash, &e.Active, &e.CreatedAt,
		)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}
