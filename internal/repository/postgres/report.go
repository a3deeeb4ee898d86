package postgres

import (
	"context"
	"database/sql"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"
)

type reportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) RevenueByPeriod(ctx context.Context, limit int) ([]domain.RevenueByPeriod, error) {
	query := `SELECT period, rental_income, late_fee_income, deposits, refunds, total_income
	          FROM mv_revenue_by_period ORDER BY period DESC LIMIT $1`
	var rowsOut []domain.RevenueByPeriod
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		rowsOut = rowsOut[:0]
		for rows.Next() {
			var rev domain.RevenueByPeriod
			if err := rows.Scan(
				&rev.Period, &rev.RentalIncome, &rev.LateFeeIncome,
				&rev.Deposits, &rev.Refunds, &rev.TotalIncome,
			); err != nil {
				return err
			}
			rowsOut = append(rowsOut, rev)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return rowsOut, nil
}

func (r *reportRepository) CarUtilization(ctx context.Context) ([]domain.CarUtilization, error) {
	query := `SELECT car_id, registration_no, make, model, period_days, rented_days, utilization_percent
	          FROM mv_car_utilization ORDER BY utilization_percent DESC`
	var rowsOut []domain.CarUtilization
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		rowsOut = rowsOut[:0]
		for rows.Next() {
			var u domain.CarUtilization
			if err := rows.Scan(
				&u.CarID, &u.RegistrationNo, &u.Make, &u.Model,
				&u.PeriodDays, &u.RentedDays, &u.UtilizationPercent,
			); err != nil {
				return err
			}
			rowsOut = append(rowsOut, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return rowsOut, nil
}

func (r *reportRepository) OverdueRentals(ctx context.Context) ([]domain.OverdueRental, error) {
	query := `SELECT rental_id, contract_no, car_id, customer_id, return_datetime, overdue_days, late_fee
	          FROM mv_overdue_rentals ORDER BY overdue_days DESC`
	var rowsOut []domain.OverdueRental
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		rowsOut = rowsOut[:0]
		for rows.Next() {
			var o domain.OverdueRental
			if err := rows.Scan(
				&o.RentalID, &o.ContractNo, &o.CarID, &o.CustomerID,
				&o.ReturnDatetime, &o.OverdueDays, &o.LateFee,
			); err != nil {
				return err
			}
			rowsOut = append(rowsOut, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return rowsOut, nil
}

func (r *reportRepository) TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error) {
	query := `SELECT customer_id, rental_count, total_spent, first_rental, last_rental
	          FROM mv_top_customers ORDER BY total_spent DESC LIMIT $1`
	var rowsOut []domain.TopCustomer
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		rowsOut = rowsOut[:0]
		for rows.Next() {
			var tc domain.TopCustomer
			if err := rows.Scan(
				&tc.CustomerID, &tc.RentalCount, &tc.TotalSpent,
				&tc.FirstRental, &tc.LastRental,
			); err != nil {
				return err
			}
			rowsOut = append(rowsOut, tc)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return rowsOut, nil
}

func (r *reportRepository) MaintenanceSummaries(ctx context.Context) ([]domain.MaintenanceSummary, error) {
	query := `SELECT car_id, total_jobs, total_cost, last_service_date
	          FROM mv_maintenance_history ORDER BY total_cost DESC`
	var rowsOut []domain.MaintenanceSummary
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		rowsOut = rowsOut[:0]
		for rows.Next() {
			var ms domain.MaintenanceSummary
			if err := rows.Scan(&ms.CarID, &ms.TotalJobs, &ms.TotalCost, &ms.LastServiceDate); err != nil {
				return err
			}
			rowsOut = append(rowsOut, ms)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return rowsOut, nil
}

func (r *reportRepository) RefreshViews(ctx context.Context) error {
	views := []string{
		"mv_revenue_by_period",
		"mv_car_utilization",
		"mv_overdue_rentals",
		"mv_top_customers",
		"mv_maintenance_history",
	}
	return r.db.Execute(ctx, func(conn *sql.DB) error {
		for _, view := range views {
			if _, err := conn.ExecContext(ctx, "REFRESH MATERIALIZED VIEW "+view); err != nil {
				return err
			}
		}
		return nil
	})
}
