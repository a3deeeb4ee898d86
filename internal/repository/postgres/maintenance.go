package postgres

import (
	"context"
	"database/sql"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"
)

type maintenanceRepository struct {
	db *DB
}

func NewMaintenanceRepository(db *DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) ListByCar(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error) {
	query := `SELECT id, car_id, service_date, service_type, cost, odometer_reading, performed_by, notes
	          FROM maintenance_records WHERE car_id = $1 ORDER BY service_date DESC`
	var records []domain.MaintenanceRecord
	err := r.db.Execute(ctx, func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, query, carID)
		if err != nil {
			return err
		}
		defer rows.Close()

		records = records[:0]
		for rows.Next() {
			var m domain.MaintenanceRecord
			if err := rows.Scan(
				&m.ID, &m.CarID, &m.ServiceDate, &m.ServiceType,
				&m.Cost, &m.OdometerReading, &m.PerformedBy, &m.Notes,
			); err != nil {
				return err
			}
			records = append(records, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
