package postgres

import (
	"carrental-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *DB
	repository.CarRepository
	repository.CustomerRepository
	repository.RentalContractRepository
	repository.PaymentRepository
	repository.MaintenanceRepository
	repository.EmployeeRepository
	repository.ReportRepository
}

func NewStore(db *DB) *Store {
	return &Store{
		db:                       db,
		CarRepository:            NewCarRepository(db),
		CustomerRepository:       NewCustomerRepository(db),
		RentalContractRepository: NewRentalContractRepository(db),
		PaymentRepository:        NewPaymentRepository(db),
		MaintenanceRepository:    NewMaintenanceRepository(db),
		EmployeeRepository:       NewEmployeeRepository(db),
		ReportRepository:         NewReportRepository(db),
	}
}
