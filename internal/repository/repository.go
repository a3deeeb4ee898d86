package repository

import (
	"context"
	"time"

	"carrental-backoffice/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	// UpdateStatus sets the status unconditionally (independent status action)
	UpdateStatus(ctx context.Context, id string, status domain.CarStatus) error
	// Reserve moves the car to reserved only when it is currently available
	// or reserved; returns the number of rows that matched the filter.
	Reserve(ctx context.Context, id string) (int64, error)
	GetSummaries(ctx context.Context, ids []string) (map[string]domain.CarSummary, error)
	StatusCounts(ctx context.Context) (map[domain.CarStatus]int, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	GetSummaries(ctx context.Context, ids []string) (map[string]domain.CustomerSummary, error)
}

type RentalContractRepository interface {
	// Create inserts the contract and fills in the generated id
	Create(ctx context.Context, rc *domain.RentalContract) error
	GetByID(ctx context.Context, id string) (*domain.RentalContract, error)
	List(ctx context.Context) ([]domain.RentalContract, error)
	// Count returns the total number of contracts, used for contract-number
	// candidates. The read and the later insert are not atomic; the unique
	// constraint on contract_no is the only collision guard.
	Count(ctx context.Context) (int64, error)
	// MarkOverdue flips active contracts past their return datetime to
	// overdue and returns how many rows changed.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByRental(ctx context.Context, rentalID string) ([]domain.Payment, error)
}

type MaintenanceRepository interface {
	ListByCar(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error)
}

type EmployeeRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
}

// ReportRepository reads the precomputed aggregate views. No method here
// ever writes entity tables; RefreshViews only rebuilds the aggregates.
type ReportRepository interface {
	RevenueByPeriod(ctx context.Context, limit int) ([]domain.RevenueByPeriod, error)
	CarUtilization(ctx context.Context) ([]domain.CarUtilization, error)
	OverdueRentals(ctx context.Context) ([]domain.OverdueRental, error)
	TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error)
	MaintenanceSummaries(ctx context.Context) ([]domain.MaintenanceSummary, error)
	RefreshViews(ctx context.Context) error
}
