package service

import (
	"context"
	"net/url"

	"carrental-backoffice/internal/domain"
)

// Outcome is the uniform result of a form-submission workflow
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RentalService interface {
	// CreateRental validates the raw form payload and runs the contract
	// creation workflow, reporting a consolidated outcome.
	CreateRental(ctx context.Context, form url.Values) Outcome
	ListRentals(ctx context.Context) ([]domain.RentalListItem, error)
	GetRental(ctx context.Context, id string) (*domain.RentalContract, []domain.Payment, error)
}

type CarService interface {
	CreateCar(ctx context.Context, form url.Values) Outcome
	// UpdateCarStatus sets a car's status unconditionally. Failures are
	// logged and swallowed; the action reports nothing to the caller.
	UpdateCarStatus(ctx context.Context, form url.Values)
	ListCars(ctx context.Context) ([]domain.Car, error)
	MaintenanceHistory(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type ReportService interface {
	Revenue(ctx context.Context) ([]domain.RevenueByPeriod, error)
	Utilization(ctx context.Context) ([]domain.CarUtilization, error)
	Overdue(ctx context.Context) ([]domain.OverdueRental, error)
	TopCustomers(ctx context.Context) ([]domain.TopCustomer, error)
	MaintenanceSummaries(ctx context.Context) ([]domain.MaintenanceSummary, error)
	CarStatusSummary(ctx context.Context) (*domain.CarStatusSummary, error)
}

type AuthService interface {
	// Login checks the employee's credentials and returns a signed access
	// token together with the employee record.
	Login(ctx context.Context, email, password string) (string, *domain.Employee, error)
}
