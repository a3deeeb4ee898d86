package service

import (
	"context"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/repository"
)

const (
	revenuePeriods   = 12
	topCustomerLimit = 20
)

type reportService struct {
	reportRepo   repository.ReportRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
}

func NewReportService(
	reportRepo repository.ReportRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
) ReportService {
	return &reportService{
		reportRepo:   reportRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
	}
}

func (s *reportService) Revenue(ctx context.Context) ([]domain.RevenueByPeriod, error) {
	return s.reportRepo.RevenueByPeriod(ctx, revenuePeriods)
}

func (s *reportService) Utilization(ctx context.Context) ([]domain.CarUtilization, error) {
	return s.reportRepo.CarUtilization(ctx)
}

// Overdue fetches the aggregate rows, then joins in car and customer
// display fields by the foreign keys collected from the first result set.
func (s *reportService) Overdue(ctx context.Context) ([]domain.OverdueRental, error) {
	rows, err := s.reportRepo.OverdueRentals(ctx)
	if err != nil {
		return nil, err
	}

	carIDs := make([]string, 0, len(rows))
	customerIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		carIDs = append(carIDs, row.CarID)
		customerIDs = append(customerIDs, row.CustomerID)
	}

	cars, err := s.carRepo.GetSummaries(ctx, carIDs)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.GetSummaries(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if car, ok := cars[rows[i].CarID]; ok {
			rows[i].Car = &car
		}
		if customer, ok := customers[rows[i].CustomerID]; ok {
			rows[i].Customer = &customer
		}
	}
	return rows, nil
}

func (s *reportService) TopCustomers(ctx context.Context) ([]domain.TopCustomer, error) {
	rows, err := s.reportRepo.TopCustomers(ctx, topCustomerLimit)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		customerIDs = append(customerIDs, row.CustomerID)
	}
	customers, err := s.customerRepo.GetSummaries(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if customer, ok := customers[rows[i].CustomerID]; ok {
			rows[i].Customer = &customer
		}
	}
	return rows, nil
}

func (s *reportService) MaintenanceSummaries(ctx context.Context) ([]domain.MaintenanceSummary, error) {
	rows, err := s.reportRepo.MaintenanceSummaries(ctx)
	if err != nil {
		return nil, err
	}

	carIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		carIDs = append(carIDs, row.CarID)
	}
	cars, err := s.carRepo.GetSummaries(ctx, carIDs)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if car, ok := cars[rows[i].CarID]; ok {
			rows[i].Car = &car
		}
	}
	return rows, nil
}

func (s *reportService) CarStatusSummary(ctx context.Context) (*domain.CarStatusSummary, error) {
	counts, err := s.carRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	return &domain.CarStatusSummary{Total: total, StatusCounts: counts}, nil
}
