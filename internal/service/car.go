package service

import (
	"context"
	"net/url"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/logger"
	"carrental-backoffice/internal/repository"
	"carrental-backoffice/internal/validation"
)

type carService struct {
	carRepo         repository.CarRepository
	maintenanceRepo repository.MaintenanceRepository
}

func NewCarService(carRepo repository.CarRepository, maintenanceRepo repository.MaintenanceRepository) CarService {
	return &carService{carRepo: carRepo, maintenanceRepo: maintenanceRepo}
}

func (s *carService) CreateCar(ctx context.Context, form url.Values) Outcome {
	in, fieldErr := validation.ParseCreateCar(form)
	if fieldErr != nil {
		return Outcome{Success: false, Message: fieldErr.Message}
	}

	car := &domain.Car{
		CategoryID:     in.CategoryID,
		RegistrationNo: in.RegistrationNo,
		Make:           in.Make,
		Model:          in.Model,
		Year:           in.Year,
		Mileage:        in.Mileage,
		Status:         domain.CarStatus(in.Status),
	}
	if in.BranchID != "" {
		car.BranchID = &in.BranchID
	}
	if in.VIN != "" {
		car.VIN = &in.VIN
	}
	if in.Color != "" {
		car.Color = &in.Color
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		logger.Error("createCar insert error", "error", err)
		return Outcome{Success: false, Message: err.Error()}
	}
	return Outcome{Success: true, Message: "car added"}
}

// UpdateCarStatus is fire-and-forget: validation failures and persistence
// errors are logged, the caller gets nothing back either way.
func (s *carService) UpdateCarStatus(ctx context.Context, form url.Values) {
	in, fieldErr := validation.ParseUpdateCarStatus(form)
	if fieldErr != nil {
		logger.Error("updateCarStatus validation error", "field", fieldErr.Field, "message", fieldErr.Message)
		return
	}

	if err := s.carRepo.UpdateStatus(ctx, in.CarID, domain.CarStatus(in.Status)); err != nil {
		logger.Error("updateCarStatus error", "error", err, "car_id", in.CarID)
	}
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) MaintenanceHistory(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error) {
	return s.maintenanceRepo.ListByCar(ctx, carID)
}
