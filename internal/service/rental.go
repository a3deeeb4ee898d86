package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/logger"
	"carrental-backoffice/internal/repository"
	"carrental-backoffice/internal/utils"
	"carrental-backoffice/internal/validation"
)

const depositNote = "recorded from the contract creation form"

type rentalService struct {
	rentalRepo   repository.RentalContractRepository
	carRepo      repository.CarRepository
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
}

func NewRentalService(
	rentalRepo repository.RentalContractRepository,
	carRepo repository.CarRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		carRepo:      carRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
	}
}

// CreateRental runs the contract creation workflow as a best-effort step
// sequence, not a transaction: the contract insert is fatal on failure,
// the car reservation and deposit payment are logged-and-swallowed. A
// contract can therefore exist while the car still shows available or the
// deposit was never recorded; that divergence is the documented behavior.
func (s *rentalService) CreateRental(ctx context.Context, form url.Values) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("createRental unexpected panic", "panic", r)
			out = Outcome{Success: false, Message: "an unexpected error occurred while saving the contract"}
		}
	}()

	in, fieldErr := validation.ParseCreateRental(form)
	if fieldErr != nil {
		return Outcome{Success: false, Message: fieldErr.Message}
	}

	days := utils.RentalDays(in.PickupDatetime, in.ReturnDatetime)
	// Informational figure for the success message; the stored contract
	// carries no precomputed total, reporting derives it downstream.
	total := utils.EstimateTotal(in.DailyRate, days, in.Discount)

	contractNo := in.ContractNo
	if contractNo == "" {
		count, err := s.rentalRepo.Count(ctx)
		if err != nil {
			// Proceed with a zero base, matching the read-then-format
			// candidate generation; the unique constraint is the guard.
			logger.Error("createRental contract count failed", "error", err)
			count = 0
		}
		contractNo = generateContractNo(count)
	}

	var notes *string
	if in.Notes != "" {
		notes = &in.Notes
	}
	rc := &domain.RentalContract{
		ContractNo:     contractNo,
		CustomerID:     in.CustomerID,
		CarID:          in.CarID,
		PickupDatetime: in.PickupDatetime,
		ReturnDatetime: in.ReturnDatetime,
		DailyRate:      in.DailyRate,
		Discount:       in.Discount,
		LateFee:        0,
		Status:         domain.RentalStatusPending,
		Notes:          notes,
	}
	if err := s.rentalRepo.Create(ctx, rc); err != nil {
		logger.Error("createRental insert error", "error", err)
		return Outcome{Success: false, Message: err.Error()}
	}
	if rc.ID == "" {
		logger.Error("createRental insert returned no id", "contract_no", contractNo)
		return Outcome{Success: false, Message: "unable to save the rental contract"}
	}

	if _, err := s.carRepo.Reserve(ctx, in.CarID); err != nil {
		logger.Error("createRental update car error", "error", err, "car_id", in.CarID)
	}

	if in.DepositAmount > 0 && in.PaymentMethod != "" {
		note := depositNote
		payment := &domain.Payment{
			RentalID:      rc.ID,
			Amount:        in.DepositAmount,
			PaymentType:   domain.PaymentTypeDeposit,
			PaymentMethod: domain.PaymentMethod(in.PaymentMethod),
			Notes:         &note,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			logger.Error("createRental payment error", "error", err, "rental_id", rc.ID)
		}
	}

	return Outcome{
		Success: true,
		Message: fmt.Sprintf("rental contract %s created (estimated total %s)", contractNo, utils.FormatTHB(total)),
	}
}

// generateContractNo formats a human-friendly candidate from the current
// contract count. Concurrent creations can race to the same candidate; the
// database uniqueness constraint rejects the loser.
func generateContractNo(currentCount int64) string {
	return fmt.Sprintf("CR-%d-%04d", time.Now().Year(), currentCount+1)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.RentalListItem, error) {
	contracts, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	carIDs := make([]string, 0, len(contracts))
	customerIDs := make([]string, 0, len(contracts))
	for _, rc := range contracts {
		carIDs = append(carIDs, rc.CarID)
		customerIDs = append(customerIDs, rc.CustomerID)
	}

	cars, err := s.carRepo.GetSummaries(ctx, carIDs)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.GetSummaries(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]domain.RentalListItem, 0, len(contracts))
	for _, rc := range contracts {
		item := domain.RentalListItem{RentalContract: rc}
		if car, ok := cars[rc.CarID]; ok {
			item.Car = &car
		}
		if customer, ok := customers[rc.CustomerID]; ok {
			item.Customer = &customer
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.RentalContract, []domain.Payment, error) {
	rc, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.paymentRepo.ListByRental(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rc, payments, nil
}
