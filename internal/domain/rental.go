package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
	RentalStatusOverdue   RentalStatus = "overdue"
)

// RentalContract is a rental agreement between a customer and the branch.
// ContractNo is assigned once at creation and never changes; uniqueness is
// enforced by the database constraint, the workflow only proposes a candidate.
type RentalContract struct {
	ID                   string       `json:"id"`
	ContractNo           string       `json:"contract_no"`
	CustomerID           string       `json:"customer_id"`
	CarID                string       `json:"car_id"`
	EmployeeID           *string      `json:"employee_id,omitempty"`
	PickupDatetime       time.Time    `json:"pickup_datetime"`
	ReturnDatetime       time.Time    `json:"return_datetime"`
	ActualReturnDatetime *time.Time   `json:"actual_return_datetime,omitempty"`
	DailyRate            float64      `json:"daily_rate"`
	Discount             float64      `json:"discount"`
	TotalAmount          *float64     `json:"total_amount,omitempty"`
	LateFee              float64      `json:"late_fee"`
	Status               RentalStatus `json:"rental_status"`
	Notes                *string      `json:"notes,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
}

// RentalListItem is a contract row with the joined display fields the
// back-office tables show
type RentalListItem struct {
	RentalContract
	Car      *CarSummary      `json:"car,omitempty"`
	Customer *CustomerSummary `json:"customer,omitempty"`
}
