package domain

import "time"

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusReserved    CarStatus = "reserved"
	CarStatusRented      CarStatus = "rented"
	CarStatusMaintenance CarStatus = "maintenance"
	CarStatusRetired     CarStatus = "retired"
)

// CarStatuses lists every valid fleet status
var CarStatuses = []CarStatus{
	CarStatusAvailable,
	CarStatusReserved,
	CarStatusRented,
	CarStatusMaintenance,
	CarStatusRetired,
}

type Car struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"category_id"`
	BranchID       *string   `json:"branch_id,omitempty"`
	RegistrationNo string    `json:"registration_no"`
	VIN            *string   `json:"vin,omitempty"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Color          *string   `json:"color,omitempty"`
	Mileage        int       `json:"mileage"`
	Status         CarStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// CarSummary carries the display fields reports join in by car id
type CarSummary struct {
	ID             string `json:"id"`
	RegistrationNo string `json:"registration_no"`
	Make           string `json:"make"`
	Model          string `json:"model"`
}

type VehicleCategory struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	DailyRate       float64  `json:"daily_rate"`
	MonthlyRate     *float64 `json:"monthly_rate,omitempty"`
	RequiredDeposit *float64 `json:"required_deposit,omitempty"`
}

type Branch struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}
