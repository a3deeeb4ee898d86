package domain

import "time"

// Report rows mirror the precomputed aggregate views (mv_*) the read paths
// consume. Nullable view columns stay pointers so missing aggregates are
// distinguishable from zeroes.

type RevenueByPeriod struct {
	Period        time.Time `json:"period"`
	RentalIncome  float64   `json:"rental_income"`
	LateFeeIncome float64   `json:"late_fee_income"`
	Deposits      float64   `json:"deposits"`
	Refunds       float64   `json:"refunds"`
	TotalIncome   float64   `json:"total_income"`
}

type CarUtilization struct {
	CarID              string  `json:"car_id"`
	RegistrationNo     string  `json:"registration_no"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	PeriodDays         int     `json:"period_days"`
	RentedDays         int     `json:"rented_days"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

type OverdueRental struct {
	RentalID       string           `json:"rental_id"`
	ContractNo     string           `json:"contract_no"`
	CarID          string           `json:"car_id"`
	CustomerID     string           `json:"customer_id"`
	ReturnDatetime time.Time        `json:"return_datetime"`
	OverdueDays    int              `json:"overdue_days"`
	LateFee        float64          `json:"late_fee"`
	Car            *CarSummary      `json:"car,omitempty"`
	Customer       *CustomerSummary `json:"customer,omitempty"`
}

type TopCustomer struct {
	CustomerID  string           `json:"customer_id"`
	RentalCount int              `json:"rental_count"`
	TotalSpent  float64          `json:"total_spent"`
	FirstRental *time.Time       `json:"first_rental,omitempty"`
	LastRental  *time.Time       `json:"last_rental,omitempty"`
	Customer    *CustomerSummary `json:"customer,omitempty"`
}

type MaintenanceSummary struct {
	CarID           string      `json:"car_id"`
	TotalJobs       int         `json:"total_jobs"`
	TotalCost       float64     `json:"total_cost"`
	LastServiceDate *time.Time  `json:"last_service_date,omitempty"`
	Car             *CarSummary `json:"car,omitempty"`
}

// CarStatusSummary is the dashboard card: fleet size and per-status counts
type CarStatusSummary struct {
	Total        int               `json:"total"`
	StatusCounts map[CarStatus]int `json:"status_counts"`
}
