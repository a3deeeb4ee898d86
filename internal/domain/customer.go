package domain

import "time"

type Customer struct {
	ID                  string    `json:"id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	DateOfBirth         time.Time `json:"date_of_birth"`
	DriverLicenseNo     string    `json:"driver_license_no"`
	DriverLicenseExpiry time.Time `json:"driver_license_expiry"`
	CreatedAt           time.Time `json:"created_at"`
}

// CustomerSummary carries the display fields reports join in by customer id
type CustomerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}
