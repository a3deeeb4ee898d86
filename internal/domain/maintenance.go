package domain

import "time"

type MaintenanceRecord struct {
	ID              string    `json:"id"`
	CarID           string    `json:"car_id"`
	ServiceDate     time.Time `json:"service_date"`
	ServiceType     string    `json:"service_type"`
	Cost            float64   `json:"cost"`
	OdometerReading int       `json:"odometer_reading"`
	PerformedBy     *string   `json:"performed_by,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
}
