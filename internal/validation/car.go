package validation

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// UpdateCarStatusInput is the independent fleet status action
type UpdateCarStatusInput struct {
	CarID  string `form:"car_id" validate:"required,uuid"`
	Status string `form:"status" validate:"required,oneof=available reserved rented maintenance retired"`
}

// CreateCarInput is the add-car form
type CreateCarInput struct {
	CategoryID     string `form:"category_id" validate:"required,uuid"`
	BranchID       string `form:"branch_id" validate:"omitempty,uuid"`
	RegistrationNo string `form:"registration_no" validate:"required,min=2"`
	VIN            string `form:"vin" validate:"omitempty,min=5"`
	Make           string `form:"make" validate:"required"`
	Model          string `form:"model" validate:"required"`
	Year           int    `form:"year" validate:"min=1980"`
	Color          string `form:"color"`
	Mileage        int    `form:"mileage" validate:"gte=0"`
	Status         string `form:"status" validate:"required,oneof=available reserved rented maintenance retired"`
}

// ParseUpdateCarStatus validates the status-update form
func ParseUpdateCarStatus(form url.Values) (*UpdateCarStatusInput, *FieldError) {
	in := &UpdateCarStatusInput{
		CarID:  strings.TrimSpace(form.Get("car_id")),
		Status: strings.TrimSpace(form.Get("status")),
	}
	if err := validate.Struct(in); err != nil {
		return nil, firstCarError(err)
	}
	return in, nil
}

// ParseCreateCar coerces and validates the add-car form
func ParseCreateCar(form url.Values) (*CreateCarInput, *FieldError) {
	in := &CreateCarInput{
		CategoryID:     strings.TrimSpace(form.Get("category_id")),
		BranchID:       strings.TrimSpace(form.Get("branch_id")),
		RegistrationNo: strings.TrimSpace(form.Get("registration_no")),
		VIN:            strings.TrimSpace(form.Get("vin")),
		Make:           strings.TrimSpace(form.Get("make")),
		Model:          strings.TrimSpace(form.Get("model")),
		Color:          strings.TrimSpace(form.Get("color")),
		Status:         strings.TrimSpace(form.Get("status")),
	}
	if in.Status == "" {
		in.Status = "available"
	}

	var fe *FieldError
	if in.Year, fe = parseInt(form, "year", "year"); fe != nil {
		return nil, fe
	}
	if in.Mileage, fe = parseInt(form, "mileage", "mileage"); fe != nil {
		return nil, fe
	}
	if in.Year > time.Now().Year()+1 {
		return nil, &FieldError{Field: "year", Message: "year is in the future"}
	}

	if err := validate.Struct(in); err != nil {
		return nil, firstCarError(err)
	}
	return in, nil
}

func parseInt(form url.Values, field, label string) (int, *FieldError) {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: field, Message: label + " must be a whole number"}
	}
	return n, nil
}

func firstCarError(err error) *FieldError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &FieldError{Field: "", Message: "invalid input"}
	}
	first := errs[0]
	return &FieldError{Field: first.Field(), Message: carMessage(first)}
}

func carMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "car_id":
		if fe.Tag() == "required" {
			return "car is required"
		}
		return "car id is not a valid uuid"
	case "category_id":
		if fe.Tag() == "required" {
			return "category is required"
		}
		return "category id is not a valid uuid"
	case "branch_id":
		return "branch id is not a valid uuid"
	case "registration_no":
		return "registration number is required"
	case "vin":
		return "vin is too short"
	case "make":
		return "make is required"
	case "model":
		return "model is required"
	case "year":
		return "year looks wrong"
	case "mileage":
		return "mileage must not be negative"
	case "status":
		return "invalid car status"
	}
	return "invalid input"
}
