package validation

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single user-facing validation failure attached to a form
// field. Callers surface only the first error, in field-declaration order.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// CreateRentalInput is the typed, constrained shape of the rental creation
// form. Field order matters: the first failing field wins.
type CreateRentalInput struct {
	ContractNo     string    `form:"contract_no" validate:"omitempty,min=3"`
	CustomerID     string    `form:"customer_id" validate:"required,uuid"`
	CarID          string    `form:"car_id" validate:"required,uuid"`
	PickupDatetime time.Time `form:"pickup_datetime"`
	ReturnDatetime time.Time `form:"return_datetime"`
	DailyRate      float64   `form:"daily_rate" validate:"gt=0"`
	Discount       float64   `form:"discount" validate:"gte=0"`
	Notes          string    `form:"notes" validate:"max=1000"`
	DepositAmount  float64   `form:"deposit_amount" validate:"gte=0"`
	PaymentMethod  string    `form:"payment_method" validate:"omitempty,oneof=cash credit_card debit_card bank_transfer e_wallet"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(createRentalStructLevel, CreateRentalInput{})
	return v
}

// createRentalStructLevel holds the cross-field rules: the return datetime
// must be strictly after pickup, and a nonzero deposit needs a payment
// method. Errors are attached to the second field of each pair.
func createRentalStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(CreateRentalInput)
	if !in.ReturnDatetime.After(in.PickupDatetime) {
		sl.ReportError(in.ReturnDatetime, "return_datetime", "ReturnDatetime", "afterpickup", "")
	}
	if in.DepositAmount > 0 && in.PaymentMethod == "" {
		sl.ReportError(in.PaymentMethod, "payment_method", "PaymentMethod", "depositmethod", "")
	}
}

// ParseCreateRental coerces the raw form payload into a CreateRentalInput
// and validates it. On failure it returns the first field error encountered
// in field-declaration order; no side effect has happened by then.
func ParseCreateRental(form url.Values) (*CreateRentalInput, *FieldError) {
	in := &CreateRentalInput{
		ContractNo: strings.TrimSpace(form.Get("contract_no")),
		CustomerID: strings.TrimSpace(form.Get("customer_id")),
		CarID:      strings.TrimSpace(form.Get("car_id")),
		Notes:      form.Get("notes"),
	}

	var fe *FieldError
	if in.PickupDatetime, fe = parseDatetime(form, "pickup_datetime", "pickup datetime"); fe != nil {
		return nil, fe
	}
	if in.ReturnDatetime, fe = parseDatetime(form, "return_datetime", "return datetime"); fe != nil {
		return nil, fe
	}
	if in.DailyRate, fe = parseFloat(form, "daily_rate", "daily rate", true); fe != nil {
		return nil, fe
	}
	if in.Discount, fe = parseFloat(form, "discount", "discount", false); fe != nil {
		return nil, fe
	}
	if in.DepositAmount, fe = parseFloat(form, "deposit_amount", "deposit amount", false); fe != nil {
		return nil, fe
	}
	in.PaymentMethod = strings.TrimSpace(form.Get("payment_method"))

	if err := validate.Struct(in); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			return nil, &FieldError{Field: "", Message: "invalid input"}
		}
		first := errs[0]
		return nil, &FieldError{Field: first.Field(), Message: rentalMessage(first)}
	}
	return in, nil
}

// datetimeLayouts accepts RFC 3339 and the HTML datetime-local shapes
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDatetime(form url.Values, field, label string) (time.Time, *FieldError) {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		return time.Time{}, &FieldError{Field: field, Message: label + " is required"}
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &FieldError{Field: field, Message: "invalid " + label + " format"}
}

func parseFloat(form url.Values, field, label string, required bool) (float64, *FieldError) {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		if required {
			return 0, &FieldError{Field: field, Message: label + " is required"}
		}
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Message: label + " must be a number"}
	}
	return f, nil
}

func rentalMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "contract_no":
		return "contract number must be at least 3 characters"
	case "customer_id":
		if fe.Tag() == "required" {
			return "customer is required"
		}
		return "customer id is not a valid uuid"
	case "car_id":
		if fe.Tag() == "required" {
			return "car is required"
		}
		return "car id is not a valid uuid"
	case "return_datetime":
		return "return datetime must be after pickup datetime"
	case "daily_rate":
		return "daily rate must be greater than 0"
	case "discount":
		return "discount must not be negative"
	case "notes":
		return "notes must be 1000 characters or fewer"
	case "deposit_amount":
		return "deposit amount must not be negative"
	case "payment_method":
		if fe.Tag() == "depositmethod" {
			return "a payment method is required for the deposit"
		}
		return "invalid payment method"
	}
	return "invalid input"
}
