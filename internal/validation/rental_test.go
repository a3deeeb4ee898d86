package validation

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRentalForm() url.Values {
	return url.Values{
		"customer_id":     {"0c7f9a3e-5b1d-4e8a-9f26-3d1c8e4b7a50"},
		"car_id":          {"7e2b4c6d-8f10-4a3b-b5c7-9d0e1f2a3b4c"},
		"pickup_datetime": {"2025-06-01T09:00"},
		"return_datetime": {"2025-06-04T09:00"},
		"daily_rate":      {"1000"},
	}
}

func TestParseCreateRental_Valid(t *testing.T) {
	form := validRentalForm()
	form.Set("discount", "250.50")
	form.Set("notes", "airport pickup")
	form.Set("deposit_amount", "500")
	form.Set("payment_method", "cash")

	in, fieldErr := ParseCreateRental(form)
	require.Nil(t, fieldErr)
	assert.Equal(t, "0c7f9a3e-5b1d-4e8a-9f26-3d1c8e4b7a50", in.CustomerID)
	assert.Equal(t, 1000.0, in.DailyRate)
	assert.Equal(t, 250.50, in.Discount)
	assert.Equal(t, 500.0, in.DepositAmount)
	assert.Equal(t, "cash", in.PaymentMethod)
	assert.True(t, in.ReturnDatetime.After(in.PickupDatetime))
}

func TestParseCreateRental_AcceptsRFC3339(t *testing.T) {
	form := validRentalForm()
	form.Set("pickup_datetime", "2025-06-01T09:00:00Z")
	form.Set("return_datetime", "2025-06-02T09:00:00Z")

	_, fieldErr := ParseCreateRental(form)
	assert.Nil(t, fieldErr)
}

func TestParseCreateRental_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(url.Values)
		field   string
		message string
	}{
		{
			name:    "Missing Customer",
			mutate:  func(f url.Values) { f.Del("customer_id") },
			field:   "customer_id",
			message: "customer is required",
		},
		{
			name:    "Customer Not UUID",
			mutate:  func(f url.Values) { f.Set("customer_id", "not-a-uuid") },
			field:   "customer_id",
			message: "customer id is not a valid uuid",
		},
		{
			name:    "Missing Car",
			mutate:  func(f url.Values) { f.Del("car_id") },
			field:   "car_id",
			message: "car is required",
		},
		{
			name:    "Missing Pickup",
			mutate:  func(f url.Values) { f.Del("pickup_datetime") },
			field:   "pickup_datetime",
			message: "pickup datetime is required",
		},
		{
			name:    "Malformed Pickup",
			mutate:  func(f url.Values) { f.Set("pickup_datetime", "yesterday") },
			field:   "pickup_datetime",
			message: "invalid pickup datetime format",
		},
		{
			name:    "Return Not After Pickup",
			mutate:  func(f url.Values) { f.Set("return_datetime", f.Get("pickup_datetime")) },
			field:   "return_datetime",
			message: "return datetime must be after pickup datetime",
		},
		{
			name:    "Return Before Pickup",
			mutate:  func(f url.Values) { f.Set("return_datetime", "2025-05-01T09:00") },
			field:   "return_datetime",
			message: "return datetime must be after pickup datetime",
		},
		{
			name:    "Zero Daily Rate",
			mutate:  func(f url.Values) { f.Set("daily_rate", "0") },
			field:   "daily_rate",
			message: "daily rate must be greater than 0",
		},
		{
			name:    "Daily Rate Not A Number",
			mutate:  func(f url.Values) { f.Set("daily_rate", "abc") },
			field:   "daily_rate",
			message: "daily rate must be a number",
		},
		{
			name:    "Negative Discount",
			mutate:  func(f url.Values) { f.Set("discount", "-1") },
			field:   "discount",
			message: "discount must not be negative",
		},
		{
			name:    "Short Contract Number",
			mutate:  func(f url.Values) { f.Set("contract_no", "ab") },
			field:   "contract_no",
			message: "contract number must be at least 3 characters",
		},
		{
			name:    "Notes Too Long",
			mutate:  func(f url.Values) { f.Set("notes", strings.Repeat("x", 1001)) },
			field:   "notes",
			message: "notes must be 1000 characters or fewer",
		},
		{
			name:    "Negative Deposit",
			mutate:  func(f url.Values) { f.Set("deposit_amount", "-5") },
			field:   "deposit_amount",
			message: "deposit amount must not be negative",
		},
		{
			name:    "Deposit Without Method",
			mutate:  func(f url.Values) { f.Set("deposit_amount", "500") },
			field:   "payment_method",
			message: "a payment method is required for the deposit",
		},
		{
			name: "Unknown Payment Method",
			mutate: func(f url.Values) {
				f.Set("deposit_amount", "500")
				f.Set("payment_method", "cheque")
			},
			field:   "payment_method",
			message: "invalid payment method",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validRentalForm()
			tc.mutate(form)

			in, fieldErr := ParseCreateRental(form)
			require.NotNil(t, fieldErr)
			assert.Nil(t, in)
			assert.Equal(t, tc.field, fieldErr.Field)
			assert.Equal(t, tc.message, fieldErr.Message)
		})
	}
}

func TestParseCreateRental_FirstErrorWins(t *testing.T) {
	form := validRentalForm()
	form.Set("customer_id", "bad")
	form.Set("car_id", "also-bad")
	form.Set("daily_rate", "0")

	_, fieldErr := ParseCreateRental(form)
	require.NotNil(t, fieldErr)
	assert.Equal(t, "customer_id", fieldErr.Field)
}

func TestParseCreateRental_OptionalContractNo(t *testing.T) {
	form := validRentalForm()

	in, fieldErr := ParseCreateRental(form)
	require.Nil(t, fieldErr)
	assert.Empty(t, in.ContractNo)
}
