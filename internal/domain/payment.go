package domain

import "time"

type PaymentType string

const (
	PaymentTypeDeposit   PaymentType = "deposit"
	PaymentTypeRentalFee PaymentType = "rental_fee"
	PaymentTypeLateFee   PaymentType = "late_fee"
	PaymentTypeRefund    PaymentType = "refund"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodEWallet      PaymentMethod = "e_wallet"
)

// PaymentMethods lists every accepted payment method
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodBankTransfer,
	PaymentMethodEWallet,
}

// ValidPaymentMethod reports whether s is one of the accepted methods
func ValidPaymentMethod(s string) bool {
	for _, m := range PaymentMethods {
		if string(m) == s {
			return true
		}
	}
	return false
}

type Payment struct {
	ID            string        `json:"id"`
	RentalID      string        `json:"rental_id"`
	Amount        float64       `json:"amount"`
	PaymentType   PaymentType   `json:"payment_type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentDate   time.Time     `json:"payment_date"`
	Notes         *string       `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
