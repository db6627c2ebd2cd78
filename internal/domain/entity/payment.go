package entity

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the guest settles the bill.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "Cash"
	PaymentMethodCard          PaymentMethod = "Card"
	PaymentMethodMobileBanking PaymentMethod = "Mobile Banking"
)

// IsValid checks if the PaymentMethod is one the billing view offers.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobileBanking:
		return true
	default:
		return false
	}
}

// Payment is a payment capture request for one order.
type Payment struct {
	OrderID    string          `json:"orderId"`
	Method     PaymentMethod   `json:"paymentMethod"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
}

// Receipt is the outcome of a successful payment.
type Receipt struct {
	Order  *Order          `json:"order"`
	Method PaymentMethod   `json:"paymentMethod"`
	Paid   decimal.Decimal `json:"paid"`
	Change decimal.Decimal `json:"change"`
}

// ComputeChange returns paid − total, or zero when the guest did not overpay.
func ComputeChange(total, paid decimal.Decimal) decimal.Decimal {
	if paid.GreaterThan(total) {
		return paid.Sub(total)
	}

	return decimal.Zero
}
