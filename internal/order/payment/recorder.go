// Package payment validates payment intent against an order total and
// produces the snapshot embedded in the order.
package payment

import (
	"strings"
	"time"

	"github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/shopspring/decimal"
)

// Mode is the mutually exclusive payment choice.
type Mode string

const (
	ModeFull    Mode = "full"
	ModePartial Mode = "partial"
	ModeNone    Mode = "none"
)

// Input is the raw payment intent entered at checkout.
type Input struct {
	Mode   Mode
	Method string
	Amount decimal.Decimal
	Date   *time.Time
}

// Record turns a payment intent into a snapshot, or a field-to-message
// map when validation fails. It never returns both. Recording replaces
// any previously captured snapshot; amounts do not accumulate.
func Record(total decimal.Decimal, in Input, now time.Time) (*domain.Payment, map[string]string) {
	switch in.Mode {
	case ModeNone:
		// Explicitly unpaid: amount and date are cleared even if the
		// caller had entered them before toggling.
		return &domain.Payment{
			PaidAmount:     decimal.Zero,
			PaidDate:       nil,
			NoPaymentAtAll: true,
		}, nil

	case ModeFull:
		fields := map[string]string{}
		if strings.TrimSpace(in.Method) == "" {
			fields["method"] = "payment method is required"
		}
		if len(fields) > 0 {
			return nil, fields
		}

		date := in.Date
		if date == nil {
			today := now
			date = &today
		}
		return &domain.Payment{
			Method:     strings.TrimSpace(in.Method),
			PaidAmount: total,
			PaidDate:   date,
		}, nil

	case ModePartial:
		fields := map[string]string{}
		if strings.TrimSpace(in.Method) == "" {
			fields["method"] = "payment method is required"
		}
		if !in.Amount.IsPositive() {
			fields["amount"] = "amount must be at least 1"
		} else if in.Amount.GreaterThan(total) {
			fields["amount"] = "amount must not exceed the remaining balance"
		}
		if len(fields) > 0 {
			return nil, fields
		}

		date := in.Date
		if date == nil {
			today := now
			date = &today
		}
		return &domain.Payment{
			Method:     strings.TrimSpace(in.Method),
			PaidAmount: in.Amount,
			PaidDate:   date,
		}, nil

	default:
		return nil, map[string]string{"mode": "unknown payment mode"}
	}
}

// Remaining is the outstanding balance after a snapshot.
func Remaining(total decimal.Decimal, snapshot *domain.Payment) decimal.Decimal {
	if snapshot == nil {
		return total
	}
	remaining := total.Sub(snapshot.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
