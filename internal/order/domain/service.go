package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type ItemRequest struct {
	ProductID string
	Name      string
	Quantity  int
	Price     decimal.Decimal
}

type ChargeRequest struct {
	Item  string
	Value decimal.Decimal
}

type PaymentRequest struct {
	Method         string
	PaidAmount     decimal.Decimal
	PaidDate       *time.Time
	NoPaymentAtAll bool
}

type CreateOrderRequest struct {
	CustomerID string
	Items      []ItemRequest
	Charges    []ChargeRequest
	Payment    *PaymentRequest
	InvoiceNo  string
	SaleDate   *time.Time
	DueDate    *time.Time
}

type UpdateOrderRequest struct {
	ID        string
	InvoiceNo *string
	Status    *string
	DueDate   *time.Time
	// Total may be supplied but must still equal subtotal plus charges;
	// edits that would desynchronize the stored totals are refused.
	Total *decimal.Decimal
}

// OrderView is an order with the customer name resolved for display.
type OrderView struct {
	Order
	Customer CustomerRef `json:"customer"`
}

type CustomerRef struct {
	Name string `json:"name"`
}

type ListOrderResponse struct {
	Orders []OrderView `json:"orders"`
}

type Service interface {
	Create(context.Context, CreateOrderRequest) (OrderView, error)
	List(context.Context) (ListOrderResponse, error)
	GetByID(ctx context.Context, id string) (OrderView, error)
	Update(context.Context, UpdateOrderRequest) (Order, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOwner    = errors.New("invalid_owner")
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrMissingItems    = errors.New("missing_items")
	ErrInvalidItem     = errors.New("invalid_item")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrTotalMismatch   = errors.New("total_mismatch")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)

// PaymentValidationError carries the field-to-message mapping produced
// by payment validation; it blocks order creation without panicking.
type PaymentValidationError struct {
	Fields map[string]string
}

func (e *PaymentValidationError) Error() string { return "invalid payment" }
