package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Amount          decimal.Decimal
	Type            string
	Category        string
	Status          string
	Description     string
	PaymentMethodID string
	PaymentDate     *time.Time
}

type UpdateTransactionRequest struct {
	ID          string
	Amount      *decimal.Decimal
	Type        *string
	Category    *string
	Status      *string
	Description *string
	PaymentDate *time.Time
}

type ListTransactionRequest struct {
	Page          int
	Limit         int
	SortColumn    string
	SortDirection string
}

// ListTransactionResponse is the paginated envelope returned by the
// transactions listing.
type ListTransactionResponse struct {
	Data       []Transaction `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

type Service interface {
	Create(context.Context, CreateTransactionRequest) (Transaction, error)
	List(context.Context, ListTransactionRequest) (ListTransactionResponse, error)
	Update(context.Context, UpdateTransactionRequest) (Transaction, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOwner  = errors.New("invalid_owner")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidType   = errors.New("invalid_type")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
