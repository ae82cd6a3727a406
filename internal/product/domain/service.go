package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
}

type UpdateProductRequest struct {
	ID          string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
}

type ListProductResponse struct {
	Products []Product `json:"products"`
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	List(context.Context) (ListProductResponse, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Update(context.Context, UpdateProductRequest) (Product, error)
}

var (
	ErrInvalidOwner = errors.New("invalid_owner")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidStock = errors.New("invalid_stock")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
