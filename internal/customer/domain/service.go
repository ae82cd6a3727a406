package domain

import (
	"context"
	"errors"
)

type CreateCustomerRequest struct {
	Name    string
	Phone   string
	Address string
}

type UpdateCustomerRequest struct {
	ID      string
	Name    *string
	Phone   *string
	Address *string
	Status  *string
}

type ListCustomerResponse struct {
	Customers []Customer `json:"customers"`
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context) (ListCustomerResponse, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOwner  = errors.New("invalid_owner")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
