package domain

import (
	"context"
	"errors"
)

type ListPaymentMethodResponse struct {
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}

type Service interface {
	List(context.Context) (ListPaymentMethodResponse, error)
}

var ErrNotFound = errors.New("not_found")
