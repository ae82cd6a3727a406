package service

import (
	"context"

	"github.com/dukaankhata/dukaankhata/internal/paymentmethod/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("paymentmethod.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) (domain.ListPaymentMethodResponse, error) {
	methods, err := s.repo.List(ctx, s.db)
	if err != nil {
		return domain.ListPaymentMethodResponse{}, err
	}
	return domain.ListPaymentMethodResponse{PaymentMethods: methods}, nil
}
