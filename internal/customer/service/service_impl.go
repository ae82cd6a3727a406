package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/customer/domain"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Customer{}, domain.ErrInvalidOwner
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        s.genID.Generate(),
		OwnerID:   ownerID,
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) List(ctx context.Context) (domain.ListCustomerResponse, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.ListCustomerResponse{}, domain.ErrInvalidOwner
	}

	customers, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	return domain.ListCustomerResponse{Customers: customers}, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Customer, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Customer{}, domain.ErrInvalidOwner
	}

	id, err := parseID(rawID)
	if err != nil {
		return domain.Customer{}, err
	}

	customer, err := s.repo.FindByID(ctx, s.db, ownerID, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *customer, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Customer{}, domain.ErrInvalidOwner
	}

	id, err := parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	customer, err := s.repo.FindByID(ctx, s.db, ownerID, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Customer{}, domain.ErrInvalidName
		}
		customer.Name = name
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		customer.Address = strings.TrimSpace(*req.Address)
	}
	if req.Status != nil {
		status := domain.Status(strings.TrimSpace(*req.Status))
		if status != domain.StatusActive && status != domain.StatusInactive {
			return domain.Customer{}, domain.ErrInvalidStatus
		}
		customer.Status = status
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, customer); err != nil {
		return domain.Customer{}, err
	}

	return *customer, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.ErrInvalidOwner
	}

	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, ownerID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
