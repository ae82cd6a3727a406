package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	"github.com/dukaankhata/dukaankhata/internal/product/domain"
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
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Product{}, domain.ErrInvalidOwner
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if req.Price.IsNegative() {
		return domain.Product{}, domain.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidStock
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:          s.genID.Generate(),
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    strings.TrimSpace(req.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) List(ctx context.Context) (domain.ListProductResponse, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.ListProductResponse{}, domain.ErrInvalidOwner
	}

	products, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	return domain.ListProductResponse{Products: products}, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Product, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Product{}, domain.ErrInvalidOwner
	}

	id, err := parseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.FindByID(ctx, s.db, ownerID, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	return *product, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProductRequest) (domain.Product, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Product{}, domain.ErrInvalidOwner
	}

	id, err := parseID(req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.FindByID(ctx, s.db, ownerID, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Product{}, domain.ErrInvalidName
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return domain.Product{}, domain.ErrInvalidPrice
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return domain.Product{}, domain.ErrInvalidStock
		}
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, product); err != nil {
		return domain.Product{}, err
	}

	return *product, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
