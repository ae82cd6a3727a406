package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	"github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	"github.com/dukaankhata/dukaankhata/pkg/db/pagination"
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
		log:   p.Log.Named("transaction.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTransactionRequest) (domain.Transaction, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Transaction{}, domain.ErrInvalidOwner
	}

	if req.Amount.IsNegative() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	entryType, err := parseType(req.Type)
	if err != nil {
		return domain.Transaction{}, err
	}

	status := domain.StatusCompleted
	if strings.TrimSpace(req.Status) != "" {
		status, err = parseStatus(req.Status)
		if err != nil {
			return domain.Transaction{}, err
		}
	}

	var methodID *snowflake.ID
	if strings.TrimSpace(req.PaymentMethodID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(req.PaymentMethodID))
		if err != nil {
			return domain.Transaction{}, domain.ErrInvalidID
		}
		methodID = &id
	}

	now := time.Now().UTC()
	transaction := domain.Transaction{
		ID:              s.genID.Generate(),
		OwnerID:         ownerID,
		PaymentMethodID: methodID,
		Amount:          req.Amount,
		Type:            entryType,
		Category:        strings.TrimSpace(req.Category),
		Status:          status,
		Description:     strings.TrimSpace(req.Description),
		PaymentDate:     req.PaymentDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &transaction); err != nil {
		return domain.Transaction{}, err
	}

	return transaction, nil
}

func (s *Service) List(ctx context.Context, req domain.ListTransactionRequest) (domain.ListTransactionResponse, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.ListTransactionResponse{}, domain.ErrInvalidOwner
	}

	page := pagination.Pagination{Page: req.Page, Limit: req.Limit}.Normalize()
	sort := pagination.Sort{Column: req.SortColumn, Direction: req.SortDirection}

	transactions, total, err := s.repo.List(ctx, s.db, ownerID, page, sort)
	if err != nil {
		return domain.ListTransactionResponse{}, err
	}

	return domain.ListTransactionResponse{
		Data:       transactions,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(total),
	}, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateTransactionRequest) (domain.Transaction, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Transaction{}, domain.ErrInvalidOwner
	}

	id, err := parseID(req.ID)
	if err != nil {
		return domain.Transaction{}, err
	}

	transaction, err := s.repo.FindByID(ctx, s.db, ownerID, id)
	if err != nil {
		return domain.Transaction{}, err
	}
	if transaction == nil {
		return domain.Transaction{}, domain.ErrNotFound
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return domain.Transaction{}, domain.ErrInvalidAmount
		}
		transaction.Amount = *req.Amount
	}
	if req.Type != nil {
		entryType, err := parseType(*req.Type)
		if err != nil {
			return domain.Transaction{}, err
		}
		transaction.Type = entryType
	}
	if req.Category != nil {
		transaction.Category = strings.TrimSpace(*req.Category)
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return domain.Transaction{}, err
		}
		transaction.Status = status
	}
	if req.Description != nil {
		transaction.Description = strings.TrimSpace(*req.Description)
	}
	if req.PaymentDate != nil {
		transaction.PaymentDate = req.PaymentDate
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, transaction); err != nil {
		return domain.Transaction{}, err
	}

	return *transaction, nil
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

func parseType(value string) (domain.Type, error) {
	switch domain.Type(strings.TrimSpace(value)) {
	case domain.TypeIncome:
		return domain.TypeIncome, nil
	case domain.TypeExpense:
		return domain.TypeExpense, nil
	default:
		return "", domain.ErrInvalidType
	}
}

func parseStatus(value string) (domain.Status, error) {
	switch domain.Status(strings.TrimSpace(value)) {
	case domain.StatusCompleted:
		return domain.StatusCompleted, nil
	case domain.StatusPending:
		return domain.StatusPending, nil
	default:
		return "", domain.ErrInvalidStatus
	}
}
