package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/dukaankhata/dukaankhata/internal/customer/domain"
	"github.com/dukaankhata/dukaankhata/internal/order/cart"
	"github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/dukaankhata/dukaankhata/internal/order/payment"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	methoddomain "github.com/dukaankhata/dukaankhata/internal/paymentmethod/domain"
	productdomain "github.com/dukaankhata/dukaankhata/internal/product/domain"
	txdomain "github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Customers customerdomain.Repository
	Products  productdomain.Repository
	Methods   methoddomain.Repository
	Ledger    txdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	customers customerdomain.Repository
	products  productdomain.Repository
	methods   methoddomain.Repository
	ledger    txdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("order.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		customers: p.Customers,
		products:  p.Products,
		methods:   p.Methods,
		ledger:    p.Ledger,
	}
}

// Create persists the order and, when a payment was recorded, the
// matching selling ledger entry inside one database transaction. A
// failed ledger insert rolls the order back; there is no window where
// the order exists without its entry.
func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderView, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.OrderView{}, domain.ErrInvalidOwner
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.OrderView{}, domain.ErrInvalidCustomer
	}
	customer, err := s.customers.FindByID(ctx, s.db, ownerID, customerID)
	if err != nil {
		return domain.OrderView{}, err
	}
	if customer == nil {
		return domain.OrderView{}, domain.ErrInvalidCustomer
	}

	if len(req.Items) == 0 {
		return domain.OrderView{}, domain.ErrMissingItems
	}

	items, err := s.buildItems(ctx, ownerID, req.Items)
	if err != nil {
		return domain.OrderView{}, err
	}

	charges := make([]domain.Charge, 0, len(req.Charges))
	for _, charge := range req.Charges {
		charges = append(charges, domain.Charge{
			Item:  strings.TrimSpace(charge.Item),
			Value: charge.Value,
		})
	}

	// Totals are always recomputed here; client-supplied values are
	// ignored so total == subtotal + charges holds at write time.
	subtotal := cart.Subtotal(items)
	total := cart.Total(items, charges)

	now := time.Now().UTC()
	snapshot, err := s.buildSnapshot(req.Payment, total, now)
	if err != nil {
		return domain.OrderView{}, err
	}

	saleDate := now
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	order := domain.Order{
		ID:         s.genID.Generate(),
		OwnerID:    ownerID,
		CustomerID: customerID,
		InvoiceNo:  strings.TrimSpace(req.InvoiceNo),
		SaleDate:   saleDate,
		DueDate:    req.DueDate,
		Subtotal:   subtotal,
		Total:      total,
		Status:     domain.StatusCompleted,
		Items:      items,
		Charges:    charges,
		Payment:    snapshot,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	ledgerAmount, recordLedger := ledgerAmount(req.Payment, snapshot, total)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, &order); err != nil {
			return err
		}
		if !recordLedger {
			return nil
		}

		entry := txdomain.Transaction{
			ID:          s.genID.Generate(),
			OwnerID:     ownerID,
			OrderID:     &order.ID,
			Amount:      ledgerAmount,
			Type:        txdomain.TypeIncome,
			Category:    txdomain.CategorySelling,
			Status:      txdomain.StatusCompleted,
			PaymentDate: paymentDate(snapshot, saleDate),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if snapshot != nil && snapshot.Method != "" {
			if method, err := s.methods.FindByName(ctx, tx, snapshot.Method); err == nil && method != nil {
				entry.PaymentMethodID = &method.ID
			}
		}
		return s.ledger.Insert(ctx, tx, &entry)
	})
	if err != nil {
		s.log.Error("order creation failed", zap.Error(err))
		return domain.OrderView{}, err
	}

	return domain.OrderView{
		Order:    order,
		Customer: domain.CustomerRef{Name: customer.Name},
	}, nil
}

func (s *Service) List(ctx context.Context) (domain.ListOrderResponse, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.ListOrderResponse{}, domain.ErrInvalidOwner
	}

	rows, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return domain.ListOrderResponse{}, err
	}

	orders := make([]domain.OrderView, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, domain.OrderView{
			Order:    row.Order,
			Customer: domain.CustomerRef{Name: row.CustomerName},
		})
	}

	return domain.ListOrderResponse{Orders: orders}, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.OrderView, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.OrderView{}, domain.ErrInvalidOwner
	}

	id, err := parseID(rawID)
	if err != nil {
		return domain.OrderView{}, err
	}

	order, err := s.repo.FindByID(ctx, s.db, ownerID, id)
	if err != nil {
		return domain.OrderView{}, err
	}
	if order == nil {
		return domain.OrderView{}, domain.ErrNotFound
	}

	view := domain.OrderView{Order: *order}
	if customer, err := s.customers.FindByID(ctx, s.db, ownerID, order.CustomerID); err == nil && customer != nil {
		view.Customer = domain.CustomerRef{Name: customer.Name}
	}

	return view, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateOrderRequest) (domain.Order, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.Order{}, domain.ErrInvalidOwner
	}

	id, err := parseID(req.ID)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.repo.FindByID(ctx, s.db, ownerID, id)
	if err != nil {
		return domain.Order{}, err
	}
	if order == nil {
		return domain.Order{}, domain.ErrNotFound
	}

	if req.InvoiceNo != nil {
		order.InvoiceNo = strings.TrimSpace(*req.InvoiceNo)
	}
	if req.DueDate != nil {
		order.DueDate = req.DueDate
	}
	if req.Status != nil {
		status := domain.Status(strings.TrimSpace(*req.Status))
		switch status {
		case domain.StatusCompleted, domain.StatusPending, domain.StatusCancelled:
			order.Status = status
		default:
			return domain.Order{}, domain.ErrInvalidStatus
		}
	}
	if req.Total != nil {
		// Items and charges are immutable history; a new total that
		// disagrees with them is refused rather than silently stored.
		if !req.Total.Equal(cart.Total(order.Items, order.Charges)) {
			return domain.Order{}, domain.ErrTotalMismatch
		}
		order.Total = *req.Total
	}
	order.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, order); err != nil {
		return domain.Order{}, err
	}

	return *order, nil
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

// buildItems validates quantities and prices and resolves missing item
// names from the catalog. A product that no longer exists does not
// fail the order; the name stays as provided.
func (s *Service) buildItems(ctx context.Context, ownerID snowflake.ID, reqs []domain.ItemRequest) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(reqs))
	for _, req := range reqs {
		if req.Quantity < 1 {
			return nil, domain.ErrInvalidItem
		}
		if req.Price.IsNegative() {
			return nil, domain.ErrInvalidItem
		}

		item := domain.Item{
			Name:     strings.TrimSpace(req.Name),
			Quantity: req.Quantity,
			Price:    req.Price,
		}

		if raw := strings.TrimSpace(req.ProductID); raw != "" {
			productID, err := snowflake.ParseString(raw)
			if err != nil {
				return nil, domain.ErrInvalidItem
			}
			item.ProductID = &productID

			if item.Name == "" {
				if product, err := s.products.FindByID(ctx, s.db, ownerID, productID); err == nil && product != nil {
					item.Name = product.Name
				}
			}
		}

		items = append(items, item)
	}
	return items, nil
}

func (s *Service) buildSnapshot(req *domain.PaymentRequest, total decimal.Decimal, now time.Time) (*domain.Payment, error) {
	if req == nil {
		return nil, nil
	}

	if req.NoPaymentAtAll {
		snapshot, _ := payment.Record(total, payment.Input{Mode: payment.ModeNone}, now)
		return snapshot, nil
	}

	if req.PaidAmount.IsZero() {
		return &domain.Payment{
			Method:   strings.TrimSpace(req.Method),
			PaidDate: req.PaidDate,
		}, nil
	}

	mode := payment.ModePartial
	if req.PaidAmount.Equal(total) {
		mode = payment.ModeFull
	}
	snapshot, fields := payment.Record(total, payment.Input{
		Mode:   mode,
		Method: req.Method,
		Amount: req.PaidAmount,
		Date:   req.PaidDate,
	}, now)
	if fields != nil {
		return nil, &domain.PaymentValidationError{Fields: fields}
	}
	return snapshot, nil
}

// ledgerAmount decides whether the order produces a selling entry and
// for how much. An unspecified payment means the quick-sale path paid
// the full total.
func ledgerAmount(req *domain.PaymentRequest, snapshot *domain.Payment, total decimal.Decimal) (decimal.Decimal, bool) {
	if req == nil {
		return total, total.IsPositive()
	}
	if snapshot == nil || snapshot.NoPaymentAtAll || !snapshot.PaidAmount.IsPositive() {
		return decimal.Zero, false
	}
	return snapshot.PaidAmount, true
}

func paymentDate(snapshot *domain.Payment, fallback time.Time) *time.Time {
	if snapshot != nil && snapshot.PaidDate != nil {
		return snapshot.PaidDate
	}
	date := fallback
	return &date
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
