package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/dukaankhata/dukaankhata/internal/customer/domain"
	customerrepo "github.com/dukaankhata/dukaankhata/internal/customer/repository"
	"github.com/dukaankhata/dukaankhata/internal/order/domain"
	orderrepo "github.com/dukaankhata/dukaankhata/internal/order/repository"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	methoddomain "github.com/dukaankhata/dukaankhata/internal/paymentmethod/domain"
	methodrepo "github.com/dukaankhata/dukaankhata/internal/paymentmethod/repository"
	productdomain "github.com/dukaankhata/dukaankhata/internal/product/domain"
	productrepo "github.com/dukaankhata/dukaankhata/internal/product/repository"
	txdomain "github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	txrepo "github.com/dukaankhata/dukaankhata/internal/transaction/repository"
	"github.com/dukaankhata/dukaankhata/pkg/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc    domain.Service
	db     *gorm.DB
	node   *snowflake.Node
	ledger txdomain.Repository
}

func newFixture(t *testing.T, ledger txdomain.Repository) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&customerdomain.Customer{},
		&productdomain.Product{},
		&methoddomain.PaymentMethod{},
		&txdomain.Transaction{},
		&domain.Order{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	if ledger == nil {
		ledger = txrepo.Provide()
	}

	svc := New(Params{
		DB:        dbConn,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      orderrepo.Provide(),
		Customers: customerrepo.Provide(),
		Products:  productrepo.Provide(),
		Methods:   methodrepo.Provide(),
		Ledger:    ledger,
	})

	return &fixture{svc: svc, db: dbConn, node: node, ledger: ledger}
}

func (f *fixture) ownerContext(ownerID int64) context.Context {
	return ownerctx.WithOwnerID(context.Background(), snowflake.ID(ownerID))
}

func (f *fixture) createCustomer(t *testing.T, ownerID int64, name string) customerdomain.Customer {
	t.Helper()
	now := time.Now().UTC()
	customer := customerdomain.Customer{
		ID:        f.node.Generate(),
		OwnerID:   snowflake.ID(ownerID),
		Name:      name,
		Status:    customerdomain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, customerrepo.Provide().Insert(context.Background(), f.db, &customer))
	return customer
}

func (f *fixture) createProduct(t *testing.T, ownerID int64, name string, price int64) productdomain.Product {
	t.Helper()
	now := time.Now().UTC()
	product := productdomain.Product{
		ID:        f.node.Generate(),
		OwnerID:   snowflake.ID(ownerID),
		Name:      name,
		Price:     decimal.NewFromInt(price),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, productrepo.Provide().Insert(context.Background(), f.db, &product))
	return product
}

func (f *fixture) ledgerEntries(t *testing.T, ownerID int64) []txdomain.Transaction {
	t.Helper()
	entries, err := txrepo.Provide().ListCompleted(context.Background(), f.db, snowflake.ID(ownerID))
	require.NoError(t, err)
	return entries
}

func baseRequest(customerID string) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		CustomerID: customerID,
		InvoiceNo:  "INV-001",
		Items: []domain.ItemRequest{
			{Name: "Sugar 1kg", Quantity: 2, Price: decimal.NewFromInt(100)},
			{Name: "Tea 250g", Quantity: 1, Price: decimal.NewFromInt(50)},
		},
		Charges: []domain.ChargeRequest{
			{Item: "delivery", Value: decimal.NewFromInt(20)},
		},
	}
}

func TestCreateComputesTotals(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	view, err := f.svc.Create(f.ownerContext(10), baseRequest(customer.ID.String()))
	require.NoError(t, err)

	require.True(t, view.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal = %s", view.Subtotal)
	require.True(t, view.Total.Equal(decimal.NewFromInt(270)), "total = %s", view.Total)
	require.Equal(t, domain.StatusCompleted, view.Status)
	require.Equal(t, "Ali", view.Customer.Name)
}

func TestCreateUnspecifiedPaymentRecordsFullTotal(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	view, err := f.svc.Create(f.ownerContext(10), baseRequest(customer.ID.String()))
	require.NoError(t, err)
	require.Nil(t, view.Payment)

	entries := f.ledgerEntries(t, 10)
	require.Len(t, entries, 1)
	require.True(t, entries[0].Amount.Equal(decimal.NewFromInt(270)))
	require.Equal(t, txdomain.TypeIncome, entries[0].Type)
	require.Equal(t, txdomain.CategorySelling, entries[0].Category)
	require.NotNil(t, entries[0].OrderID)
	require.Equal(t, view.ID, *entries[0].OrderID)
}

func TestCreatePartialPaymentLedgersPaidAmount(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	req := baseRequest(customer.ID.String())
	req.Payment = &domain.PaymentRequest{
		Method:     "Cash",
		PaidAmount: decimal.NewFromInt(100),
	}

	view, err := f.svc.Create(f.ownerContext(10), req)
	require.NoError(t, err)
	require.NotNil(t, view.Payment)
	require.True(t, view.Payment.PaidAmount.Equal(decimal.NewFromInt(100)))
	// Remaining balance: 270 - 100 = 170.
	require.True(t, view.Total.Sub(view.Payment.PaidAmount).Equal(decimal.NewFromInt(170)))

	entries := f.ledgerEntries(t, 10)
	require.Len(t, entries, 1)
	require.True(t, entries[0].Amount.Equal(decimal.NewFromInt(100)))
	require.Equal(t, txdomain.CategorySelling, entries[0].Category)
	require.Equal(t, txdomain.TypeIncome, entries[0].Type)
}

func TestCreatePartialPaymentOverTotalRejected(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	req := baseRequest(customer.ID.String())
	req.Payment = &domain.PaymentRequest{
		Method:     "Cash",
		PaidAmount: decimal.NewFromInt(500),
	}

	_, err := f.svc.Create(f.ownerContext(10), req)
	var validation *domain.PaymentValidationError
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Fields, "amount")

	require.Empty(t, f.ledgerEntries(t, 10))
}

func TestCreatePaymentEqualToTotalIsFull(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	req := baseRequest(customer.ID.String())
	req.Payment = &domain.PaymentRequest{
		Method:     "Cash",
		PaidAmount: decimal.NewFromInt(270),
	}

	view, err := f.svc.Create(f.ownerContext(10), req)
	require.NoError(t, err)
	require.True(t, view.Payment.PaidAmount.Equal(view.Total))
	require.NotNil(t, view.Payment.PaidDate)

	entries := f.ledgerEntries(t, 10)
	require.Len(t, entries, 1)
	require.True(t, entries[0].Amount.Equal(decimal.NewFromInt(270)))
}

func TestCreatePaymentWithoutMethodRejected(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	req := baseRequest(customer.ID.String())
	req.Payment = &domain.PaymentRequest{
		PaidAmount: decimal.NewFromInt(100),
	}

	_, err := f.svc.Create(f.ownerContext(10), req)
	var validation *domain.PaymentValidationError
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Fields, "method")

	require.Empty(t, f.ledgerEntries(t, 10))
	resp, err := f.svc.List(f.ownerContext(10))
	require.NoError(t, err)
	require.Empty(t, resp.Orders)
}

func TestCreateNoPaymentAtAllSuppressesLedger(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	paidDate := time.Now().UTC()
	req := baseRequest(customer.ID.String())
	// A previously entered partial payment is cleared by the toggle.
	req.Payment = &domain.PaymentRequest{
		Method:         "Cash",
		PaidAmount:     decimal.NewFromInt(100),
		PaidDate:       &paidDate,
		NoPaymentAtAll: true,
	}

	view, err := f.svc.Create(f.ownerContext(10), req)
	require.NoError(t, err)
	require.NotNil(t, view.Payment)
	require.True(t, view.Payment.NoPaymentAtAll)
	require.True(t, view.Payment.PaidAmount.IsZero())
	require.Nil(t, view.Payment.PaidDate)

	require.Empty(t, f.ledgerEntries(t, 10))
}

func TestCreateResolvesItemNameFromCatalog(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")
	product := f.createProduct(t, 10, "Sugar 1kg", 100)

	req := domain.CreateOrderRequest{
		CustomerID: customer.ID.String(),
		Items: []domain.ItemRequest{
			{ProductID: product.ID.String(), Quantity: 2, Price: decimal.NewFromInt(100)},
		},
	}

	view, err := f.svc.Create(f.ownerContext(10), req)
	require.NoError(t, err)
	require.Equal(t, "Sugar 1kg", view.Items[0].Name)
}

func TestCreateVanishedProductKeepsProvidedName(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	req := domain.CreateOrderRequest{
		CustomerID: customer.ID.String(),
		Items: []domain.ItemRequest{
			{ProductID: f.node.Generate().String(), Quantity: 1, Price: decimal.NewFromInt(100)},
		},
	}

	view, err := f.svc.Create(f.ownerContext(10), req)
	require.NoError(t, err)
	require.Empty(t, view.Items[0].Name)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	_, err := f.svc.Create(f.ownerContext(10), domain.CreateOrderRequest{
		CustomerID: f.node.Generate().String(),
		Items:      baseRequest("").Items,
	})
	require.ErrorIs(t, err, domain.ErrInvalidCustomer)

	_, err = f.svc.Create(f.ownerContext(10), domain.CreateOrderRequest{
		CustomerID: customer.ID.String(),
	})
	require.ErrorIs(t, err, domain.ErrMissingItems)

	_, err = f.svc.Create(f.ownerContext(10), domain.CreateOrderRequest{
		CustomerID: customer.ID.String(),
		Items: []domain.ItemRequest{
			{Name: "Sugar 1kg", Quantity: 0, Price: decimal.NewFromInt(100)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidItem)
}

type failingLedger struct {
	txdomain.Repository
}

func (f *failingLedger) Insert(ctx context.Context, db *gorm.DB, transaction *txdomain.Transaction) error {
	return errors.New("ledger unavailable")
}

func TestCreateRollsBackOrderWhenLedgerInsertFails(t *testing.T) {
	f := newFixture(t, &failingLedger{Repository: txrepo.Provide()})
	customer := f.createCustomer(t, 10, "Ali")

	_, err := f.svc.Create(f.ownerContext(10), baseRequest(customer.ID.String()))
	require.Error(t, err)

	resp, err := f.svc.List(f.ownerContext(10))
	require.NoError(t, err)
	require.Empty(t, resp.Orders, "order insert must roll back with the ledger entry")
}

func TestListNewestFirstWithCustomerName(t *testing.T) {
	f := newFixture(t, nil)
	ali := f.createCustomer(t, 10, "Ali")
	bano := f.createCustomer(t, 10, "Bano")

	first, err := f.svc.Create(f.ownerContext(10), baseRequest(ali.ID.String()))
	require.NoError(t, err)
	second, err := f.svc.Create(f.ownerContext(10), baseRequest(bano.ID.String()))
	require.NoError(t, err)

	resp, err := f.svc.List(f.ownerContext(10))
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
	require.Equal(t, second.ID, resp.Orders[0].ID)
	require.Equal(t, "Bano", resp.Orders[0].Customer.Name)
	require.Equal(t, first.ID, resp.Orders[1].ID)
	require.Equal(t, "Ali", resp.Orders[1].Customer.Name)
	require.Len(t, resp.Orders[0].Items, 2)
}

func TestGetByIDIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	created, err := f.svc.Create(f.ownerContext(10), baseRequest(customer.ID.String()))
	require.NoError(t, err)

	first, err := f.svc.GetByID(f.ownerContext(10), created.ID.String())
	require.NoError(t, err)
	second, err := f.svc.GetByID(f.ownerContext(10), created.ID.String())
	require.NoError(t, err)

	require.Equal(t, first.Items, second.Items)
	require.True(t, first.Total.Equal(second.Total))
	require.Equal(t, first.Payment, second.Payment)
}

func TestUpdateRefusesDesynchronizedTotal(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	created, err := f.svc.Create(f.ownerContext(10), baseRequest(customer.ID.String()))
	require.NoError(t, err)

	wrong := decimal.NewFromInt(999)
	_, err = f.svc.Update(f.ownerContext(10), domain.UpdateOrderRequest{
		ID:    created.ID.String(),
		Total: &wrong,
	})
	require.ErrorIs(t, err, domain.ErrTotalMismatch)

	status := "pending"
	updated, err := f.svc.Update(f.ownerContext(10), domain.UpdateOrderRequest{
		ID:     created.ID.String(),
		Status: &status,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, updated.Status)
}

func TestDeleteRemovesOrderAndItems(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	created, err := f.svc.Create(f.ownerContext(10), baseRequest(customer.ID.String()))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(f.ownerContext(10), created.ID.String()))

	resp, err := f.svc.List(f.ownerContext(10))
	require.NoError(t, err)
	require.Empty(t, resp.Orders)

	// Items are embedded in the order row; nothing can be orphaned.
	var count int64
	require.NoError(t, f.db.Model(&domain.Order{}).Count(&count).Error)
	require.Zero(t, count)

	_, err = f.svc.GetByID(f.ownerContext(10), created.ID.String())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOtherOwnerIsNotFound(t *testing.T) {
	f := newFixture(t, nil)
	customer := f.createCustomer(t, 10, "Ali")

	created, err := f.svc.Create(f.ownerContext(10), baseRequest(customer.ID.String()))
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.Delete(f.ownerContext(20), created.ID.String()), domain.ErrNotFound)
}
