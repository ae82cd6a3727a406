package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	"github.com/dukaankhata/dukaankhata/internal/reporting/domain"
	txdomain "github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	txrepo "github.com/dukaankhata/dukaankhata/internal/transaction/repository"
	"github.com/dukaankhata/dukaankhata/pkg/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc  domain.Service
	db   *gorm.DB
	node *snowflake.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&txdomain.Transaction{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:     dbConn,
		Log:    zap.NewNop(),
		Ledger: txrepo.Provide(),
	})

	return &fixture{svc: svc, db: dbConn, node: node}
}

type entry struct {
	amount   int64
	kind     txdomain.Type
	category string
	status   txdomain.Status
	day      time.Time
}

func (f *fixture) insert(t *testing.T, ownerID int64, entries ...entry) {
	t.Helper()
	repo := txrepo.Provide()
	for _, e := range entries {
		status := e.status
		if status == "" {
			status = txdomain.StatusCompleted
		}
		transaction := txdomain.Transaction{
			ID:        f.node.Generate(),
			OwnerID:   snowflake.ID(ownerID),
			Amount:    decimal.NewFromInt(e.amount),
			Type:      e.kind,
			Category:  e.category,
			Status:    status,
			CreatedAt: e.day,
			UpdatedAt: e.day,
		}
		require.NoError(t, repo.Insert(context.Background(), f.db, &transaction))
	}
}

func ownerContext(ownerID int64) context.Context {
	return ownerctx.WithOwnerID(context.Background(), snowflake.ID(ownerID))
}

var (
	june1 = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	june2 = time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
)

func TestCashflowSumsIncomeAndExpenseTogether(t *testing.T) {
	f := newFixture(t)
	// 500 income and 200 expense on the same day total 700, not 300.
	f.insert(t, 10,
		entry{amount: 500, kind: txdomain.TypeIncome, category: "selling", day: june1},
		entry{amount: 200, kind: txdomain.TypeExpense, category: "rent", day: june1},
	)

	points, err := f.svc.Cashflow(ownerContext(10))
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, "2024-06-01", points[0].Date)
	require.True(t, points[0].Total.Equal(decimal.NewFromInt(700)))
}

func TestCashflowGroupsByUTCDay(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10,
		entry{amount: 100, kind: txdomain.TypeIncome, day: june1},
		entry{amount: 50, kind: txdomain.TypeIncome, day: june1.Add(5 * time.Hour)},
		entry{amount: 30, kind: txdomain.TypeIncome, day: june2},
	)

	points, err := f.svc.Cashflow(ownerContext(10))
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.True(t, points[0].Total.Equal(decimal.NewFromInt(150)))
	require.True(t, points[1].Total.Equal(decimal.NewFromInt(30)))
}

func TestPendingEntriesAreExcluded(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10,
		entry{amount: 100, kind: txdomain.TypeIncome, day: june1},
		entry{amount: 900, kind: txdomain.TypeIncome, status: txdomain.StatusPending, day: june1},
	)

	total, err := f.svc.RevenueTotal(ownerContext(10))
	require.NoError(t, err)
	require.True(t, total.Equal(decimal.NewFromInt(100)))
}

func TestReportsAreOwnerScoped(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10, entry{amount: 100, kind: txdomain.TypeIncome, day: june1})
	f.insert(t, 20, entry{amount: 999, kind: txdomain.TypeIncome, day: june1})

	total, err := f.svc.RevenueTotal(ownerContext(10))
	require.NoError(t, err)
	require.True(t, total.Equal(decimal.NewFromInt(100)))
}

func TestCategoryGroupingDropsUncategorized(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10,
		entry{amount: 100, kind: txdomain.TypeIncome, category: "selling", day: june1},
		entry{amount: 40, kind: txdomain.TypeIncome, category: "selling", day: june2},
		entry{amount: 70, kind: txdomain.TypeIncome, category: "", day: june1},
		entry{amount: 500, kind: txdomain.TypeExpense, category: "rent", day: june1},
	)

	categories, err := f.svc.RevenueByCategory(ownerContext(10))
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "selling", categories[0].Category)
	require.True(t, categories[0].Total.Equal(decimal.NewFromInt(140)))
}

func TestProfitIdentity(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10,
		entry{amount: 500, kind: txdomain.TypeIncome, category: "selling", day: june1},
		entry{amount: 300, kind: txdomain.TypeIncome, category: "selling", day: june2},
		entry{amount: 200, kind: txdomain.TypeExpense, category: "rent", day: june1},
	)

	summary, err := f.svc.ProfitTotal(ownerContext(10))
	require.NoError(t, err)
	require.True(t, summary.Revenue.Equal(decimal.NewFromInt(800)))
	require.True(t, summary.Expenses.Equal(decimal.NewFromInt(200)))
	require.True(t, summary.Profit.Equal(decimal.NewFromInt(600)))

	// profit equals selling minus expenses when all income is selling.
	require.True(t, summary.Profit.Equal(summary.Revenue.Sub(summary.Expenses)))
}

func TestProfitMarginRounding(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10,
		entry{amount: 300, kind: txdomain.TypeIncome, category: "selling", day: june1},
		entry{amount: 100, kind: txdomain.TypeExpense, category: "stock", day: june1},
	)

	points, err := f.svc.ProfitMargin(ownerContext(10))
	require.NoError(t, err)
	require.Len(t, points, 1)
	// (300-100)/300*100 = 66.666... rounds to 66.67.
	require.True(t, points[0].Margin.Equal(decimal.RequireFromString("66.67")),
		"margin = %s", points[0].Margin)
}

func TestProfitMarginZeroWhenNothingSold(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10,
		entry{amount: 100, kind: txdomain.TypeExpense, category: "rent", day: june1},
	)

	points, err := f.svc.ProfitMargin(ownerContext(10))
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.True(t, points[0].Margin.IsZero())
	require.True(t, points[0].Expense.Equal(decimal.NewFromInt(100)))
}

func TestProfitMarginIgnoresNonSellingIncome(t *testing.T) {
	f := newFixture(t)
	f.insert(t, 10,
		entry{amount: 300, kind: txdomain.TypeIncome, category: "selling", day: june1},
		entry{amount: 500, kind: txdomain.TypeIncome, category: "interest", day: june1},
	)

	points, err := f.svc.ProfitMargin(ownerContext(10))
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.True(t, points[0].Selling.Equal(decimal.NewFromInt(300)))
}
