package service

import (
	"context"
	"sort"

	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	"github.com/dukaankhata/dukaankhata/internal/reporting/domain"
	txdomain "github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dayFormat = "2006-01-02"

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Ledger txdomain.Repository
}

// Service derives every report by scanning the owner's completed
// ledger entries. Amounts are decimals; aggregation happens in Go so
// no precision is lost to the database's numeric handling.
type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	ledger txdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("reporting.service"),
		ledger: p.Ledger,
	}
}

func (s *Service) completed(ctx context.Context) ([]txdomain.Transaction, error) {
	ownerID, ok := ownerctx.OwnerIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidOwner
	}
	return s.ledger.ListCompleted(ctx, s.db, ownerID)
}

func (s *Service) Cashflow(ctx context.Context) ([]domain.CashflowPoint, error) {
	entries, err := s.completed(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		day := entry.CreatedAt.UTC().Format(dayFormat)
		byDay[day] = byDay[day].Add(entry.Amount)
	}

	points := make([]domain.CashflowPoint, 0, len(byDay))
	for day, total := range byDay {
		points = append(points, domain.CashflowPoint{Date: day, Total: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func (s *Service) RevenueTotal(ctx context.Context) (decimal.Decimal, error) {
	return s.totalByType(ctx, txdomain.TypeIncome)
}

func (s *Service) RevenueByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	return s.categoriesByType(ctx, txdomain.TypeIncome)
}

func (s *Service) ExpensesTotal(ctx context.Context) (decimal.Decimal, error) {
	return s.totalByType(ctx, txdomain.TypeExpense)
}

func (s *Service) ExpensesByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	return s.categoriesByType(ctx, txdomain.TypeExpense)
}

func (s *Service) ProfitTotal(ctx context.Context) (domain.ProfitSummary, error) {
	entries, err := s.completed(ctx)
	if err != nil {
		return domain.ProfitSummary{}, err
	}

	revenue := decimal.Zero
	expenses := decimal.Zero
	for _, entry := range entries {
		switch entry.Type {
		case txdomain.TypeIncome:
			revenue = revenue.Add(entry.Amount)
		case txdomain.TypeExpense:
			expenses = expenses.Add(entry.Amount)
		}
	}

	return domain.ProfitSummary{
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue.Sub(expenses),
	}, nil
}

func (s *Service) ProfitMargin(ctx context.Context) ([]domain.MarginPoint, error) {
	entries, err := s.completed(ctx)
	if err != nil {
		return nil, err
	}

	type daily struct {
		selling decimal.Decimal
		expense decimal.Decimal
	}
	byDay := make(map[string]daily)
	for _, entry := range entries {
		day := entry.CreatedAt.UTC().Format(dayFormat)
		totals := byDay[day]
		if entry.Category == txdomain.CategorySelling {
			totals.selling = totals.selling.Add(entry.Amount)
		}
		if entry.Type == txdomain.TypeExpense {
			totals.expense = totals.expense.Add(entry.Amount)
		}
		byDay[day] = totals
	}

	points := make([]domain.MarginPoint, 0, len(byDay))
	for day, totals := range byDay {
		margin := decimal.Zero
		if totals.selling.IsPositive() {
			margin = totals.selling.Sub(totals.expense).
				Div(totals.selling).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
		points = append(points, domain.MarginPoint{
			Date:    day,
			Selling: totals.selling,
			Expense: totals.expense,
			Margin:  margin,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func (s *Service) totalByType(ctx context.Context, entryType txdomain.Type) (decimal.Decimal, error) {
	entries, err := s.completed(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, entry := range entries {
		if entry.Type == entryType {
			total = total.Add(entry.Amount)
		}
	}
	return total, nil
}

// categoriesByType groups one entry type by category. Entries without
// a category are dropped from the grouping entirely.
func (s *Service) categoriesByType(ctx context.Context, entryType txdomain.Type) ([]domain.CategoryTotal, error) {
	entries, err := s.completed(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		if entry.Type != entryType || entry.Category == "" {
			continue
		}
		byCategory[entry.Category] = byCategory[entry.Category].Add(entry.Amount)
	}

	totals := make([]domain.CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, domain.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals, nil
}
