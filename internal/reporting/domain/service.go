package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// CashflowPoint is one calendar day's combined completed amount.
// Income and expenses are summed together without sign inversion;
// the day total is gross movement, not net position.
type CashflowPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type ProfitSummary struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MarginPoint is one calendar day's selling revenue, expenses and
// profit margin percentage (two decimals; zero when nothing was sold).
type MarginPoint struct {
	Date    string          `json:"date"`
	Selling decimal.Decimal `json:"selling"`
	Expense decimal.Decimal `json:"expense"`
	Margin  decimal.Decimal `json:"margin"`
}

type Service interface {
	Cashflow(context.Context) ([]CashflowPoint, error)
	RevenueTotal(context.Context) (decimal.Decimal, error)
	RevenueByCategory(context.Context) ([]CategoryTotal, error)
	ExpensesTotal(context.Context) (decimal.Decimal, error)
	ExpensesByCategory(context.Context) ([]CategoryTotal, error)
	ProfitTotal(context.Context) (ProfitSummary, error)
	ProfitMargin(context.Context) ([]MarginPoint, error)
}

var ErrInvalidOwner = errors.New("invalid_owner")
