package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// CategorySelling is the reserved category linking a ledger entry to an
// order's sale proceeds.
const CategorySelling = "selling"

// Transaction is a ledger entry. The ledger is the sole input to every
// reporting aggregate.
type Transaction struct {
	ID              snowflake.ID    `gorm:"primaryKey" json:"id"`
	OwnerID         snowflake.ID    `gorm:"not null;index" json:"-"`
	OrderID         *snowflake.ID   `gorm:"index" json:"order_id,omitempty"`
	PaymentMethodID *snowflake.ID   `json:"payment_method_id,omitempty"`
	Amount          decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	Type            Type            `gorm:"type:text;not null" json:"type"`
	Category        string          `gorm:"type:text" json:"category,omitempty"`
	Status          Status          `gorm:"type:text;not null;default:'completed'" json:"status"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
