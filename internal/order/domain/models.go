package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Item is a line item captured by value at order creation. Name and
// price are snapshots; later catalog edits must not change historical
// invoices.
type Item struct {
	ProductID *snowflake.ID   `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Charge is an extra order charge. Negative values are discounts.
type Charge struct {
	Item  string          `json:"item"`
	Value decimal.Decimal `json:"value"`
}

// Payment is the embedded snapshot describing how (or whether) an
// order was paid. A nil snapshot on the order is distinct from an
// explicit NoPaymentAtAll.
type Payment struct {
	Method         string          `json:"method,omitempty"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	PaidDate       *time.Time      `json:"paid_date,omitempty"`
	NoPaymentAtAll bool            `json:"no_payment_at_all"`
}

// Order embeds items, charges and the payment snapshot as JSON columns.
// There is no separate line-item table.
type Order struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	OwnerID    snowflake.ID    `gorm:"not null;index" json:"-"`
	CustomerID snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	InvoiceNo  string          `gorm:"type:text" json:"invoice_no"`
	SaleDate   time.Time       `gorm:"not null" json:"sale_date"`
	DueDate    *time.Time      `json:"due_date,omitempty"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"subtotal"`
	Total      decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"total_amount"`
	Status     Status          `gorm:"type:text;not null;default:'completed'" json:"status"`
	Items      []Item          `gorm:"serializer:json;type:jsonb" json:"items"`
	Charges    []Charge        `gorm:"serializer:json;type:jsonb" json:"charges"`
	Payment    *Payment        `gorm:"serializer:json;type:jsonb" json:"payment,omitempty"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
