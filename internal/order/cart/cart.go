// Package cart assembles an in-memory order before checkout. Nothing
// here touches storage; the service persists the result.
package cart

import (
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrLineNotFound    = errors.New("line not found")
)

// Cart holds the selected products and extra charges for one order.
type Cart struct {
	lines   []domain.Item
	charges []domain.Charge
}

func New() *Cart {
	return &Cart{}
}

// Add puts a product into the cart. Adding a product that is already
// present increments its quantity instead of duplicating the line.
func (c *Cart) Add(productID snowflake.ID, name string, price decimal.Decimal) {
	for i := range c.lines {
		if c.lines[i].ProductID != nil && *c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	id := productID
	c.lines = append(c.lines, domain.Item{
		ProductID: &id,
		Name:      name,
		Quantity:  1,
		Price:     price,
	})
}

// SetQuantity overrides a line's quantity. Zero or negative quantities
// are rejected; callers remove the line instead.
func (c *Cart) SetQuantity(productID snowflake.ID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID != nil && *c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove drops a line from the cart.
func (c *Cart) Remove(productID snowflake.ID) {
	for i := range c.lines {
		if c.lines[i].ProductID != nil && *c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// AddCharge appends an extra charge. A negative value is a discount.
func (c *Cart) AddCharge(label string, value decimal.Decimal) {
	c.charges = append(c.charges, domain.Charge{Item: label, Value: value})
}

func (c *Cart) Lines() []domain.Item {
	return c.lines
}

func (c *Cart) Charges() []domain.Charge {
	return c.charges
}

func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.lines)
}

func (c *Cart) Total() decimal.Decimal {
	return Total(c.lines, c.charges)
}

// Subtotal is the sum of quantity times unit price over all lines.
func Subtotal(items []domain.Item) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// Total is the subtotal plus the sum of all charges.
func Total(items []domain.Item, charges []domain.Charge) decimal.Decimal {
	total := Subtotal(items)
	for _, charge := range charges {
		total = total.Add(charge.Value)
	}
	return total
}
