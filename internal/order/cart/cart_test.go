package cart

import (
	"math/rand"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSubtotalAndTotal(t *testing.T) {
	// Items 100x2 + 50x1 with a 20 delivery charge.
	c := New()
	c.Add(1, "Sugar 1kg", decimal.NewFromInt(100))
	c.Add(1, "Sugar 1kg", decimal.NewFromInt(100))
	c.Add(2, "Tea 250g", decimal.NewFromInt(50))
	c.AddCharge("delivery", decimal.NewFromInt(20))

	require.True(t, c.Subtotal().Equal(decimal.NewFromInt(250)), "subtotal = %s", c.Subtotal())
	require.True(t, c.Total().Equal(decimal.NewFromInt(270)), "total = %s", c.Total())
}

func TestAddIncrementsExistingLine(t *testing.T) {
	c := New()
	c.Add(1, "Sugar 1kg", decimal.NewFromInt(100))
	c.Add(1, "Sugar 1kg", decimal.NewFromInt(100))

	require.Len(t, c.Lines(), 1)
	require.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestSetQuantityRejectsNonPositive(t *testing.T) {
	c := New()
	c.Add(1, "Sugar 1kg", decimal.NewFromInt(100))

	require.ErrorIs(t, c.SetQuantity(1, 0), ErrInvalidQuantity)
	require.ErrorIs(t, c.SetQuantity(1, -3), ErrInvalidQuantity)
	require.NoError(t, c.SetQuantity(1, 5))
	require.Equal(t, 5, c.Lines()[0].Quantity)
}

func TestSetQuantityUnknownLine(t *testing.T) {
	c := New()
	require.ErrorIs(t, c.SetQuantity(99, 2), ErrLineNotFound)
}

func TestRemoveLine(t *testing.T) {
	c := New()
	c.Add(1, "Sugar 1kg", decimal.NewFromInt(100))
	c.Add(2, "Tea 250g", decimal.NewFromInt(50))

	c.Remove(1)

	require.Len(t, c.Lines(), 1)
	require.Equal(t, "Tea 250g", c.Lines()[0].Name)
}

func TestNegativeChargeIsDiscount(t *testing.T) {
	c := New()
	c.Add(1, "Sugar 1kg", decimal.NewFromInt(100))
	c.AddCharge("discount", decimal.NewFromInt(-30))

	require.True(t, c.Total().Equal(decimal.NewFromInt(70)))
}

func TestTotalEqualsSubtotalPlusChargesProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		items := make([]domain.Item, 0)
		for i := 0; i < 1+rng.Intn(8); i++ {
			id := snowflake.ID(i + 1)
			items = append(items, domain.Item{
				ProductID: &id,
				Quantity:  1 + rng.Intn(10),
				Price:     decimal.NewFromFloat(float64(rng.Intn(100000)) / 100),
			})
		}
		charges := make([]domain.Charge, 0)
		for j := 0; j < rng.Intn(4); j++ {
			charges = append(charges, domain.Charge{
				Item:  "charge",
				Value: decimal.NewFromFloat(float64(rng.Intn(20000)-10000) / 100),
			})
		}

		chargeSum := decimal.Zero
		for _, charge := range charges {
			chargeSum = chargeSum.Add(charge.Value)
		}

		require.True(t, Total(items, charges).Equal(Subtotal(items).Add(chargeSum)),
			"trial %d: total must equal subtotal plus charges", trial)
	}
}
