package payment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFullPaymentLocksAmountToTotal(t *testing.T) {
	total := decimal.NewFromInt(270)

	snapshot, fields := Record(total, Input{Mode: ModeFull, Method: "Cash"}, noon)
	require.Nil(t, fields)
	require.True(t, snapshot.PaidAmount.Equal(total))
	require.Equal(t, "Cash", snapshot.Method)
	require.NotNil(t, snapshot.PaidDate)
	require.Equal(t, noon, *snapshot.PaidDate)
	require.False(t, snapshot.NoPaymentAtAll)
}

func TestFullPaymentRequiresMethod(t *testing.T) {
	snapshot, fields := Record(decimal.NewFromInt(270), Input{Mode: ModeFull}, noon)
	require.Nil(t, snapshot)
	require.Contains(t, fields, "method")
}

func TestPartialPaymentWithinBalance(t *testing.T) {
	snapshot, fields := Record(decimal.NewFromInt(270), Input{
		Mode:   ModePartial,
		Method: "Cash",
		Amount: decimal.NewFromInt(100),
	}, noon)
	require.Nil(t, fields)
	require.True(t, snapshot.PaidAmount.Equal(decimal.NewFromInt(100)))

	remaining := Remaining(decimal.NewFromInt(270), snapshot)
	require.True(t, remaining.Equal(decimal.NewFromInt(170)))
}

func TestPartialPaymentBounds(t *testing.T) {
	total := decimal.NewFromInt(270)

	_, fields := Record(total, Input{Mode: ModePartial, Method: "Cash", Amount: decimal.Zero}, noon)
	require.Contains(t, fields, "amount")

	_, fields = Record(total, Input{Mode: ModePartial, Method: "Cash", Amount: decimal.NewFromInt(-10)}, noon)
	require.Contains(t, fields, "amount")

	_, fields = Record(total, Input{Mode: ModePartial, Method: "Cash", Amount: decimal.NewFromInt(271)}, noon)
	require.Contains(t, fields, "amount")

	// Equal to the outstanding balance stays a valid partial payment.
	snapshot, fields := Record(total, Input{Mode: ModePartial, Method: "Cash", Amount: total}, noon)
	require.Nil(t, fields)
	require.True(t, snapshot.PaidAmount.Equal(total))
}

func TestPartialPaymentReportsAllFieldErrors(t *testing.T) {
	_, fields := Record(decimal.NewFromInt(270), Input{Mode: ModePartial}, noon)
	require.Contains(t, fields, "method")
	require.Contains(t, fields, "amount")
}

func TestNoPaymentClearsPriorEntry(t *testing.T) {
	// The caller had a partial amount and date entered, then toggled
	// "no payment at all": both reset.
	entered := noon.Add(-24 * time.Hour)
	snapshot, fields := Record(decimal.NewFromInt(270), Input{
		Mode:   ModeNone,
		Method: "Cash",
		Amount: decimal.NewFromInt(100),
		Date:   &entered,
	}, noon)
	require.Nil(t, fields)
	require.True(t, snapshot.NoPaymentAtAll)
	require.True(t, snapshot.PaidAmount.IsZero())
	require.Nil(t, snapshot.PaidDate)
	require.Empty(t, snapshot.Method)
}

func TestRecordReplacesRatherThanAccumulates(t *testing.T) {
	total := decimal.NewFromInt(270)

	first, _ := Record(total, Input{Mode: ModePartial, Method: "Cash", Amount: decimal.NewFromInt(100)}, noon)
	require.True(t, first.PaidAmount.Equal(decimal.NewFromInt(100)))

	second, _ := Record(total, Input{Mode: ModePartial, Method: "Cash", Amount: decimal.NewFromInt(50)}, noon)
	require.True(t, second.PaidAmount.Equal(decimal.NewFromInt(50)), "second snapshot replaces the first outright")
}
