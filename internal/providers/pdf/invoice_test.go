package pdf

import (
	"context"
	"io"
	"testing"
	"time"

	authdomain "github.com/dukaankhata/dukaankhata/internal/auth/domain"
	orderdomain "github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func sampleView() orderdomain.OrderView {
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	return orderdomain.OrderView{
		Order: orderdomain.Order{
			InvoiceNo: "INV-001",
			SaleDate:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			DueDate:   &due,
			Subtotal:  decimal.NewFromInt(250),
			Total:     decimal.NewFromInt(270),
			Status:    orderdomain.StatusCompleted,
			Items: []orderdomain.Item{
				{Name: "Tea", Quantity: 5, Price: decimal.NewFromInt(50)},
			},
			Charges: []orderdomain.Charge{
				{Item: "Delivery", Value: decimal.NewFromInt(20)},
			},
			Payment: &orderdomain.Payment{
				Method:     "Cash",
				PaidAmount: decimal.NewFromInt(100),
			},
		},
		Customer: orderdomain.CustomerRef{Name: "Asha"},
	}
}

func TestFromOrderComputesBalance(t *testing.T) {
	owner := &authdomain.User{
		Email:       "owner@example.com",
		DisplayName: "Owner",
		CompanyName: "Asha Traders",
	}

	data := FromOrder(owner, sampleView())

	require.Equal(t, "INV-001", data.InvoiceNumber)
	require.Equal(t, "Asha Traders", data.CompanyName)
	require.Equal(t, "15 Jun 2024", data.SaleDate)
	require.Equal(t, "01 Jul 2024", data.DueDate)
	require.Equal(t, "270.00", data.Total)
	require.Equal(t, "100.00", data.Paid)
	require.Equal(t, "170.00", data.Balance)
	require.Equal(t, "Cash", data.Method)
	require.Len(t, data.Items, 1)
	require.Equal(t, "250.00", data.Items[0].Amount)
}

func TestFromOrderNoPaymentShowsFullBalance(t *testing.T) {
	view := sampleView()
	view.Payment = &orderdomain.Payment{NoPaymentAtAll: true}

	data := FromOrder(nil, view)

	require.Equal(t, "0.00", data.Paid)
	require.Equal(t, "270.00", data.Balance)
	require.Empty(t, data.Method)
}

func TestDecodeDataURL(t *testing.T) {
	payload, ext, ok := decodeDataURL(onePixelPNG)
	require.True(t, ok)
	require.Equal(t, extension.Png, ext)
	require.NotEmpty(t, payload)

	_, _, ok = decodeDataURL("https://example.com/logo.png")
	require.False(t, ok)

	_, _, ok = decodeDataURL("data:image/png;base64,!!!not-base64!!!")
	require.False(t, ok)

	_, _, ok = decodeDataURL("data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=")
	require.False(t, ok)
}

func TestRenderInvoiceProducesPDF(t *testing.T) {
	data := FromOrder(&authdomain.User{CompanyName: "Asha Traders"}, sampleView())

	reader, err := NewRenderer().RenderInvoice(context.Background(), data)
	require.NoError(t, err)

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.Equal(t, "%PDF", string(raw[:4]))
}
