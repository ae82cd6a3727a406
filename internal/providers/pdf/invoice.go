package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	authdomain "github.com/dukaankhata/dukaankhata/internal/auth/domain"
	orderdomain "github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

type InvoiceData struct {
	CompanyName    string
	CompanyLogo    string
	SignatureImage string
	SellerName     string
	SellerEmail    string

	InvoiceNumber string
	SaleDate      string
	DueDate       string
	Status        string

	CustomerName string

	Items   []InvoiceItem
	Charges []InvoiceCharge

	Subtotal string
	Total    string
	Paid     string
	Balance  string
	Method   string
}

type InvoiceItem struct {
	Description string
	Qty         int
	UnitPrice   string
	Amount      string
}

type InvoiceCharge struct {
	Label string
	Value string
}

const dateLayout = "02 Jan 2006"

// FromOrder flattens an order and the seller's profile into the
// render-ready invoice data.
func FromOrder(owner *authdomain.User, view orderdomain.OrderView) InvoiceData {
	data := InvoiceData{
		InvoiceNumber: view.InvoiceNo,
		SaleDate:      view.SaleDate.Format(dateLayout),
		Status:        string(view.Status),
		CustomerName:  view.Customer.Name,
		Subtotal:      view.Subtotal.StringFixed(2),
		Total:         view.Total.StringFixed(2),
	}
	if view.DueDate != nil {
		data.DueDate = view.DueDate.Format(dateLayout)
	}

	if owner != nil {
		data.CompanyName = owner.CompanyName
		data.CompanyLogo = owner.CompanyLogo
		data.SignatureImage = owner.SignatureImage
		data.SellerName = owner.DisplayName
		data.SellerEmail = owner.Email
	}
	if data.CompanyName == "" {
		data.CompanyName = data.SellerName
	}

	for _, item := range view.Items {
		amount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		data.Items = append(data.Items, InvoiceItem{
			Description: item.Name,
			Qty:         item.Quantity,
			UnitPrice:   item.Price.StringFixed(2),
			Amount:      amount.StringFixed(2),
		})
	}
	for _, charge := range view.Charges {
		data.Charges = append(data.Charges, InvoiceCharge{
			Label: charge.Item,
			Value: charge.Value.StringFixed(2),
		})
	}

	paid := decimal.Zero
	if view.Payment != nil && !view.Payment.NoPaymentAtAll {
		paid = view.Payment.PaidAmount
		data.Method = view.Payment.Method
	}
	data.Paid = paid.StringFixed(2)
	data.Balance = view.Total.Sub(paid).StringFixed(2)

	return data
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	_ = ctx

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	if logo, ext, ok := decodeDataURL(data.CompanyLogo); ok {
		m.AddRow(30,
			image.NewFromBytesCol(3, logo, ext, props.Rect{
				Center:  false,
				Percent: 80,
			}),
			col.New(9),
		)
	}

	m.AddRow(10,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+data.InvoiceNumber, props.Text{Top: 0}),
			text.New("Sale date: "+data.SaleDate, props.Text{Top: 4}),
			text.New("Due date: "+data.DueDate, props.Text{Top: 8}),
			text.New("Status: "+data.Status, props.Text{Top: 12}),
		),
		col.New(6),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New(data.CompanyName, props.Text{Style: fontstyle.Bold}),
			text.New(data.SellerName, props.Text{Top: 5}),
			text.New(data.SellerEmail, props.Text{Top: 9}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(data.CustomerName, props.Text{Top: 5}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Qty), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitPrice, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	for _, charge := range data.Charges {
		m.AddRow(8,
			text.NewCol(10, charge.Label, props.Text{Size: 9}),
			text.NewCol(2, charge.Value, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, data.Subtotal, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, data.Total, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Paid", props.Text{Size: 9}),
		text.NewCol(2, data.Paid, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Balance due", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, data.Balance, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if data.Method != "" {
		m.AddRow(8,
			text.NewCol(12, "Paid via "+data.Method, props.Text{Size: 9}),
		)
	}

	if signature, ext, ok := decodeDataURL(data.SignatureImage); ok {
		m.AddRow(25,
			col.New(8),
			image.NewFromBytesCol(4, signature, ext, props.Rect{
				Center:  false,
				Percent: 70,
			}),
		)
		m.AddRow(6,
			col.New(8),
			text.NewCol(4, "Authorized signature", props.Text{Size: 8}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
