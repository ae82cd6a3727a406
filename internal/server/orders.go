package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	orderdomain "github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/dukaankhata/dukaankhata/internal/providers/pdf"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type orderItemRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type orderChargeRequest struct {
	Item  string          `json:"item"`
	Value decimal.Decimal `json:"value"`
}

type orderPaymentRequest struct {
	Method         string          `json:"method"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	PaidDate       *time.Time      `json:"paid_date"`
	NoPaymentAtAll bool            `json:"no_payment_at_all"`
}

type createOrderRequest struct {
	CustomerID string               `json:"customer_id"`
	Items      []orderItemRequest   `json:"items"`
	Charges    []orderChargeRequest `json:"charges"`
	Payment    *orderPaymentRequest `json:"payment"`
	InvoiceNo  string               `json:"invoice_no"`
	SaleDate   *time.Time           `json:"sale_date"`
	DueDate    *time.Time           `json:"due_date"`
}

type updateOrderRequest struct {
	InvoiceNo *string          `json:"invoice_no"`
	Status    *string          `json:"status"`
	DueDate   *time.Time       `json:"due_date"`
	Total     *decimal.Decimal `json:"total_amount"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	items := make([]orderdomain.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderdomain.ItemRequest{
			ProductID: strings.TrimSpace(item.ProductID),
			Name:      strings.TrimSpace(item.Name),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	charges := make([]orderdomain.ChargeRequest, 0, len(req.Charges))
	for _, charge := range req.Charges {
		charges = append(charges, orderdomain.ChargeRequest{
			Item:  strings.TrimSpace(charge.Item),
			Value: charge.Value,
		})
	}

	var payment *orderdomain.PaymentRequest
	if req.Payment != nil {
		payment = &orderdomain.PaymentRequest{
			Method:         strings.TrimSpace(req.Payment.Method),
			PaidAmount:     req.Payment.PaidAmount,
			PaidDate:       req.Payment.PaidDate,
			NoPaymentAtAll: req.Payment.NoPaymentAtAll,
		}
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateOrderRequest{
		CustomerID: strings.TrimSpace(req.CustomerID),
		Items:      items,
		Charges:    charges,
		Payment:    payment,
		InvoiceNo:  strings.TrimSpace(req.InvoiceNo),
		SaleDate:   req.SaleDate,
		DueDate:    req.DueDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListOrders(c *gin.Context) {
	resp, err := s.orderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	resp, err := s.orderSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateOrder(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Update(c.Request.Context(), orderdomain.UpdateOrderRequest{
		ID:        strings.TrimSpace(c.Param("id")),
		InvoiceNo: req.InvoiceNo,
		Status:    req.Status,
		DueDate:   req.DueDate,
		Total:     req.Total,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteOrder(c *gin.Context) {
	if err := s.orderSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isOrderValidationError(err error) bool {
	switch err {
	case orderdomain.ErrInvalidOwner,
		orderdomain.ErrInvalidCustomer,
		orderdomain.ErrMissingItems,
		orderdomain.ErrInvalidItem,
		orderdomain.ErrInvalidStatus,
		orderdomain.ErrTotalMismatch,
		orderdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func (s *Server) RenderOrderInvoice(c *gin.Context) {
	view, err := s.orderSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	owner, err := s.authsvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	reader, err := s.invoices.RenderInvoice(c.Request.Context(), pdf.FromOrder(owner, view))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	name := view.InvoiceNo
	if name == "" {
		name = view.ID.String()
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "invoice-"+name+".pdf"))
	c.Data(http.StatusOK, "application/pdf", raw)
}
