package server

import (
	"net/http"
	"strings"
	"time"

	txdomain "github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	PaymentMethodID string          `json:"payment_method_id"`
	PaymentDate     *time.Time      `json:"payment_date"`
}

type updateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type"`
	Category    *string          `json:"category"`
	Status      *string          `json:"status"`
	Description *string          `json:"description"`
	PaymentDate *time.Time       `json:"payment_date"`
}

func (s *Server) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.transactionSvc.Create(c.Request.Context(), txdomain.CreateTransactionRequest{
		Amount:          req.Amount,
		Type:            strings.TrimSpace(req.Type),
		Category:        strings.TrimSpace(req.Category),
		Status:          strings.TrimSpace(req.Status),
		Description:     strings.TrimSpace(req.Description),
		PaymentMethodID: strings.TrimSpace(req.PaymentMethodID),
		PaymentDate:     req.PaymentDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListTransactions(c *gin.Context) {
	var query struct {
		Page          int    `form:"page"`
		Limit         int    `form:"limit"`
		SortColumn    string `form:"sortColumn"`
		SortDirection string `form:"sortDirection"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.transactionSvc.List(c.Request.Context(), txdomain.ListTransactionRequest{
		Page:          query.Page,
		Limit:         query.Limit,
		SortColumn:    strings.TrimSpace(query.SortColumn),
		SortDirection: strings.TrimSpace(query.SortDirection),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateTransaction(c *gin.Context) {
	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.transactionSvc.Update(c.Request.Context(), txdomain.UpdateTransactionRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Status:      req.Status,
		Description: req.Description,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isTransactionValidationError(err error) bool {
	switch err {
	case txdomain.ErrInvalidOwner,
		txdomain.ErrInvalidAmount,
		txdomain.ErrInvalidType,
		txdomain.ErrInvalidStatus,
		txdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func (s *Server) DeleteTransaction(c *gin.Context) {
	if err := s.transactionSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
