package server

import (
	"net/http"

	reportingdomain "github.com/dukaankhata/dukaankhata/internal/reporting/domain"
	"github.com/gin-gonic/gin"
)

func isReportingValidationError(err error) bool {
	return err == reportingdomain.ErrInvalidOwner
}

func (s *Server) GetCashflow(c *gin.Context) {
	resp, err := s.reportingSvc.Cashflow(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetRevenueTotal(c *gin.Context) {
	resp, err := s.reportingSvc.RevenueTotal(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"total": resp}})
}

func (s *Server) GetRevenueByCategory(c *gin.Context) {
	resp, err := s.reportingSvc.RevenueByCategory(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetExpensesTotal(c *gin.Context) {
	resp, err := s.reportingSvc.ExpensesTotal(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"total": resp}})
}

func (s *Server) GetExpensesByCategory(c *gin.Context) {
	resp, err := s.reportingSvc.ExpensesByCategory(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProfitTotal(c *gin.Context) {
	resp, err := s.reportingSvc.ProfitTotal(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProfitMargin(c *gin.Context) {
	resp, err := s.reportingSvc.ProfitMargin(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
