package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/auth"
	authdomain "github.com/dukaankhata/dukaankhata/internal/auth/domain"
	"github.com/dukaankhata/dukaankhata/internal/auth/session"
	"github.com/dukaankhata/dukaankhata/internal/config"
	"github.com/dukaankhata/dukaankhata/internal/customer"
	customerdomain "github.com/dukaankhata/dukaankhata/internal/customer/domain"
	"github.com/dukaankhata/dukaankhata/internal/migration"
	obslogger "github.com/dukaankhata/dukaankhata/internal/observability/logger"
	obsmetrics "github.com/dukaankhata/dukaankhata/internal/observability/metrics"
	"github.com/dukaankhata/dukaankhata/internal/order"
	orderdomain "github.com/dukaankhata/dukaankhata/internal/order/domain"
	"github.com/dukaankhata/dukaankhata/internal/paymentmethod"
	methoddomain "github.com/dukaankhata/dukaankhata/internal/paymentmethod/domain"
	"github.com/dukaankhata/dukaankhata/internal/product"
	productdomain "github.com/dukaankhata/dukaankhata/internal/product/domain"
	"github.com/dukaankhata/dukaankhata/internal/providers/email"
	"github.com/dukaankhata/dukaankhata/internal/providers/pdf"
	"github.com/dukaankhata/dukaankhata/internal/reporting"
	reportingdomain "github.com/dukaankhata/dukaankhata/internal/reporting/domain"
	"github.com/dukaankhata/dukaankhata/internal/transaction"
	txdomain "github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	email.Module,
	pdf.Module,
	auth.Module,
	customer.Module,
	product.Module,
	paymentmethod.Module,
	transaction.Module,
	order.Module,
	reporting.Module,
	migration.Module,
	fx.Provide(registerGin),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware())
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", httpMetrics.Handler())

	return r
}

func registerGin(httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, s *Server) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: s.Engine(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	db       *gorm.DB
	authsvc  authdomain.Service
	sessions *session.Manager
	genID    *snowflake.Node

	customerSvc      customerdomain.Service
	productSvc       productdomain.Service
	orderSvc         orderdomain.Service
	transactionSvc   txdomain.Service
	paymentMethodSvc methoddomain.Service
	reportingSvc     reportingdomain.Service

	invoices *pdf.Renderer
}

type ServerParams struct {
	fx.In

	Gin      *gin.Engine
	Cfg      config.Config
	DB       *gorm.DB
	Authsvc  authdomain.Service
	Sessions *session.Manager
	GenID    *snowflake.Node

	CustomerSvc      customerdomain.Service
	ProductSvc       productdomain.Service
	OrderSvc         orderdomain.Service
	TransactionSvc   txdomain.Service
	PaymentMethodSvc methoddomain.Service
	ReportingSvc     reportingdomain.Service

	Invoices *pdf.Renderer
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:           p.Gin,
		cfg:              p.Cfg,
		db:               p.DB,
		authsvc:          p.Authsvc,
		sessions:         p.Sessions,
		genID:            p.GenID,
		customerSvc:      p.CustomerSvc,
		productSvc:       p.ProductSvc,
		orderSvc:         p.OrderSvc,
		transactionSvc:   p.TransactionSvc,
		paymentMethodSvc: p.PaymentMethodSvc,
		reportingSvc:     p.ReportingSvc,
		invoices:         p.Invoices,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerReportingRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	authGroup := s.engine.Group("/api/auth")

	authGroup.POST("/signup", s.Signup)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/logout", s.Logout)
	authGroup.GET("/me", s.Me)
	authGroup.POST("/change-password", s.AuthRequired(), s.ChangePassword)
	authGroup.POST("/forgot-password", s.ForgotPassword)
	authGroup.GET("/reset-password", s.VerifyResetToken)
	authGroup.POST("/reset-password", s.ResetPassword)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// Global lookup, no auth.
	api.GET("/payment-methods", s.ListPaymentMethods)

	api.Use(s.AuthRequired())

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	// -------- Orders --------
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/:id/invoice.pdf", s.RenderOrderInvoice)

	// -------- Transactions --------
	api.GET("/transactions", s.ListTransactions)
	api.POST("/transactions", s.CreateTransaction)
	api.PUT("/transactions/:id", s.UpdateTransaction)
	api.DELETE("/transactions/:id", s.DeleteTransaction)

	// -------- Configuration --------
	api.GET("/configuration/assets", s.GetConfigurationAssets)
	api.POST("/configuration/assets", s.UpdateConfigurationAssets)
}

func (s *Server) registerReportingRoutes() {
	admin := s.engine.Group("/api/admin", s.AuthRequired())

	admin.GET("/cashflow", s.GetCashflow)
	admin.GET("/revenue/total", s.GetRevenueTotal)
	admin.GET("/revenue/category", s.GetRevenueByCategory)
	admin.GET("/expenses/total", s.GetExpensesTotal)
	admin.GET("/expenses/category", s.GetExpensesByCategory)
	admin.GET("/profit/total", s.GetProfitTotal)
	admin.GET("/profit/margin", s.GetProfitMargin)
}
