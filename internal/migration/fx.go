package migration

import (
	"context"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/dukaankhata/dukaankhata/internal/auth/domain"
	"github.com/dukaankhata/dukaankhata/internal/config"
	customerdomain "github.com/dukaankhata/dukaankhata/internal/customer/domain"
	orderdomain "github.com/dukaankhata/dukaankhata/internal/order/domain"
	methoddomain "github.com/dukaankhata/dukaankhata/internal/paymentmethod/domain"
	productdomain "github.com/dukaankhata/dukaankhata/internal/product/domain"
	"github.com/dukaankhata/dukaankhata/internal/seed"
	txdomain "github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config     config.Config
	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	MethodRepo methoddomain.Repository
}

func run(p Params) error {
	if p.Config.DBType == "postgres" {
		sqlDB, err := p.DB.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
	} else {
		// Non-postgres databases (sqlite for local development) use the
		// model definitions directly instead of the SQL migrations.
		err := p.DB.AutoMigrate(
			&authdomain.User{},
			&authdomain.Session{},
			&customerdomain.Customer{},
			&productdomain.Product{},
			&orderdomain.Order{},
			&txdomain.Transaction{},
			&methoddomain.PaymentMethod{},
		)
		if err != nil {
			return err
		}
	}

	if err := seed.EnsurePaymentMethods(context.Background(), p.DB, p.GenID, p.MethodRepo); err != nil {
		return err
	}

	p.Log.Info("database schema ready", zap.String("type", p.Config.DBType))
	return nil
}

var Module = fx.Module("migration",
	fx.Invoke(run),
)
