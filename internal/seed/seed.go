package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/paymentmethod/domain"
	"github.com/dukaankhata/dukaankhata/pkg/db"
	"gorm.io/gorm"
)

// DefaultPaymentMethods is the global lookup list every tenant shares.
var DefaultPaymentMethods = []string{
	"Cash",
	"Bank Transfer",
	"Card",
	"Mobile Wallet",
}

// EnsurePaymentMethods inserts any missing default payment methods.
// Safe to run on every boot; existing rows are left untouched.
func EnsurePaymentMethods(ctx context.Context, conn *gorm.DB, node *snowflake.Node, repo domain.Repository) error {
	for _, name := range DefaultPaymentMethods {
		existing, err := repo.FindByName(ctx, conn, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		method := domain.PaymentMethod{
			ID:   node.Generate(),
			Name: name,
		}
		if err := repo.Insert(ctx, conn, &method); err != nil {
			// Concurrent boots can race on the unique name index.
			if db.IsDuplicateKeyErr(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
	}
	return nil
}
