package transaction

import (
	"github.com/dukaankhata/dukaankhata/internal/transaction/repository"
	"github.com/dukaankhata/dukaankhata/internal/transaction/service"
	"go.uber.org/fx"
)

var Module = fx.Module("transaction.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
