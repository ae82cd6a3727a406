package order

import (
	"github.com/dukaankhata/dukaankhata/internal/order/repository"
	"github.com/dukaankhata/dukaankhata/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
