package customer

import (
	"github.com/dukaankhata/dukaankhata/internal/customer/repository"
	"github.com/dukaankhata/dukaankhata/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
