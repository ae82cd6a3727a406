package product

import (
	"github.com/dukaankhata/dukaankhata/internal/product/repository"
	"github.com/dukaankhata/dukaankhata/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
