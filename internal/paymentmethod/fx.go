package paymentmethod

import (
	"github.com/dukaankhata/dukaankhata/internal/paymentmethod/repository"
	"github.com/dukaankhata/dukaankhata/internal/paymentmethod/service"
	"go.uber.org/fx"
)

var Module = fx.Module("paymentmethod.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
