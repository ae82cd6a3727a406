package auth

import (
	"github.com/dukaankhata/dukaankhata/internal/auth/repository"
	"github.com/dukaankhata/dukaankhata/internal/auth/service"
	"github.com/dukaankhata/dukaankhata/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.ProvideUserRepository),
	fx.Provide(repository.ProvideSessionRepository),
	fx.Provide(session.NewManager),
	fx.Provide(service.New),
)
