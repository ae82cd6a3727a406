package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/config"
	"github.com/dukaankhata/dukaankhata/internal/observability"
	"github.com/dukaankhata/dukaankhata/internal/server"
	"github.com/dukaankhata/dukaankhata/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
