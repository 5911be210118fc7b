package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"digitaltwin-rag-be/internal/bootstrap"
	"digitaltwin-rag-be/internal/config"
	"digitaltwin-rag-be/internal/mcpserver"
	"digitaltwin-rag-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	var gormDB *gorm.DB
	if cfg.Vector.Provider == "pgvector" {
		var err error
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stdio transport: stdout belongs to the protocol, all logging goes to
	// the log file configured for the zap logger.
	srv := mcpserver.NewServer(container.TwinService, container.ProfileService)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("MCP server stopped: %v", err)
	}
}
