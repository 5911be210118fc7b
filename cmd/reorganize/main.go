package main

import (
	"context"
	"log"

	"digitaltwin-rag-be/internal/bootstrap"
	"digitaltwin-rag-be/internal/config"
	"digitaltwin-rag-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// Migrates vectors written under historical ids and namespace labels into
// the canonical layout, then rebuilds everything from the source documents.
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
	ctx := context.Background()

	color.Cyan("Reorganizing vectors into clean namespaces...")

	res, err := container.ProfileService.Reorganize(ctx)
	if err != nil {
		color.Red("Reorganize failed: %v", err)
		return
	}

	color.Green("Rebuilt %d profile chunks and %d food chunks (%d upserted)", res.ProfileChunks, res.FoodChunks, res.Upserted)
	if res.Verified {
		color.Green("Verification fetch succeeded")
	} else {
		color.Yellow("Verification fetch failed, check store connectivity")
	}
}
