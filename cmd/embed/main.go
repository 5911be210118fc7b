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

	color.Cyan("Embedding knowledge base from %s and %s", cfg.Profile.ProfilePath, cfg.Profile.FoodsPath)

	res, err := container.ProfileService.Rebuild(ctx)
	if err != nil {
		color.Red("Embed failed: %v", err)
		return
	}

	color.Green("Profile chunks: %d", res.ProfileChunks)
	color.Green("Food chunks:    %d", res.FoodChunks)
	color.Green("Upserted:       %d", res.Upserted)
	if res.Verified {
		color.Green("Verification fetch succeeded")
	} else {
		color.Yellow("Verification fetch failed, check store connectivity")
	}
}
