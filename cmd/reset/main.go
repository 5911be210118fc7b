package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

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

	info, err := container.Store.Info(ctx)
	if err != nil {
		color.Red("Cannot reach vector store: %v", err)
		return
	}

	color.Yellow("This will delete ALL %d vectors from the %s store.", info.VectorCount, cfg.Vector.Provider)
	fmt.Print("Type 'yes' to confirm deletion: ")

	reader := bufio.NewReader(os.Stdin)
	confirm, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(confirm)) != "yes" {
		color.Cyan("Aborted, nothing deleted.")
		return
	}

	if err := container.Store.Reset(ctx); err != nil {
		color.Red("Reset failed: %v", err)
		return
	}

	color.Green("Vector store reset complete.")
}
