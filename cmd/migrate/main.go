// Command migrate creates the DynamoDB tables and indexes the API expects.
package main

import (
	"context"
	"log"
	"time"

	"coatingshop/internal/adapter/persistence/repository"
	"coatingshop/internal/config"
	"coatingshop/internal/infrastructure/database"
	"coatingshop/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		logger.L().Fatal("dynamodb connection failed", zap.Error(err))
	}

	specs := []database.TableSpec{
		{Name: cfg.Tables.Quotes, IndexName: repository.QuotesUserIDIndex, IndexKeyAttr: "user_id"},
		{Name: cfg.Tables.Payments, IndexName: repository.PaymentsQuoteIDIndex, IndexKeyAttr: "quote_id"},
	}
	if err := database.EnsureTables(ctx, ddb, specs, logger.L()); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}
	logger.L().Info("tables ready", zap.String("quotes", cfg.Tables.Quotes), zap.String("payments", cfg.Tables.Payments))
}
