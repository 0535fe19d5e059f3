package main

import (
	"log"

	"coatingshop/internal/adapter/http/routes"
	"coatingshop/internal/config"
	"coatingshop/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Coating Shop Quote API
// @version         1.0
// @description     Quote builder, quote lifecycle and contact relay for a powder-coating shop.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.L().Warn("ignoring LOG_LEVEL", zap.String("value", cfg.LogLevel), zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(cfg, logger.L()); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
