package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/biggame27/stock-checker/internal/app/config"
	"github.com/biggame27/stock-checker/internal/app/di"
	"github.com/biggame27/stock-checker/internal/app/router"
	"github.com/biggame27/stock-checker/internal/platform/logger"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format))
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// 外部API
	market := di.NewMarket(cfg.YahooConfig())

	// Usecase / Handler
	handlers, err := di.NewHandlers(market, cfg.Server.Title, cfg.Location())
	if err != nil {
		slog.Error("failed to build handlers", "error", err)
		os.Exit(1)
	}

	// ルータ生成
	r := router.NewRouter(handlers, cfg.Server.CORSAllowOrigins)

	slog.Info("starting server", "port", cfg.Server.Port, "yahoo_base_url", cfg.YahooConfig().BaseURL)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
