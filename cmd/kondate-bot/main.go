package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"kondate/internal/app"
	"kondate/internal/config"
	"kondate/internal/database"
	"kondate/internal/logging"
	"kondate/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Telegram.BotToken == "" {
		fmt.Println("KONDATE_TELEGRAM_TOKEN is required for the bot")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	application := app.New(db, nil, logger)

	bot, err := telegram.NewBot(cfg.Telegram.BotToken, cfg.Telegram.AllowedChats, application, logger)
	if err != nil {
		logger.Fatal("failed to start bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("bot polling for updates")
	bot.Run(ctx)
	logger.Info("bot stopped")
}
