package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/app"
	"github.com/hammoud/theory-exam/internal/config"
	"github.com/hammoud/theory-exam/internal/delivery/telegram"
	"github.com/hammoud/theory-exam/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Bot(); err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "البداية",
		},
		{
			Command:     "exam",
			Description: "امتحان جديد",
		},
		{
			Command:     "help",
			Description: "المساعدة",
		},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	go a.Sweeper.Start(ctx)

	handler := telegram.NewHandler(
		bot,
		lg,
		a.Exam,
		a.Contact,
		a.Attempts,
		cfg.Questions.ImageDir,
	)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("telegram handler stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
