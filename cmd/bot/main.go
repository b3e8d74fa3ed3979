package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kevfromglasgow/quiz/internal/config"
	"github.com/kevfromglasgow/quiz/internal/delivery/telegram"
	"github.com/kevfromglasgow/quiz/internal/domain/entities"
	"github.com/kevfromglasgow/quiz/internal/logger"
	"github.com/kevfromglasgow/quiz/internal/service"
	"github.com/kevfromglasgow/quiz/internal/storage"
	"github.com/kevfromglasgow/quiz/internal/trivia"
)

func main() {
	// Local development keeps the token in a .env file; a missing file
	// is fine in any other environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Welcome message",
		},
		{
			Command:     "quiz",
			Description: "Set up and start a new quiz",
		},
		{
			Command:     "cancel",
			Description: "Abandon the current quiz",
		},
		{
			Command:     "help",
			Description: "List available commands",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	triviaClient := trivia.NewClient(cfg.Trivia.BaseURL, cfg.Trivia.Timeout)
	quizService := service.NewQuizService(triviaClient, service.NewNormalizer())

	handler := telegram.NewHandler(
		bot,
		zl,
		quizService,
		storage.NewSessionStore(),
		storage.NewSetupStore(),
		telegram.Defaults{
			Difficulty: entities.ParseDifficulty(cfg.Quiz.DefaultDifficulty),
			Count:      entities.ClampQuestionCount(cfg.Quiz.DefaultCount),
		},
	)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
