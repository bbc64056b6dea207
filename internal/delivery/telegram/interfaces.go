package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

// Bot is the part of the Telegram client the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type ExamService interface {
	Start(ctx context.Context) (entities.Attempt, error)
	Result(a entities.Attempt) (entities.Result, error)
}

type ContactService interface {
	Phone(ctx context.Context) string
	School() string
}

type AttemptStore interface {
	Store(key string, a entities.Attempt)
	Get(key string) (entities.Attempt, bool)
	Update(key string, fn func(entities.Attempt) (entities.Attempt, error)) (entities.Attempt, error)
}
