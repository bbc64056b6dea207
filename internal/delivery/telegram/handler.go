package telegram

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot            Bot
	logger         *zap.Logger
	examService    ExamService
	contactService ContactService
	attempts       AttemptStore
	imageDir       string
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	examService ExamService,
	contactService ContactService,
	attempts AttemptStore,
	imageDir string,
) *Handler {
	return &Handler{
		bot:            bot,
		logger:         logger,
		examService:    examService,
		contactService: contactService,
		attempts:       attempts,
		imageDir:       imageDir,
	}
}

// Run processes updates one at a time until ctx is cancelled, so every user
// action is fully applied before the next one is read.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgHelp))
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.startHandler())(ctx, chatID)
	case "exam":
		_ = h.withErrorHandling(h.examHandler())(ctx, chatID)
	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))
	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

// attemptKey is the storage key of the attempt owned by a chat.
func attemptKey(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

// imageFile resolves a question image reference to something Telegram can send.
func (h *Handler) imageFile(image string) tgbotapi.RequestFileData {
	lower := strings.ToLower(image)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return tgbotapi.FileURL(image)
	}
	return tgbotapi.FilePath(filepath.Join(h.imageDir, filepath.FromSlash(image)))
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

func (h *Handler) request(c tgbotapi.Chattable) {
	if _, err := h.bot.Request(c); err != nil {
		h.logger.Warn("telegram request failed",
			zap.Error(err),
		)
	}
}
