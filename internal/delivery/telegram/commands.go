package telegram

import (
	"context"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/domain/entities"
	"github.com/hammoud/theory-exam/internal/service"
)

// startHandler greets the user with the school contact line and starts an attempt.
func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		phone := h.contactService.Phone(ctx)
		h.send(newHTMLMessage(chatID,
			formatContactLine(h.contactService.School(), phone)+"\n\n"+msgWelcome,
		))

		return h.beginAttempt(ctx, chatID)
	}
}

// examHandler replaces whatever attempt the chat had with a new one.
func (h *Handler) examHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.beginAttempt(ctx, chatID)
	}
}

func (h *Handler) beginAttempt(ctx context.Context, chatID int64) error {
	attempt, err := h.examService.Start(ctx)
	if err != nil {
		return err
	}

	h.attempts.Store(attemptKey(chatID), attempt)
	h.logger.Info("attempt started",
		zap.Int64("chat_id", chatID),
		zap.Int("questions", attempt.Total()),
	)

	return h.sendQuestion(chatID, attempt)
}

// sendQuestion sends the current question as a photo when it has an image,
// otherwise as a text message. A text too long for a caption follows the
// photo as its own message and carries the keyboard.
func (h *Handler) sendQuestion(chatID int64, attempt entities.Attempt) error {
	view, err := service.Present(attempt)
	if err != nil {
		return err
	}

	text := formatQuestion(view)
	kb := buildQuestionKeyboard(view, true)

	if view.Image != "" {
		photo := tgbotapi.NewPhoto(chatID, h.imageFile(view.Image))
		if utf8.RuneCountInString(text) <= maxCaptionLen {
			photo.Caption = text
			photo.ParseMode = tgbotapi.ModeHTML
			photo.ReplyMarkup = kb
			h.send(photo)
			return nil
		}
		h.send(photo)
	}

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
	return nil
}

// sendResults sends the score header and the review, with the retry button
// on the last message.
func (h *Handler) sendResults(ctx context.Context, chatID int64, attempt entities.Attempt) error {
	res, err := h.examService.Result(attempt)
	if err != nil {
		return err
	}

	h.logger.Info("attempt finished",
		zap.Int64("chat_id", chatID),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
		zap.Bool("passed", res.Passed),
	)

	messages := append(
		[]string{formatResultHeader(h.contactService.School(), h.contactService.Phone(ctx), res)},
		formatReview(res.Review)...,
	)

	for i, text := range messages {
		msg := newHTMLMessage(chatID, text)
		if i == len(messages)-1 {
			msg.ReplyMarkup = buildResultKeyboard()
		}
		h.send(msg)
	}

	return nil
}
