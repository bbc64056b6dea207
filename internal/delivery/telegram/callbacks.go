package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/domain/entities"
	"github.com/hammoud/theory-exam/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb, "")
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var err error
	switch data.Action {
	case actionSelect:
		err = h.handleSelect(cb, data)
	case actionConfirm:
		err = h.handleConfirm(cb, data)
	case actionNext:
		err = h.handleNext(ctx, cb, data)
	case actionRetry:
		h.answerCallback(cb, "")
		_ = h.withErrorHandling(h.examHandler())(ctx, chatID)
		return
	default:
		err = ErrBadCallback
	}

	if err == nil {
		// Remove the user's "clock".
		h.answerCallback(cb, "")
		return
	}

	notice := callbackNotice(err)
	if notice == "" {
		h.logger.Error("callback failed",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		notice = msgInternalError
	} else {
		h.logger.Debug("callback rejected",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
	}
	h.answerCallback(cb, notice)
}

// atPosition wraps a transition so it only applies to the question the
// pressed button was rendered for.
func atPosition(position int, next func(entities.Attempt) (entities.Attempt, error)) func(entities.Attempt) (entities.Attempt, error) {
	return func(a entities.Attempt) (entities.Attempt, error) {
		if a.Finished {
			return a, service.ErrAttemptFinished
		}
		if a.Position != position {
			return a, errStalePosition
		}
		return next(a)
	}
}

func (h *Handler) handleSelect(cb *tgbotapi.CallbackQuery, data callbackData) error {
	position, err := data.intParam(0)
	if err != nil {
		return err
	}
	idx, err := data.intParam(1)
	if err != nil {
		return err
	}

	attempt, err := h.attempts.Update(attemptKey(cb.Message.Chat.ID), atPosition(position, func(a entities.Attempt) (entities.Attempt, error) {
		return service.Select(a, idx)
	}))
	if err != nil {
		return err
	}

	return h.refreshQuestion(cb, attempt, true)
}

func (h *Handler) handleConfirm(cb *tgbotapi.CallbackQuery, data callbackData) error {
	position, err := data.intParam(0)
	if err != nil {
		return err
	}

	attempt, err := h.attempts.Update(attemptKey(cb.Message.Chat.ID), atPosition(position, service.Confirm))
	if err != nil {
		return err
	}

	return h.refreshQuestion(cb, attempt, true)
}

func (h *Handler) handleNext(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error {
	position, err := data.intParam(0)
	if err != nil {
		return err
	}

	chatID := cb.Message.Chat.ID
	before, _ := h.attempts.Get(attemptKey(chatID))

	attempt, err := h.attempts.Update(attemptKey(chatID), atPosition(position, service.Advance))
	if err != nil {
		return err
	}

	// Keep the revealed answer on the old message, without its buttons' actions.
	if err := h.refreshQuestion(cb, before, false); err != nil {
		h.logger.Warn("failed to refresh answered question", zap.Error(err))
	}

	if attempt.Finished {
		return h.sendResults(ctx, chatID, attempt)
	}
	return h.sendQuestion(chatID, attempt)
}

// refreshQuestion redraws the keyboard of the message the callback came from.
func (h *Handler) refreshQuestion(cb *tgbotapi.CallbackQuery, attempt entities.Attempt, withActions bool) error {
	view, err := service.Present(attempt)
	if err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		buildQuestionKeyboard(view, withActions),
	)
	h.request(edit)
	return nil
}

func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	h.request(tgbotapi.NewCallback(cb.ID, text))
}
