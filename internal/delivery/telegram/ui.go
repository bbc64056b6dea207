package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

// buildQuestionKeyboard builds one button per visible choice and, when
// withActions is set, the confirm or next button the view currently allows.
func buildQuestionKeyboard(view entities.QuestionView, withActions bool) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(view.Choices)+1)

	for _, c := range view.Choices {
		button := tgbotapi.NewInlineKeyboardButtonData(
			choiceLabel(c),
			buildSelectCallback(view.Position, c.Index),
		)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	if withActions {
		switch {
		case view.CanConfirm:
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(btnConfirm, buildConfirmCallback(view.Position)),
			))
		case view.CanAdvance:
			label := btnNext
			if view.IsLast {
				label = btnResults
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, buildNextCallback(view.Position)),
			))
		}
	}

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func choiceLabel(c entities.ChoiceView) string {
	switch {
	case c.Mark == entities.MarkCorrect:
		return markCorrect + c.Text
	case c.Mark == entities.MarkWrong:
		return markWrong + c.Text
	case c.Selected:
		return markSelected + c.Text
	default:
		return c.Text
	}
}

// buildResultKeyboard builds keyboard for the results screen.
func buildResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnRetry, buildRetryCallback()),
		),
	)
}
