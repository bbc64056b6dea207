// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hammoud/theory-exam/internal/domain/entities"
	"github.com/hammoud/theory-exam/internal/service"
	"github.com/hammoud/theory-exam/internal/storage"
)

// User-facing texts.
const (
	msgWelcome        = "أهلاً بك في امتحان السياقة النظري.\nستظهر لك الأسئلة واحداً تلو الآخر: اختر الإجابة ثم اضغط «تأكيد»."
	msgHelp           = "/exam — بدء امتحان جديد\n/help — المساعدة\n\nاختر إجابة، اضغط «تأكيد» لرؤية الإجابة الصحيحة، ثم «التالي»."
	msgUnknownCommand = "أمر غير معروف. استخدم /exam لبدء امتحان جديد."
	msgNoAttempt      = "لا يوجد امتحان جارٍ. استخدم /exam للبدء."
	msgStaleQuestion  = "هذا السؤال لم يعد نشطاً."
	msgSelectFirst    = "اختر إجابة أولاً."
	msgAlreadyLocked  = "تم تأكيد الإجابة."
	msgFinished       = "انتهى الامتحان. اضغط «إعادة المحاولة» للبدء من جديد."
	msgNoQuestions    = "لا توجد أسئلة متاحة حالياً. يرجى التواصل مع المدرسة."
	msgInternalError  = "حدث خطأ ما. حاول مرة أخرى لاحقاً."
)

// Button labels.
const (
	btnConfirm = "تأكيد"
	btnNext    = "التالي ◀️"
	btnResults = "النتيجة"
	btnRetry   = "🔄 إعادة المحاولة"
)

// Choice markers.
const (
	markSelected = "🔘 "
	markCorrect  = "✅ "
	markWrong    = "❌ "
)

// maxMessageLen keeps review chunks below Telegram's 4096 character limit.
const maxMessageLen = 3800

// maxCaptionLen is Telegram's limit for photo captions.
const maxCaptionLen = 1024

var errStalePosition = errors.New("callback refers to another question")

// userMessage maps handler errors to a text the user can act on.
func userMessage(err error) string {
	switch {
	case errors.Is(err, storage.ErrAttemptNotFound):
		return msgNoAttempt
	case errors.Is(err, service.ErrEmptyAttempt):
		return msgNoQuestions
	case errors.Is(err, service.ErrAttemptFinished):
		return msgFinished
	default:
		return msgInternalError
	}
}

// callbackNotice is the short toast shown for a rejected button press.
// An empty string means the error is not a user mistake.
func callbackNotice(err error) string {
	switch {
	case errors.Is(err, errStalePosition), errors.Is(err, ErrBadCallback), errors.Is(err, service.ErrInvalidChoice):
		return msgStaleQuestion
	case errors.Is(err, service.ErrNoSelection):
		return msgSelectFirst
	case errors.Is(err, service.ErrAlreadyLocked):
		return msgAlreadyLocked
	case errors.Is(err, service.ErrNotLocked):
		return msgSelectFirst
	case errors.Is(err, service.ErrAttemptFinished):
		return msgFinished
	case errors.Is(err, storage.ErrAttemptNotFound):
		return msgNoAttempt
	default:
		return ""
	}
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func formatQuestion(view entities.QuestionView) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>السؤال %d من %d</b>", view.Number, view.Total))
	if view.ShowText && view.Text != "" {
		sb.WriteString("\n\n")
		sb.WriteString(escape(view.Text))
	}

	return sb.String()
}

func formatContactLine(school, phone string) string {
	return fmt.Sprintf("%s — %s", escape(school), escape(phone))
}

func formatResultHeader(school, phone string, res entities.Result) string {
	status := "راسب ❌"
	if res.Passed {
		status = "ناجح ✅"
	}

	return fmt.Sprintf(
		"%s\n\n<b>علامتك</b>\n%d / %d\n\n<b>النتيجة:</b> %s",
		formatContactLine(school, phone),
		res.Score,
		res.Total,
		status,
	)
}

func formatReviewItem(item entities.ReviewItem) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>سؤال %d</b>", item.Number))
	if item.Text != "" {
		sb.WriteString("\n")
		sb.WriteString(escape(item.Text))
	} else if item.Image != "" {
		sb.WriteString("\n🖼")
	}

	verdict := markWrong
	if item.Correct {
		verdict = markCorrect
	}

	sb.WriteString("\n")
	sb.WriteString(verdict)
	sb.WriteString("إجابتك: ")
	sb.WriteString(escape(item.ChosenText))
	sb.WriteString("\n")
	sb.WriteString("الصحيح: ")
	sb.WriteString(escape(item.CorrectText))

	return sb.String()
}

// formatReview renders the review and splits it into messages that fit
// Telegram's size limit without cutting an item in half.
func formatReview(items []entities.ReviewItem) []string {
	var (
		chunks []string
		sb     strings.Builder
	)

	for _, item := range items {
		block := formatReviewItem(item)
		if sb.Len() > 0 && sb.Len()+len(block)+2 > maxMessageLen {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(block)
	}

	if sb.Len() > 0 {
		chunks = append(chunks, sb.String())
	}

	return chunks
}
