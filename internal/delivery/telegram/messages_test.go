package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hammoud/theory-exam/internal/domain/entities"
	"github.com/hammoud/theory-exam/internal/service"
	"github.com/hammoud/theory-exam/internal/storage"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{storage.ErrAttemptNotFound, msgNoAttempt},
		{fmt.Errorf("load: %w", service.ErrEmptyAttempt), msgNoQuestions},
		{service.ErrAttemptFinished, msgFinished},
		{errors.New("boom"), msgInternalError},
	}

	for _, tc := range tests {
		if got := userMessage(tc.err); got != tc.want {
			t.Errorf("userMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestCallbackNotice(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errStalePosition, msgStaleQuestion},
		{ErrBadCallback, msgStaleQuestion},
		{service.ErrInvalidChoice, msgStaleQuestion},
		{service.ErrNoSelection, msgSelectFirst},
		{service.ErrNotLocked, msgSelectFirst},
		{service.ErrAlreadyLocked, msgAlreadyLocked},
		{service.ErrAttemptFinished, msgFinished},
		{storage.ErrAttemptNotFound, msgNoAttempt},
		{errors.New("network"), ""},
	}

	for _, tc := range tests {
		if got := callbackNotice(tc.err); got != tc.want {
			t.Errorf("callbackNotice(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestFormatQuestionEscapesText(t *testing.T) {
	view := entities.QuestionView{Number: 2, Total: 30, Text: "a < b & c", ShowText: true}

	got := formatQuestion(view)
	if !strings.Contains(got, "السؤال 2 من 30") {
		t.Errorf("Expected counter, got %q", got)
	}
	if !strings.Contains(got, "a &lt; b &amp; c") {
		t.Errorf("Expected escaped text, got %q", got)
	}

	view.ShowText = false
	if strings.Contains(formatQuestion(view), "a &lt; b") {
		t.Errorf("Hidden text must not be rendered")
	}
}

func TestFormatResultHeader(t *testing.T) {
	pass := formatResultHeader("School", "123", entities.Result{Score: 24, Total: 30, Passed: true})
	if !strings.Contains(pass, "24 / 30") || !strings.Contains(pass, "ناجح") {
		t.Errorf("Unexpected pass header %q", pass)
	}

	fail := formatResultHeader("School", "123", entities.Result{Score: 23, Total: 30})
	if !strings.Contains(fail, "23 / 30") || !strings.Contains(fail, "راسب") {
		t.Errorf("Unexpected fail header %q", fail)
	}
}

func TestFormatReviewItemSentinels(t *testing.T) {
	got := formatReviewItem(entities.ReviewItem{
		Number:      1,
		Text:        "Q",
		ChosenText:  service.Unanswered,
		CorrectText: service.Unavailable,
	})

	if !strings.Contains(got, markWrong) {
		t.Errorf("Expected wrong mark, got %q", got)
	}
	if !strings.Contains(got, service.Unanswered) || !strings.Contains(got, service.Unavailable) {
		t.Errorf("Expected sentinels, got %q", got)
	}
}

func TestFormatReviewChunks(t *testing.T) {
	items := make([]entities.ReviewItem, 30)
	for i := range items {
		items[i] = entities.ReviewItem{
			Number:      i + 1,
			Text:        strings.Repeat("نص طويل للسؤال ", 20),
			ChosenText:  "a",
			CorrectText: "a",
			Correct:     true,
		}
	}

	chunks := formatReview(items)
	if len(chunks) < 2 {
		t.Fatalf("Expected review to be split, got %d chunk(s)", len(chunks))
	}

	total := 0
	for i, c := range chunks {
		if len(c) > maxMessageLen {
			t.Errorf("chunk %d is %d bytes, limit %d", i, len(c), maxMessageLen)
		}
		total += strings.Count(c, "<b>سؤال ")
	}
	if total != len(items) {
		t.Fatalf("Expected %d items across chunks, got %d", len(items), total)
	}

	if formatReview(nil) != nil {
		t.Fatalf("Expected no chunks for empty review")
	}
}
