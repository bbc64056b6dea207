package telegram

import (
	"testing"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

func TestBuildQuestionKeyboard(t *testing.T) {
	choices := []entities.ChoiceView{
		{Index: 1, Text: "yes"},
		{Index: 3, Text: "no"},
	}

	tests := []struct {
		name        string
		view        entities.QuestionView
		withActions bool
		rows        int
		action      string
	}{
		{"presenting", entities.QuestionView{Position: 2, Choices: choices}, true, 2, ""},
		{"selected", entities.QuestionView{Position: 2, Choices: choices, CanConfirm: true}, true, 3, "ok:2"},
		{"locked", entities.QuestionView{Position: 2, Choices: choices, CanAdvance: true}, true, 3, "next:2"},
		{"answered history", entities.QuestionView{Position: 2, Choices: choices, CanAdvance: true}, false, 2, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kb := buildQuestionKeyboard(tc.view, tc.withActions)
			if len(kb.InlineKeyboard) != tc.rows {
				t.Fatalf("Expected %d rows, got %d", tc.rows, len(kb.InlineKeyboard))
			}

			first := kb.InlineKeyboard[0][0]
			if first.CallbackData == nil || *first.CallbackData != "sel:2:1" {
				t.Fatalf("Expected original index in callback, got %v", first.CallbackData)
			}

			if tc.action != "" {
				last := kb.InlineKeyboard[len(kb.InlineKeyboard)-1][0]
				if *last.CallbackData != tc.action {
					t.Fatalf("Expected action %q, got %q", tc.action, *last.CallbackData)
				}
			}
		})
	}
}

func TestLastQuestionShowsResultsButton(t *testing.T) {
	view := entities.QuestionView{
		Position:   29,
		Choices:    []entities.ChoiceView{{Index: 0, Text: "a"}},
		CanAdvance: true,
		IsLast:     true,
	}

	kb := buildQuestionKeyboard(view, true)
	last := kb.InlineKeyboard[len(kb.InlineKeyboard)-1][0]
	if last.Text != btnResults {
		t.Fatalf("Expected %q, got %q", btnResults, last.Text)
	}
}

func TestChoiceLabel(t *testing.T) {
	tests := []struct {
		choice entities.ChoiceView
		want   string
	}{
		{entities.ChoiceView{Text: "a"}, "a"},
		{entities.ChoiceView{Text: "a", Selected: true}, markSelected + "a"},
		{entities.ChoiceView{Text: "a", Selected: true, Mark: entities.MarkWrong}, markWrong + "a"},
		{entities.ChoiceView{Text: "a", Mark: entities.MarkCorrect}, markCorrect + "a"},
	}

	for _, tc := range tests {
		if got := choiceLabel(tc.choice); got != tc.want {
			t.Errorf("choiceLabel(%+v) = %q, want %q", tc.choice, got, tc.want)
		}
	}
}
