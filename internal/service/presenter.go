package service

import (
	"strings"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

// Present projects the current question of an unfinished attempt.
// Blank choices are dropped, every remaining choice keeps its original index.
func Present(a entities.Attempt) (entities.QuestionView, error) {
	if a.Finished {
		return entities.QuestionView{}, ErrAttemptFinished
	}

	q := a.Current()
	if q == nil {
		return entities.QuestionView{}, ErrEmptyAttempt
	}

	image := strings.TrimSpace(q.Image)
	text := strings.TrimSpace(q.Text)
	// Without an image the text line is shown even when empty.
	showText := image == "" || text != ""

	view := entities.QuestionView{
		QuestionID: q.ID,
		Position:   a.Position,
		Number:     a.Position + 1,
		Total:      a.Total(),
		Progress:   float64(a.Position) / float64(a.Total()) * 100,
		Text:       text,
		ShowText:   showText,
		Image:      image,
		Choices:    presentChoices(q, a.Pending, a.Locked),
		Locked:     a.Locked,
		CanConfirm: a.Pending != nil && !a.Locked,
		CanAdvance: a.Locked,
		IsLast:     a.IsLast(),
	}
	if a.Pending != nil {
		view.Selected = entities.IntPtr(*a.Pending)
	}

	return view, nil
}

func presentChoices(q *entities.Question, pending *int, locked bool) []entities.ChoiceView {
	choices := make([]entities.ChoiceView, 0, len(q.Choices))
	reveal := locked && q.HasCorrect()

	for idx, text := range q.Choices {
		if entities.IsBlankChoice(text) {
			continue
		}

		cv := entities.ChoiceView{
			Index:    idx,
			Text:     text,
			Selected: pending != nil && *pending == idx,
		}

		if reveal {
			switch {
			case idx == *q.CorrectIndex:
				cv.Mark = entities.MarkCorrect
			case cv.Selected:
				cv.Mark = entities.MarkWrong
			}
		}

		choices = append(choices, cv)
	}

	return choices
}
