package service

import (
	"errors"
	"strings"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

// DefaultPassScore is the minimal score needed to pass. It is sized for the
// default 30-question attempt and is not rescaled for smaller pools.
const DefaultPassScore = 24

// Review placeholders.
const (
	Unanswered  = "لم تُجب"
	Unavailable = "غير متوفر"
)

var ErrNotFinished = errors.New("attempt is not finished")

// Report builds the score, the pass/fail verdict and the per-question review
// of a finished attempt.
func Report(a entities.Attempt, passScore int) (entities.Result, error) {
	if !a.Finished {
		return entities.Result{}, ErrNotFinished
	}

	return entities.Result{
		Score:     a.Score,
		Total:     a.Total(),
		PassScore: passScore,
		Passed:    Passed(a.Score, passScore),
		Review:    Review(a),
	}, nil
}

// Passed applies the fixed pass threshold.
func Passed(score, passScore int) bool {
	return score >= passScore
}

// Review returns one item per question of the attempt, in attempt order.
// It never fails: absent or out-of-range indices render as placeholders.
func Review(a entities.Attempt) []entities.ReviewItem {
	items := make([]entities.ReviewItem, 0, len(a.Questions))

	for i := range a.Questions {
		q := &a.Questions[i]

		var chosen, correct *int
		if rec := a.AnswerAt(i); rec != nil {
			chosen, correct = rec.ChosenIndex, rec.CorrectIndex
		} else {
			correct = q.CorrectIndex
		}

		item := entities.ReviewItem{
			Number:      i + 1,
			QuestionID:  q.ID,
			Text:        strings.TrimSpace(q.Text),
			Image:       strings.TrimSpace(q.Image),
			ChosenText:  Unanswered,
			CorrectText: Unavailable,
			HasCorrect:  correct != nil,
			Correct:     chosen != nil && correct != nil && *chosen == *correct,
		}

		if chosen != nil {
			if text, ok := q.ChoiceText(*chosen); ok {
				item.ChosenText = text
				item.Answered = true
			}
		}
		if correct != nil {
			if text, ok := q.ChoiceText(*correct); ok {
				item.CorrectText = text
			}
		}

		items = append(items, item)
	}

	return items
}
