package service

import (
	"errors"
	"fmt"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

var (
	ErrEmptyAttempt    = errors.New("attempt has no questions")
	ErrAttemptFinished = errors.New("attempt is finished")
	ErrAlreadyLocked   = errors.New("question is already confirmed")
	ErrNoSelection     = errors.New("no choice selected")
	ErrNotLocked       = errors.New("question is not confirmed yet")
	ErrInvalidChoice   = errors.New("invalid choice index")
)

// Load starts an attempt over the given questions at position 0.
// An empty question list is a configuration error and produces no attempt.
func Load(questions []entities.Question) (entities.Attempt, error) {
	if len(questions) == 0 {
		return entities.Attempt{}, ErrEmptyAttempt
	}

	return entities.Attempt{
		Questions: questions,
		Answers:   make([]*entities.AnswerRecord, len(questions)),
	}, nil
}

// Select records idx as the pending choice for the current question.
// Selecting again overwrites the pending choice. A locked question ignores
// the call and the attempt is returned unchanged.
func Select(a entities.Attempt, idx int) (entities.Attempt, error) {
	if a.Finished {
		return a, ErrAttemptFinished
	}
	if a.Locked {
		return a, nil
	}

	q := a.Current()
	if q == nil {
		return a, ErrEmptyAttempt
	}
	if _, ok := q.ChoiceText(idx); !ok {
		return a, fmt.Errorf("%w: %d", ErrInvalidChoice, idx)
	}

	a.Pending = entities.IntPtr(idx)
	return a, nil
}

// Confirm locks the current question with the pending choice, scores it when
// the question has a known correct answer and writes its answer record.
func Confirm(a entities.Attempt) (entities.Attempt, error) {
	if a.Finished {
		return a, ErrAttemptFinished
	}
	if a.Locked {
		return a, ErrAlreadyLocked
	}
	if a.Pending == nil {
		return a, ErrNoSelection
	}

	q := a.Current()
	if q == nil {
		return a, ErrEmptyAttempt
	}

	chosen := *a.Pending
	record := &entities.AnswerRecord{
		QuestionID:  q.ID,
		ChosenIndex: entities.IntPtr(chosen),
	}
	if q.HasCorrect() {
		record.CorrectIndex = entities.IntPtr(*q.CorrectIndex)
		if chosen == *q.CorrectIndex {
			a.Score++
		}
	}

	answers := make([]*entities.AnswerRecord, len(a.Questions))
	copy(answers, a.Answers)
	answers[a.Position] = record

	a.Answers = answers
	a.Locked = true
	return a, nil
}

// Advance moves past a confirmed question, finishing the attempt after the last one.
func Advance(a entities.Attempt) (entities.Attempt, error) {
	if a.Finished {
		return a, ErrAttemptFinished
	}
	if !a.Locked {
		return a, ErrNotLocked
	}

	if a.IsLast() {
		a.Finished = true
		return a, nil
	}

	a.Position++
	a.Pending = nil
	a.Locked = false
	return a, nil
}
