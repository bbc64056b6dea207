package service

import (
	"fmt"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

// makePool builds n questions with two choices each and choice 0 correct.
func makePool(n int) []entities.Question {
	pool := make([]entities.Question, n)
	for i := range pool {
		pool[i] = entities.Question{
			ID:           entities.QuestionID(fmt.Sprintf("q%d", i+1)),
			Text:         fmt.Sprintf("Question %d", i+1),
			Choices:      []string{"right", "wrong"},
			CorrectIndex: entities.IntPtr(0),
		}
	}
	return pool
}

// answer runs one Select, Confirm, Advance cycle and panics on any error.
func answer(a entities.Attempt, idx int) entities.Attempt {
	var err error
	if a, err = Select(a, idx); err != nil {
		panic(err)
	}
	if a, err = Confirm(a); err != nil {
		panic(err)
	}
	if a, err = Advance(a); err != nil {
		panic(err)
	}
	return a
}
