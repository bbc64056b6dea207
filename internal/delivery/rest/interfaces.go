package rest

import (
	"context"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

type ExamService interface {
	Start(ctx context.Context) (entities.Attempt, error)
	Result(a entities.Attempt) (entities.Result, error)
}

type ContactService interface {
	Phone(ctx context.Context) string
	School() string
}

type AttemptStore interface {
	Store(key string, a entities.Attempt)
	Get(key string) (entities.Attempt, bool)
	Update(key string, fn func(entities.Attempt) (entities.Attempt, error)) (entities.Attempt, error)
}
