package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

// QuestionPool supplies the full question pool.
type QuestionPool interface {
	GetAll(ctx context.Context) ([]entities.Question, error)
}

// ExamService starts attempts and reports finished ones.
type ExamService struct {
	pool      QuestionPool
	sampler   *Sampler
	passScore int
	logger    *zap.Logger
}

// NewExamService creates a new exam service.
func NewExamService(pool QuestionPool, sampler *Sampler, passScore int, logger *zap.Logger) *ExamService {
	return &ExamService{
		pool:      pool,
		sampler:   sampler,
		passScore: passScore,
		logger:    logger,
	}
}

// Start draws a fresh sample and loads it into a new attempt.
// Restarting after a finished attempt is the same operation: nothing of the
// previous attempt is carried over.
func (s *ExamService) Start(ctx context.Context) (entities.Attempt, error) {
	all, err := s.pool.GetAll(ctx)
	if err != nil {
		return entities.Attempt{}, fmt.Errorf("get question pool: %w", err)
	}

	attempt, err := Load(s.sampler.Sample(all))
	if err != nil {
		s.logger.Error("cannot start attempt",
			zap.Int("pool_size", len(all)),
			zap.Error(err),
		)
		return entities.Attempt{}, err
	}

	s.logger.Debug("attempt started",
		zap.Int("pool_size", len(all)),
		zap.Int("questions", attempt.Total()),
	)

	return attempt, nil
}

// Result reports a finished attempt against the configured pass score.
func (s *ExamService) Result(a entities.Attempt) (entities.Result, error) {
	return Report(a, s.passScore)
}

// PassScore returns the configured pass threshold.
func (s *ExamService) PassScore() int {
	return s.passScore
}
