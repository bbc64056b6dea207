package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/repository"
)

// ContactRepo reads a display value by key. It is never written by this service.
type ContactRepo interface {
	Get(ctx context.Context, key string) (string, error)
}

// ContactService resolves the contact phone shown next to the school name.
type ContactService struct {
	repo         ContactRepo
	key          string
	defaultPhone string
	school       string
	logger       *zap.Logger
}

// NewContactService creates a new contact service.
func NewContactService(repo ContactRepo, key, defaultPhone, school string, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:         repo,
		key:          key,
		defaultPhone: defaultPhone,
		school:       school,
		logger:       logger,
	}
}

// Phone returns the stored phone, falling back to the default when the store
// has no value or cannot be read.
func (s *ContactService) Phone(ctx context.Context) string {
	phone, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrContactNotFound) {
			s.logger.Warn("failed to read contact phone, using default",
				zap.String("key", s.key),
				zap.Error(err),
			)
		}
		return s.defaultPhone
	}

	return phone
}

// School returns the school name.
func (s *ContactService) School() string {
	return s.school
}
