package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/config"
	"github.com/hammoud/theory-exam/internal/infra/postgres"
	"github.com/hammoud/theory-exam/internal/infra/redis"
	"github.com/hammoud/theory-exam/internal/repository"
	"github.com/hammoud/theory-exam/internal/service"
	"github.com/hammoud/theory-exam/internal/storage"
)

// App holds the services shared by the Telegram bot and the web API.
type App struct {
	Exam     *service.ExamService
	Contact  *service.ContactService
	Attempts *storage.AttemptStorage
	Sweeper  *service.SweepService

	closers []func()
}

// New loads the question pool, connects the contact store and builds the
// services. A pool that cannot be loaded is fatal.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, cfg.Questions.FetchTimeout)
	defer cancel()

	questions, err := repository.NewQuestionRepository(fetchCtx, cfg.Questions.Source, http.DefaultClient)
	if err != nil {
		return nil, fmt.Errorf("load question pool: %w", err)
	}
	logger.Info("question pool loaded",
		zap.String("source", cfg.Questions.Source),
		zap.Int("questions", questions.Count()),
	)

	a := &App{}

	contactRepo, err := a.contactRepository(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("contact store ready", zap.String("backend", cfg.Contact.Backend))

	a.Attempts = storage.NewAttemptStorage()
	a.Exam = service.NewExamService(questions, service.NewSampler(nil, cfg.Exam.Size), cfg.Exam.PassScore, logger)
	a.Contact = service.NewContactService(contactRepo, cfg.Contact.Key, cfg.Contact.DefaultPhone, cfg.School.Name, logger)
	a.Sweeper = service.NewSweepService(a.Attempts, cfg.Storage.IdleTTL, cfg.Storage.SweepSchedule, logger)

	return a, nil
}

func (a *App) contactRepository(ctx context.Context, cfg *config.Config) (service.ContactRepo, error) {
	switch cfg.Contact.Backend {
	case config.ContactBackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return repository.NewRedisContactRepository(client), nil

	case config.ContactBackendPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return repository.NewPostgresContactRepository(pool), nil

	default:
		return repository.StaticContactRepository{}, nil
	}
}

// Close releases the contact store connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
