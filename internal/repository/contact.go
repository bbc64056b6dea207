package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

var ErrContactNotFound = errors.New("contact value not found")

// PostgresContactRepository reads display values from the app_settings table.
//
//	CREATE TABLE app_settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);
type PostgresContactRepository struct {
	db *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgresContactRepository with the provided database pool.
func NewPostgresContactRepository(db *pgxpool.Pool) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

// Get returns the value stored under key.
// Returns ErrContactNotFound if the key does not exist or holds a blank value.
func (r *PostgresContactRepository) Get(ctx context.Context, key string) (string, error) {
	query := `
		SELECT value
		FROM app_settings
		WHERE key = $1
	`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrContactNotFound
		}
		return "", fmt.Errorf("get contact value: %w", err)
	}

	if strings.TrimSpace(value) == "" {
		return "", ErrContactNotFound
	}

	return value, nil
}

// RedisContactRepository reads display values from plain redis string keys.
type RedisContactRepository struct {
	client *redis.Client
}

// NewRedisContactRepository creates a new RedisContactRepository.
func NewRedisContactRepository(client *redis.Client) *RedisContactRepository {
	return &RedisContactRepository{client: client}
}

// Get returns the value stored under key.
// Returns ErrContactNotFound if the key does not exist or holds a blank value.
func (r *RedisContactRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrContactNotFound
		}
		return "", fmt.Errorf("get contact value: %w", err)
	}

	if strings.TrimSpace(value) == "" {
		return "", ErrContactNotFound
	}

	return value, nil
}

// StaticContactRepository has no backing store; every lookup misses.
type StaticContactRepository struct{}

// Get always returns ErrContactNotFound.
func (StaticContactRepository) Get(_ context.Context, _ string) (string, error) {
	return "", ErrContactNotFound
}
