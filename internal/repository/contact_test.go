package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func TestStaticContactRepository(t *testing.T) {
	_, err := StaticContactRepository{}.Get(context.Background(), "quiz_phone")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Expected ErrContactNotFound, got %v", err)
	}
}

func TestRedisContactRepository_Integration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("set REDIS_URL to run redis integration tests")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}
	client := redis.NewClient(opt)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key := "itest:quiz_phone:" + time.Now().Format("150405.000000")
	defer client.Del(ctx, key)

	repo := NewRedisContactRepository(client)
	if _, err := repo.Get(ctx, key); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Expected ErrContactNotFound before set, got %v", err)
	}

	if err := client.Set(ctx, key, "03/000000", time.Minute).Err(); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := repo.Get(ctx, key)
	if err != nil || got != "03/000000" {
		t.Fatalf("Expected stored phone, got %q, %v", got, err)
	}
}

func TestPostgresContactRepository_Integration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("set DATABASE_URL to run postgres integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS app_settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	key := "itest_quiz_phone_" + time.Now().Format("150405000000")
	defer func() { _, _ = pool.Exec(context.Background(), `DELETE FROM app_settings WHERE key = $1`, key) }()

	repo := NewPostgresContactRepository(pool)
	if _, err := repo.Get(ctx, key); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Expected ErrContactNotFound before insert, got %v", err)
	}

	if _, err := pool.Exec(ctx, `INSERT INTO app_settings (key, value) VALUES ($1, $2)`, key, "01/111111"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := repo.Get(ctx, key)
	if err != nil || got != "01/111111" {
		t.Fatalf("Expected stored phone, got %q, %v", got, err)
	}
}
