package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/config"
	"github.com/hammoud/theory-exam/internal/repository"
)

func testConfig(source string) *config.Config {
	return &config.Config{
		Questions: config.Questions{Source: source, FetchTimeout: time.Second},
		Exam:      config.Exam{Size: 30, PassScore: 24},
		School:    config.School{Name: "Hammoud Driving School"},
		Contact: config.Contact{
			Backend:      config.ContactBackendStatic,
			Key:          "quiz_phone",
			DefaultPhone: "01/310341 - 03/884472",
		},
		Storage: config.Storage{IdleTTL: time.Hour, SweepSchedule: "*/15 * * * *"},
	}
}

func TestNewWithStaticBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	data := `[{"id":1,"question":"Q1","choices":["a","b"],"correctIndex":0},
	          {"id":2,"question":"Q2","choices":["a","b"],"correctIndex":1}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := New(context.Background(), testConfig(path), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	attempt, err := a.Exam.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if attempt.Total() != 2 {
		t.Fatalf("Expected 2 questions, got %d", attempt.Total())
	}

	if got := a.Contact.Phone(context.Background()); got != "01/310341 - 03/884472" {
		t.Fatalf("Expected default phone, got %q", got)
	}
}

func TestNewFailsOnEmptyPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(context.Background(), testConfig(path), zap.NewNop())
	if !errors.Is(err, repository.ErrEmptyPool) {
		t.Fatalf("Expected ErrEmptyPool, got %v", err)
	}
}

func TestNewFailsOnMissingSource(t *testing.T) {
	_, err := New(context.Background(), testConfig(filepath.Join(t.TempDir(), "missing.json")), zap.NewNop())
	if err == nil {
		t.Fatal("Expected error for missing pool file")
	}
}
