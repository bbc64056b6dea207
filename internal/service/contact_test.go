package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/repository"
)

type fakeContactRepo struct {
	value string
	err   error
	keys  []string
}

func (r *fakeContactRepo) Get(_ context.Context, key string) (string, error) {
	r.keys = append(r.keys, key)
	return r.value, r.err
}

func TestContactServicePhone(t *testing.T) {
	const def = "01/310341 - 03/884472"

	tests := []struct {
		name string
		repo *fakeContactRepo
		want string
	}{
		{"stored value", &fakeContactRepo{value: "70/123456"}, "70/123456"},
		{"missing value", &fakeContactRepo{err: repository.ErrContactNotFound}, def},
		{"store failure", &fakeContactRepo{err: errors.New("connection refused")}, def},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewContactService(tc.repo, "quiz_phone", def, "Hammoud Driving School", zap.NewNop())

			if got := svc.Phone(context.Background()); got != tc.want {
				t.Fatalf("Expected %q, got %q", tc.want, got)
			}
			if len(tc.repo.keys) != 1 || tc.repo.keys[0] != "quiz_phone" {
				t.Fatalf("Expected lookup of quiz_phone, got %v", tc.repo.keys)
			}
		})
	}
}

func TestContactServiceStaticBackend(t *testing.T) {
	svc := NewContactService(repository.StaticContactRepository{}, "quiz_phone", "default", "School", zap.NewNop())
	if got := svc.Phone(context.Background()); got != "default" {
		t.Fatalf("Expected default, got %q", got)
	}
	if svc.School() != "School" {
		t.Fatalf("Expected school name, got %q", svc.School())
	}
}
