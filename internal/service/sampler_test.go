package service

import (
	"math/rand"
	"testing"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

func TestSampleSizeAndUniqueness(t *testing.T) {
	sampler := NewSampler(rand.New(rand.NewSource(1)), DefaultAttemptSize)

	for _, poolSize := range []int{1, 2, 3, 29, 30, 31, 100, 500} {
		pool := makePool(poolSize)
		got := sampler.Sample(pool)

		want := min(DefaultAttemptSize, poolSize)
		if len(got) != want {
			t.Fatalf("pool %d: expected %d questions, got %d", poolSize, want, len(got))
		}

		seen := make(map[entities.QuestionID]bool, len(got))
		for _, q := range got {
			if seen[q.ID] {
				t.Fatalf("pool %d: duplicate question %s", poolSize, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSampleDoesNotReorderPool(t *testing.T) {
	pool := makePool(40)
	sampler := NewSampler(rand.New(rand.NewSource(7)), 10)

	_ = sampler.Sample(pool)

	for i, q := range pool {
		if q.ID != makePool(40)[i].ID {
			t.Fatalf("pool reordered at %d: %s", i, q.ID)
		}
	}
}

func TestSampleFirstQuestionIsUniform(t *testing.T) {
	const (
		poolSize = 5
		trials   = 50000
	)

	pool := makePool(poolSize)
	sampler := NewSampler(rand.New(rand.NewSource(42)), DefaultAttemptSize)

	counts := make(map[entities.QuestionID]int, poolSize)
	for i := 0; i < trials; i++ {
		counts[sampler.Sample(pool)[0].ID]++
	}

	expected := trials / poolSize
	tolerance := expected / 20 // 5%, several standard deviations at this sample size
	for _, q := range pool {
		got := counts[q.ID]
		if got < expected-tolerance || got > expected+tolerance {
			t.Errorf("question %s drawn first %d times, expected %d±%d", q.ID, got, expected, tolerance)
		}
	}
}

func TestNewSamplerDefaults(t *testing.T) {
	s := NewSampler(nil, 0)
	if s.Size() != DefaultAttemptSize {
		t.Fatalf("Expected default size %d, got %d", DefaultAttemptSize, s.Size())
	}
	if got := s.Sample(makePool(3)); len(got) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(got))
	}
}
