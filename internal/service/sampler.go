package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

// DefaultAttemptSize is the number of questions drawn for one attempt.
const DefaultAttemptSize = 30

// Sampler draws a random ordered subset of the pool for one attempt.
type Sampler struct {
	mu   sync.Mutex
	rng  *rand.Rand
	size int
}

// NewSampler creates a sampler drawing size questions per attempt.
// A nil rng is replaced by a time-seeded source.
func NewSampler(rng *rand.Rand, size int) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if size < 1 {
		size = DefaultAttemptSize
	}

	return &Sampler{
		rng:  rng,
		size: size,
	}
}

// Size returns the target attempt size.
func (s *Sampler) Size() int {
	return s.size
}

// Sample returns min(size, len(pool)) distinct questions. Every permutation of
// the pool is equally likely before truncation. The pool itself is not reordered.
func (s *Sampler) Sample(pool []entities.Question) []entities.Question {
	shuffled := make([]entities.Question, len(pool))
	copy(shuffled, pool)

	s.mu.Lock()
	// Fisher-Yates: swap each position with a uniformly chosen one at or below it.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	s.mu.Unlock()

	n := min(s.size, len(shuffled))
	return shuffled[:n:n]
}
