package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

var (
	ErrEmptyPool           = errors.New("question pool is empty")
	ErrDuplicateQuestionID = errors.New("duplicate question id")
	ErrMissingQuestionID   = errors.New("question without id")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)

// maxPoolBytes caps the size of a remote pool document.
const maxPoolBytes = 16 << 20

// QuestionRepository holds the question pool loaded once at startup.
type QuestionRepository struct {
	questions []entities.Question
}

// NewQuestionRepository loads the pool from source, which is either a file
// path or an http(s) URL. Any failure is fatal for the caller: no partial pool
// is ever returned.
func NewQuestionRepository(ctx context.Context, source string, client *http.Client) (*QuestionRepository, error) {
	data, err := readSource(ctx, source, client)
	if err != nil {
		return nil, fmt.Errorf("read question pool: %w", err)
	}

	questions, err := parseQuestions(data)
	if err != nil {
		return nil, fmt.Errorf("parse question pool: %w", err)
	}

	return &QuestionRepository{questions: questions}, nil
}

// NewQuestionRepositoryFromSlice wraps an already loaded pool.
func NewQuestionRepositoryFromSlice(questions []entities.Question) (*QuestionRepository, error) {
	if err := validatePool(questions); err != nil {
		return nil, err
	}
	return &QuestionRepository{questions: questions}, nil
}

// GetAll returns the whole pool. Callers must not modify the returned slice.
func (r *QuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	return r.questions, nil
}

// Count returns the pool size.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

func readSource(ctx context.Context, source string, client *http.Client) ([]byte, error) {
	if !isURL(source) {
		return os.ReadFile(source)
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxPoolBytes))
}

func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// parseQuestions accepts a bare JSON array or an object with a "questions" array.
func parseQuestions(data []byte) ([]entities.Question, error) {
	data = bytes.TrimSpace(data)

	var questions []entities.Question
	if len(data) > 0 && data[0] == '{' {
		var wrapper struct {
			Questions []entities.Question `json:"questions"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
		}
		questions = wrapper.Questions
	} else if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	if err := validatePool(questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func validatePool(questions []entities.Question) error {
	if len(questions) == 0 {
		return ErrEmptyPool
	}

	seen := make(map[entities.QuestionID]struct{}, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("%w at position %d", ErrMissingQuestionID, i)
		}
		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateQuestionID, q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	return nil
}
