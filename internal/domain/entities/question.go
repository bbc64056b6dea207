// Package entities contains domain entities used across the application.
package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// QuestionID identifies a question within the pool.
// The JSON source may carry it as a number or a string.
type QuestionID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *QuestionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = QuestionID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("question id must be a number or a string: %w", err)
	}
	*id = QuestionID(n.String())
	return nil
}

// Question is one authored multiple-choice question of the pool.
// Choice positions are meaningful even when the text at a position is blank:
// CorrectIndex and every chosen index refer to the original positions.
type Question struct {
	ID           QuestionID `json:"id"`
	Text         string     `json:"question"`
	Image        string     `json:"image"`
	Choices      []string   `json:"choices"`
	CorrectIndex *int       `json:"correctIndex"` // nil when no correct answer is known
}

// UnmarshalJSON decodes a question record. correctIndex counts as present only
// when it is a number with an integral value; null, strings and fractions leave
// it absent.
func (q *Question) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           QuestionID      `json:"id"`
		Text         *string         `json:"question"`
		Image        *string         `json:"image"`
		Choices      []*string       `json:"choices"`
		CorrectIndex json.RawMessage `json:"correctIndex"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*q = Question{ID: raw.ID}
	if raw.Text != nil {
		q.Text = *raw.Text
	}
	if raw.Image != nil {
		q.Image = *raw.Image
	}

	q.Choices = make([]string, len(raw.Choices))
	for i, c := range raw.Choices {
		if c != nil {
			q.Choices[i] = *c
		}
	}

	q.CorrectIndex = parseIndex(raw.CorrectIndex)
	return nil
}

// parseIndex accepts any JSON number with an integral value, so 1, 1.0 and
// 1e0 all name index 1.
func parseIndex(raw json.RawMessage) *int {
	s := bytes.TrimSpace(raw)
	if len(s) == 0 || s[0] == '"' || string(s) == "null" {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(s, &n); err != nil {
		return nil
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return nil
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}

	return IntPtr(int(f))
}

// HasCorrect reports whether the question has a known correct answer.
func (q *Question) HasCorrect() bool {
	return q.CorrectIndex != nil
}

// ChoiceText returns the choice text at the original position idx.
func (q *Question) ChoiceText(idx int) (string, bool) {
	if idx < 0 || idx >= len(q.Choices) {
		return "", false
	}
	return q.Choices[idx], true
}

// IsBlankChoice reports whether the slot holds no displayable choice.
func IsBlankChoice(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IntPtr returns a pointer to a copy of n.
func IntPtr(n int) *int {
	return &n
}
