package entities

// Phase is the state of an attempt's state machine.
type Phase string

const (
	PhasePresenting Phase = "presenting"
	PhaseSelected   Phase = "selected"
	PhaseLocked     Phase = "locked"
	PhaseFinished   Phase = "finished"
)

// AnswerRecord is written when a question is confirmed and never changed afterwards.
type AnswerRecord struct {
	QuestionID   QuestionID `json:"questionId"`
	ChosenIndex  *int       `json:"chosenIndex"`
	CorrectIndex *int       `json:"correctIndex"`
}

// Attempt is one sampled run through the question pool.
// Values are treated as immutable: state transitions return a new Attempt and
// never write into the Answers slice of an earlier value.
type Attempt struct {
	Questions []Question
	Position  int
	Score     int
	Pending   *int // selected but not yet confirmed choice
	Locked    bool
	Finished  bool
	Answers   []*AnswerRecord // one slot per question, nil until confirmed
}

// Phase derives the state machine phase from the attempt fields.
func (a Attempt) Phase() Phase {
	switch {
	case a.Finished:
		return PhaseFinished
	case a.Locked:
		return PhaseLocked
	case a.Pending != nil:
		return PhaseSelected
	default:
		return PhasePresenting
	}
}

// Total returns the number of questions in the attempt.
func (a Attempt) Total() int {
	return len(a.Questions)
}

// Current returns the question at the current position.
func (a Attempt) Current() *Question {
	if a.Position < 0 || a.Position >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.Position]
}

// IsLast reports whether the current position is the last one.
func (a Attempt) IsLast() bool {
	return a.Position == len(a.Questions)-1
}

// AnswerAt returns the record stored for position i, or nil.
func (a Attempt) AnswerAt(i int) *AnswerRecord {
	if i < 0 || i >= len(a.Answers) {
		return nil
	}
	return a.Answers[i]
}

// AnsweredCount returns how many positions have a record.
func (a Attempt) AnsweredCount() int {
	n := 0
	for _, r := range a.Answers {
		if r != nil {
			n++
		}
	}
	return n
}
