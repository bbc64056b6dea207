package entities

// ChoiceMark is the reveal marking of a choice after the question is locked.
type ChoiceMark string

const (
	MarkNone    ChoiceMark = ""
	MarkCorrect ChoiceMark = "correct"
	MarkWrong   ChoiceMark = "wrong"
)

// ChoiceView is a displayable choice carrying its original position.
type ChoiceView struct {
	Index    int        `json:"index"`
	Text     string     `json:"text"`
	Selected bool       `json:"selected"`
	Mark     ChoiceMark `json:"mark,omitempty"`
}

// QuestionView is what a presentation adapter renders for the current question.
type QuestionView struct {
	QuestionID QuestionID   `json:"questionId"`
	Position   int          `json:"position"` // 0-based
	Number     int          `json:"number"`   // 1-based, for counters
	Total      int          `json:"total"`
	Progress   float64      `json:"progress"` // percent of questions already passed
	Text       string       `json:"text"`
	ShowText   bool         `json:"showText"`
	Image      string       `json:"image,omitempty"`
	Choices    []ChoiceView `json:"choices"`
	Selected   *int         `json:"selected"`
	Locked     bool         `json:"locked"`
	CanConfirm bool         `json:"canConfirm"`
	CanAdvance bool         `json:"canAdvance"`
	IsLast     bool         `json:"isLast"`
}
