package entities

// ReviewItem compares the chosen and the correct answer of one question.
type ReviewItem struct {
	Number      int        `json:"number"` // 1-based
	QuestionID  QuestionID `json:"questionId"`
	Text        string     `json:"text,omitempty"`
	Image       string     `json:"image,omitempty"`
	ChosenText  string     `json:"chosenText"`
	CorrectText string     `json:"correctText"`
	Answered    bool       `json:"answered"`
	HasCorrect  bool       `json:"hasCorrect"`
	Correct     bool       `json:"correct"`
}

// Result is the terminal projection of a finished attempt.
type Result struct {
	Score     int          `json:"score"`
	Total     int          `json:"total"`
	PassScore int          `json:"passScore"`
	Passed    bool         `json:"passed"`
	Review    []ReviewItem `json:"review"`
}
