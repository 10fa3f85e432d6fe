package model

// QuizOptionsPerQuestion is the number of answer options each question carries.
const QuizOptionsPerQuestion = 4

type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuizQuestion struct {
	Question    string       `json:"question"`
	Options     []QuizOption `json:"options"`
	Explanation string       `json:"explanation"`
}

// swagger:model QuizRequest
type QuizRequest struct {
	WeekNumber int      `json:"week_number" binding:"required,min=1"`
	Topics     []string `json:"topics" binding:"required,min=1,dive,required"`
}

// Quiz is generated on demand and never persisted.
// swagger:model Quiz
type Quiz struct {
	WeekNumber int            `json:"week_number"`
	Questions  []QuizQuestion `json:"questions"`
}

// CorrectOptions counts the options flagged correct.
func (q QuizQuestion) CorrectOptions() int {
	n := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}
