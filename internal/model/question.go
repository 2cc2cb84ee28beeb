package model

const (
	QuestionTypeMultipleChoice = "MULTIPLE_CHOICE"
	QuestionTypeTrueFalse      = "TRUE_FALSE"
	QuestionTypeEssay          = "ESSAY"
)

// Question belongs to a quiz and carries its own correct-answer spec.
// CorrectAnswer is used by MULTIPLE_CHOICE and TRUE_FALSE questions;
// AcceptedAnswers is used by ESSAY questions. Exactly one of the two is
// populated, keyed by Type.
type Question struct {
	ID              uint     `gorm:"primarykey" json:"id"`
	QuizID          uint     `json:"quiz_id" gorm:"not null;index"`
	Text            string   `json:"text" gorm:"type:text;not null"`
	Type            string   `json:"type" gorm:"not null"` // "MULTIPLE_CHOICE", "TRUE_FALSE", "ESSAY"
	Options         []string `json:"options,omitempty" gorm:"serializer:json"`
	CorrectAnswer   string   `json:"correct_answer,omitempty"`
	AcceptedAnswers []string `json:"accepted_answers,omitempty" gorm:"serializer:json"`
	OrderInQuiz     int      `json:"order" gorm:"column:order_in_quiz;not null"`
}
