package dto

import "time"

// QuestionDTO is a question as shown to clients. Correct answers are
// included; the authoring and results views both need them.
type QuestionDTO struct {
	ID              uint     `json:"id"`
	QuizID          uint     `json:"quiz_id"`
	Text            string   `json:"text"`
	Type            string   `json:"type"`
	Options         []string `json:"options,omitempty"`
	CorrectAnswer   string   `json:"correct_answer,omitempty"`
	AcceptedAnswers []string `json:"accepted_answers,omitempty"`
	OrderInQuiz     int      `json:"order"`
}

// QuizDTO is a quiz with its questions, sorted by order ascending.
type QuizDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Duration    int           `json:"duration,omitempty"`
	Code        string        `json:"code"`
	Questions   []QuestionDTO `json:"questions,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// QuizSummaryDTO is used when listing quizzes.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Duration      int       `json:"duration,omitempty"`
	Code          string    `json:"code"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ParticipationDTO is one attempt at a quiz. Score, TimeSpent and
// FinishedAt are null until the attempt is submitted.
type ParticipationDTO struct {
	ID              uint       `json:"id"`
	QuizID          uint       `json:"quiz_id"`
	ParticipantName string     `json:"participant_name"`
	Score           *int       `json:"score,omitempty"`
	TimeSpent       *int       `json:"time_spent,omitempty"`
	Completed       bool       `json:"completed"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
}

// ResponseDTO is one recorded answer with its grading outcome.
type ResponseDTO struct {
	ID                uint    `json:"id"`
	ParticipationID   uint    `json:"participation_id"`
	QuestionID        uint    `json:"question_id"`
	Answer            string  `json:"answer"`
	IsCorrect         *bool   `json:"is_correct,omitempty"`
	IsMarkedForReview bool    `json:"is_marked_for_review"`
	ChallengeReason   *string `json:"challenge_reason,omitempty"`
}

// SubmitResultDTO is returned when a participation is submitted.
type SubmitResultDTO struct {
	Participation  ParticipationDTO `json:"participation"`
	Responses      []ResponseDTO    `json:"responses"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	Percentage     float64          `json:"percentage"`
}

// ReportEntryDTO pairs a question with the response given to it. Unanswered
// questions carry a placeholder response (empty answer, incorrect) so every
// question of the quiz appears in the report.
type ReportEntryDTO struct {
	Question QuestionDTO `json:"question"`
	Response ResponseDTO `json:"response"`
}

// ReportDTO is the assembled result set for one participation. It feeds both
// the results view and the PDF export.
type ReportDTO struct {
	Participation  ParticipationDTO `json:"participation"`
	QuizTitle      string           `json:"quiz_title"`
	QuizCode       string           `json:"quiz_code"`
	PerQuestion    []ReportEntryDTO `json:"per_question"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	Percentage     float64          `json:"percentage"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
