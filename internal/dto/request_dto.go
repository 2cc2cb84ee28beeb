package dto

// QuestionCreateDTO is used within QuizCreateDTO when authoring a quiz.
// CorrectAnswer carries the answer for MULTIPLE_CHOICE and TRUE_FALSE
// questions; AcceptedAnswers carries the accepted strings for ESSAY
// questions. The service validates that the right one is set for the type.
type QuestionCreateDTO struct {
	Text            string   `json:"text" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=MULTIPLE_CHOICE TRUE_FALSE ESSAY"`
	Options         []string `json:"options"`
	CorrectAnswer   string   `json:"correct_answer"`
	AcceptedAnswers []string `json:"accepted_answers"`
	Order           int      `json:"order" binding:"required,min=1"`
}

// QuizCreateDTO is the payload for creating a quiz together with its
// questions.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Duration    int                 `json:"duration" binding:"omitempty,min=1"` // minutes
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// ParticipationCreateDTO starts a participant's attempt at a quiz.
type ParticipationCreateDTO struct {
	QuizID          uint   `json:"quiz_id" binding:"required"`
	ParticipantName string `json:"participant_name" binding:"required"`
}

// ResponseCreateDTO records one answer. The answer may be empty; an empty
// answer is simply scored like any other.
type ResponseCreateDTO struct {
	ParticipationID   uint   `json:"participation_id" binding:"required"`
	QuestionID        uint   `json:"question_id" binding:"required"`
	Answer            string `json:"answer"`
	IsMarkedForReview bool   `json:"is_marked_for_review"`
}

// ChallengeDTO disputes the grading of a response.
type ChallengeDTO struct {
	ChallengeReason string `json:"challenge_reason" binding:"required"`
}

// SubmitDTO completes a participation.
type SubmitDTO struct {
	TimeSpent int `json:"time_spent" binding:"min=0"` // seconds
}
