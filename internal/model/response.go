package model

// Response is one participant's answer to one question within a
// participation. IsCorrect is computed by the scoring engine when the
// response is recorded; ChallengeReason is attached later if the
// participant disputes an essay grading.
type Response struct {
	ID                uint     `gorm:"primarykey" json:"id"`
	ParticipationID   uint     `json:"participation_id" gorm:"not null;index"`
	QuestionID        uint     `json:"question_id" gorm:"not null;index"`
	Question          Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer            string   `json:"answer" gorm:"type:text;not null"`
	IsCorrect         *bool    `json:"is_correct,omitempty"`
	IsMarkedForReview bool     `json:"is_marked_for_review" gorm:"default:false"`
	ChallengeReason   *string  `json:"challenge_reason,omitempty"`
}
