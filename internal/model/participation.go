package model

import (
	"time"
)

// Participation is one participant's single attempt at a quiz. Score,
// TimeSpent and FinishedAt stay nil until the attempt is submitted.
type Participation struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	QuizID          uint       `json:"quiz_id" gorm:"not null;index"`
	Quiz            Quiz       `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	ParticipantName string     `json:"participant_name" gorm:"not null"`
	Score           *int       `json:"score,omitempty"`
	TimeSpent       *int       `json:"time_spent,omitempty"` // seconds
	Completed       bool       `json:"completed" gorm:"default:false"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
}
