package model

import (
	"time"
)

// Quiz is an authored quiz. The code is a short public identifier that
// participants use to locate the quiz without knowing its numeric id.
type Quiz struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Duration    int        `json:"duration,omitempty"` // minutes
	CreatorID   *uint      `json:"creator_id,omitempty" gorm:"index"`
	Code        string     `json:"code" gorm:"not null;uniqueIndex"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
}
