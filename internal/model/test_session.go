package model

import (
	"time"

	"gorm.io/gorm"
)

// Test session statuses.
const (
	SessionPending    = "Pending"
	SessionInProgress = "InProgress"
	SessionCompleted  = "Completed"
	SessionExpired    = "Expired"
)

// TestSession is one timed assessment attempt, reachable only through its
// single-use token. QuestionIDs is a JSON array frozen on the first start;
// Score, CorrectAnswers and SubmittedAnswers are written exactly once when
// the session completes.
type TestSession struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	ApplicationID    uint           `json:"application_id" gorm:"not null;index"`
	Application      Application    `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	Token            string         `json:"-" gorm:"size:100;not null;uniqueIndex"`
	Status           string         `json:"status" gorm:"not null;default:'Pending'"`
	ExpiresAt        time.Time      `json:"expires_at"`
	StartedAt        *time.Time     `json:"started_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	TotalQuestions   int            `json:"total_questions"`
	CorrectAnswers   int            `json:"correct_answers"`
	Score            *float64       `json:"score,omitempty"`
	QuestionIDs      string         `json:"-" gorm:"type:text"`
	SubmittedAnswers string         `json:"-" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
