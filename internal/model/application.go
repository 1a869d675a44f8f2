package model

import (
	"time"

	"gorm.io/gorm"
)

// Application statuses.
const (
	ApplicationPending  = "Pending"
	ApplicationTestSent = "TestSent"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

// Application is a candidate's request to become a mentor. One row per email;
// rows are reused across retries so attempt history accumulates.
type Application struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	FullName          string         `json:"full_name" gorm:"not null"`
	Email             string         `json:"email" gorm:"not null;uniqueIndex"`
	PhoneNumber       string         `json:"phone_number"`
	Specialization    string         `json:"specialization" gorm:"not null"`
	YearsOfExperience int            `json:"years_of_experience"`
	LinkedInURL       string         `json:"linkedin_url"`
	Bio               string         `json:"bio" gorm:"type:text"`
	CurrentPosition   string         `json:"current_position"`
	Company           string         `json:"company"`
	Status            string         `json:"status" gorm:"not null;default:'Pending';index"`
	TestAttempts      int            `json:"test_attempts"`
	FinalScore        *float64       `json:"final_score,omitempty"`
	RetryAllowedAt    *time.Time     `json:"retry_allowed_at,omitempty"`
	LinkedAccountID   *string        `json:"linked_account_id,omitempty" gorm:"size:36"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
