package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles.
const (
	RoleStudent = "Student"
	RoleMentor  = "Mentor"
	RoleAdmin   = "Admin"
)

// User is a login account. The vetting flow only ever creates mentor
// accounts or upgrades existing ones in place.
type User struct {
	ID              string         `gorm:"primarykey;size:36" json:"id"`
	Email           string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash    string         `json:"-" gorm:"not null"`
	FullName        string         `json:"full_name"`
	PhoneNumber     string         `json:"phone_number"`
	Role            string         `json:"role" gorm:"not null;default:'Student'"`
	Specialization  string         `json:"specialization"`
	Bio             string         `json:"bio" gorm:"type:text"`
	JobTitle        string         `json:"job_title"`
	Company         string         `json:"company"`
	LinkedInURL     string         `json:"linkedin_url"`
	ExperienceYears int            `json:"experience_years"`
	EmailVerified   bool           `json:"email_verified"`
	AccountStatus   string         `json:"account_status" gorm:"default:'Active'"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
