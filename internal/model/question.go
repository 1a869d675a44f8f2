package model

import (
	"time"

	"gorm.io/gorm"
)

// GeneralCategory tags questions that belong to every specialization's pool.
const GeneralCategory = "General"

// Question is read-only reference data for the assessment. The vetting flow
// never writes to this table; only seeding and admin tooling do.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Category      string         `json:"category" gorm:"not null;index"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"not null"`
	OptionB       string         `json:"option_b" gorm:"not null"`
	OptionC       string         `json:"option_c" gorm:"not null"`
	OptionD       string         `json:"option_d" gorm:"not null"`
	CorrectAnswer string         `json:"-" gorm:"size:1;not null"`
	Difficulty    string         `json:"difficulty"`
	Explanation   string         `json:"-" gorm:"type:text"`
	IsActive      bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
