package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ApplicationSubmittedResponse struct {
	ApplicationID uint   `json:"application_id"`
	Message       string `json:"message"`
	Status        string `json:"status"`
}

// ApplicationResponse is the candidate-facing application snapshot. It never
// carries test content.
type ApplicationResponse struct {
	ID                uint       `json:"id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email"`
	PhoneNumber       string     `json:"phone_number,omitempty"`
	Specialization    string     `json:"specialization"`
	YearsOfExperience int        `json:"years_of_experience"`
	LinkedInURL       string     `json:"linkedin_url,omitempty"`
	Bio               string     `json:"bio,omitempty"`
	CurrentPosition   string     `json:"current_position,omitempty"`
	Company           string     `json:"company,omitempty"`
	Status            string     `json:"status"`
	TestAttempts      int        `json:"test_attempts"`
	FinalScore        *float64   `json:"final_score,omitempty"`
	RetryAllowedAt    *time.Time `json:"retry_allowed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type VerifyTokenResponse struct {
	IsValid          bool       `json:"is_valid"`
	Message          string     `json:"message,omitempty"`
	ApplicantName    string     `json:"applicant_name,omitempty"`
	Specialization   string     `json:"specialization,omitempty"`
	TimeLimitMinutes int        `json:"time_limit_minutes,omitempty"`
	TotalQuestions   int        `json:"total_questions,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

// TestQuestion is a question as shown to the candidate: no correct answer,
// no explanation.
type TestQuestion struct {
	ID           uint   `json:"id"`
	Category     string `json:"category"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	Difficulty   string `json:"difficulty"`
}

type StartTestResponse struct {
	TestID           uint           `json:"test_id"`
	Questions        []TestQuestion `json:"questions"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	StartedAt        time.Time      `json:"started_at"`
	MustSubmitBy     time.Time      `json:"must_submit_by"`
}

type TestResultResponse struct {
	TestID         uint       `json:"test_id"`
	TotalQuestions int        `json:"total_questions"`
	CorrectAnswers int        `json:"correct_answers"`
	Score          float64    `json:"score"`
	Passed         bool       `json:"passed"`
	Message        string     `json:"message"`
	Status         string     `json:"status"`
	RetryAllowedAt *time.Time `json:"retry_allowed_at,omitempty"`
}
