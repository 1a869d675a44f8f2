package dto

// CreateApplicationRequest carries the candidate's submitted profile.
type CreateApplicationRequest struct {
	FullName          string `json:"full_name" binding:"required,max=200"`
	Email             string `json:"email" binding:"required,email"`
	PhoneNumber       string `json:"phone_number" binding:"omitempty,max=30"`
	Specialization    string `json:"specialization" binding:"required"`
	YearsOfExperience int    `json:"years_of_experience" binding:"min=0,max=60"`
	LinkedInURL       string `json:"linkedin_url" binding:"omitempty,url"`
	Bio               string `json:"bio" binding:"omitempty,max=4000"`
	CurrentPosition   string `json:"current_position" binding:"omitempty,max=200"`
	Company           string `json:"company" binding:"omitempty,max=200"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type StartTestRequest struct {
	Token string `json:"token" binding:"required"`
}

// SubmittedAnswer is the candidate's choice for one question.
type SubmittedAnswer struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required,oneof=A B C D a b c d"`
}

type SubmitTestRequest struct {
	Token   string            `json:"token" binding:"required"`
	Answers []SubmittedAnswer `json:"answers" binding:"required,dive"`
}
