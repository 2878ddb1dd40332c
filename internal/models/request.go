package models

// Input DTOs validated by the persistence services (validator/v10 tags).
// Multipart file parts are carried separately as FileUpload values.

type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type TeamMemberInput struct {
	Name string `form:"name" validate:"required,min=2"`
	Role string `form:"role" validate:"required,min=2"`
}

type ServiceInput struct {
	Title       string `form:"title" validate:"required,min=2"`
	Description string `form:"description" validate:"required,min=10"`
	Icon        string `form:"icon"`
}

type ProjectInput struct {
	Title       string `form:"title" validate:"required,min=2"`
	Category    string `form:"category"`
	Year        int    `form:"year" validate:"omitempty,gte=1900,lte=2100"`
	Description string `form:"description"`
}

type JobApplicationInput struct {
	Name         string `form:"name" validate:"required,min=2"`
	Email        string `form:"email" validate:"required,email"`
	Phone        string `form:"phone"`
	JobPostingID string `form:"job_posting_id" validate:"omitempty,uuid"`
	Motivation   string `form:"motivation" validate:"required,min=10"`
}

type ApplicationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing accepted rejected"`
}

type ContactMessageInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2"`
	Message string `json:"message" validate:"required,min=10"`
}
