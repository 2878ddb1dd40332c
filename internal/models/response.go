package models

import "time"

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse is the envelope for every paginated admin list. Revision
// increments whenever the realtime change feed reports a change on the
// collection, so open admin sessions can detect that a re-fetch is due.
type ListResponse[T any] struct {
	Rows       []T    `json:"rows"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalCount int    `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Revision   uint64 `json:"revision"`
}

type TeamMemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	Year        int       `json:"year,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	ReportURL   string    `json:"report_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobPostingResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

type JobApplicationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	JobPostingID string    `json:"job_posting_id,omitempty"`
	Motivation   string    `json:"motivation"`
	Status       string    `json:"status"`
	CVURL        string    `json:"cv_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardResponse struct {
	TeamMembers     int `json:"team_members"`
	Services        int `json:"services"`
	Projects        int `json:"projects"`
	JobApplications int `json:"job_applications"`
	ContactMessages int `json:"contact_messages"`
}

func (m *TeamMember) ToResponse() TeamMemberResponse {
	resp := TeamMemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
	if m.ImageURL.Valid {
		resp.ImageURL = m.ImageURL.String
	}
	return resp
}

func (s *Service) ToResponse() ServiceResponse {
	resp := ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Icon:        string(s.Icon),
		CreatedAt:   s.CreatedAt,
	}
	if s.ImageURL.Valid {
		resp.ImageURL = s.ImageURL.String
	}
	return resp
}

func (p *Project) ToResponse() ProjectResponse {
	resp := ProjectResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
	}
	if p.Category.Valid {
		resp.Category = p.Category.String
	}
	if p.Year.Valid {
		resp.Year = int(p.Year.Int64)
	}
	if p.Description.Valid {
		resp.Description = p.Description.String
	}
	if p.ImageURL.Valid {
		resp.ImageURL = p.ImageURL.String
	}
	if p.ReportURL.Valid {
		resp.ReportURL = p.ReportURL.String
	}
	return resp
}

func (j *JobPosting) ToResponse() JobPostingResponse {
	return JobPostingResponse{
		ID:             j.ID.String(),
		Title:          j.Title,
		Location:       j.Location,
		EmploymentType: j.EmploymentType,
		Description:    j.Description,
		CreatedAt:      j.CreatedAt,
	}
}

func (a *JobApplication) ToResponse() JobApplicationResponse {
	resp := JobApplicationResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		Email:      a.Email,
		Motivation: a.Motivation,
		Status:     a.Status,
		CVURL:      a.CVURL,
		CreatedAt:  a.CreatedAt,
	}
	if a.Phone.Valid {
		resp.Phone = a.Phone.String
	}
	if a.JobPostingID.Valid {
		resp.JobPostingID = a.JobPostingID.UUID.String()
	}
	return resp
}

func (c *ContactMessage) ToResponse() ContactMessageResponse {
	return ContactMessageResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
