package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TeamMember is listed in display order (created_at ascending).
type TeamMember struct {
	ID        uuid.UUID
	Name      string
	Role      string
	ImageKey  sql.NullString
	ImageURL  sql.NullString
	CreatedAt time.Time
}

// Service is identified by a slug derived from its title.
type Service struct {
	ID          string
	Title       string
	Description string
	Icon        Icon
	ImageKey    sql.NullString
	ImageURL    sql.NullString
	CreatedAt   time.Time
}

type Project struct {
	ID          uuid.UUID
	Title       string
	Category    sql.NullString
	Year        sql.NullInt64
	Description sql.NullString
	ImageKey    sql.NullString
	ImageURL    sql.NullString
	ReportKey   sql.NullString
	ReportURL   sql.NullString
	CreatedAt   time.Time
}

type JobPosting struct {
	ID             uuid.UUID
	Title          string
	Location       string
	EmploymentType string
	Description    string
	Open           bool
	CreatedAt      time.Time
}

// Application statuses. New applications always start as pending.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// JobApplication always carries exactly one CV file.
type JobApplication struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        sql.NullString
	JobPostingID uuid.NullUUID
	Motivation   string
	Status       string
	CVKey        string
	CVURL        string
	CreatedAt    time.Time
}

type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
