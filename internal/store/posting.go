package store

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
)

// ListOpenJobPostings returns every posting still accepting
// applications, most recent first.
func (s *Store) ListOpenJobPostings() ([]models.JobPosting, error) {
	rows, err := s.db.Query(`
		SELECT id, title, location, employment_type, description, open, created_at
		FROM job_postings
		WHERE open
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, storeErr("list job_postings", err)
	}
	defer rows.Close()

	var postings []models.JobPosting
	for rows.Next() {
		var p models.JobPosting
		if err := rows.Scan(&p.ID, &p.Title, &p.Location, &p.EmploymentType, &p.Description, &p.Open, &p.CreatedAt); err != nil {
			return nil, storeErr("scan job_postings", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list job_postings", err)
	}

	return postings, nil
}

func (s *Store) GetJobPosting(id uuid.UUID) (*models.JobPosting, error) {
	var p models.JobPosting
	err := s.db.QueryRow(`
		SELECT id, title, location, employment_type, description, open, created_at
		FROM job_postings
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Location, &p.EmploymentType, &p.Description, &p.Open, &p.CreatedAt)
	if err != nil {
		return nil, wrapGetErr(err, "job_postings", id.String())
	}
	return &p, nil
}
