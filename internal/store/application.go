package store

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

const applicationColumns = `id, name, email, phone, job_posting_id, motivation, status, cv_key, cv_url, created_at`

func scanApplication(scanner interface{ Scan(...any) error }, a *models.JobApplication) error {
	return scanner.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.JobPostingID,
		&a.Motivation, &a.Status, &a.CVKey, &a.CVURL, &a.CreatedAt,
	)
}

func (s *Store) InsertJobApplication(a *models.JobApplication) (*models.JobApplication, error) {
	var out models.JobApplication
	err := scanApplication(s.db.QueryRow(`
		INSERT INTO job_applications (name, email, phone, job_posting_id, motivation, status, cv_key, cv_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+applicationColumns,
		a.Name, a.Email, a.Phone, a.JobPostingID, a.Motivation, a.Status, a.CVKey, a.CVURL,
	), &out)
	if err != nil {
		return nil, storeErr("insert job_applications", err)
	}
	return &out, nil
}

func (s *Store) UpdateJobApplicationStatus(id uuid.UUID, status string) error {
	res, err := s.db.Exec(`UPDATE job_applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return storeErr("update job_applications", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "job_applications", ID: id.String()}
	}
	return nil
}

func (s *Store) DeleteJobApplication(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete job_applications", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "job_applications", ID: id.String()}
	}
	return nil
}

func (s *Store) GetJobApplication(id uuid.UUID) (*models.JobApplication, error) {
	var a models.JobApplication
	err := scanApplication(s.db.QueryRow(`
		SELECT `+applicationColumns+`
		FROM job_applications
		WHERE id = $1
	`, id), &a)
	if err != nil {
		return nil, wrapGetErr(err, "job_applications", id.String())
	}
	return &a, nil
}

// ListJobApplications pages through applications, most recent first.
func (s *Store) ListJobApplications(offset, limit int) ([]models.JobApplication, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM job_applications`).Scan(&total); err != nil {
		return nil, 0, storeErr("count job_applications", err)
	}

	rows, err := s.db.Query(`
		SELECT `+applicationColumns+`
		FROM job_applications
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, storeErr("list job_applications", err)
	}
	defer rows.Close()

	var applications []models.JobApplication
	for rows.Next() {
		var a models.JobApplication
		if err := scanApplication(rows, &a); err != nil {
			return nil, 0, storeErr("scan job_applications", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("list job_applications", err)
	}

	return applications, total, nil
}
