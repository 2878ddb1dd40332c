package store

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

const projectColumns = `id, title, category, year, description, image_key, image_url, report_key, report_url, created_at`

func scanProject(scanner interface{ Scan(...any) error }, p *models.Project) error {
	return scanner.Scan(
		&p.ID, &p.Title, &p.Category, &p.Year, &p.Description,
		&p.ImageKey, &p.ImageURL, &p.ReportKey, &p.ReportURL, &p.CreatedAt,
	)
}

func (s *Store) InsertProject(p *models.Project) (*models.Project, error) {
	var out models.Project
	err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (title, category, year, description, image_key, image_url, report_key, report_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+projectColumns,
		p.Title, p.Category, p.Year, p.Description, p.ImageKey, p.ImageURL, p.ReportKey, p.ReportURL,
	), &out)
	if err != nil {
		return nil, storeErr("insert projects", err)
	}
	return &out, nil
}

func (s *Store) UpdateProject(p *models.Project) error {
	res, err := s.db.Exec(`
		UPDATE projects
		SET title = $1, category = $2, year = $3, description = $4,
		    image_key = $5, image_url = $6, report_key = $7, report_url = $8
		WHERE id = $9
	`, p.Title, p.Category, p.Year, p.Description, p.ImageKey, p.ImageURL, p.ReportKey, p.ReportURL, p.ID)
	if err != nil {
		return storeErr("update projects", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "projects", ID: p.ID.String()}
	}
	return nil
}

func (s *Store) DeleteProject(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete projects", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "projects", ID: id.String()}
	}
	return nil
}

func (s *Store) GetProject(id uuid.UUID) (*models.Project, error) {
	var p models.Project
	err := scanProject(s.db.QueryRow(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1
	`, id), &p)
	if err != nil {
		return nil, wrapGetErr(err, "projects", id.String())
	}
	return &p, nil
}

// ListProjects pages through projects, most recent first. A non-empty
// search narrows the page with a case-insensitive substring match over
// title, category and description; the total reflects the same filter.
func (s *Store) ListProjects(search string, offset, limit int) ([]models.Project, int, error) {
	where := ""
	countArgs := []any{}
	pageArgs := []any{offset, limit}
	pagePlaceholders := "OFFSET $1 LIMIT $2"
	if search != "" {
		where = `WHERE title ILIKE '%' || $1 || '%'
			OR category ILIKE '%' || $1 || '%'
			OR description ILIKE '%' || $1 || '%'`
		countArgs = []any{search}
		pageArgs = []any{search, offset, limit}
		pagePlaceholders = "OFFSET $2 LIMIT $3"
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects `+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, storeErr("count projects", err)
	}

	query := `SELECT ` + projectColumns + ` FROM projects ` + where +
		` ORDER BY created_at DESC, id DESC ` + pagePlaceholders

	rows, err := s.db.Query(query, pageArgs...)
	if err != nil {
		return nil, 0, storeErr("list projects", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, 0, storeErr("scan projects", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("list projects", err)
	}

	return projects, total, nil
}
