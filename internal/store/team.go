package store

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

func (s *Store) InsertTeamMember(m *models.TeamMember) (*models.TeamMember, error) {
	var out models.TeamMember
	err := s.db.QueryRow(`
		INSERT INTO team_members (name, role, image_key, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, role, image_key, image_url, created_at
	`, m.Name, m.Role, m.ImageKey, m.ImageURL).Scan(
		&out.ID, &out.Name, &out.Role, &out.ImageKey, &out.ImageURL, &out.CreatedAt,
	)
	if err != nil {
		return nil, storeErr("insert team_members", err)
	}
	return &out, nil
}

func (s *Store) UpdateTeamMember(m *models.TeamMember) error {
	res, err := s.db.Exec(`
		UPDATE team_members
		SET name = $1, role = $2, image_key = $3, image_url = $4
		WHERE id = $5
	`, m.Name, m.Role, m.ImageKey, m.ImageURL, m.ID)
	if err != nil {
		return storeErr("update team_members", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "team_members", ID: m.ID.String()}
	}
	return nil
}

func (s *Store) DeleteTeamMember(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete team_members", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "team_members", ID: id.String()}
	}
	return nil
}

func (s *Store) GetTeamMember(id uuid.UUID) (*models.TeamMember, error) {
	var m models.TeamMember
	err := s.db.QueryRow(`
		SELECT id, name, role, image_key, image_url, created_at
		FROM team_members
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Role, &m.ImageKey, &m.ImageURL, &m.CreatedAt)
	if err != nil {
		return nil, wrapGetErr(err, "team_members", id.String())
	}
	return &m, nil
}

// ListTeamMembers pages through members in display order.
func (s *Store) ListTeamMembers(offset, limit int) ([]models.TeamMember, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM team_members`).Scan(&total); err != nil {
		return nil, 0, storeErr("count team_members", err)
	}

	rows, err := s.db.Query(`
		SELECT id, name, role, image_key, image_url, created_at
		FROM team_members
		ORDER BY created_at ASC, id ASC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, storeErr("list team_members", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.ImageKey, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, 0, storeErr("scan team_members", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("list team_members", err)
	}

	return members, total, nil
}
