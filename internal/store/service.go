package store

import (
	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

func (s *Store) InsertService(svc *models.Service) (*models.Service, error) {
	var out models.Service
	err := s.db.QueryRow(`
		INSERT INTO services (id, title, description, icon, image_key, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, icon, image_key, image_url, created_at
	`, svc.ID, svc.Title, svc.Description, svc.Icon, svc.ImageKey, svc.ImageURL).Scan(
		&out.ID, &out.Title, &out.Description, &out.Icon, &out.ImageKey, &out.ImageURL, &out.CreatedAt,
	)
	if err != nil {
		return nil, storeErr("insert services", err)
	}
	return &out, nil
}

func (s *Store) UpdateService(svc *models.Service) error {
	res, err := s.db.Exec(`
		UPDATE services
		SET title = $1, description = $2, icon = $3, image_key = $4, image_url = $5
		WHERE id = $6
	`, svc.Title, svc.Description, svc.Icon, svc.ImageKey, svc.ImageURL, svc.ID)
	if err != nil {
		return storeErr("update services", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "services", ID: svc.ID}
	}
	return nil
}

func (s *Store) DeleteService(id string) error {
	res, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete services", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "services", ID: id}
	}
	return nil
}

func (s *Store) GetService(id string) (*models.Service, error) {
	var svc models.Service
	err := s.db.QueryRow(`
		SELECT id, title, description, icon, image_key, image_url, created_at
		FROM services
		WHERE id = $1
	`, id).Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Icon, &svc.ImageKey, &svc.ImageURL, &svc.CreatedAt)
	if err != nil {
		return nil, wrapGetErr(err, "services", id)
	}
	return &svc, nil
}

// ServiceExists reports whether a slug is already taken.
func (s *Store) ServiceExists(id string) (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM services WHERE id = $1`, id).Scan(&count); err != nil {
		return false, storeErr("exists services", err)
	}
	return count > 0, nil
}

// ListServices pages through services in display order.
func (s *Store) ListServices(offset, limit int) ([]models.Service, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&total); err != nil {
		return nil, 0, storeErr("count services", err)
	}

	rows, err := s.db.Query(`
		SELECT id, title, description, icon, image_key, image_url, created_at
		FROM services
		ORDER BY created_at ASC, id ASC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, storeErr("list services", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Icon, &svc.ImageKey, &svc.ImageURL, &svc.CreatedAt); err != nil {
			return nil, 0, storeErr("scan services", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("list services", err)
	}

	return services, total, nil
}
