package store

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

func (s *Store) InsertContactMessage(m *models.ContactMessage) (*models.ContactMessage, error) {
	var out models.ContactMessage
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created_at
	`, m.Name, m.Email, m.Subject, m.Message).Scan(
		&out.ID, &out.Name, &out.Email, &out.Subject, &out.Message, &out.CreatedAt,
	)
	if err != nil {
		return nil, storeErr("insert contact_messages", err)
	}
	return &out, nil
}

func (s *Store) DeleteContactMessage(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete contact_messages", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &apperrors.NotFoundError{Collection: "contact_messages", ID: id.String()}
	}
	return nil
}

func (s *Store) GetContactMessage(id uuid.UUID) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := s.db.QueryRow(`
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, wrapGetErr(err, "contact_messages", id.String())
	}
	return &m, nil
}

// ListContactMessages pages through messages, most recent first.
func (s *Store) ListContactMessages(offset, limit int) ([]models.ContactMessage, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, storeErr("count contact_messages", err)
	}

	rows, err := s.db.Query(`
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, storeErr("list contact_messages", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, 0, storeErr("scan contact_messages", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("list contact_messages", err)
	}

	return messages, total, nil
}
