package services

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
)

type MessageStore interface {
	InsertContactMessage(*models.ContactMessage) (*models.ContactMessage, error)
	DeleteContactMessage(uuid.UUID) error
	GetContactMessage(uuid.UUID) (*models.ContactMessage, error)
	ListContactMessages(offset, limit int) ([]models.ContactMessage, int, error)
}

// MessageService is the file-less entity service: contact messages are
// submitted publicly and only listed and deleted by admins.
type MessageService struct {
	store MessageStore
}

func NewMessageService(store MessageStore) *MessageService {
	return &MessageService{store: store}
}

func (s *MessageService) Submit(input *models.ContactMessageInput) (*models.ContactMessage, error) {
	if err := validateInput(input, nil); err != nil {
		return nil, err
	}

	return s.store.InsertContactMessage(&models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
}

func (s *MessageService) Delete(id uuid.UUID) error {
	return s.store.DeleteContactMessage(id)
}

func (s *MessageService) Get(id uuid.UUID) (*models.ContactMessage, error) {
	return s.store.GetContactMessage(id)
}

func (s *MessageService) List(offset, limit int) ([]models.ContactMessage, int, error) {
	return s.store.ListContactMessages(offset, limit)
}
