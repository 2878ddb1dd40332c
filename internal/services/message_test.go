package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/services"
)

func TestMessageSubmitRoundTrip(t *testing.T) {
	store := &fakeMessageStore{}
	svc := services.NewMessageService(store)

	created, err := svc.Submit(&models.ContactMessageInput{
		Name:    "Lee Park",
		Email:   "lee@example.com",
		Subject: "Partnership inquiry",
		Message: "We would like to discuss a joint engagement.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	rows, total, err := svc.List(0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Partnership inquiry", rows[0].Subject)
}

func TestMessageSubmitValidation(t *testing.T) {
	store := &fakeMessageStore{}
	svc := services.NewMessageService(store)

	_, err := svc.Submit(&models.ContactMessageInput{
		Name:    "L",
		Email:   "not-an-email",
		Subject: "",
		Message: "short",
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "subject")
	assert.Contains(t, verr.Fields, "message")
	assert.Empty(t, store.rows)
}

func TestMessageDelete(t *testing.T) {
	store := &fakeMessageStore{}
	svc := services.NewMessageService(store)

	created, err := svc.Submit(&models.ContactMessageInput{
		Name:    "Lee Park",
		Email:   "lee@example.com",
		Subject: "Partnership inquiry",
		Message: "We would like to discuss a joint engagement.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.True(t, apperrors.IsNotFound(svc.Delete(created.ID)))
}
