package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/services"
)

const teamBucket = "team-images"

func portrait(name string, payload string) *models.FileUpload {
	return &models.FileUpload{
		Filename:    name,
		ContentType: "image/jpeg",
		Size:        int64(len(payload)),
		Data:        []byte(payload),
	}
}

func TestTeamCreateRoundTrip(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	created, err := svc.Create(
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Principal Consultant"},
		portrait("ada.jpg", "jpeg-bytes"),
	)
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "Principal Consultant", got.Role)
	require.True(t, got.ImageKey.Valid)

	// The stored reference resolves to the uploaded payload.
	assert.Equal(t, []byte("jpeg-bytes"), files.objects[teamBucket+"/"+got.ImageKey.String])
	assert.Equal(t, files.PublicURL(teamBucket, got.ImageKey.String), got.ImageURL.String)
}

func TestTeamCreateValidation(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	_, err := svc.Create(&models.TeamMemberInput{Name: "A"}, nil)
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "role")

	// No side effects on validation failure.
	assert.Empty(t, store.rows)
	assert.Empty(t, files.objects)
}

func TestTeamCreateRejectsOversizedImage(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	big := portrait("huge.jpg", "x")
	big.Size = 6 << 20

	_, err := svc.Create(&models.TeamMemberInput{Name: "Grace Hopper", Role: "Advisor"}, big)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "image")
	assert.Empty(t, files.objects)
}

func TestTeamUploadFailureAbortsRowWrite(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	files.failUpload = true
	svc := services.NewTeamService(store, files, teamBucket)

	_, err := svc.Create(
		&models.TeamMemberInput{Name: "Grace Hopper", Role: "Advisor"},
		portrait("grace.jpg", "jpeg-bytes"),
	)

	var werr *apperrors.StorageWriteError
	require.ErrorAs(t, err, &werr)
	// The record store is untouched.
	assert.Empty(t, store.rows)
}

func TestTeamUpdateReplacesImage(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	created, err := svc.Create(
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Consultant"},
		portrait("old.jpg", "old-bytes"),
	)
	require.NoError(t, err)
	oldKey := created.ImageKey.String

	updated, err := svc.Update(created.ID,
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Principal Consultant"},
		portrait("new.jpg", "new-bytes"),
	)
	require.NoError(t, err)

	// Exactly one object remains and the row points at it.
	assert.Equal(t, 1, files.objectCount(teamBucket))
	assert.NotEqual(t, oldKey, updated.ImageKey.String)
	assert.Equal(t, []byte("new-bytes"), files.objects[teamBucket+"/"+updated.ImageKey.String])

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.ImageKey, got.ImageKey)
	assert.Equal(t, "Principal Consultant", got.Role)
}

func TestTeamUpdateCarriesImageForward(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	created, err := svc.Create(
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Consultant"},
		portrait("ada.jpg", "jpeg-bytes"),
	)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID,
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Partner"}, nil)
	require.NoError(t, err)

	assert.Equal(t, created.ImageKey, updated.ImageKey)
	assert.Equal(t, 1, files.objectCount(teamBucket))
}

func TestTeamDeleteIsBestEffortOnFiles(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	created, err := svc.Create(
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Consultant"},
		portrait("ada.jpg", "jpeg-bytes"),
	)
	require.NoError(t, err)

	// File removal fails; the row deletion must still go through.
	files.failRemove = true
	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTeamDeleteRemovesImage(t *testing.T) {
	store := &fakeTeamStore{}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	created, err := svc.Create(
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Consultant"},
		portrait("ada.jpg", "jpeg-bytes"),
	)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.Equal(t, 0, files.objectCount(teamBucket))
}

func TestTeamInsertFailureCleansUpUpload(t *testing.T) {
	store := &fakeTeamStore{failInsert: true}
	files := newFakeFileStore()
	svc := services.NewTeamService(store, files, teamBucket)

	_, err := svc.Create(
		&models.TeamMemberInput{Name: "Ada Lovelace", Role: "Consultant"},
		portrait("ada.jpg", "jpeg-bytes"),
	)
	require.Error(t, err)

	// The uploaded object is not stranded in the bucket.
	assert.Equal(t, 0, files.objectCount(teamBucket))
}
