package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/services"
)

const (
	projectImageBucket  = "project-images"
	projectReportBucket = "project-reports"
)

func projectInput(title string) *models.ProjectInput {
	return &models.ProjectInput{
		Title:       title,
		Category:    "Energy",
		Year:        2024,
		Description: "Grid modernization program for a regional utility.",
	}
}

func projectImage() *models.FileUpload {
	return &models.FileUpload{
		Filename:    "cover.jpg",
		ContentType: "image/jpeg",
		Size:        2048,
		Data:        []byte("jpeg-bytes"),
	}
}

func projectReport() *models.FileUpload {
	return &models.FileUpload{
		Filename:    "report.pdf",
		ContentType: "application/pdf",
		Size:        4096,
		Data:        []byte("%PDF-1.4 report"),
	}
}

func newProjectService(store *fakeProjectStore, files *fakeFileStore) *services.ProjectService {
	return services.NewProjectService(store, files, projectImageBucket, projectReportBucket)
}

func TestProjectCreateWithBothFiles(t *testing.T) {
	store := &fakeProjectStore{}
	files := newFakeFileStore()
	svc := newProjectService(store, files)

	created, err := svc.Create(projectInput("Grid Modernization"), projectImage(), projectReport())
	require.NoError(t, err)

	assert.True(t, created.ImageKey.Valid)
	assert.True(t, created.ReportKey.Valid)
	assert.Equal(t, 1, files.objectCount(projectImageBucket))
	assert.Equal(t, 1, files.objectCount(projectReportBucket))
}

func TestProjectCreateWithoutFiles(t *testing.T) {
	store := &fakeProjectStore{}
	svc := newProjectService(store, newFakeFileStore())

	created, err := svc.Create(projectInput("Grid Modernization"), nil, nil)
	require.NoError(t, err)

	assert.False(t, created.ImageKey.Valid)
	assert.False(t, created.ReportKey.Valid)
}

func TestProjectInsertFailureCleansUpBothUploads(t *testing.T) {
	store := &fakeProjectStore{failInsert: true}
	files := newFakeFileStore()
	svc := newProjectService(store, files)

	_, err := svc.Create(projectInput("Grid Modernization"), projectImage(), projectReport())
	require.Error(t, err)

	// Both fresh uploads must be removed when the row write fails.
	assert.Empty(t, files.objects)
}

func TestProjectReportUploadFailureRemovesImage(t *testing.T) {
	store := &fakeProjectStore{}
	files := newFakeFileStore()
	svc := newProjectService(store, files)

	// The image uploads first; make the report upload fail after it.
	files.failAfter = 1
	_, err := svc.Create(projectInput("Grid Modernization"), projectImage(), projectReport())
	require.Error(t, err)

	assert.Empty(t, files.objects)
	assert.Empty(t, store.rows)
}

func TestProjectUpdateReplacesOnlyProvidedFile(t *testing.T) {
	store := &fakeProjectStore{}
	files := newFakeFileStore()
	svc := newProjectService(store, files)

	created, err := svc.Create(projectInput("Grid Modernization"), projectImage(), projectReport())
	require.NoError(t, err)

	newReport := projectReport()
	newReport.Data = []byte("%PDF-1.4 v2")
	updated, err := svc.Update(created.ID, projectInput("Grid Modernization"), nil, newReport)
	require.NoError(t, err)

	assert.Equal(t, created.ImageKey, updated.ImageKey)
	assert.NotEqual(t, created.ReportKey, updated.ReportKey)
	assert.Equal(t, 1, files.objectCount(projectImageBucket))
	assert.Equal(t, 1, files.objectCount(projectReportBucket))
}

func TestProjectDeleteRemovesBothFiles(t *testing.T) {
	store := &fakeProjectStore{}
	files := newFakeFileStore()
	svc := newProjectService(store, files)

	created, err := svc.Create(projectInput("Grid Modernization"), projectImage(), projectReport())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.Empty(t, store.rows)
	assert.Empty(t, files.objects)
}

func TestProjectListSearch(t *testing.T) {
	store := &fakeProjectStore{}
	svc := newProjectService(store, newFakeFileStore())

	_, err := svc.Create(projectInput("Grid Modernization"), nil, nil)
	require.NoError(t, err)
	_, err = svc.Create(projectInput("Retail Expansion"), nil, nil)
	require.NoError(t, err)

	rows, total, err := svc.List("grid", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Grid Modernization", rows[0].Title)

	_, total, err = svc.List("", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
