package services

import (
	"database/sql"

	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
)

type ProjectStore interface {
	InsertProject(*models.Project) (*models.Project, error)
	UpdateProject(*models.Project) error
	DeleteProject(uuid.UUID) error
	GetProject(uuid.UUID) (*models.Project, error)
	ListProjects(search string, offset, limit int) ([]models.Project, int, error)
}

// ProjectService handles the one entity with two file-bearing fields:
// a showcase image and a PDF report. Each field has its own bucket and
// its own lifecycle; both are cleaned up when the project goes away.
type ProjectService struct {
	store        ProjectStore
	files        FileStore
	imageBucket  string
	reportBucket string
}

func NewProjectService(store ProjectStore, files FileStore, imageBucket, reportBucket string) *ProjectService {
	return &ProjectService{
		store:        store,
		files:        files,
		imageBucket:  imageBucket,
		reportBucket: reportBucket,
	}
}

func (s *ProjectService) Create(input *models.ProjectInput, image, report *models.FileUpload) (*models.Project, error) {
	fileProblems := mergeProblems(imageRule.check(image), reportRule.check(report))
	if err := validateInput(input, fileProblems); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       input.Title,
		Category:    nullString(input.Category),
		Description: nullString(input.Description),
	}
	if input.Year != 0 {
		project.Year = sql.NullInt64{Int64: int64(input.Year), Valid: true}
	}

	// Uploads happen before the row write; on a later failure the
	// fresh objects are removed so nothing is stranded in storage.
	cleanup := func() {
		if project.ImageKey.Valid {
			removeBestEffort(s.files, s.imageBucket, project.ImageKey.String)
		}
		if project.ReportKey.Valid {
			removeBestEffort(s.files, s.reportBucket, project.ReportKey.String)
		}
	}

	if image != nil {
		obj, err := uploadFile(s.files, s.imageBucket, image)
		if err != nil {
			return nil, err
		}
		project.ImageKey = nullString(obj.Key)
		project.ImageURL = nullString(obj.URL)
	}

	if report != nil {
		obj, err := uploadFile(s.files, s.reportBucket, report)
		if err != nil {
			cleanup()
			return nil, err
		}
		project.ReportKey = nullString(obj.Key)
		project.ReportURL = nullString(obj.URL)
	}

	created, err := s.store.InsertProject(project)
	if err != nil {
		cleanup()
		return nil, err
	}
	return created, nil
}

func (s *ProjectService) Update(id uuid.UUID, input *models.ProjectInput, image, report *models.FileUpload) (*models.Project, error) {
	existing, err := s.store.GetProject(id)
	if err != nil {
		return nil, err
	}

	fileProblems := mergeProblems(imageRule.check(image), reportRule.check(report))
	if err := validateInput(input, fileProblems); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = input.Title
	updated.Category = nullString(input.Category)
	updated.Description = nullString(input.Description)
	updated.Year = sql.NullInt64{}
	if input.Year != 0 {
		updated.Year = sql.NullInt64{Int64: int64(input.Year), Valid: true}
	}

	if image != nil {
		obj, err := replaceFile(s.files, s.imageBucket, existing.ImageKey, image)
		if err != nil {
			return nil, err
		}
		updated.ImageKey = nullString(obj.Key)
		updated.ImageURL = nullString(obj.URL)
	}

	if report != nil {
		obj, err := replaceFile(s.files, s.reportBucket, existing.ReportKey, report)
		if err != nil {
			return nil, err
		}
		updated.ReportKey = nullString(obj.Key)
		updated.ReportURL = nullString(obj.URL)
	}

	if err := s.store.UpdateProject(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProjectService) Delete(id uuid.UUID) error {
	existing, err := s.store.GetProject(id)
	if err != nil {
		return err
	}

	if existing.ImageKey.Valid {
		removeBestEffort(s.files, s.imageBucket, existing.ImageKey.String)
	}
	if existing.ReportKey.Valid {
		removeBestEffort(s.files, s.reportBucket, existing.ReportKey.String)
	}

	return s.store.DeleteProject(id)
}

func (s *ProjectService) Get(id uuid.UUID) (*models.Project, error) {
	return s.store.GetProject(id)
}

func (s *ProjectService) List(search string, offset, limit int) ([]models.Project, int, error) {
	return s.store.ListProjects(search, offset, limit)
}
