package services

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

type ApplicationStore interface {
	InsertJobApplication(*models.JobApplication) (*models.JobApplication, error)
	UpdateJobApplicationStatus(id uuid.UUID, status string) error
	DeleteJobApplication(uuid.UUID) error
	GetJobApplication(uuid.UUID) (*models.JobApplication, error)
	ListJobApplications(offset, limit int) ([]models.JobApplication, int, error)
	GetJobPosting(uuid.UUID) (*models.JobPosting, error)
}

// ApplicationService handles public job applications. The CV is the
// one required file in the system: a submission without it fails
// validation before any upload or insert happens.
type ApplicationService struct {
	store  ApplicationStore
	files  FileStore
	bucket string
}

func NewApplicationService(store ApplicationStore, files FileStore, bucket string) *ApplicationService {
	return &ApplicationService{store: store, files: files, bucket: bucket}
}

func (s *ApplicationService) Submit(input *models.JobApplicationInput, cv *models.FileUpload) (*models.JobApplication, error) {
	fileProblems := cvRule.check(cv)
	if cv == nil {
		fileProblems = map[string]string{"cv": "a CV file is required"}
	}
	if err := validateInput(input, fileProblems); err != nil {
		return nil, err
	}

	application := &models.JobApplication{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      nullString(input.Phone),
		Motivation: input.Motivation,
		Status:     models.ApplicationStatusPending,
	}

	if input.JobPostingID != "" {
		postingID, err := uuid.Parse(input.JobPostingID)
		if err != nil {
			return nil, apperrors.NewValidationError(map[string]string{"job_posting_id": "must be a valid id"})
		}
		if _, err := s.store.GetJobPosting(postingID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.NewValidationError(map[string]string{"job_posting_id": "unknown job posting"})
			}
			return nil, err
		}
		application.JobPostingID = uuid.NullUUID{UUID: postingID, Valid: true}
	}

	obj, err := uploadFile(s.files, s.bucket, cv)
	if err != nil {
		return nil, err
	}
	application.CVKey = obj.Key
	application.CVURL = obj.URL

	created, err := s.store.InsertJobApplication(application)
	if err != nil {
		removeBestEffort(s.files, s.bucket, obj.Key)
		return nil, err
	}
	return created, nil
}

func (s *ApplicationService) UpdateStatus(id uuid.UUID, input *models.ApplicationStatusInput) (*models.JobApplication, error) {
	if err := validateInput(input, nil); err != nil {
		return nil, err
	}
	if err := s.store.UpdateJobApplicationStatus(id, input.Status); err != nil {
		return nil, err
	}
	return s.store.GetJobApplication(id)
}

func (s *ApplicationService) Delete(id uuid.UUID) error {
	existing, err := s.store.GetJobApplication(id)
	if err != nil {
		return err
	}

	removeBestEffort(s.files, s.bucket, existing.CVKey)

	return s.store.DeleteJobApplication(id)
}

func (s *ApplicationService) Get(id uuid.UUID) (*models.JobApplication, error) {
	return s.store.GetJobApplication(id)
}

func (s *ApplicationService) List(offset, limit int) ([]models.JobApplication, int, error) {
	return s.store.ListJobApplications(offset, limit)
}
