package services

import (
	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
)

type TeamStore interface {
	InsertTeamMember(*models.TeamMember) (*models.TeamMember, error)
	UpdateTeamMember(*models.TeamMember) error
	DeleteTeamMember(uuid.UUID) error
	GetTeamMember(uuid.UUID) (*models.TeamMember, error)
	ListTeamMembers(offset, limit int) ([]models.TeamMember, int, error)
}

// TeamService keeps team member rows and their portrait images
// consistent: the image is uploaded before any row write, replaced
// images are removed best-effort, and deleting a member always
// attempts to delete its image.
type TeamService struct {
	store  TeamStore
	files  FileStore
	bucket string
}

func NewTeamService(store TeamStore, files FileStore, bucket string) *TeamService {
	return &TeamService{store: store, files: files, bucket: bucket}
}

func (s *TeamService) Create(input *models.TeamMemberInput, image *models.FileUpload) (*models.TeamMember, error) {
	if err := validateInput(input, imageRule.check(image)); err != nil {
		return nil, err
	}

	member := &models.TeamMember{Name: input.Name, Role: input.Role}

	if image != nil {
		obj, err := uploadFile(s.files, s.bucket, image)
		if err != nil {
			return nil, err
		}
		member.ImageKey = nullString(obj.Key)
		member.ImageURL = nullString(obj.URL)
	}

	created, err := s.store.InsertTeamMember(member)
	if err != nil {
		// Row write failed after the upload; don't strand the object.
		if member.ImageKey.Valid {
			removeBestEffort(s.files, s.bucket, member.ImageKey.String)
		}
		return nil, err
	}
	return created, nil
}

func (s *TeamService) Update(id uuid.UUID, input *models.TeamMemberInput, image *models.FileUpload) (*models.TeamMember, error) {
	existing, err := s.store.GetTeamMember(id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input, imageRule.check(image)); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = input.Name
	updated.Role = input.Role

	if image != nil {
		obj, err := replaceFile(s.files, s.bucket, existing.ImageKey, image)
		if err != nil {
			return nil, err
		}
		updated.ImageKey = nullString(obj.Key)
		updated.ImageURL = nullString(obj.URL)
	}

	if err := s.store.UpdateTeamMember(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *TeamService) Delete(id uuid.UUID) error {
	existing, err := s.store.GetTeamMember(id)
	if err != nil {
		return err
	}

	if existing.ImageKey.Valid {
		removeBestEffort(s.files, s.bucket, existing.ImageKey.String)
	}

	return s.store.DeleteTeamMember(id)
}

func (s *TeamService) Get(id uuid.UUID) (*models.TeamMember, error) {
	return s.store.GetTeamMember(id)
}

func (s *TeamService) List(offset, limit int) ([]models.TeamMember, int, error) {
	return s.store.ListTeamMembers(offset, limit)
}
