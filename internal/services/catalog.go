package services

import (
	"consulting-site-backend/internal/models"
)

type ServiceStore interface {
	InsertService(*models.Service) (*models.Service, error)
	UpdateService(*models.Service) error
	DeleteService(id string) error
	GetService(id string) (*models.Service, error)
	ServiceExists(id string) (bool, error)
	ListServices(offset, limit int) ([]models.Service, int, error)
}

// CatalogService manages the service offerings shown on the site.
// A service's identity is a slug derived from its title at creation;
// slug collisions are disambiguated with a numeric suffix. The slug is
// permanent: later title edits do not re-derive it, so public URLs
// referencing a service stay stable.
type CatalogService struct {
	store  ServiceStore
	files  FileStore
	bucket string
}

func NewCatalogService(store ServiceStore, files FileStore, bucket string) *CatalogService {
	return &CatalogService{store: store, files: files, bucket: bucket}
}

func (s *CatalogService) Create(input *models.ServiceInput, image *models.FileUpload) (*models.Service, error) {
	if err := validateInput(input, imageRule.check(image)); err != nil {
		return nil, err
	}

	slug, err := uniqueSlug(Slugify(input.Title), s.store.ServiceExists)
	if err != nil {
		return nil, err
	}

	svc := &models.Service{
		ID:          slug,
		Title:       input.Title,
		Description: input.Description,
		Icon:        models.ParseIcon(input.Icon),
	}

	if image != nil {
		obj, err := uploadFile(s.files, s.bucket, image)
		if err != nil {
			return nil, err
		}
		svc.ImageKey = nullString(obj.Key)
		svc.ImageURL = nullString(obj.URL)
	}

	created, err := s.store.InsertService(svc)
	if err != nil {
		if svc.ImageKey.Valid {
			removeBestEffort(s.files, s.bucket, svc.ImageKey.String)
		}
		return nil, err
	}
	return created, nil
}

func (s *CatalogService) Update(id string, input *models.ServiceInput, image *models.FileUpload) (*models.Service, error) {
	existing, err := s.store.GetService(id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input, imageRule.check(image)); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Icon = models.ParseIcon(input.Icon)

	if image != nil {
		obj, err := replaceFile(s.files, s.bucket, existing.ImageKey, image)
		if err != nil {
			return nil, err
		}
		updated.ImageKey = nullString(obj.Key)
		updated.ImageURL = nullString(obj.URL)
	}

	if err := s.store.UpdateService(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CatalogService) Delete(id string) error {
	existing, err := s.store.GetService(id)
	if err != nil {
		return err
	}

	if existing.ImageKey.Valid {
		removeBestEffort(s.files, s.bucket, existing.ImageKey.String)
	}

	return s.store.DeleteService(id)
}

func (s *CatalogService) Get(id string) (*models.Service, error) {
	return s.store.GetService(id)
}

func (s *CatalogService) List(offset, limit int) ([]models.Service, int, error) {
	return s.store.ListServices(offset, limit)
}
