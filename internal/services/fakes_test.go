package services_test

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

// fakeFileStore keeps objects in memory, keyed bucket/key.
type fakeFileStore struct {
	objects    map[string][]byte
	failUpload bool
	failAfter  int // fail uploads once this many have succeeded
	failRemove bool
	uploads    int
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{objects: make(map[string][]byte)}
}

func (f *fakeFileStore) Upload(bucket string, file *models.FileUpload) (models.StoredObject, error) {
	if f.failUpload || (f.failAfter > 0 && f.uploads >= f.failAfter) {
		return models.StoredObject{}, errors.New("quota exceeded")
	}
	f.uploads++
	key := fmt.Sprintf("%d/%s", f.uploads, file.Filename)
	data := make([]byte, len(file.Data))
	copy(data, file.Data)
	f.objects[bucket+"/"+key] = data
	return models.StoredObject{Key: key, URL: f.PublicURL(bucket, key)}, nil
}

func (f *fakeFileStore) Remove(bucket, key string) error {
	if f.failRemove {
		return errors.New("storage flake")
	}
	delete(f.objects, bucket+"/"+key)
	return nil
}

func (f *fakeFileStore) PublicURL(bucket, key string) string {
	return "https://files.test/" + bucket + "/" + key
}

func (f *fakeFileStore) objectCount(bucket string) int {
	count := 0
	for path := range f.objects {
		if len(path) > len(bucket) && path[:len(bucket)+1] == bucket+"/" {
			count++
		}
	}
	return count
}

// fakeTeamStore is an in-memory TeamStore with insertion-ordered rows.
type fakeTeamStore struct {
	rows       []models.TeamMember
	failInsert bool
	inserts    int
}

func (s *fakeTeamStore) InsertTeamMember(m *models.TeamMember) (*models.TeamMember, error) {
	if s.failInsert {
		return nil, &apperrors.StoreError{Op: "insert team_members", Err: errors.New("constraint violation")}
	}
	s.inserts++
	row := *m
	row.ID = uuid.New()
	row.CreatedAt = time.Unix(int64(s.inserts), 0)
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *fakeTeamStore) UpdateTeamMember(m *models.TeamMember) error {
	for i := range s.rows {
		if s.rows[i].ID == m.ID {
			updated := *m
			updated.CreatedAt = s.rows[i].CreatedAt
			s.rows[i] = updated
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "team_members", ID: m.ID.String()}
}

func (s *fakeTeamStore) DeleteTeamMember(id uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "team_members", ID: id.String()}
}

func (s *fakeTeamStore) GetTeamMember(id uuid.UUID) (*models.TeamMember, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, &apperrors.NotFoundError{Collection: "team_members", ID: id.String()}
}

func (s *fakeTeamStore) ListTeamMembers(offset, limit int) ([]models.TeamMember, int, error) {
	return pageOf(s.rows, offset, limit)
}

// fakeServiceStore is an in-memory ServiceStore keyed by slug.
type fakeServiceStore struct {
	rows    []models.Service
	inserts int
}

func (s *fakeServiceStore) InsertService(svc *models.Service) (*models.Service, error) {
	s.inserts++
	row := *svc
	row.CreatedAt = time.Unix(int64(s.inserts), 0)
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *fakeServiceStore) UpdateService(svc *models.Service) error {
	for i := range s.rows {
		if s.rows[i].ID == svc.ID {
			updated := *svc
			updated.CreatedAt = s.rows[i].CreatedAt
			s.rows[i] = updated
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "services", ID: svc.ID}
}

func (s *fakeServiceStore) DeleteService(id string) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "services", ID: id}
}

func (s *fakeServiceStore) GetService(id string) (*models.Service, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, &apperrors.NotFoundError{Collection: "services", ID: id}
}

func (s *fakeServiceStore) ServiceExists(id string) (bool, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeServiceStore) ListServices(offset, limit int) ([]models.Service, int, error) {
	return pageOf(s.rows, offset, limit)
}

// fakeApplicationStore is an in-memory ApplicationStore plus postings.
type fakeApplicationStore struct {
	rows       []models.JobApplication
	postings   []models.JobPosting
	failInsert bool
	inserts    int
}

func (s *fakeApplicationStore) InsertJobApplication(a *models.JobApplication) (*models.JobApplication, error) {
	if s.failInsert {
		return nil, &apperrors.StoreError{Op: "insert job_applications", Err: errors.New("constraint violation")}
	}
	s.inserts++
	row := *a
	row.ID = uuid.New()
	row.CreatedAt = time.Unix(int64(s.inserts), 0)
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *fakeApplicationStore) UpdateJobApplicationStatus(id uuid.UUID, status string) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Status = status
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "job_applications", ID: id.String()}
}

func (s *fakeApplicationStore) DeleteJobApplication(id uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "job_applications", ID: id.String()}
}

func (s *fakeApplicationStore) GetJobApplication(id uuid.UUID) (*models.JobApplication, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, &apperrors.NotFoundError{Collection: "job_applications", ID: id.String()}
}

func (s *fakeApplicationStore) ListJobApplications(offset, limit int) ([]models.JobApplication, int, error) {
	return pageOf(s.rows, offset, limit)
}

func (s *fakeApplicationStore) GetJobPosting(id uuid.UUID) (*models.JobPosting, error) {
	for i := range s.postings {
		if s.postings[i].ID == id {
			row := s.postings[i]
			return &row, nil
		}
	}
	return nil, &apperrors.NotFoundError{Collection: "job_postings", ID: id.String()}
}

// fakeProjectStore is an in-memory ProjectStore with substring search.
type fakeProjectStore struct {
	rows       []models.Project
	failInsert bool
	inserts    int
}

func (s *fakeProjectStore) InsertProject(p *models.Project) (*models.Project, error) {
	if s.failInsert {
		return nil, &apperrors.StoreError{Op: "insert projects", Err: errors.New("constraint violation")}
	}
	s.inserts++
	row := *p
	row.ID = uuid.New()
	row.CreatedAt = time.Unix(int64(s.inserts), 0)
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *fakeProjectStore) UpdateProject(p *models.Project) error {
	for i := range s.rows {
		if s.rows[i].ID == p.ID {
			updated := *p
			updated.CreatedAt = s.rows[i].CreatedAt
			s.rows[i] = updated
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "projects", ID: p.ID.String()}
}

func (s *fakeProjectStore) DeleteProject(id uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "projects", ID: id.String()}
}

func (s *fakeProjectStore) GetProject(id uuid.UUID) (*models.Project, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, &apperrors.NotFoundError{Collection: "projects", ID: id.String()}
}

func (s *fakeProjectStore) ListProjects(search string, offset, limit int) ([]models.Project, int, error) {
	if search == "" {
		return pageOf(s.rows, offset, limit)
	}
	needle := strings.ToLower(search)
	var matched []models.Project
	for _, row := range s.rows {
		haystack := strings.ToLower(row.Title + " " + row.Category.String + " " + row.Description.String)
		if strings.Contains(haystack, needle) {
			matched = append(matched, row)
		}
	}
	return pageOf(matched, offset, limit)
}

// fakeMessageStore is an in-memory MessageStore.
type fakeMessageStore struct {
	rows    []models.ContactMessage
	inserts int
}

func (s *fakeMessageStore) InsertContactMessage(m *models.ContactMessage) (*models.ContactMessage, error) {
	s.inserts++
	row := *m
	row.ID = uuid.New()
	row.CreatedAt = time.Unix(int64(s.inserts), 0)
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *fakeMessageStore) DeleteContactMessage(id uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return &apperrors.NotFoundError{Collection: "contact_messages", ID: id.String()}
}

func (s *fakeMessageStore) GetContactMessage(id uuid.UUID) (*models.ContactMessage, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, &apperrors.NotFoundError{Collection: "contact_messages", ID: id.String()}
}

func (s *fakeMessageStore) ListContactMessages(offset, limit int) ([]models.ContactMessage, int, error) {
	return pageOf(s.rows, offset, limit)
}

func pageOf[T any](rows []T, offset, limit int) ([]T, int, error) {
	n := len(rows)
	if offset > n {
		offset = n
	}
	end := offset + limit
	if end > n {
		end = n
	}
	page := make([]T, end-offset)
	copy(page, rows[offset:end])
	return page, n, nil
}
