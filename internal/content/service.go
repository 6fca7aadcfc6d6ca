package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/pkg/interfaces"
	"github.com/google/uuid"
)

// Service exposes the record-store use cases for projects and devlogs.
type Service interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	DeleteProjects(ctx context.Context, ids []uuid.UUID) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*Project, error)
	ListProjects(ctx context.Context, query ProjectQuery) ([]*Project, error)

	CreateDevlog(ctx context.Context, req CreateDevlogRequest) (*Devlog, error)
	CreateDevlogs(ctx context.Context, reqs []CreateDevlogRequest) ([]*Devlog, error)
	UpdateDevlog(ctx context.Context, req UpdateDevlogRequest) (*Devlog, error)
	DeleteDevlog(ctx context.Context, id uuid.UUID) error
	DeleteDevlogs(ctx context.Context, ids []uuid.UUID) error
	GetDevlog(ctx context.Context, id uuid.UUID) (*Devlog, error)
	GetDevlogBySlug(ctx context.Context, slug string) (*Devlog, error)
	GetPublishedDevlog(ctx context.Context, slug string) (*Devlog, error)
	ListDevlogs(ctx context.Context, query DevlogQuery) ([]*Devlog, error)
}

// CreateProjectRequest captures the information required to create a project.
// Slug is optional; when empty one is derived from the title.
type CreateProjectRequest struct {
	Title       string
	Slug        string
	Description string
	IsFeatured  bool
}

// UpdateProjectRequest captures mutable fields for an existing project.
// Nil pointers leave the current value untouched. The slug is intentionally
// absent: slugs are assigned once at creation and never regenerated.
type UpdateProjectRequest struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	IsFeatured  *bool
}

// CreateDevlogRequest captures the information required to create a devlog.
type CreateDevlogRequest struct {
	Title       string
	Slug        string
	Tagline     string
	Content     string
	IsPublished bool
	ProjectID   *uuid.UUID
}

// UpdateDevlogRequest captures mutable fields for an existing devlog.
// ClearProject detaches the devlog from its project; it wins over ProjectID.
type UpdateDevlogRequest struct {
	ID           uuid.UUID
	Title        *string
	Tagline      *string
	Content      *string
	IsPublished  *bool
	ProjectID    *uuid.UUID
	ClearProject bool
}

// ProjectQuery filters project listings. Results are always ordered most
// recent first.
type ProjectQuery struct {
	FeaturedOnly bool
	Search       string
	Limit        int
}

// DevlogQuery filters devlog listings. Results are always ordered most
// recent first.
type DevlogQuery struct {
	PublishedOnly bool
	ProjectID     *uuid.UUID
	Search        string
	Limit         int
}

// ProjectRepository abstracts storage operations for projects. Delete must
// clear the project reference on dependent devlogs within the same
// transaction.
type ProjectRepository interface {
	Create(ctx context.Context, record *Project) (*Project, error)
	Update(ctx context.Context, record *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	List(ctx context.Context, query ProjectQuery) ([]*Project, error)
}

// DevlogRepository abstracts storage operations for devlogs. CreateMany is
// atomic: either every record persists or none do.
type DevlogRepository interface {
	Create(ctx context.Context, record *Devlog) (*Devlog, error)
	CreateMany(ctx context.Context, records []*Devlog) ([]*Devlog, error)
	Update(ctx context.Context, record *Devlog) (*Devlog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Devlog, error)
	GetBySlug(ctx context.Context, slug string) (*Devlog, error)
	List(ctx context.Context, query DevlogQuery) ([]*Devlog, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type IDGenerator func() uuid.UUID

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithSlugGenerator overrides how slugs are derived from titles.
func WithSlugGenerator(generator SlugGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.slugify = generator
		}
	}
}

// WithLogger injects the logger used to report store failures.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	projects ProjectRepository
	devlogs  DevlogRepository
	now      func() time.Time
	id       IDGenerator
	slugify  SlugGenerator
	logger   interfaces.Logger
}

// NewService constructs a record-store service with the required dependencies.
func NewService(projects ProjectRepository, devlogs DevlogRepository, opts ...ServiceOption) Service {
	s := &service{
		projects: projects,
		devlogs:  devlogs,
		now:      time.Now,
		id:       uuid.New,
		slugify:  DeriveSlug,
		logger:   logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateProject validates the request, assigns a slug when absent, and
// persists the record. A duplicate slug surfaces as a conflict error.
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	slug, err := s.resolveSlug(ctx, KindProject, req.Title, req.Slug)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &Project{
		ID:          s.id(),
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, record)
	if err != nil {
		s.logFailure("project", "create", slug, err)
		return nil, err
	}
	return created, nil
}

func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error) {
	if req.ID == uuid.Nil {
		return nil, ErrIDRequired
	}

	record, err := s.projects.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, &ValidationError{Entity: KindProject, Field: "title", Reason: ErrTitleRequired}
		}
		record.Title = title
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.IsFeatured != nil {
		record.IsFeatured = *req.IsFeatured
	}
	record.UpdatedAt = s.now()

	updated, err := s.projects.Update(ctx, record)
	if err != nil {
		s.logFailure("project", "update", record.Slug, err)
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes a project. References on dependent devlogs are
// cleared, not cascaded, inside the same transaction.
func (s *service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		s.logFailure("project", "delete", id.String(), err)
		return err
	}
	return nil
}

func (s *service) DeleteProjects(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyBatch
	}
	if err := s.projects.DeleteMany(ctx, ids); err != nil {
		s.logFailure("project", "bulk_delete", "", err)
		return err
	}
	return nil
}

func (s *service) GetProject(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *service) GetProjectBySlug(ctx context.Context, slug string) (*Project, error) {
	return s.projects.GetBySlug(ctx, strings.TrimSpace(slug))
}

func (s *service) ListProjects(ctx context.Context, query ProjectQuery) ([]*Project, error) {
	return s.projects.List(ctx, query)
}

func (s *service) CreateDevlog(ctx context.Context, req CreateDevlogRequest) (*Devlog, error) {
	record, err := s.buildDevlog(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := s.devlogs.Create(ctx, record)
	if err != nil {
		s.logFailure("devlog", "create", record.Slug, err)
		return nil, err
	}
	return created, nil
}

// CreateDevlogs persists a batch atomically: if any record fails validation
// or collides on slug, nothing is committed.
func (s *service) CreateDevlogs(ctx context.Context, reqs []CreateDevlogRequest) ([]*Devlog, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	records := make([]*Devlog, 0, len(reqs))
	for _, req := range reqs {
		record, err := s.buildDevlog(ctx, req)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	created, err := s.devlogs.CreateMany(ctx, records)
	if err != nil {
		s.logFailure("devlog", "bulk_create", "", err)
		return nil, err
	}
	return created, nil
}

func (s *service) UpdateDevlog(ctx context.Context, req UpdateDevlogRequest) (*Devlog, error) {
	if req.ID == uuid.Nil {
		return nil, ErrIDRequired
	}

	record, err := s.devlogs.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, &ValidationError{Entity: KindDevlog, Field: "title", Reason: ErrTitleRequired}
		}
		record.Title = title
	}
	if req.Tagline != nil {
		if err := validateTagline(*req.Tagline); err != nil {
			return nil, err
		}
		record.Tagline = strings.TrimSpace(*req.Tagline)
	}
	if req.Content != nil {
		record.Content = *req.Content
	}
	if req.IsPublished != nil {
		record.IsPublished = *req.IsPublished
	}
	switch {
	case req.ClearProject:
		record.ProjectID = nil
	case req.ProjectID != nil:
		if err := s.checkProjectExists(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
		record.ProjectID = req.ProjectID
	}
	record.UpdatedAt = s.now()

	updated, err := s.devlogs.Update(ctx, record)
	if err != nil {
		s.logFailure("devlog", "update", record.Slug, err)
		return nil, err
	}
	return updated, nil
}

func (s *service) DeleteDevlog(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	if err := s.devlogs.Delete(ctx, id); err != nil {
		s.logFailure("devlog", "delete", id.String(), err)
		return err
	}
	return nil
}

func (s *service) DeleteDevlogs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyBatch
	}
	if err := s.devlogs.DeleteMany(ctx, ids); err != nil {
		s.logFailure("devlog", "bulk_delete", "", err)
		return err
	}
	return nil
}

func (s *service) GetDevlog(ctx context.Context, id uuid.UUID) (*Devlog, error) {
	return s.devlogs.GetByID(ctx, id)
}

func (s *service) GetDevlogBySlug(ctx context.Context, slug string) (*Devlog, error) {
	return s.devlogs.GetBySlug(ctx, strings.TrimSpace(slug))
}

// GetPublishedDevlog fetches a devlog by slug, treating unpublished entries
// as missing so drafts never leak through public reads.
func (s *service) GetPublishedDevlog(ctx context.Context, slug string) (*Devlog, error) {
	record, err := s.devlogs.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if !record.IsPublished {
		return nil, &NotFoundError{Resource: "devlog", Key: slug}
	}
	return record, nil
}

func (s *service) ListDevlogs(ctx context.Context, query DevlogQuery) ([]*Devlog, error) {
	return s.devlogs.List(ctx, query)
}

func (s *service) buildDevlog(ctx context.Context, req CreateDevlogRequest) (*Devlog, error) {
	if err := validateTagline(req.Tagline); err != nil {
		return nil, err
	}

	slug, err := s.resolveDevlogSlug(ctx, req.Title, req.Slug)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if err := s.checkProjectExists(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	return &Devlog{
		ID:          s.id(),
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Tagline:     strings.TrimSpace(req.Tagline),
		Content:     req.Content,
		IsPublished: req.IsPublished,
		ProjectID:   req.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// resolveSlug validates the title, honours a caller-supplied slug, and
// otherwise derives one. A pre-flight lookup catches duplicates early; the
// unique index remains the final arbiter at commit time.
func (s *service) resolveSlug(ctx context.Context, kind EntityKind, title, explicit string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", &ValidationError{Entity: kind, Field: "title", Reason: ErrTitleRequired}
	}

	slug := strings.TrimSpace(explicit)
	if slug == "" {
		slug = s.slugify(kind, title)
	} else if !IsValidSlug(slug) {
		return "", &ValidationError{Entity: kind, Field: "slug", Reason: ErrSlugInvalid}
	}

	if err := s.checkSlugFree(ctx, kind, slug); err != nil {
		return "", err
	}
	return slug, nil
}

func (s *service) resolveDevlogSlug(ctx context.Context, title, explicit string) (string, error) {
	return s.resolveSlug(ctx, KindDevlog, title, explicit)
}

func (s *service) checkSlugFree(ctx context.Context, kind EntityKind, slug string) error {
	var err error
	switch kind {
	case KindProject:
		_, err = s.projects.GetBySlug(ctx, slug)
	default:
		_, err = s.devlogs.GetBySlug(ctx, slug)
	}

	if err == nil {
		return &ConflictError{Entity: kind, Slug: slug}
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func (s *service) checkProjectExists(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return &ValidationError{Entity: KindDevlog, Field: "project_id", Reason: ErrProjectUnknown}
		}
		return err
	}
	return nil
}

func (s *service) logFailure(entity, operation, slug string, err error) {
	logger := logging.WithEntityContext(s.logger, entity, operation, slug)
	logger.Error("content store operation failed", "error", err)
}

func validateTagline(tagline string) error {
	trimmed := strings.TrimSpace(tagline)
	if trimmed == "" {
		return &ValidationError{Entity: KindDevlog, Field: "tagline", Reason: ErrTaglineRequired}
	}
	if len(trimmed) > TaglineMaxLength {
		return &ValidationError{Entity: KindDevlog, Field: "tagline", Reason: ErrTaglineTooLong}
	}
	return nil
}
