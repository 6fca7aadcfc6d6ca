package content

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryProjectRepository is an in-memory implementation for scaffolding and
// tests. It enforces the same slug uniqueness contract as the database.
type MemoryProjectRepository struct {
	mu        sync.RWMutex
	projects  map[uuid.UUID]*Project
	slugIndex map[string]uuid.UUID

	// Devlogs to detach when a project is deleted; wired by BindDevlogs so
	// the memory pair mimics the SET NULL behaviour of the real schema.
	devlogs *MemoryDevlogRepository
}

// NewMemoryProjectRepository creates an empty in-memory project repository.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{
		projects:  make(map[uuid.UUID]*Project),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// BindDevlogs connects the devlog repository so project deletion clears
// references the way the SQL schema does.
func (m *MemoryProjectRepository) BindDevlogs(devlogs *MemoryDevlogRepository) {
	m.devlogs = devlogs
}

func (m *MemoryProjectRepository) Create(_ context.Context, record *Project) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.slugIndex[record.Slug]; exists {
		return nil, &ConflictError{Entity: KindProject, Slug: record.Slug}
	}

	copied := cloneProject(record)
	m.projects[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneProject(copied), nil
}

func (m *MemoryProjectRepository) Update(_ context.Context, record *Project) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.projects[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: record.ID.String()}
	}
	if record.Slug != existing.Slug {
		if _, exists := m.slugIndex[record.Slug]; exists {
			return nil, &ConflictError{Entity: KindProject, Slug: record.Slug}
		}
		delete(m.slugIndex, existing.Slug)
		m.slugIndex[record.Slug] = record.ID
	}

	copied := cloneProject(record)
	m.projects[copied.ID] = copied
	return cloneProject(copied), nil
}

func (m *MemoryProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteMany(ctx, []uuid.UUID{id})
}

func (m *MemoryProjectRepository) DeleteMany(_ context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		rec, ok := m.projects[id]
		if !ok {
			continue
		}
		delete(m.slugIndex, rec.Slug)
		delete(m.projects, id)
		if m.devlogs != nil {
			m.devlogs.detachProject(id)
		}
	}
	return nil
}

func (m *MemoryProjectRepository) GetByID(_ context.Context, id uuid.UUID) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.projects[id]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: id.String()}
	}
	return cloneProject(rec), nil
}

func (m *MemoryProjectRepository) GetBySlug(_ context.Context, slug string) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: slug}
	}
	return cloneProject(m.projects[id]), nil
}

func (m *MemoryProjectRepository) List(_ context.Context, query ProjectQuery) ([]*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Project, 0, len(m.projects))
	for _, rec := range m.projects {
		if query.FeaturedOnly && !rec.IsFeatured {
			continue
		}
		if !matchesSearch(query.Search, rec.Title, rec.Description) {
			continue
		}
		out = append(out, cloneProject(rec))
	}
	sortNewestFirstProjects(out)
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

// MemoryDevlogRepository is an in-memory devlog store for tests.
type MemoryDevlogRepository struct {
	mu        sync.RWMutex
	devlogs   map[uuid.UUID]*Devlog
	slugIndex map[string]uuid.UUID
}

// NewMemoryDevlogRepository creates an empty in-memory devlog repository.
func NewMemoryDevlogRepository() *MemoryDevlogRepository {
	return &MemoryDevlogRepository{
		devlogs:   make(map[uuid.UUID]*Devlog),
		slugIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryDevlogRepository) Create(_ context.Context, record *Devlog) (*Devlog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.slugIndex[record.Slug]; exists {
		return nil, &ConflictError{Entity: KindDevlog, Slug: record.Slug}
	}

	copied := cloneDevlog(record)
	m.devlogs[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneDevlog(copied), nil
}

// CreateMany inserts all records or none, matching the transactional batch
// contract of the bun repository.
func (m *MemoryDevlogRepository) CreateMany(_ context.Context, records []*Devlog) ([]*Devlog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, exists := m.slugIndex[rec.Slug]; exists {
			return nil, &ConflictError{Entity: KindDevlog, Slug: rec.Slug}
		}
		if _, dup := seen[rec.Slug]; dup {
			return nil, &ConflictError{Entity: KindDevlog, Slug: rec.Slug}
		}
		seen[rec.Slug] = struct{}{}
	}

	out := make([]*Devlog, 0, len(records))
	for _, rec := range records {
		copied := cloneDevlog(rec)
		m.devlogs[copied.ID] = copied
		m.slugIndex[copied.Slug] = copied.ID
		out = append(out, cloneDevlog(copied))
	}
	return out, nil
}

func (m *MemoryDevlogRepository) Update(_ context.Context, record *Devlog) (*Devlog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.devlogs[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "devlog", Key: record.ID.String()}
	}
	if record.Slug != existing.Slug {
		if _, exists := m.slugIndex[record.Slug]; exists {
			return nil, &ConflictError{Entity: KindDevlog, Slug: record.Slug}
		}
		delete(m.slugIndex, existing.Slug)
		m.slugIndex[record.Slug] = record.ID
	}

	copied := cloneDevlog(record)
	m.devlogs[copied.ID] = copied
	return cloneDevlog(copied), nil
}

func (m *MemoryDevlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteMany(ctx, []uuid.UUID{id})
}

func (m *MemoryDevlogRepository) DeleteMany(_ context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		rec, ok := m.devlogs[id]
		if !ok {
			continue
		}
		delete(m.slugIndex, rec.Slug)
		delete(m.devlogs, id)
	}
	return nil
}

func (m *MemoryDevlogRepository) GetByID(_ context.Context, id uuid.UUID) (*Devlog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.devlogs[id]
	if !ok {
		return nil, &NotFoundError{Resource: "devlog", Key: id.String()}
	}
	return cloneDevlog(rec), nil
}

func (m *MemoryDevlogRepository) GetBySlug(_ context.Context, slug string) (*Devlog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "devlog", Key: slug}
	}
	return cloneDevlog(m.devlogs[id]), nil
}

func (m *MemoryDevlogRepository) List(_ context.Context, query DevlogQuery) ([]*Devlog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Devlog, 0, len(m.devlogs))
	for _, rec := range m.devlogs {
		if query.PublishedOnly && !rec.IsPublished {
			continue
		}
		if query.ProjectID != nil {
			if rec.ProjectID == nil || *rec.ProjectID != *query.ProjectID {
				continue
			}
		}
		if !matchesSearch(query.Search, rec.Title, rec.Tagline) {
			continue
		}
		out = append(out, cloneDevlog(rec))
	}
	sortNewestFirstDevlogs(out)
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (m *MemoryDevlogRepository) detachProject(projectID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.devlogs {
		if rec.ProjectID != nil && *rec.ProjectID == projectID {
			rec.ProjectID = nil
		}
	}
}

func cloneProject(src *Project) *Project {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Devlogs = nil
	return &copied
}

func cloneDevlog(src *Devlog) *Devlog {
	if src == nil {
		return nil
	}
	copied := *src
	if src.ProjectID != nil {
		id := *src.ProjectID
		copied.ProjectID = &id
	}
	copied.Project = nil
	return &copied
}

func matchesSearch(search string, fields ...string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(search))
	if trimmed == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), trimmed) {
			return true
		}
	}
	return false
}

func sortNewestFirstProjects(records []*Project) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

func sortNewestFirstDevlogs(records []*Devlog) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}
