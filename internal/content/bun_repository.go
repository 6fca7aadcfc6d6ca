package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
)

// BunProjectRepository persists projects through bun. Single-row operations
// go through the shared repository helpers; multi-step mutations run inside
// an explicit transaction.
type BunProjectRepository struct {
	db   *bun.DB
	repo repository.Repository[*Project]
}

func NewBunProjectRepository(db *bun.DB) *BunProjectRepository {
	return &BunProjectRepository{
		db:   db,
		repo: NewProjectRepository(db),
	}
}

func (r *BunProjectRepository) Create(ctx context.Context, record *Project) (*Project, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapWriteError(err, KindProject, record.Slug)
	}
	return created, nil
}

func (r *BunProjectRepository) Update(ctx context.Context, record *Project) (*Project, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapWriteError(err, KindProject, record.Slug)
	}
	return updated, nil
}

// Delete removes the project and clears the back-reference on dependent
// devlogs within the same transaction. Referencing devlogs survive.
func (r *BunProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DeleteMany(ctx, []uuid.UUID{id})
}

func (r *BunProjectRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if r.db == nil {
		return fmt.Errorf("project repository: database not configured")
	}
	if len(ids) == 0 {
		return nil
	}

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*Devlog)(nil)).
			Set("project_id = NULL").
			Where("?TableAlias.project_id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return fmt.Errorf("clear devlog project references: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*Project)(nil)).
			Where("?TableAlias.id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete projects: %w", err)
		}
		return nil
	})
}

func (r *BunProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "project", id.String())
	}
	return result, nil
}

func (r *BunProjectRepository) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "project", slug)
	}
	return result, nil
}

func (r *BunProjectRepository) List(ctx context.Context, query ProjectQuery) ([]*Project, error) {
	if r.db == nil {
		return nil, fmt.Errorf("project repository: database not configured")
	}

	var records []*Project
	q := r.db.NewSelect().
		Model(&records).
		Order("created_at DESC")

	if query.FeaturedOnly {
		q = q.Where("?TableAlias.is_featured = ?", true)
	}
	if pattern := searchPattern(query.Search); pattern != "" {
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("lower(?TableAlias.title) LIKE ?", pattern).
				WhereOr("lower(?TableAlias.description) LIKE ?", pattern)
		})
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return records, nil
}

// BunDevlogRepository persists devlogs through bun.
type BunDevlogRepository struct {
	db   *bun.DB
	repo repository.Repository[*Devlog]
}

func NewBunDevlogRepository(db *bun.DB) *BunDevlogRepository {
	return &BunDevlogRepository{
		db:   db,
		repo: NewDevlogRepository(db),
	}
}

func (r *BunDevlogRepository) Create(ctx context.Context, record *Devlog) (*Devlog, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapWriteError(err, KindDevlog, record.Slug)
	}
	return created, nil
}

// CreateMany inserts the batch inside one transaction; a constraint failure
// on any record rolls back every record.
func (r *BunDevlogRepository) CreateMany(ctx context.Context, records []*Devlog) ([]*Devlog, error) {
	if r.db == nil {
		return nil, fmt.Errorf("devlog repository: database not configured")
	}
	if len(records) == 0 {
		return nil, nil
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&records).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, mapWriteError(err, KindDevlog, "")
	}
	return records, nil
}

func (r *BunDevlogRepository) Update(ctx context.Context, record *Devlog) (*Devlog, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapWriteError(err, KindDevlog, record.Slug)
	}
	return updated, nil
}

func (r *BunDevlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DeleteMany(ctx, []uuid.UUID{id})
}

func (r *BunDevlogRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if r.db == nil {
		return fmt.Errorf("devlog repository: database not configured")
	}
	if len(ids) == 0 {
		return nil
	}

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*Devlog)(nil)).
			Where("?TableAlias.id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete devlogs: %w", err)
		}
		return nil
	})
}

func (r *BunDevlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*Devlog, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "devlog", id.String())
	}
	return result, nil
}

func (r *BunDevlogRepository) GetBySlug(ctx context.Context, slug string) (*Devlog, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "devlog", slug)
	}
	return result, nil
}

func (r *BunDevlogRepository) List(ctx context.Context, query DevlogQuery) ([]*Devlog, error) {
	if r.db == nil {
		return nil, fmt.Errorf("devlog repository: database not configured")
	}

	var records []*Devlog
	q := r.db.NewSelect().
		Model(&records).
		Order("created_at DESC")

	if query.PublishedOnly {
		q = q.Where("?TableAlias.is_published = ?", true)
	}
	if query.ProjectID != nil {
		q = q.Where("?TableAlias.project_id = ?", *query.ProjectID)
	}
	if pattern := searchPattern(query.Search); pattern != "" {
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("lower(?TableAlias.title) LIKE ?", pattern).
				WhereOr("lower(?TableAlias.tagline) LIKE ?", pattern)
		})
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list devlogs: %w", err)
	}
	return records, nil
}

func searchPattern(search string) string {
	trimmed := strings.ToLower(strings.TrimSpace(search))
	if trimmed == "" {
		return ""
	}
	return "%" + trimmed + "%"
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

// mapWriteError distinguishes uniqueness violations raised at commit time
// from other storage failures. The unique index on slug is the sole arbiter
// when concurrent writers race for the same value.
func mapWriteError(err error, kind EntityKind, slug string) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(err) {
		return &ConflictError{Entity: kind, Slug: slug}
	}
	return fmt.Errorf("%s repository error: %w", kind, err)
}

func isConstraintViolation(err error) bool {
	// Writes routed through the repository helpers come back wrapped in the
	// library's categorized errors, which do not unwrap to the driver types.
	if repository.IsDuplicatedKey(err) || repository.IsConstraintViolation(err) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return false
}
