package content_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-devlog/internal/content"
	"github.com/google/uuid"
)

func newMemoryService(opts ...content.ServiceOption) (content.Service, *content.MemoryProjectRepository, *content.MemoryDevlogRepository) {
	projects := content.NewMemoryProjectRepository()
	devlogs := content.NewMemoryDevlogRepository()
	projects.BindDevlogs(devlogs)
	svc := content.NewService(projects, devlogs, opts...)
	return svc, projects, devlogs
}

func TestCreateProjectDerivesSlugAndStampsTimestamps(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newMemoryService(content.WithClock(func() time.Time { return now }))

	project, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
		Title:       "My First Project",
		Description: "kicking the tires",
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.Slug != "my-first-project" {
		t.Fatalf("expected derived slug my-first-project, got %q", project.Slug)
	}
	if project.ID == uuid.Nil {
		t.Fatal("expected generated project id")
	}
	if !project.CreatedAt.Equal(now) || !project.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", now, project.CreatedAt, project.UpdatedAt)
	}
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	svc, _, _ := newMemoryService()

	_, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{})
	var invalid *content.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if invalid.Field != "title" {
		t.Fatalf("expected title field, got %q", invalid.Field)
	}
	if !errors.Is(err, content.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired sentinel, got %v", err)
	}
}

func TestCreateProjectRejectsMalformedExplicitSlug(t *testing.T) {
	svc, _, _ := newMemoryService()

	_, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
		Title: "Valid Title",
		Slug:  "Not A Slug",
	})
	if !errors.Is(err, content.ErrSlugInvalid) {
		t.Fatalf("expected ErrSlugInvalid, got %v", err)
	}
}

func TestCreateProjectDuplicateSlugConflicts(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	if _, err := svc.CreateProject(ctx, content.CreateProjectRequest{Title: "Duplicate"}); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	_, err := svc.CreateProject(ctx, content.CreateProjectRequest{Title: "Duplicate"})
	var conflict *content.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if !errors.Is(err, content.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists sentinel, got %v", err)
	}
}

func TestCreateProjectEmptyTitleFallsBackToRandomSlug(t *testing.T) {
	svc, _, _ := newMemoryService()

	project, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{Title: "🎉🎉"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if !strings.HasPrefix(project.Slug, "project-") {
		t.Fatalf("expected fallback slug, got %q", project.Slug)
	}
}

func TestCreateDevlogValidatesTagline(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	_, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{Title: "No Tagline"})
	if !errors.Is(err, content.ErrTaglineRequired) {
		t.Fatalf("expected ErrTaglineRequired, got %v", err)
	}

	_, err = svc.CreateDevlog(ctx, content.CreateDevlogRequest{
		Title:   "Long Tagline",
		Tagline: strings.Repeat("x", content.TaglineMaxLength+1),
	})
	if !errors.Is(err, content.ErrTaglineTooLong) {
		t.Fatalf("expected ErrTaglineTooLong, got %v", err)
	}
}

func TestCreateDevlogRejectsUnknownProject(t *testing.T) {
	svc, _, _ := newMemoryService()
	phantom := uuid.New()

	_, err := svc.CreateDevlog(context.Background(), content.CreateDevlogRequest{
		Title:     "Orphan",
		Tagline:   "references a project that does not exist",
		ProjectID: &phantom,
	})
	var invalid *content.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if invalid.Field != "project_id" {
		t.Fatalf("expected project_id field, got %q", invalid.Field)
	}
}

func TestCreateDevlogStoresContentVerbatim(t *testing.T) {
	svc, _, _ := newMemoryService()
	hostile := "# Hi\n\n<script>alert(1)</script>"

	record, err := svc.CreateDevlog(context.Background(), content.CreateDevlogRequest{
		Title:   "Hostile",
		Tagline: "raw markdown is never sanitized at rest",
		Content: hostile,
	})
	if err != nil {
		t.Fatalf("create devlog: %v", err)
	}
	if record.Content != hostile {
		t.Fatalf("expected content stored verbatim, got %q", record.Content)
	}
}

func TestCreateDevlogsIsAtomic(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	_, err := svc.CreateDevlogs(ctx, []content.CreateDevlogRequest{
		{Title: "First", Tagline: "fine"},
		{Title: "Second"}, // missing tagline
	})
	if err == nil {
		t.Fatal("expected bulk create to fail")
	}

	list, err := svc.ListDevlogs(ctx, content.DevlogQuery{})
	if err != nil {
		t.Fatalf("list devlogs: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no devlogs after failed batch, got %d", len(list))
	}
}

func TestCreateDevlogsRejectsEmptyBatch(t *testing.T) {
	svc, _, _ := newMemoryService()
	if _, err := svc.CreateDevlogs(context.Background(), nil); !errors.Is(err, content.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestUpdateDevlogPreservesSlug(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	record, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{
		Title:   "Original Title",
		Tagline: "slugs never change after creation",
	})
	if err != nil {
		t.Fatalf("create devlog: %v", err)
	}

	newTitle := "Completely Different Title"
	updated, err := svc.UpdateDevlog(ctx, content.UpdateDevlogRequest{ID: record.ID, Title: &newTitle})
	if err != nil {
		t.Fatalf("update devlog: %v", err)
	}
	if updated.Slug != record.Slug {
		t.Fatalf("expected slug %q to survive retitle, got %q", record.Slug, updated.Slug)
	}
	if updated.Title != newTitle {
		t.Fatalf("expected title %q, got %q", newTitle, updated.Title)
	}
}

func TestUpdateDevlogClearProjectDetaches(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, content.CreateProjectRequest{Title: "Host"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	record, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{
		Title:     "Attached",
		Tagline:   "starts attached to a project",
		ProjectID: &project.ID,
	})
	if err != nil {
		t.Fatalf("create devlog: %v", err)
	}

	updated, err := svc.UpdateDevlog(ctx, content.UpdateDevlogRequest{ID: record.ID, ClearProject: true})
	if err != nil {
		t.Fatalf("update devlog: %v", err)
	}
	if updated.ProjectID != nil {
		t.Fatalf("expected nil project, got %v", updated.ProjectID)
	}
}

func TestDeleteProjectDetachesDevlogs(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, content.CreateProjectRequest{Title: "Doomed"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	record, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{
		Title:     "Survivor",
		Tagline:   "outlives its project",
		ProjectID: &project.ID,
	})
	if err != nil {
		t.Fatalf("create devlog: %v", err)
	}

	if err := svc.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	if _, err := svc.GetProject(ctx, project.ID); err == nil {
		t.Fatal("expected project lookup to fail after delete")
	}
	survivor, err := svc.GetDevlog(ctx, record.ID)
	if err != nil {
		t.Fatalf("devlog lookup: %v", err)
	}
	if survivor.ProjectID != nil {
		t.Fatalf("expected devlog detached, got project %v", survivor.ProjectID)
	}
}

func TestDeleteProjectUnknownIDIsIdempotent(t *testing.T) {
	svc, _, _ := newMemoryService()

	if err := svc.DeleteProject(context.Background(), uuid.New()); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}

func TestDeleteProjectsRejectsEmptyBatch(t *testing.T) {
	svc, _, _ := newMemoryService()
	if err := svc.DeleteProjects(context.Background(), nil); !errors.Is(err, content.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestGetPublishedDevlogHidesUnpublished(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	record, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{
		Title:   "Draft",
		Tagline: "unpublished entries are invisible to the public surface",
	})
	if err != nil {
		t.Fatalf("create devlog: %v", err)
	}

	_, err = svc.GetPublishedDevlog(ctx, record.Slug)
	var notFound *content.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found for unpublished entry, got %v", err)
	}

	published := true
	if _, err := svc.UpdateDevlog(ctx, content.UpdateDevlogRequest{ID: record.ID, IsPublished: &published}); err != nil {
		t.Fatalf("publish devlog: %v", err)
	}
	if _, err := svc.GetPublishedDevlog(ctx, record.Slug); err != nil {
		t.Fatalf("expected published entry to be visible, got %v", err)
	}
}

func TestListDevlogsPublishedNewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	svc, _, _ := newMemoryService(content.WithClock(func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}))
	ctx := context.Background()

	titles := []string{"Oldest", "Middle", "Newest"}
	for _, title := range titles {
		if _, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{
			Title:       title,
			Tagline:     "ordering fixture",
			IsPublished: title != "Middle",
		}); err != nil {
			t.Fatalf("create devlog %q: %v", title, err)
		}
	}

	list, err := svc.ListDevlogs(ctx, content.DevlogQuery{PublishedOnly: true})
	if err != nil {
		t.Fatalf("list devlogs: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 published entries, got %d", len(list))
	}
	if list[0].Title != "Newest" || list[1].Title != "Oldest" {
		t.Fatalf("expected newest first, got %q then %q", list[0].Title, list[1].Title)
	}
}

func TestListDevlogsSearchMatchesTitleAndTagline(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	fixtures := []content.CreateDevlogRequest{
		{Title: "Postgres Tuning", Tagline: "database work"},
		{Title: "Frontend Polish", Tagline: "CSS and postgres-adjacent tooling"},
		{Title: "Unrelated", Tagline: "nothing to see"},
	}
	for _, req := range fixtures {
		if _, err := svc.CreateDevlog(ctx, req); err != nil {
			t.Fatalf("create devlog %q: %v", req.Title, err)
		}
	}

	list, err := svc.ListDevlogs(ctx, content.DevlogQuery{Search: "postgres"})
	if err != nil {
		t.Fatalf("list devlogs: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(list))
	}
}

func TestListDevlogsLimit(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		if _, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{Title: title, Tagline: "limit fixture"}); err != nil {
			t.Fatalf("create devlog %q: %v", title, err)
		}
	}

	list, err := svc.ListDevlogs(ctx, content.DevlogQuery{Limit: 2})
	if err != nil {
		t.Fatalf("list devlogs: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(list))
	}
}
