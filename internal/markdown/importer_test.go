package markdown_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/markdown"
)

func newImportService() content.Service {
	projects := content.NewMemoryProjectRepository()
	devlogs := content.NewMemoryDevlogRepository()
	projects.BindDevlogs(devlogs)
	return content.NewService(projects, devlogs)
}

func TestImportDirCreatesDevlogs(t *testing.T) {
	ctx := context.Background()
	svc := newImportService()

	project, err := svc.CreateProject(ctx, content.CreateProjectRequest{Title: "Side Project"})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	fsys := fstest.MapFS{
		"first.md": {Data: []byte(`---
title: First Entry
tagline: imported from disk
published: true
project: side-project
---
# Body

content here`)},
		"notes/second.md": {Data: []byte(`---
title: Second Entry
tagline: nested files are discovered too
---
body two`)},
		"ignored.txt": {Data: []byte("not markdown")},
	}

	importer := markdown.NewImporter(markdown.ImporterConfig{Content: svc})
	result, err := importer.ImportDir(ctx, fsys, ".")
	if err != nil {
		t.Fatalf("import dir: %v", err)
	}
	if len(result.Created) != 2 {
		t.Fatalf("expected 2 imports, got created=%v errors=%v", result.Created, result.Errors)
	}

	first, err := svc.GetDevlogBySlug(ctx, "first-entry")
	if err != nil {
		t.Fatalf("lookup first entry: %v", err)
	}
	if !first.IsPublished {
		t.Fatal("expected first entry to be published")
	}
	if first.ProjectID == nil || *first.ProjectID != project.ID {
		t.Fatalf("expected project reference %s, got %v", project.ID, first.ProjectID)
	}

	second, err := svc.GetDevlogBySlug(ctx, "second-entry")
	if err != nil {
		t.Fatalf("lookup second entry: %v", err)
	}
	if second.IsPublished {
		t.Fatal("expected second entry to default to unpublished")
	}
}

func TestImportDirCollectsPerFileErrors(t *testing.T) {
	ctx := context.Background()
	svc := newImportService()

	fsys := fstest.MapFS{
		"bad.md": {Data: []byte(`---
tagline: has no title
---
body`)},
		"good.md": {Data: []byte(`---
title: Good Entry
tagline: survives a bad sibling
---
body`)},
	}

	importer := markdown.NewImporter(markdown.ImporterConfig{Content: svc})
	result, err := importer.ImportDir(ctx, fsys, ".")
	if err != nil {
		t.Fatalf("import dir: %v", err)
	}
	if len(result.Created) != 1 || len(result.Errors) != 1 {
		t.Fatalf("expected one success and one failure, got created=%v errors=%v", result.Created, result.Errors)
	}
	if _, err := svc.GetDevlogBySlug(ctx, "good-entry"); err != nil {
		t.Fatalf("expected good entry to be imported: %v", err)
	}
}

func TestImportDocumentUnknownProjectFails(t *testing.T) {
	importer := markdown.NewImporter(markdown.ImporterConfig{Content: newImportService()})

	doc, err := markdown.BuildDocument("entry.md", []byte(`---
title: Orphan
tagline: references a missing project
project: no-such-project
---
body`))
	if err != nil {
		t.Fatalf("build document: %v", err)
	}
	if _, err := importer.ImportDocument(context.Background(), doc); err == nil {
		t.Fatal("expected error for unknown project slug")
	}
}

func TestParseFrontMatterPreservesBody(t *testing.T) {
	body := "# Title\n\nexact *bytes* kept\n"
	meta, rest, err := markdown.ParseFrontMatter([]byte("---\ntitle: T\n---\n" + body))
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}
	if meta.Title != "T" {
		t.Fatalf("expected title T, got %q", meta.Title)
	}
	if string(rest) != body {
		t.Fatalf("expected body %q, got %q", body, string(rest))
	}
}
