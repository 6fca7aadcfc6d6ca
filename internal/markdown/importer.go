package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrContentServiceRequired = errors.New("markdown importer: content service is required")
	ErrTitleMissing           = errors.New("markdown importer: frontmatter title is required")
)

// ImporterConfig encapsulates dependencies required to persist markdown
// documents as devlogs.
type ImporterConfig struct {
	Content content.Service
	Logger  interfaces.Logger
}

// Importer turns markdown documents into devlog records. Project references
// in frontmatter are resolved by project slug.
type Importer struct {
	content content.Service
	logger  interfaces.Logger
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Created    []string
	CreatedIDs []uuid.UUID
	Skipped    []string
	Errors     []error
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		content: cfg.Content,
		logger:  logger,
	}
}

// ImportDir discovers markdown files under root in the provided filesystem
// and imports each one. Files that fail to parse or persist are reported in
// the result; one bad document does not abort the rest of the run.
func (i *Importer) ImportDir(ctx context.Context, filesystem fs.FS, root string) (*ImportResult, error) {
	if i.content == nil {
		return nil, ErrContentServiceRequired
	}

	paths, err := discoverMarkdownFiles(filesystem, root)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		record, err := i.importFile(ctx, filesystem, p)
		if err != nil {
			i.logger.Error("markdown import failed", "path", p, "error", err)
			result.Skipped = append(result.Skipped, p)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", p, err))
			continue
		}
		result.Created = append(result.Created, p)
		result.CreatedIDs = append(result.CreatedIDs, record.ID)
	}
	return result, nil
}

// ImportDocument persists a single parsed document as a devlog.
func (i *Importer) ImportDocument(ctx context.Context, doc *Document) (*content.Devlog, error) {
	if i.content == nil {
		return nil, ErrContentServiceRequired
	}
	if doc == nil {
		return nil, ErrTitleMissing
	}

	title := strings.TrimSpace(doc.FrontMatter.Title)
	if title == "" {
		return nil, ErrTitleMissing
	}

	req := content.CreateDevlogRequest{
		Title:       title,
		Slug:        doc.FrontMatter.Slug,
		Tagline:     doc.FrontMatter.Tagline,
		Content:     string(doc.Body),
		IsPublished: doc.FrontMatter.Published,
	}

	if projectSlug := strings.TrimSpace(doc.FrontMatter.Project); projectSlug != "" {
		project, err := i.content.GetProjectBySlug(ctx, projectSlug)
		if err != nil {
			return nil, fmt.Errorf("resolve project %q: %w", projectSlug, err)
		}
		id := project.ID
		req.ProjectID = &id
	}

	created, err := i.content.CreateDevlog(ctx, req)
	if err != nil {
		return nil, err
	}

	i.logger.Info("markdown document imported", "path", doc.Path, "slug", created.Slug)
	return created, nil
}

func (i *Importer) importFile(ctx context.Context, filesystem fs.FS, p string) (*content.Devlog, error) {
	data, err := fs.ReadFile(filesystem, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	doc, err := BuildDocument(p, data)
	if err != nil {
		return nil, err
	}
	return i.ImportDocument(ctx, doc)
}

func discoverMarkdownFiles(filesystem fs.FS, root string) ([]string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	var paths []string
	err := fs.WalkDir(filesystem, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(path.Ext(p), ".md") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown discovery: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}
