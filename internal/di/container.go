// Package di wires module dependencies. Defaults bind the in-memory
// repositories; supplying a bun.DB switches persistence to the database.
package di

import (
	"github.com/goliatone/go-devlog/internal/admin"
	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/feeds"
	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/internal/logging/gologger"
	"github.com/goliatone/go-devlog/internal/markdown"
	"github.com/goliatone/go-devlog/internal/runtimeconfig"
	"github.com/goliatone/go-devlog/pkg/interfaces"
	"github.com/uptrace/bun"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	bunDB          *bun.DB
	loggerProvider interfaces.LoggerProvider

	projectRepo content.ProjectRepository
	devlogRepo  content.DevlogRepository

	contentSvc content.Service
	renderer   *markdown.Renderer
	feedSvc    *feeds.Service
	registry   *admin.Registry
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds a database handle; repositories switch to the bun implementations.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithProjectRepository overrides the default project repository binding.
func WithProjectRepository(repo content.ProjectRepository) Option {
	return func(c *Container) {
		c.projectRepo = repo
	}
}

// WithDevlogRepository overrides the default devlog repository binding.
func WithDevlogRepository(repo content.DevlogRepository) Option {
	return func(c *Container) {
		c.devlogRepo = repo
	}
}

// WithContentService overrides the default content service binding.
func WithContentService(svc content.Service) Option {
	return func(c *Container) {
		c.contentSvc = svc
	}
}

// WithRegistry overrides the admin entity registry.
func WithRegistry(registry *admin.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// NewContainer validates the configuration and finalises the dependency graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	memoryProjects := content.NewMemoryProjectRepository()
	memoryDevlogs := content.NewMemoryDevlogRepository()
	memoryProjects.BindDevlogs(memoryDevlogs)

	c := &Container{
		Config:      cfg,
		projectRepo: memoryProjects,
		devlogRepo:  memoryDevlogs,
		registry:    admin.DefaultRegistry(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.bunDB != nil {
		c.projectRepo = content.NewBunProjectRepository(c.bunDB)
		c.devlogRepo = content.NewBunDevlogRepository(c.bunDB)
	}

	if c.contentSvc == nil {
		c.contentSvc = content.NewService(
			c.projectRepo,
			c.devlogRepo,
			content.WithLogger(logging.ContentLogger(c.loggerProvider)),
		)
	}

	c.renderer = markdown.NewRenderer(markdown.RendererConfig{
		Extensions:     cfg.Markdown.Extensions,
		HighlightStyle: cfg.Markdown.HighlightStyle,
	})

	c.feedSvc = feeds.NewService(c.contentSvc, feeds.Config{
		Title:       cfg.Feed.Title,
		Description: cfg.Feed.Description,
		BaseURL:     cfg.Feed.BaseURL,
		Limit:       cfg.Feed.Limit,
	}, feeds.WithLogger(logging.FeedsLogger(c.loggerProvider)))

	return c, nil
}

// ContentService returns the configured content service.
func (c *Container) ContentService() content.Service {
	if c == nil {
		return nil
	}
	return c.contentSvc
}

// Renderer returns the configured markdown renderer.
func (c *Container) Renderer() *markdown.Renderer {
	if c == nil {
		return nil
	}
	return c.renderer
}

// FeedService returns the configured RSS feed builder.
func (c *Container) FeedService() *feeds.Service {
	if c == nil {
		return nil
	}
	return c.feedSvc
}

// Registry returns the admin entity registry.
func (c *Container) Registry() *admin.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// LoggerProvider returns the configured logger provider. It may be nil when
// logging is disabled; logging helpers fall back to a no-op logger.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	if c == nil {
		return nil
	}
	return c.loggerProvider
}

// BunDB exposes the bound database handle, if any.
func (c *Container) BunDB() *bun.DB {
	if c == nil {
		return nil
	}
	return c.bunDB
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		// The console provider is handled by each module's fallback logger.
		return nil, nil
	}
}
