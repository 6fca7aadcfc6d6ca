package devlog

import (
	"github.com/goliatone/go-devlog/internal/admin"
	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/di"
	"github.com/goliatone/go-devlog/internal/feeds"
	"github.com/goliatone/go-devlog/internal/markdown"
	"github.com/goliatone/go-devlog/pkg/interfaces"
)

// ContentService exports the record-store contract for consumers of this package.
type ContentService = content.Service

// Project exports the project record type.
type Project = content.Project

// Devlog exports the devlog record type.
type Devlog = content.Devlog

// FeedService exports the RSS feed builder.
type FeedService = *feeds.Service

// AdminRegistry exports the admin entity registry.
type AdminRegistry = *admin.Registry

// Module represents the top level devlog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a devlog module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the configured record-store service.
func (m *Module) Content() ContentService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ContentService()
}

// Markdown returns the configured markdown renderer.
func (m *Module) Markdown() *markdown.Renderer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Renderer()
}

// Feeds returns the configured RSS feed builder.
func (m *Module) Feeds() FeedService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.FeedService()
}

// Admin returns the admin entity registry.
func (m *Module) Admin() AdminRegistry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Registry()
}

// LoggerProvider returns the configured logger provider, if any.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}
