// Package admin holds the read-only administrative configuration: which
// columns each entity type lists, filters, and searches on. The registry is
// built once at process start and never mutated afterwards.
package admin

import (
	"sort"

	"github.com/goliatone/go-devlog/internal/content"
)

// EntityConfig describes how an entity type is exposed to the admin surface.
type EntityConfig struct {
	Entity        content.EntityKind `json:"entity"`
	ListColumns   []string           `json:"list_columns"`
	FilterColumns []string           `json:"filter_columns"`
	SearchColumns []string           `json:"search_columns"`
	// SlugSource names the column slugs are prepopulated from.
	SlugSource string `json:"slug_source"`
}

// Registry maps entity types to their admin configuration.
type Registry struct {
	entries map[content.EntityKind]EntityConfig
}

// DefaultRegistry returns the registry for the two built-in entity types.
func DefaultRegistry() *Registry {
	return NewRegistry(
		EntityConfig{
			Entity:        content.KindProject,
			ListColumns:   []string{"title", "is_featured", "created_at", "devlog_count"},
			FilterColumns: []string{"is_featured", "created_at"},
			SearchColumns: []string{"title", "description"},
			SlugSource:    "title",
		},
		EntityConfig{
			Entity:        content.KindDevlog,
			ListColumns:   []string{"title", "is_published", "project", "created_at"},
			FilterColumns: []string{"is_published", "created_at", "project"},
			SearchColumns: []string{"title", "tagline", "content"},
			SlugSource:    "title",
		},
	)
}

// NewRegistry builds a registry from explicit entity configurations.
func NewRegistry(configs ...EntityConfig) *Registry {
	entries := make(map[content.EntityKind]EntityConfig, len(configs))
	for _, cfg := range configs {
		entries[cfg.Entity] = cfg
	}
	return &Registry{entries: entries}
}

// Lookup returns the configuration for an entity type.
func (r *Registry) Lookup(kind content.EntityKind) (EntityConfig, bool) {
	if r == nil {
		return EntityConfig{}, false
	}
	cfg, ok := r.entries[kind]
	return cfg, ok
}

// Entities returns every registered configuration in a stable order.
func (r *Registry) Entities() []EntityConfig {
	if r == nil {
		return nil
	}
	out := make([]EntityConfig, 0, len(r.entries))
	for _, cfg := range r.entries {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Entity < out[j].Entity
	})
	return out
}
