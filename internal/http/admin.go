package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-devlog/internal/admin"
	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/pkg/interfaces"
)

// AdminAPI registers the JSON management endpoints for projects and devlog entries.
type AdminAPI struct {
	basePath string
	content  content.Service
	registry *admin.Registry
	logger   interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
		registry: admin.DefaultRegistry(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContentService wires the content service.
func WithContentService(service content.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.content = service
		}
	}
}

// WithRegistry overrides the admin entity registry.
func WithRegistry(registry *admin.Registry) AdminOption {
	return func(api *AdminAPI) {
		if api != nil && registry != nil {
			api.registry = registry
		}
	}
}

// WithAdminLogger wires the logger used by admin handlers.
func WithAdminLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: admin api is nil")
	}

	base := joinPath(api.basePath, "")

	api.registerProjectRoutes(mux, base)
	api.registerDevlogRoutes(mux, base)
	api.registerRegistryRoutes(mux, base)

	return nil
}

func (api *AdminAPI) registerRegistryRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "registry")
	mux.HandleFunc("GET "+root, api.handleRegistryList)
}

func (api *AdminAPI) handleRegistryList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, api.registry.Entities())
}
