package http

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/feeds"
	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/pkg/interfaces"
)

const homeDevlogLimit = 5

// PublicAPI serves the read-only visitor endpoints: home, entry and project
// detail, the explore listing, and the RSS feed. Unpublished entries are
// invisible here; they surface as 404s, not as permission errors.
type PublicAPI struct {
	content  content.Service
	renderer interfaces.MarkdownRenderer
	feed     *feeds.Service
	logger   interfaces.Logger
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithPublicContentService wires the content service.
func WithPublicContentService(service content.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.content = service
		}
	}
}

// WithMarkdownRenderer wires the renderer used for entry bodies.
func WithMarkdownRenderer(renderer interfaces.MarkdownRenderer) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.renderer = renderer
		}
	}
}

// WithFeedService wires the RSS feed builder.
func WithFeedService(feed *feeds.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.feed = feed
		}
	}
}

// WithPublicLogger wires the logger used by public handlers.
func WithPublicLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the public endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: public api is nil")
	}

	mux.HandleFunc("GET /{$}", api.handleHome)
	mux.HandleFunc("GET /explore", api.handleExplore)
	mux.HandleFunc("GET /devlog/{slug}", api.handleDevlogDetail)
	// Feed entry links carry a trailing slash; both shapes resolve.
	mux.HandleFunc("GET /devlog/{slug}/{$}", api.handleDevlogDetail)
	mux.HandleFunc("GET /project/{slug}", api.handleProjectDetail)
	mux.HandleFunc("GET /project/{slug}/{$}", api.handleProjectDetail)
	mux.HandleFunc("GET /rss/", api.handleRSS)

	return nil
}

type devlogView struct {
	*content.Devlog
	ContentHTML string `json:"content_html"`
}

type homeView struct {
	Devlogs  []*content.Devlog  `json:"devlogs"`
	Featured []*content.Project `json:"featured_projects"`
}

type projectView struct {
	*content.Project
	DescriptionHTML string            `json:"description_html"`
	Devlogs         []*content.Devlog `json:"devlogs"`
}

func (api *PublicAPI) handleHome(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	devlogs, err := api.content.ListDevlogs(r.Context(), content.DevlogQuery{
		PublishedOnly: true,
		Limit:         homeDevlogLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	featured, err := api.content.ListProjects(r.Context(), content.ProjectQuery{FeaturedOnly: true})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, homeView{Devlogs: devlogs, Featured: featured})
}

func (api *PublicAPI) handleExplore(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	query := content.DevlogQuery{
		PublishedOnly: true,
		Search:        r.URL.Query().Get("q"),
		Limit:         parseLimitQuery(r.URL.Query().Get("limit"), 0),
	}
	devlogs, err := api.content.ListDevlogs(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, devlogs)
}

func (api *PublicAPI) handleDevlogDetail(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	record, err := api.content.GetPublishedDevlog(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, devlogView{
		Devlog:      record,
		ContentHTML: api.renderMarkdown(record.Content),
	})
}

func (api *PublicAPI) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	record, err := api.content.GetProjectBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	devlogs, err := api.content.ListDevlogs(r.Context(), content.DevlogQuery{
		PublishedOnly: true,
		ProjectID:     &record.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectView{
		Project:         record,
		DescriptionHTML: api.renderMarkdown(record.Description),
		Devlogs:         devlogs,
	})
}

func (api *PublicAPI) handleRSS(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.feed == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	payload, err := api.feed.BuildRSS(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}

func (api *PublicAPI) renderMarkdown(source string) string {
	if api.renderer == nil {
		return ""
	}
	return api.renderer.Render(source)
}
