// Package feeds emits the public RSS document for published devlogs.
package feeds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/pkg/interfaces"
)

const defaultFeedLimit = 20

// Config declares the feed metadata and the site base URL used to build
// absolute entry links.
type Config struct {
	Title       string
	Description string
	BaseURL     string
	Limit       int
}

// Service builds RSS documents from the record store.
type Service struct {
	content content.Service
	cfg     Config
	logger  interfaces.Logger
	now     func() time.Time
}

// ServiceOption configures the feed service at construction time.
type ServiceOption func(*Service)

// WithClock overrides the clock used for the feed's build timestamp.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLogger injects the logger used for feed generation diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs the feed service.
func NewService(contentService content.Service, cfg Config, opts ...ServiceOption) *Service {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultFeedLimit
	}
	s := &Service{
		content: contentService,
		cfg:     cfg,
		logger:  logging.NoOp(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildRSS renders the RSS 2.0 document for the most recent published
// devlogs, newest first, capped at the configured limit.
func (s *Service) BuildRSS(ctx context.Context) (string, error) {
	records, err := s.content.ListDevlogs(ctx, content.DevlogQuery{
		PublishedOnly: true,
		Limit:         s.cfg.Limit,
	})
	if err != nil {
		s.logger.Error("feed query failed", "error", err)
		return "", fmt.Errorf("feeds: list published devlogs: %w", err)
	}

	feed := &feeds.Feed{
		Title:       s.cfg.Title,
		Link:        &feeds.Link{Href: s.baseURL()},
		Description: s.cfg.Description,
		Created:     s.now(),
	}

	for _, record := range records {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          record.ID.String(),
			Title:       record.Title,
			Link:        &feeds.Link{Href: s.EntryURL(record.Slug)},
			Description: record.Tagline,
			Created:     record.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("feed serialization failed", "error", err)
		return "", fmt.Errorf("feeds: render rss: %w", err)
	}
	return rss, nil
}

// EntryURL returns the absolute public detail URL for a devlog slug.
func (s *Service) EntryURL(slug string) string {
	return fmt.Sprintf("%s/devlog/%s/", s.baseURL(), slug)
}

func (s *Service) baseURL() string {
	return strings.TrimRight(strings.TrimSpace(s.cfg.BaseURL), "/")
}
