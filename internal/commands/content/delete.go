package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-devlog/internal/commands"
	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	deleteProjectsMessageType = "devlog.content.projects.delete"
	deleteDevlogsMessageType  = "devlog.content.devlogs.delete"
)

// DeleteProjectsCommand removes a batch of projects. Entries attached to the
// deleted projects survive and become standalone.
type DeleteProjectsCommand struct {
	ProjectIDs []uuid.UUID `json:"project_ids"`
}

// Type implements command.Message.
func (DeleteProjectsCommand) Type() string { return deleteProjectsMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteProjectsCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.ProjectIDs) == 0 {
		errs["project_ids"] = validation.NewError("devlog.content.projects.delete.ids_required", "project_ids cannot be empty")
	}
	for _, id := range m.ProjectIDs {
		if id == uuid.Nil {
			errs["project_ids"] = validation.NewError("devlog.content.projects.delete.id_invalid", "project_ids cannot contain the zero id")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteProjectsHandler deletes projects via the content service.
type DeleteProjectsHandler struct {
	inner *commands.Handler[DeleteProjectsCommand]
}

// NewDeleteProjectsHandler constructs a handler wired to the provided content service.
func NewDeleteProjectsHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteProjectsCommand]) *DeleteProjectsHandler {
	exec := func(ctx context.Context, msg DeleteProjectsCommand) error {
		return service.DeleteProjects(ctx, msg.ProjectIDs)
	}

	handlerOpts := []commands.HandlerOption[DeleteProjectsCommand]{
		commands.WithLogger[DeleteProjectsCommand](logger),
		commands.WithOperation[DeleteProjectsCommand]("content.projects.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteProjectsHandler{
		inner: commands.NewHandler[DeleteProjectsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteProjectsCommand].Execute.
func (h *DeleteProjectsHandler) Execute(ctx context.Context, msg DeleteProjectsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteDevlogsCommand removes a batch of entries in one transaction.
type DeleteDevlogsCommand struct {
	DevlogIDs []uuid.UUID `json:"devlog_ids"`
}

// Type implements command.Message.
func (DeleteDevlogsCommand) Type() string { return deleteDevlogsMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteDevlogsCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.DevlogIDs) == 0 {
		errs["devlog_ids"] = validation.NewError("devlog.content.devlogs.delete.ids_required", "devlog_ids cannot be empty")
	}
	for _, id := range m.DevlogIDs {
		if id == uuid.Nil {
			errs["devlog_ids"] = validation.NewError("devlog.content.devlogs.delete.id_invalid", "devlog_ids cannot contain the zero id")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteDevlogsHandler deletes entries via the content service.
type DeleteDevlogsHandler struct {
	inner *commands.Handler[DeleteDevlogsCommand]
}

// NewDeleteDevlogsHandler constructs a handler wired to the provided content service.
func NewDeleteDevlogsHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteDevlogsCommand]) *DeleteDevlogsHandler {
	exec := func(ctx context.Context, msg DeleteDevlogsCommand) error {
		return service.DeleteDevlogs(ctx, msg.DevlogIDs)
	}

	handlerOpts := []commands.HandlerOption[DeleteDevlogsCommand]{
		commands.WithLogger[DeleteDevlogsCommand](logger),
		commands.WithOperation[DeleteDevlogsCommand]("content.devlogs.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteDevlogsHandler{
		inner: commands.NewHandler[DeleteDevlogsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteDevlogsCommand].Execute.
func (h *DeleteDevlogsHandler) Execute(ctx context.Context, msg DeleteDevlogsCommand) error {
	return h.inner.Execute(ctx, msg)
}
