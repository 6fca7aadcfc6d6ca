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
	publishDevlogMessageType   = "devlog.content.publish"
	unpublishDevlogMessageType = "devlog.content.unpublish"
)

// PublishDevlogCommand marks an entry as published so it shows up on the
// public surfaces and in the feed.
type PublishDevlogCommand struct {
	DevlogID uuid.UUID `json:"devlog_id"`
}

// Type implements command.Message.
func (PublishDevlogCommand) Type() string { return publishDevlogMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PublishDevlogCommand) Validate() error {
	errs := validation.Errors{}
	if m.DevlogID == uuid.Nil {
		errs["devlog_id"] = validation.NewError("devlog.content.publish.devlog_id_required", "devlog_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishDevlogHandler flips the published flag via the content service.
type PublishDevlogHandler struct {
	inner *commands.Handler[PublishDevlogCommand]
}

// NewPublishDevlogHandler constructs a handler wired to the provided content service.
func NewPublishDevlogHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishDevlogCommand]) *PublishDevlogHandler {
	exec := func(ctx context.Context, msg PublishDevlogCommand) error {
		published := true
		_, err := service.UpdateDevlog(ctx, content.UpdateDevlogRequest{
			ID:          msg.DevlogID,
			IsPublished: &published,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishDevlogCommand]{
		commands.WithLogger[PublishDevlogCommand](logger),
		commands.WithOperation[PublishDevlogCommand]("content.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishDevlogHandler{
		inner: commands.NewHandler[PublishDevlogCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishDevlogCommand].Execute.
func (h *PublishDevlogHandler) Execute(ctx context.Context, msg PublishDevlogCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UnpublishDevlogCommand withdraws an entry from the public surfaces.
type UnpublishDevlogCommand struct {
	DevlogID uuid.UUID `json:"devlog_id"`
}

// Type implements command.Message.
func (UnpublishDevlogCommand) Type() string { return unpublishDevlogMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UnpublishDevlogCommand) Validate() error {
	errs := validation.Errors{}
	if m.DevlogID == uuid.Nil {
		errs["devlog_id"] = validation.NewError("devlog.content.unpublish.devlog_id_required", "devlog_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnpublishDevlogHandler clears the published flag via the content service.
type UnpublishDevlogHandler struct {
	inner *commands.Handler[UnpublishDevlogCommand]
}

// NewUnpublishDevlogHandler constructs a handler wired to the provided content service.
func NewUnpublishDevlogHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishDevlogCommand]) *UnpublishDevlogHandler {
	exec := func(ctx context.Context, msg UnpublishDevlogCommand) error {
		published := false
		_, err := service.UpdateDevlog(ctx, content.UpdateDevlogRequest{
			ID:          msg.DevlogID,
			IsPublished: &published,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[UnpublishDevlogCommand]{
		commands.WithLogger[UnpublishDevlogCommand](logger),
		commands.WithOperation[UnpublishDevlogCommand]("content.unpublish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnpublishDevlogHandler{
		inner: commands.NewHandler[UnpublishDevlogCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UnpublishDevlogCommand].Execute.
func (h *UnpublishDevlogHandler) Execute(ctx context.Context, msg UnpublishDevlogCommand) error {
	return h.inner.Execute(ctx, msg)
}
