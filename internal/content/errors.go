package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTitleRequired   = errors.New("content: title is required")
	ErrTaglineRequired = errors.New("content: tagline is required")
	ErrTaglineTooLong  = errors.New("content: tagline exceeds maximum length")
	ErrSlugInvalid     = errors.New("content: slug contains invalid characters")
	ErrSlugExists      = errors.New("content: slug already exists")
	ErrIDRequired      = errors.New("content: record id required")
	ErrProjectUnknown  = errors.New("content: referenced project does not exist")
	ErrEmptyBatch      = errors.New("content: batch contains no records")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// ConflictError captures uniqueness violations surfaced at commit time.
type ConflictError struct {
	Entity EntityKind
	Slug   string
}

func (e *ConflictError) Error() string {
	if e == nil {
		return ErrSlugExists.Error()
	}
	value := strings.TrimSpace(e.Slug)
	if value != "" {
		return fmt.Sprintf("%s: %s slug=%s", ErrSlugExists.Error(), e.Entity, value)
	}
	return fmt.Sprintf("%s: %s", ErrSlugExists.Error(), e.Entity)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlugExists
}

// ValidationError reports an invalid field on a save request.
type ValidationError struct {
	Entity EntityKind
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	if e == nil || e.Reason == nil {
		return "content: invalid input"
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Reason.Error())
	}
	return fmt.Sprintf("%s %s: %s", e.Entity, e.Field, e.Reason.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// IsValidation reports whether the error is one of the package's validation
// sentinels, directly or through a ValidationError wrapper.
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTaglineRequired) ||
		errors.Is(err, ErrTaglineTooLong) ||
		errors.Is(err, ErrSlugInvalid) ||
		errors.Is(err, ErrIDRequired) ||
		errors.Is(err, ErrProjectUnknown) ||
		errors.Is(err, ErrEmptyBatch)
}
