package content

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/goliatone/go-slug"
)

// EntityKind names the two record types managed by the store. It selects the
// prefix used when slug derivation has to fall back to a random token.
type EntityKind string

const (
	KindProject EntityKind = "project"
	KindDevlog  EntityKind = "devlog"
)

const fallbackSuffixBytes = 4 // 8 hex characters

// SlugGenerator derives a well-formed slug from a title. Uniqueness is not
// part of the contract; the datastore's unique index arbitrates collisions.
type SlugGenerator func(kind EntityKind, title string) string

// DeriveSlug normalizes a title into a lowercase, hyphenated, URL-safe token.
// Titles with no representable characters (whitespace, emoji, punctuation)
// produce a `<kind>-<hex>` fallback so the result is never empty.
func DeriveSlug(kind EntityKind, title string) string {
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		return fallbackSlug(kind)
	}
	return normalized
}

// IsValidSlug reports whether the value satisfies the slug well-formedness
// rules shared with go-slug.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

func fallbackSlug(kind EntityKind) string {
	buf := make([]byte, fallbackSuffixBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is not recoverable in any useful way here.
		panic(fmt.Sprintf("content: random slug suffix: %v", err))
	}
	return fmt.Sprintf("%s-%s", kind, hex.EncodeToString(buf))
}
