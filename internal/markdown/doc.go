// Package markdown converts devlog content into sanitized HTML fragments and
// supports importing markdown documents from disk. Rendering is read-time
// only: stored content is never mutated by anything in this package.
package markdown
