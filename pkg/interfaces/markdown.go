package interfaces

// MarkdownRenderer converts raw markdown into an HTML fragment that is safe
// to embed directly in a page. Implementations must never fail: hostile or
// malformed input degrades to sanitized plain text instead of an error.
type MarkdownRenderer interface {
	Render(source string) string
}
