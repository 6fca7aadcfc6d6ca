package markdown

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// The allow-list mirrors what the markdown engine can legitimately emit.
// Anything outside it — script, iframe, svg, event handlers, javascript:
// URLs — is stripped while the inner text survives.
var (
	fragmentPolicy = newFragmentPolicy()
	textPolicy     = bluemonday.StrictPolicy()
)

func newFragmentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "b", "em", "i", "u",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "code", "pre", "hr", "div", "span",
		"ul", "ol", "li", "dd", "dt", "dl",
		"table", "thead", "tbody", "tr", "th", "td",
	)

	p.AllowAttrs("href", "title", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	// class is needed for the syntax-highlight wrapper markup.
	p.AllowAttrs("class").OnElements("code", "pre", "div", "span")

	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)

	return p
}

// Malformed tags such as <svg/onload=alert(1)> never reach the allow-list:
// the markdown engine rejects them as raw HTML and escapes them to text, so
// they have to be caught after sanitization. Escaped tag-like sequences that
// smuggle an event handler or a javascript: URL are removed outright.
var escapedHostileTag = regexp.MustCompile(`(?i)&lt;[^<>]*?(?:\bon[a-z]+\s*=|javascript:)[^<>]*?&gt;`)

// SanitizeHTML scrubs rendered markup against the fixed allow-list.
func SanitizeHTML(html string) string {
	return escapedHostileTag.ReplaceAllString(fragmentPolicy.Sanitize(html), "")
}

// SanitizeText strips every tag, leaving plain text. Used as the fallback
// when markdown parsing fails.
func SanitizeText(raw string) string {
	return escapedHostileTag.ReplaceAllString(textPolicy.Sanitize(raw), "")
}
