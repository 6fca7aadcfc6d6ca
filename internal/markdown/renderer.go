package markdown

import (
	"bytes"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-devlog/pkg/interfaces"
)

// RendererConfig controls which goldmark extensions are active and how code
// blocks are highlighted.
type RendererConfig struct {
	// Extensions selects goldmark extensions by name. Unknown names are
	// ignored; an empty list enables the default set (tables, footnotes,
	// definition lists, strikethrough, highlighting).
	Extensions []string
	// HighlightStyle names the chroma style used for fenced code blocks.
	HighlightStyle string
}

// Renderer implements interfaces.MarkdownRenderer using the goldmark engine
// with a sanitization pass over the output. The renderer is intentionally
// stateless so callers can reuse a single instance across requests without
// additional locking.
type Renderer struct {
	engine goldmark.Markdown
}

var _ interfaces.MarkdownRenderer = (*Renderer)(nil)

// NewRenderer constructs a renderer from the supplied configuration.
func NewRenderer(cfg RendererConfig) *Renderer {
	return &Renderer{
		engine: newGoldmarkEngine(cfg),
	}
}

// Render converts markdown into a sanitized HTML fragment. It never fails:
// input the parser cannot handle degrades to the raw text with every HTML
// tag stripped, so callers always receive something safe to embed.
func (r *Renderer) Render(source string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return SanitizeText(source)
	}
	return SanitizeHTML(buf.String())
}

// newGoldmarkEngine builds a goldmark.Markdown based on the configuration.
// The mapping is intentionally conservative; unsupported extension names are
// ignored. Raw HTML passes through here untouched because the sanitizer owns
// that concern.
func newGoldmarkEngine(cfg RendererConfig) goldmark.Markdown {
	exts := collectExtensions(cfg.Extensions, cfg.HighlightStyle)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	// Raw HTML must reach the sanitizer intact; WithUnsafe defers the
	// stripping decision to the allow-list instead of the parser.
	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

const defaultHighlightStyle = "monokai"

func newHighlighting(style string) goldmark.Extender {
	if strings.TrimSpace(style) == "" {
		style = defaultHighlightStyle
	}
	return highlighting.NewHighlighting(
		highlighting.WithStyle(style),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true),
		),
	)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string, highlightStyle string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.Table,
			extension.Footnote,
			extension.DefinitionList,
			extension.Strikethrough,
			newHighlighting(highlightStyle),
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		if key == "highlighting" || key == "codehilite" {
			extenders = append(extenders, newHighlighting(highlightStyle))
			seen[key] = struct{}{}
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
