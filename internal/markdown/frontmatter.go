package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter holds the metadata a devlog markdown document can declare
// ahead of its body.
type FrontMatter struct {
	Title     string    `yaml:"title"`
	Slug      string    `yaml:"slug"`
	Tagline   string    `yaml:"tagline"`
	Project   string    `yaml:"project"`
	Published bool      `yaml:"published"`
	Date      time.Time `yaml:"date"`
}

// Document pairs parsed frontmatter with the untouched markdown body.
type Document struct {
	Path        string
	FrontMatter FrontMatter
	Body        []byte
}

// ParseFrontMatter extracts metadata and markdown body content from the
// provided source bytes. The body is returned without the frontmatter
// delimiters and otherwise byte-for-byte as written.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}

// BuildDocument assembles a Document from the supplied file path and raw
// content.
func BuildDocument(path string, source []byte) (*Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &Document{
		Path:        path,
		FrontMatter: meta,
		Body:        body,
	}, nil
}
