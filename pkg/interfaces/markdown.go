package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML the
// editor can load.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	// SafeMode drops raw HTML from the source, widget spans included.
	SafeMode bool
	// Placeholders lists the tokens whose {token} shorthand renders as a
	// placeholder widget span.
	Placeholders []string
}

// MarkdownService loads Markdown source documents and renders them to HTML.
type MarkdownService interface {
	Load(ctx context.Context, path string) (*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}

// Document is a Markdown source with parsed metadata and content.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores the SHA-256 digest of the original file content.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown sources. Placeholders
// lists the tokens a template expects to be offered in the toolbar.
type FrontMatter struct {
	Title        string         `yaml:"title" json:"title"`
	Language     string         `yaml:"language" json:"language"`
	Summary      string         `yaml:"summary" json:"summary"`
	Tags         []string       `yaml:"tags" json:"tags"`
	Author       string         `yaml:"author" json:"author"`
	Date         time.Time      `yaml:"date" json:"date"`
	Placeholders []string       `yaml:"placeholders" json:"placeholders"`
	Custom       map[string]any `yaml:",inline" json:"custom"`
	Raw          map[string]any `yaml:"-" json:"raw"`
}
