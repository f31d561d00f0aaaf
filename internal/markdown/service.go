package markdown

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// ErrNilDocument is returned when rendering a nil document.
var ErrNilDocument = errors.New("markdown service: document is nil")

// Config controls where the Markdown service reads sources and how it parses them.
type Config struct {
	BasePath string
	Parser   interfaces.ParseOptions
}

// Service implements interfaces.MarkdownService for filesystem-backed sources.
type Service struct {
	cfg    Config
	fs     fs.FS
	parser interfaces.MarkdownParser
}

var _ interfaces.MarkdownService = (*Service)(nil)

// NewService constructs a service rooted at cfg.BasePath. When parser is nil,
// a Goldmark parser with cfg.Parser defaults is created.
func NewService(cfg Config, parser interfaces.MarkdownParser) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return NewServiceFS(filesystem, cfg, parser), nil
}

// NewServiceFS constructs a service over an existing filesystem.
func NewServiceFS(filesystem fs.FS, cfg Config, parser interfaces.MarkdownParser) *Service {
	if parser == nil {
		parser = NewGoldmarkParser(cfg.Parser)
	}
	return &Service{cfg: cfg, fs: filesystem, parser: parser}
}

// Load reads a single Markdown source relative to the base path and renders it.
func (s *Service) Load(ctx context.Context, path string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel := s.normalisePath(path)
	data, err := fs.ReadFile(s.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown service read %s: %w", rel, err)
	}
	info, err := fs.Stat(s.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown service stat %s: %w", rel, err)
	}

	doc, err := BuildDocument(rel, data, info.ModTime())
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	doc.Checksum = sum[:]

	if _, err := s.RenderDocument(ctx, doc, interfaces.ParseOptions{}); err != nil {
		return nil, fmt.Errorf("markdown render document %s: %w", doc.FilePath, err)
	}
	return doc, nil
}

// Render parses Markdown bytes into HTML using the configured parser.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.parser.ParseWithOptions(markdown, mergeParseOptions(s.cfg.Parser, opts))
}

// RenderDocument converts the document's Markdown body into HTML and stores it
// on the document. Placeholders declared in the front matter extend the
// configured tokens.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	opts.Placeholders = mergeTokens(opts.Placeholders, doc.FrontMatter.Placeholders)
	html, err := s.Render(ctx, doc.Body, opts)
	if err != nil {
		return nil, err
	}
	doc.BodyHTML = html
	return html, nil
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	result.Placeholders = mergeTokens(base.Placeholders, override.Placeholders)
	return result
}

func mergeTokens(base, extra []string) []string {
	if len(extra) == 0 {
		return slices.Clone(base)
	}
	out := slices.Clone(base)
	for _, token := range extra {
		if !slices.Contains(out, token) {
			out = append(out, token)
		}
	}
	return out
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
