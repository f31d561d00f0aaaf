package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	modified := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	fsys := fstest.MapFS{
		"letters/welcome.md": &fstest.MapFile{Data: []byte(templateSource), ModTime: modified},
		"plain.md":           &fstest.MapFile{Data: []byte("line one\nline two"), ModTime: modified},
	}
	return NewServiceFS(fsys, Config{}, nil)
}

func TestServiceLoad(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.Load(context.Background(), "letters/welcome.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.FilePath != "letters/welcome.md" || doc.FrontMatter.Title != "Welcome letter" {
		t.Fatalf("unexpected document %+v", doc)
	}
	body := string(doc.BodyHTML)
	for _, want := range []string{
		`<span class="placeholder">{first name}</span>`,
		`<span class="placeholder">{date}</span>`,
		`{this}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected BodyHTML to contain %s, got %q", want, body)
		}
	}
	if strings.Contains(body, `<span class="placeholder">{this}</span>`) {
		t.Fatalf("expected undeclared tokens to stay text, got %q", body)
	}
	if len(doc.Checksum) != 32 {
		t.Fatalf("expected sha256 checksum, got %d bytes", len(doc.Checksum))
	}
	if doc.LastModified.IsZero() {
		t.Fatalf("expected modification time")
	}
}

func TestServiceLoadMissing(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Load(context.Background(), "missing.md"); err == nil {
		t.Fatalf("expected error for missing source")
	}
}

func TestServiceRenderMergesOptions(t *testing.T) {
	svc := NewServiceFS(fstest.MapFS{}, Config{Parser: interfaces.ParseOptions{HardWraps: true}}, nil)

	html, err := svc.Render(context.Background(), []byte("line one\nline two"), interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<br>") {
		t.Fatalf("expected configured hard wraps, got %q", string(html))
	}
}

func TestServiceRenderHonoursContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Render(ctx, []byte("x"), interfaces.ParseOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if _, err := svc.RenderDocument(context.Background(), nil, interfaces.ParseOptions{}); !errors.Is(err, ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument, got %v", err)
	}
}
