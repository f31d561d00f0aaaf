package widgetscmd

import (
	"context"
	"errors"
	"sync"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-richtext/internal/commands"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/widgets"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const (
	insertOperation = "widgets.insert"
	loadOperation   = "document.load"
)

var (
	// ErrMarkdownFeatureDisabled is returned when a markdown load runs with the feature off.
	ErrMarkdownFeatureDisabled = errors.New("widgets command: markdown feature disabled")
	// ErrMarkdownUnavailable is returned when a markdown load has no markdown service.
	ErrMarkdownUnavailable = errors.New("widgets command: markdown service not configured")
)

var (
	_ command.Commander[InsertWidgetCommand] = (*InsertWidgetHandler)(nil)
	_ command.Commander[LoadDocumentCommand] = (*LoadDocumentHandler)(nil)
)

// Editor is the editor surface the handlers drive.
type Editor interface {
	Execute(name, value string) error
	SetData(html string) error
}

// Session serialises bus access to one editor. The editor itself is
// single-threaded.
type Session struct {
	mu       sync.Mutex
	editor   Editor
	registry *widgets.Registry
}

// NewSession binds ed and the widget kinds it has installed.
func NewSession(ed Editor, reg *widgets.Registry) *Session {
	if reg == nil {
		reg = widgets.DefaultRegistry()
	}
	return &Session{editor: ed, registry: reg}
}

func (s *Session) do(fn func(Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// InsertWidgetHandler runs InsertWidgetCommand through the shared handler foundation.
type InsertWidgetHandler struct {
	inner *commands.Handler[InsertWidgetCommand]
}

// NewInsertWidgetHandler creates a handler bound to session.
func NewInsertWidgetHandler(session *Session, logger interfaces.Logger, opts ...commands.HandlerOption[InsertWidgetCommand]) *InsertWidgetHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg InsertWidgetCommand) error {
		desc, err := session.registry.Lookup(widgets.Kind(msg.Kind))
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return session.do(func(ed Editor) error {
			return ed.Execute(string(desc.Kind), msg.Value)
		})
	}

	handlerOpts := []commands.HandlerOption[InsertWidgetCommand]{
		commands.WithLogger[InsertWidgetCommand](baseLogger),
		commands.WithOperation[InsertWidgetCommand](insertOperation),
		commands.WithMessageFields(func(msg InsertWidgetCommand) map[string]any {
			return map[string]any{"widget_kind": msg.Kind}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[InsertWidgetCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InsertWidgetHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[InsertWidgetCommand].
func (h *InsertWidgetHandler) Execute(ctx context.Context, msg InsertWidgetCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LoadDocumentHandler runs LoadDocumentCommand through the shared handler foundation.
type LoadDocumentHandler struct {
	inner *commands.Handler[LoadDocumentCommand]
}

// NewLoadDocumentHandler creates a handler bound to session. markdown may be
// nil when markdown sources are not supported.
func NewLoadDocumentHandler(session *Session, markdown interfaces.MarkdownService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[LoadDocumentCommand]) *LoadDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg LoadDocumentCommand) error {
		html := msg.Source
		if msg.format() == FormatMarkdown {
			if !gates.markdownEnabled() {
				return ErrMarkdownFeatureDisabled
			}
			if markdown == nil {
				return ErrMarkdownUnavailable
			}
			rendered, err := markdown.Render(ctx, []byte(msg.Source), interfaces.ParseOptions{})
			if err != nil {
				return err
			}
			html = string(rendered)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := session.do(func(ed Editor) error { return ed.SetData(html) }); err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"format": msg.format(),
			"bytes":  len(html),
		}).Info("widgets.command.document_loaded")
		return nil
	}

	handlerOpts := []commands.HandlerOption[LoadDocumentCommand]{
		commands.WithLogger[LoadDocumentCommand](baseLogger),
		commands.WithOperation[LoadDocumentCommand](loadOperation),
		commands.WithMessageFields(func(msg LoadDocumentCommand) map[string]any {
			return map[string]any{"format": msg.format()}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[LoadDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LoadDocumentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[LoadDocumentCommand].
func (h *LoadDocumentHandler) Execute(ctx context.Context, msg LoadDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}
