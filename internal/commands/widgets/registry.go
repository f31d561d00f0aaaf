package widgetscmd

import (
	"errors"

	"github.com/goliatone/go-richtext/internal/commands"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterWidgetCommands.
type HandlerSet struct {
	Insert *InsertWidgetHandler
	Load   *LoadDocumentHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	markdown          interfaces.MarkdownService
	gates             FeatureGates
	insertHandlerOpts []commands.HandlerOption[InsertWidgetCommand]
	loadHandlerOpts   []commands.HandlerOption[LoadDocumentCommand]
}

// WithMarkdownService enables markdown sources for LoadDocumentCommand.
func WithMarkdownService(service interfaces.MarkdownService) Option {
	return func(cfg *options) {
		cfg.markdown = service
	}
}

// WithFeatureGates sets the runtime toggles consulted by the handlers.
func WithFeatureGates(gates FeatureGates) Option {
	return func(cfg *options) {
		cfg.gates = gates
	}
}

// WithInsertHandlerOptions forwards options to the InsertWidgetHandler constructor.
func WithInsertHandlerOptions(opts ...commands.HandlerOption[InsertWidgetCommand]) Option {
	return func(cfg *options) {
		cfg.insertHandlerOpts = append(cfg.insertHandlerOpts, opts...)
	}
}

// WithLoadHandlerOptions forwards options to the LoadDocumentHandler constructor.
func WithLoadHandlerOptions(opts ...commands.HandlerOption[LoadDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.loadHandlerOpts = append(cfg.loadHandlerOpts, opts...)
	}
}

// RegisterWidgetCommands builds the widget command handlers and registers them with the
// provided registry. A nil registry only builds the handlers so callers can subscribe them
// to the dispatcher themselves.
func RegisterWidgetCommands(reg CommandRegistry, session *Session, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if session == nil || session.editor == nil {
		return nil, errors.New("widget command registration: session is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "widgets")

	insertHandler := NewInsertWidgetHandler(session, logger, cfg.insertHandlerOpts...)
	loadHandler := NewLoadDocumentHandler(session, cfg.markdown, logger, cfg.gates, cfg.loadHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(insertHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(loadHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Insert: insertHandler, Load: loadHandler}, nil
}
