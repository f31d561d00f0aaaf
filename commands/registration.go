// Package commands exposes the richtext command handlers to hosts that drive
// the editor through a registry, the go-command dispatcher, or both.
package commands

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	internalcommands "github.com/goliatone/go-richtext/internal/commands"
	widgetscmd "github.com/goliatone/go-richtext/internal/commands/widgets"
	"github.com/goliatone/go-richtext/internal/di"
	"github.com/goliatone/go-richtext/internal/editor"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// ErrUnsupportedHandler is returned by BusDispatcher for handlers it cannot subscribe.
var ErrUnsupportedHandler = errors.New("commands: unsupported handler type")

// CommandRegistry records command handlers so hosts can expose them via CLI or RPC.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
	// Editor binds the handlers to an existing session. When nil a new editor
	// is built from the container.
	Editor *editor.Editor
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Editor        *editor.Editor
	Session       *widgetscmd.Session
	Handlers      []any
	Subscriptions []CommandSubscription
}

// Close unsubscribes every dispatcher subscription.
func (r *RegistrationResult) Close() {
	if r == nil {
		return
	}
	for _, sub := range r.Subscriptions {
		sub.Unsubscribe()
	}
	r.Subscriptions = nil
}

// RegisterContainerCommands builds the widget command handlers for one editor
// session and optionally registers them with registry/dispatcher integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	cfg := container.Config

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	ed := opts.Editor
	if ed == nil {
		built, err := container.NewEditor()
		if err != nil {
			return nil, fmt.Errorf("commands: build editor: %w", err)
		}
		ed = built
	}

	session := widgetscmd.NewSession(ed, container.WidgetRegistry())
	result := &RegistrationResult{
		Editor:        ed,
		Session:       session,
		Handlers:      make([]any, 0, 2),
		Subscriptions: make([]CommandSubscription, 0),
	}

	timeout := cfg.Commands.Timeout
	if timeout == 0 {
		timeout = internalcommands.DefaultCommandTimeout
	}

	set, err := widgetscmd.RegisterWidgetCommands(nil, session, provider,
		widgetscmd.WithMarkdownService(container.MarkdownService()),
		widgetscmd.WithFeatureGates(widgetscmd.FeatureGates{
			MarkdownEnabled: func() bool { return cfg.Features.Markdown },
		}),
		widgetscmd.WithInsertHandlerOptions(internalcommands.WithTimeout[widgetscmd.InsertWidgetCommand](timeout)),
		widgetscmd.WithLoadHandlerOptions(internalcommands.WithTimeout[widgetscmd.LoadDocumentCommand](timeout)),
	)
	if err != nil {
		return nil, err
	}

	var errs error
	for _, handler := range []any{set.Insert, set.Load} {
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	return result, errs
}

// BusDispatcher subscribes widget handlers to the process-wide go-command
// dispatcher with the configured retry budget.
type BusDispatcher struct {
	MaxRetries int
}

var _ CommandDispatcher = BusDispatcher{}

// NewBusDispatcher returns a dispatcher honouring cfg.Commands.MaxRetries.
func NewBusDispatcher(container *di.Container) BusDispatcher {
	if container == nil {
		return BusDispatcher{}
	}
	return BusDispatcher{MaxRetries: container.Config.Commands.MaxRetries}
}

// RegisterCommand implements CommandDispatcher.
func (d BusDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	var runnerOpts []runner.Option
	if d.MaxRetries > 0 {
		runnerOpts = append(runnerOpts, runner.WithMaxRetries(d.MaxRetries))
	}
	switch h := handler.(type) {
	case *widgetscmd.InsertWidgetHandler:
		return dispatcher.SubscribeCommand(h, runnerOpts...), nil
	case *widgetscmd.LoadDocumentHandler:
		return dispatcher.SubscribeCommand(h, runnerOpts...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedHandler, handler)
	}
}
