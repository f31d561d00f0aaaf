package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-command/dispatcher"

	widgetscmd "github.com/goliatone/go-richtext/internal/commands/widgets"
	"github.com/goliatone/go-richtext/internal/di"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

func TestRegisterContainerCommandsBuildsHandlers(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Markdown = true

	registry := &recordingRegistry{}
	bus := &recordingDispatcher{}

	container, err := di.NewContainer(cfg, di.WithMarkdownService(fakeMarkdownService{}))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	result, err := RegisterContainerCommands(container, RegistrationOptions{
		Registry:   registry,
		Dispatcher: bus,
	})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}

	if len(result.Handlers) != 2 {
		t.Fatalf("expected insert and load handlers, got %d", len(result.Handlers))
	}
	if len(result.Handlers) != len(registry.handlers) {
		t.Fatalf("expected registry to record all handlers, got %d of %d", len(registry.handlers), len(result.Handlers))
	}
	if len(bus.subscriptions) != 2 {
		t.Fatalf("expected dispatcher subscriptions when dispatcher provided, got %d", len(bus.subscriptions))
	}
	if result.Editor == nil || result.Session == nil {
		t.Fatal("expected an editor session to be built")
	}

	result.Close()
	for _, sub := range bus.subscriptions {
		if !sub.unsubscribed {
			t.Fatal("expected Close to unsubscribe every handler")
		}
	}
}

func TestRegisterContainerCommandsWithoutRegistrars(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	result, err := RegisterContainerCommands(container, RegistrationOptions{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if len(result.Handlers) == 0 {
		t.Fatal("expected handlers to be built even without registrars")
	}
	if len(result.Subscriptions) != 0 {
		t.Fatalf("expected no dispatcher subscriptions without dispatcher, got %d", len(result.Subscriptions))
	}
}

func TestRegisterContainerCommandsUsesProvidedEditor(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	ed, err := container.NewEditor()
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}

	result, err := RegisterContainerCommands(container, RegistrationOptions{Editor: ed})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if result.Editor != ed {
		t.Fatal("expected the provided editor to be bound")
	}

	insert := result.Handlers[0].(*widgetscmd.InsertWidgetHandler)
	if err := insert.Execute(context.Background(), widgetscmd.InsertWidgetCommand{Kind: "placeholder", Value: "date"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := ed.GetData()
	if err != nil {
		t.Fatalf("get data: %v", err)
	}
	if want := `<p><span class="placeholder">{date}</span></p>`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRegisterContainerCommandsCollectsDispatcherErrors(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	failure := errors.New("dispatcher offline")

	result, err := RegisterContainerCommands(container, RegistrationOptions{
		Dispatcher: &recordingDispatcher{err: failure},
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected dispatcher error, got %v", err)
	}
	if result == nil || len(result.Handlers) != 2 {
		t.Fatal("expected handlers to be returned alongside the error")
	}
}

func TestBusDispatcherRoutesMessages(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	result, err := RegisterContainerCommands(container, RegistrationOptions{
		Dispatcher: NewBusDispatcher(container),
	})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	t.Cleanup(result.Close)

	if err := dispatcher.Dispatch(context.Background(), widgetscmd.LoadDocumentCommand{
		Source: `<p>Dear <span class="placeholder">{first name}</span></p>`,
	}); err != nil {
		t.Fatalf("dispatch load: %v", err)
	}
	got, err := result.Editor.GetData()
	if err != nil {
		t.Fatalf("get data: %v", err)
	}
	if want := `<p>Dear <span class="placeholder">{first name}</span></p>`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestBusDispatcherRejectsUnknownHandler(t *testing.T) {
	if _, err := (BusDispatcher{}).RegisterCommand(struct{}{}); !errors.Is(err, ErrUnsupportedHandler) {
		t.Fatalf("expected ErrUnsupportedHandler, got %v", err)
	}
}

type fakeMarkdownService struct{}

func (fakeMarkdownService) Load(context.Context, string) (*interfaces.Document, error) {
	return nil, nil
}

func (fakeMarkdownService) Render(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (fakeMarkdownService) RenderDocument(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

type recordingDispatcher struct {
	handlers      []any
	subscriptions []*recordingSubscription
	err           error
}

func (d *recordingDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.handlers = append(d.handlers, handler)
	sub := &recordingSubscription{handler: handler}
	d.subscriptions = append(d.subscriptions, sub)
	return sub, nil
}

type recordingSubscription struct {
	handler      any
	unsubscribed bool
}

func (s *recordingSubscription) Unsubscribe() {
	s.unsubscribed = true
}
