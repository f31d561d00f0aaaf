package widgetscmd

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-richtext/internal/editor"
	"github.com/goliatone/go-richtext/internal/markdown"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
	"github.com/goliatone/go-richtext/internal/widgets"
)

func newSession(t *testing.T) (*editor.Editor, *Session) {
	t.Helper()
	cfg := runtimeconfig.DefaultConfig()
	reg := widgets.RegistryFromConfig(cfg)
	ed, err := editor.New(cfg, editor.WithPlugins(widgets.NewPlugin(reg)))
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	return ed, NewSession(ed, reg)
}

func data(t *testing.T, ed *editor.Editor) string {
	t.Helper()
	out, err := ed.GetData()
	if err != nil {
		t.Fatalf("get data: %v", err)
	}
	return out
}

func TestMessageValidation(t *testing.T) {
	cases := []struct {
		name    string
		msg     interface{ Validate() error }
		wantErr bool
	}{
		{name: "insert", msg: InsertWidgetCommand{Kind: "placeholder", Value: "date"}},
		{name: "insert without value", msg: InsertWidgetCommand{Kind: "ignoreDirection"}},
		{name: "insert blank kind", msg: InsertWidgetCommand{Kind: "  "}, wantErr: true},
		{name: "insert empty kind", msg: InsertWidgetCommand{}, wantErr: true},
		{name: "load default format", msg: LoadDocumentCommand{Source: "<p>x</p>"}},
		{name: "load markdown", msg: LoadDocumentCommand{Source: "x", Format: FormatMarkdown}},
		{name: "load empty source", msg: LoadDocumentCommand{}},
		{name: "load unknown format", msg: LoadDocumentCommand{Format: "rtf"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestInsertWidgetHandler(t *testing.T) {
	ed, session := newSession(t)
	handler := NewInsertWidgetHandler(session, nil)

	if err := handler.Execute(context.Background(), InsertWidgetCommand{Kind: "placeholder", Value: "surname"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := data(t, ed), `<p><span class="placeholder">{surname}</span></p>`; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestInsertWidgetHandlerErrors(t *testing.T) {
	ed, session := newSession(t)
	handler := NewInsertWidgetHandler(session, nil)

	err := handler.Execute(context.Background(), InsertWidgetCommand{Kind: "mention"})
	if !errors.Is(err, widgets.ErrUnknownKind) || !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected unknown kind tagged as command error, got %v", err)
	}

	if err := ed.SetData(`<p><span class="placeholder">{x}</span></p>`); err != nil {
		t.Fatalf("set data: %v", err)
	}
	if err := ed.SetSelection([]int{0, 0, 0}, []int{0, 0, 0}); err != nil {
		t.Fatalf("select: %v", err)
	}
	err = handler.Execute(context.Background(), InsertWidgetCommand{Kind: "placeholder", Value: "date"})
	if !errors.Is(err, editor.ErrCommandDisabled) {
		t.Fatalf("expected ErrCommandDisabled, got %v", err)
	}

	err = handler.Execute(context.Background(), InsertWidgetCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestLoadDocumentHandler(t *testing.T) {
	ed, session := newSession(t)
	svc := markdown.NewServiceFS(fstest.MapFS{}, markdown.Config{}, nil)
	handler := NewLoadDocumentHandler(session, svc, nil, FeatureGates{})

	if err := handler.Execute(context.Background(), LoadDocumentCommand{Source: `<span class="placeholder">{date}</span>`}); err != nil {
		t.Fatalf("load html: %v", err)
	}
	if got, want := data(t, ed), `<p><span class="placeholder">{date}</span></p>`; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	source := "Dear <span class=\"placeholder\">{first name}</span>, **welcome**\n"
	if err := handler.Execute(context.Background(), LoadDocumentCommand{Source: source, Format: FormatMarkdown}); err != nil {
		t.Fatalf("load markdown: %v", err)
	}
	if got, want := data(t, ed), `<p>Dear <span class="placeholder">{first name}</span>, <strong>welcome</strong></p>`; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

type brokenNameCodec struct{}

func (brokenNameCodec) Encode(map[string]any) string { return "?" }

func (brokenNameCodec) Decode(string) map[string]any {
	return map[string]any{widgets.AttributeName: 42}
}

func TestLoadDocumentHandlerRejectsInvalidDocument(t *testing.T) {
	reg := widgets.DefaultRegistry()
	if err := reg.Register(widgets.Descriptor{
		Kind:       "broken",
		ViewName:   "span",
		ClassName:  "broken",
		Attributes: []string{widgets.AttributeName},
		Codec:      brokenNameCodec{},
		Build: func(string, *model.Selection) map[string]any {
			return map[string]any{widgets.AttributeName: "x"}
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	ed, err := editor.New(runtimeconfig.DefaultConfig(), editor.WithPlugins(widgets.NewPlugin(reg)))
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	handler := NewLoadDocumentHandler(NewSession(ed, reg), nil, nil, FeatureGates{})

	err = handler.Execute(context.Background(), LoadDocumentCommand{Source: `<p><span class="broken">?</span></p>`})
	if !errors.Is(err, widgets.ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	var tagged *goerrors.Error
	if !errors.As(err, &tagged) || tagged.TextCode != "RICHTEXT_DOCUMENT_INVALID" {
		t.Fatalf("expected RICHTEXT_DOCUMENT_INVALID text code, got %v", err)
	}
	if got := data(t, ed); got != "<p></p>" {
		t.Fatalf("expected the initial document to survive, got %q", got)
	}
}

func TestLoadDocumentHandlerMarkdownGates(t *testing.T) {
	ed, session := newSession(t)
	svc := markdown.NewServiceFS(fstest.MapFS{}, markdown.Config{}, nil)

	disabled := NewLoadDocumentHandler(session, svc, nil, FeatureGates{MarkdownEnabled: func() bool { return false }})
	if err := disabled.Execute(context.Background(), LoadDocumentCommand{Source: "x", Format: FormatMarkdown}); !errors.Is(err, ErrMarkdownFeatureDisabled) {
		t.Fatalf("expected ErrMarkdownFeatureDisabled, got %v", err)
	}

	missing := NewLoadDocumentHandler(session, nil, nil, FeatureGates{})
	if err := missing.Execute(context.Background(), LoadDocumentCommand{Source: "x", Format: FormatMarkdown}); !errors.Is(err, ErrMarkdownUnavailable) {
		t.Fatalf("expected ErrMarkdownUnavailable, got %v", err)
	}
	if got := data(t, ed); got != "<p></p>" {
		t.Fatalf("expected the document to stay untouched, got %q", got)
	}
}

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

func TestRegisterWidgetCommands(t *testing.T) {
	_, session := newSession(t)
	reg := &recordingRegistry{}

	set, err := RegisterWidgetCommands(reg, session, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if set.Insert == nil || set.Load == nil {
		t.Fatalf("expected both handlers to be built")
	}
	if len(reg.handlers) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(reg.handlers))
	}

	if _, err := RegisterWidgetCommands(reg, nil, nil); err == nil {
		t.Fatalf("expected error for nil session")
	}
}

func TestDispatchInsertWidget(t *testing.T) {
	ed, session := newSession(t)
	set, err := RegisterWidgetCommands(nil, session, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	sub := dispatcher.SubscribeCommand(set.Insert)
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), InsertWidgetCommand{Kind: "placeholder", Value: "date"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got, want := data(t, ed), `<p><span class="placeholder">{date}</span></p>`; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
