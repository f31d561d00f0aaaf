// Package richtext is the host runtime for the placeholder and direction
// override inline widgets: an editor session with schema, conversion and
// commands, plus the toolbar and markdown sources around it.
package richtext

import (
	"github.com/goliatone/go-richtext/internal/di"
	"github.com/goliatone/go-richtext/internal/editor"
	"github.com/goliatone/go-richtext/internal/toolbar"
	"github.com/goliatone/go-richtext/internal/widgets"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Editor exports the editing session type.
type Editor = editor.Editor

// Toolbar exports the toolbar surface.
type Toolbar = toolbar.Toolbar

// WidgetRegistry exports the inline widget registry.
type WidgetRegistry = widgets.Registry

// WidgetKind exports the widget kind identifier.
type WidgetKind = widgets.Kind

const (
	KindPlaceholder       = widgets.KindPlaceholder
	KindDirectionOverride = widgets.KindDirectionOverride
)

// MarkdownService exports the markdown source contract.
type MarkdownService = interfaces.MarkdownService

// Module represents the top level richtext runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// NewEditor starts an editing session. Sessions are not safe for concurrent use.
func (m *Module) NewEditor() (*Editor, error) {
	return m.container.NewEditor()
}

// NewToolbar builds the configured toolbar for ed.
func (m *Module) NewToolbar(ed *Editor) (*Toolbar, error) {
	return m.container.NewToolbar(ed)
}

// Widgets returns the registry of enabled inline widgets.
func (m *Module) Widgets() *WidgetRegistry {
	return m.container.WidgetRegistry()
}

// Markdown returns the markdown source service, nil unless Features.Markdown is set.
func (m *Module) Markdown() MarkdownService {
	return m.container.MarkdownService()
}

// Convert loads html into a fresh session and returns the data output.
func (m *Module) Convert(html string) (string, error) {
	ed, err := m.NewEditor()
	if err != nil {
		return "", err
	}
	if err := ed.SetData(html); err != nil {
		return "", err
	}
	return ed.GetData()
}
