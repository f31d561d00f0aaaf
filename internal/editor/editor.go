// Package editor assembles the model, schema, conversion pipeline and command
// collection into one editing session, and runs the refresh cycle after every
// committed change.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-richtext/internal/conversion"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/internal/view"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// ErrDuplicatePlugin is returned when two plugins share a name.
var ErrDuplicatePlugin = errors.New("editor: duplicate plugin")

// Plugin extends the editor during construction.
type Plugin interface {
	PluginName() string
	Init(ed *Editor) error
}

// Editor is one editing session.
type Editor struct {
	cfg       runtimeconfig.Config
	schema    *schema.Schema
	model     *model.Model
	conv      *conversion.Conversion
	commands  *CommandCollection
	provider  interfaces.LoggerProvider
	logger    interfaces.Logger
	sanitizer interfaces.HTMLSanitizer
	plugins   []Plugin
	installed []string
	editing   *view.Element

	validators []DataValidator
}

// DataValidator checks a freshly loaded document before SetData commits it.
// A non-nil error discards the load.
type DataValidator func(root *model.Element) error

// Option configures an Editor.
type Option func(*Editor)

// WithLoggerProvider supplies module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(e *Editor) {
		e.provider = provider
	}
}

// WithSanitizer filters HTML passed to SetData.
func WithSanitizer(sanitizer interfaces.HTMLSanitizer) Option {
	return func(e *Editor) {
		e.sanitizer = sanitizer
	}
}

// WithPlugins appends plugins installed after Essentials, in order.
func WithPlugins(plugins ...Plugin) Option {
	return func(e *Editor) {
		for _, plugin := range plugins {
			if plugin != nil {
				e.plugins = append(e.plugins, plugin)
			}
		}
	}
}

// New builds an editor, installs Essentials followed by the configured
// plugins, and starts with one empty paragraph holding the caret.
func New(cfg runtimeconfig.Config, opts ...Option) (*Editor, error) {
	e := &Editor{cfg: cfg, schema: schema.New()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.logger = logging.EditorLogger(e.provider)
	e.conv = conversion.New(e.schema, conversion.WithLogger(logging.ConversionLogger(e.provider)))
	e.model = model.New(e.schema)
	e.commands = newCommandCollection(e.logger)

	plugins := append([]Plugin{Essentials{}}, e.plugins...)
	seen := map[string]struct{}{}
	for _, plugin := range plugins {
		name := strings.TrimSpace(plugin.PluginName())
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlugin, name)
		}
		seen[name] = struct{}{}
		if err := plugin.Init(e); err != nil {
			return nil, fmt.Errorf("editor: init plugin %s: %w", name, err)
		}
		e.installed = append(e.installed, name)
		e.logger.Debug("editor.plugin.installed", "plugin", name)
	}

	e.model.OnChange(func(*model.Document) { e.afterChange() })
	if err := e.model.Change(func(w *model.Writer) error {
		root := e.model.Document().Root()
		if e.schema.CheckChild(root, model.ParagraphName) {
			if err := w.Append(w.CreateElement(model.ParagraphName, nil), root); err != nil {
				return err
			}
		}
		return w.SetSelectionPosition(edgePosition(root, false))
	}); err != nil {
		return nil, fmt.Errorf("editor: initial document: %w", err)
	}
	return e, nil
}

// AddDataValidator registers fn to run on every SetData. Plugins call it
// from Init.
func (e *Editor) AddDataValidator(fn DataValidator) {
	if fn != nil {
		e.validators = append(e.validators, fn)
	}
}

// Config returns the configuration the editor was built with.
func (e *Editor) Config() runtimeconfig.Config { return e.cfg }

// Schema returns the editor schema.
func (e *Editor) Schema() *schema.Schema { return e.schema }

// Model returns the document model.
func (e *Editor) Model() *model.Model { return e.model }

// Conversion returns the conversion pipeline.
func (e *Editor) Conversion() *conversion.Conversion { return e.conv }

// Mapper returns the editing view mapper.
func (e *Editor) Mapper() *conversion.Mapper { return e.conv.Mapper() }

// Commands returns the command collection.
func (e *Editor) Commands() *CommandCollection { return e.commands }

// Logger returns the editor module logger.
func (e *Editor) Logger() interfaces.Logger { return e.logger }

// LoggerProvider returns the provider plugins derive their loggers from. It
// may be nil.
func (e *Editor) LoggerProvider() interfaces.LoggerProvider { return e.provider }

// Plugins lists installed plugin names in installation order.
func (e *Editor) Plugins() []string { return append([]string(nil), e.installed...) }

// Execute runs a named command.
func (e *Editor) Execute(name, value string) error { return e.commands.Execute(name, value) }

// afterChange rebuilds the editing view and refreshes every command.
func (e *Editor) afterChange() {
	editing, err := e.conv.Downcast(conversion.EditingDowncast, e.model.Document().Root())
	if err != nil {
		e.logger.Error("editor.editing.downcast_failed", "error", err)
	} else {
		e.editing = editing
	}
	e.commands.RefreshAll()
}
