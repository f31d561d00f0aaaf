package widgets

import (
	"github.com/goliatone/go-richtext/internal/editor"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
)

// Plugin installs every descriptor of a registry into an editor: schema
// item, converters, insertion command and position hook. Loaded documents
// are checked by a DocumentValidator before they commit.
type Plugin struct {
	registry *Registry
}

var _ editor.Plugin = Plugin{}

// NewPlugin returns a plugin for reg. A nil registry installs the defaults.
func NewPlugin(reg *Registry) Plugin {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return Plugin{registry: reg}
}

// RegistryFromConfig builds a registry holding the widgets enabled in cfg.
func RegistryFromConfig(cfg runtimeconfig.Config) *Registry {
	reg := NewRegistry()
	if cfg.Features.Placeholder {
		_ = reg.Register(PlaceholderDescriptor())
	}
	if cfg.Features.DirectionOverride {
		_ = reg.Register(DirectionOverrideDescriptor(cfg.DirectionOverride.Label))
	}
	return reg
}

// Registry returns the installed registry.
func (p Plugin) Registry() *Registry { return p.registry }

// PluginName implements editor.Plugin.
func (Plugin) PluginName() string { return "InlineWidgets" }

// Init implements editor.Plugin.
func (p Plugin) Init(ed *editor.Editor) error {
	logger := logging.WidgetsLogger(ed.LoggerProvider())
	for _, desc := range p.registry.List() {
		if err := ed.Schema().Register(string(desc.Kind), desc.SchemaDefinition()); err != nil {
			return err
		}
		RegisterConverters(ed.Conversion(), desc)
		if err := ed.Commands().Add(string(desc.Kind), NewInsertCommand(ed.Model(), ed.Schema(), desc, logger)); err != nil {
			return err
		}
		ed.Mapper().OnViewToModelPosition(OutsideWidgetPosition(HasClass(desc.ClassName)))
		logger.Debug("widgets.plugin.registered", "kind", string(desc.Kind))
	}
	validator, err := NewDocumentValidator(ed.Schema(), p.registry)
	if err != nil {
		return err
	}
	ed.AddDataValidator(validator.Validate)
	return nil
}
