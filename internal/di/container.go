package di

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goliatone/go-richtext/internal/editor"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/logging/console"
	"github.com/goliatone/go-richtext/internal/logging/gologger"
	"github.com/goliatone/go-richtext/internal/markdown"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
	"github.com/goliatone/go-richtext/internal/sanitize"
	"github.com/goliatone/go-richtext/internal/toolbar"
	"github.com/goliatone/go-richtext/internal/widgets"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Container wires the editor build shared by every session: logger provider,
// widget registry, import sanitiser and markdown sources. Editors are created
// per session because an editor is single-threaded.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger

	registry  *widgets.Registry
	sanitizer interfaces.HTMLSanitizer

	markdownBasePath string
	markdownParser   interfaces.MarkdownParser
	markdownSvc      interfaces.MarkdownService
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithWidgetRegistry overrides the registry derived from the feature flags.
func WithWidgetRegistry(reg *widgets.Registry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// WithSanitizer overrides the default bluemonday policy.
func WithSanitizer(sanitizer interfaces.HTMLSanitizer) Option {
	return func(c *Container) {
		c.sanitizer = sanitizer
	}
}

// WithMarkdownBasePath roots markdown sources at path.
func WithMarkdownBasePath(path string) Option {
	return func(c *Container) {
		c.markdownBasePath = path
	}
}

// WithMarkdownParser overrides the goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.markdownParser = parser
	}
}

// WithMarkdownService overrides the markdown service binding.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return func(c *Container) {
		c.markdownSvc = svc
	}
}

// NewContainer validates cfg and wires the shared services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "richtext.di")

	c.configureWidgets()
	c.configureSanitizer()
	if err := c.configureMarkdown(); err != nil {
		return nil, err
	}

	c.logger.Debug("container.configured",
		"widgets", len(c.registry.List()),
		"sanitize", c.sanitizer != nil,
		"markdown", c.markdownSvc != nil,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.ConfigFrom(c.Config.Logging))
		if err != nil {
			return fmt.Errorf("di: configure go-logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		provider, err := console.NewProviderFromConfig(c.Config.Logging, os.Stderr)
		if err != nil {
			return fmt.Errorf("di: configure console logger: %w", err)
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureWidgets() {
	if c.registry == nil {
		c.registry = widgets.RegistryFromConfig(c.Config)
	}
}

func (c *Container) configureSanitizer() {
	if c.sanitizer != nil || !c.Config.Sanitize.Enabled {
		return
	}
	classes := make([]string, 0, len(c.registry.List()))
	for _, desc := range c.registry.List() {
		classes = append(classes, desc.ClassName)
	}
	c.sanitizer = sanitize.New(classes...)
}

func (c *Container) configureMarkdown() error {
	if c.markdownSvc != nil || !c.Config.Features.Markdown {
		return nil
	}
	parserCfg := c.Config.Markdown.Parser
	opts := interfaces.ParseOptions{
		Extensions: parserCfg.Extensions,
		HardWraps:  parserCfg.HardWraps,
		SafeMode:   parserCfg.SafeMode,
	}
	if _, ok := c.registry.Get(widgets.KindPlaceholder); ok {
		opts.Placeholders = slices.Clone(c.Config.Placeholder.Types)
	}
	svc, err := markdown.NewService(markdown.Config{
		BasePath: c.markdownBasePath,
		Parser:   opts,
	}, c.markdownParser)
	if err != nil {
		return fmt.Errorf("di: configure markdown: %w", err)
	}
	c.markdownSvc = svc
	return nil
}

// NewEditor builds an editor session carrying the container's widgets,
// sanitiser and logger provider. Extra options are applied last.
func (c *Container) NewEditor(opts ...editor.Option) (*editor.Editor, error) {
	base := []editor.Option{
		editor.WithLoggerProvider(c.loggerProvider),
		editor.WithPlugins(widgets.NewPlugin(c.registry)),
	}
	if c.sanitizer != nil {
		base = append(base, editor.WithSanitizer(c.sanitizer))
	}
	return editor.New(c.Config, append(base, opts...)...)
}

// NewToolbar builds the toolbar for ed from the container configuration.
func (c *Container) NewToolbar(ed *editor.Editor) (*toolbar.Toolbar, error) {
	return toolbar.Build(ed.Commands(), c.Config.Toolbar, c.Config.Placeholder,
		toolbar.WithLogger(logging.ToolbarLogger(c.loggerProvider)),
		toolbar.WithDirectionLabel(c.Config.DirectionOverride.Label),
	)
}

// LoggerProvider returns the configured provider; nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// WidgetRegistry returns the inline widget registry.
func (c *Container) WidgetRegistry() *widgets.Registry {
	return c.registry
}

// Sanitizer returns the HTML import policy; nil when sanitising is disabled.
func (c *Container) Sanitizer() interfaces.HTMLSanitizer {
	return c.sanitizer
}

// MarkdownService returns the markdown source service; nil when the feature is off.
func (c *Container) MarkdownService() interfaces.MarkdownService {
	return c.markdownSvc
}
