package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrPlaceholderTokenEmpty = errors.New("richtext config: placeholder token must not be empty")
var ErrPlaceholderTokenDuplicate = errors.New("richtext config: placeholder token is duplicated")
var ErrPlaceholderFeatureRequired = errors.New("richtext config: placeholder feature must be enabled to list placeholder types")
var ErrDirectionLabelRequired = errors.New("richtext config: direction override label is required")
var ErrHeadingOptionInvalid = errors.New("richtext config: heading option requires a model name and a title")
var ErrMarkdownFeatureRequired = errors.New("richtext config: markdown feature must be enabled to configure markdown")
var ErrLoggingProviderRequired = errors.New("richtext config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("richtext config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("richtext config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("richtext config: logging format is invalid")
var ErrCommandTimeoutInvalid = errors.New("richtext config: command timeout must be zero or positive")

// Separator splits toolbar groups.
const Separator = "|"

// Config aggregates the editor build settings and the feature flags of the
// runtime around it.
type Config struct {
	Language          string
	Toolbar           ToolbarConfig
	Heading           HeadingConfig
	Placeholder       PlaceholderConfig
	DirectionOverride DirectionOverrideConfig
	Sanitize          SanitizeConfig
	Markdown          MarkdownConfig
	Commands          CommandsConfig
	Features          Features
	Logging           LoggingConfig
}

// ToolbarConfig lists toolbar component names in display order.
type ToolbarConfig struct {
	Items []string
}

// HeadingConfig lists the block styles offered by the heading dropdown.
type HeadingConfig struct {
	Options []HeadingOption
}

// HeadingOption binds a model block to a view tag. An empty View means the
// option is the plain paragraph.
type HeadingOption struct {
	Model string
	View  string
	Title string
	Class string
}

// PlaceholderConfig holds the ordered, user-facing placeholder tokens.
type PlaceholderConfig struct {
	Types []string
}

// DirectionOverrideConfig configures the forced left-to-right wrapper.
type DirectionOverrideConfig struct {
	Label string
}

// SanitizeConfig controls the HTML policy applied before import.
type SanitizeConfig struct {
	Enabled bool
}

// MarkdownConfig captures parser behaviour for Markdown sources.
type MarkdownConfig struct {
	Enabled bool
	Parser  MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures message bus behaviour.
type CommandsConfig struct {
	Enabled    bool
	Timeout    time.Duration
	MaxRetries int
}

// Features toggles module functionality.
type Features struct {
	Placeholder       bool
	DirectionOverride bool
	Markdown          bool
	Logger            bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the stock editor build: both inline widgets enabled,
// the full toolbar and the two heading presets.
func DefaultConfig() Config {
	return Config{
		Language: "en",
		Toolbar: ToolbarConfig{
			Items: []string{
				"heading", Separator,
				"bold", "italic", "link", "bulletedList", "numberedList", Separator,
				"outdent", "indent", Separator,
				"imageUpload", "blockQuote", "insertTable", "mediaEmbed", "undo", "redo",
				"specialCharacters", "fontBackgroundColor", "fontColor", "fontFamily", "fontSize",
				"highlight", "htmlEmbed", "removeFormat", "sourceEditing", "underline",
				"superscript", "subscript", "horizontalLine", "strikethrough", "alignment",
				"placeholder", "ignoreDirection",
			},
		},
		Heading: HeadingConfig{
			Options: []HeadingOption{
				{Model: "heading1", View: "h2", Title: "Heading", Class: "ck-heading_heading1"},
				{Model: "paragraph", Title: "Body", Class: "ck-heading_paragraph"},
			},
		},
		Placeholder: PlaceholderConfig{
			Types: []string{"date", "first name", "surname"},
		},
		DirectionOverride: DirectionOverrideConfig{
			Label: "Apply Left-to-Right",
		},
		Sanitize: SanitizeConfig{
			Enabled: true,
		},
		Markdown: MarkdownConfig{
			Parser: MarkdownParserConfig{
				Extensions: []string{"gfm"},
			},
		},
		Commands: CommandsConfig{
			MaxRetries: 0,
		},
		Features: Features{
			Placeholder:       true,
			DirectionOverride: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Placeholder.Types) > 0 && !cfg.Features.Placeholder {
		return ErrPlaceholderFeatureRequired
	}
	seen := make(map[string]struct{}, len(cfg.Placeholder.Types))
	for _, token := range cfg.Placeholder.Types {
		if strings.TrimSpace(token) == "" {
			return ErrPlaceholderTokenEmpty
		}
		if _, dup := seen[token]; dup {
			return fmt.Errorf("%w: %s", ErrPlaceholderTokenDuplicate, token)
		}
		seen[token] = struct{}{}
	}
	if cfg.Features.DirectionOverride && strings.TrimSpace(cfg.DirectionOverride.Label) == "" {
		return ErrDirectionLabelRequired
	}
	for _, option := range cfg.Heading.Options {
		if strings.TrimSpace(option.Model) == "" || strings.TrimSpace(option.Title) == "" {
			return fmt.Errorf("%w: %+v", ErrHeadingOptionInvalid, option)
		}
	}
	if cfg.Markdown.Enabled && !cfg.Features.Markdown {
		return ErrMarkdownFeatureRequired
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
