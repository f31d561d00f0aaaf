package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const (
	rootModule       = "richtext"
	editorModule     = "richtext.editor"
	conversionModule = "richtext.conversion"
	widgetsModule    = "richtext.widgets"
	toolbarModule    = "richtext.toolbar"
)

const (
	fieldWidgetKind  = "widget_kind"
	fieldCommandName = "command"
	fieldStage       = "stage"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// EditorLogger returns the logger namespace reserved for the editor runtime.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// ConversionLogger returns the logger namespace reserved for the conversion pipeline.
func ConversionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, conversionModule)
}

// WidgetsLogger returns the logger namespace reserved for inline widgets.
func WidgetsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, widgetsModule)
}

// ToolbarLogger returns the logger namespace reserved for the toolbar surface.
func ToolbarLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, toolbarModule)
}

// WithWidgetContext enriches the logger with the widget kind and the command
// that acts on it. Empty values are ignored.
func WithWidgetContext(logger interfaces.Logger, kind, command string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		fields[fieldWidgetKind] = trimmed
	}
	if trimmed := strings.TrimSpace(command); trimmed != "" {
		fields[fieldCommandName] = trimmed
	}
	return WithFields(logger, fields)
}

// WithStage tags conversion entries with the pipeline stage.
func WithStage(logger interfaces.Logger, stage string) interfaces.Logger {
	if strings.TrimSpace(stage) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldStage: stage})
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
