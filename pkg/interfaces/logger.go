package interfaces

import "context"

// Logger is the leveled logger used by the editor, conversion and command
// layers. The method set matches github.com/goliatone/go-logger so its
// loggers are accepted directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by module name, for example
// "richtext.widgets" or "richtext.commands.widgets".
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can return a child carrying
// persistent structured fields.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
