package logging

import (
	"maps"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// WithFields returns a child of logger carrying fields. Loggers that do not
// implement FieldsLogger are returned unchanged, as is every logger when
// fields is empty.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fl, ok := logger.(interfaces.FieldsLogger); ok {
		return fl.WithFields(maps.Clone(fields))
	}
	return logger
}
