package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// TelemetryStatus captures the result category for command execution.
type TelemetryStatus string

const (
	// TelemetryStatusSuccess indicates the command completed without errors.
	TelemetryStatusSuccess TelemetryStatus = "success"
	// TelemetryStatusFailed indicates the command execution returned an error.
	TelemetryStatusFailed TelemetryStatus = "failed"
	// TelemetryStatusContextError indicates execution failed due to context cancellation or deadline.
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// SlowCommandThreshold is the duration above which successful commands are
// reported at warn level.
const SlowCommandThreshold = 250 * time.Millisecond

// TelemetryInfo describes a command execution outcome provided to telemetry callbacks.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// WidgetKind returns the widget kind recorded in the message fields, if any.
func (i TelemetryInfo) WidgetKind() string {
	kind, _ := i.Fields["widget_kind"].(string)
	return kind
}

// Telemetry represents an optional callback invoked after command execution.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs one entry per command outcome. Successful commands
// slower than SlowCommandThreshold are logged at warn level.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(ctx context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields)
		args := []any{"status", string(info.Status), "duration_ms", info.Duration.Milliseconds()}
		switch {
		case info.Status == TelemetryStatusSuccess && info.Duration > SlowCommandThreshold:
			entry.Warn("command.execute.slow", args...)
		case info.Status == TelemetryStatusSuccess:
			entry.Info("command.execute.done", args...)
		default:
			entry.Error("command.execute.done", append(args, "error", info.Error)...)
		}
	}
}
