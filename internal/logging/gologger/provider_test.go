package gologger

import (
	"context"
	"errors"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

func TestNewProviderCreatesLogger(t *testing.T) {
	p, err := NewProvider(Config{
		Level:  "debug",
		Format: "console",
	})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.GetLogger("richtext.test")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}

	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		t.Fatalf("expected logger to support fields, got %T", logger)
	}
	child := fl.WithFields(map[string]any{"module": "richtext.test"})
	if child == nil {
		t.Fatal("expected WithFields to return logger")
	}

	// Ensure chained operations do not panic.
	child.Debug("adapter.initialised")
}

func TestAdapterDelegatesToUnderlyingLogger(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Trace("trace", "key", "value")
	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")
	adapted.Fatal("fatal")

	fields := map[string]any{"widget_kind": "placeholder"}
	child := logging.WithFields(adapted, fields)
	if child == nil {
		t.Fatal("expected WithFields to return logger")
	}

	fields["widget_kind"] = "ignoreDirection"
	if len(stub.fields) != 1 {
		t.Fatalf("expected fields to be recorded once, got %d", len(stub.fields))
	}
	if stub.fields[0]["widget_kind"] != "placeholder" {
		t.Fatalf("expected fields to be cloned, got %v", stub.fields[0]["widget_kind"])
	}

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	adapted.WithContext(ctx)
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation, got %#v", stub.contexts)
	}

	wantCalls := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if len(stub.calls) != len(wantCalls) {
		t.Fatalf("expected %d calls, got %d", len(wantCalls), len(stub.calls))
	}
	for i, want := range wantCalls {
		if stub.calls[i] != want {
			t.Fatalf("call %d: expected %q, got %q", i, want, stub.calls[i])
		}
	}
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	_, err := NewProvider(Config{Format: "xml"})
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigFromLoggingConfig(t *testing.T) {
	src := runtimeconfig.LoggingConfig{
		Provider:  "gologger",
		Level:     "warning",
		Format:    "pretty",
		AddSource: true,
		Focus:     []string{"richtext.widgets"},
	}
	cfg := ConfigFrom(src)
	src.Focus[0] = "mutated"
	if cfg.Level != "warning" || cfg.Format != "pretty" || !cfg.AddSource {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.Focus) != 1 || cfg.Focus[0] != "richtext.widgets" {
		t.Fatalf("expected focus to be copied, got %v", cfg.Focus)
	}
	if normalizeLevel(cfg.Level) != glog.Warn {
		t.Fatalf("expected warning to map to glog.Warn")
	}
	if _, err := NewProvider(cfg); err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}

func TestNormalizeFocusDedupesModules(t *testing.T) {
	got := normalizeFocus([]string{" richtext.widgets", "richtext.editor", "", "richtext.widgets "})
	want := []string{"richtext.editor", "richtext.widgets"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   glog.Trace,
		" DEBUG ": glog.Debug,
		"warning": glog.Warn,
		"fatal":   glog.Fatal,
		"verbose": "",
		"":        "",
	}
	for input, want := range cases {
		if got := normalizeLevel(input); got != want {
			t.Fatalf("level %q: expected %q, got %q", input, want, got)
		}
	}
}
