package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-richtext/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	want := []string{"date", "first name", "surname"}
	if len(cfg.Placeholder.Types) != len(want) {
		t.Fatalf("unexpected placeholder types %v", cfg.Placeholder.Types)
	}
	for i, token := range want {
		if cfg.Placeholder.Types[i] != token {
			t.Fatalf("expected token %q at %d, got %q", token, i, cfg.Placeholder.Types[i])
		}
	}
	items := cfg.Toolbar.Items
	if items[len(items)-2] != "placeholder" || items[len(items)-1] != "ignoreDirection" {
		t.Fatalf("expected toolbar to end with the widget buttons, got %v", items[len(items)-2:])
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "empty placeholder token",
			mutate: func(c *runtimeconfig.Config) { c.Placeholder.Types = []string{"date", " "} },
			want:   runtimeconfig.ErrPlaceholderTokenEmpty,
		},
		{
			name:   "duplicate placeholder token",
			mutate: func(c *runtimeconfig.Config) { c.Placeholder.Types = []string{"date", "date"} },
			want:   runtimeconfig.ErrPlaceholderTokenDuplicate,
		},
		{
			name:   "placeholder types without feature",
			mutate: func(c *runtimeconfig.Config) { c.Features.Placeholder = false },
			want:   runtimeconfig.ErrPlaceholderFeatureRequired,
		},
		{
			name:   "missing direction label",
			mutate: func(c *runtimeconfig.Config) { c.DirectionOverride.Label = "" },
			want:   runtimeconfig.ErrDirectionLabelRequired,
		},
		{
			name: "heading option without title",
			mutate: func(c *runtimeconfig.Config) {
				c.Heading.Options = append(c.Heading.Options, runtimeconfig.HeadingOption{Model: "heading2", View: "h3"})
			},
			want: runtimeconfig.ErrHeadingOptionInvalid,
		},
		{
			name:   "markdown without feature",
			mutate: func(c *runtimeconfig.Config) { c.Markdown.Enabled = true },
			want:   runtimeconfig.ErrMarkdownFeatureRequired,
		},
		{
			name: "logging provider required",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Provider = ""
			},
			want: runtimeconfig.ErrLoggingProviderRequired,
		},
		{
			name: "unknown logging provider",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Provider = "syslog"
			},
			want: runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name: "invalid logging level",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Level = "loud"
			},
			want: runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Provider = "gologger"
				c.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
