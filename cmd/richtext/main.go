// Command richtext converts documents carrying inline widgets, inserts
// widgets at the document edges and renders the editing view.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-richtext"
	"github.com/goliatone/go-richtext/commands"
	widgetscmd "github.com/goliatone/go-richtext/internal/commands/widgets"
	"github.com/goliatone/go-richtext/internal/di"
	"github.com/goliatone/go-richtext/internal/logging/console"
)

var errUsage = errors.New("usage: richtext <convert|insert|render> -in FILE [flags]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type session struct {
	editor *richtext.Editor
	insert *widgetscmd.InsertWidgetHandler
	load   *widgetscmd.LoadDocumentHandler
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	name, rest := args[0], args[1:]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		in       = fs.String("in", "-", "Input file, - reads stdin")
		format   = fs.String("format", widgetscmd.FormatHTML, "Input format: html or markdown")
		logLevel = fs.String("log-level", "", "Enable console logging to stderr at this level")
		kind     = fs.String("kind", "", "Widget kind to insert (insert only)")
		value    = fs.String("value", "", "Widget value to insert (insert only)")
		at       = fs.String("at", "end", "Caret placement before inserting: start or end (insert only)")
	)

	switch name {
	case "convert", "insert", "render":
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if err := fs.Parse(rest); err != nil {
		return err
	}

	source, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	s, err := newSession(*logLevel, stderr)
	if err != nil {
		return err
	}
	if err := s.load.Execute(ctx, widgetscmd.LoadDocumentCommand{Source: source, Format: *format}); err != nil {
		return err
	}

	switch name {
	case "insert":
		if err := placeCaret(s.editor, *at); err != nil {
			return err
		}
		if err := s.insert.Execute(ctx, widgetscmd.InsertWidgetCommand{Kind: *kind, Value: *value}); err != nil {
			return err
		}
		fallthrough
	case "convert":
		out, err := s.editor.GetData()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	default:
		out, err := s.editor.EditingHTML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}
}

func newSession(logLevel string, stderr io.Writer) (*session, error) {
	cfg := richtext.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true

	opts := []di.Option{}
	if strings.TrimSpace(logLevel) != "" {
		cfg.Features.Logger = true
		cfg.Logging.Level = logLevel
		provider, err := console.NewProviderFromConfig(cfg.Logging, stderr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, di.WithLoggerProvider(provider))
	}

	module, err := richtext.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	result, err := commands.RegisterContainerCommands(module.Container(), commands.RegistrationOptions{})
	if err != nil {
		return nil, err
	}

	s := &session{editor: result.Editor}
	for _, handler := range result.Handlers {
		switch h := handler.(type) {
		case *widgetscmd.InsertWidgetHandler:
			s.insert = h
		case *widgetscmd.LoadDocumentHandler:
			s.load = h
		}
	}
	return s, nil
}

func placeCaret(ed *richtext.Editor, at string) error {
	switch strings.ToLower(strings.TrimSpace(at)) {
	case "", "end":
		return ed.CollapseToEnd()
	case "start":
		return ed.CollapseToStart()
	default:
		return fmt.Errorf("unsupported caret placement %q", at)
	}
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
