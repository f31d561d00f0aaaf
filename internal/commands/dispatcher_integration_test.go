package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-richtext/internal/editor"
)

type insertTokenCommand struct {
	Name string
}

func (insertTokenCommand) Type() string { return "richtext.test.insert_token" }

func (insertTokenCommand) Validate() error { return nil }

type applyOverrideCommand struct {
	Value string
}

func (applyOverrideCommand) Type() string { return "richtext.test.apply_override" }

func (applyOverrideCommand) Validate() error { return nil }

func TestDispatcherRetriesTransientInsertFailure(t *testing.T) {
	var inserted []string
	attempts := 0
	handler := NewHandler(func(_ context.Context, msg insertTokenCommand) error {
		attempts++
		if attempts == 1 {
			return errors.New("document busy")
		}
		inserted = append(inserted, msg.Name)
		return nil
	}, WithTimeout[insertTokenCommand](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(1))
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), insertTokenCommand{Name: "first name"}); err != nil {
		t.Fatalf("dispatch: expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
	if len(inserted) != 1 || inserted[0] != "first name" {
		t.Fatalf("expected one insertion, got %v", inserted)
	}
}

func TestDispatcherSurfacesDisabledCommandAfterRetries(t *testing.T) {
	attempts := 0
	handler := NewHandler(func(context.Context, applyOverrideCommand) error {
		attempts++
		return editor.ErrCommandDisabled
	}, WithTimeout[applyOverrideCommand](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(2))
	t.Cleanup(sub.Unsubscribe)

	err := dispatcher.Dispatch(context.Background(), applyOverrideCommand{Value: "ltr"})
	if err == nil {
		t.Fatal("expected dispatcher to return error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}
