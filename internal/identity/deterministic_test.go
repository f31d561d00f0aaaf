package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsStable(t *testing.T) {
	if UUID("go-richtext:x") != UUID("  go-richtext:x ") {
		t.Fatalf("expected surrounding whitespace to be ignored")
	}
	if UUID("") != uuid.Nil {
		t.Fatalf("expected nil uuid for an empty key")
	}
	if UUID("a") == UUID("b") {
		t.Fatalf("expected distinct keys to differ")
	}
}

func TestToolbarIDsAreScoped(t *testing.T) {
	placeholder := ToolbarComponentUUID("placeholder")
	direction := ToolbarComponentUUID("ignoreDirection")
	if placeholder == direction {
		t.Fatalf("expected components to differ")
	}
	if ToolbarItemUUID(placeholder, "date") == ToolbarItemUUID(direction, "date") {
		t.Fatalf("expected item ids to be scoped by component")
	}
	if ToolbarItemUUID(placeholder, "date") != ToolbarItemUUID(placeholder, "date") {
		t.Fatalf("expected item ids to be deterministic")
	}
}

func TestToolbarItemTokensAreCaseSensitive(t *testing.T) {
	component := ToolbarComponentUUID("placeholder")
	if ToolbarItemUUID(component, "Date") == ToolbarItemUUID(component, "date") {
		t.Fatalf("expected tokens differing in case to get distinct ids")
	}
	if ToolbarItemUUID(uuid.Nil, "date") != uuid.Nil {
		t.Fatalf("expected nil id without a component")
	}
	if ToolbarComponentUUID(" placeholder ") != component {
		t.Fatalf("expected component names to be trimmed")
	}
}
