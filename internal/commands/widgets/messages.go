package widgetscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	insertWidgetMessageType = "richtext.widgets.insert"
	loadDocumentMessageType = "richtext.document.load"
)

// Document source formats accepted by LoadDocumentCommand.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// InsertWidgetCommand inserts a widget of Kind at the current selection.
// Value is the command parameter: the placeholder name, or the direction
// override label (empty falls back to the configured label).
type InsertWidgetCommand struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// Type implements command.Message.
func (InsertWidgetCommand) Type() string { return insertWidgetMessageType }

// Validate ensures a kind is present before handlers execute.
func (cmd InsertWidgetCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Kind, validation.Required, validation.By(notBlank(
			"richtext.widgets.insert.kind_required", "kind is required",
		))),
	)
}

// LoadDocumentCommand replaces the editor content with Source. Format
// defaults to html; markdown sources are rendered first.
type LoadDocumentCommand struct {
	Source string `json:"source"`
	Format string `json:"format,omitempty"`
}

// Type implements command.Message.
func (LoadDocumentCommand) Type() string { return loadDocumentMessageType }

// Validate ensures the format is supported. An empty source is valid and
// loads an empty document.
func (cmd LoadDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Format, validation.In(FormatHTML, FormatMarkdown).
			Error("format must be html or markdown")),
	)
}

func (cmd LoadDocumentCommand) format() string {
	if cmd.Format == "" {
		return FormatHTML
	}
	return cmd.Format
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
