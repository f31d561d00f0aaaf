package widgets

import (
	"maps"

	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// InsertCommand inserts one widget kind at the selection.
type InsertCommand struct {
	model   *model.Model
	checker schema.Checker
	desc    Descriptor
	enabled bool
	logger  interfaces.Logger
}

// NewInsertCommand binds desc to m. The command starts disabled until the
// first Refresh.
func NewInsertCommand(m *model.Model, checker schema.Checker, desc Descriptor, logger interfaces.Logger) *InsertCommand {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &InsertCommand{
		model:   m,
		checker: checker,
		desc:    desc,
		logger:  logging.WithWidgetContext(logger, string(desc.Kind), string(desc.Kind)),
	}
}

// Kind returns the widget kind the command inserts.
func (c *InsertCommand) Kind() Kind { return c.desc.Kind }

// IsEnabled reports the state computed by the last Refresh.
func (c *InsertCommand) IsEnabled() bool { return c.enabled }

// Refresh enables the command when the selection focus parent may hold the widget.
func (c *InsertCommand) Refresh() {
	focus := c.model.Document().Selection().Focus()
	c.enabled = c.checker.CheckChild(focus.Parent, string(c.desc.Kind))
}

// Execute creates the widget from the selection's text attributes and the
// kind attributes built from value, inserts it in place of the selection and
// selects it. Everything happens in one change; a failed insertion leaves the
// document untouched.
func (c *InsertCommand) Execute(value string) error {
	var inserted *model.Element
	err := c.model.Change(func(w *model.Writer) error {
		sel := c.model.Document().Selection()
		attrs := sel.Attributes()
		maps.Copy(attrs, c.desc.Build(value, sel))

		el := w.CreateElement(string(c.desc.Kind), attrs)
		if err := c.model.InsertContent(w, el); err != nil {
			return err
		}
		inserted = el
		return w.SetSelection(el, model.SelectOn)
	})
	if err != nil {
		c.logger.Warn("widgets.command.insert_failed", "error", err)
		return err
	}
	c.logger.Debug("widgets.command.inserted", "name", stringAttr(inserted.Attributes(), AttributeName))
	return nil
}
