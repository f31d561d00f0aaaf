// Package toolbar builds the toolbar surface for the editor commands. The
// toolbar holds no editor state of its own: Refresh copies command
// enablement and Click forwards to the bound command.
package toolbar

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-richtext/internal/editor"
	"github.com/goliatone/go-richtext/internal/identity"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
	"github.com/goliatone/go-richtext/pkg/interfaces"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

var (
	// ErrItemNotFound is returned by Click for an unknown item id.
	ErrItemNotFound = errors.New("toolbar: item not found")
	// ErrItemDisabled is returned by Click when the bound command is disabled.
	ErrItemDisabled = errors.New("toolbar: item disabled")
)

// ComponentType classifies toolbar components.
type ComponentType string

const (
	ComponentDropdown  ComponentType = "dropdown"
	ComponentButton    ComponentType = "button"
	ComponentSeparator ComponentType = "separator"
)

// PlaceholderCommand and DirectionCommand are the command names with a
// dedicated component.
const (
	PlaceholderCommand = "placeholder"
	DirectionCommand   = "ignoreDirection"
)

// Commands is the command lookup the toolbar binds to.
type Commands interface {
	Get(name string) (editor.Command, bool)
}

// Item is one clickable entry. Param is passed to the command on click.
type Item struct {
	ID      uuid.UUID
	Slug    string
	Label   string
	Param   string
	Command string
	Enabled bool
}

// Component is a dropdown with items, a button with exactly one item, or a
// separator with none.
type Component struct {
	ID      uuid.UUID
	Type    ComponentType
	Name    string
	Label   string
	Items   []*Item
	Enabled bool
}

// Toolbar is the built surface.
type Toolbar struct {
	components []*Component
	items      map[uuid.UUID]*Item
	commands   Commands
	logger     interfaces.Logger
	label      string
}

// Option configures Build.
type Option func(*Toolbar)

// WithLogger sets the toolbar logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(t *Toolbar) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithDirectionLabel sets the label of the direction override button.
func WithDirectionLabel(label string) Option {
	return func(t *Toolbar) {
		if label != "" {
			t.label = label
		}
	}
}

// Build creates the components named in tb in order. The placeholder command
// becomes a dropdown with one item per token in pc and the direction command
// a button with the direction label. Other names bound to a registered command
// become a plain button; names without a command are skipped, and so are
// separators left leading, trailing or doubled by them.
func Build(cmds Commands, tb runtimeconfig.ToolbarConfig, pc runtimeconfig.PlaceholderConfig, opts ...Option) (*Toolbar, error) {
	t := &Toolbar{
		items:    map[uuid.UUID]*Item{},
		commands: cmds,
		logger:   logging.NoOp(),
		label:    runtimeconfig.DefaultConfig().DirectionOverride.Label,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	for index, name := range tb.Items {
		if name == runtimeconfig.Separator {
			if n := len(t.components); n == 0 || t.components[n-1].Type == ComponentSeparator {
				continue
			}
			t.components = append(t.components, &Component{
				ID:   identity.ToolbarComponentUUID(fmt.Sprintf("separator:%d", index)),
				Type: ComponentSeparator,
				Name: name,
			})
			continue
		}
		if _, ok := cmds.Get(name); !ok {
			t.logger.Debug("toolbar.component.unavailable", "command", name)
			continue
		}
		component := &Component{ID: identity.ToolbarComponentUUID(name), Name: name}
		switch name {
		case PlaceholderCommand:
			component.Type = ComponentDropdown
			component.Label = "Placeholder"
			for _, token := range pc.Types {
				item, err := t.newItem(component, token, token)
				if err != nil {
					return nil, err
				}
				component.Items = append(component.Items, item)
			}
		case DirectionCommand:
			component.Type = ComponentButton
			component.Label = t.label
			item, err := t.newItem(component, t.label, "")
			if err != nil {
				return nil, err
			}
			component.Items = []*Item{item}
		default:
			component.Type = ComponentButton
			component.Label = name
			item, err := t.newItem(component, name, "")
			if err != nil {
				return nil, err
			}
			component.Items = []*Item{item}
		}
		t.components = append(t.components, component)
	}
	if n := len(t.components); n > 0 && t.components[n-1].Type == ComponentSeparator {
		t.components = t.components[:n-1]
	}
	t.Refresh()
	return t, nil
}

func (t *Toolbar) newItem(component *Component, label, param string) (*Item, error) {
	key := label
	if param != "" {
		key = param
	}
	id := identity.ToolbarItemUUID(component.ID, key)
	itemSlug, err := slug.Normalize(key)
	if err != nil || itemSlug == "" {
		itemSlug = id.String()
	}
	item := &Item{
		ID:      id,
		Slug:    itemSlug,
		Label:   label,
		Param:   param,
		Command: component.Name,
	}
	if _, exists := t.items[item.ID]; exists {
		return nil, fmt.Errorf("toolbar: duplicate item %q in %s", key, component.Name)
	}
	t.items[item.ID] = item
	return item, nil
}

// Components returns the built components in display order.
func (t *Toolbar) Components() []*Component { return t.components }

// Component returns the component bound to command.
func (t *Toolbar) Component(command string) (*Component, bool) {
	for _, component := range t.components {
		if component.Type != ComponentSeparator && component.Name == command {
			return component, true
		}
	}
	return nil, false
}

// Item returns the item with id.
func (t *Toolbar) Item(id uuid.UUID) (*Item, bool) {
	item, ok := t.items[id]
	return item, ok
}

// Refresh copies IsEnabled from each bound command.
func (t *Toolbar) Refresh() {
	for _, component := range t.components {
		if component.Type == ComponentSeparator {
			continue
		}
		enabled := false
		if cmd, ok := t.commands.Get(component.Name); ok {
			enabled = cmd.IsEnabled()
		}
		component.Enabled = enabled
		for _, item := range component.Items {
			item.Enabled = enabled
		}
	}
}

// Click runs the command bound to the item with its parameter. The state
// read is the one captured by the last Refresh.
func (t *Toolbar) Click(id uuid.UUID) error {
	item, ok := t.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if !item.Enabled {
		return fmt.Errorf("%w: %s", ErrItemDisabled, item.Slug)
	}
	cmd, ok := t.commands.Get(item.Command)
	if !ok {
		return fmt.Errorf("%w: %s", editor.ErrCommandNotFound, item.Command)
	}
	logger := logging.WithWidgetContext(t.logger, "", item.Command)
	if err := cmd.Execute(item.Param); err != nil {
		logger.Warn("toolbar.item.failed", "item", item.Slug, "error", err)
		return err
	}
	logger.Debug("toolbar.item.clicked", "item", item.Slug)
	t.Refresh()
	return nil
}
