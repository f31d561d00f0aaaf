package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

var (
	// ErrCommandNotFound is returned when executing an unregistered command.
	ErrCommandNotFound = errors.New("editor: command not found")
	// ErrCommandDisabled is returned when executing a command whose last
	// refresh left it disabled. The command is not run.
	ErrCommandDisabled = errors.New("editor: command disabled")
	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("editor: duplicate command")
	// ErrInvalidCommand is returned for an empty name or a nil command.
	ErrInvalidCommand = errors.New("editor: invalid command registration")
)

// Command is an editor operation bound to the toolbar or the message bus.
// Refresh recomputes IsEnabled from the current model state.
type Command interface {
	Execute(value string) error
	Refresh()
	IsEnabled() bool
}

// CommandCollection holds the editor commands by name.
type CommandCollection struct {
	commands map[string]Command
	order    []string
	logger   interfaces.Logger
}

func newCommandCollection(logger interfaces.Logger) *CommandCollection {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &CommandCollection{commands: map[string]Command{}, logger: logger}
}

// Add registers cmd under name.
func (c *CommandCollection) Add(name string, cmd Command) error {
	name = strings.TrimSpace(name)
	if name == "" || cmd == nil {
		return ErrInvalidCommand
	}
	if _, exists := c.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	c.commands[name] = cmd
	c.order = append(c.order, name)
	cmd.Refresh()
	return nil
}

// Get returns the command registered under name.
func (c *CommandCollection) Get(name string) (Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// Names lists command names in registration order.
func (c *CommandCollection) Names() []string {
	return append([]string(nil), c.order...)
}

// RefreshAll refreshes every command in registration order.
func (c *CommandCollection) RefreshAll() {
	for _, name := range c.order {
		c.commands[name].Refresh()
	}
}

// Execute runs the named command with value.
func (c *CommandCollection) Execute(name, value string) error {
	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	if !cmd.IsEnabled() {
		c.logger.Debug("editor.command.disabled", "command", name)
		return fmt.Errorf("%w: %s", ErrCommandDisabled, name)
	}
	if err := cmd.Execute(value); err != nil {
		c.logger.Warn("editor.command.failed", "command", name, "error", err)
		return err
	}
	c.logger.Debug("editor.command.executed", "command", name)
	return nil
}
