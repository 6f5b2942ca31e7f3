package dispatch

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// Config collects named commands before they are frozen into Commands. A Config is not safe for
// concurrent use.
type Config struct {
	commands       *orderedmap.OrderedMap
	defaultCommand AnyCommand
}

// NewConfig creates an empty Config
func NewConfig() *Config {
	return &Config{commands: orderedmap.New()}
}

// Use registers cmd under name. When isDefault is true, cmd also becomes the default command.
func (c *Config) Use(cmd AnyCommand, name string, isDefault ...bool) error {
	if name == "" {
		return ErrEmptyCommandName
	}
	if cmd == nil {
		return ErrNilCommand.WithArgs(name)
	}
	if _, found := c.commands.Get(name); found {
		return ErrDuplicateCommand.WithArgs(name)
	}

	c.commands.Set(name, cmd)
	if len(isDefault) > 0 && isDefault[0] {
		c.defaultCommand = cmd
	}

	return nil
}

// Resolve returns an immutable snapshot of the registered commands. Later calls to Use do not affect it.
func (c *Config) Resolve() Commands {
	snapshot := orderedmap.New()
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		snapshot.Set(pair.Key, pair.Value)
	}

	return Commands{commands: snapshot, defaultCommand: c.defaultCommand}
}

// Commands is a resolved, read-only set of named commands and an optional default
type Commands struct {
	commands       *orderedmap.OrderedMap
	defaultCommand AnyCommand
}

// Names returns the command names in registration order
func (c Commands) Names() []string {
	if c.commands == nil {
		return nil
	}
	names := make([]string, 0, c.commands.Len())
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// Command returns the command registered under name
func (c Commands) Command(name string) (AnyCommand, bool) {
	if c.commands == nil {
		return nil, false
	}
	v, found := c.commands.Get(name)
	if !found {
		return nil, false
	}

	return v.(AnyCommand), true
}

// DefaultCommand returns the default command, or nil
func (c Commands) DefaultCommand() AnyCommand {
	return c.defaultCommand
}

// Group builds a Group from the commands
func (c Commands) Group(help string) (*Group, error) {
	configs := []ConfigureGroupFunc{WithGroupHelp(help), WithDefaultCommand(c.defaultCommand)}
	for _, name := range c.Names() {
		cmd, _ := c.Command(name)
		configs = append(configs, WithCommand(name, cmd))
	}

	return NewGroup(configs...)
}
