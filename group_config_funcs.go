package dispatch

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// NewGroup creates a Group. Children keep the order in which they are added; the first failing
// configuration function aborts creation.
func NewGroup(configs ...ConfigureGroupFunc) (*Group, error) {
	g := &Group{
		commands: orderedmap.New(),
	}

	var err error
	for _, config := range configs {
		config(g, &err)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// MustGroup is like NewGroup but panics on error
func MustGroup(configs ...ConfigureGroupFunc) *Group {
	g, err := NewGroup(configs...)
	if err != nil {
		panic(err)
	}

	return g
}

// WithGroupHelp sets the text shown in the group's help and next to the group in its parent's listing
func WithGroupHelp(help string) ConfigureGroupFunc {
	return func(group *Group, err *error) {
		group.help = help
	}
}

// WithCommand registers cmd under name. Names must be non-empty and unique within the group.
func WithCommand(name string, cmd AnyCommand) ConfigureGroupFunc {
	return func(group *Group, err *error) {
		if _, found := group.commands.Get(name); found {
			*err = ErrDuplicateCommand.WithArgs(name)
			return
		}
		switch {
		case name == "":
			*err = ErrEmptyCommandName
		case cmd == nil:
			*err = ErrNilCommand.WithArgs(name)
		default:
			group.commands.Set(name, cmd)
		}
	}
}

// WithDefaultCommand sets the command run when no positional token is left. It need not be one of
// the group's named children.
func WithDefaultCommand(cmd AnyCommand) ConfigureGroupFunc {
	return func(group *Group, err *error) {
		group.defaultCommand = cmd
	}
}
