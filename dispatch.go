// Copyright 2021-2026, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package dispatch routes a command line to a command in a tree of named groups and binds the
// remaining input to the command's declared signature.
//
// A tree is built from Groups and leaf Commands:
//
//	db := dispatch.MustGroup(
//		dispatch.WithGroupHelp("Database maintenance"),
//		dispatch.WithCommand("migrate", dispatch.NewCommand(migrate, dispatch.WithHelp("Runs migrations"))),
//		dispatch.WithDefaultCommand(status),
//	)
//	root := dispatch.MustGroup(dispatch.WithCommand("db", db))
//
//	if err := dispatch.Execute(root, os.Args); err != nil {
//		os.Exit(1)
//	}
//
// Each Group consumes one positional token to select a child. Leaf commands declare their inputs as
// a Schema and bind them with Bind: Argument slots take the remaining positional tokens in order,
// Option and Flag slots are looked up by long name, then by short alias.
package dispatch

import (
	"github.com/napalu/dispatch/console"
	"github.com/napalu/dispatch/input"
	"github.com/napalu/dispatch/parse"
	"github.com/napalu/dispatch/types"
)

const (
	helpFlag         = "help"
	helpShortFlag    = "h"
	autoCompleteFlag = "autocomplete"
	maxTreeDepth     = 100
)

// Execute parses args and dispatches them to root. args[0] is the executable.
//
// Options are classified against the command being resolved: once positional tokens have selected a
// command, only the Options of its signature take a value. Named tokens written ahead of the command
// name use the Options of every command below the group they follow. When the input carries --help
// or -h, root.OutputHelp is called instead of Run; --autocomplete calls root.OutputAutoComplete.
// Unless configured with WithConsole, output goes to standard output.
func Execute(root AnyCommand, args []string, opts ...RunOption) error {
	cfg := newRunConfig(nil, opts...)
	if cfg.console == nil {
		cfg.console = console.Stdout()
	}

	configs := append([]input.ConfigureFunc{input.WithScope(commandScope{cmd: root})}, cfg.inputConfigs...)

	in, err := input.Parse(args, configs...)
	if err != nil {
		return err
	}

	ctx := &CommandContext{
		Input:    in,
		Console:  cfg.console,
		Logger:   cfg.logger,
		Renderer: cfg.renderer,
	}
	ctx.logger().Debug("dispatching", "executable", in.ExecutableName(), "positionals", in.PositionalCount())

	switch {
	case in.HasFlag(helpFlag, helpShortFlag):
		return root.OutputHelp(ctx)
	case in.HasFlag(autoCompleteFlag, ""):
		return root.OutputAutoComplete(ctx)
	}

	return root.Run(ctx)
}

// ExecuteString splits line like a POSIX shell and dispatches the result to root
func ExecuteString(root AnyCommand, line string, opts ...RunOption) error {
	args, err := parse.Split(line)
	if err != nil {
		return input.ErrSplitInput.Wrap(err)
	}

	return Execute(root, args, opts...)
}

type schemaProvider interface {
	Schema() Schema
}

type childProvider interface {
	children() []AnyCommand
}

type commandLookup interface {
	Command(name string) (AnyCommand, bool)
}

// commandScope classifies options for the command tree below cmd
type commandScope struct {
	cmd   AnyCommand
	depth int
}

func (s commandScope) ValueOptions() (long, short []string) {
	return collectValueOptions(s.cmd, 0)
}

func (s commandScope) Enter(name string) (input.Scope, bool) {
	lookup, ok := s.cmd.(commandLookup)
	if !ok || s.depth >= maxTreeDepth {
		return nil, false
	}
	child, found := lookup.Command(name)
	if !found {
		return nil, false
	}

	return commandScope{cmd: child, depth: s.depth + 1}, true
}

func collectValueOptions(cmd AnyCommand, depth int) (long, short []string) {
	if cmd == nil || depth > maxTreeDepth {
		return nil, nil
	}

	switch c := cmd.(type) {
	case childProvider:
		for _, child := range c.children() {
			l, s := collectValueOptions(child, depth+1)
			long = append(long, l...)
			short = append(short, s...)
		}
	case schemaProvider:
		schema := c.Schema()
		if schema == nil {
			return nil, nil
		}
		for _, slot := range schema.Slots() {
			if slot.Kind != types.Option {
				continue
			}
			long = append(long, slot.Name)
			if slot.Short != "" {
				short = append(short, slot.Short)
			}
		}
	}

	return long, short
}
