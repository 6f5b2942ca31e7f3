package dispatch

import (
	"github.com/napalu/dispatch/types"
)

// AnyCommand is implemented by everything which can be dispatched to: leaf commands (Command) and
// groups of commands (Group).
type AnyCommand interface {
	// Help is the one-line text shown next to the command's name in its parent's help listing
	Help() string
	// Run executes the command against ctx.Input
	Run(ctx *CommandContext) error
	// OutputHelp writes help for the command to ctx.Console instead of running it
	OutputHelp(ctx *CommandContext) error
	// OutputAutoComplete writes completion candidates to ctx.Console
	OutputAutoComplete(ctx *CommandContext) error
}

// Base supplies the default OutputHelp and OutputAutoComplete of a leaf command. Both write nothing
// and return nil. Embed Base in a custom command type and override either method to provide output.
type Base struct{}

// OutputHelp does nothing. Commands which want help output override it.
func (Base) OutputHelp(*CommandContext) error {
	return nil
}

// OutputAutoComplete does nothing. Commands which want completion output override it.
func (Base) OutputAutoComplete(*CommandContext) error {
	return nil
}

// CommandFunc is the work performed by a Command
type CommandFunc func(ctx *CommandContext) error

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureGroupFunc is used when defining Group options. A non-nil *err aborts NewGroup.
type ConfigureGroupFunc func(group *Group, err *error)

// ConfigureSlotFunc is used when defining signature slots. Errors are reported by NewSignature and Bind.
type ConfigureSlotFunc func(slot *Slot, err *error)

// RunOption configures a CommandContext, and Execute
type RunOption func(cfg *runConfig)

// HelpItem is one entry of a group's command listing
type HelpItem struct {
	Name string
	Help string
}

// Schema is the static declaration of a leaf command's inputs. Slots returns the slot descriptors in
// declaration order; Argument slots are bound to positional tokens in that order.
type Schema interface {
	Slots() []*Slot
}

// Slot describes one declared input of a Schema
type Slot struct {
	Kind       types.SlotKind
	Name       string
	Short      string
	Help       string
	Default    string
	HasDefault bool

	target any
	err    error
}
