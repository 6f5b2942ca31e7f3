package dispatch

import (
	"fmt"
	"strings"

	"github.com/napalu/dispatch/console"
	"github.com/napalu/dispatch/i18n"
	"github.com/napalu/dispatch/types"
)

// Renderer formats help and completion output
type Renderer interface {
	// GroupHelp writes the usage line, help text and child listing of a group at path
	GroupHelp(c console.Console, path []string, help string, commands []HelpItem)
	// CommandHelp writes the usage line, help text and declared slots of a leaf command at path
	CommandHelp(c console.Console, path []string, help string, slots []*Slot)
	// AutoComplete writes completion candidates
	AutoComplete(c console.Console, names []string)
}

// ConfigureRendererFunc is used when creating a DefaultRenderer
type ConfigureRendererFunc func(r *DefaultRenderer)

// DefaultRenderer renders help with labels translated by an i18n.Bundle
type DefaultRenderer struct {
	bundle *i18n.Bundle
}

var defaultRenderer = NewRenderer()

// NewRenderer creates a DefaultRenderer using the default bundle
func NewRenderer(configs ...ConfigureRendererFunc) *DefaultRenderer {
	r := &DefaultRenderer{}
	for _, config := range configs {
		config(r)
	}

	return r
}

// WithBundle sets the bundle labels are translated with
func WithBundle(bundle *i18n.Bundle) ConfigureRendererFunc {
	return func(r *DefaultRenderer) {
		r.bundle = bundle
	}
}

func (r *DefaultRenderer) t(key string, args ...interface{}) string {
	if r.bundle == nil {
		return i18n.Default().T(key, args...)
	}

	return r.bundle.T(key, args...)
}

// GroupHelp writes, for example:
//
//	Usage: app <command>
//
//	Manage things
//
//	Commands:
//	  add  Adds a thing
//	  rm   Removes a thing
//
//	Use `app <command> [--help,-h]` for more information on a command.
func (r *DefaultRenderer) GroupHelp(c console.Console, path []string, help string, commands []HelpItem) {
	executable := strings.Join(path, " ")

	c.Output(r.t(types.HelpUsageKey), types.Info, false)
	c.Output(executable+" ", types.Plain, false)
	c.Output(r.t(types.HelpCommandKey), types.Warning, true)

	if help != "" {
		c.Output("", types.Plain, true)
		c.Output(help, types.Plain, true)
	}

	if len(commands) > 0 {
		padding := 0
		for _, item := range commands {
			padding = max(padding, len(item.Name))
		}
		padding += 2

		c.Output("", types.Plain, true)
		c.Output(r.t(types.HelpCommandsKey), types.Success, true)
		for _, item := range commands {
			console.OutputHelpListItem(c, item.Name, item.Help, types.Warning, padding)
		}
	}

	c.Output("", types.Plain, true)
	c.Output(r.t(types.HelpFooterKey, executable), types.Plain, false)
	c.Output(r.t(types.HelpCommandKey), types.Warning, false)
	c.Output(" [--help,-h]", types.Success, false)
	c.Output(r.t(types.HelpFooterEndKey), types.Plain, true)
}

// CommandHelp writes, for example:
//
//	Usage: app greet <name> [--count,-c] [--loud]
//
//	Greets someone
//
//	Arguments:
//	  name        Who to greet
//
//	Options:
//	  --count,-c  How often (defaults to: 1)
//
//	Flags:
//	  --loud      Shout
func (r *DefaultRenderer) CommandHelp(c console.Console, path []string, help string, slots []*Slot) {
	c.Output(r.t(types.HelpUsageKey), types.Info, false)
	c.Output(strings.Join(path, " "), types.Plain, false)
	for _, slot := range slots {
		if slot.Kind == types.Argument {
			c.Output(" <"+slot.Name+">", types.Warning, false)
		} else {
			c.Output(" ["+slotName(slot)+"]", types.Success, false)
		}
	}
	c.Output("", types.Plain, true)

	if help != "" {
		c.Output("", types.Plain, true)
		c.Output(help, types.Plain, true)
	}

	padding := 0
	for _, slot := range slots {
		padding = max(padding, len(slotName(slot)))
	}
	padding += 2

	sections := []struct {
		kind  types.SlotKind
		label string
		style types.Style
	}{
		{types.Argument, types.HelpArgumentsKey, types.Warning},
		{types.Option, types.HelpOptionsKey, types.Success},
		{types.Flag, types.HelpFlagsKey, types.Success},
	}
	for _, section := range sections {
		var header bool
		for _, slot := range slots {
			if slot.Kind != section.kind {
				continue
			}
			if !header {
				c.Output("", types.Plain, true)
				c.Output(r.t(section.label), types.Info, true)
				header = true
			}
			console.OutputHelpListItem(c, slotName(slot), r.slotHelp(slot), section.style, padding)
		}
	}
}

// AutoComplete writes names on one line separated by single spaces
func (r *DefaultRenderer) AutoComplete(c console.Console, names []string) {
	c.Output(strings.Join(names, " "), types.Plain, true)
}

func (r *DefaultRenderer) slotHelp(slot *Slot) string {
	if !slot.HasDefault || slot.Kind != types.Option {
		return slot.Help
	}

	defaults := fmt.Sprintf("(%s: %s)", r.t(types.MsgDefaultsToKey), slot.Default)
	if slot.Help == "" {
		return defaults
	}

	return slot.Help + " " + defaults
}

func slotName(slot *Slot) string {
	if slot.Kind == types.Argument {
		return slot.Name
	}
	if slot.Short == "" {
		return "--" + slot.Name
	}

	return "--" + slot.Name + ",-" + slot.Short
}
