package dispatch

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	orderedmap "github.com/wk8/go-ordered-map"
)

// maxSuggestionDistance is the largest edit distance for which an unknown command name still gets
// a suggestion
const maxSuggestionDistance = 3

// Group is an interior node of the command tree. It consumes one positional token, looks up the
// child of that name and delegates to it.
//
// When no positional token is left, Run delegates to the default command if one is set, and
// otherwise prints the group's help and fails with ErrNoCommand. An unknown token fails with an
// *UnknownCommandError without printing anything.
//
// A Group is immutable once created and may be shared by concurrent dispatches.
type Group struct {
	help           string
	commands       *orderedmap.OrderedMap
	defaultCommand AnyCommand
}

// Help returns the group's help text
func (g *Group) Help() string {
	return g.help
}

// Commands returns the names of the group's children in registration order
func (g *Group) Commands() []string {
	names := make([]string, 0, g.commands.Len())
	for pair := g.commands.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// Command returns the child registered under name
func (g *Group) Command(name string) (AnyCommand, bool) {
	v, found := g.commands.Get(name)
	if !found {
		return nil, false
	}

	return v.(AnyCommand), true
}

// DefaultCommand returns the command run when no positional token is left, or nil
func (g *Group) DefaultCommand() AnyCommand {
	return g.defaultCommand
}

// Run resolves a child from ctx.Input and runs it
func (g *Group) Run(ctx *CommandContext) error {
	cmd, err := g.resolve(ctx)
	if err != nil {
		return err
	}
	if cmd != nil {
		return cmd.Run(ctx)
	}
	if g.defaultCommand != nil {
		ctx.logger().Debug("using default command", "path", ctx.Input.Executable())
		return g.defaultCommand.Run(ctx)
	}

	g.outputGroupHelp(ctx)

	return ErrNoCommand
}

// OutputHelp resolves a child from ctx.Input and asks it for help. When no child can be resolved,
// whether because no token is left or because the token is unknown, the group's own help is written
// instead and no error is returned.
func (g *Group) OutputHelp(ctx *CommandContext) error {
	cmd, err := g.resolve(ctx)
	if err == nil && cmd != nil {
		return cmd.OutputHelp(ctx)
	}

	g.outputGroupHelp(ctx)

	return nil
}

// OutputAutoComplete writes the names of the group's immediate children, separated by spaces.
// Positional tokens are neither consumed nor used to filter the names.
func (g *Group) OutputAutoComplete(ctx *CommandContext) error {
	ctx.renderer().AutoComplete(ctx.console(), g.Commands())

	return nil
}

// resolve pops the next positional token and looks it up. It returns a nil command and a nil error
// when no token is left. A resolved name is appended to the executable path.
func (g *Group) resolve(ctx *CommandContext) (AnyCommand, error) {
	name, found := ctx.Input.PopFirstPositional()
	if !found {
		return nil, nil
	}

	cmd, found := g.Command(name)
	if !found {
		ctx.logger().Debug("unknown command", "name", name, "path", ctx.Input.Executable())
		return nil, &UnknownCommandError{Name: name, Suggestion: suggestCommand(name, g.Commands())}
	}

	ctx.Input.AppendToExecutablePath(name)
	ctx.logger().Debug("resolved command", "name", name, "path", ctx.Input.Executable())

	return cmd, nil
}

func (g *Group) outputGroupHelp(ctx *CommandContext) {
	items := make([]HelpItem, 0, g.commands.Len())
	for pair := g.commands.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, HelpItem{Name: pair.Key.(string), Help: pair.Value.(AnyCommand).Help()})
	}

	ctx.renderer().GroupHelp(ctx.console(), ctx.Input.ExecutablePath(), g.help, items)
}

func (g *Group) children() []AnyCommand {
	children := make([]AnyCommand, 0, g.commands.Len()+1)
	for pair := g.commands.Oldest(); pair != nil; pair = pair.Next() {
		children = append(children, pair.Value.(AnyCommand))
	}
	if g.defaultCommand != nil {
		children = append(children, g.defaultCommand)
	}

	return children
}

func suggestCommand(name string, candidates []string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range candidates {
		if d := fuzzy.LevenshteinDistance(name, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best
}

var _ AnyCommand = (*Group)(nil)
