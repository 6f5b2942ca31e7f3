package dispatch

// Command is a leaf of the command tree: it performs work instead of delegating to children.
//
// Without a signature, OutputHelp writes nothing; with one, it renders a usage line and the declared
// slots. Without completion candidates, OutputAutoComplete writes nothing.
type Command struct {
	Base
	help        string
	run         CommandFunc
	signature   func() Schema
	completions []string
}

// Help returns the command's one-line help
func (c *Command) Help() string {
	return c.help
}

// Run calls the command's CommandFunc. A Command without one does nothing.
func (c *Command) Run(ctx *CommandContext) error {
	if c.run == nil {
		return nil
	}

	return c.run(ctx)
}

// Schema returns a fresh instance of the command's signature, or nil when it declares none
func (c *Command) Schema() Schema {
	if c.signature == nil {
		return nil
	}

	return c.signature()
}

// OutputHelp renders the command's signature
func (c *Command) OutputHelp(ctx *CommandContext) error {
	schema := c.Schema()
	if schema == nil {
		return c.Base.OutputHelp(ctx)
	}

	ctx.renderer().CommandHelp(ctx.console(), ctx.Input.ExecutablePath(), c.help, schema.Slots())

	return nil
}

// OutputAutoComplete writes the command's completion candidates
func (c *Command) OutputAutoComplete(ctx *CommandContext) error {
	if len(c.completions) == 0 {
		return c.Base.OutputAutoComplete(ctx)
	}

	ctx.renderer().AutoComplete(ctx.console(), c.completions)

	return nil
}

// Bind binds the command's signature against ctx.Input
func (c *Command) Bind(ctx *CommandContext) (*Values, error) {
	schema := c.Schema()
	if schema == nil {
		return newValues(), nil
	}

	return ctx.Bind(schema)
}

var _ AnyCommand = (*Command)(nil)
