package dispatch

// NewCommand creates a leaf command running run. This function takes variadic `ConfigureCommandFunc`
// functions to customize the created command.
func NewCommand(run CommandFunc, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		run: run,
	}

	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithHelp sets the one-line help shown next to the command in its group's listing and at the top of
// its own help.
func WithHelp(help string) ConfigureCommandFunc {
	return func(command *Command) {
		command.help = help
	}
}

// WithSignature sets the function which declares the command's inputs. It is called for every use so
// each dispatch binds against its own Schema instance.
func WithSignature(signature func() Schema) ConfigureCommandFunc {
	return func(command *Command) {
		command.signature = signature
	}
}

// WithAutoComplete sets the candidates written by OutputAutoComplete
func WithAutoComplete(candidates ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.completions = append(command.completions[:0:0], candidates...)
	}
}
