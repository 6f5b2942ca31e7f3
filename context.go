package dispatch

import (
	"io"
	"log/slog"

	"github.com/napalu/dispatch/console"
	"github.com/napalu/dispatch/input"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// CommandContext is passed down the command tree during one dispatch. Groups consume positional
// tokens from Input and extend its executable path as they resolve children.
//
// A context serves a single dispatch and must not be shared between concurrent dispatches.
type CommandContext struct {
	Input    *input.Input
	Console  console.Console
	Logger   *slog.Logger
	Renderer Renderer
}

type runConfig struct {
	console      console.Console
	logger       *slog.Logger
	renderer     Renderer
	inputConfigs []input.ConfigureFunc
}

// NewContext creates a CommandContext over in and c. Unless configured otherwise, log records are
// discarded and help is rendered by a DefaultRenderer.
func NewContext(in *input.Input, c console.Console, configs ...RunOption) *CommandContext {
	cfg := newRunConfig(c, configs...)

	return &CommandContext{
		Input:    in,
		Console:  cfg.console,
		Logger:   cfg.logger,
		Renderer: cfg.renderer,
	}
}

func newRunConfig(c console.Console, configs ...RunOption) *runConfig {
	cfg := &runConfig{
		console:  c,
		logger:   discardLogger,
		renderer: NewRenderer(),
	}
	for _, config := range configs {
		config(cfg)
	}

	return cfg
}

// WithConsole sets the console output is written to
func WithConsole(c console.Console) RunOption {
	return func(cfg *runConfig) {
		if c != nil {
			cfg.console = c
		}
	}
}

// WithLogger sets the logger resolution decisions are recorded with
func WithLogger(logger *slog.Logger) RunOption {
	return func(cfg *runConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRenderer sets the renderer used for help and completion output
func WithRenderer(renderer Renderer) RunOption {
	return func(cfg *runConfig) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// WithInputConfig adds classification options applied when Execute parses its arguments
func WithInputConfig(configs ...input.ConfigureFunc) RunOption {
	return func(cfg *runConfig) {
		cfg.inputConfigs = append(cfg.inputConfigs, configs...)
	}
}

// Bind binds schema against the context's input. See Bind.
func (ctx *CommandContext) Bind(schema Schema) (*Values, error) {
	return Bind(schema, ctx.Input)
}

func (ctx *CommandContext) logger() *slog.Logger {
	if ctx.Logger == nil {
		return discardLogger
	}

	return ctx.Logger
}

func (ctx *CommandContext) renderer() Renderer {
	if ctx.Renderer == nil {
		return defaultRenderer
	}

	return ctx.Renderer
}

func (ctx *CommandContext) console() console.Console {
	if ctx.Console == nil {
		return &console.Recorder{}
	}

	return ctx.Console
}
