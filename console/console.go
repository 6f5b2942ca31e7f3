// Package console provides the output sink commands write to.
//
// A Console only receives text and a style tag. How a style is rendered (colour, bold, nothing at all)
// is up to the implementation: Terminal colours output when it writes to a terminal, Recorder keeps
// every call for inspection in tests.
package console

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/dispatch/types"
	"github.com/napalu/dispatch/util"
)

// Console accepts styled text
type Console interface {
	Output(text string, style types.Style, newLine bool)
}

// ConfigureFunc is used when creating a Terminal
type ConfigureFunc func(t *Terminal)

// Terminal writes to an io.Writer, colouring styled text when the writer is a terminal
type Terminal struct {
	w       io.Writer
	noColor bool
	styles  map[types.Style]*color.Color
}

// NewTerminal creates a Terminal writing to w. Colour is disabled unless w is a terminal.
func NewTerminal(w io.Writer, configs ...ConfigureFunc) *Terminal {
	t := &Terminal{
		w:       w,
		noColor: !util.IsTerminal(w),
		styles: map[types.Style]*color.Color{
			types.Info:    color.New(color.FgCyan),
			types.Warning: color.New(color.FgYellow),
			types.Success: color.New(color.FgGreen),
			types.Error:   color.New(color.FgRed, color.Bold),
		},
	}
	for _, c := range configs {
		c(t)
	}
	for _, c := range t.styles {
		if t.noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	return t
}

// Stdout returns a Terminal writing to os.Stdout
func Stdout(configs ...ConfigureFunc) *Terminal {
	return NewTerminal(os.Stdout, configs...)
}

// Stderr returns a Terminal writing to os.Stderr
func Stderr(configs ...ConfigureFunc) *Terminal {
	return NewTerminal(os.Stderr, configs...)
}

// WithNoColor forces colour off (true) or on (false) regardless of the writer
func WithNoColor(noColor bool) ConfigureFunc {
	return func(t *Terminal) {
		t.noColor = noColor
	}
}

// WithStyle overrides the colour used for style
func WithStyle(style types.Style, attrs ...color.Attribute) ConfigureFunc {
	return func(t *Terminal) {
		t.styles[style] = color.New(attrs...)
	}
}

// Output writes text in style, followed by a newline when newLine is true
func (t *Terminal) Output(text string, style types.Style, newLine bool) {
	if c, found := t.styles[style]; found && text != "" {
		text = c.Sprint(text)
	}
	if newLine {
		text += "\n"
	}

	_, _ = io.WriteString(t.w, text)
}

// Print writes plain text followed by a newline
func Print(c Console, text string) {
	c.Output(text, types.Plain, true)
}

// Info writes informational text followed by a newline
func Info(c Console, text string) {
	c.Output(text, types.Info, true)
}

// Warning writes warning text followed by a newline
func Warning(c Console, text string) {
	c.Output(text, types.Warning, true)
}

// Success writes success text followed by a newline
func Success(c Console, text string) {
	c.Output(text, types.Success, true)
}

// Error writes error text followed by a newline
func Error(c Console, text string) {
	c.Output(text, types.Error, true)
}

// OutputHelpListItem writes "  <name><padding><help>" with name in style. Name is padded to
// padding columns; help spanning several lines is indented to the same column.
func OutputHelpListItem(c Console, name, help string, style types.Style, padding int) {
	c.Output("  ", types.Plain, false)
	c.Output(name, style, false)

	pad := padding - len(name)
	if pad < 1 {
		pad = 1
	}
	if help == "" {
		c.Output("", types.Plain, true)
		return
	}

	indent := strings.Repeat(" ", padding+2)
	lines := strings.Split(help, "\n")
	c.Output(strings.Repeat(" ", pad)+lines[0], types.Plain, true)
	for _, line := range lines[1:] {
		c.Output(indent+line, types.Plain, true)
	}
}
