package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/napalu/dispatch/types"
	"github.com/stretchr/testify/assert"
)

func TestTerminal_NoColorOnBuffers(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Output("Usage: ", types.Info, false)
	term.Output("app", types.Plain, false)
	term.Output(" <command>", types.Warning, true)

	assert.Equal(t, "Usage: app <command>\n", buf.String())
}

func TestTerminal_ForcedColor(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, WithNoColor(false), WithStyle(types.Success, color.FgBlue))

	term.Output("done", types.Success, true)
	term.Output("plain", types.Plain, false)

	assert.Equal(t, "\x1b[34mdone\x1b[0m\nplain", buf.String())
}

func TestHelpers(t *testing.T) {
	var r Recorder

	Print(&r, "a")
	Info(&r, "b")
	Warning(&r, "c")
	Success(&r, "d")
	Error(&r, "e")

	assert.Equal(t, "a\nb\nc\nd\ne\n", r.String())
	assert.Equal(t, []string{"c"}, r.Styled(types.Warning))
	assert.Equal(t, []string{"e"}, r.Styled(types.Error))

	r.Reset()
	assert.Empty(t, r.Entries)
}

func TestOutputHelpListItem(t *testing.T) {
	var r Recorder

	OutputHelpListItem(&r, "add", "Adds a thing", types.Warning, 8)
	OutputHelpListItem(&r, "migrate", "Runs migrations\nin order", types.Warning, 8)
	OutputHelpListItem(&r, "rm", "", types.Warning, 8)

	assert.Equal(t, ""+
		"  add     Adds a thing\n"+
		"  migrate Runs migrations\n"+
		"          in order\n"+
		"  rm\n", r.String())
	assert.Equal(t, []string{"add", "migrate", "rm"}, r.Styled(types.Warning))
}
