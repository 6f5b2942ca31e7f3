package dispatch

import (
	"testing"

	"github.com/napalu/dispatch/console"
	"github.com/napalu/dispatch/i18n"
	"github.com/napalu/dispatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultRenderer_GroupHelp(t *testing.T) {
	var rec console.Recorder
	r := NewRenderer()

	r.GroupHelp(&rec, []string{"app"}, "Manage things", []HelpItem{
		{Name: "add", Help: "Adds a thing"},
		{Name: "remove", Help: "Removes a thing"},
	})

	assert.Equal(t, ""+
		"Usage: app <command>\n"+
		"\n"+
		"Manage things\n"+
		"\n"+
		"Commands:\n"+
		"  add     Adds a thing\n"+
		"  remove  Removes a thing\n"+
		"\n"+
		"Use `app <command> [--help,-h]` for more information on a command.\n", rec.String())
	assert.Equal(t, []string{"Usage: "}, rec.Styled(types.Info))
	assert.Equal(t, []string{"<command>", "add", "remove", "<command>"}, rec.Styled(types.Warning))
	assert.Equal(t, []string{"Commands:", " [--help,-h]"}, rec.Styled(types.Success))
}

func TestDefaultRenderer_GroupHelpWithoutText(t *testing.T) {
	var rec console.Recorder

	NewRenderer().GroupHelp(&rec, []string{"app", "db"}, "", nil)

	assert.Equal(t, ""+
		"Usage: app db <command>\n"+
		"\n"+
		"Use `app db <command> [--help,-h]` for more information on a command.\n", rec.String())
}

func TestDefaultRenderer_Translated(t *testing.T) {
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	require.NoError(t, bundle.SetDefaultLanguage(language.German))

	var rec console.Recorder
	NewRenderer(WithBundle(bundle)).GroupHelp(&rec, []string{"app"}, "", []HelpItem{{Name: "add"}})

	assert.NotContains(t, rec.String(), "Usage: ")
	assert.Contains(t, rec.String(), bundle.T(types.HelpUsageKey))
	assert.Contains(t, rec.String(), bundle.T(types.HelpCommandsKey))
}

func TestDefaultRenderer_AutoComplete(t *testing.T) {
	var rec console.Recorder

	NewRenderer().AutoComplete(&rec, []string{"add", "rm"})

	require.Len(t, rec.Entries, 1)
	assert.Equal(t, console.Entry{Text: "add rm", Style: types.Plain, NewLine: true}, rec.Entries[0])
}

func TestCommandContext_FallsBackToDefaults(t *testing.T) {
	ctx := &CommandContext{}

	assert.Same(t, discardLogger, ctx.logger())
	assert.Same(t, defaultRenderer, ctx.renderer())
	assert.NotNil(t, ctx.console())
}
