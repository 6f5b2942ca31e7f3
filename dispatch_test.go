package dispatch

import (
	"bytes"
	"testing"

	"github.com/napalu/dispatch/console"
	"github.com/napalu/dispatch/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetResult struct {
	name  string
	count int
	loud  bool
}

func newTestTree(t *testing.T, result *greetResult) *Group {
	t.Helper()

	greet := NewCommand(func(ctx *CommandContext) error {
		sig := MustSignature(
			Argument("name", WithTarget(&result.name)),
			Option("count", WithShort("c"), WithDefault("1"), WithTarget(&result.count)),
			Flag("loud", WithShort("l"), WithTarget(&result.loud)),
		)
		_, err := ctx.Bind(sig)
		return err
	}, WithHelp("Greets someone"), WithSignature(func() Schema {
		return MustSignature(
			Argument("name"),
			Option("count", WithShort("c"), WithDefault("1")),
			Flag("loud", WithShort("l")),
		)
	}))

	db, err := NewGroup(
		WithGroupHelp("Database maintenance"),
		WithCommand("migrate", NewCommand(nil, WithHelp("Runs migrations"))),
		WithCommand("seed", NewCommand(nil, WithHelp("Loads fixtures"))),
	)
	require.NoError(t, err)

	root, err := NewGroup(WithCommand("greet", greet), WithCommand("db", db))
	require.NoError(t, err)

	return root
}

func TestExecute_ClassifiesDeclaredOptions(t *testing.T) {
	var result greetResult
	root := newTestTree(t, &result)
	var rec console.Recorder

	err := Execute(root, []string{"/usr/bin/app", "greet", "--count", "3", "-l", "bob"}, WithConsole(&rec))

	require.NoError(t, err)
	assert.Equal(t, greetResult{name: "bob", count: 3, loud: true}, result)
	assert.Empty(t, rec.Entries)
}

func TestExecute_ShortValueOption(t *testing.T) {
	var result greetResult
	root := newTestTree(t, &result)

	err := Execute(root, []string{"app", "-c", "2", "greet", "alice"}, WithConsole(&console.Recorder{}))

	require.NoError(t, err)
	assert.Equal(t, greetResult{name: "alice", count: 2}, result)
}

func TestExecute_SiblingOptionDoesNotTakeFlagValue(t *testing.T) {
	var name string
	var loud bool
	a := NewCommand(nil, WithSignature(func() Schema {
		return MustSignature(Option("loud"))
	}))
	b := NewCommand(func(ctx *CommandContext) error {
		_, err := ctx.Bind(MustSignature(Flag("loud", WithTarget(&loud)), Argument("name", WithTarget(&name))))
		return err
	}, WithSignature(func() Schema {
		return MustSignature(Flag("loud"), Argument("name"))
	}))
	root := MustGroup(WithCommand("a", a), WithCommand("b", b))

	err := Execute(root, []string{"app", "b", "--loud", "bob"}, WithConsole(&console.Recorder{}))

	require.NoError(t, err)
	assert.True(t, loud)
	assert.Equal(t, "bob", name)
}

func TestExecute_NestedLeafOptions(t *testing.T) {
	var to string
	migrate := NewCommand(func(ctx *CommandContext) error {
		_, err := ctx.Bind(MustSignature(Option("to", WithTarget(&to))))
		return err
	}, WithSignature(func() Schema {
		return MustSignature(Option("to"))
	}))
	root := MustGroup(WithCommand("db", MustGroup(WithCommand("migrate", migrate))))

	err := Execute(root, []string{"app", "db", "migrate", "--to", "v3"}, WithConsole(&console.Recorder{}))

	require.NoError(t, err)
	assert.Equal(t, "v3", to)
}

func TestCommandScope(t *testing.T) {
	root := newTestTree(t, &greetResult{})
	scope := commandScope{cmd: root}

	long, short := scope.ValueOptions()
	assert.Equal(t, []string{"count"}, long)
	assert.Equal(t, []string{"c"}, short)

	db, ok := scope.Enter("db")
	require.True(t, ok)
	long, short = db.ValueOptions()
	assert.Empty(t, long)
	assert.Empty(t, short)

	_, ok = scope.Enter("nope")
	assert.False(t, ok)

	greet, ok := scope.Enter("greet")
	require.True(t, ok)
	_, ok = greet.Enter("bob")
	assert.False(t, ok, "a leaf selects no further scope")
}

func TestExecute_Help(t *testing.T) {
	root := newTestTree(t, &greetResult{})
	var rec console.Recorder

	require.NoError(t, Execute(root, []string{"app", "db", "--help"}, WithConsole(&rec)))

	assert.Contains(t, rec.String(), "Usage: app db <command>")
	assert.Contains(t, rec.String(), "Database maintenance")
	assert.Contains(t, rec.String(), "  migrate  Runs migrations")
}

func TestExecute_LeafHelp(t *testing.T) {
	root := newTestTree(t, &greetResult{})
	var rec console.Recorder

	require.NoError(t, Execute(root, []string{"app", "greet", "-h"}, WithConsole(&rec)))

	assert.Contains(t, rec.String(), "Usage: app greet <name> [--count,-c] [--loud,-l]")
}

func TestExecute_AutoComplete(t *testing.T) {
	root := newTestTree(t, &greetResult{})
	var rec console.Recorder

	require.NoError(t, Execute(root, []string{"app", "gr", "--autocomplete"}, WithConsole(&rec)))

	assert.Equal(t, "greet db\n", rec.String())
}

func TestExecute_Errors(t *testing.T) {
	root := newTestTree(t, &greetResult{})

	var rec console.Recorder
	err := Execute(root, []string{"app", "greet"}, WithConsole(&rec))
	assert.ErrorIs(t, err, ErrMissingArgument)

	rec.Reset()
	err = Execute(root, []string{"app", "gret", "bob"}, WithConsole(&rec))
	var unknown *UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "greet", unknown.Suggestion)
	assert.Empty(t, rec.Entries)

	rec.Reset()
	err = Execute(root, []string{"app", "db"}, WithConsole(&rec))
	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, rec.String(), "Commands:")

	err = Execute(root, []string{"app", "greet", "--count", "many", "bob"}, WithConsole(&rec))
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.ErrorIs(t, Execute(root, nil), input.ErrEmptyInput)
}

func TestExecuteString(t *testing.T) {
	var result greetResult
	root := newTestTree(t, &result)

	err := ExecuteString(root, `app greet --count=4 "Jane Doe"`, WithConsole(&console.Recorder{}))

	require.NoError(t, err)
	assert.Equal(t, greetResult{name: "Jane Doe", count: 4}, result)

	assert.ErrorIs(t, ExecuteString(root, `app greet "unterminated`), input.ErrSplitInput)
}

func TestExecute_TerminalOutput(t *testing.T) {
	var buf bytes.Buffer
	root := MustGroup(WithCommand("add", NewCommand(nil)), WithCommand("rm", NewCommand(nil)))

	err := Execute(root, []string{"app", "--autocomplete"}, WithConsole(console.NewTerminal(&buf)))

	require.NoError(t, err)
	assert.Equal(t, "add rm\n", buf.String())
}

func TestCollectValueOptions(t *testing.T) {
	root := newTestTree(t, &greetResult{})

	long, short := collectValueOptions(root, 0)

	assert.Equal(t, []string{"count"}, long)
	assert.Equal(t, []string{"c"}, short)
	l, s := collectValueOptions(nil, 0)
	assert.Nil(t, l)
	assert.Nil(t, s)
}
