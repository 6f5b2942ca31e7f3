package input

import (
	"errors"
	"testing"

	"github.com/napalu/dispatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_PopFirstPositional(t *testing.T) {
	in := New("app", []string{"db", "migrate", "now"})

	first, ok := in.PopFirstPositional()
	assert.True(t, ok)
	assert.Equal(t, "db", first)

	peeked, ok := in.PeekPositional()
	assert.True(t, ok)
	assert.Equal(t, "migrate", peeked)
	assert.Equal(t, 2, in.PositionalCount(), "peeking does not consume")

	assert.Equal(t, []string{"migrate", "now"}, in.Positionals())
	assert.Equal(t, []string{"migrate", "now"}, in.Positionals(), "snapshots do not consume")

	_, _ = in.PopFirstPositional()
	_, _ = in.PopFirstPositional()

	_, ok = in.PopFirstPositional()
	assert.False(t, ok, "an exhausted cursor yields nothing")
	_, ok = in.PeekPositional()
	assert.False(t, ok)
}

func TestInput_LookupOption(t *testing.T) {
	in := New("app", nil)
	in.SetOption("count", "3")
	in.SetShortOption("n", "bob")

	v, ok := in.LookupOption("count", "c")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	v, ok = in.LookupOption("name", "n")
	assert.True(t, ok)
	assert.Equal(t, "bob", v, "short alias is consulted when the long name is absent")

	_, ok = in.LookupOption("missing", "")
	assert.False(t, ok)

	v, _ = in.LookupOption("count", "c")
	assert.Equal(t, "3", v, "lookups do not consume")
}

func TestInput_LongNameWinsOverShort(t *testing.T) {
	in := New("app", nil)
	in.SetShortOption("c", "short")
	in.SetOption("count", "long")

	v, ok := in.LookupOption("count", "c")
	assert.True(t, ok)
	assert.Equal(t, "long", v)
}

func TestInput_HasFlag(t *testing.T) {
	in := New("app", nil)
	in.SetFlag("verbose")
	in.SetShortFlag("q")

	assert.True(t, in.HasFlag("verbose", "v"))
	assert.True(t, in.HasFlag("quiet", "q"))
	assert.False(t, in.HasFlag("force", "f"))
	assert.False(t, in.HasFlag("", ""))
}

func TestInput_ExecutablePath(t *testing.T) {
	in := New("app", nil)
	assert.Equal(t, []string{"app"}, in.ExecutablePath())

	in.AppendToExecutablePath("db")
	in.AppendToExecutablePath("migrate")

	assert.Equal(t, "app", in.ExecutableName())
	assert.Equal(t, []string{"app", "db", "migrate"}, in.ExecutablePath())
	assert.Equal(t, "app db migrate", in.Executable())

	path := in.ExecutablePath()
	path[0] = "changed"
	assert.Equal(t, "app", in.ExecutablePath()[0], "callers receive a copy")
}

func TestInput_OptionsAndFlagsOrder(t *testing.T) {
	in := New("app", nil)
	in.SetOption("b", "2")
	in.SetShortOption("a", "1")
	in.SetOption("b", "3")
	in.SetFlag("z")
	in.SetShortFlag("y")

	assert.Equal(t, []types.KeyValue[string, string]{
		{Key: "--b", Value: "3"},
		{Key: "-a", Value: "1"},
	}, in.Options())
	assert.Equal(t, []string{"--z", "-y"}, in.Flags())
}

func TestInput_NameConverter(t *testing.T) {
	in := New("app", nil, WithNameConverter(KebabCase))
	in.SetOption("dryRun", "yes")
	in.SetFlag("no_color")

	v, ok := in.LookupOption("dry-run", "")
	assert.True(t, ok)
	assert.Equal(t, "yes", v)
	assert.True(t, in.HasFlag("noColor", ""))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		configs     []ConfigureFunc
		positionals []string
		options     []types.KeyValue[string, string]
		flags       []string
	}{
		{
			name:        "positionals only",
			args:        []string{"/usr/bin/app", "db", "migrate"},
			positionals: []string{"db", "migrate"},
			options:     []types.KeyValue[string, string]{},
		},
		{
			name:        "options with equals and interleaved flags",
			args:        []string{"app", "--verbose", "greet", "--count=3", "bob", "-c=4", "-l"},
			positionals: []string{"greet", "bob"},
			options:     []types.KeyValue[string, string]{{Key: "--count", Value: "3"}, {Key: "-c", Value: "4"}},
			flags:       []string{"--verbose", "-l"},
		},
		{
			name:        "undeclared names are flags",
			args:        []string{"app", "--count", "3"},
			positionals: []string{"3"},
			options:     []types.KeyValue[string, string]{},
			flags:       []string{"--count"},
		},
		{
			name:        "declared value options take the next token",
			args:        []string{"app", "greet", "--count", "3", "-n", "bob", "x"},
			configs:     []ConfigureFunc{WithValueOptions("count"), WithShortValueOptions("n")},
			positionals: []string{"greet", "x"},
			options:     []types.KeyValue[string, string]{{Key: "--count", Value: "3"}, {Key: "-n", Value: "bob"}},
		},
		{
			name:        "value option followed by another name is a flag",
			args:        []string{"app", "--count", "--loud"},
			configs:     []ConfigureFunc{WithValueOptions("count")},
			positionals: nil,
			options:     []types.KeyValue[string, string]{},
			flags:       []string{"--count", "--loud"},
		},
		{
			name:        "double dash ends options",
			args:        []string{"app", "rm", "--", "--force", "-x"},
			positionals: []string{"rm", "--force", "-x"},
			options:     []types.KeyValue[string, string]{},
		},
		{
			name:        "numbers and lone dash are positional",
			args:        []string{"app", "add", "-5", "-1.5", "-"},
			positionals: []string{"add", "-5", "-1.5", "-"},
			options:     []types.KeyValue[string, string]{},
		},
		{
			name:        "value option accepts negative numbers",
			args:        []string{"app", "--offset", "-3"},
			configs:     []ConfigureFunc{WithValueOptions("offset")},
			options:     []types.KeyValue[string, string]{{Key: "--offset", Value: "-3"}},
			positionals: nil,
		},
		{
			name:        "posix clusters",
			args:        []string{"app", "-vxc", "3", "file"},
			configs:     []ConfigureFunc{WithPosix(true), WithShortValueOptions("c")},
			positionals: []string{"file"},
			options:     []types.KeyValue[string, string]{{Key: "-c", Value: "3"}},
			flags:       []string{"-v", "-x"},
		},
		{
			name:        "multi letter short names without posix",
			args:        []string{"app", "-vx"},
			options:     []types.KeyValue[string, string]{},
			flags:       []string{"-vx"},
		},
		{
			name:        "name converter applies to value option declarations",
			args:        []string{"app", "--dry_run", "yes"},
			configs:     []ConfigureFunc{WithNameConverter(KebabCase), WithValueOptions("dryRun")},
			options:     []types.KeyValue[string, string]{{Key: "--dry-run", Value: "yes"}},
			positionals: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Parse(tt.args, tt.configs...)
			require.NoError(t, err)

			assert.Equal(t, "app", in.ExecutableName())
			if tt.positionals == nil {
				assert.Empty(t, in.Positionals())
			} else {
				assert.Equal(t, tt.positionals, in.Positionals())
			}
			assert.Equal(t, tt.options, in.Options())
			if tt.flags == nil {
				assert.Empty(t, in.Flags())
			} else {
				assert.Equal(t, tt.flags, in.Flags())
			}
		})
	}
}

func TestParse_RepeatedOptionLastWins(t *testing.T) {
	in, err := Parse([]string{"app", "--count=1", "--count=2"})
	require.NoError(t, err)

	v, _ := in.LookupOption("count", "")
	assert.Equal(t, "2", v)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = Parse([]string{""})
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestParseString(t *testing.T) {
	in, err := ParseString(`app greet "Jane Doe" --count=2`)
	require.NoError(t, err)

	assert.Equal(t, []string{"greet", "Jane Doe"}, in.Positionals())
	v, ok := in.LookupOption("count", "")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, err = ParseString(`app "unterminated`)
	assert.True(t, errors.Is(err, ErrSplitInput))

	_, err = ParseString("   ")
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

// mapScope is a Scope whose children are selected by name
type mapScope struct {
	long     []string
	short    []string
	children map[string]mapScope
}

func (s mapScope) ValueOptions() (long, short []string) {
	return s.long, s.short
}

func (s mapScope) Enter(name string) (Scope, bool) {
	child, found := s.children[name]
	return child, found
}

func TestParse_Scope(t *testing.T) {
	root := mapScope{
		long:  []string{"loud", "count"},
		short: []string{"c"},
		children: map[string]mapScope{
			"a": {long: []string{"loud"}},
			"b": {},
			"greet": {long: []string{"count"}, short: []string{"c"}},
		},
	}

	in, err := Parse([]string{"app", "b", "--loud", "bob"}, WithScope(root))
	require.NoError(t, err)
	assert.True(t, in.HasFlag("loud", ""), "the selected scope does not declare loud as taking a value")
	assert.Equal(t, []string{"b", "bob"}, in.Positionals())

	in, err = Parse([]string{"app", "a", "--loud", "bob"}, WithScope(root))
	require.NoError(t, err)
	v, _ := in.LookupOption("loud", "")
	assert.Equal(t, "bob", v)

	in, err = Parse([]string{"app", "-c", "2", "greet", "alice"}, WithScope(root))
	require.NoError(t, err)
	v, _ = in.LookupOption("count", "c")
	assert.Equal(t, "2", v, "names ahead of the command use the enclosing scope")
	assert.Equal(t, []string{"greet", "alice"}, in.Positionals())

	in, err = Parse([]string{"app", "b", "--lang", "de", "x"}, WithScope(root), WithValueOptions("lang"))
	require.NoError(t, err)
	v, _ = in.LookupOption("lang", "")
	assert.Equal(t, "de", v, "declared value options apply in every scope")
	assert.Equal(t, []string{"b", "x"}, in.Positionals())
}
