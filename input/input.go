// Package input holds the cursor over a single invocation's command-line tokens.
//
// An Input is created once per invocation, either from already classified tokens (New) or from raw
// process arguments (Parse, ParseString). Positional tokens are consumed front to back and at most once;
// options and flags are looked up by long name or short alias without being consumed.
//
// An Input has a single owner and is not safe for concurrent use.
package input

import (
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/dispatch/types"
	"github.com/napalu/dispatch/types/orderedmap"
)

const (
	longPrefix  = "--"
	shortPrefix = "-"
)

// Input is the cursor over the remaining tokens of one invocation
type Input struct {
	executable  string
	path        []string
	positionals *deque.Deque
	options     *orderedmap.OrderedMap[string, string]
	flags       *orderedmap.OrderedMap[string, bool]
	convert     NameConverter
}

// New creates an Input for executable with the given positional tokens and no options or flags.
// Use SetOption and SetFlag to add named tokens.
func New(executable string, positionals []string, configs ...ConfigureFunc) *Input {
	cfg := newConfig(configs...)

	in := &Input{
		executable:  executable,
		path:        []string{executable},
		positionals: deque.New(),
		options:     orderedmap.NewOrderedMap[string, string](),
		flags:       orderedmap.NewOrderedMap[string, bool](),
		convert:     cfg.nameConverter,
	}
	for _, p := range positionals {
		in.positionals.PushBack(p)
	}

	return in
}

// PopFirstPositional removes and returns the earliest unconsumed positional token
func (in *Input) PopFirstPositional() (string, bool) {
	v, ok := in.positionals.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// PeekPositional returns the earliest unconsumed positional token without consuming it
func (in *Input) PeekPositional() (string, bool) {
	v, ok := in.positionals.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// PositionalCount returns the number of unconsumed positional tokens
func (in *Input) PositionalCount() int {
	return in.positionals.Len()
}

// Positionals returns a snapshot of the unconsumed positional tokens in order. Nothing is consumed.
func (in *Input) Positionals() []string {
	n := in.positionals.Len()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v, _ := in.positionals.PopFront()
		out = append(out, v.(string))
		in.positionals.PushBack(v)
	}

	return out
}

// LookupOption returns the value of the option named long, or of its short alias when the long
// form is absent. An empty long or short name is never matched.
func (in *Input) LookupOption(long, short string) (string, bool) {
	if long != "" {
		if v, found := in.options.Get(in.longKey(long)); found {
			return v, true
		}
	}
	if short != "" {
		if v, found := in.options.Get(shortPrefix + short); found {
			return v, true
		}
	}

	return "", false
}

// HasFlag reports whether the flag named long, or its short alias, is present
func (in *Input) HasFlag(long, short string) bool {
	if long != "" && in.flags.Has(in.longKey(long)) {
		return true
	}

	return short != "" && in.flags.Has(shortPrefix+short)
}

// SetOption records an option given in long form. A later value for the same name replaces the earlier one.
func (in *Input) SetOption(long, value string) {
	in.options.Set(in.longKey(long), value)
}

// SetShortOption records an option given by its short alias
func (in *Input) SetShortOption(short, value string) {
	in.options.Set(shortPrefix+short, value)
}

// SetFlag records a flag given in long form
func (in *Input) SetFlag(long string) {
	in.flags.Set(in.longKey(long), true)
}

// SetShortFlag records a flag given by its short alias
func (in *Input) SetShortFlag(short string) {
	in.flags.Set(shortPrefix+short, true)
}

// Options returns the options in the order they were first seen, keyed as written ("--name" or "-n")
func (in *Input) Options() []types.KeyValue[string, string] {
	out := make([]types.KeyValue[string, string], 0, in.options.Count())
	for el := in.options.Front(); el != nil; el = el.Next() {
		out = append(out, types.KeyValue[string, string]{Key: el.Key, Value: el.Value})
	}

	return out
}

// Flags returns the flags in the order they were first seen, as written ("--name" or "-n")
func (in *Input) Flags() []string {
	return in.flags.Keys()
}

// AppendToExecutablePath records a resolved subcommand name. It only affects help output.
func (in *Input) AppendToExecutablePath(name string) {
	in.path = append(in.path, name)
}

// ExecutableName returns the name of the executable this input was created for
func (in *Input) ExecutableName() string {
	return in.executable
}

// ExecutablePath returns the executable name followed by every resolved subcommand name
func (in *Input) ExecutablePath() []string {
	out := make([]string, len(in.path))
	copy(out, in.path)

	return out
}

// Executable returns the executable path joined with spaces, e.g. "app db migrate"
func (in *Input) Executable() string {
	return strings.Join(in.path, " ")
}

func (in *Input) longKey(long string) string {
	if in.convert != nil {
		long = in.convert(long)
	}

	return longPrefix + long
}
