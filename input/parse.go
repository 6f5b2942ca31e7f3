package input

import (
	"path/filepath"
	"strings"

	"github.com/napalu/dispatch/i18n"
	"github.com/napalu/dispatch/parse"
	"github.com/napalu/dispatch/types"
	"github.com/napalu/dispatch/util"
)

var (
	// ErrEmptyInput is returned when there is no executable to create an Input for
	ErrEmptyInput = i18n.NewError(types.ErrEmptyInputKey)
	// ErrSplitInput is returned when a command line cannot be split into tokens
	ErrSplitInput = i18n.NewError(types.ErrSplitInputKey)
)

// Parse creates an Input from raw process arguments; args[0] is the executable.
//
// Tokens are classified as follows:
//   - "--" ends option processing, every following token is positional
//   - "--name=value" and "-n=value" are options
//   - "--name" and "-n" are options taking the next token as value when declared with
//     WithValueOptions/WithShortValueOptions and a value follows, flags otherwise
//   - "-abc" expands to the flags a, b and c when WithPosix is enabled; the last letter may take a value
//   - "-", and tokens which parse as numbers such as "-5", are positional
//   - everything else is positional, in order
//
// When WithScope is given, the value-taking names also include those of the current scope, which
// narrows as positional tokens are read. When an option is repeated the last value wins.
func Parse(args []string, configs ...ConfigureFunc) (*Input, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, ErrEmptyInput
	}

	cfg := newConfig(configs...)
	cfg.setScope(cfg.scope)
	in := New(filepath.Base(args[0]), nil, configs...)

	rest := args[1:]
	endOfOptions := false
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		next, hasNext := valueAt(rest, i+1)

		switch {
		case endOfOptions || !isNamed(tok):
			in.positionals.PushBack(tok)
			cfg.enter(tok)
		case tok == longPrefix:
			endOfOptions = true
		case strings.HasPrefix(tok, longPrefix):
			if in.parseLong(cfg, tok[len(longPrefix):], next, hasNext) {
				i++
			}
		default:
			if in.parseShort(cfg, tok[len(shortPrefix):], next, hasNext) {
				i++
			}
		}
	}

	return in, nil
}

// ParseString splits line with shell quoting rules and calls Parse. It suits hosts which dispatch
// many command lines, such as an interactive prompt.
func ParseString(line string, configs ...ConfigureFunc) (*Input, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, ErrSplitInput.Wrap(err)
	}

	return Parse(args, configs...)
}

// parseLong returns true when the next token was consumed as a value
func (in *Input) parseLong(cfg *config, name, next string, hasNext bool) bool {
	if k, v, found := strings.Cut(name, "="); found {
		in.SetOption(k, v)
		return false
	}

	converted := name
	if cfg.nameConverter != nil {
		converted = cfg.nameConverter(name)
	}
	if hasNext && cfg.isValueOption(converted) {
		in.SetOption(name, next)
		return true
	}
	in.SetFlag(name)

	return false
}

// parseShort returns true when the next token was consumed as a value
func (in *Input) parseShort(cfg *config, name, next string, hasNext bool) bool {
	if k, v, found := strings.Cut(name, "="); found {
		in.SetShortOption(k, v)
		return false
	}

	if cfg.posix && len(name) > 1 {
		runes := []rune(name)
		for _, r := range runes[:len(runes)-1] {
			in.SetShortFlag(string(r))
		}
		name = string(runes[len(runes)-1])
	}

	if hasNext && cfg.isShortValueOption(name) {
		in.SetShortOption(name, next)
		return true
	}
	in.SetShortFlag(name)

	return false
}

// isNamed reports whether tok is written as an option or flag
func isNamed(tok string) bool {
	if len(tok) < 2 || !strings.HasPrefix(tok, shortPrefix) {
		return false
	}
	if tok == longPrefix {
		return true
	}
	if strings.HasPrefix(tok, longPrefix+"=") || strings.HasPrefix(tok, shortPrefix+"=") {
		return false
	}

	return !util.IsNumeric(tok)
}

// valueAt returns the token at i when it can serve as a value
func valueAt(args []string, i int) (string, bool) {
	if i >= len(args) || isNamed(args[i]) {
		return "", false
	}

	return args[i], true
}
