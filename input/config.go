package input

import (
	"github.com/iancoleman/strcase"
)

// ConfigureFunc is used when creating an Input
type ConfigureFunc func(cfg *config)

// NameConverter normalises long option and flag names. It is applied both when tokens are
// classified and when they are looked up, so "--dryRun", "--dry_run" and "--dry-run" can share a name.
type NameConverter func(string) string

// Built-in conversion strategies
var (
	// KebabCase converts a name to kebab case "dry-run"
	KebabCase NameConverter = strcase.ToKebab

	// SnakeCase converts a name to snake case "dry_run"
	SnakeCase NameConverter = strcase.ToSnake

	// LowerCamel converts a name to lower camel case "dryRun"
	LowerCamel NameConverter = strcase.ToLowerCamel
)

// Scope narrows which names take a value as Parse walks the positional tokens. Parse starts in
// the scope given to WithScope and calls Enter with every positional token; when Enter succeeds the
// returned scope applies to all following tokens, otherwise the current scope is kept.
type Scope interface {
	// ValueOptions returns the long and short names which take a value within the scope
	ValueOptions() (long, short []string)
	// Enter returns the scope selected by the positional token name
	Enter(name string) (Scope, bool)
}

type config struct {
	valueOptions      map[string]bool
	shortValueOptions map[string]bool
	posix             bool
	nameConverter     NameConverter

	scope      Scope
	scopeLong  map[string]bool
	scopeShort map[string]bool
}

func newConfig(configs ...ConfigureFunc) *config {
	cfg := &config{
		valueOptions:      map[string]bool{},
		shortValueOptions: map[string]bool{},
	}
	for _, c := range configs {
		c(cfg)
	}

	return cfg
}

// WithValueOptions declares long option names which take the following token as their value
// when written without '=' ("--count 3")
func WithValueOptions(names ...string) ConfigureFunc {
	return func(cfg *config) {
		for _, n := range names {
			cfg.valueOptions[n] = true
		}
	}
}

// WithShortValueOptions declares short aliases which take the following token as their value ("-c 3")
func WithShortValueOptions(shorts ...string) ConfigureFunc {
	return func(cfg *config) {
		for _, s := range shorts {
			cfg.shortValueOptions[s] = true
		}
	}
}

// WithScope sets the scope Parse starts classifying in. Names declared with WithValueOptions and
// WithShortValueOptions take a value in every scope.
func WithScope(scope Scope) ConfigureFunc {
	return func(cfg *config) {
		cfg.scope = scope
	}
}

// WithPosix enables expansion of clustered short flags, "-abc" becoming "-a -b -c"
func WithPosix(posix bool) ConfigureFunc {
	return func(cfg *config) {
		cfg.posix = posix
	}
}

// WithNameConverter sets the converter applied to long option and flag names
func WithNameConverter(converter NameConverter) ConfigureFunc {
	return func(cfg *config) {
		cfg.nameConverter = converter
	}
}

// setScope replaces the current scope and the value-taking names it declares
func (cfg *config) setScope(scope Scope) {
	cfg.scope = scope
	cfg.scopeLong, cfg.scopeShort = map[string]bool{}, map[string]bool{}
	if scope == nil {
		return
	}
	long, short := scope.ValueOptions()
	for _, n := range long {
		cfg.scopeLong[n] = true
	}
	for _, s := range short {
		cfg.scopeShort[s] = true
	}
}

// enter narrows the current scope to the one selected by a positional token
func (cfg *config) enter(tok string) {
	if cfg.scope == nil {
		return
	}
	if next, ok := cfg.scope.Enter(tok); ok {
		cfg.setScope(next)
	}
}

func (cfg *config) isValueOption(name string) bool {
	return cfg.hasName(cfg.valueOptions, name) || cfg.hasName(cfg.scopeLong, name)
}

func (cfg *config) isShortValueOption(short string) bool {
	return cfg.shortValueOptions[short] || cfg.scopeShort[short]
}

func (cfg *config) hasName(names map[string]bool, name string) bool {
	if names[name] {
		return true
	}
	if cfg.nameConverter == nil {
		return false
	}
	for n := range names {
		if cfg.nameConverter(n) == name {
			return true
		}
	}

	return false
}
