package completion

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupportedShell is returned by GetGenerator for shells without a generator
var ErrUnsupportedShell = errors.New("unsupported shell")

// Generator renders a completion script for programName
type Generator interface {
	Generate(programName string, data *Data) string
}

var generators = map[string]Generator{
	"bash": &BashGenerator{},
	"zsh":  &ZshGenerator{},
	"fish": &FishGenerator{},
}

// GetGenerator returns the generator for shell
func GetGenerator(shell string) (Generator, error) {
	g, found := generators[shell]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}

	return g, nil
}

// Shells returns the names of the supported shells
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	return shells
}
