// Package parse splits command lines into tokens and reads the struct tags signatures are declared with.
package parse

import "github.com/google/shlex"

// Split splits s into tokens, honouring single quotes, double quotes and backslash escapes.
// An empty or blank line yields an empty, non-nil slice.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = []string{}
	}

	return args, nil
}
