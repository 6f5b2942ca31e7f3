// Package completion generates static shell completion scripts from a command tree description.
package completion

import (
	"sort"
	"strings"
)

// Entry is a completion candidate and its description
type Entry struct {
	Name string
	Help string
}

// Data describes a command tree for completion. Command paths are the names traversed from the root,
// joined with single spaces: "" is the root itself, "db migrate" a nested command.
type Data struct {
	// Commands lists every reachable command path in traversal order
	Commands []Entry
	// Flags holds the named slots of a command path, e.g. "--count" and "-c"
	Flags map[string][]Entry
	// Values holds static argument candidates of a command path
	Values map[string][]string
}

// NewData creates empty completion data
func NewData() *Data {
	return &Data{
		Flags:  map[string][]Entry{},
		Values: map[string][]string{},
	}
}

// AddCommand records a command at path
func (d *Data) AddCommand(path, help string) {
	d.Commands = append(d.Commands, Entry{Name: path, Help: help})
}

// AddFlag records a named slot of the command at path
func (d *Data) AddFlag(path, flag, help string) {
	d.Flags[path] = append(d.Flags[path], Entry{Name: flag, Help: help})
}

// AddValues records static argument candidates of the command at path
func (d *Data) AddValues(path string, values ...string) {
	d.Values[path] = append(d.Values[path], values...)
}

// Children returns the immediate subcommands of path, named by their last segment
func (d *Data) Children(path string) []Entry {
	var children []Entry
	for _, cmd := range d.Commands {
		parent, name := splitPath(cmd.Name)
		if parent == path && name != "" {
			children = append(children, Entry{Name: name, Help: cmd.Help})
		}
	}

	return children
}

// Paths returns every path which has children, flags or values, sorted, the root first
func (d *Data) Paths() []string {
	seen := map[string]bool{"": true}
	for _, cmd := range d.Commands {
		parent, _ := splitPath(cmd.Name)
		seen[parent] = true
	}
	for path := range d.Flags {
		seen[path] = true
	}
	for path := range d.Values {
		seen[path] = true
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths
}

func splitPath(path string) (parent, name string) {
	i := strings.LastIndexByte(path, ' ')
	if i < 0 {
		return "", path
	}

	return path[:i], path[i+1:]
}
