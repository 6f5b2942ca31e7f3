package dispatch

import (
	"strings"

	"github.com/napalu/dispatch/completion"
	"github.com/napalu/dispatch/types"
)

// CompletionData walks the command tree below root and collects the named commands, the option and
// flag names of their signatures and their static completion candidates. Default commands which are
// not also registered under a name are not reachable by name and are skipped.
func CompletionData(root AnyCommand) *completion.Data {
	data := completion.NewData()
	collectCompletion(data, nil, root, 0)

	return data
}

// GenerateCompletion renders a completion script for programName in shell ("bash", "zsh" or "fish")
func GenerateCompletion(root AnyCommand, shell, programName string) (string, error) {
	g, err := completion.GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return g.Generate(programName, CompletionData(root)), nil
}

func collectCompletion(data *completion.Data, path []string, cmd AnyCommand, depth int) {
	if cmd == nil || depth > maxTreeDepth {
		return
	}
	key := strings.Join(path, " ")

	switch c := cmd.(type) {
	case *Group:
		for _, name := range c.Commands() {
			child, _ := c.Command(name)
			childPath := append(path[:len(path):len(path)], name)
			data.AddCommand(strings.Join(childPath, " "), child.Help())
			collectCompletion(data, childPath, child, depth+1)
		}
	case *Command:
		if len(c.completions) > 0 {
			data.AddValues(key, c.completions...)
		}
		collectSlots(data, key, c.Schema())
	case schemaProvider:
		collectSlots(data, key, c.Schema())
	}
}

func collectSlots(data *completion.Data, key string, schema Schema) {
	if schema == nil {
		return
	}
	for _, slot := range schema.Slots() {
		if slot.Kind == types.Argument {
			continue
		}
		data.AddFlag(key, "--"+slot.Name, slot.Help)
		if slot.Short != "" {
			data.AddFlag(key, "-"+slot.Short, slot.Help)
		}
	}
}
