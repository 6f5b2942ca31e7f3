package completion

import (
	"fmt"
	"strings"
)

// FishGenerator renders `complete` commands conditioned on the command path typed so far
type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data *Data) string {
	fn := functionName(programName)
	var script strings.Builder

	fmt.Fprintf(&script, `# fish completion for %[1]s

function __%[2]s_at
    set -l tokens (commandline -opc)
    set -e tokens[1]
    set -l cmdpath
    for token in $tokens
        string match -q -- '-*' $token; and continue
        set -a cmdpath $token
    end
    test "$cmdpath" = "$argv[1]"
end

complete -c %[1]s -f
`, programName, fn)

	for _, path := range data.Paths() {
		condition := fmt.Sprintf(`'__%s_at "%s"'`, fn, escapeFish(path))

		for _, child := range data.Children(path) {
			fmt.Fprintf(&script, "complete -c %s -n %s -a '%s'%s\n",
				programName, condition, escapeFish(child.Name), fishDescription(child.Help))
		}
		for _, v := range data.Values[path] {
			fmt.Fprintf(&script, "complete -c %s -n %s -a '%s'\n", programName, condition, escapeFish(v))
		}
		for _, flag := range data.Flags[path] {
			fmt.Fprintf(&script, "complete -c %s -n %s %s%s\n",
				programName, condition, fishFlag(flag.Name), fishDescription(flag.Help))
		}
	}

	return script.String()
}

func fishFlag(flag string) string {
	if strings.HasPrefix(flag, "--") {
		return "-l " + flag[2:]
	}

	return "-s " + strings.TrimPrefix(flag, "-")
}

func fishDescription(help string) string {
	if help == "" {
		return ""
	}

	return " -d '" + escapeFish(firstLine(help)) + "'"
}
