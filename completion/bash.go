package completion

import (
	"fmt"
	"strings"
)

// BashGenerator renders a bash completion function registered with `complete -F`
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data *Data) string {
	fn := functionName(programName)
	var script strings.Builder

	fmt.Fprintf(&script, `# bash completion for %[1]s

__%[2]s_completion() {
    local cur="${COMP_WORDS[COMP_CWORD]}" cmdpath="" word i candidates=""

    for ((i = 1; i < COMP_CWORD; i++)); do
        word="${COMP_WORDS[i]}"
        [[ "$word" == -* ]] && continue
        cmdpath="${cmdpath:+$cmdpath }$word"
    done

    if [[ "$cur" == -* ]]; then
        case "$cmdpath" in
`, programName, fn)

	for _, path := range data.Paths() {
		if flags := entryNames(data.Flags[path]); len(flags) > 0 {
			writeBashCase(&script, path, flags)
		}
	}

	script.WriteString(`        esac
    else
        case "$cmdpath" in
`)

	for _, path := range data.Paths() {
		words := append(entryNames(data.Children(path)), data.Values[path]...)
		if len(words) > 0 {
			writeBashCase(&script, path, words)
		}
	}

	fmt.Fprintf(&script, `        esac
    fi

    COMPREPLY=( $(compgen -W "$candidates" -- "$cur") )
}

complete -F __%[2]s_completion %[1]s
`, programName, fn)

	return script.String()
}

func writeBashCase(script *strings.Builder, path string, words []string) {
	fmt.Fprintf(script, "            %s) candidates=%s ;;\n", quoteSingle(path), quoteSingle(strings.Join(words, " ")))
}

func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	return names
}
