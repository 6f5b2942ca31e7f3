package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator renders a zsh completion function registered with compdef
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data *Data) string {
	fn := functionName(programName)
	var script strings.Builder

	fmt.Fprintf(&script, `#compdef %[1]s

__%[2]s_completion() {
    local cmdpath="" i
    local -a candidates

    for ((i = 2; i < CURRENT; i++)); do
        [[ "${words[i]}" == -* ]] && continue
        cmdpath="${cmdpath:+$cmdpath }${words[i]}"
    done

    if [[ "${words[CURRENT]}" == -* ]]; then
        case "$cmdpath" in
`, programName, fn)

	for _, path := range data.Paths() {
		if flags := data.Flags[path]; len(flags) > 0 {
			writeZshCase(&script, path, flags)
		}
	}

	script.WriteString(`        esac
    else
        case "$cmdpath" in
`)

	for _, path := range data.Paths() {
		entries := data.Children(path)
		for _, v := range data.Values[path] {
			entries = append(entries, Entry{Name: v})
		}
		if len(entries) > 0 {
			writeZshCase(&script, path, entries)
		}
	}

	fmt.Fprintf(&script, `        esac
    fi

    _describe 'command' candidates
}

compdef __%[2]s_completion %[1]s
`, programName, fn)

	return script.String()
}

func writeZshCase(script *strings.Builder, path string, entries []Entry) {
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		item := escapeZsh(e.Name)
		if e.Help != "" {
			item += ":" + escapeZsh(firstLine(e.Help))
		}
		items = append(items, quoteSingle(item))
	}

	fmt.Fprintf(script, "            %s) candidates=(%s) ;;\n", quoteSingle(path), strings.Join(items, " "))
}
