package console

import (
	"strings"

	"github.com/napalu/dispatch/types"
)

// Entry is a single recorded Output call
type Entry struct {
	Text    string
	Style   types.Style
	NewLine bool
}

// Recorder is a Console which keeps every call. The zero value is ready to use.
type Recorder struct {
	Entries []Entry
}

// Output records the call
func (r *Recorder) Output(text string, style types.Style, newLine bool) {
	r.Entries = append(r.Entries, Entry{Text: text, Style: style, NewLine: newLine})
}

// String returns the recorded text without styling, as a terminal without colour would show it
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, e := range r.Entries {
		sb.WriteString(e.Text)
		if e.NewLine {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Styled returns the texts recorded with style, in order
func (r *Recorder) Styled(style types.Style) []string {
	var out []string
	for _, e := range r.Entries {
		if e.Style == style && e.Text != "" {
			out = append(out, e.Text)
		}
	}

	return out
}

// Reset forgets all recorded calls
func (r *Recorder) Reset() {
	r.Entries = r.Entries[:0]
}
