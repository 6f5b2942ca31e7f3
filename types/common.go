package types

// SlotKind describes how a signature slot is filled from the input
type SlotKind int

const (
	Argument SlotKind = iota // Argument denotes a required positional slot
	Option                   // Option denotes a named slot which takes a value
	Flag                     // Flag denotes a named boolean slot
)

// String returns the string representation of a SlotKind
func (k SlotKind) String() string {
	switch k {
	case Argument:
		return "argument"
	case Option:
		return "option"
	case Flag:
		return "flag"
	}

	return "unknown"
}

// Style tags output written to a console. The console decides how (and whether) a style is rendered.
type Style int

const (
	Plain Style = iota
	Info
	Warning
	Success
	Error
)

// String returns the string representation of a Style
func (s Style) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Success:
		return "success"
	case Error:
		return "error"
	case Plain:
		fallthrough
	default:
		return "plain"
	}
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool
