package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/napalu/dispatch/types"
)

// Tag errors
var (
	ErrInvalidTagFormat = errors.New("invalid tag format")
	ErrInvalidKind      = errors.New("invalid kind")
	ErrUnknownTagKey    = errors.New("unrecognized tag key")
)

// TagConfig is the content of a struct tag declaring a signature slot
type TagConfig struct {
	Kind       types.SlotKind
	HasKind    bool
	Name       string
	Short      string
	Help       string
	Default    string
	HasDefault bool
}

// UnmarshalTag reads a tag of the form "kind:option;name:count;short:c;desc:How often;default:1".
// Every key is optional. Values may contain ':' but not ';'.
func UnmarshalTag(tag string) (*TagConfig, error) {
	config := &TagConfig{}
	if strings.TrimSpace(tag) == "" {
		return config, nil
	}

	for _, part := range strings.Split(tag, ";") {
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTagFormat, part)
		}

		switch strings.TrimSpace(key) {
		case "kind":
			kind, err := kindFromString(value)
			if err != nil {
				return nil, err
			}
			config.Kind = kind
			config.HasKind = true
		case "name":
			config.Name = value
		case "short":
			config.Short = value
		case "desc":
			config.Help = value
		case "default":
			config.Default = value
			config.HasDefault = true
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownTagKey, key)
		}
	}

	return config, nil
}

func kindFromString(s string) (types.SlotKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "argument", "arg":
		return types.Argument, nil
	case "option":
		return types.Option, nil
	case "flag":
		return types.Flag, nil
	}

	return types.Argument, fmt.Errorf("%w: %s (must be 'argument', 'option' or 'flag')", ErrInvalidKind, s)
}
