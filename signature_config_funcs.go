package dispatch

import (
	"unicode/utf8"

	"github.com/napalu/dispatch/types"
	"github.com/napalu/dispatch/util"
)

// Argument declares a required positional slot
func Argument(name string, configs ...ConfigureSlotFunc) *Slot {
	return newSlot(types.Argument, name, configs...)
}

// Option declares a named slot taking a value, given as --name value, --name=value or -s value
func Option(name string, configs ...ConfigureSlotFunc) *Slot {
	return newSlot(types.Option, name, configs...)
}

// Flag declares a named boolean slot, given as --name or -s
func Flag(name string, configs ...ConfigureSlotFunc) *Slot {
	return newSlot(types.Flag, name, configs...)
}

func newSlot(kind types.SlotKind, name string, configs ...ConfigureSlotFunc) *Slot {
	slot := &Slot{Kind: kind, Name: name}
	for _, config := range configs {
		config(slot, &slot.err)
		if slot.err != nil {
			break
		}
	}

	return slot
}

// WithSlotHelp sets the text shown next to the slot in help output
func WithSlotHelp(help string) ConfigureSlotFunc {
	return func(slot *Slot, err *error) {
		slot.Help = help
	}
}

// WithShort sets the single-character alias of an Option or Flag
func WithShort(short string) ConfigureSlotFunc {
	return func(slot *Slot, err *error) {
		if slot.Kind == types.Argument || utf8.RuneCountInString(short) != 1 || short == "-" {
			*err = ErrInvalidShort.WithArgs(short)
			return
		}
		slot.Short = short
	}
}

// WithDefault sets the value an Option binds to when it is absent from the input
func WithDefault(value string) ConfigureSlotFunc {
	return func(slot *Slot, err *error) {
		slot.Default = value
		slot.HasDefault = true
	}
}

// WithTarget sets a pointer which receives the bound value converted to its element type. Flags
// accept *bool only; Arguments and Options accept any pointer util.ConvertString supports.
func WithTarget(target any) ConfigureSlotFunc {
	return func(slot *Slot, err *error) {
		if slot.Kind == types.Flag {
			if _, ok := target.(*bool); !ok {
				*err = util.ErrUnsupportedTypeConversion.WithArgs(target)
				return
			}
		} else if !util.CanConvert(target) {
			*err = util.ErrUnsupportedTypeConversion.WithArgs(target)
			return
		}
		slot.target = target
	}
}
