package dispatch

import (
	"strconv"

	"github.com/napalu/dispatch/input"
	"github.com/napalu/dispatch/types"
	"github.com/napalu/dispatch/util"
)

// Signature is the default Schema: an ordered, validated list of slots
type Signature struct {
	slots []*Slot
}

// NewSignature validates slots and returns a Signature declaring them in the given order. Slot names
// must be non-empty and unique across all kinds; short aliases must be unique. The names "help" and
// "autocomplete" and the short alias "h" are reserved for the requests Execute handles itself.
func NewSignature(slots ...*Slot) (*Signature, error) {
	if err := validateSlots(slots); err != nil {
		return nil, err
	}

	return &Signature{slots: slots}, nil
}

// MustSignature is like NewSignature but panics on an invalid declaration. It is intended for
// signatures declared in code, where an error is a programming mistake.
func MustSignature(slots ...*Slot) *Signature {
	s, err := NewSignature(slots...)
	if err != nil {
		panic(err)
	}

	return s
}

// Slots returns the declared slots in declaration order
func (s *Signature) Slots() []*Slot {
	if s == nil {
		return nil
	}

	return append([]*Slot(nil), s.slots...)
}

func validateSlots(slots []*Slot) error {
	names := make(map[string]bool, len(slots))
	shorts := map[string]bool{}
	for _, slot := range slots {
		if slot.err != nil {
			return slot.err
		}
		if slot.Name == "" {
			return ErrEmptySlotName
		}
		if slot.Name == helpFlag || slot.Name == autoCompleteFlag {
			return ErrReservedSlot.WithArgs("--" + slot.Name)
		}
		if slot.Short == helpShortFlag {
			return ErrReservedSlot.WithArgs("-" + slot.Short)
		}
		if names[slot.Name] {
			return ErrDuplicateSlot.WithArgs(slot.Name)
		}
		names[slot.Name] = true
		if slot.Short == "" {
			continue
		}
		if shorts[slot.Short] {
			return ErrDuplicateShort.WithArgs(slot.Short)
		}
		shorts[slot.Short] = true
	}

	return nil
}

// Values holds what Bind extracted from an input, keyed by slot name
type Values struct {
	values map[string]string
	flags  map[string]bool
}

func newValues() *Values {
	return &Values{
		values: map[string]string{},
		flags:  map[string]bool{},
	}
}

// Argument returns the positional token bound to the named Argument slot
func (v *Values) Argument(name string) (string, bool) {
	val, found := v.values[name]
	return val, found
}

// Option returns the value bound to the named Option slot. An option which was absent from the input
// and declares no default is not found.
func (v *Values) Option(name string) (string, bool) {
	val, found := v.values[name]
	return val, found
}

// Flag reports whether the named Flag slot was set
func (v *Values) Flag(name string) bool {
	return v.flags[name]
}

// Get returns the string bound to an Argument or Option slot, the bool of a Flag slot, or nil when
// name was not bound
func (v *Values) Get(name string) any {
	if val, found := v.values[name]; found {
		return val
	}
	if set, found := v.flags[name]; found {
		return set
	}

	return nil
}

// Bind extracts the values declared by schema from in. Argument slots consume positional tokens
// from the front of in, in declaration order; Options and Flags are looked up by long name first,
// then by short alias. Bind stops at the first failure and returns the values bound so far together
// with the error: consumed positionals are not restored.
func Bind(schema Schema, in *input.Input) (*Values, error) {
	slots := schema.Slots()
	if err := validateSlots(slots); err != nil {
		return nil, err
	}

	vals := newValues()
	for _, slot := range slots {
		var err error
		switch slot.Kind {
		case types.Argument:
			err = bindArgument(slot, in, vals)
		case types.Option:
			err = bindOption(slot, in, vals)
		case types.Flag:
			err = bindFlag(slot, in, vals)
		}
		if err != nil {
			return vals, err
		}
	}

	return vals, nil
}

func bindArgument(slot *Slot, in *input.Input, vals *Values) error {
	value, found := in.PopFirstPositional()
	if !found {
		return &MissingArgumentError{Name: slot.Name}
	}
	vals.values[slot.Name] = value

	return slot.deliver(value)
}

func bindOption(slot *Slot, in *input.Input, vals *Values) error {
	value, found := in.LookupOption(slot.Name, slot.Short)
	if !found {
		if !slot.HasDefault {
			return nil
		}
		value = slot.Default
	}
	vals.values[slot.Name] = value

	return slot.deliver(value)
}

func bindFlag(slot *Slot, in *input.Input, vals *Values) error {
	set := in.HasFlag(slot.Name, slot.Short)
	if value, found := in.LookupOption(slot.Name, slot.Short); found {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return ErrInvalidValue.WithArgs(slot.Name).Wrap(util.ErrParseBool.WithArgs(value))
		}
		set = b
	}
	vals.flags[slot.Name] = set
	if target, ok := slot.target.(*bool); ok {
		*target = set
	}

	return nil
}

func (s *Slot) deliver(value string) error {
	if s.target == nil {
		return nil
	}
	if err := util.ConvertString(value, s.target, nil); err != nil {
		return ErrInvalidValue.WithArgs(s.Name).Wrap(err)
	}

	return nil
}
