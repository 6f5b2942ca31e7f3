package dispatch

import (
	"github.com/napalu/dispatch/i18n"
	"github.com/napalu/dispatch/types"
)

// Resolution, binding and declaration errors. Every error returned by this package matches one of
// these with errors.Is; UnknownCommandError and MissingArgumentError also carry the offending name.
var (
	ErrUnknownCommand   = i18n.NewError(types.ErrUnknownCommandKey)
	ErrNoCommand        = i18n.NewError(types.ErrNoCommandKey)
	ErrMissingArgument  = i18n.NewError(types.ErrMissingArgumentKey)
	ErrInvalidValue     = i18n.NewError(types.ErrInvalidValueKey)
	ErrEmptyCommandName = i18n.NewError(types.ErrEmptyCommandNameKey)
	ErrDuplicateCommand = i18n.NewError(types.ErrDuplicateCommandKey)
	ErrNilCommand       = i18n.NewError(types.ErrNilCommandKey)
	ErrEmptySlotName    = i18n.NewError(types.ErrEmptySlotNameKey)
	ErrDuplicateSlot    = i18n.NewError(types.ErrDuplicateSlotKey)
	ErrDuplicateShort   = i18n.NewError(types.ErrDuplicateShortKey)
	ErrInvalidShort     = i18n.NewError(types.ErrInvalidShortKey)
	ErrReservedSlot     = i18n.NewError(types.ErrReservedSlotKey)
	ErrInvalidStruct    = i18n.NewError(types.ErrInvalidStructKey)
	ErrInvalidStructTag = i18n.NewError(types.ErrInvalidStructTagKey)
)

// UnknownCommandError is returned when a positional token names no child of the resolving group
type UnknownCommandError struct {
	Name string
	// Suggestion is the closest sibling name, or empty when nothing is close enough
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	return ErrUnknownCommand.WithArgs(e.Name).Error()
}

// Is matches ErrUnknownCommand
func (e *UnknownCommandError) Is(target error) bool {
	return ErrUnknownCommand.Is(target)
}

// Hint returns a translated "did you mean" message, or an empty string when there is no suggestion
func (e *UnknownCommandError) Hint() string {
	if e.Suggestion == "" {
		return ""
	}

	return i18n.Default().T(types.MsgDidYouMeanKey, e.Suggestion)
}

// MissingArgumentError is returned by Bind when a declared Argument slot has no positional token left
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return ErrMissingArgument.WithArgs(e.Name).Error()
}

// Is matches ErrMissingArgument
func (e *MissingArgumentError) Is(target error) bool {
	return ErrMissingArgument.Is(target)
}
