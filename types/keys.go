// Package types provides common type definitions for the dispatch library.
// This file contains constants for all translation keys used throughout the library.
package types

// Prefix for all dispatch translation keys
const (
	PrefixKey = "dispatch"
)

// Error prefixes
const (
	ErrorPrefixKey    = PrefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	MessagePrefixKey  = PrefixKey + ".msg"
	HelpPrefixKey     = PrefixKey + ".help"
)

// Resolution and binding errors
const (
	ErrUnknownCommandKey   = ErrorPrefixKey + ".unknown_command"
	ErrNoCommandKey        = ErrorPrefixKey + ".no_command"
	ErrMissingArgumentKey  = ErrorPrefixKey + ".missing_argument"
	ErrInvalidValueKey     = ErrorPrefixKey + ".invalid_value"
	ErrEmptyCommandNameKey = ErrorPrefixKey + ".empty_command_name"
	ErrDuplicateCommandKey = ErrorPrefixKey + ".duplicate_command"
	ErrNilCommandKey       = ErrorPrefixKey + ".nil_command"
	ErrEmptySlotNameKey    = ErrorPrefixKey + ".empty_slot_name"
	ErrDuplicateSlotKey    = ErrorPrefixKey + ".duplicate_slot"
	ErrDuplicateShortKey   = ErrorPrefixKey + ".duplicate_short"
	ErrInvalidShortKey     = ErrorPrefixKey + ".invalid_short"
	ErrReservedSlotKey     = ErrorPrefixKey + ".reserved_slot"
	ErrInvalidStructKey    = ErrorPrefixKey + ".invalid_struct"
	ErrInvalidStructTagKey = ErrorPrefixKey + ".invalid_struct_tag"
	ErrEmptyInputKey       = ErrorPrefixKey + ".empty_input"
	ErrSplitInputKey       = ErrorPrefixKey + ".split_input"
)

// Conversion errors
const (
	ErrUnsupportedTypeConversionKey = ErrorPrefixKey + ".unsupported_type_conversion"
	ErrParseBoolKey                 = ParseErrorPathKey + ".bool"
	ErrParseIntKey                  = ParseErrorPathKey + ".int"
	ErrParseUintKey                 = ParseErrorPathKey + ".uint"
	ErrParseFloatKey                = ParseErrorPathKey + ".float"
	ErrParseDurationKey             = ParseErrorPathKey + ".duration"
	ErrParseTimeKey                 = ParseErrorPathKey + ".time"
)

// UI messages
const (
	MsgDidYouMeanKey = MessagePrefixKey + ".did_you_mean"
	MsgDefaultsToKey = MessagePrefixKey + ".defaults_to"
)

// Help labels
const (
	HelpUsageKey     = HelpPrefixKey + ".usage"
	HelpCommandKey   = HelpPrefixKey + ".command"
	HelpCommandsKey  = HelpPrefixKey + ".commands"
	HelpArgumentsKey = HelpPrefixKey + ".arguments"
	HelpOptionsKey   = HelpPrefixKey + ".options"
	HelpFlagsKey     = HelpPrefixKey + ".flags"
	HelpFooterKey    = HelpPrefixKey + ".footer"
	HelpFooterEndKey = HelpPrefixKey + ".footer_end"
)
