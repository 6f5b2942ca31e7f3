package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/dispatch/i18n"
	"github.com/napalu/dispatch/types"
)

// Conversion errors. Returned errors match these with errors.Is.
var (
	ErrUnsupportedTypeConversion = i18n.NewError(types.ErrUnsupportedTypeConversionKey)
	ErrParseBool                 = i18n.NewError(types.ErrParseBoolKey)
	ErrParseInt                  = i18n.NewError(types.ErrParseIntKey)
	ErrParseUint                 = i18n.NewError(types.ErrParseUintKey)
	ErrParseFloat                = i18n.NewError(types.ErrParseFloatKey)
	ErrParseDuration             = i18n.NewError(types.ErrParseDurationKey)
	ErrParseTime                 = i18n.NewError(types.ErrParseTimeKey)
)

// DefaultListDelimiter splits list values on ',', '|' and ' '
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// ConvertString converts value and stores the result in data, which must be a pointer to one of the
// supported types: string, bool, int, int64, uint, uint64, float64, time.Duration, time.Time and slices of these.
// Slice values are split with delimiterFunc (DefaultListDelimiter when nil).
func ConvertString(value string, data any, delimiterFunc types.ListDelimiterFunc) error {
	if delimiterFunc == nil {
		delimiterFunc = DefaultListDelimiter
	}

	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, delimiterFunc)
	case *bool:
		return convertOne(value, t, parseBool)
	case *[]bool:
		return convertList(value, delimiterFunc, t, parseBool)
	case *int:
		return convertOne(value, t, parseInt[int](strconv.IntSize))
	case *[]int:
		return convertList(value, delimiterFunc, t, parseInt[int](strconv.IntSize))
	case *int64:
		return convertOne(value, t, parseInt[int64](64))
	case *[]int64:
		return convertList(value, delimiterFunc, t, parseInt[int64](64))
	case *uint:
		return convertOne(value, t, parseUint[uint](strconv.IntSize))
	case *[]uint:
		return convertList(value, delimiterFunc, t, parseUint[uint](strconv.IntSize))
	case *uint64:
		return convertOne(value, t, parseUint[uint64](64))
	case *[]uint64:
		return convertList(value, delimiterFunc, t, parseUint[uint64](64))
	case *float64:
		return convertOne(value, t, parseFloat)
	case *[]float64:
		return convertList(value, delimiterFunc, t, parseFloat)
	case *time.Duration:
		return convertOne(value, t, parseDuration)
	case *[]time.Duration:
		return convertList(value, delimiterFunc, t, parseDuration)
	case *time.Time:
		return convertOne(value, t, parseTime)
	case *[]time.Time:
		return convertList(value, delimiterFunc, t, parseTime)
	default:
		return ErrUnsupportedTypeConversion.WithArgs(data)
	}

	return nil
}

// CanConvert reports whether ConvertString supports data
func CanConvert(data any) bool {
	switch data.(type) {
	case *string, *[]string, *bool, *[]bool, *int, *[]int, *int64, *[]int64, *uint, *[]uint,
		*uint64, *[]uint64, *float64, *[]float64, *time.Duration, *[]time.Duration, *time.Time, *[]time.Time:
		return true
	}

	return false
}

func convertOne[T any](value string, target *T, parse func(string) (T, error)) error {
	v, err := parse(value)
	if err != nil {
		return err
	}
	*target = v

	return nil
}

func convertList[T any](value string, delimiterFunc types.ListDelimiterFunc, target *[]T, parse func(string) (T, error)) error {
	values := strings.FieldsFunc(value, delimiterFunc)
	temp := make([]T, len(values))
	for i, v := range values {
		parsed, err := parse(v)
		if err != nil {
			return err
		}
		temp[i] = parsed
	}
	*target = temp

	return nil
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, ErrParseBool.WithArgs(s)
	}

	return v, nil
}

func parseInt[T ~int | ~int64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bitSize)
		if err != nil {
			return 0, ErrParseInt.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseUint[T ~uint | ~uint64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bitSize)
		if err != nil {
			return 0, ErrParseUint.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrParseFloat.WithArgs(s)
	}

	return v, nil
}

func parseDuration(s string) (time.Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, ErrParseDuration.WithArgs(s)
	}

	return v, nil
}

func parseTime(s string) (time.Time, error) {
	v, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, ErrParseTime.WithArgs(s)
	}

	return v, nil
}

// IsNumeric reports whether s parses as an integer or a float, e.g. "-5" or "-1.5"
func IsNumeric(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)

	return err == nil
}
