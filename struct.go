package dispatch

import (
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/napalu/dispatch/parse"
	"github.com/napalu/dispatch/types"
)

const structTagName = "dispatch"

// NewSignatureFromStruct declares one slot per exported field of the struct v points to which
// carries a `dispatch` tag, in field order. Each slot targets its field, so Bind fills the struct.
//
//	type greetArgs struct {
//		Name  string `dispatch:"kind:argument;desc:Who to greet"`
//		Count int    `dispatch:"short:c;default:1"`
//		Loud  bool   `dispatch:"short:l"`
//	}
//
// Without an explicit kind, bool fields are flags and all others options. Without an explicit name,
// the field name is converted to kebab case.
//
// NewSignatureFromStruct is a convenience for quick tools. Tags are only checked when it runs, not
// by the compiler; declare slots with NewSignature where mistakes should surface in review.
func NewSignatureFromStruct(v any) (*Signature, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, ErrInvalidStruct
	}
	rv = rv.Elem()
	rt := rv.Type()

	var slots []*Slot
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag, found := field.Tag.Lookup(structTagName)
		if !found || tag == "-" || !field.IsExported() {
			continue
		}

		config, err := parse.UnmarshalTag(tag)
		if err != nil {
			return nil, ErrInvalidStructTag.WithArgs(field.Name).Wrap(err)
		}

		kind := config.Kind
		if !config.HasKind {
			kind = types.Option
			if field.Type.Kind() == reflect.Bool {
				kind = types.Flag
			}
		}
		name := config.Name
		if name == "" {
			name = strcase.ToKebab(field.Name)
		}

		configs := []ConfigureSlotFunc{WithSlotHelp(config.Help), WithTarget(rv.Field(i).Addr().Interface())}
		if config.Short != "" {
			configs = append(configs, WithShort(config.Short))
		}
		if config.HasDefault {
			configs = append(configs, WithDefault(config.Default))
		}
		slots = append(slots, newSlot(kind, name, configs...))
	}

	return NewSignature(slots...)
}

// MustSignatureFromStruct is like NewSignatureFromStruct but panics on error
func MustSignatureFromStruct(v any) *Signature {
	s, err := NewSignatureFromStruct(v)
	if err != nil {
		panic(err)
	}

	return s
}
