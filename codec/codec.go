// Package codec defines named bidirectional conversion rules between
// application types and primitive values, and the registry the tagmap
// transformer dispatches through.
package codec

import "reflect"

// EncodeFunc lowers a value of a codec's kind to a primitive value: a
// string, number, bool, nil, []any, or string-keyed map, possibly
// containing further registered kinds. Returning (nil, nil) means the
// codec is a pure marker and carries no body.
type EncodeFunc func(v any) (any, error)

// DecodeFunc reconstructs a value of the codec's kind from its primitive
// payload. For tagged scalars the payload is the body string, or nil when
// the tag had no body; for tagged compounds it is the reconstructed
// payload value.
type DecodeFunc func(p any) (any, error)

// Codec binds one application type to a name and a conversion pair.
// Dispatch on encode is by exact Kind match; dispatch on decode is by
// Name. Codecs are immutable once handed to a registry.
type Codec struct {
	Name   string
	Kind   reflect.Type
	Encode EncodeFunc
	Decode DecodeFunc
}

// Of builds a Codec for T with typed conversion functions. Kind is the
// exact type T; values whose dynamic type is T dispatch to it, values of
// other types do not, even when assignable.
func Of[T any](name string, enc func(T) (any, error), dec func(any) (T, error)) Codec {
	return Codec{
		Name: name,
		Kind: reflect.TypeFor[T](),
		Encode: func(v any) (any, error) {
			return enc(v.(T))
		},
		Decode: func(p any) (any, error) {
			return dec(p)
		},
	}
}
