package codec

import "reflect"

// Registry indexes codecs by kind (for encoding) and by name (for
// decoding). It is built once and read-only afterwards, so a single
// Registry may back any number of transformers across goroutines with no
// coordination.
type Registry struct {
	codecs []Codec
	byKind map[reflect.Type]*Codec
	byName map[string]*Codec
}

// NewRegistry builds a registry from the given codecs. Registration fails
// fast: two codecs sharing a name return a *DuplicateNameError and two
// sharing a kind a *DuplicateKindError, since either duplicate would make
// one direction of the conversion ambiguous.
func NewRegistry(codecs ...Codec) (*Registry, error) {
	reg := &Registry{
		codecs: make([]Codec, len(codecs)),
		byKind: make(map[reflect.Type]*Codec, len(codecs)),
		byName: make(map[string]*Codec, len(codecs)),
	}
	copy(reg.codecs, codecs)
	for i := range reg.codecs {
		c := &reg.codecs[i]
		if prev, ok := reg.byName[c.Name]; ok {
			return nil, &DuplicateNameError{Name: c.Name, First: prev, Second: c}
		}
		if prev, ok := reg.byKind[c.Kind]; ok {
			return nil, &DuplicateKindError{Kind: c.Kind, First: prev, Second: c}
		}
		reg.byName[c.Name] = c
		reg.byKind[c.Kind] = c
	}
	return reg, nil
}

// MustRegistry is like NewRegistry but panics on error. It is intended
// for registries built from static codec lists.
func MustRegistry(codecs ...Codec) *Registry {
	reg, err := NewRegistry(codecs...)
	if err != nil {
		panic(err)
	}
	return reg
}

// ByKind returns the codec registered for exactly kind, if any.
func (r *Registry) ByKind(kind reflect.Type) (*Codec, bool) {
	c, ok := r.byKind[kind]
	return c, ok
}

// ByName returns the codec registered under name, if any.
func (r *Registry) ByName(name string) (*Codec, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Codecs returns the registered codecs in registration order.
func (r *Registry) Codecs() []Codec {
	res := make([]Codec, len(r.codecs))
	copy(res, r.codecs)
	return res
}
