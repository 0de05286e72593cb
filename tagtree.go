// Package tagtree extends any primitive-tree serializer with support for
// application-defined types, without modifying the underlying serializer.
//
// A Serializer composes three parts: a codec registry naming the custom
// kinds and how they convert to primitive values, the tagmap transformer
// that rewrites trees before encoding and after decoding, and an opaque
// encoder/decoder pair turning primitive trees into and out of bytes
// (jsonio and yamlio provide ready-made pairs).
//
//	reg, err := codec.NewRegistry(codecs.UUID(), codecs.Time())
//	s := tagtree.New(reg, jsonio.Encode, jsonio.Decode)
//
//	data, err := s.Marshal(map[string]any{"id": uuid.New()})
//	// {"id":"$uuid:f06ffa42-d5fb-4f65-b9a7-94d3b92d5c85"}
//
//	back, err := s.Unmarshal(data)
//	// map[string]any{"id": uuid.UUID{...}}
package tagtree

import (
	"github.com/signadot/tagtree/codec"
	"github.com/signadot/tagtree/ir"
	"github.com/signadot/tagtree/tagmap"
)

// Encoder turns a primitive tree into serialized bytes.
type Encoder func(node *ir.Node) ([]byte, error)

// Decoder turns serialized bytes back into a primitive tree.
type Decoder func(data []byte) (*ir.Node, error)

// Serializer composes the tag transformer with an opaque encoder/decoder
// pair. It is immutable and safe for concurrent use.
type Serializer struct {
	t   *tagmap.Transformer
	enc Encoder
	dec Decoder
}

// New builds a Serializer over reg and the given encoder/decoder pair.
// Options configure the underlying transformer.
func New(reg *codec.Registry, enc Encoder, dec Decoder, opts ...tagmap.Option) *Serializer {
	return &Serializer{
		t:   tagmap.New(reg, opts...),
		enc: enc,
		dec: dec,
	}
}

// Transformer returns the underlying transformer, for callers that want
// the primitive tree rather than bytes.
func (s *Serializer) Transformer() *tagmap.Transformer {
	return s.t
}

// Marshal rewrites v into a primitive tree and encodes it.
func (s *Serializer) Marshal(v any) ([]byte, error) {
	node, err := s.t.ToIR(v)
	if err != nil {
		return nil, err
	}
	return s.enc(node)
}

// Unmarshal decodes data into a primitive tree and reconstructs the
// original-shaped value.
func (s *Serializer) Unmarshal(data []byte) (any, error) {
	node, err := s.dec(data)
	if err != nil {
		return nil, err
	}
	return s.t.FromIR(node)
}
