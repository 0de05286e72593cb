// Package tagmap implements the bidirectional rewrite between Go values
// containing registered custom kinds and primitive ir.Node trees.
//
// # Wire convention
//
// Custom values are embedded in the primitive tree through a reversible
// tagging convention. A codec whose primitive form is a string encodes as
// a tagged scalar:
//
//	$uuid:152e4227-6852-4f8e-912d-bd75478c7eaa
//
// a codec whose primitive form is anything else encodes as a tagged
// compound, an object with two reserved keys:
//
//	{"$t": "mytype", "v": ["hello", 3.14, ["world"]]}
//
// and any plain string that happens to begin with the tag marker or the
// escape marker is stored behind one escape marker:
//
//	/$not_a_real_tag
//
// Decoding strips exactly the layer encoding added, so
// FromIR(ToIR(x)) == x for values built from registered kinds,
// unregistered scalars, and arbitrary nestings of maps and slices
// thereof.
//
// # Usage
//
//	reg, err := codec.NewRegistry(codecs.UUID(), codecs.Time())
//	t := tagmap.New(reg)
//	node, err := t.ToIR(value)
//	back, err := t.FromIR(node)
//
// The markers and reserved keys are per-Transformer configuration, so
// differently configured transformers coexist freely; see the Option
// values.
package tagmap

import (
	"regexp"

	"github.com/signadot/tagtree/codec"
)

const (
	DefaultTagMarker    = "$"
	DefaultEscapeMarker = "/"
	DefaultValueKey     = "v"

	// DefaultMaxDepth bounds recursion on both ToIR and FromIR. The
	// transformer has no other defense against pathologically deep
	// input.
	DefaultMaxDepth = 10000
)

// Transformer rewrites Go values to primitive trees and back, dispatching
// custom kinds through its codec registry. A Transformer is immutable
// after New and safe for concurrent use.
type Transformer struct {
	reg *codec.Registry

	tagMarker string
	escMarker string
	typeKey   string
	valueKey  string
	maxDepth  int

	tagPat *regexp.Regexp
}

// Option configures a Transformer at construction.
type Option func(*Transformer)

// WithTagMarker sets the reserved lead marker identifying tagged scalars
// (default "$"). The type key defaults to the tag marker followed by "t".
func WithTagMarker(m string) Option {
	return func(t *Transformer) { t.tagMarker = m }
}

// WithEscapeMarker sets the reserved lead marker protecting literal
// strings that would otherwise parse as tags (default "/").
func WithEscapeMarker(m string) Option {
	return func(t *Transformer) { t.escMarker = m }
}

// WithTypeKey overrides the reserved object key naming a tagged
// compound's codec (default tag marker + "t").
func WithTypeKey(k string) Option {
	return func(t *Transformer) { t.typeKey = k }
}

// WithValueKey overrides the reserved object key holding a tagged
// compound's payload (default "v").
func WithValueKey(k string) Option {
	return func(t *Transformer) { t.valueKey = k }
}

// WithMaxDepth overrides the recursion depth limit.
func WithMaxDepth(n int) Option {
	return func(t *Transformer) { t.maxDepth = n }
}

// New returns a Transformer over reg with the given options applied.
func New(reg *codec.Registry, opts ...Option) *Transformer {
	t := &Transformer{
		reg:       reg,
		tagMarker: DefaultTagMarker,
		escMarker: DefaultEscapeMarker,
		valueKey:  DefaultValueKey,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.typeKey == "" {
		t.typeKey = t.tagMarker + "t"
	}
	t.tagPat = compileTagPattern(t.tagMarker)
	return t
}

// Registry returns the registry the transformer dispatches through.
func (t *Transformer) Registry() *codec.Registry {
	return t.reg
}

// Pair is one ordered mapping entry for Pairs input.
type Pair struct {
	Key any
	Val any
}

// Pairs is an ordered mapping value. ToIR preserves its entry order
// verbatim, where Go maps get canonical sorted-key order. FromIR always
// reconstructs mappings as maps; Pairs is encode-side order control only.
type Pairs []Pair
