package tagmap

import (
	"fmt"
	"strings"

	"github.com/signadot/tagtree/ir"
)

// TagKind classifies what Scan found at a tree position.
type TagKind int

const (
	// TagScalar is a tag-marker-prefixed string, "$name" or "$name:body".
	TagScalar TagKind = iota
	// TagCompound is an object carrying the reserved type key.
	TagCompound
	// TagEscaped is an escape-marker-prefixed literal string.
	TagEscaped
)

func (k TagKind) String() string {
	switch k {
	case TagScalar:
		return "scalar"
	case TagCompound:
		return "compound"
	case TagEscaped:
		return "escaped"
	}
	return "<unknown tag kind>"
}

// TagRef is one occurrence of tagging syntax in a primitive tree.
type TagRef struct {
	Path string
	Kind TagKind

	// Name is the referenced codec name; empty for escaped strings and
	// malformed tags.
	Name string

	// HasBody reports whether a tagged scalar carried a body segment.
	HasBody bool

	// Malformed marks a marker-prefixed string that does not match the
	// tag pattern, or a compound whose type key is not a string.
	Malformed bool
}

// Scan walks a primitive tree and reports every place the tagging
// convention appears, without decoding anything and without consulting
// the registry. Tag bodies and compound payloads are scanned too, since
// encoding rewrites codec primitives recursively.
func (t *Transformer) Scan(node *ir.Node) []TagRef {
	var refs []TagRef
	t.scan(node, "", &refs)
	return refs
}

func (t *Transformer) scan(node *ir.Node, path string, refs *[]TagRef) {
	if node == nil {
		return
	}
	switch node.Type {
	case ir.StringType:
		if strings.HasPrefix(node.String, t.escMarker) {
			*refs = append(*refs, TagRef{Path: path, Kind: TagEscaped})
			return
		}
		if strings.HasPrefix(node.String, t.tagMarker) {
			name, _, hasBody, ok := t.parseTag(node.String)
			*refs = append(*refs, TagRef{
				Path:      path,
				Kind:      TagScalar,
				Name:      name,
				HasBody:   hasBody,
				Malformed: !ok,
			})
		}
	case ir.ObjectType:
		if tagNode := ir.Get(node, t.typeKey); tagNode != nil {
			ref := TagRef{Path: path, Kind: TagCompound}
			if tagNode.Type == ir.StringType {
				ref.Name = tagNode.String
			} else {
				ref.Malformed = true
			}
			*refs = append(*refs, ref)
			if valNode := ir.Get(node, t.valueKey); valNode != nil {
				t.scan(valNode, childPath(path, t.valueKey), refs)
			}
			return
		}
		for i := range node.Fields {
			field := node.Fields[i]
			if field.Type == ir.StringType {
				t.scanKey(field.String, path, refs)
			}
			t.scan(node.Values[i], childPath(path, field.String), refs)
		}
	case ir.ArrayType:
		for i, v := range node.Values {
			t.scan(v, fmt.Sprintf("%s[%d]", path, i), refs)
		}
	}
}

func (t *Transformer) scanKey(key, path string, refs *[]TagRef) {
	p := childPath(path, key)
	if strings.HasPrefix(key, t.escMarker) {
		*refs = append(*refs, TagRef{Path: p, Kind: TagEscaped})
		return
	}
	if strings.HasPrefix(key, t.tagMarker) {
		name, _, hasBody, ok := t.parseTag(key)
		*refs = append(*refs, TagRef{
			Path:      p,
			Kind:      TagScalar,
			Name:      name,
			HasBody:   hasBody,
			Malformed: !ok,
		})
	}
}
