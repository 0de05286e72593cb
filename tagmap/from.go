package tagmap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/tagtree/debug"
	"github.com/signadot/tagtree/ir"
)

// FromIR reconstructs the value a primitive tree encodes. Tagged scalars
// and tagged compounds dispatch through the registry by name, escaped
// strings lose exactly one escape marker, and remaining primitives map
// onto Go values: objects become map[string]any (map[any]any when a key
// decodes to a non-string), arrays []any, integers int64.
//
// A single malformed or unresolvable tag anywhere in the tree fails the
// whole decode; there is no partial result.
func (t *Transformer) FromIR(node *ir.Node) (any, error) {
	return t.fromIR(node, "", 0)
}

func (t *Transformer) fromIR(node *ir.Node, path string, depth int) (any, error) {
	if node == nil {
		return nil, &UnmarshalError{Path: path, Message: "nil node"}
	}
	if depth > t.maxDepth {
		return nil, &DepthError{Path: path, Limit: t.maxDepth}
	}
	switch node.Type {
	case ir.ObjectType:
		if tagNode := ir.Get(node, t.typeKey); tagNode != nil {
			return t.compoundFromIR(node, tagNode, path, depth)
		}
		return t.objectFromIR(node, path, depth)
	case ir.ArrayType:
		vs := make([]any, len(node.Values))
		for i, vn := range node.Values {
			v, err := t.fromIR(vn, fmt.Sprintf("%s[%d]", path, i), depth+1)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return vs, nil
	case ir.StringType:
		return t.stringFromIR(node.String, path)
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return nil, &UnmarshalError{Path: path, Message: "number node with no value"}
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	}
	return nil, &UnmarshalError{
		Path:    path,
		Message: fmt.Sprintf("unexpected node type %s", node.Type),
	}
}

// compoundFromIR decodes a tagged compound: an object carrying the
// reserved type key. The payload under the value key is reconstructed
// first, then handed to the named codec.
func (t *Transformer) compoundFromIR(node, tagNode *ir.Node, path string, depth int) (any, error) {
	if tagNode.Type != ir.StringType {
		return nil, &UnmarshalError{
			Path:    path,
			Message: fmt.Sprintf("type key %q must be a string, got %s", t.typeKey, tagNode.Type),
		}
	}
	c, ok := t.reg.ByName(tagNode.String)
	if !ok {
		return nil, &UnknownCodecError{Name: tagNode.String, Path: path}
	}
	if debug.Decode() {
		fmt.Fprintf(debug.Writer(), "tagmap: decode compound via %q at %q\n", c.Name, path)
	}
	valNode := ir.Get(node, t.valueKey)
	if valNode == nil {
		return nil, &UnmarshalError{
			Path:    path,
			Message: fmt.Sprintf("tagged compound %q has no value key %q", c.Name, t.valueKey),
		}
	}
	payload, err := t.fromIR(valNode, childPath(path, t.valueKey), depth+1)
	if err != nil {
		return nil, err
	}
	res, err := c.Decode(payload)
	if err != nil {
		return nil, &UnmarshalError{
			Path:    path,
			Message: fmt.Sprintf("codec %q decode: %v", c.Name, err),
			Err:     err,
		}
	}
	return res, nil
}

func (t *Transformer) objectFromIR(node *ir.Node, path string, depth int) (any, error) {
	keys := make([]any, len(node.Fields))
	vals := make([]any, len(node.Values))
	stringKeys := true
	for i := range node.Fields {
		field := node.Fields[i]
		if field.Type != ir.StringType {
			return nil, &UnmarshalError{
				Path:    path,
				Message: fmt.Sprintf("object key must be a string, got %s", field.Type),
			}
		}
		key, err := t.keyFromString(field.String, path)
		if err != nil {
			return nil, err
		}
		if _, ok := key.(string); !ok {
			// a decoded key becomes a map[any]any key, so it must hash
			if rt := reflect.TypeOf(key); rt != nil && !rt.Comparable() {
				return nil, &UnmarshalError{
					Path:    path,
					Message: fmt.Sprintf("mapping key %q decodes to unhashable type %T", field.String, key),
				}
			}
			stringKeys = false
		}
		keys[i] = key

		val, err := t.fromIR(node.Values[i], childPath(path, field.String), depth+1)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	if stringKeys {
		m := make(map[string]any, len(keys))
		for i := range keys {
			m[keys[i].(string)] = vals[i]
		}
		return m, nil
	}
	m := make(map[any]any, len(keys))
	for i := range keys {
		m[keys[i]] = vals[i]
	}
	return m, nil
}

// stringFromIR applies the inverse scalar rule: strip one escape marker,
// or parse and dispatch a tag, or pass the string through.
func (t *Transformer) stringFromIR(s, path string) (any, error) {
	if strings.HasPrefix(s, t.escMarker) {
		return s[len(t.escMarker):], nil
	}
	if strings.HasPrefix(s, t.tagMarker) {
		name, body, hasBody, ok := t.parseTag(s)
		if !ok {
			return nil, &MalformedTagError{Value: s, Path: path}
		}
		c, ok := t.reg.ByName(name)
		if !ok {
			return nil, &UnknownCodecError{Name: name, Path: path}
		}
		if debug.Decode() {
			fmt.Fprintf(debug.Writer(), "tagmap: decode scalar via %q at %q\n", c.Name, path)
		}
		var payload any
		if hasBody {
			payload = body
		}
		res, err := c.Decode(payload)
		if err != nil {
			return nil, &UnmarshalError{
				Path:    path,
				Message: fmt.Sprintf("codec %q decode: %v", c.Name, err),
				Err:     err,
			}
		}
		return res, nil
	}
	return s, nil
}

// keyFromString is the inverse key rule; unlike values, a decoded key may
// be any registered kind, which is why decoded mappings fall back to
// map[any]any.
func (t *Transformer) keyFromString(key, path string) (any, error) {
	if strings.HasPrefix(key, t.escMarker) {
		return key[len(t.escMarker):], nil
	}
	if strings.HasPrefix(key, t.tagMarker) {
		return t.stringFromIR(key, childPath(path, key))
	}
	return key, nil
}
