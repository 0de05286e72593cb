package tagmap

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/signadot/tagtree/codec"
	"github.com/signadot/tagtree/debug"
	"github.com/signadot/tagtree/ir"
)

// ToIR lowers v to a primitive tree. Registered kinds become tagged
// scalars or tagged compounds, strings colliding with the tag syntax are
// escaped, and maps, slices and plain scalars map onto their ir
// counterparts. Mappings from Go maps get sorted field order; use Pairs
// for explicit field order.
func (t *Transformer) ToIR(v any) (*ir.Node, error) {
	w := &encWalker{t: t, visited: make(map[uintptr]string)}
	return w.toIR(v, "", 0)
}

// encWalker carries per-call state: visited tracks map/slice/pointer
// addresses on the current branch to reject cyclic values instead of
// exhausting the stack on them.
type encWalker struct {
	t       *Transformer
	visited map[uintptr]string
}

func (w *encWalker) toIR(v any, path string, depth int) (*ir.Node, error) {
	if depth > w.t.maxDepth {
		return nil, &DepthError{Path: path, Limit: w.t.maxDepth}
	}
	switch vv := v.(type) {
	case nil:
		return ir.Null(), nil
	case Pairs:
		return w.pairsToIR(vv, path, depth)
	case map[string]any:
		return w.mapToIR(reflect.ValueOf(vv), path, depth)
	case []any:
		return w.sliceToIR(reflect.ValueOf(vv), path, depth)
	// The integer fast path: predeclared integer types never consult
	// the registry, so an integer-like codec cannot shadow plain
	// numbers. Named types with integer underlying kinds still
	// dispatch below.
	case int:
		return ir.FromInt(int64(vv)), nil
	case int8:
		return ir.FromInt(int64(vv)), nil
	case int16:
		return ir.FromInt(int64(vv)), nil
	case int32:
		return ir.FromInt(int64(vv)), nil
	case int64:
		return ir.FromInt(vv), nil
	case uint:
		return ir.FromInt(int64(vv)), nil
	case uint8:
		return ir.FromInt(int64(vv)), nil
	case uint16:
		return ir.FromInt(int64(vv)), nil
	case uint32:
		return ir.FromInt(int64(vv)), nil
	case uint64:
		// may overflow for very large uint64, the IR carries int64
		return ir.FromInt(int64(vv)), nil
	case uintptr:
		return ir.FromInt(int64(vv)), nil
	}

	// registered kinds dispatch on the exact dynamic type
	if c, ok := w.t.reg.ByKind(reflect.TypeOf(v)); ok {
		return w.codecToIR(c, v, path, depth)
	}

	switch vv := v.(type) {
	case string:
		return w.t.stringToIR(vv), nil
	case bool:
		return ir.FromBool(vv), nil
	case float64:
		return ir.FromFloat(vv), nil
	case float32:
		return ir.FromFloat(float64(vv)), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		release, err := w.visit(rv.Pointer(), path)
		if err != nil {
			return nil, err
		}
		defer release()
		return w.toIR(rv.Elem().Interface(), path, depth+1)
	case reflect.Map:
		return w.mapToIR(rv, path, depth)
	case reflect.Slice, reflect.Array:
		return w.sliceToIR(rv, path, depth)
	}
	return nil, &MarshalError{
		Path:    path,
		Message: fmt.Sprintf("unsupported type %T: no codec registered", v),
	}
}

// codecToIR lowers a registered value: a nil primitive becomes the
// body-less tagged scalar, a string primitive the tagged scalar form, and
// anything else the tagged compound object. The primitive is itself
// rewritten recursively first, so codecs may return values containing
// further registered kinds or collision-prone strings.
func (w *encWalker) codecToIR(c *codec.Codec, v any, path string, depth int) (*ir.Node, error) {
	if debug.Encode() {
		fmt.Fprintf(debug.Writer(), "tagmap: encode %T via %q at %q\n", v, c.Name, path)
	}
	p, err := c.Encode(v)
	if err != nil {
		return nil, &MarshalError{
			Path:    path,
			Message: fmt.Sprintf("codec %q encode: %v", c.Name, err),
			Err:     err,
		}
	}
	if p == nil {
		return ir.FromString(w.t.tagMarker + c.Name), nil
	}
	node, err := w.toIR(p, path, depth+1)
	if err != nil {
		return nil, err
	}
	if node.Type == ir.StringType {
		return ir.FromString(w.t.tagMarker + c.Name + ":" + node.String), nil
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString(w.t.typeKey), Val: ir.FromString(c.Name)},
		{Key: ir.FromString(w.t.valueKey), Val: node},
	}), nil
}

func (t *Transformer) stringToIR(s string) *ir.Node {
	if strings.HasPrefix(s, t.tagMarker) || strings.HasPrefix(s, t.escMarker) {
		return ir.FromString(t.escMarker + s)
	}
	return ir.FromString(s)
}

// keyToString applies the key-escape rule: mapping keys must end up as
// strings, so marker collisions are escaped and registered kinds are
// forced into tagged-scalar form. A key codec whose primitive is not a
// string cannot be represented and is rejected.
func (w *encWalker) keyToString(k any, path string) (string, error) {
	if s, ok := k.(string); ok {
		if strings.HasPrefix(s, w.t.tagMarker) || strings.HasPrefix(s, w.t.escMarker) {
			return w.t.escMarker + s, nil
		}
	}
	if rt := reflect.TypeOf(k); rt != nil {
		if c, ok := w.t.reg.ByKind(rt); ok {
			p, err := c.Encode(k)
			if err != nil {
				return "", &MarshalError{
					Path:    path,
					Message: fmt.Sprintf("codec %q encode of mapping key: %v", c.Name, err),
					Err:     err,
				}
			}
			if p == nil {
				return w.t.tagMarker + c.Name, nil
			}
			s, ok := p.(string)
			if !ok {
				return "", &MarshalError{
					Path:    path,
					Message: fmt.Sprintf("codec %q used on a mapping key must encode to a string, got %T", c.Name, p),
				}
			}
			return w.t.tagMarker + c.Name + ":" + s, nil
		}
	}
	s, ok := k.(string)
	if !ok {
		return "", &MarshalError{
			Path:    path,
			Message: fmt.Sprintf("unsupported mapping key type %T", k),
		}
	}
	return s, nil
}

func (w *encWalker) pairsToIR(p Pairs, path string, depth int) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, len(p))
	for i := range p {
		key, err := w.keyToString(p[i].Key, path)
		if err != nil {
			return nil, err
		}
		node, err := w.toIR(p[i].Val, childPath(path, key), depth+1)
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: ir.FromString(key), Val: node}
	}
	return ir.FromKeyVals(kvs), nil
}

func (w *encWalker) mapToIR(rv reflect.Value, path string, depth int) (*ir.Node, error) {
	if rv.IsNil() {
		return ir.Null(), nil
	}
	release, err := w.visit(rv.Pointer(), path)
	if err != nil {
		return nil, err
	}
	defer release()

	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := w.keyToString(iter.Key().Interface(), path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key: key, val: iter.Value()})
	}
	// canonical field order: sorted by encoded key
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	kvs := make([]ir.KeyVal, len(entries))
	for i := range entries {
		node, err := w.toIR(entries[i].val.Interface(), childPath(path, entries[i].key), depth+1)
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: ir.FromString(entries[i].key), Val: node}
	}
	return ir.FromKeyVals(kvs), nil
}

func (w *encWalker) sliceToIR(rv reflect.Value, path string, depth int) (*ir.Node, error) {
	if rv.Kind() == reflect.Slice && !rv.IsNil() {
		release, err := w.visit(rv.Pointer(), path)
		if err != nil {
			return nil, err
		}
		defer release()
	}
	n := rv.Len()
	vs := make([]*ir.Node, n)
	for i := 0; i < n; i++ {
		node, err := w.toIR(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i), depth+1)
		if err != nil {
			return nil, err
		}
		vs[i] = node
	}
	return ir.FromSlice(vs), nil
}

func (w *encWalker) visit(ptr uintptr, path string) (func(), error) {
	if prev, seen := w.visited[ptr]; seen {
		return nil, &MarshalError{
			Path:    path,
			Message: fmt.Sprintf("circular reference: value also reached at %q", prev),
		}
	}
	w.visited[ptr] = path
	return func() { delete(w.visited, ptr) }, nil
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
