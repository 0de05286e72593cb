// Package yamlio encodes primitive trees as YAML text and back,
// preserving mapping key order in both directions. It is one of the
// opaque encoder/decoder pairs a tagtree.Serializer composes with.
package yamlio

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/tagtree/ir"
)

// Encode renders node as a YAML document. Mapping keys are written in
// node order.
func Encode(node *ir.Node) ([]byte, error) {
	v, err := toAny(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func toAny(node *ir.Node) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("nil node")
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return nil, fmt.Errorf("number node with no value")
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		vs := make([]any, len(node.Values))
		for i, vn := range node.Values {
			v, err := toAny(vn)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return vs, nil
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			field := node.Fields[i]
			if field.Type != ir.StringType {
				return nil, fmt.Errorf("mapping key must be a string, got %s", field.Type)
			}
			v, err := toAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			ms[i] = yaml.MapItem{Key: field.String, Value: v}
		}
		return ms, nil
	}
	return nil, fmt.Errorf("unexpected node type %s", node.Type)
}

// Decode parses a YAML document into a primitive tree. Mappings decode
// as ordered MapSlices so key order survives.
func Decode(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromAny(v)
}

func fromAny(v any) (*ir.Node, error) {
	switch vv := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(vv), nil
	case string:
		return ir.FromString(vv), nil
	case int:
		return ir.FromInt(int64(vv)), nil
	case int64:
		return ir.FromInt(vv), nil
	case uint64:
		return ir.FromInt(int64(vv)), nil
	case float32:
		return ir.FromFloat(float64(vv)), nil
	case float64:
		return ir.FromFloat(vv), nil
	case []any:
		vs := make([]*ir.Node, len(vv))
		for i, elem := range vv {
			n, err := fromAny(elem)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(vv))
		for i := range vv {
			key, ok := vv[i].Key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key must be a string, got %T", vv[i].Key)
			}
			n, err := fromAny(vv[i].Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: ir.FromString(key), Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	}
	return nil, fmt.Errorf("unsupported YAML value type %T", v)
}
