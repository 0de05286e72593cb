// Package jsonio encodes primitive trees as JSON text and back,
// preserving object field order in both directions. It is one of the
// opaque encoder/decoder pairs a tagtree.Serializer composes with.
package jsonio

import (
	"fmt"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/signadot/tagtree/ir"
)

var cfg = jsoniter.ConfigDefault

// Encode renders node as compact JSON. Fields are written in node order.
func Encode(node *ir.Node) ([]byte, error) {
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)
	if err := encode(node, stream); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

func encode(node *ir.Node, stream *jsoniter.Stream) error {
	if node == nil {
		return fmt.Errorf("nil node")
	}
	switch node.Type {
	case ir.NullType:
		stream.WriteNil()
	case ir.BoolType:
		stream.WriteBool(node.Bool)
	case ir.NumberType:
		if node.Int64 != nil {
			stream.WriteInt64(*node.Int64)
			break
		}
		if node.Float64 == nil {
			return fmt.Errorf("number node with no value")
		}
		return encodeFloat(*node.Float64, stream)
	case ir.StringType:
		stream.WriteString(node.String)
	case ir.ArrayType:
		stream.WriteArrayStart()
		for i, v := range node.Values {
			if i > 0 {
				stream.WriteMore()
			}
			if err := encode(v, stream); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case ir.ObjectType:
		stream.WriteObjectStart()
		for i := range node.Fields {
			field := node.Fields[i]
			if field.Type != ir.StringType {
				return fmt.Errorf("object key must be a string, got %s", field.Type)
			}
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(field.String)
			if err := encode(node.Values[i], stream); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	default:
		return fmt.Errorf("unexpected node type %s", node.Type)
	}
	return nil
}

// encodeFloat keeps integral floats recognizable as floats on the wire
// ("3.0", not "3"), so a decode does not turn them into integer nodes.
// At and above 2^53 the exponent form is used instead; it re-parses as a
// float just the same.
func encodeFloat(f float64, stream *jsoniter.Stream) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("cannot encode %v as JSON", f)
	}
	if math.Trunc(f) == f {
		if math.Abs(f) < 1<<53 {
			stream.WriteRaw(strconv.FormatFloat(f, 'f', 1, 64))
		} else {
			stream.WriteRaw(strconv.FormatFloat(f, 'e', -1, 64))
		}
		return nil
	}
	stream.WriteFloat64(f)
	return nil
}

// Decode parses JSON text into a primitive tree. Object fields keep
// document order; integers become Int64 nodes, other numbers Float64.
func Decode(data []byte) (*ir.Node, error) {
	iter := cfg.BorrowIterator(data)
	defer cfg.ReturnIterator(iter)
	node, err := decode(iter)
	if err != nil {
		return nil, err
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, iter.Error
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, fmt.Errorf("trailing data after top-level value")
	}
	return node, nil
}

func decode(iter *jsoniter.Iterator) (*ir.Node, error) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return ir.Null(), nil
	case jsoniter.BoolValue:
		return ir.FromBool(iter.ReadBool()), nil
	case jsoniter.NumberValue:
		num := iter.ReadNumber()
		if i, err := num.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := num.Float64()
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	case jsoniter.StringValue:
		return ir.FromString(iter.ReadString()), nil
	case jsoniter.ArrayValue:
		var (
			vs    []*ir.Node
			cbErr error
		)
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			n, err := decode(it)
			if err != nil {
				cbErr = err
				return false
			}
			vs = append(vs, n)
			return true
		})
		if cbErr != nil {
			return nil, cbErr
		}
		if iter.Error != nil && iter.Error != io.EOF {
			return nil, iter.Error
		}
		return ir.FromSlice(vs), nil
	case jsoniter.ObjectValue:
		var (
			kvs   []ir.KeyVal
			cbErr error
		)
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			n, err := decode(it)
			if err != nil {
				cbErr = err
				return false
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(field), Val: n})
			return true
		})
		if cbErr != nil {
			return nil, cbErr
		}
		if iter.Error != nil && iter.Error != io.EOF {
			return nil, iter.Error
		}
		return ir.FromKeyVals(kvs), nil
	default:
		if iter.Error != nil && iter.Error != io.EOF {
			return nil, iter.Error
		}
		return nil, fmt.Errorf("invalid JSON input")
	}
}
