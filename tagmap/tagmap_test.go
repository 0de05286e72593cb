package tagmap

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/signadot/tagtree/codec"
	"github.com/signadot/tagtree/codecs"
)

var (
	testUID  = uuid.MustParse("152e4227-6852-4f8e-912d-bd75478c7eaa")
	testTime = time.Date(2019, 2, 3, 1, 23, 45, 12300000, time.UTC)

	// testTime in the wire body form the dt codec produces
	testTimeBody = "2019-02-03T01:23:45.0123Z"
)

type myType struct {
	A, B, C any
}

func myTypeCodec() codec.Codec {
	return codec.Of[myType]("mytype",
		func(m myType) (any, error) {
			return []any{m.A, m.B, m.C}, nil
		},
		func(p any) (myType, error) {
			vs, ok := p.([]any)
			if !ok || len(vs) != 3 {
				return myType{}, fmt.Errorf("expected 3-element payload, got %v", p)
			}
			return myType{A: vs[0], B: vs[1], C: vs[2]}, nil
		})
}

// mark is a codec whose value is a pure marker: encode has no body.
type mark struct{}

func markCodec() codec.Codec {
	return codec.Of[mark]("mark",
		func(mark) (any, error) { return nil, nil },
		func(p any) (mark, error) {
			if p != nil {
				return mark{}, fmt.Errorf("unexpected body %v", p)
			}
			return mark{}, nil
		})
}

// point's codec encodes to a non-string primitive; being comparable it
// can also appear as a mapping key, where that is unsupported.
type point struct {
	X, Y int64
}

func pointCodec() codec.Codec {
	return codec.Of[point]("pt",
		func(p point) (any, error) { return []any{p.X, p.Y}, nil },
		func(p any) (point, error) {
			vs, ok := p.([]any)
			if !ok || len(vs) != 2 {
				return point{}, fmt.Errorf("expected 2-element payload, got %v", p)
			}
			x, xOK := vs[0].(int64)
			y, yOK := vs[1].(int64)
			if !xOK || !yOK {
				return point{}, fmt.Errorf("expected int coordinates, got %v", vs)
			}
			return point{X: x, Y: y}, nil
		})
}

// rawTag's codec emits a string that itself collides with the tag
// syntax, exercising recursive escaping of codec primitives.
type rawTag struct{}

func rawTagCodec() codec.Codec {
	return codec.Of[rawTag]("raw",
		func(rawTag) (any, error) { return "$inner", nil },
		func(p any) (rawTag, error) { return rawTag{}, nil })
}

func testRegistry(t *testing.T, extra ...codec.Codec) *codec.Registry {
	t.Helper()
	cs := append([]codec.Codec{
		codecs.UUID(),
		codecs.Time(),
		myTypeCodec(),
		markCodec(),
		pointCodec(),
	}, extra...)
	reg, err := codec.NewRegistry(cs...)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}
