package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{name: "nil nodes", a: nil, b: nil, want: 0},
		{name: "nil left", a: nil, b: Null(), want: -1},
		{name: "equal strings", a: FromString("x"), b: FromString("x"), want: 0},
		{name: "string order", a: FromString("a"), b: FromString("b"), want: -1},
		{name: "equal ints", a: FromInt(3), b: FromInt(3), want: 0},
		{name: "int order", a: FromInt(4), b: FromInt(3), want: 1},
		{name: "int before float", a: FromInt(3), b: FromFloat(3), want: -1},
		{name: "bool order", a: FromBool(false), b: FromBool(true), want: -1},
		{name: "null before bool", a: Null(), b: FromBool(false), want: -1},
		{
			name: "equal arrays",
			a:    FromSlice([]*Node{FromInt(1), FromString("x")}),
			b:    FromSlice([]*Node{FromInt(1), FromString("x")}),
			want: 0,
		},
		{
			name: "array length order",
			a:    FromSlice([]*Node{FromInt(1)}),
			b:    FromSlice([]*Node{FromInt(1), FromInt(2)}),
			want: -1,
		},
		{
			name: "equal objects",
			a:    FromMap(map[string]*Node{"a": FromInt(1), "b": FromInt(2)}),
			b:    FromMap(map[string]*Node{"b": FromInt(2), "a": FromInt(1)}),
			want: 0,
		},
		{
			name: "object field order significant",
			a: FromKeyVals([]KeyVal{
				{Key: FromString("b"), Val: FromInt(2)},
				{Key: FromString("a"), Val: FromInt(1)},
			}),
			b: FromKeyVals([]KeyVal{
				{Key: FromString("a"), Val: FromInt(1)},
				{Key: FromString("b"), Val: FromInt(2)},
			}),
			want: 1,
		},
		{
			name: "object value order",
			a:    FromMap(map[string]*Node{"a": FromInt(1)}),
			b:    FromMap(map[string]*Node{"a": FromInt(2)}),
			want: -1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("Compare reversed = %d, want %d", got, -tc.want)
			}
		})
	}
}
