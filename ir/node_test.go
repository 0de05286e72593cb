package ir

import "testing"

func TestFromMapSortsFields(t *testing.T) {
	node := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	if node.Type != ObjectType {
		t.Fatalf("expected Object, got %s", node.Type)
	}
	want := []string{"a", "b", "c"}
	if len(node.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(node.Fields))
	}
	for i, k := range want {
		if node.Fields[i].String != k {
			t.Errorf("field %d: expected %q, got %q", i, k, node.Fields[i].String)
		}
	}
}

func TestToMapInvertsFromMap(t *testing.T) {
	m := map[string]*Node{
		"a": FromInt(1),
		"b": FromString("x"),
	}
	got := ToMap(FromMap(m))
	if len(got) != len(m) {
		t.Fatalf("expected %d entries, got %d", len(m), len(got))
	}
	for k, v := range m {
		if Compare(got[k], v) != 0 {
			t.Errorf("key %q: got %#v, want %#v", k, got[k], v)
		}
	}
	if ToMap(FromInt(1)) != nil {
		t.Error("expected nil for non-object node")
	}
}

func TestFromKeyValsKeepsOrder(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("z"), Val: FromInt(1)},
		{Key: FromString("a"), Val: FromInt(2)},
	})
	if node.Fields[0].String != "z" || node.Fields[1].String != "a" {
		t.Errorf("field order not kept: %q, %q", node.Fields[0].String, node.Fields[1].String)
	}
}

func TestGet(t *testing.T) {
	node := FromMap(map[string]*Node{
		"x": FromString("hello"),
	})
	if v := Get(node, "x"); v == nil || v.String != "hello" {
		t.Errorf("expected hello, got %v", v)
	}
	if v := Get(node, "y"); v != nil {
		t.Errorf("expected nil for absent field, got %v", v)
	}
	if v := Get(FromInt(1), "x"); v != nil {
		t.Errorf("expected nil for non-object, got %v", v)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"xs": FromSlice([]*Node{FromInt(1), FromFloat(2.5)}),
	})
	dup := orig.Clone()
	if Compare(orig, dup) != 0 {
		t.Fatalf("clone differs from original")
	}
	dup.Values[0].Values[0] = FromInt(9)
	if Compare(orig, dup) == 0 {
		t.Errorf("mutation of clone visible in original")
	}
}

func TestVisit(t *testing.T) {
	node := FromSlice([]*Node{
		FromInt(1),
		FromSlice([]*Node{FromInt(2)}),
	})
	var pre, post int
	err := node.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 4 || post != 4 {
		t.Errorf("expected 4 pre and post visits, got %d/%d", pre, post)
	}
}
