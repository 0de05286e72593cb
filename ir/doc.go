// Package ir provides the primitive-tree representation shared by the
// tagtree transformer and the interchange encoders.
//
// # Overview
//
// A primitive tree is the restricted value shape a conventional structured
// text format supports natively: objects with string keys, arrays, strings,
// integers, floats, booleans and null. All tagtree operations bottom out in
// ir.Node trees; the transformer rewrites them and the jsonio/yamlio
// packages turn them into and out of bytes.
//
// Unlike a Go map, an ObjectType node keeps its fields in a definite order,
// so a document's key order survives a decode/encode round trip.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromMap orders fields by sorted key; use FromKeyVals to control field
// order explicitly.
//
// # Comparison
//
// Nodes can be compared for equality and total order:
//
//	equal := ir.Compare(a, b) == 0
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
package ir
