// Package debug provides env-var gated trace flags for tagtree
// internals. Flags are read once at process start:
//
//	TAGTREE_DEBUG_ENCODE=1  trace codec dispatch while encoding
//	TAGTREE_DEBUG_DECODE=1  trace tag dispatch while decoding
package debug

import (
	"io"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Decode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("TAGTREE_DEBUG_ENCODE")
	d.Decode = boolEnv("TAGTREE_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}

func Decode() bool {
	return d.Decode
}

func Writer() io.Writer {
	return os.Stderr
}
