package codecs

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/signadot/tagtree/codec"
)

func TestUUID(t *testing.T) {
	c := UUID()
	u := uuid.MustParse("152e4227-6852-4f8e-912d-bd75478c7eaa")
	p, err := c.Encode(u)
	if err != nil {
		t.Fatal(err)
	}
	if p != "152e4227-6852-4f8e-912d-bd75478c7eaa" {
		t.Errorf("unexpected body %v", p)
	}
	v, err := c.Decode(p)
	if err != nil {
		t.Fatal(err)
	}
	if v != u {
		t.Errorf("got %v, want %v", v, u)
	}
	if _, err := c.Decode("nope"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := c.Decode(42); err == nil {
		t.Error("expected body type error")
	}
}

func TestTime(t *testing.T) {
	c := Time()
	in := time.Date(2019, 2, 3, 1, 23, 45, 12300000, time.UTC)
	p, err := c.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if p != "2019-02-03T01:23:45.0123Z" {
		t.Errorf("unexpected body %v", p)
	}
	v, err := c.Decode(p)
	if err != nil {
		t.Fatal(err)
	}
	if !v.(time.Time).Equal(in) {
		t.Errorf("got %v, want %v", v, in)
	}
	if _, err := c.Decode("not a time"); err == nil {
		t.Error("expected parse error")
	}
}

func TestDuration(t *testing.T) {
	c := Duration()
	p, err := c.Encode(90 * time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if p != "1h30m0s" {
		t.Errorf("unexpected body %v", p)
	}
	v, err := c.Decode(p)
	if err != nil {
		t.Fatal(err)
	}
	if v != 90*time.Minute {
		t.Errorf("got %v, want %v", v, 90*time.Minute)
	}
}

func TestBinary(t *testing.T) {
	c := Binary()
	p, err := c.Encode([]byte("hi"))
	if err != nil {
		t.Fatal(err)
	}
	if p != "aGk=" {
		t.Errorf("unexpected body %v", p)
	}
	v, err := c.Decode(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(v.([]byte)) != "hi" {
		t.Errorf("got %q, want %q", v, "hi")
	}
	if _, err := c.Decode("!!!"); err == nil {
		t.Error("expected base64 error")
	}
}

func TestAllRegisters(t *testing.T) {
	reg, err := codec.NewRegistry(All()...)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"uuid", "dt", "dur", "bin"} {
		if _, ok := reg.ByName(name); !ok {
			t.Errorf("missing codec %q", name)
		}
	}
}
