package codec

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func strCodec(name string) Codec {
	return Of[time.Duration](name,
		func(d time.Duration) (any, error) { return d.String(), nil },
		func(p any) (time.Duration, error) { return time.ParseDuration(p.(string)) },
	)
}

func TestRegistryLookups(t *testing.T) {
	reg, err := NewRegistry(strCodec("dur"))
	if err != nil {
		t.Fatal(err)
	}
	c, ok := reg.ByKind(reflect.TypeFor[time.Duration]())
	if !ok {
		t.Fatal("expected dur codec by kind")
	}
	if c.Name != "dur" {
		t.Errorf("expected name dur, got %q", c.Name)
	}
	if _, ok := reg.ByKind(reflect.TypeFor[int64]()); ok {
		t.Error("int64 should not match time.Duration codec: kind match must be exact")
	}
	if _, ok := reg.ByName("dur"); !ok {
		t.Error("expected dur codec by name")
	}
	if _, ok := reg.ByName("nope"); ok {
		t.Error("unexpected codec for unregistered name")
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	other := Of[int32]("dur",
		func(v int32) (any, error) { return int64(v), nil },
		func(p any) (int32, error) { return int32(p.(int64)), nil },
	)
	_, err := NewRegistry(strCodec("dur"), other)
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateNameError, got %T", err)
	}
	if dup.Name != "dur" {
		t.Errorf("expected name dur, got %q", dup.Name)
	}
}

func TestRegistryDuplicateKind(t *testing.T) {
	_, err := NewRegistry(strCodec("dur"), strCodec("dur2"))
	if err == nil {
		t.Fatal("expected duplicate kind error")
	}
	var dup *DuplicateKindError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateKindError, got %T", err)
	}
	if dup.Kind != reflect.TypeFor[time.Duration]() {
		t.Errorf("expected time.Duration kind, got %s", dup.Kind)
	}
}

func TestOfKind(t *testing.T) {
	c := strCodec("dur")
	if c.Kind != reflect.TypeFor[time.Duration]() {
		t.Errorf("expected time.Duration, got %s", c.Kind)
	}
	p, err := c.Encode(90 * time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if p != "1h30m0s" {
		t.Errorf("expected 1h30m0s, got %v", p)
	}
	v, err := c.Decode("1h30m0s")
	if err != nil {
		t.Fatal(err)
	}
	if v != 90*time.Minute {
		t.Errorf("expected 90m, got %v", v)
	}
}

func TestCodecsOrder(t *testing.T) {
	reg := MustRegistry(strCodec("dur"))
	cs := reg.Codecs()
	if len(cs) != 1 || cs[0].Name != "dur" {
		t.Errorf("unexpected codecs %v", cs)
	}
}
