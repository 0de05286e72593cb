package codec

import (
	"fmt"
	"reflect"
)

// DuplicateNameError reports two codecs registered under the same name.
type DuplicateNameError struct {
	Name          string
	First, Second *Codec
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate codec name %q: kinds %s and %s", e.Name, e.First.Kind, e.Second.Kind)
}

// DuplicateKindError reports two codecs registered for the same kind.
type DuplicateKindError struct {
	Kind          reflect.Type
	First, Second *Codec
}

func (e *DuplicateKindError) Error() string {
	return fmt.Sprintf("duplicate codec kind %s: names %q and %q", e.Kind, e.First.Name, e.Second.Name)
}
