package tagmap

import "fmt"

// MarshalError reports a value ToIR could not lower to a primitive tree.
type MarshalError struct {
	Path    string // tree path (e.g. "person.ids[3]")
	Message string
	Err     error
}

func (e *MarshalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError reports a primitive tree FromIR could not reconstruct.
type UnmarshalError struct {
	Path    string
	Message string
	Err     error
}

func (e *UnmarshalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// UnknownCodecError reports a tag naming a codec absent from the
// registry.
type UnknownCodecError struct {
	Name string
	Path string
}

func (e *UnknownCodecError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unknown codec %q at %s", e.Name, e.Path)
	}
	return fmt.Sprintf("unknown codec %q", e.Name)
}

// MalformedTagError reports a string that begins with the tag marker but
// does not match the tag pattern.
type MalformedTagError struct {
	Value string
	Path  string
}

func (e *MalformedTagError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed tag %q at %s", e.Value, e.Path)
	}
	return fmt.Sprintf("malformed tag %q", e.Value)
}

// DepthError reports input nested beyond the transformer's depth limit.
type DepthError struct {
	Path  string
	Limit int
}

func (e *DepthError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("nesting deeper than %d levels at %s", e.Limit, e.Path)
	}
	return fmt.Sprintf("nesting deeper than %d levels", e.Limit)
}
