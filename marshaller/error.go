package marshaller

import (
	"fmt"
)

// Format names the encoding a marshaller produces.
type Format string

const (
	// FormatYAML is used for command output.
	FormatYAML Format = "yaml"
	// FormatMsgpack is used for engine records.
	FormatMsgpack Format = "msgpack"
)

// MarshalError is returned when a value cannot be encoded.
type MarshalError struct {
	Format Format
	parent error
}

func errMarshal(format Format, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{Format: format, parent: parent}
}

func (e MarshalError) Unwrap() error {
	return e.parent
}

func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to encode %s: %s", e.Format, e.parent)
}

// UnmarshalError is returned when data cannot be decoded, e.g. a corrupted
// engine record.
type UnmarshalError struct {
	Format Format
	parent error
}

func errUnmarshal(format Format, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{Format: format, parent: parent}
}

func (e UnmarshalError) Unwrap() error {
	return e.parent
}

func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to decode %s: %s", e.Format, e.parent)
}
