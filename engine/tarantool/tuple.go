package tarantool

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrUnexpectedResponse is returned when the response from tarantool has unexpected format.
var ErrUnexpectedResponse = errors.New("unexpected response from tarantool")

// tupleFieldCount is the number of fields of a space tuple: key and value.
const tupleFieldCount = 2

// tuple is one {key, value} row of the space.
type tuple struct {
	Key   []byte
	Value []byte
}

// DecodeMsgpack decodes a tuple, ignoring fields past the value.
func (t *tuple) DecodeMsgpack(decoder *msgpack.Decoder) error {
	length, err := decoder.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("failed to decode tuple length: %w", err)
	}

	if length < tupleFieldCount {
		return fmt.Errorf("%w: tuple has %d fields", ErrUnexpectedResponse, length)
	}

	if t.Key, err = decodeBytes(decoder); err != nil {
		return fmt.Errorf("failed to decode key: %w", err)
	}

	if t.Value, err = decodeBytes(decoder); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}

	for range length - tupleFieldCount {
		if err := decoder.Skip(); err != nil {
			return fmt.Errorf("failed to skip field: %w", err)
		}
	}

	return nil
}

// EncodeMsgpack encodes a tuple as {key, value} strings.
func (t tuple) EncodeMsgpack(encoder *msgpack.Encoder) error {
	if err := encoder.EncodeArrayLen(tupleFieldCount); err != nil {
		return fmt.Errorf("failed to encode tuple length: %w", err)
	}

	if err := encoder.EncodeString(string(t.Key)); err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}

	if err := encoder.EncodeString(string(t.Value)); err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	return nil
}

// decodeBytes accepts both msgpack str and bin fields.
func decodeBytes(decoder *msgpack.Decoder) ([]byte, error) {
	value, err := decoder.DecodeInterface()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil
	default:
		return []byte(fmt.Sprint(v)), nil
	}
}
