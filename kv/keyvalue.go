package kv

import (
	"github.com/tarantool/go-option"

	"github.com/kvbrowse/kvcore/keycodec"
)

// DefaultDelimiter joins container elements in value renderings.
const DefaultDelimiter = " "

// KeyValue pairs a key with an optional value.
type KeyValue struct {
	key   Key
	value option.Generic[Value]
}

// NewKeyValue pairs key with value.
func NewKeyValue(key Key, value Value) KeyValue {
	return KeyValue{key: key, value: option.Some(value)}
}

// KeyOnly returns a pair without a value.
func KeyOnly(key Key) KeyValue {
	return KeyValue{key: key, value: option.None[Value]()}
}

// Key returns the key.
func (p KeyValue) Key() Key {
	return p.key
}

// Value returns the optional value.
func (p KeyValue) Value() option.Generic[Value] {
	return p.value
}

// WithKey returns a copy of the pair with another key.
func (p KeyValue) WithKey(key Key) KeyValue {
	p.key = key
	return p
}

// WithValue returns a copy of the pair holding value.
func (p KeyValue) WithValue(value Value) KeyValue {
	p.value = option.Some(value)
	return p
}

// Type returns the value type, Null when there is no value.
func (p KeyValue) Type() Type {
	value, ok := p.value.Get()
	if !ok {
		return TypeNull
	}

	return value.Type()
}

// ValueString renders the value for display. A rendering holding control
// bytes is shown as hex.
func (p KeyValue) ValueString() string {
	data := p.value.UnwrapOr(Null()).String(DefaultDelimiter)
	if keycodec.IsBinary([]byte(data)) {
		return keycodec.Hex([]byte(data))
	}

	return data
}

// ValueForCommandLine renders the value as command arguments.
func (p KeyValue) ValueForCommandLine() string {
	return p.value.UnwrapOr(Null()).ForCommandLine(DefaultDelimiter)
}

// EqualsKey compares key bytes only.
func (p KeyValue) EqualsKey(key Key) bool {
	return p.key.EqualsKey(key)
}

// Equals compares keys fully and values deeply.
func (p KeyValue) Equals(other KeyValue) bool {
	if !p.key.Equals(other.key) {
		return false
	}

	left, leftOk := p.value.Get()
	right, rightOk := other.value.Get()

	if !leftOk || !rightOk {
		return leftOk == rightOk
	}

	return left.Equals(right)
}
