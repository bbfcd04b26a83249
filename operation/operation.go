// Package operation provides backend-independent key operations.
// Translators turn them into a backend's command syntax.
package operation

import (
	"github.com/kvbrowse/kvcore/kv"
)

// Operation represents a logical key operation to be translated.
type Operation struct {
	typ          Type
	key          kv.Key
	newKey       kv.KeyString
	value        kv.KeyValue
	expectedType kv.Type
}

// Get returns an operation loading key, expecting a value of typ.
func Get(key kv.Key, typ kv.Type) Operation {
	return Operation{
		typ:          TypeGet,
		key:          key,
		newKey:       kv.KeyString{},
		value:        kv.KeyOnly(key),
		expectedType: typ,
	}
}

// Set returns an operation creating the given pair.
func Set(pair kv.KeyValue) Operation {
	return Operation{
		typ:          TypeSet,
		key:          pair.Key(),
		newKey:       kv.KeyString{},
		value:        pair,
		expectedType: pair.Type(),
	}
}

// Delete returns an operation removing key.
func Delete(key kv.Key) Operation {
	return Operation{
		typ:          TypeDelete,
		key:          key,
		newKey:       kv.KeyString{},
		value:        kv.KeyOnly(key),
		expectedType: kv.TypeNull,
	}
}

// Rename returns an operation renaming key to newKey.
func Rename(key kv.Key, newKey kv.KeyString) Operation {
	return Operation{
		typ:          TypeRename,
		key:          key,
		newKey:       newKey,
		value:        kv.KeyOnly(key),
		expectedType: kv.TypeNull,
	}
}

// Type returns the operation type.
func (o Operation) Type() Type {
	return o.typ
}

// Key returns the target key.
func (o Operation) Key() kv.Key {
	return o.key
}

// NewKey returns the rename target, empty for other operations.
func (o Operation) NewKey() kv.KeyString {
	return o.newKey
}

// Pair returns the key-value pair of a set operation. Other operations
// return the key without a value.
func (o Operation) Pair() kv.KeyValue {
	return o.value
}

// ExpectedType returns the value type a get operation expects.
func (o Operation) ExpectedType() kv.Type {
	return o.expectedType
}
