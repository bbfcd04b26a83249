// Package kv provides the backend-independent entity model: keys, their
// lifetimes, typed values and key-value pairs.
package kv

import (
	"github.com/kvbrowse/kvcore/keycodec"
)

// KeyString is a key's raw bytes together with their classification.
// The classification is derived from the bytes whenever they are set.
type KeyString struct {
	data string
	kind keycodec.Kind
}

// NewKeyString creates a KeyString from raw bytes.
func NewKeyString(data []byte) KeyString {
	return KeyStringOf(string(data))
}

// KeyStringOf creates a KeyString from a Go string holding raw bytes.
func KeyStringOf(data string) KeyString {
	return KeyString{
		data: data,
		kind: keycodec.Classify([]byte(data)),
	}
}

// SetData replaces the key bytes and reclassifies them.
func (k *KeyString) SetData(data []byte) {
	*k = NewKeyString(data)
}

// Type returns the key classification.
func (k KeyString) Type() keycodec.Kind {
	return k.kind
}

// Data returns a copy of the raw key bytes.
func (k KeyString) Data() []byte {
	return []byte(k.data)
}

// Raw returns the raw key bytes as a string.
func (k KeyString) Raw() string {
	return k.data
}

// HumanReadable renders the key for display.
func (k KeyString) HumanReadable() string {
	return keycodec.HumanReadable([]byte(k.data), k.kind)
}

// ForCommandLine renders the key as one command-line argument.
func (k KeyString) ForCommandLine() string {
	return keycodec.ForCommandLine([]byte(k.data), k.kind)
}

// Equals compares raw bytes.
func (k KeyString) Equals(other KeyString) bool {
	return k.data == other.data
}

func (k KeyString) String() string {
	return k.HumanReadable()
}
