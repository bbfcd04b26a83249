package kv

import (
	"strconv"
	"strings"

	"github.com/kvbrowse/kvcore/keycodec"
)

// Type is the logical type of a value.
type Type int

const (
	// TypeNull is the absence of a value.
	TypeNull Type = iota
	// TypeString is a byte string.
	TypeString
	// TypeInteger is a signed 64-bit integer.
	TypeInteger
	// TypeFloat is a 64-bit float.
	TypeFloat
	// TypeBool is a boolean.
	TypeBool
	// TypeArray is an ordered list of values.
	TypeArray
	// TypeMap is an ordered list of key/value entries.
	TypeMap
	// TypeSet is an unordered collection of values.
	TypeSet
	// TypeError is an error reported by a backend.
	TypeError
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeSet:
		return "set"
	case TypeError:
		return "error"
	default:
		return "unknown"
	}
}

const nullRendering = "(nil)"

// MapEntry is one entry of a map value.
type MapEntry struct {
	Key   Value
	Value Value
}

// Value is a tagged union over the types a backend can return.
// The zero value is Null.
type Value struct {
	typ     Type
	str     string
	integer int64
	float   float64
	boolean bool
	items   []Value
	entries []MapEntry
}

// Null returns the null value.
func Null() Value {
	return Value{} //nolint:exhaustruct
}

// String returns a string value holding raw bytes.
func String(data []byte) Value {
	return StringOf(string(data))
}

// StringOf returns a string value from a Go string.
func StringOf(data string) Value {
	return Value{typ: TypeString, str: data} //nolint:exhaustruct
}

// Integer returns an integer value.
func Integer(n int64) Value {
	return Value{typ: TypeInteger, integer: n} //nolint:exhaustruct
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{typ: TypeFloat, float: f} //nolint:exhaustruct
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{typ: TypeBool, boolean: b} //nolint:exhaustruct
}

// Array returns an array value.
func Array(items ...Value) Value {
	return Value{typ: TypeArray, items: items} //nolint:exhaustruct
}

// Set returns a set value.
func Set(items ...Value) Value {
	return Value{typ: TypeSet, items: items} //nolint:exhaustruct
}

// Map returns a map value preserving entry order.
func Map(entries ...MapEntry) Value {
	return Value{typ: TypeMap, entries: entries} //nolint:exhaustruct
}

// Error returns an error value carrying a backend message.
func Error(message string) Value {
	return Value{typ: TypeError, str: message} //nolint:exhaustruct
}

// EmptyOf returns the empty value of a type, used as a placeholder
// for values that are loaded lazily.
func EmptyOf(typ Type) Value {
	switch typ {
	case TypeString:
		return StringOf("")
	case TypeInteger:
		return Integer(0)
	case TypeFloat:
		return Float(0)
	case TypeBool:
		return Bool(false)
	case TypeArray:
		return Array()
	case TypeSet:
		return Set()
	case TypeMap:
		return Map()
	case TypeError:
		return Error("")
	case TypeNull:
		return Null()
	default:
		return Null()
	}
}

// Type returns the value type.
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// Bytes returns the raw bytes of a string or error value.
func (v Value) Bytes() ([]byte, bool) {
	if v.typ != TypeString && v.typ != TypeError {
		return nil, false
	}

	return []byte(v.str), true
}

// Str returns the content of a string or error value.
func (v Value) Str() (string, bool) {
	if v.typ != TypeString && v.typ != TypeError {
		return "", false
	}

	return v.str, true
}

// Int returns an integer value, parsing strings holding decimal numbers.
func (v Value) Int() (int64, bool) {
	switch v.typ {
	case TypeInteger:
		return v.integer, true
	case TypeString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.str), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// FloatValue returns a float value.
func (v Value) FloatValue() (float64, bool) {
	return v.float, v.typ == TypeFloat
}

// BoolValue returns a boolean value.
func (v Value) BoolValue() (bool, bool) {
	return v.boolean, v.typ == TypeBool
}

// Items returns elements of an array or set value.
func (v Value) Items() ([]Value, bool) {
	if v.typ != TypeArray && v.typ != TypeSet {
		return nil, false
	}

	return v.items, true
}

// Entries returns the entries of a map value.
func (v Value) Entries() ([]MapEntry, bool) {
	return v.entries, v.typ == TypeMap
}

// Len returns the number of elements of a container or the byte length of
// a string.
func (v Value) Len() int {
	switch v.typ {
	case TypeArray, TypeSet:
		return len(v.items)
	case TypeMap:
		return len(v.entries)
	case TypeString, TypeError:
		return len(v.str)
	default:
		return 0
	}
}

// Equals compares values deeply. Set elements are compared without order.
func (v Value) Equals(other Value) bool {
	if v.typ != other.typ {
		return false
	}

	switch v.typ {
	case TypeNull:
		return true
	case TypeString, TypeError:
		return v.str == other.str
	case TypeInteger:
		return v.integer == other.integer
	case TypeFloat:
		return v.float == other.float
	case TypeBool:
		return v.boolean == other.boolean
	case TypeArray:
		return equalOrdered(v.items, other.items)
	case TypeSet:
		return equalUnordered(v.items, other.items)
	case TypeMap:
		if len(v.entries) != len(other.entries) {
			return false
		}

		for i := range v.entries {
			if !v.entries[i].Key.Equals(other.entries[i].Key) ||
				!v.entries[i].Value.Equals(other.entries[i].Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func equalOrdered(left, right []Value) bool {
	if len(left) != len(right) {
		return false
	}

	for i := range left {
		if !left[i].Equals(right[i]) {
			return false
		}
	}

	return true
}

func equalUnordered(left, right []Value) bool {
	if len(left) != len(right) {
		return false
	}

	used := make([]bool, len(right))

outer:
	for _, l := range left {
		for j, r := range right {
			if !used[j] && l.Equals(r) {
				used[j] = true
				continue outer
			}
		}

		return false
	}

	return true
}

// String renders the value for display, joining elements with delim.
func (v Value) String(delim string) string {
	return v.render(delim, false)
}

// ForCommandLine renders the value as command arguments joined by delim.
// Binary strings are hexed and quoted.
func (v Value) ForCommandLine(delim string) string {
	return v.render(delim, true)
}

func (v Value) render(delim string, forCommand bool) string {
	switch v.typ {
	case TypeNull:
		return nullRendering
	case TypeString:
		if forCommand && keycodec.IsBinary([]byte(v.str)) {
			return `"` + keycodec.Hex([]byte(v.str)) + `"`
		}

		return v.str
	case TypeError:
		return v.str
	case TypeInteger:
		return strconv.FormatInt(v.integer, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.boolean)
	case TypeArray, TypeSet:
		parts := make([]string, 0, len(v.items))
		for _, item := range v.items {
			parts = append(parts, item.render(delim, forCommand))
		}

		return strings.Join(parts, delim)
	case TypeMap:
		parts := make([]string, 0, 2*len(v.entries)) //nolint:mnd
		for _, entry := range v.entries {
			parts = append(parts, entry.Key.render(delim, forCommand), entry.Value.render(delim, forCommand))
		}

		return strings.Join(parts, delim)
	default:
		return ""
	}
}
