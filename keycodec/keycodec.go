// Package keycodec classifies raw key and value bytes as text or binary
// and renders them for display and for command lines.
package keycodec

import (
	"encoding/hex"
	"strings"
)

// Kind is the classification of a byte string.
type Kind int

const (
	// Text is data made only of bytes at or above the space character.
	Text Kind = iota
	// Binary is data holding at least one control byte (below 0x20).
	Binary
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Classify returns Binary if any byte of data is below the space character.
func Classify(data []byte) Kind {
	for _, c := range data {
		if c < ' ' {
			return Binary
		}
	}

	return Text
}

// IsBinary reports whether data classifies as Binary.
func IsBinary(data []byte) bool {
	return Classify(data) == Binary
}

// Hex returns the lowercase hex digest of data.
func Hex(data []byte) string {
	return hex.EncodeToString(data)
}

// HumanReadable renders data for display: hex for binary, as-is for text.
func HumanReadable(data []byte, kind Kind) string {
	if kind == Binary {
		return Hex(data)
	}

	return string(data)
}

// ForCommandLine renders data as a single command-line argument.
// Binary data is hexed and quoted, text with whitespace is quoted once.
func ForCommandLine(data []byte, kind Kind) string {
	if kind == Binary {
		return `"` + Hex(data) + `"`
	}

	str := string(data)
	if hasSpace(str) {
		return `"` + str + `"`
	}

	return str
}

func hasSpace(str string) bool {
	return strings.ContainsAny(str, " \t\n\v\f\r")
}
