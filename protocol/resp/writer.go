package resp

import (
	"strconv"

	"github.com/kvbrowse/kvcore/kv"
)

// AppendCommand appends args encoded as an array of bulk strings.
func AppendCommand(buf []byte, args []string) []byte {
	buf = appendHeader(buf, typeArray, int64(len(args)))
	for _, arg := range args {
		buf = appendBulk(buf, arg)
	}

	return buf
}

// AppendValue appends a reply encoded with RESP2 types. Floats are sent as
// bulk strings and booleans as integers, maps are flattened to arrays.
func AppendValue(buf []byte, value kv.Value) []byte {
	switch value.Type() {
	case kv.TypeNull:
		return append(buf, "$-1\r\n"...)
	case kv.TypeString:
		str, _ := value.Str()
		return appendBulk(buf, str)
	case kv.TypeError:
		str, _ := value.Str()
		buf = append(buf, typeError)
		buf = append(buf, str...)

		return append(buf, '\r', '\n')
	case kv.TypeInteger:
		n, _ := value.Int()
		return appendHeader(buf, typeInteger, n)
	case kv.TypeFloat:
		return appendBulk(buf, value.String(""))
	case kv.TypeBool:
		b, _ := value.BoolValue()
		if b {
			return appendHeader(buf, typeInteger, 1)
		}

		return appendHeader(buf, typeInteger, 0)
	case kv.TypeArray, kv.TypeSet:
		items, _ := value.Items()

		buf = appendHeader(buf, typeArray, int64(len(items)))
		for _, item := range items {
			buf = AppendValue(buf, item)
		}

		return buf
	case kv.TypeMap:
		entries, _ := value.Entries()

		buf = appendHeader(buf, typeArray, int64(2*len(entries))) //nolint:mnd
		for _, entry := range entries {
			buf = AppendValue(buf, entry.Key)
			buf = AppendValue(buf, entry.Value)
		}

		return buf
	default:
		return append(buf, "$-1\r\n"...)
	}
}

// OK is the simple string reply of a successful write.
func OK() []byte {
	return []byte("+OK\r\n")
}

func appendHeader(buf []byte, typ byte, n int64) []byte {
	buf = append(buf, typ)
	buf = strconv.AppendInt(buf, n, 10)

	return append(buf, '\r', '\n')
}

func appendBulk(buf []byte, str string) []byte {
	buf = appendHeader(buf, typeBulk, int64(len(str)))
	buf = append(buf, str...)

	return append(buf, '\r', '\n')
}
