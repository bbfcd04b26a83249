// Package resp implements the Redis serialization protocol: request
// encoding, reply decoding into kv.Value, and the server side of both.
package resp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kvbrowse/kvcore/kv"
)

const (
	typeSimpleString = '+'
	typeError        = '-'
	typeInteger      = ':'
	typeBulk         = '$'
	typeArray        = '*'
	typeNull         = '_'
	typeDouble       = ','
	typeBool         = '#'
	typeMap          = '%'
	typeSet          = '~'
	typeVerbatim     = '='
	typeBigNumber    = '('
	typePush         = '>'
)

const (
	// maxBulkLen bounds a single bulk string to guard against corrupt lengths.
	maxBulkLen = 512 << 20
	// maxAggregateLen bounds the element count of arrays, sets and maps.
	maxAggregateLen = 1 << 20
	// aggregatePrealloc caps the capacity reserved before elements arrive.
	aggregatePrealloc = 64
)

// ErrProtocol is the cause of every malformed frame.
var ErrProtocol = errors.New("protocol error")

// ProtocolError describes a malformed frame.
type ProtocolError struct {
	Text string
}

// Error returns the error message.
func (e ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProtocol, e.Text)
}

// Unwrap returns ErrProtocol.
func (e ProtocolError) Unwrap() error {
	return ErrProtocol
}

func protocolErrorf(format string, args ...any) error {
	return ProtocolError{Text: fmt.Sprintf(format, args...)}
}

// Reader decodes RESP frames.
type Reader struct {
	rd *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{rd: br}
	}

	return &Reader{rd: bufio.NewReader(r)}
}

// Buffered returns the number of bytes already read but not consumed.
func (r *Reader) Buffered() int {
	return r.rd.Buffered()
}

// ReadValue decodes one reply. Error replies are returned as kv.Error
// values, not as Go errors.
func (r *Reader) ReadValue() (kv.Value, error) {
	line, err := r.readLine()
	if err != nil {
		return kv.Null(), err
	}

	if len(line) == 0 {
		return kv.Null(), protocolErrorf("empty frame")
	}

	payload := string(line[1:])

	switch line[0] {
	case typeSimpleString:
		return kv.StringOf(payload), nil
	case typeError:
		return kv.Error(payload), nil
	case typeInteger:
		n, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return kv.Null(), protocolErrorf("invalid integer %q", payload)
		}

		return kv.Integer(n), nil
	case typeBigNumber:
		return kv.StringOf(payload), nil
	case typeNull:
		return kv.Null(), nil
	case typeDouble:
		return parseDouble(payload)
	case typeBool:
		switch payload {
		case "t":
			return kv.Bool(true), nil
		case "f":
			return kv.Bool(false), nil
		default:
			return kv.Null(), protocolErrorf("invalid boolean %q", payload)
		}
	case typeBulk, typeVerbatim:
		return r.readBulk(payload, line[0] == typeVerbatim)
	case typeArray, typeSet, typePush:
		return r.readAggregate(payload, line[0] == typeSet)
	case typeMap:
		return r.readMap(payload)
	default:
		return kv.Null(), protocolErrorf("unknown frame type %q", line[0])
	}
}

// ReadCommand decodes one request: an array of bulk strings or an inline
// command line.
func (r *Reader) ReadCommand() ([]string, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}

	if len(line) == 0 || line[0] != typeArray {
		return strings.Fields(string(line)), nil
	}

	count, err := parseAggregateLen(string(line[1:]))
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, min(max(count, 0), aggregatePrealloc))

	for range count {
		header, err := r.readLine()
		if err != nil {
			return nil, err
		}

		if len(header) == 0 || header[0] != typeBulk {
			return nil, protocolErrorf("expected bulk string in request")
		}

		value, err := r.readBulk(string(header[1:]), false)
		if err != nil {
			return nil, err
		}

		str, _ := value.Str()
		args = append(args, str)
	}

	return args, nil
}

func (r *Reader) readLine() ([]byte, error) {
	line, err := r.rd.ReadSlice('\n')
	if err != nil {
		if errors.Is(err, bufio.ErrBufferFull) {
			return nil, protocolErrorf("line too long")
		}

		return nil, err //nolint:wrapcheck
	}

	if len(line) < 2 || line[len(line)-2] != '\r' {
		return nil, protocolErrorf("line is not terminated by CRLF")
	}

	out := make([]byte, len(line)-2)
	copy(out, line)

	return out, nil
}

func (r *Reader) readBulk(header string, verbatim bool) (kv.Value, error) {
	size, err := parseLen(header)
	if err != nil {
		return kv.Null(), err
	}

	if size < 0 {
		return kv.Null(), nil
	}

	if size > maxBulkLen {
		return kv.Null(), protocolErrorf("bulk string of %d bytes is too long", size)
	}

	buf := make([]byte, size+2) //nolint:mnd
	if _, err := io.ReadFull(r.rd, buf); err != nil {
		return kv.Null(), err //nolint:wrapcheck
	}

	if buf[size] != '\r' || buf[size+1] != '\n' {
		return kv.Null(), protocolErrorf("bulk string is not terminated by CRLF")
	}

	data := buf[:size]
	if verbatim && len(data) >= 4 && data[3] == ':' {
		data = data[4:]
	}

	return kv.String(data), nil
}

func (r *Reader) readAggregate(header string, set bool) (kv.Value, error) {
	count, err := parseAggregateLen(header)
	if err != nil {
		return kv.Null(), err
	}

	if count < 0 {
		return kv.Null(), nil
	}

	items := make([]kv.Value, 0, min(count, aggregatePrealloc))

	for range count {
		item, err := r.ReadValue()
		if err != nil {
			return kv.Null(), err
		}

		items = append(items, item)
	}

	if set {
		return kv.Set(items...), nil
	}

	return kv.Array(items...), nil
}

func (r *Reader) readMap(header string) (kv.Value, error) {
	count, err := parseAggregateLen(header)
	if err != nil {
		return kv.Null(), err
	}

	if count < 0 {
		return kv.Null(), nil
	}

	entries := make([]kv.MapEntry, 0, min(count, aggregatePrealloc))

	for range count {
		key, err := r.ReadValue()
		if err != nil {
			return kv.Null(), err
		}

		value, err := r.ReadValue()
		if err != nil {
			return kv.Null(), err
		}

		entries = append(entries, kv.MapEntry{Key: key, Value: value})
	}

	return kv.Map(entries...), nil
}

func parseAggregateLen(str string) (int, error) {
	n, err := parseLen(str)
	if err != nil {
		return 0, err
	}

	if n > maxAggregateLen {
		return 0, protocolErrorf("aggregate of %d elements is too long", n)
	}

	return n, nil
}

func parseLen(str string) (int, error) {
	n, err := strconv.Atoi(str)
	if err != nil || n < -1 {
		return 0, protocolErrorf("invalid length %q", str)
	}

	return n, nil
}

func parseDouble(str string) (kv.Value, error) {
	switch str {
	case "inf":
		str = "+Inf"
	case "-inf":
		str = "-Inf"
	}

	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return kv.Null(), protocolErrorf("invalid double %q", str)
	}

	return kv.Float(f), nil
}
