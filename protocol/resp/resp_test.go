package resp_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/protocol/resp"
)

func read(t *testing.T, frame string) kv.Value {
	t.Helper()

	value, err := resp.NewReader(strings.NewReader(frame)).ReadValue()
	require.NoError(t, err)

	return value
}

func TestAppendCommand(t *testing.T) {
	t.Parallel()

	got := resp.AppendCommand(nil, []string{"SET", "k", "hello world"})
	assert.Equal(t, "*3\r\n$3\r\nSET\r\n$1\r\nk\r\n$11\r\nhello world\r\n", string(got))
}

func TestReadValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		frame    string
		expected kv.Value
	}{
		{"simple string", "+OK\r\n", kv.StringOf("OK")},
		{"error", "-ERR unknown\r\n", kv.Error("ERR unknown")},
		{"integer", ":-2\r\n", kv.Integer(-2)},
		{"bulk", "$5\r\nhello\r\n", kv.StringOf("hello")},
		{"binary bulk", "$2\r\n\x00\x01\r\n", kv.String([]byte{0, 1})},
		{"nil bulk", "$-1\r\n", kv.Null()},
		{"nil array", "*-1\r\n", kv.Null()},
		{"resp3 null", "_\r\n", kv.Null()},
		{"double", ",1.5\r\n", kv.Float(1.5)},
		{"bool", "#t\r\n", kv.Bool(true)},
		{"verbatim", "=8\r\ntxt:abcd\r\n", kv.StringOf("abcd")},
		{
			"scan reply", "*2\r\n$1\r\n0\r\n*2\r\n$1\r\na\r\n$1\r\nb\r\n",
			kv.Array(kv.StringOf("0"), kv.Array(kv.StringOf("a"), kv.StringOf("b"))),
		},
		{"set", "~1\r\n+x\r\n", kv.Set(kv.StringOf("x"))},
		{
			"map", "%1\r\n+k\r\n:1\r\n",
			kv.Map(kv.MapEntry{Key: kv.StringOf("k"), Value: kv.Integer(1)}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := read(t, tt.frame)
			assert.True(t, tt.expected.Equals(got), "expected %v, got %v", tt.expected.String(" "), got.String(" "))
		})
	}
}

func TestReadValue_Malformed(t *testing.T) {
	t.Parallel()

	frames := []string{
		"?x\r\n",
		":abc\r\n",
		"$3\r\nabcd\r\n",
		"+no crlf\n",
		"*x\r\n",
		"#x\r\n",
		"*9223372036854775807\r\n",
		"%9223372036854775807\r\n",
		"~2000000\r\n",
	}

	for _, frame := range frames {
		_, err := resp.NewReader(strings.NewReader(frame)).ReadValue()
		require.ErrorIs(t, err, resp.ErrProtocol, "frame %q", frame)
	}
}

func TestReadValue_Truncated(t *testing.T) {
	t.Parallel()

	_, err := resp.NewReader(strings.NewReader("$5\r\nhe")).ReadValue()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = resp.NewReader(strings.NewReader("")).ReadValue()
	require.ErrorIs(t, err, io.EOF)

	_, err = resp.NewReader(strings.NewReader("*1000\r\n:1\r\n")).ReadValue()
	require.ErrorIs(t, err, io.EOF)

	_, err = resp.NewReader(strings.NewReader("*9223372036854775807\r\n")).ReadCommand()
	require.ErrorIs(t, err, resp.ErrProtocol)
}

func TestReadCommand(t *testing.T) {
	t.Parallel()

	frame := resp.AppendCommand(nil, []string{"SCAN", "0", "MATCH", "*"})
	args, err := resp.NewReader(bytes.NewReader(frame)).ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"SCAN", "0", "MATCH", "*"}, args)

	args, err = resp.NewReader(strings.NewReader("PING now\r\n")).ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"PING", "now"}, args)
}

func TestAppendValue_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []kv.Value{
		kv.Null(),
		kv.StringOf("hello"),
		kv.Integer(42),
		kv.Error("ERR boom"),
		kv.Array(kv.StringOf("0"), kv.Array(kv.StringOf("k1"), kv.String([]byte{0, 1}))),
	}

	for _, value := range values {
		got := read(t, string(resp.AppendValue(nil, value)))
		assert.True(t, value.Equals(got))
	}

	assert.True(t, kv.StringOf("1.5").Equals(read(t, string(resp.AppendValue(nil, kv.Float(1.5))))))
	assert.True(t, kv.Integer(1).Equals(read(t, string(resp.AppendValue(nil, kv.Bool(true))))))
	assert.True(t, kv.Array(kv.StringOf("a"), kv.Integer(1)).Equals(read(t, string(resp.AppendValue(nil,
		kv.Map(kv.MapEntry{Key: kv.StringOf("a"), Value: kv.Integer(1)}))))))
}

func TestReader_Pipelined(t *testing.T) {
	t.Parallel()

	reader := resp.NewReader(strings.NewReader(":1\r\n:2\r\n"))

	first, err := reader.ReadValue()
	require.NoError(t, err)
	assert.True(t, kv.Integer(1).Equals(first))

	second, err := reader.ReadValue()
	require.NoError(t, err)
	assert.True(t, kv.Integer(2).Equals(second))
}
