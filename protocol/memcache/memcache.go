// Package memcache implements the client side of the memcached text
// protocol. It interprets the logical command set of the drivers (get, set,
// delete, rename, SCAN, TTL, DBSIZE, INFO, PING) on top of native memcached
// commands.
package memcache

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/transport"
)

const (
	defaultScanCount = 10
	// maxValueLen bounds a single value to guard against corrupt lengths.
	maxValueLen = 64 << 20
)

// ErrProtocol is the cause of every malformed reply.
var ErrProtocol = errors.New("memcache protocol error")

// ProtocolError describes a malformed reply.
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

// Conn speaks memcached over one transport. It is not safe for concurrent
// use; the driver serializes calls.
type Conn struct {
	transport transport.Transport
	stream    *transport.Stream
	rd        *bufio.Reader
}

// NewConn creates a connection over t.
func NewConn(t transport.Transport) *Conn {
	stream := transport.NewStream(t)

	return &Conn{
		transport: t,
		stream:    stream,
		rd:        bufio.NewReader(stream),
	}
}

// Do executes one logical command. Server-side failures are returned as
// kv.Error values; transport and framing failures as errors, after which the
// transport is closed.
func (c *Conn) Do(ctx context.Context, args []string) (kv.Value, error) {
	if len(args) == 0 {
		return kv.Error("ERR empty command"), nil
	}

	c.stream.SetContext(ctx)

	value, err := c.do(ctx, args)
	if err != nil {
		// The reply stream is out of sync after a failed exchange.
		_ = c.transport.Close()

		c.stream.Reset()
		c.rd.Reset(c.stream)
	}

	return value, err
}

func (c *Conn) do(ctx context.Context, args []string) (kv.Value, error) {
	switch strings.ToLower(args[0]) {
	case "get":
		if len(args) != 2 { //nolint:mnd
			return wrongArgs(args[0]), nil
		}

		return c.get(ctx, args[1])
	case "set":
		if len(args) < 3 { //nolint:mnd
			return wrongArgs(args[0]), nil
		}

		return c.set(ctx, args[1], strings.Join(args[2:], " "))
	case "delete":
		if len(args) != 2 { //nolint:mnd
			return wrongArgs(args[0]), nil
		}

		return c.delete(ctx, args[1])
	case "rename":
		if len(args) != 3 { //nolint:mnd
			return wrongArgs(args[0]), nil
		}

		return c.rename(ctx, args[1], args[2])
	case "scan":
		return c.scan(ctx, args)
	case "ttl":
		if len(args) != 2 { //nolint:mnd
			return wrongArgs(args[0]), nil
		}

		return c.ttl(ctx, args[1])
	case "dbsize":
		return c.dbSize(ctx)
	case "stats", "info":
		return c.stats(ctx, args[1:])
	case "ping":
		return c.ping(ctx)
	default:
		return c.raw(ctx, strings.Join(args, " "))
	}
}

func wrongArgs(name string) kv.Value {
	return kv.Error(fmt.Sprintf("ERR wrong number of arguments for '%s' command", strings.ToLower(name)))
}

func (c *Conn) send(ctx context.Context, data string) error {
	if err := c.transport.Send(ctx, []byte(data)); err != nil {
		return transport.NewError("send", err)
	}

	return nil
}

func (c *Conn) readLine() (string, error) {
	line, err := c.rd.ReadString('\n')
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if !strings.HasSuffix(line, "\r\n") {
		return "", protocolErrorf("line is not terminated by CRLF")
	}

	return strings.TrimSuffix(line, "\r\n"), nil
}

// serverError converts the error lines of the protocol into replies.
func serverError(line string) (kv.Value, bool) {
	switch {
	case line == "ERROR":
		return kv.Error("ERR unknown command"), true
	case strings.HasPrefix(line, "CLIENT_ERROR "), strings.HasPrefix(line, "SERVER_ERROR "):
		return kv.Error(line), true
	default:
		return kv.Null(), false
	}
}

func (c *Conn) get(ctx context.Context, key string) (kv.Value, error) {
	if err := c.send(ctx, "get "+key+"\r\n"); err != nil {
		return kv.Null(), err
	}

	result := kv.Null()

	for {
		line, err := c.readLine()
		if err != nil {
			return kv.Null(), err
		}

		if reply, ok := serverError(line); ok {
			return reply, nil
		}

		if line == "END" {
			return result, nil
		}

		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "VALUE" {
			return kv.Null(), protocolErrorf("unexpected get reply %q", line)
		}

		size, err := strconv.Atoi(fields[3])
		if err != nil || size < 0 || size > maxValueLen {
			return kv.Null(), protocolErrorf("invalid value length %q", fields[3])
		}

		data := make([]byte, size+2) //nolint:mnd
		if _, err := io.ReadFull(c.rd, data); err != nil {
			return kv.Null(), err
		}

		if !bytes.HasSuffix(data, []byte("\r\n")) {
			return kv.Null(), protocolErrorf("value is not terminated by CRLF")
		}

		result = kv.String(data[:size])
	}
}

func (c *Conn) store(ctx context.Context, key, value string, exptime int64) (kv.Value, error) {
	header := fmt.Sprintf("set %s 0 %d %d\r\n", key, exptime, len(value))
	if err := c.send(ctx, header+value+"\r\n"); err != nil {
		return kv.Null(), err
	}

	line, err := c.readLine()
	if err != nil {
		return kv.Null(), err
	}

	if reply, ok := serverError(line); ok {
		return reply, nil
	}

	if line != "STORED" {
		return kv.Error("ERR " + line), nil
	}

	return kv.StringOf("OK"), nil
}

func (c *Conn) set(ctx context.Context, key, value string) (kv.Value, error) {
	return c.store(ctx, key, value, 0)
}

func (c *Conn) delete(ctx context.Context, key string) (kv.Value, error) {
	if err := c.send(ctx, "delete "+key+"\r\n"); err != nil {
		return kv.Null(), err
	}

	line, err := c.readLine()
	if err != nil {
		return kv.Null(), err
	}

	if reply, ok := serverError(line); ok {
		return reply, nil
	}

	switch line {
	case "DELETED":
		return kv.Integer(1), nil
	case "NOT_FOUND":
		return kv.Integer(0), nil
	default:
		return kv.Null(), protocolErrorf("unexpected delete reply %q", line)
	}
}

// rename copies key to newKey, keeping its expiration, then deletes key.
// Memcached has no atomic rename.
func (c *Conn) rename(ctx context.Context, key, newKey string) (kv.Value, error) {
	value, err := c.get(ctx, key)
	if err != nil || value.Type() == kv.TypeError {
		return value, err
	}

	if value.IsNull() {
		return kv.Error("ERR no such key"), nil
	}

	exptime := int64(0)

	ttl, err := c.ttl(ctx, key)
	if err != nil {
		return kv.Null(), err
	}

	if seconds, ok := ttl.Int(); ok && seconds > 0 {
		exptime = seconds
	}

	data, _ := value.Bytes()

	stored, err := c.store(ctx, newKey, string(data), exptime)
	if err != nil || stored.Type() == kv.TypeError {
		return stored, err
	}

	if _, err := c.delete(ctx, key); err != nil {
		return kv.Null(), err
	}

	return kv.StringOf("OK"), nil
}

type metaEntry struct {
	key string
	exp int64
}

// metadump lists every item the LRU crawler reports.
func (c *Conn) metadump(ctx context.Context) ([]metaEntry, kv.Value, error) {
	if err := c.send(ctx, "lru_crawler metadump all\r\n"); err != nil {
		return nil, kv.Null(), err
	}

	var entries []metaEntry

	for {
		line, err := c.readLine()
		if err != nil {
			return nil, kv.Null(), err
		}

		if reply, ok := serverError(line); ok {
			return nil, reply, nil
		}

		if strings.HasPrefix(line, "BUSY") {
			return nil, kv.Error("ERR " + line), nil
		}

		if line == "END" {
			return entries, kv.Null(), nil
		}

		fields := parseFields(strings.Fields(line))

		key, err := url.QueryUnescape(fields["key"])
		if err != nil || fields["key"] == "" {
			return nil, kv.Null(), protocolErrorf("invalid metadump line %q", line)
		}

		exp, _ := strconv.ParseInt(fields["exp"], 10, 64)
		entries = append(entries, metaEntry{key: key, exp: exp})
	}
}

func parseFields(tokens []string) map[string]string {
	fields := make(map[string]string, len(tokens))

	for _, token := range tokens {
		name, value, ok := strings.Cut(token, "=")
		if ok {
			fields[name] = value
		}
	}

	return fields
}

// scan emulates SCAN with an offset cursor over the sorted metadump.
func (c *Conn) scan(ctx context.Context, args []string) (kv.Value, error) {
	if len(args) < 2 || len(args)%2 != 0 {
		return wrongArgs(args[0]), nil
	}

	cursor, err := strconv.Atoi(args[1])
	if err != nil || cursor < 0 {
		return kv.Error("ERR invalid cursor"), nil
	}

	pattern, count := "*", defaultScanCount

	for i := 2; i < len(args); i += 2 {
		switch strings.ToUpper(args[i]) {
		case "MATCH":
			pattern = args[i+1]
		case "COUNT":
			count, err = strconv.Atoi(args[i+1])
			if err != nil || count < 1 {
				return kv.Error("ERR value is not an integer or out of range"), nil
			}
		default:
			return kv.Error("ERR syntax error"), nil
		}
	}

	entries, reply, err := c.metadump(ctx)
	if err != nil || reply.Type() == kv.TypeError {
		return reply, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if engine.Match(pattern, []byte(entry.key)) {
			keys = append(keys, entry.key)
		}
	}

	sort.Strings(keys)

	if cursor > len(keys) {
		cursor = len(keys)
	}

	end := cursor + min(count, len(keys)-cursor)

	next := 0
	if end < len(keys) {
		next = end
	}

	items := make([]kv.Value, 0, end-cursor)
	for _, key := range keys[cursor:end] {
		items = append(items, kv.StringOf(key))
	}

	return kv.Array(kv.StringOf(strconv.Itoa(next)), kv.Array(items...)), nil
}

// ttl reads the remaining lifetime with the meta command "me":
// -2 for a missing key, -1 for no expiration.
func (c *Conn) ttl(ctx context.Context, key string) (kv.Value, error) {
	if err := c.send(ctx, "me "+key+"\r\n"); err != nil {
		return kv.Null(), err
	}

	line, err := c.readLine()
	if err != nil {
		return kv.Null(), err
	}

	if reply, ok := serverError(line); ok {
		return reply, nil
	}

	if line == "EN" {
		return kv.Integer(kv.LegacyExpiredTTL), nil
	}

	tokens := strings.Fields(line)
	if len(tokens) < 2 || tokens[0] != "ME" {
		return kv.Null(), protocolErrorf("unexpected me reply %q", line)
	}

	// The item line is followed by END on some server versions.
	if c.rd.Buffered() >= len("END\r\n") {
		if peek, _ := c.rd.Peek(len("END\r\n")); string(peek) == "END\r\n" {
			_, _ = c.rd.Discard(len("END\r\n"))
		}
	}

	exp, err := strconv.ParseInt(parseFields(tokens[2:])["exp"], 10, 64)
	if err != nil {
		return kv.Null(), protocolErrorf("invalid exp in %q", line)
	}

	if exp < 0 {
		return kv.Integer(kv.LegacyNoTTL), nil
	}

	return kv.Integer(exp), nil
}

func (c *Conn) statLines(ctx context.Context, args []string) ([]kv.MapEntry, kv.Value, error) {
	command := strings.TrimSpace("stats " + strings.Join(args, " "))
	if err := c.send(ctx, command+"\r\n"); err != nil {
		return nil, kv.Null(), err
	}

	var entries []kv.MapEntry

	for {
		line, err := c.readLine()
		if err != nil {
			return nil, kv.Null(), err
		}

		if reply, ok := serverError(line); ok {
			return nil, reply, nil
		}

		if line == "END" {
			return entries, kv.Null(), nil
		}

		tokens := strings.SplitN(line, " ", 3) //nolint:mnd
		if len(tokens) != 3 || tokens[0] != "STAT" {
			return nil, kv.Null(), protocolErrorf("unexpected stats line %q", line)
		}

		entries = append(entries, kv.MapEntry{Key: kv.StringOf(tokens[1]), Value: kv.StringOf(tokens[2])})
	}
}

func (c *Conn) stats(ctx context.Context, args []string) (kv.Value, error) {
	entries, reply, err := c.statLines(ctx, args)
	if err != nil || reply.Type() == kv.TypeError {
		return reply, err
	}

	return kv.Map(entries...), nil
}

func (c *Conn) dbSize(ctx context.Context) (kv.Value, error) {
	entries, reply, err := c.statLines(ctx, nil)
	if err != nil || reply.Type() == kv.TypeError {
		return reply, err
	}

	for _, entry := range entries {
		if name, _ := entry.Key.Str(); name == "curr_items" {
			if n, ok := entry.Value.Int(); ok {
				return kv.Integer(n), nil
			}
		}
	}

	return kv.Null(), protocolErrorf("stats reply has no curr_items")
}

func (c *Conn) ping(ctx context.Context) (kv.Value, error) {
	if err := c.send(ctx, "version\r\n"); err != nil {
		return kv.Null(), err
	}

	line, err := c.readLine()
	if err != nil {
		return kv.Null(), err
	}

	if !strings.HasPrefix(line, "VERSION ") {
		return kv.Null(), protocolErrorf("unexpected version reply %q", line)
	}

	return kv.StringOf("PONG"), nil
}

// raw forwards an unknown command as one line. Multi-line replies are
// collected until END.
func (c *Conn) raw(ctx context.Context, line string) (kv.Value, error) {
	if err := c.send(ctx, line+"\r\n"); err != nil {
		return kv.Null(), err
	}

	first, err := c.readLine()
	if err != nil {
		return kv.Null(), err
	}

	if reply, ok := serverError(first); ok {
		return reply, nil
	}

	if !strings.HasPrefix(first, "STAT ") && !strings.HasPrefix(first, "ITEM ") {
		return kv.StringOf(first), nil
	}

	items := []kv.Value{kv.StringOf(first)}

	for {
		next, err := c.readLine()
		if err != nil {
			return kv.Null(), err
		}

		if next == "END" {
			return kv.Array(items...), nil
		}

		items = append(items, kv.StringOf(next))
	}
}
