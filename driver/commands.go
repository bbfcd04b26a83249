package driver

import (
	"strconv"
	"strings"

	"github.com/kvbrowse/kvcore/kv"
)

// Commands builds and parses the logical introspection commands. Every
// protocol conn understands the same reply shapes, so strategies embed it
// and differ in verbs only.
type Commands struct {
	Scan  string
	TTL   string
	Count string
	Info  string
}

// ScanCommand returns "<scan> cursor MATCH pattern COUNT limit".
func (c Commands) ScanCommand(cursor uint64, pattern string, limit int) []string {
	return []string{
		c.Scan,
		strconv.FormatUint(cursor, 10),
		"MATCH", pattern,
		"COUNT", strconv.Itoa(limit),
	}
}

// ParseScan parses a [cursor, [key...]] reply.
func (c Commands) ParseScan(reply kv.Value) (uint64, []kv.KeyString, error) {
	items, ok := reply.Items()
	if !ok || len(items) != 2 { //nolint:mnd
		return 0, nil, NewShapeError(c.Scan, "two element array", reply)
	}

	cursor, ok := items[0].Int()
	if !ok || cursor < 0 {
		return 0, nil, NewShapeError(c.Scan, "numeric cursor", items[0])
	}

	elements, ok := items[1].Items()
	if !ok {
		return 0, nil, NewShapeError(c.Scan, "key array", items[1])
	}

	keys := make([]kv.KeyString, 0, len(elements))

	for _, element := range elements {
		data, ok := element.Bytes()
		if !ok || element.Type() != kv.TypeString {
			return 0, nil, NewShapeError(c.Scan, "key string", element)
		}

		keys = append(keys, kv.NewKeyString(data))
	}

	return uint64(cursor), keys, nil
}

// TTLCommand returns "<ttl> key".
func (c Commands) TTLCommand(key kv.KeyString) []string {
	return []string{c.TTL, key.Raw()}
}

// ParseTTL converts a numeric TTL reply.
func (c Commands) ParseTTL(reply kv.Value) (kv.TTL, error) {
	n, ok := reply.Int()
	if !ok {
		return kv.UnknownTTL(), NewShapeError(c.TTL, "integer", reply)
	}

	return kv.FromLegacy(n), nil
}

// CountCommand returns "<count>".
func (c Commands) CountCommand() []string {
	return []string{c.Count}
}

// ParseCount converts a numeric count reply.
func (c Commands) ParseCount(reply kv.Value) (int64, error) {
	n, ok := reply.Int()
	if !ok || n < 0 {
		return 0, NewShapeError(c.Count, "non-negative integer", reply)
	}

	return n, nil
}

// InfoCommand returns "<info>".
func (c Commands) InfoCommand() []string {
	return []string{c.Info}
}

// ParseInfo accepts a map reply or INFO style "field:value" text.
func (c Commands) ParseInfo(reply kv.Value) (map[string]string, error) {
	if entries, ok := reply.Entries(); ok {
		info := make(map[string]string, len(entries))
		for _, entry := range entries {
			info[entry.Key.String(" ")] = entry.Value.String(" ")
		}

		return info, nil
	}

	text, ok := reply.Str()
	if !ok || reply.Type() != kv.TypeString {
		return nil, NewShapeError(c.Info, "text or map", reply)
	}

	return ParseInfoText(text), nil
}

// ParseInfoText parses INFO output. Section headers and blank lines are
// skipped, lines without a colon are ignored.
func ParseInfoText(text string) map[string]string {
	info := map[string]string{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		field, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		info[field] = value
	}

	return info
}
