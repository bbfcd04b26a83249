// Package backend enumerates the supported store kinds and their fixed
// command verbs and traits.
package backend

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a supported backend store kind.
type Kind int

const (
	// Redis is a Redis server.
	Redis Kind = iota + 1
	// KeyDB is a Redis-protocol compatible KeyDB server.
	KeyDB
	// Pika is a Redis-protocol compatible Pika server.
	Pika
	// Memcached is a memcached server.
	Memcached
	// RocksDB is an embedded RocksDB-compatible store.
	RocksDB
	// LevelDB is an embedded LevelDB-compatible store.
	LevelDB
	// LMDB is an embedded LMDB-like store.
	LMDB
	// Etcd is an etcd cluster.
	Etcd
	// Tarantool is a Tarantool instance.
	Tarantool
)

// ErrUnknownKind is returned when a kind name is not recognised.
var ErrUnknownKind = errors.New("unknown backend kind")

//nolint:gochecknoglobals
var names = map[Kind]string{
	Redis:     "redis",
	KeyDB:     "keydb",
	Pika:      "pika",
	Memcached: "memcached",
	RocksDB:   "rocksdb",
	LevelDB:   "leveldb",
	LMDB:      "lmdb",
	Etcd:      "etcd",
	Tarantool: "tarantool",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Redis, KeyDB, Pika, Memcached, RocksDB, LevelDB, LMDB, Etcd, Tarantool}
}

func (k Kind) String() string {
	name, ok := names[k]
	if !ok {
		return "unknown"
	}

	return name
}

// ParseKind parses a kind name, ignoring case.
func ParseKind(name string) (Kind, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range names {
		if kindName == lowered {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Protocol is the wire protocol family a kind is driven with.
type Protocol int

const (
	// ProtocolRESP is the Redis serialization protocol.
	ProtocolRESP Protocol = iota
	// ProtocolMemcache is the memcached text protocol.
	ProtocolMemcache
)

// Traits are fixed properties of a kind.
type Traits struct {
	// Remote is true for network servers, false for embedded stores.
	Remote bool
	// DefaultPort is the usual listening port of a remote kind.
	DefaultPort int
	// Protocol is the wire protocol family.
	Protocol Protocol
	// NsSeparator separates namespaces inside key names.
	NsSeparator string
	// Delimiter separates lines of command output.
	Delimiter string
	// InfoCommand returns server statistics.
	InfoCommand string
}

const (
	defaultNsSeparator = ":"
	defaultDelimiter   = "\n"
)

//nolint:gochecknoglobals,mnd
var traits = map[Kind]Traits{
	Redis:     {true, 6379, ProtocolRESP, defaultNsSeparator, defaultDelimiter, "INFO"},
	KeyDB:     {true, 6379, ProtocolRESP, defaultNsSeparator, defaultDelimiter, "INFO"},
	Pika:      {true, 9221, ProtocolRESP, defaultNsSeparator, defaultDelimiter, "INFO"},
	Memcached: {true, 11211, ProtocolMemcache, defaultNsSeparator, defaultDelimiter, "STATS"},
	RocksDB:   {false, 0, ProtocolRESP, defaultNsSeparator, defaultDelimiter, "INFO"},
	LevelDB:   {false, 0, ProtocolRESP, defaultNsSeparator, defaultDelimiter, "INFO"},
	LMDB:      {false, 0, ProtocolRESP, defaultNsSeparator, defaultDelimiter, "INFO"},
	Etcd:      {true, 2379, ProtocolRESP, "/", defaultDelimiter, "INFO"},
	Tarantool: {true, 3301, ProtocolRESP, defaultNsSeparator, defaultDelimiter, "INFO"},
}

// TraitsOf returns the traits of kind. Unknown kinds get zero traits.
func TraitsOf(kind Kind) Traits {
	return traits[kind]
}

// IsRemote reports whether kind is reached over the network.
func (k Kind) IsRemote() bool {
	return traits[k].Remote
}

// DefaultPort returns the usual listening port of kind.
func (k Kind) DefaultPort() int {
	return traits[k].DefaultPort
}
