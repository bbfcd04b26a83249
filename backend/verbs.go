package backend

import (
	"github.com/kvbrowse/kvcore/operation"
)

// Verbs are the command keywords a backend uses for key operations.
type Verbs struct {
	Get    string
	Set    string
	Delete string
	Rename string
}

var (
	//nolint:gochecknoglobals
	redisVerbs = Verbs{Get: "GET", Set: "SET", Delete: "DEL", Rename: "RENAME"}
	//nolint:gochecknoglobals
	localVerbs = Verbs{Get: "get", Set: "set", Delete: "del", Rename: "rename"}

	//nolint:gochecknoglobals
	verbs = map[Kind]Verbs{
		Redis:     redisVerbs,
		KeyDB:     redisVerbs,
		Pika:      redisVerbs,
		Memcached: {Get: "get", Set: "set", Delete: "delete", Rename: "rename"},
		RocksDB:   localVerbs,
		LevelDB:   localVerbs,
		LMDB:      localVerbs,
		Etcd:      {Get: "get", Set: "put", Delete: "del", Rename: "rename"},
		Tarantool: {Get: "get", Set: "put", Delete: "delete", Rename: "rename"},
	}
)

// VerbsOf returns the verb table of kind and false for unknown kinds.
func VerbsOf(kind Kind) (Verbs, bool) {
	result, ok := verbs[kind]
	return result, ok
}

// For returns the verb of an operation type.
func (v Verbs) For(typ operation.Type) (string, bool) {
	switch typ {
	case operation.TypeGet:
		return v.Get, true
	case operation.TypeSet:
		return v.Set, true
	case operation.TypeDelete:
		return v.Delete, true
	case operation.TypeRename:
		return v.Rename, true
	default:
		return "", false
	}
}

// Lookup returns the operation type bound to verb, compared exactly.
func (v Verbs) Lookup(verb string) (operation.Type, bool) {
	switch verb {
	case v.Get:
		return operation.TypeGet, true
	case v.Set:
		return operation.TypeSet, true
	case v.Delete:
		return operation.TypeDelete, true
	case v.Rename:
		return operation.TypeRename, true
	default:
		return 0, false
	}
}
