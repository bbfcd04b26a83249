// Package kvcore opens drivers for key-value backends: Redis, KeyDB, Pika,
// Memcached, etcd, Tarantool and the embedded RocksDB, LevelDB and LMDB
// kinds.
//
// Every driver exposes the same operations (see [driver.Base]): raw command
// execution, key loading and editing, and paged key listing with TTL
// enrichment. Run a driver behind a [proxy.Worker] to exchange
// [events.Request] and [events.Response] values over channels.
package kvcore
