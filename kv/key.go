package kv

// Key identifies a stored item and carries its lifetime.
type Key struct {
	key KeyString
	ttl TTL
}

// NewKey creates a key with the given lifetime.
func NewKey(key KeyString, ttl TTL) Key {
	return Key{key: key, ttl: ttl}
}

// KeyOf creates a key without expiration from raw bytes.
func KeyOf(data string) Key {
	return NewKey(KeyStringOf(data), NoExpiration())
}

// KeyString returns the key bytes.
func (k Key) KeyString() KeyString {
	return k.key
}

// TTL returns the key lifetime.
func (k Key) TTL() TTL {
	return k.ttl
}

// WithTTL returns a copy of the key with another lifetime.
func (k Key) WithTTL(ttl TTL) Key {
	k.ttl = ttl
	return k
}

// WithKeyString returns a copy of the key with other bytes.
func (k Key) WithKeyString(key KeyString) Key {
	k.key = key
	return k
}

// EqualsKey compares key bytes only.
func (k Key) EqualsKey(other Key) bool {
	return k.key.Equals(other.key)
}

// Equals compares key bytes and lifetime.
func (k Key) Equals(other Key) bool {
	return k.EqualsKey(other) && k.ttl.Equals(other.ttl)
}
